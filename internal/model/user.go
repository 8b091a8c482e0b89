package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User - кастодиальный аккаунт игрока. Один аккаунт на один telegram ID.
// Баланс локально не хранится, всегда запрашивается из леджера по адресу.
type User struct {
	TelegramID int64
	Address    string
	PrivateKey string
	PublicKey  string
	CreatedAt  time.Time
}

// OperatorClaims - claims токена оператора для админских эндпоинтов
type OperatorClaims struct {
	jwt.RegisteredClaims
}
