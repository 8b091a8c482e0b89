package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameStats - единственная запись аккаунта казны (id = 1).
// Хранит ключи игрового аккаунта и накопительные счётчики.
// TotalWinningsPaid увеличивается только когда казна платит игроку
// (за вычетом комиссии), TotalSpins растёт на каждый батч спинов.
type GameStats struct {
	ID                int
	Address           string
	PrivateKey        string
	PublicKey         string
	TotalSpins        int64
	TotalWinningsPaid decimal.Decimal
	LastUpdated       time.Time
}
