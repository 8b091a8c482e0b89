package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"spinner_backend/internal/config"
)

const (
	operatorIDEnvName            = "GAME_OWNER_TELEGRAM_ID"
	operatorTokenKeyEnvName      = "OPERATOR_TOKEN_SECRET"
	operatorTokenDurationEnvName = "OPERATOR_TOKEN_DURATION"
)

type operatorConfig struct {
	telegramID    int64
	secretKey     string
	tokenDuration time.Duration
}

func NewOperatorConfig() (config.OperatorConfig, error) {
	rawID := os.Getenv(operatorIDEnvName)
	if len(rawID) == 0 {
		return nil, fmt.Errorf("game owner telegram id not found")
	}

	telegramID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid game owner telegram id: %w", err)
	}

	secretKey := os.Getenv(operatorTokenKeyEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("operator token secret not found")
	}

	tokenDuration := os.Getenv(operatorTokenDurationEnvName)
	if len(tokenDuration) == 0 {
		return nil, fmt.Errorf("operator token duration not found")
	}

	tokenDurationParsed, err := time.ParseDuration(tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid operator token duration: %w", err)
	}

	return &operatorConfig{
		telegramID:    telegramID,
		secretKey:     secretKey,
		tokenDuration: tokenDurationParsed,
	}, nil
}

func (cfg *operatorConfig) TelegramID() int64 {
	return cfg.telegramID
}

func (cfg *operatorConfig) SecretKey() []byte {
	return []byte(cfg.secretKey)
}

func (cfg *operatorConfig) TokenDuration() time.Duration {
	return cfg.tokenDuration
}
