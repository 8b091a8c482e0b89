package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig - настраиваемые параметры игры из config.yaml.
// Таблицы выигрышных комбинаций сюда не выносятся, это фиксированные бизнес-правила
type GameConfig interface {
	MaxLossPercent() decimal.Decimal
	MaxBetCeiling() decimal.Decimal
	MinBet() decimal.Decimal
	TransactionFee() decimal.Decimal
	WithdrawFee() decimal.Decimal
	MinWithdraw() decimal.Decimal
	SpinDelay() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// LedgerConfig - параметры подключения к gateway леджера
type LedgerConfig interface {
	GatewayURL() string
	ResourceAddress() string
	NetworkID() uint8
}

// OperatorConfig - владелец игры и секрет для операторских токенов
type OperatorConfig interface {
	TelegramID() int64
	SecretKey() []byte
	TokenDuration() time.Duration
}
