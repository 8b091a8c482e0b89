package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Виды записей в журнале операций
const (
	ActionDeposit  = "deposit"
	ActionWithdraw = "withdraw"
)

// TransactionRecord - append-only запись журнала операций.
// Используется только для истории, не является источником баланса.
// Спины в журнал не пишутся, только deposit/withdraw
type TransactionRecord struct {
	ID         int64
	TelegramID int64
	Action     string
	Amount     decimal.Decimal
	Timestamp  time.Time
}
