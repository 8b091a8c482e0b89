package model

import "github.com/shopspring/decimal"

// Variant - режим игры
type Variant string

const (
	// VariantStandard обычный спин, выигрывают четыре тройных комбинации
	VariantStandard Variant = "standard"
	// VariantSevens спин только на три семёрки
	VariantSevens Variant = "sevens"
	// VariantDie бросок кубика, выигрывает шестёрка
	VariantDie Variant = "die"
)

// SpinRequest - запрос на серию спинов от чат-поверхности.
// RawAmount это либо число, либо литерал "max"
type SpinRequest struct {
	TelegramID int64
	RawAmount  string
	Count      int
	Variant    Variant
}

// Outcome - результат одного спина
type Outcome struct {
	Value int
	Win   bool
}

// Settlement - чистый результат батча до обращения к леджеру.
// NetResult > 0 означает что казна должна игроку, < 0 - игрок казне
type Settlement struct {
	GrossWinnings decimal.Decimal
	TotalCost     decimal.Decimal
	NetResult     decimal.Decimal
}

// SpinResult - итог батча спинов после расчёта с леджером
type SpinResult struct {
	Variant       Variant
	Amount        decimal.Decimal
	Outcomes      []Outcome
	WinningSpins  []int
	GrossWinnings decimal.Decimal
	TotalCost     decimal.Decimal
	NetResult     decimal.Decimal
	TransactionID string
}

// MaxBets - лимиты ставок по каждому режиму на текущий момент
type MaxBets struct {
	Standard decimal.Decimal
	Sevens   decimal.Decimal
	Die      decimal.Decimal
}

// VariantPayout - строка статической таблицы выплат
type VariantPayout struct {
	Variant         Variant
	SpaceSize       int
	WinningOutcomes int
	Multiplier      decimal.Decimal
}

// DepositRequest - фиксация поступившего депозита в журнале
type DepositRequest struct {
	TelegramID int64
	Amount     decimal.Decimal
}

// WithdrawRequest - запрос на вывод средств на внешний адрес.
// Amount равный нулю означает вывод всего баланса
type WithdrawRequest struct {
	TelegramID int64
	ToAddress  string
	Amount     decimal.Decimal
}

// WithdrawResult - итог вывода. ActualAmount это сумма за вычетом сетевой комиссии
type WithdrawResult struct {
	ActualAmount  decimal.Decimal
	Fee           decimal.Decimal
	TransactionID string
}

// RefundRequest - запрос на возврат проигрыша. Side effect: удаление из вайтлиста
type RefundRequest struct {
	TelegramID int64
	Amount     decimal.Decimal
}

// RefundResult - итог возврата
type RefundResult struct {
	Amount        decimal.Decimal
	TransactionID string
}

// PayoutResult - итог операторской выплаты. Amount это фактически
// отправленная сумма после удержания сетевой комиссии
type PayoutResult struct {
	Amount        decimal.Decimal
	TransactionID string
}

// BalanceInfo - живой баланс игрока с его адресом
type BalanceInfo struct {
	Address string
	Balance decimal.Decimal
}
