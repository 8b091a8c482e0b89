package service

import (
	"context"

	"spinner_backend/internal/model"

	"github.com/shopspring/decimal"
)

type SpinService interface {
	Play(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	MaxBets(ctx context.Context) (*model.MaxBets, error)
	Payouts() []model.VariantPayout
}

type AccountService interface {
	Create(ctx context.Context, telegramID int64) (*model.User, error)
	Balance(ctx context.Context, telegramID int64) (*model.BalanceInfo, error)
	// DepositAddress - адрес для пополнения, без обращений к леджеру
	DepositAddress(ctx context.Context, telegramID int64) (string, error)
	RecordDeposit(ctx context.Context, req model.DepositRequest) error
	Withdraw(ctx context.Context, req model.WithdrawRequest) (*model.WithdrawResult, error)
	History(ctx context.Context, telegramID int64) ([]model.TransactionRecord, error)
}

// PayoutService - выплаты из казны. Refund единственная попытка по запросу
// игрока, Send операторская выплата с повторами
type PayoutService interface {
	Refund(ctx context.Context, req model.RefundRequest) (*model.RefundResult, error)
	Send(ctx context.Context, telegramID int64, amount decimal.Decimal) (*model.PayoutResult, error)
}

type WhitelistService interface {
	Add(ctx context.Context, telegramID int64) error
	Remove(ctx context.Context, telegramID int64) error
	List(ctx context.Context) ([]int64, error)
}

// MaintenanceService - режим обслуживания. Писатель один (оператор через
// админский эндпоинт), читатели берут снимок на каждый запрос
type MaintenanceService interface {
	Enabled() bool
	Toggle() bool
}
