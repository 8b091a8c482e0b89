package repository

import (
	"context"
	"errors"

	"spinner_backend/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNotFound - запрошенной записи не существует
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, telegramID int64) (*model.User, error)
}

// StatsRepository - singleton-запись казны (id = 1).
// Счётчики обновляются относительными UPDATE внутри транзакции менеджера,
// отдельного чтения перед записью нет
type StatsRepository interface {
	GetGameAccount(ctx context.Context) (*model.GameStats, error)
	AddWinningsPaid(ctx context.Context, amount decimal.Decimal) error
	AddSpins(ctx context.Context, count int) error
}

// TransactionRepository - append-only журнал операций deposit/withdraw
type TransactionRepository interface {
	CreateRecord(ctx context.Context, record *model.TransactionRecord) error
	ListByUser(ctx context.Context, telegramID int64) ([]model.TransactionRecord, error)
}

type WhitelistRepository interface {
	Add(ctx context.Context, telegramID int64) error
	Remove(ctx context.Context, telegramID int64) error
	Exists(ctx context.Context, telegramID int64) (bool, error)
	List(ctx context.Context) ([]int64, error)
}

// SessionRepository - busy-флаги по пользователям на время жизни процесса.
// Это примитив конкурентности, а не учётная сущность: при рестарте процесса
// все флаги пропадают
type SessionRepository interface {
	TryAcquire(telegramID int64) bool
	Release(telegramID int64)
}
