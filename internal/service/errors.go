package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ошибки валидации и конкурентности. Сообщения уходят чат-поверхности как есть
var (
	// ErrSessionBusy - у пользователя уже идёт серия спинов
	ErrSessionBusy = errors.New("another spin is already in progress")

	ErrNoAccount      = errors.New("account not found")
	ErrAccountExists  = errors.New("account already exists")
	ErrNotWhitelisted = errors.New("user is not whitelisted")

	ErrInvalidAmount    = errors.New("invalid amount")
	ErrBelowMinimum     = errors.New("amount is below the minimum bet")
	ErrInvalidSpinCount = errors.New("number of spins must be between 1 and 3")

	ErrGameAccountMissing = errors.New("game account not configured")
	ErrWithdrawTooSmall   = errors.New("withdrawal amount is too small to cover transaction fees")
)

// InsufficientFundsError - не хватает средств на батч. Несёт требуемую и
// доступную суммы для показа пользователю
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s",
		e.Required.String(), e.Available.String())
}
