package account

import (
	"context"
	"errors"
	"fmt"

	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
)

// DepositAddress - адрес аккаунта для пополнения. Леджер не трогается,
// средства зачисляются внешним переводом на этот адрес
func (s *serv) DepositAddress(ctx context.Context, telegramID int64) (string, error) {
	user, err := s.userRepo.GetUser(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrNoAccount
		}
		return "", fmt.Errorf("get user: %w", err)
	}
	return user.Address, nil
}

// RecordDeposit - фиксирует поступивший депозит в журнале операций.
// Сумма сверяется с живым балансом: записать можно только то, что
// реально дошло до аккаунта
func (s *serv) RecordDeposit(ctx context.Context, req model.DepositRequest) error {
	if !req.Amount.IsPositive() {
		return service.ErrInvalidAmount
	}

	user, err := s.userRepo.GetUser(ctx, req.TelegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return service.ErrNoAccount
		}
		return fmt.Errorf("get user: %w", err)
	}

	balance, err := s.ledger.GetBalance(ctx, user.Address)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	if balance.LessThan(req.Amount) {
		return &service.InsufficientFundsError{Required: req.Amount, Available: balance}
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.txRepo.CreateRecord(ctx, &model.TransactionRecord{
			TelegramID: req.TelegramID,
			Action:     model.ActionDeposit,
			Amount:     req.Amount,
		})
	})
}
