package account

import (
	"context"
	"errors"
	"fmt"

	"spinner_backend/internal/ledger"
	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
)

// Withdraw - вывод средств на внешний адрес. Нулевая сумма в запросе
// означает вывод всего баланса. Явная сумма проверяется против минимума
// до любых обращений к леджеру
func (s *serv) Withdraw(ctx context.Context, req model.WithdrawRequest) (*model.WithdrawResult, error) {
	if !req.Amount.IsZero() && req.Amount.LessThanOrEqual(s.gameCfg.MinWithdraw()) {
		return nil, service.ErrWithdrawTooSmall
	}

	if !s.sessions.TryAcquire(req.TelegramID) {
		return nil, service.ErrSessionBusy
	}
	defer s.sessions.Release(req.TelegramID)

	user, err := s.userRepo.GetUser(ctx, req.TelegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNoAccount
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	balance, err := s.ledger.GetBalance(ctx, user.Address)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	amount := req.Amount
	if amount.IsZero() {
		amount = balance
		if amount.LessThanOrEqual(s.gameCfg.MinWithdraw()) {
			return nil, service.ErrWithdrawTooSmall
		}
	}
	if balance.LessThan(amount) {
		return nil, &service.InsufficientFundsError{Required: amount, Available: balance}
	}

	fee := s.gameCfg.WithdrawFee()
	actual := amount.Sub(fee)

	manifest := ledger.WithdrawManifest(s.resource, user.Address, req.ToAddress, amount)
	signer := ledger.Signer{
		Address:    user.Address,
		PrivateKey: user.PrivateKey,
		PublicKey:  user.PublicKey,
	}

	result, err := s.ledger.SubmitTransfer(ctx, manifest, signer)
	if err != nil {
		return nil, fmt.Errorf("submit withdrawal: %w", err)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.txRepo.CreateRecord(ctx, &model.TransactionRecord{
			TelegramID: req.TelegramID,
			Action:     model.ActionWithdraw,
			Amount:     actual,
		})
	})
	if err != nil {
		s.log.WithField("transaction_id", result.TransactionID).
			Error("withdrawal committed but history record failed")
		return nil, fmt.Errorf("record withdrawal (transaction %s): %w", result.TransactionID, err)
	}

	return &model.WithdrawResult{
		ActualAmount:  actual,
		Fee:           fee,
		TransactionID: result.TransactionID,
	}, nil
}
