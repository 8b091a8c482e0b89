package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spinner_backend/internal/ledger"
	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
)

// Create - создаёт пользователю пару ключей и виртуальный адрес в леджере.
// Повторное создание для того же telegram_id отклоняется
func (s *serv) Create(ctx context.Context, telegramID int64) (*model.User, error) {
	_, err := s.userRepo.GetUser(ctx, telegramID)
	if err == nil {
		return nil, service.ErrAccountExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	acc, err := ledger.NewAccount(s.networkID)
	if err != nil {
		return nil, fmt.Errorf("generate account: %w", err)
	}

	user := &model.User{
		TelegramID: telegramID,
		Address:    acc.Address,
		PrivateKey: acc.PrivateKey,
		PublicKey:  acc.PublicKey,
		CreatedAt:  time.Now(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.WithField("telegram_id", telegramID).Info("account created")
	return user, nil
}

// Balance - живой баланс пользователя из леджера
func (s *serv) Balance(ctx context.Context, telegramID int64) (*model.BalanceInfo, error) {
	user, err := s.userRepo.GetUser(ctx, telegramID)
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

	return &model.BalanceInfo{Address: user.Address, Balance: balance}, nil
}

// History - журнал депозитов и выводов пользователя
func (s *serv) History(ctx context.Context, telegramID int64) ([]model.TransactionRecord, error) {
	if _, err := s.userRepo.GetUser(ctx, telegramID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNoAccount
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.txRepo.ListByUser(ctx, telegramID)
}
