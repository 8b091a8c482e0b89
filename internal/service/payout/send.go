package payout

import (
	"context"
	"errors"
	"fmt"

	"spinner_backend/internal/ledger"
	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"

	"github.com/shopspring/decimal"
)

// Send - операторская выплата из казны. Отправка повторяется до трёх раз
// с паузой в секунду, возвращается последняя ошибка
func (s *serv) Send(ctx context.Context, telegramID int64, amount decimal.Decimal) (*model.PayoutResult, error) {
	if !amount.IsPositive() {
		return nil, service.ErrInvalidAmount
	}

	user, err := s.userRepo.GetUser(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNoAccount
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	game, err := s.statsRepo.GetGameAccount(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrGameAccountMissing
		}
		return nil, fmt.Errorf("get game account: %w", err)
	}

	manifest := ledger.PayoutManifest(s.resource, game.Address, user.Address, amount)
	signer := ledger.Signer{
		Address:    game.Address,
		PrivateKey: game.PrivateKey,
		PublicKey:  game.PublicKey,
	}

	actual := amount.Sub(s.gameCfg.TransactionFee())
	if actual.IsNegative() {
		actual = decimal.Zero
	}

	var result *ledger.SubmitResult
	err = s.retry.Do(ctx, func() error {
		var submitErr error
		result, submitErr = s.ledger.SubmitTransfer(ctx, manifest, signer)
		if submitErr != nil {
			return submitErr
		}
		return result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("submit payout: %w", err)
	}

	s.log.WithField("telegram_id", telegramID).Info("payout sent")
	return &model.PayoutResult{
		Amount:        actual,
		TransactionID: result.TransactionID,
	}, nil
}
