package payout

import (
	"context"
	"errors"
	"fmt"

	"spinner_backend/internal/ledger"
	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
)

// Refund - возврат проигрыша игроку из казны. Одна попытка отправки,
// без повторов: при успехе игрок удаляется из вайтлиста и возврат
// учитывается в выплаченных выигрышах
func (s *serv) Refund(ctx context.Context, req model.RefundRequest) (*model.RefundResult, error) {
	allowed, err := s.whitelist.Exists(ctx, req.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("check whitelist: %w", err)
	}
	if !allowed {
		return nil, service.ErrNotWhitelisted
	}

	user, err := s.userRepo.GetUser(ctx, req.TelegramID)
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

	manifest := ledger.SettleManifest(s.resource, game.Address, user.Address, req.Amount)
	signer := ledger.Signer{
		Address:    game.Address,
		PrivateKey: game.PrivateKey,
		PublicKey:  game.PublicKey,
	}

	result, err := s.ledger.SubmitTransfer(ctx, manifest, signer)
	if err != nil {
		return nil, fmt.Errorf("submit refund: %w", err)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.whitelist.Remove(ctx, req.TelegramID); err != nil {
			return fmt.Errorf("remove from whitelist: %w", err)
		}
		paid := req.Amount.Sub(s.gameCfg.TransactionFee())
		if paid.IsPositive() {
			if err := s.statsRepo.AddWinningsPaid(ctx, paid); err != nil {
				return fmt.Errorf("add winnings paid: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.log.WithField("transaction_id", result.TransactionID).
			Error("refund committed but accounting update failed")
		return nil, fmt.Errorf("record refund (transaction %s): %w", result.TransactionID, err)
	}

	return &model.RefundResult{
		Amount:        req.Amount,
		TransactionID: result.TransactionID,
	}, nil
}
