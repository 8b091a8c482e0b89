package spin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
	servModel "spinner_backend/internal/service/spin/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Play - проводит серию спинов от валидации до записи в учёт.
// На пользователя одновременно идёт не более одной серии: повторный
// запрос при занятой сессии отклоняется сразу, без обращений к леджеру
func (s *serv) Play(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	if req.Count < 1 || req.Count > 3 {
		return nil, service.ErrInvalidSpinCount
	}
	if _, ok := servModel.Variants[req.Variant]; !ok {
		return nil, fmt.Errorf("unknown game variant: %s", req.Variant)
	}

	if !s.sessions.TryAcquire(req.TelegramID) {
		return nil, service.ErrSessionBusy
	}
	defer s.sessions.Release(req.TelegramID)

	if req.TelegramID != s.operatorID {
		allowed, err := s.whitelist.Exists(ctx, req.TelegramID)
		if err != nil {
			return nil, fmt.Errorf("check whitelist: %w", err)
		}
		if !allowed {
			return nil, service.ErrNotWhitelisted
		}
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

	houseBalance, err := s.ledger.GetBalance(ctx, game.Address)
	if err != nil {
		return nil, fmt.Errorf("get house balance: %w", err)
	}
	maxBet := MaxBet(houseBalance, req.Variant, s.gameCfg.MaxLossPercent(), s.gameCfg.MaxBetCeiling())

	userBalance, err := s.ledger.GetBalance(ctx, user.Address)
	if err != nil {
		return nil, fmt.Errorf("get user balance: %w", err)
	}

	amount, err := ResolveAmount(req.RawAmount, userBalance, maxBet, s.gameCfg.MinBet(), s.gameCfg.TransactionFee())
	if err != nil {
		return nil, err
	}

	// Комиссия берётся один раз за батч, сколько бы спинов в нём ни было
	required := amount.Mul(decimal.NewFromInt(int64(req.Count))).Add(s.gameCfg.TransactionFee())
	if userBalance.LessThan(required) {
		return nil, &service.InsufficientFundsError{Required: required, Available: userBalance}
	}

	s.rngMtx.Lock()
	outcomes := DrawOutcomes(s.rng, req.Variant, req.Count)
	s.rngMtx.Unlock()

	if delay := s.gameCfg.SpinDelay(); delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	settlement := Settle(outcomes, amount, req.Variant)

	txID, err := s.submitSettlement(ctx, user, game, settlement)
	if err != nil {
		return nil, fmt.Errorf("submit settlement: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.statsRepo.AddSpins(ctx, req.Count); err != nil {
			return fmt.Errorf("add spins: %w", err)
		}
		if settlement.NetResult.IsPositive() {
			paid := settlement.NetResult.Sub(s.gameCfg.TransactionFee())
			if err := s.statsRepo.AddWinningsPaid(ctx, paid); err != nil {
				return fmt.Errorf("add winnings paid: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// Перевод уже прошёл в леджере, откатить его нельзя. Логируем и
		// отдаём ошибку с идентификатором транзакции для ручной сверки
		s.log.WithFields(logrus.Fields{
			"telegram_id":    req.TelegramID,
			"transaction_id": txID,
			"net_result":     settlement.NetResult.String(),
		}).Error("settlement committed but accounting update failed")
		return nil, fmt.Errorf("record settlement (transaction %s): %w", txID, err)
	}

	winning := make([]int, 0, len(outcomes))
	for i, o := range outcomes {
		if o.Win {
			winning = append(winning, i+1)
		}
	}

	return &model.SpinResult{
		Variant:       req.Variant,
		Amount:        amount,
		Outcomes:      outcomes,
		WinningSpins:  winning,
		GrossWinnings: settlement.GrossWinnings,
		TotalCost:     settlement.TotalCost,
		NetResult:     settlement.NetResult,
		TransactionID: txID,
	}, nil
}
