package spin

import (
	"context"
	"errors"
	"fmt"

	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
)

// MaxBets - текущие потолки ставок по всем режимам при живом балансе казны
func (s *serv) MaxBets(ctx context.Context) (*model.MaxBets, error) {
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

	percent := s.gameCfg.MaxLossPercent()
	ceiling := s.gameCfg.MaxBetCeiling()

	return &model.MaxBets{
		Standard: MaxBet(houseBalance, model.VariantStandard, percent, ceiling),
		Sevens:   MaxBet(houseBalance, model.VariantSevens, percent, ceiling),
		Die:      MaxBet(houseBalance, model.VariantDie, percent, ceiling),
	}, nil
}
