package whitelist

import (
	"context"

	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"
)

type serv struct {
	whitelistRepo repository.WhitelistRepository
}

// NewWhitelistService - управление допуском игроков к ставкам
func NewWhitelistService(whitelistRepo repository.WhitelistRepository) service.WhitelistService {
	return &serv{whitelistRepo: whitelistRepo}
}

func (s *serv) Add(ctx context.Context, telegramID int64) error {
	return s.whitelistRepo.Add(ctx, telegramID)
}

func (s *serv) Remove(ctx context.Context, telegramID int64) error {
	return s.whitelistRepo.Remove(ctx, telegramID)
}

func (s *serv) List(ctx context.Context) ([]int64, error) {
	return s.whitelistRepo.List(ctx)
}
