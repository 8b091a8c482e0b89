package payout

import (
	"time"

	"spinner_backend/internal/config"
	"spinner_backend/internal/ledger"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	gameCfg  config.GameConfig
	resource string

	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	whitelist repository.WhitelistRepository

	ledger    ledger.Client
	txManager trm.Manager
	retry     ledger.RetryPolicy
	log       *logrus.Logger
}

// NewPayoutService - выплаты из казны: возврат проигрыша и операторская
// выплата. Операторская идёт с повторами, возврат - единственной попыткой
func NewPayoutService(
	gameCfg config.GameConfig,
	ledgerCfg config.LedgerConfig,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	whitelist repository.WhitelistRepository,
	ledgerClient ledger.Client,
	txManager trm.Manager,
	log *logrus.Logger,
) service.PayoutService {
	return &serv{
		gameCfg:   gameCfg,
		resource:  ledgerCfg.ResourceAddress(),
		userRepo:  userRepo,
		statsRepo: statsRepo,
		whitelist: whitelist,
		ledger:    ledgerClient,
		txManager: txManager,
		retry:     ledger.RetryPolicy{MaxAttempts: 3, Backoff: time.Second},
		log:       log,
	}
}
