package account

import (
	"spinner_backend/internal/config"
	"spinner_backend/internal/ledger"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	gameCfg   config.GameConfig
	resource  string
	networkID uint8

	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository
	sessions repository.SessionRepository

	ledger    ledger.Client
	txManager trm.Manager
	log       *logrus.Logger
}

// NewAccountService - сервис аккаунтов: создание, баланс, вывод, история
func NewAccountService(
	gameCfg config.GameConfig,
	ledgerCfg config.LedgerConfig,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	sessions repository.SessionRepository,
	ledgerClient ledger.Client,
	txManager trm.Manager,
	log *logrus.Logger,
) service.AccountService {
	return &serv{
		gameCfg:   gameCfg,
		resource:  ledgerCfg.ResourceAddress(),
		networkID: ledgerCfg.NetworkID(),
		userRepo:  userRepo,
		txRepo:    txRepo,
		sessions:  sessions,
		ledger:    ledgerClient,
		txManager: txManager,
		log:       log,
	}
}
