package spin

import (
	"math/rand"
	"sync"

	"spinner_backend/internal/config"
	"spinner_backend/internal/ledger"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	gameCfg    config.GameConfig
	resource   string
	operatorID int64

	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	whitelist repository.WhitelistRepository
	sessions  repository.SessionRepository

	ledger    ledger.Client
	txManager trm.Manager
	// rng не потокобезопасен, розыгрыш идёт под rngMtx: сессии
	// сериализуют батчи только в пределах одного пользователя
	rng    *rand.Rand
	rngMtx sync.Mutex
	log    *logrus.Logger
}

// NewSpinService - сервис серий спинов: валидация ставки, розыгрыш,
// расчёт с леджером и запись в учёт
func NewSpinService(
	gameCfg config.GameConfig,
	ledgerCfg config.LedgerConfig,
	operatorCfg config.OperatorConfig,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	whitelist repository.WhitelistRepository,
	sessions repository.SessionRepository,
	ledgerClient ledger.Client,
	txManager trm.Manager,
	rng *rand.Rand,
	log *logrus.Logger,
) service.SpinService {
	return &serv{
		gameCfg:    gameCfg,
		resource:   ledgerCfg.ResourceAddress(),
		operatorID: operatorCfg.TelegramID(),
		userRepo:   userRepo,
		statsRepo:  statsRepo,
		whitelist:  whitelist,
		sessions:   sessions,
		ledger:     ledgerClient,
		txManager:  txManager,
		rng:        rng,
		log:        log,
	}
}
