package app

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	accountAPI "spinner_backend/internal/api/account"
	adminAPI "spinner_backend/internal/api/admin"
	"spinner_backend/internal/api/middleware"
	spinAPI "spinner_backend/internal/api/spin"
	"spinner_backend/internal/config"
	"spinner_backend/internal/config/env"
	"spinner_backend/internal/ledger"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/repository/session_repo"
	"spinner_backend/internal/repository/stats_repo"
	"spinner_backend/internal/repository/tx_repo"
	"spinner_backend/internal/repository/user_repo"
	"spinner_backend/internal/repository/whitelist_repo"
	"spinner_backend/internal/service"
	"spinner_backend/internal/service/account"
	"spinner_backend/internal/service/maintenance"
	"spinner_backend/internal/service/payout"
	"spinner_backend/internal/service/spin"
	"spinner_backend/internal/service/whitelist"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logger
	logger *logrus.Logger

	// Ledger bits
	ledgerCfg    config.LedgerConfig
	ledgerClient ledger.Client

	// Repositories
	userRepo      repository.UserRepository
	statsRepo     repository.StatsRepository
	txRepo        repository.TransactionRepository
	whitelistRepo repository.WhitelistRepository
	sessionRepo   repository.SessionRepository

	// Game bits
	gameCfg     config.GameConfig
	operatorCfg config.OperatorConfig
	spinServ    service.SpinService
	spinHand    *spinAPI.Handler

	// Account bits
	accountServ service.AccountService
	accountHand *accountAPI.Handler

	// Admin bits
	payoutServ      service.PayoutService
	whitelistServ   service.WhitelistService
	maintenanceServ service.MaintenanceService
	adminHand       *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) Logger() *logrus.Logger {
	if sp.logger == nil {
		log := logrus.New()
		log.SetFormatter(&logrus.JSONFormatter{})
		sp.logger = log
	}
	return sp.logger
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}

		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) OperatorCfg() config.OperatorConfig {
	if sp.operatorCfg == nil {
		cfg, err := env.NewOperatorConfig()
		if err != nil {
			panic("failed to get operator config: " + err.Error())
		}
		sp.operatorCfg = cfg
	}
	return sp.operatorCfg
}

func (sp *ServiceProvider) LedgerCfg() config.LedgerConfig {
	if sp.ledgerCfg == nil {
		cfg, err := env.NewLedgerConfig()
		if err != nil {
			panic("failed to get ledger config: " + err.Error())
		}
		sp.ledgerCfg = cfg
	}
	return sp.ledgerCfg
}

func (sp *ServiceProvider) LedgerClient() ledger.Client {
	if sp.ledgerClient == nil {
		sp.ledgerClient = ledger.NewGatewayClient(sp.LedgerCfg(), sp.Logger())
	}
	return sp.ledgerClient
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) StatsRepo(ctx context.Context) repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.DBClient(ctx))
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) TxRepo(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = tx_repo.NewTransactionRepository(sp.DBClient(ctx))
	}
	return sp.txRepo
}

func (sp *ServiceProvider) WhitelistRepo(ctx context.Context) repository.WhitelistRepository {
	if sp.whitelistRepo == nil {
		sp.whitelistRepo = whitelist_repo.NewWhitelistRepository(sp.DBClient(ctx))
	}
	return sp.whitelistRepo
}

func (sp *ServiceProvider) SessionRepo() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinServ == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sp.spinServ = spin.NewSpinService(
			sp.GameCfg(),
			sp.LedgerCfg(),
			sp.OperatorCfg(),
			sp.UserRepo(ctx),
			sp.StatsRepo(ctx),
			sp.WhitelistRepo(ctx),
			sp.SessionRepo(),
			sp.LedgerClient(),
			sp.TXManager(ctx),
			rng,
			sp.Logger(),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SpinHandler(ctx context.Context) *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{
			Serv: sp.SpinService(ctx),
		})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(
			sp.GameCfg(),
			sp.LedgerCfg(),
			sp.UserRepo(ctx),
			sp.TxRepo(ctx),
			sp.SessionRepo(),
			sp.LedgerClient(),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.accountServ
}

func (sp *ServiceProvider) PayoutService(ctx context.Context) service.PayoutService {
	if sp.payoutServ == nil {
		sp.payoutServ = payout.NewPayoutService(
			sp.GameCfg(),
			sp.LedgerCfg(),
			sp.UserRepo(ctx),
			sp.StatsRepo(ctx),
			sp.WhitelistRepo(ctx),
			sp.LedgerClient(),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.payoutServ
}

func (sp *ServiceProvider) WhitelistService(ctx context.Context) service.WhitelistService {
	if sp.whitelistServ == nil {
		sp.whitelistServ = whitelist.NewWhitelistService(sp.WhitelistRepo(ctx))
	}
	return sp.whitelistServ
}

func (sp *ServiceProvider) MaintenanceService() service.MaintenanceService {
	if sp.maintenanceServ == nil {
		sp.maintenanceServ = maintenance.NewMaintenanceService()
	}
	return sp.maintenanceServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{
			AccountServ: sp.AccountService(ctx),
			PayoutServ:  sp.PayoutService(ctx),
		})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			WhitelistServ:   sp.WhitelistService(ctx),
			MaintenanceServ: sp.MaintenanceService(),
			PayoutServ:      sp.PayoutService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.Use(middleware.RequestID(sp.Logger()))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		// Game endpoints, закрыты в режиме обслуживания
		spinHandler := sp.SpinHandler(ctx)
		accountHandler := sp.AccountHandler(ctx)
		r.Route("/spin", func(rr chi.Router) {
			rr.Use(middleware.MaintenanceGate(sp.MaintenanceService()))
			rr.Post("/play", spinHandler.Play)
			rr.Get("/max-bets", spinHandler.MaxBets)
			rr.Get("/payouts", spinHandler.Payouts)
		})
		r.Route("/account", func(rr chi.Router) {
			rr.Post("/create", accountHandler.Create)
			rr.Get("/balance/{telegramID}", accountHandler.Balance)
			rr.Get("/deposit/{telegramID}", accountHandler.DepositAddress)
			rr.Get("/history/{telegramID}", accountHandler.History)
			rr.Group(func(gated chi.Router) {
				gated.Use(middleware.MaintenanceGate(sp.MaintenanceService()))
				gated.Post("/deposit", accountHandler.RecordDeposit)
				gated.Post("/withdraw", accountHandler.Withdraw)
				gated.Post("/refund", accountHandler.Refund)
			})
		})

		// Admin endpoints, только оператор
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.OperatorAuth(sp.OperatorCfg()))
			rr.Post("/whitelist", adminHandler.WhitelistAdd)
			rr.Delete("/whitelist", adminHandler.WhitelistRemove)
			rr.Get("/whitelist", adminHandler.WhitelistList)
			rr.Post("/maintenance", adminHandler.MaintenanceToggle)
			rr.Post("/payout", adminHandler.Payout)
		})

		sp.router = r
	}

	return sp.router
}
