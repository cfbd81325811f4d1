package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"nashra/internal/common/pagination"
	"nashra/internal/config"
	memRepo "nashra/internal/infra/adapter/persistence/memory"
	pgRepo "nashra/internal/infra/adapter/persistence/postgres"
	"nashra/internal/infra/db"
	"nashra/internal/infra/seed"
	"nashra/internal/infra/worker"
	"nashra/internal/observability/logging"
	"nashra/internal/observability/tracing"
	"nashra/internal/repository"
	"nashra/internal/resilience/circuitbreaker"
	pkgcfg "nashra/pkg/config"

	artUC "nashra/internal/usecase/article"
	userUC "nashra/internal/usecase/user"

	hhttp "nashra/internal/handler/http"
	harticle "nashra/internal/handler/http/article"
	hauth "nashra/internal/handler/http/auth"
	"nashra/internal/handler/http/requestid"
	authservice "nashra/internal/service/auth"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	artRepo, userRepo, database := initStores(cfg, logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	sessions, err := authservice.NewSessions(cfg.SessionSecret, cfg.SessionTTL.Std())
	if err != nil {
		logger.Error("failed to initialize sessions", slog.Any("error", err))
		os.Exit(1)
	}

	artSvc := &artUC.Service{Repo: artRepo}
	userSvc := &userUC.Service{Repo: userRepo, BcryptCost: cfg.BcryptCost}

	if cfg.Seed {
		runSeed(logger, artSvc, userSvc)
	}

	stats := &worker.StatsWorker{
		Repo:     artRepo,
		Logger:   logger,
		Schedule: cfg.StatsSchedule,
	}
	if err := stats.Start(); err != nil {
		logger.Error("failed to start stats worker", slog.Any("error", err))
		os.Exit(1)
	}
	defer stats.Stop()

	version := getVersion()
	mux := setupRoutes(cfg, database, version, artSvc, userSvc, sessions, logger)
	handler := applyMiddleware(cfg, logger, mux)

	runServer(cfg, logger, handler, version)
}

// initLogger builds the process logger from the configured format and level
// and installs it as the slog default.
func initLogger(cfg config.Config) *slog.Logger {
	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}

	var logger *slog.Logger
	if cfg.LogFormat == "text" {
		logger = logging.NewTextLogger()
	} else {
		logger = logging.NewLogger()
	}
	slog.SetDefault(logger)
	return logger
}

// initStores builds the article and user repositories for the configured
// store driver. The returned *sql.DB is nil for the in-memory driver.
func initStores(cfg config.Config, logger *slog.Logger) (repository.ArticleRepository, repository.UserRepository, *sql.DB) {
	if cfg.StoreDriver == config.DriverMemory {
		logger.Info("using in-memory store")
		return memRepo.NewArticleRepo(), memRepo.NewUserRepo(), nil
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("using postgres store")

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	return pgRepo.NewArticleRepo(breaker), pgRepo.NewUserRepo(breaker), database
}

// runSeed populates an empty store with sample articles and, when the
// SEED_ADMIN_USERNAME and SEED_ADMIN_PASSWORD environment variables are
// set, an initial admin account.
func runSeed(logger *slog.Logger, artSvc *artUC.Service, userSvc *userUC.Service) {
	seeder := &seed.Seeder{
		Articles:      artSvc,
		Users:         userSvc,
		Logger:        logger,
		AdminUsername: pkgcfg.GetEnvString("SEED_ADMIN_USERNAME", ""),
		AdminPassword: pkgcfg.GetEnvString("SEED_ADMIN_PASSWORD", ""),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seeder.Run(ctx); err != nil {
		logger.Error("failed to seed store", slog.Any("error", err))
		os.Exit(1)
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return pkgcfg.GetEnvString("VERSION", "dev")
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	cfg config.Config,
	database *sql.DB,
	version string,
	artSvc *artUC.Service,
	userSvc *userUC.Service,
	sessions *authservice.Sessions,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, StoreDriver: cfg.StoreDriver, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	paginationCfg := pagination.LoadFromEnv()

	loginLimiter := hhttp.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow.Std())

	harticle.Register(mux, artSvc, paginationCfg, logger, hauth.RequireAuth(sessions))
	hauth.Register(mux, userSvc, sessions, logger, loginLimiter.Limit)

	return mux
}

// applyMiddleware wraps the handler with the shared middleware chain.
// Order (outermost first): request ID, tracing, recovery, logging,
// body size limit, metrics. Authentication and the login rate limit are
// applied per route in setupRoutes.
func applyMiddleware(cfg config.Config, logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal
// arrives, then drains in-flight requests with a timeout.
func runServer(cfg config.Config, logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("store_driver", cfg.StoreDriver),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
