package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/movie-api/internal/api/http"
	"github.com/spec-kit/movie-api/internal/api/http/handlers"
	"github.com/spec-kit/movie-api/internal/auth"
	"github.com/spec-kit/movie-api/internal/cache"
	"github.com/spec-kit/movie-api/internal/config"
	"github.com/spec-kit/movie-api/internal/events"
	"github.com/spec-kit/movie-api/internal/observability"
	"github.com/spec-kit/movie-api/internal/persistence"
	"github.com/spec-kit/movie-api/internal/repository"
	"github.com/spec-kit/movie-api/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx := context.Background()
	dependencies := map[string]handlers.Pinger{}

	var (
		accountRepo repository.AccountRepository
		movieRepo   repository.MovieRepository
		pg          *persistence.Postgres
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		accountRepo = repository.NewMemoryAccountRepository()
		movieRepo = repository.NewMemoryMovieRepository(repository.SeedMovies())
	default:
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		pool := pg.PoolHandle()
		accountRepo = repository.NewAccountRepository(pool)
		movieRepo = repository.NewMovieRepository(pool)
		dependencies["postgres"] = pg
	}

	var (
		redis      *persistence.Redis
		movieCache *cache.MovieCache
	)
	if cfg.Redis.Enabled {
		redis = persistence.NewRedis(ctx, cfg.Redis, logger)
		movieCache = cache.NewMovieCache(redis.Client, cfg.Cache.Prefix, cfg.Cache.TTL())
		dependencies["redis"] = redis
	}

	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, logger, cfg.Notification).RegisterHandlers()

	authService := service.NewAuthService(cfg.Auth, accountRepo)
	accountService := service.NewAccountService(service.AccountDependencies{
		AccountRepo: accountRepo,
		MovieRepo:   movieRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	movieService := service.NewMovieService(movieRepo, movieCache, logger)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:           logger,
		Metrics:          metrics,
		Timeout:          cfg.App.RequestTimeout(),
		CORSAllowOrigins: cfg.App.CORSAllowOrigins,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, metrics),
		Auth:      handlers.NewAuthHandler(authService, logger),
		Accounts:  handlers.NewAccountsHandler(accountService),
		Movies:    handlers.NewMoviesHandler(movieService),
		Guard:     auth.NewGuard(logger, authService.BearerStrategy()),
		StaticDir: cfg.App.StaticDir,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("storage", cfg.Storage.Driver))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, shutdownTimeout, map[string]gfshutdown.Operation{
		"movie-api": func(ctx context.Context) error {
			logger.Info("graceful shutdown initiated")
			err := app.ShutdownWithContext(ctx)
			pg.Close()
			redis.Close()
			return err
		},
	})

	exitCode := <-wait
	logger.Info("exited", zap.Int("code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
