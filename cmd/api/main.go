package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/residence-registry/internal/api/http"
	"github.com/spec-kit/residence-registry/internal/api/http/handlers"
	"github.com/spec-kit/residence-registry/internal/auth"
	"github.com/spec-kit/residence-registry/internal/config"
	"github.com/spec-kit/residence-registry/internal/events"
	"github.com/spec-kit/residence-registry/internal/observability"
	"github.com/spec-kit/residence-registry/internal/persistence"
	"github.com/spec-kit/residence-registry/internal/repository"
	"github.com/spec-kit/residence-registry/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var residentRepo repository.ResidentRepository
	if pool := pg.PoolHandle(); pool != nil {
		residentRepo = repository.NewResidentRepository(pool)
	} else {
		residentRepo = repository.NewMemoryResidentRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()
	service.NewAuditService(dispatcher, logger).RegisterHandlers()

	registryService := service.NewRegistryService(cfg.Registry, service.RegistryDependencies{
		Repo:       residentRepo,
		Dispatcher: dispatcher,
		Cache:      redis.ClientHandle(),
		Logger:     logger,
	})
	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Residents:      handlers.NewResidentsHandler(registryService),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: authMiddleware,
		EnforceRoles:   cfg.Auth.EnforceRoles,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
