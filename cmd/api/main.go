package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/ai"
	httptransport "github.com/spec-kit/equiflow/internal/api/http"
	"github.com/spec-kit/equiflow/internal/api/http/handlers"
	"github.com/spec-kit/equiflow/internal/auth"
	"github.com/spec-kit/equiflow/internal/config"
	"github.com/spec-kit/equiflow/internal/engine"
	"github.com/spec-kit/equiflow/internal/events"
	"github.com/spec-kit/equiflow/internal/observability"
	"github.com/spec-kit/equiflow/internal/persistence"
	"github.com/spec-kit/equiflow/internal/service"
	"github.com/spec-kit/equiflow/internal/store"
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

	kv, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage backend", zap.Error(err))
	}
	defer kv.Close()

	st, err := store.Open(ctx, kv, cfg.Storage.KeyPrefix, logger)
	if err != nil {
		logger.Fatal("failed to load application state", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	authService := service.NewAuthService(cfg.Auth, st)
	reservationService := service.NewReservationService(st, dispatcher)
	inventoryService := service.NewInventoryService(st)
	directoryService := service.NewDirectoryService(st)
	backupService := service.NewBackupService(st, dispatcher)
	recommendationService := service.NewRecommendationService(st, ai.NewGeminiClient(cfg.AI, logger))

	sweeper := engine.NewSweeper(st, cfg.Sweep.Interval(), logger)
	go sweeper.Run(ctx)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), st)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Storage.Backend, kv),
		Auth:           handlers.NewAuthHandler(authService),
		Inventory:      handlers.NewInventoryHandler(inventoryService, recommendationService),
		Reservations:   handlers.NewReservationsHandler(reservationService),
		Admin:          handlers.NewAdminHandler(inventoryService, directoryService, reservationService, backupService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	_ = app.Shutdown()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.KeyValue, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return persistence.NewRedis(cfg.Redis, logger), nil
	case "postgres":
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	case "memory":
		logger.Warn("using in-memory storage; state will not survive restarts")
		return persistence.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
