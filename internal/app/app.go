package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ironboundtech/TheDrinkDistrict/internal/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp(ctx context.Context) (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the default secret")
	}

	// Денежные суммы в JSON передаются числами
	decimal.MarshalJSONWithoutQuotes = true

	// Инициализация зависимостей
	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Настройка роутера и HTTP сервера
	router := setupRouter(deps, logger)
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
		server: server,
	}, nil
}

// Run запускает HTTP сервер и пул сверки и блокируется до отмены ctx
func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.deps.close()
		a.logger.Info("server stopped gracefully")
		_ = a.logger.Sync()
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.serve)

	g.Go(func() error {
		a.logger.Info("reconcile pool started")
		err := a.deps.workerPool.Run(gctx)
		a.logger.Info("reconcile pool stopped")
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}
