package app

import (
	"context"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/config"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/ironboundtech/TheDrinkDistrict/internal/handlers"
	"github.com/ironboundtech/TheDrinkDistrict/internal/messaging/rabbitmq"
	rediscache "github.com/ironboundtech/TheDrinkDistrict/internal/repository/redis"
	"github.com/ironboundtech/TheDrinkDistrict/internal/service"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/jwt"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/password"
	"github.com/ironboundtech/TheDrinkDistrict/internal/worker"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const amqpDialAttempts = 5

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	wallet   domain.WalletService
	catalog  domain.CatalogService
	purchase domain.PurchaseService
	booking  domain.BookingService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	wallet    *handlers.WalletHandler
	catalog   *handlers.CatalogHandler
	purchases *handlers.PurchasesHandler
	bookings  *handlers.BookingsHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	store      *storage
	services   *services
	handlers   *handlerSet
	responder  *handlers.Responder
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	closers    []func()
}

// close освобождает внешние подключения в обратном порядке
func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	store, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	deps := &dependencies{store: store, closers: []func(){store.close}}

	// Кеш каталога
	catalog, invalidator, closeCache := initCatalogCache(ctx, cfg, store.catalog, logger)
	deps.closers = append(deps.closers, closeCache)

	// Доменные события
	events, err := initEvents(ctx, cfg, logger)
	if err != nil {
		deps.close()
		return nil, err
	}
	if p, ok := events.(*rabbitmq.Publisher); ok {
		deps.closers = append(deps.closers, func() { _ = p.Close() })
	}

	runner, err := service.NewStepRunner(cfg.TxMode, store.tx, store.incidents, logger)
	if err != nil {
		deps.close()
		return nil, err
	}
	logger.Info("order consistency mode", zap.String("tx_mode", cfg.TxMode))

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	passwordPolicy := password.Policy{MinLength: cfg.MinPasswordLength}
	deps.jwtManager = jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	deps.services = &services{
		auth:     service.NewAuthService(store.users, passwordHasher, passwordPolicy, deps.jwtManager),
		wallet:   service.NewWalletService(store.wallet, events, logger),
		catalog:  service.NewCatalogService(store.products, store.courts, catalog, invalidator, logger),
		purchase: service.NewPurchaseService(catalog, store.stock, store.wallet, store.purchases, runner, events, logger),
		booking:  service.NewBookingService(catalog, store.wallet, store.bookings, runner, events, logger),
	}

	// Создание handlers
	deps.responder = handlers.NewResponder(logger, !cfg.Production())
	deps.handlers = &handlerSet{
		auth:      handlers.NewAuthHandler(deps.services.auth, deps.responder),
		wallet:    handlers.NewWalletHandler(deps.services.wallet, deps.responder),
		catalog:   handlers.NewCatalogHandler(deps.services.catalog, deps.responder),
		purchases: handlers.NewPurchasesHandler(deps.services.purchase, deps.responder),
		bookings:  handlers.NewBookingsHandler(deps.services.booking, deps.responder),
		health: handlers.NewHealthHandler(store.pinger, store.incidents, handlers.HealthInfo{
			Storage: cfg.StorageBackend,
			TxMode:  cfg.TxMode,
		}, deps.responder, logger),
	}

	// Создание пула сверки компенсаций
	poolConfig := worker.PoolConfig{
		Workers:      cfg.ReconcileWorkers,
		QueueSize:    cfg.ReconcileQueueSize,
		ScanInterval: cfg.ReconcileScanInterval,
		MaxAttempts:  cfg.ReconcileMaxAttempts,
	}
	deps.workerPool = worker.NewPool(poolConfig, store.incidents, store.stock, store.wallet, store.tx, logger)

	return deps, nil
}

// initCatalogCache оборачивает каталог в redis кеш, если задан REDIS_ADDR
func initCatalogCache(
	ctx context.Context,
	cfg *config.Config,
	next domain.CatalogReader,
	logger *zap.Logger,
) (domain.CatalogReader, domain.CatalogInvalidator, func()) {
	if cfg.RedisAddr == "" {
		return next, rediscache.NoopInvalidator{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		// Кеш необязателен: промахи уходят в хранилище
		logger.Warn("redis is unavailable, catalog cache degraded", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	logger.Info("catalog cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CatalogCacheTTL))

	cached := rediscache.NewCachedCatalog(next, client, cfg.CatalogCacheTTL, logger)
	return cached, cached, func() { _ = client.Close() }
}

// initEvents подключает RabbitMQ или пишет события в лог, если AMQP_URL пуст
func initEvents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.EventPublisher, error) {
	if cfg.AMQPURL == "" {
		return rabbitmq.NewLogPublisher(logger), nil
	}

	publisher, err := rabbitmq.Dial(ctx, cfg.AMQPURL, cfg.AMQPExchange, amqpDialAttempts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to event broker: %w", err)
	}
	logger.Info("publishing domain events", zap.String("exchange", cfg.AMQPExchange))
	return publisher, nil
}
