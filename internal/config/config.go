package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Хранилища
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Режимы согласованности заказов
const (
	TxModeNative = "native"
	TxModeSaga   = "saga"
)

const defaultJWTSecret = "default-secret-key-change-in-production"

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`     // Адрес и порт запуска сервиса
	DatabaseURI    string `env:"DATABASE_URI"`    // URI подключения к БД
	DBMaxConns     int32  `env:"DB_MAX_CONNS"`    // Размер пула соединений postgres
	StorageBackend string `env:"STORAGE_BACKEND"` // postgres или memory
	TxMode         string `env:"TX_MODE"`         // native: транзакции хранилища, saga: компенсации

	JWTSecret   string        `env:"JWT_SECRET"`    // Секретный ключ для JWT
	JWTTokenTTL time.Duration `env:"JWT_TOKEN_TTL"` // Время жизни JWT токена
	LogLevel    string        `env:"LOG_LEVEL"`     // Уровень логирования
	AppEnv      string        `env:"APP_ENV"`       // production скрывает детали ошибок

	// Кеш каталога (пустой адрес отключает кеш)
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL"`

	// Доменные события (пустой URL: события только пишутся в лог)
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE"`

	// Сверка неудавшихся компенсаций
	ReconcileWorkers      int           `env:"RECONCILE_WORKERS"`
	ReconcileQueueSize    int           `env:"RECONCILE_QUEUE_SIZE"`
	ReconcileScanInterval time.Duration `env:"RECONCILE_SCAN_INTERVAL"`
	ReconcileMaxAttempts  int           `env:"RECONCILE_MAX_ATTEMPTS"`

	// Валидация
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"` // Минимальная длина пароля
}

// defaults значения по умолчанию
func defaults() *Config {
	return &Config{
		RunAddress:            ":8080",
		DBMaxConns:            10,
		StorageBackend:        StoragePostgres,
		TxMode:                TxModeNative,
		JWTSecret:             defaultJWTSecret,
		JWTTokenTTL:           24 * time.Hour,
		LogLevel:              "info",
		AppEnv:                "development",
		CatalogCacheTTL:       30 * time.Second,
		AMQPExchange:          "drinkdistrict.events",
		ReconcileWorkers:      2,
		ReconcileQueueSize:    100,
		ReconcileScanInterval: 30 * time.Second,
		ReconcileMaxAttempts:  5,
		MinPasswordLength:     6,
	}
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения
func Load() (*Config, error) {
	return parse(os.Args[0], os.Args[1:])
}

// parse приоритет: env переменные > флаги > дефолтные значения
func parse(name string, args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "storage backend: postgres or memory")
	fs.StringVar(&cfg.TxMode, "tx-mode", cfg.TxMode, "order consistency mode: native or saga")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address for catalog cache")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "AMQP URL for domain events")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StoragePostgres:
		if c.DatabaseURI == "" {
			return errors.New("database URI is required for postgres storage (use -d flag or DATABASE_URI env)")
		}
		if c.DBMaxConns <= 0 {
			return errors.New("database pool size must be positive")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	if c.TxMode != TxModeNative && c.TxMode != TxModeSaga {
		return fmt.Errorf("unknown tx mode %q", c.TxMode)
	}
	if c.JWTTokenTTL <= 0 {
		return errors.New("JWT token TTL must be positive")
	}
	if c.ReconcileWorkers <= 0 || c.ReconcileQueueSize <= 0 {
		return errors.New("reconcile workers and queue size must be positive")
	}
	if c.ReconcileScanInterval <= 0 || c.ReconcileMaxAttempts <= 0 {
		return errors.New("reconcile scan interval and max attempts must be positive")
	}
	if c.MinPasswordLength <= 0 {
		return errors.New("minimum password length must be positive")
	}
	return nil
}

// Production сообщает, запущен ли сервис в production окружении
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// UsesDefaultSecret сообщает, что JWT секрет не задан явно
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}
