package app

import (
	"context"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/config"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/ironboundtech/TheDrinkDistrict/internal/handlers"
	"github.com/ironboundtech/TheDrinkDistrict/internal/repository/memory"
	"github.com/ironboundtech/TheDrinkDistrict/internal/repository/postgres"
	"go.uber.org/zap"
)

// storage набор репозиториев выбранного хранилища
type storage struct {
	users     domain.UserRepository
	wallet    domain.WalletLedger
	stock     domain.StockLedger
	catalog   domain.CatalogReader
	products  domain.ProductRepository
	courts    domain.CourtRepository
	purchases domain.PurchaseRepository
	bookings  domain.BookingRepository
	incidents domain.IncidentRepository
	tx        domain.Transactor
	pinger    handlers.Pinger
	close     func()
}

// initStorage подключает postgres или создает in-memory хранилище с демо каталогом
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		store := memory.NewStore()
		store.Seed()
		logger.Warn("using in-memory storage, data is lost on restart")
		return &storage{
			users:     store,
			wallet:    store,
			stock:     store,
			catalog:   store,
			products:  store,
			courts:    store,
			purchases: store,
			bookings:  store,
			incidents: store,
			tx:        store,
			pinger:    store,
			close:     func() {},
		}, nil

	case config.StoragePostgres:
		dbPool, err := initDatabase(ctx, cfg.DatabaseURI, cfg.DBMaxConns, logger)
		if err != nil {
			return nil, err
		}
		products := postgres.NewProductRepository(dbPool)
		return &storage{
			users:     postgres.NewUserRepository(dbPool),
			wallet:    postgres.NewWalletRepository(dbPool),
			stock:     products,
			catalog:   postgres.NewCatalog(dbPool),
			products:  products,
			courts:    postgres.NewCourtRepository(dbPool),
			purchases: postgres.NewPurchaseRepository(dbPool),
			bookings:  postgres.NewBookingRepository(dbPool),
			incidents: postgres.NewIncidentRepository(dbPool),
			tx:        postgres.NewTxManager(dbPool),
			pinger:    dbPool,
			close:     dbPool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
