package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	domainmocks "github.com/ironboundtech/TheDrinkDistrict/internal/domain/mocks"
	"github.com/ironboundtech/TheDrinkDistrict/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type poolMocks struct {
	incidents *domainmocks.IncidentRepositoryMock
	stock     *domainmocks.StockLedgerMock
	wallet    *domainmocks.WalletLedgerMock
	tx        *domainmocks.TransactorMock
}

func newTestPool(t *testing.T, cfg PoolConfig) (*Pool, poolMocks) {
	m := poolMocks{
		incidents: domainmocks.NewIncidentRepositoryMock(t),
		stock:     domainmocks.NewStockLedgerMock(t),
		wallet:    domainmocks.NewWalletLedgerMock(t),
		tx:        domainmocks.NewTransactorMock(t),
	}
	logger, _ := zap.NewDevelopment()
	return NewPool(cfg, m.incidents, m.stock, m.wallet, m.tx, logger), m
}

func passThrough(m poolMocks) {
	m.tx.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Once()
}

func TestPool_ProcessIncident_StockRelease(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{MaxAttempts: 3})
	ctx := context.Background()

	incident := &domain.Incident{ID: "i1", Kind: domain.IncidentKindStockRelease, SubjectID: "water", Quantity: 2, Status: domain.IncidentStatusOpen}
	m.incidents.EXPECT().GetIncident(mock.Anything, "i1").Return(incident, nil).Once()
	passThrough(m)
	m.stock.EXPECT().Release(mock.Anything, "water", 2).Return(nil).Once()
	m.incidents.EXPECT().ResolveIncident(mock.Anything, "i1").Return(nil).Once()

	pool.processIncident(ctx, "i1")
}

func TestPool_ProcessIncident_WalletCredit(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{MaxAttempts: 3})
	ctx := context.Background()

	amount := decimal.NewFromInt(150)
	incident := &domain.Incident{
		ID:        "i2",
		Kind:      domain.IncidentKindWalletCredit,
		OrderRef:  "booking:b1",
		SubjectID: "user-1",
		Amount:    amount,
		Status:    domain.IncidentStatusOpen,
	}
	m.incidents.EXPECT().GetIncident(mock.Anything, "i2").Return(incident, nil).Once()
	passThrough(m)
	m.wallet.EXPECT().Credit(mock.Anything, "user-1", amount, domain.TransactionKindCompensation, "booking:b1").
		Return(decimal.NewFromInt(150), nil).Once()
	m.incidents.EXPECT().ResolveIncident(mock.Anything, "i2").Return(nil).Once()

	pool.processIncident(ctx, "i2")
}

func TestPool_ProcessIncident_RetryFailure(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{MaxAttempts: 3})
	ctx := context.Background()

	incident := &domain.Incident{ID: "i1", Kind: domain.IncidentKindStockRelease, SubjectID: "water", Quantity: 2, Attempts: 0, Status: domain.IncidentStatusOpen}
	m.incidents.EXPECT().GetIncident(mock.Anything, "i1").Return(incident, nil).Once()
	passThrough(m)
	m.stock.EXPECT().Release(mock.Anything, "water", 2).Return(errors.New("timeout")).Once()
	m.incidents.EXPECT().RecordIncidentFailure(mock.Anything, "i1", "timeout", domain.IncidentStatusOpen).Return(nil).Once()

	pool.processIncident(ctx, "i1")
}

func TestPool_ProcessIncident_EscalatesToManual(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{MaxAttempts: 3})
	ctx := context.Background()

	incident := &domain.Incident{ID: "i1", Kind: domain.IncidentKindStockRelease, SubjectID: "water", Quantity: 2, Attempts: 2, Status: domain.IncidentStatusOpen}
	m.incidents.EXPECT().GetIncident(mock.Anything, "i1").Return(incident, nil).Once()
	passThrough(m)
	m.stock.EXPECT().Release(mock.Anything, "water", 2).Return(domain.ErrProductNotFound).Once()
	m.incidents.EXPECT().RecordIncidentFailure(mock.Anything, "i1", domain.ErrProductNotFound.Error(), domain.IncidentStatusManual).Return(nil).Once()

	pool.processIncident(ctx, "i1")
}

func TestPool_ProcessIncident_AlreadyResolved(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{})

	m.incidents.EXPECT().GetIncident(mock.Anything, "i1").
		Return(&domain.Incident{ID: "i1", Status: domain.IncidentStatusResolved}, nil).Once()

	pool.processIncident(context.Background(), "i1")
}

func TestPool_ProcessIncident_ResolvedElsewhere(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{MaxAttempts: 3})

	incident := &domain.Incident{ID: "i1", Kind: domain.IncidentKindStockRelease, SubjectID: "water", Quantity: 2, Status: domain.IncidentStatusOpen}
	m.incidents.EXPECT().GetIncident(mock.Anything, "i1").Return(incident, nil).Once()
	passThrough(m)
	m.stock.EXPECT().Release(mock.Anything, "water", 2).Return(nil).Once()
	m.incidents.EXPECT().ResolveIncident(mock.Anything, "i1").
		Return(fmt.Errorf("%w: i1 is resolved", domain.ErrIncidentNotOpen)).Once()

	// RecordIncidentFailure не ожидается: инцидент закрыт другим экземпляром
	pool.processIncident(context.Background(), "i1")
}

func TestPool_ProcessIncident_FailureAfterResolvedElsewhere(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{MaxAttempts: 3})

	incident := &domain.Incident{ID: "i1", Kind: domain.IncidentKindStockRelease, SubjectID: "water", Quantity: 2, Status: domain.IncidentStatusOpen}
	m.incidents.EXPECT().GetIncident(mock.Anything, "i1").Return(incident, nil).Once()
	passThrough(m)
	m.stock.EXPECT().Release(mock.Anything, "water", 2).Return(errors.New("timeout")).Once()
	m.incidents.EXPECT().RecordIncidentFailure(mock.Anything, "i1", "timeout", domain.IncidentStatusOpen).
		Return(domain.ErrIncidentNotOpen).Once()

	pool.processIncident(context.Background(), "i1")
}

// gatedIncidents задерживает GetIncident, пока его не вызовут все участники
type gatedIncidents struct {
	*memory.Store
	gate *sync.WaitGroup
}

func (g gatedIncidents) GetIncident(ctx context.Context, id string) (*domain.Incident, error) {
	incident, err := g.Store.GetIncident(ctx, id)
	g.gate.Done()
	g.gate.Wait()
	return incident, err
}

func TestPool_ProcessIncident_ConcurrentPoolsApplyOnce(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	ctx := context.Background()

	require.NoError(t, store.Reserve(ctx, "water", 3))
	require.NoError(t, store.CreateIncident(ctx, &domain.Incident{
		ID:        "i1",
		Kind:      domain.IncidentKindStockRelease,
		OrderRef:  "purchase:o1",
		SubjectID: "water",
		Quantity:  3,
		Status:    domain.IncidentStatusOpen,
	}))

	// Оба экземпляра видят инцидент открытым до того, как любой из них его применит
	var gate sync.WaitGroup
	gate.Add(2)
	incidents := gatedIncidents{Store: store, gate: &gate}
	first := NewPool(PoolConfig{MaxAttempts: 3}, incidents, store, store, store, zap.NewNop())
	second := NewPool(PoolConfig{MaxAttempts: 3}, incidents, store, store, store, zap.NewNop())

	var wg sync.WaitGroup
	for _, p := range []*Pool{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.processIncident(ctx, "i1")
		}()
	}
	wg.Wait()

	product, err := store.GetProduct(ctx, "water")
	require.NoError(t, err)
	assert.Equal(t, 100, product.Stock)

	incident, err := store.GetIncident(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, domain.IncidentStatusResolved, incident.Status)
	assert.Equal(t, 1, incident.Attempts)
	assert.Empty(t, incident.LastError)
}

func TestPool_ScanOpenIncidents(t *testing.T) {
	pool, m := newTestPool(t, PoolConfig{QueueSize: 1, BatchSize: 10})
	ctx := context.Background()

	m.incidents.EXPECT().ListOpenIncidents(mock.Anything, 10).Return([]*domain.Incident{
		{ID: "i1"}, {ID: "i2"},
	}, nil).Twice()

	pool.scanOpenIncidents(ctx)
	require.Len(t, pool.queue, 1)

	// Инцидент в очереди не ставится повторно
	pool.scanOpenIncidents(ctx)
	assert.Len(t, pool.queue, 1)
	assert.Equal(t, "i1", <-pool.queue)
}

func TestPool_Run_ReconcilesMemoryStore(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	ctx := context.Background()

	require.NoError(t, store.Reserve(ctx, "water", 3))
	require.NoError(t, store.CreateIncident(ctx, &domain.Incident{
		ID:        "i1",
		Kind:      domain.IncidentKindStockRelease,
		OrderRef:  "purchase:o1",
		SubjectID: "water",
		Quantity:  3,
		Status:    domain.IncidentStatusOpen,
	}))

	pool := NewPool(PoolConfig{Workers: 2, ScanInterval: 10 * time.Millisecond, MaxAttempts: 3}, store, store, store, store, zap.NewNop())

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- pool.Run(runCtx) }()

	require.Eventually(t, func() bool {
		incident, err := store.GetIncident(ctx, "i1")
		return err == nil && incident.Status == domain.IncidentStatusResolved
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	product, err := store.GetProduct(ctx, "water")
	require.NoError(t, err)
	assert.Equal(t, 100, product.Stock)
}
