// Package worker повторяет неудавшиеся компенсации в фоне.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"go.uber.org/zap"
)

// PoolConfig параметры пула сверки
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	MaxAttempts  int
	BatchSize    int
}

// Pool представляет пул воркеров, повторяющих неудавшиеся компенсации.
// Повтор выполняется не более одного раза за проход, но не гарантирует
// ровно однократного применения при сбое между откатом и отметкой.
type Pool struct {
	cfg       PoolConfig
	queue     chan string
	incidents domain.IncidentRepository
	stock     domain.StockLedger
	wallet    domain.WalletLedger
	tx        domain.Transactor
	logger    *zap.Logger
	wg        sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	incidents domain.IncidentRepository,
	stock domain.StockLedger,
	wallet domain.WalletLedger,
	tx domain.Transactor,
	logger *zap.Logger,
) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = 30 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = cfg.QueueSize
	}
	return &Pool{
		cfg:       cfg,
		queue:     make(chan string, cfg.QueueSize),
		incidents: incidents,
		stock:     stock,
		wallet:    wallet,
		tx:        tx,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
}

// Run запускает воркеры и сканер и блокируется до отмены ctx
func (p *Pool) Run(ctx context.Context) error {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)

	p.wg.Wait()
	return nil
}

// worker обрабатывает инциденты из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("reconcile worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("reconcile worker stopping", zap.Int("worker_id", id))
			return
		case incidentID := <-p.queue:
			p.processIncident(ctx, incidentID)
			p.done(incidentID)
		}
	}
}

// scanner периодически загружает открытые инциденты
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("reconcile scanner stopping")
			return
		case <-ticker.C:
			p.scanOpenIncidents(ctx)
		}
	}
}

// scanOpenIncidents отправляет открытые инциденты в очередь
func (p *Pool) scanOpenIncidents(ctx context.Context) {
	incidents, err := p.incidents.ListOpenIncidents(ctx, p.cfg.BatchSize)
	if err != nil {
		p.logger.Error("failed to list open incidents", zap.Error(err))
		return
	}

	for _, incident := range incidents {
		if !p.claim(incident.ID) {
			continue
		}
		select {
		case p.queue <- incident.ID:
		case <-ctx.Done():
			p.done(incident.ID)
			return
		default:
			// Очередь заполнена, инцидент будет взят следующим проходом
			p.done(incident.ID)
			p.logger.Warn("reconcile queue is full, skipping incident", zap.String("incident_id", incident.ID))
		}
	}
}

// claim не дает поставить в очередь инцидент, который уже обрабатывается
func (p *Pool) claim(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.inFlight[id]; busy {
		return false
	}
	p.inFlight[id] = struct{}{}
	return true
}

func (p *Pool) done(id string) {
	p.mu.Lock()
	delete(p.inFlight, id)
	p.mu.Unlock()
}

// processIncident повторяет компенсацию одного инцидента
func (p *Pool) processIncident(ctx context.Context, id string) {
	incident, err := p.incidents.GetIncident(ctx, id)
	if err != nil {
		p.logger.Error("failed to load incident", zap.String("incident_id", id), zap.Error(err))
		return
	}
	if incident.Status != domain.IncidentStatusOpen {
		return
	}

	// Компенсация и закрытие инцидента фиксируются вместе. Закрытие условно:
	// если другой экземпляр успел закрыть инцидент, транзакция откатывается.
	err = p.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := p.apply(ctx, incident); err != nil {
			return err
		}
		return p.incidents.ResolveIncident(ctx, incident.ID)
	})
	switch {
	case err == nil:
		p.logger.Info("compensation reconciled",
			zap.String("incident_id", incident.ID),
			zap.String("kind", string(incident.Kind)),
			zap.String("order_ref", incident.OrderRef),
		)
		return
	case errors.Is(err, domain.ErrIncidentNotOpen):
		p.logger.Debug("incident already reconciled elsewhere", zap.String("incident_id", incident.ID))
		return
	}

	status := domain.IncidentStatusOpen
	if incident.Attempts+1 >= p.cfg.MaxAttempts {
		status = domain.IncidentStatusManual
	}
	if recErr := p.incidents.RecordIncidentFailure(ctx, incident.ID, err.Error(), status); recErr != nil {
		if errors.Is(recErr, domain.ErrIncidentNotOpen) {
			p.logger.Debug("incident already reconciled elsewhere", zap.String("incident_id", incident.ID))
			return
		}
		p.logger.Error("failed to record incident failure", zap.String("incident_id", incident.ID), zap.Error(recErr))
	}

	if status == domain.IncidentStatusManual {
		p.logger.Error("durability incident: manual reconciliation required",
			zap.String("incident_id", incident.ID),
			zap.String("kind", string(incident.Kind)),
			zap.String("order_ref", incident.OrderRef),
			zap.String("subject_id", incident.SubjectID),
			zap.Int("attempts", incident.Attempts+1),
			zap.Error(err),
		)
		return
	}
	p.logger.Warn("compensation retry failed",
		zap.String("incident_id", incident.ID),
		zap.Int("attempts", incident.Attempts+1),
		zap.Error(err),
	)
}

func (p *Pool) apply(ctx context.Context, incident *domain.Incident) error {
	switch incident.Kind {
	case domain.IncidentKindStockRelease:
		return p.stock.Release(ctx, incident.SubjectID, incident.Quantity)
	case domain.IncidentKindWalletCredit:
		_, err := p.wallet.Credit(ctx, incident.SubjectID, incident.Amount, domain.TransactionKindCompensation, incident.OrderRef)
		return err
	default:
		return fmt.Errorf("unknown incident kind %q", incident.Kind)
	}
}
