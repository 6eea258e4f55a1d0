package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"go.uber.org/zap"
)

// Режимы выполнения шагов заказа
const (
	TxModeNative = "native"
	TxModeSaga   = "saga"
)

// OrderRef идентифицирует заказ в логах и инцидентах
type OrderRef struct {
	Kind   string
	ID     string
	UserID string
}

func (r OrderRef) String() string {
	return r.Kind + ":" + r.ID
}

// Step шаг заказа и его компенсация.
// Undo равен nil, если шаг нечего откатывать.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
	// Compensation описывает Undo для фоновой сверки, если откат не удался
	Compensation *domain.Incident
}

// StepRunner выполняет шаги заказа по принципу "все или ничего"
type StepRunner interface {
	Run(ctx context.Context, ref OrderRef, steps []Step) error
}

// NewStepRunner выбирает реализацию по режиму хранилища
func NewStepRunner(mode string, tx domain.Transactor, incidents domain.IncidentRepository, logger *zap.Logger) (StepRunner, error) {
	switch mode {
	case TxModeNative:
		return NewTransactionalRunner(tx), nil
	case TxModeSaga:
		return NewSagaRunner(incidents, logger), nil
	default:
		return nil, fmt.Errorf("unknown tx mode %q", mode)
	}
}

// TransactionalRunner выполняет все шаги в одной транзакции хранилища.
// Компенсации не нужны: при ошибке хранилище откатывает все шаги.
type TransactionalRunner struct {
	tx domain.Transactor
}

// NewTransactionalRunner создает новый TransactionalRunner
func NewTransactionalRunner(tx domain.Transactor) *TransactionalRunner {
	return &TransactionalRunner{tx: tx}
}

// Run выполняет шаги внутри WithinTransaction
func (r *TransactionalRunner) Run(ctx context.Context, _ OrderRef, steps []Step) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, step := range steps {
			if err := step.Do(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// SagaRunner выполняет шаги по очереди, а при ошибке откатывает
// выполненные шаги в строго обратном порядке.
type SagaRunner struct {
	incidents domain.IncidentRepository
	logger    *zap.Logger
	newID     func() string
}

// NewSagaRunner создает новый SagaRunner
func NewSagaRunner(incidents domain.IncidentRepository, logger *zap.Logger) *SagaRunner {
	return &SagaRunner{incidents: incidents, logger: logger, newID: uuid.NewString}
}

// Run выполняет шаги и компенсирует их при первой ошибке
func (r *SagaRunner) Run(ctx context.Context, ref OrderRef, steps []Step) error {
	done := make([]Step, 0, len(steps))
	for _, step := range steps {
		if err := step.Do(ctx); err != nil {
			return r.compensate(ctx, ref, done, err)
		}
		done = append(done, step)
	}
	return nil
}

func (r *SagaRunner) compensate(ctx context.Context, ref OrderRef, done []Step, cause error) error {
	// Откат не прерывается отменой запроса клиента
	ctx = context.WithoutCancel(ctx)

	var failures []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Undo == nil {
			continue
		}
		if err := step.Undo(ctx); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", step.Name, err))
			r.reportIncident(ctx, ref, step, err)
		}
	}

	if len(failures) == 0 {
		return cause
	}
	return &domain.CompensationError{Ref: ref.String(), Cause: cause, Failures: failures}
}

func (r *SagaRunner) reportIncident(ctx context.Context, ref OrderRef, step Step, undoErr error) {
	fields := []zap.Field{
		zap.String("order_kind", ref.Kind),
		zap.String("order_ref", ref.ID),
		zap.String("step", step.Name),
		zap.String("user_id", ref.UserID),
		zap.Error(undoErr),
	}
	if c := step.Compensation; c != nil {
		switch c.Kind {
		case domain.IncidentKindStockRelease:
			fields = append(fields, zap.String("product_id", c.SubjectID), zap.Int("quantity", c.Quantity))
		case domain.IncidentKindWalletCredit:
			fields = append(fields, zap.Stringer("amount", c.Amount))
		}
	}
	r.logger.Error("durability incident: compensation failed", fields...)

	if step.Compensation == nil {
		return
	}
	incident := *step.Compensation
	incident.ID = r.newID()
	incident.OrderRef = ref.String()
	incident.LastError = undoErr.Error()
	incident.Status = domain.IncidentStatusOpen
	if err := r.incidents.CreateIncident(ctx, &incident); err != nil {
		r.logger.Error("failed to record compensation incident",
			zap.String("order_ref", ref.String()),
			zap.String("step", step.Name),
			zap.Error(err),
		)
	}
}
