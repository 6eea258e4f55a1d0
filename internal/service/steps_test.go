package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	domainmocks "github.com/ironboundtech/TheDrinkDistrict/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// recordingStep шаг, который пишет свое имя в журнал при выполнении и откате
func recordingStep(name string, journal *[]string, doErr, undoErr error) Step {
	return Step{
		Name: name,
		Do: func(context.Context) error {
			*journal = append(*journal, "do:"+name)
			return doErr
		},
		Undo: func(context.Context) error {
			*journal = append(*journal, "undo:"+name)
			return undoErr
		},
	}
}

func TestNewStepRunner(t *testing.T) {
	tx := domainmocks.NewTransactorMock(t)
	incidents := domainmocks.NewIncidentRepositoryMock(t)

	runner, err := NewStepRunner(TxModeNative, tx, incidents, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &TransactionalRunner{}, runner)

	runner, err = NewStepRunner(TxModeSaga, tx, incidents, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &SagaRunner{}, runner)

	_, err = NewStepRunner("two-phase", tx, incidents, zap.NewNop())
	assert.Error(t, err)
}

func TestTransactionalRunner_Run(t *testing.T) {
	ref := OrderRef{Kind: "purchase", ID: "order-1", UserID: "user-1"}

	t.Run("Runs steps in one transaction", func(t *testing.T) {
		tx := domainmocks.NewTransactorMock(t)
		tx.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			}).Once()

		var journal []string
		err := NewTransactionalRunner(tx).Run(context.Background(), ref, []Step{
			recordingStep("a", &journal, nil, nil),
			recordingStep("b", &journal, nil, nil),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"do:a", "do:b"}, journal)
	})

	t.Run("Stops at first failure without compensation", func(t *testing.T) {
		tx := domainmocks.NewTransactorMock(t)
		tx.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			}).Once()

		var journal []string
		err := NewTransactionalRunner(tx).Run(context.Background(), ref, []Step{
			recordingStep("a", &journal, nil, nil),
			recordingStep("b", &journal, domain.ErrInsufficientFunds, nil),
			recordingStep("c", &journal, nil, nil),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, []string{"do:a", "do:b"}, journal)
	})
}

func TestSagaRunner_Run(t *testing.T) {
	ref := OrderRef{Kind: "purchase", ID: "order-1", UserID: "user-1"}
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		runner := NewSagaRunner(domainmocks.NewIncidentRepositoryMock(t), zap.NewNop())

		var journal []string
		err := runner.Run(ctx, ref, []Step{
			recordingStep("a", &journal, nil, nil),
			recordingStep("b", &journal, nil, nil),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"do:a", "do:b"}, journal)
	})

	t.Run("Compensates in reverse order", func(t *testing.T) {
		runner := NewSagaRunner(domainmocks.NewIncidentRepositoryMock(t), zap.NewNop())

		var journal []string
		err := runner.Run(ctx, ref, []Step{
			recordingStep("reserve_a", &journal, nil, nil),
			recordingStep("reserve_b", &journal, nil, nil),
			recordingStep("debit", &journal, domain.ErrInsufficientFunds, nil),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.NotErrorIs(t, err, domain.ErrCompensationFailed)
		assert.Equal(t, []string{
			"do:reserve_a", "do:reserve_b", "do:debit",
			"undo:reserve_b", "undo:reserve_a",
		}, journal)
	})

	t.Run("Skips steps without undo", func(t *testing.T) {
		runner := NewSagaRunner(domainmocks.NewIncidentRepositoryMock(t), zap.NewNop())

		var journal []string
		noUndo := recordingStep("persist", &journal, nil, nil)
		noUndo.Undo = nil
		err := runner.Run(ctx, ref, []Step{
			recordingStep("debit", &journal, nil, nil),
			noUndo,
			recordingStep("notify", &journal, errors.New("boom"), nil),
		})
		assert.Error(t, err)
		assert.Equal(t, []string{"do:debit", "do:persist", "do:notify", "undo:debit"}, journal)
	})

	t.Run("Undo runs after request cancellation", func(t *testing.T) {
		runner := NewSagaRunner(domainmocks.NewIncidentRepositoryMock(t), zap.NewNop())
		cancelCtx, cancel := context.WithCancel(ctx)

		var undoCtxErr error
		err := runner.Run(cancelCtx, ref, []Step{
			{
				Name: "reserve",
				Do:   func(context.Context) error { return nil },
				Undo: func(ctx context.Context) error {
					undoCtxErr = ctx.Err()
					return nil
				},
			},
			{
				Name: "debit",
				Do: func(context.Context) error {
					cancel()
					return context.Canceled
				},
			},
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoError(t, undoCtxErr)
	})

	t.Run("Failed undo records incident", func(t *testing.T) {
		incidents := domainmocks.NewIncidentRepositoryMock(t)
		core, logs := observer.New(zapcore.ErrorLevel)
		runner := NewSagaRunner(incidents, zap.New(core))
		runner.newID = func() string { return "incident-1" }

		undoErr := errors.New("connection reset")
		incidents.EXPECT().CreateIncident(mock.Anything, &domain.Incident{
			ID:        "incident-1",
			Kind:      domain.IncidentKindStockRelease,
			OrderRef:  "purchase:order-1",
			SubjectID: "water",
			Quantity:  2,
			LastError: "connection reset",
			Status:    domain.IncidentStatusOpen,
		}).Return(nil).Once()

		reserve := recordingStep("reserve_water", new([]string), nil, undoErr)
		reserve.Compensation = &domain.Incident{
			Kind:      domain.IncidentKindStockRelease,
			SubjectID: "water",
			Quantity:  2,
		}

		err := runner.Run(ctx, ref, []Step{
			reserve,
			recordingStep("debit", new([]string), domain.ErrInsufficientFunds, nil),
		})

		var compErr *domain.CompensationError
		require.ErrorAs(t, err, &compErr)
		assert.ErrorIs(t, err, domain.ErrCompensationFailed)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, "purchase:order-1", compErr.Ref)
		require.Len(t, compErr.Failures, 1)
		assert.ErrorIs(t, compErr.Failures[0], undoErr)
		assert.False(t, domain.IsClientError(err))

		entries := logs.FilterMessage("durability incident: compensation failed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "purchase", fields["order_kind"])
		assert.Equal(t, "order-1", fields["order_ref"])
		assert.Equal(t, "reserve_water", fields["step"])
		assert.Equal(t, "user-1", fields["user_id"])
		assert.Equal(t, "water", fields["product_id"])
	})

	t.Run("Incident store failure is logged", func(t *testing.T) {
		incidents := domainmocks.NewIncidentRepositoryMock(t)
		core, logs := observer.New(zapcore.ErrorLevel)
		runner := NewSagaRunner(incidents, zap.New(core))

		incidents.EXPECT().CreateIncident(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		debit := recordingStep("debit_wallet", new([]string), nil, errors.New("credit failed"))
		debit.Compensation = &domain.Incident{
			Kind:      domain.IncidentKindWalletCredit,
			SubjectID: "user-1",
			Amount:    decimal.NewFromInt(100),
		}

		err := runner.Run(ctx, ref, []Step{
			debit,
			recordingStep("persist", new([]string), errors.New("insert failed"), nil),
		})
		assert.ErrorIs(t, err, domain.ErrCompensationFailed)
		assert.Equal(t, 1, logs.FilterMessage("durability incident: compensation failed").Len())
		assert.Equal(t, 1, logs.FilterMessage("failed to record compensation incident").Len())
	})
}
