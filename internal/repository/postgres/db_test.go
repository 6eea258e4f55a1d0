package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_WithinTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tm := NewTxManager(mock)
	products := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Commit on success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE products SET stock = stock - `).
			WithArgs("cola", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
			return products.Reserve(ctx, "cola", 1)
		})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE products SET stock = stock - `).
			WithArgs("cola", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectRollback()

		err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := products.Reserve(ctx, "cola", 1); err != nil {
				return err
			}
			return domain.ErrInsufficientFunds
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		called := false
		err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.Error(t, err)
		assert.False(t, called)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nested call joins outer transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
			return tm.WithinTransaction(ctx, func(ctx context.Context) error {
				return nil
			})
		})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
