package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRepository_CreatePurchase(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepository(mock)
	ctx := context.Background()

	purchase := &domain.Purchase{
		ID:     "p1",
		UserID: "u1",
		Items: []domain.PurchaseItem{
			{ProductID: "cola", Quantity: 2, Price: decimal.RequireFromString("10.50")},
			{ProductID: "chips", Quantity: 1, Price: decimal.NewFromInt(9)},
		},
		TotalAmount: decimal.NewFromInt(30),
		Status:      domain.PurchaseStatusCompleted,
	}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO purchases`).
			WithArgs("p1", "u1", purchase.TotalAmount, domain.PurchaseStatusCompleted,
				[]string{"cola", "chips"}, []int32{2, 1}, []string{"10.5", "9"}).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

		require.NoError(t, repo.CreatePurchase(ctx, purchase))
		assert.Equal(t, now, purchase.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO purchases`).
			WithArgs("p1", "u1", purchase.TotalAmount, domain.PurchaseStatusCompleted,
				[]string{"cola", "chips"}, []int32{2, 1}, []string{"10.5", "9"}).
			WillReturnError(errors.New("disk full"))

		err := repo.CreatePurchase(ctx, purchase)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPurchaseRepository_GetPurchase(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "user_id", "total_amount", "status", "created_at", "items"}

	t.Run("Success", func(t *testing.T) {
		items := []byte(`[{"productId":"cola","quantity":2,"price":10.50},{"productId":"chips","quantity":1,"price":9}]`)
		mock.ExpectQuery(`FROM purchases p`).
			WithArgs("p1").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("p1", "u1", decimal.NewFromInt(30), domain.PurchaseStatusCompleted, time.Now(), items))

		p, err := repo.GetPurchase(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, p.Items, 2)
		assert.Equal(t, "cola", p.Items[0].ProductID)
		assert.True(t, p.Items[0].Price.Equal(decimal.RequireFromString("10.5")))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM purchases p`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetPurchase(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
