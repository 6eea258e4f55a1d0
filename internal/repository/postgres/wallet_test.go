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

func TestWalletRepository_Debit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()
	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	amount := decimal.RequireFromString("30.00")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - `).
			WithArgs(userID, amount, domain.TransactionKindPurchase, "order-1").
			WillReturnRows(pgxmock.NewRows([]string{"balance_after"}).AddRow(decimal.RequireFromString("70.00")))

		balance, err := repo.Debit(ctx, userID, amount, domain.TransactionKindPurchase, "order-1")
		require.NoError(t, err)
		assert.Equal(t, "70", balance.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - `).
			WithArgs(userID, amount, domain.TransactionKindPurchase, "order-2").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`SELECT is_active FROM users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"is_active"}).AddRow(true))

		balance, err := repo.Debit(ctx, userID, amount, domain.TransactionKindPurchase, "order-2")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.True(t, balance.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inactive user is not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - `).
			WithArgs(userID, amount, domain.TransactionKindBooking, "booking-1").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`SELECT is_active FROM users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"is_active"}).AddRow(false))

		_, err := repo.Debit(ctx, userID, amount, domain.TransactionKindBooking, "booking-1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing user", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - `).
			WithArgs(userID, amount, domain.TransactionKindPurchase, "order-3").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`SELECT is_active FROM users`).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Debit(ctx, userID, amount, domain.TransactionKindPurchase, "order-3")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - `).
			WithArgs(userID, amount, domain.TransactionKindPurchase, "order-4").
			WillReturnError(errors.New("connection lost"))

		_, err := repo.Debit(ctx, userID, amount, domain.TransactionKindPurchase, "order-4")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInsufficientFunds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalletRepository_Credit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance \+ `).
			WithArgs("u1", amount, domain.TransactionKindTopUp, "promptpay").
			WillReturnRows(pgxmock.NewRows([]string{"balance_after"}).AddRow(decimal.NewFromInt(100)))

		balance, err := repo.Credit(ctx, "u1", amount, domain.TransactionKindTopUp, "promptpay")
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(100)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing user", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance \+ `).
			WithArgs("u2", amount, domain.TransactionKindCompensation, "order-1").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Credit(ctx, "u2", amount, domain.TransactionKindCompensation, "order-1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalletRepository_GetTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "reference", "balance_after", "created_at"}).
		AddRow(int64(2), "u1", decimal.NewFromInt(-30), domain.TransactionKindPurchase, "order-1", decimal.NewFromInt(70), now).
		AddRow(int64(1), "u1", decimal.NewFromInt(100), domain.TransactionKindTopUp, "promptpay", decimal.NewFromInt(100), now.Add(-time.Hour))

	mock.ExpectQuery(`FROM wallet_transactions`).
		WithArgs("u1").
		WillReturnRows(rows)

	transactions, err := repo.GetTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, domain.TransactionKindPurchase, transactions[0].Kind)
	assert.True(t, transactions[0].Amount.IsNegative())
	assert.Equal(t, int64(1), transactions[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)

	mock.ExpectQuery(`SELECT wallet_balance FROM users`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetBalance(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
