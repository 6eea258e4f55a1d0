package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository реализует журнал операций по кошельку.
// Изменение баланса и запись в журнал выполняются одним оператором.
type WalletRepository struct {
	db DBTX
}

// NewWalletRepository создает новый WalletRepository
func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

const debitQuery = `
WITH upd AS (
	UPDATE users SET wallet_balance = wallet_balance - $2, updated_at = NOW()
	WHERE id = $1 AND is_active AND wallet_balance >= $2
	RETURNING id, wallet_balance
)
INSERT INTO wallet_transactions (user_id, amount, kind, reference, balance_after)
SELECT id, -$2::numeric, $3, $4, wallet_balance FROM upd
RETURNING balance_after`

const creditQuery = `
WITH upd AS (
	UPDATE users SET wallet_balance = wallet_balance + $2, updated_at = NOW()
	WHERE id = $1
	RETURNING id, wallet_balance
)
INSERT INTO wallet_transactions (user_id, amount, kind, reference, balance_after)
SELECT id, $2::numeric, $3, $4, wallet_balance FROM upd
RETURNING balance_after`

// Debit списывает amount, только если баланс активного пользователя в момент
// обновления не меньше amount. Возвращает новый баланс.
func (r *WalletRepository) Debit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.TransactionKind, ref string) (decimal.Decimal, error) {
	db := executor(ctx, r.db)

	var balance decimal.Decimal
	err := db.QueryRow(ctx, debitQuery, userID, amount, kind, ref).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if isInvalidInput(err) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to debit user %s: %w", userID, err)
	}

	// Ни одна строка не обновлена: выясняем причину, не меняя данных
	var active bool
	err = db.QueryRow(ctx, `SELECT is_active FROM users WHERE id = $1`, userID).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to inspect user %s: %w", userID, err)
	}
	if !active {
		return decimal.Zero, domain.ErrUserNotFound
	}
	return decimal.Zero, domain.ErrInsufficientFunds
}

// Credit зачисляет amount без проверки баланса (пополнение, компенсация)
func (r *WalletRepository) Credit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.TransactionKind, ref string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := executor(ctx, r.db).QueryRow(ctx, creditQuery, userID, amount, kind, ref).Scan(&balance)
	if err != nil {
		if notFound(err) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to credit user %s: %w", userID, err)
	}
	return balance, nil
}

// GetBalance возвращает текущий баланс пользователя
func (r *WalletRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := executor(ctx, r.db).QueryRow(ctx,
		`SELECT wallet_balance FROM users WHERE id = $1`,
		userID,
	).Scan(&balance)
	if err != nil {
		if notFound(err) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to get balance for user %s: %w", userID, err)
	}
	return balance, nil
}

// GetTransactions возвращает журнал операций, новые записи первыми
func (r *WalletRepository) GetTransactions(ctx context.Context, userID string) ([]*domain.WalletTransaction, error) {
	rows, err := executor(ctx, r.db).Query(ctx,
		`SELECT id, user_id, amount, kind, reference, balance_after, created_at
		 FROM wallet_transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.WalletTransaction
	for rows.Next() {
		t := &domain.WalletTransaction{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Kind, &t.Reference, &t.BalanceAfter, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
