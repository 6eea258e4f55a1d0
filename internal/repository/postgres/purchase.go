package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
)

// PurchaseRepository реализует репозиторий покупок.
// Покупка и ее позиции пишутся одним оператором.
type PurchaseRepository struct {
	db DBTX
}

// NewPurchaseRepository создает новый PurchaseRepository
func NewPurchaseRepository(db DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

const insertPurchaseQuery = `
WITH p AS (
	INSERT INTO purchases (id, user_id, total_amount, status)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
), items AS (
	INSERT INTO purchase_items (purchase_id, position, product_id, quantity, price)
	SELECT p.id, t.position, t.product_id, t.quantity, t.price
	FROM p, unnest($5::text[], $6::int[], $7::numeric[]) WITH ORDINALITY AS t(product_id, quantity, price, position)
)
SELECT created_at FROM p`

const selectPurchaseQuery = `
SELECT p.id, p.user_id, p.total_amount, p.status, p.created_at,
	COALESCE(json_agg(json_build_object(
		'productId', i.product_id, 'quantity', i.quantity, 'price', i.price
	) ORDER BY i.position) FILTER (WHERE i.purchase_id IS NOT NULL), '[]')
FROM purchases p
LEFT JOIN purchase_items i ON i.purchase_id = p.id`

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	p := &domain.Purchase{}
	var items []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.TotalAmount, &p.Status, &p.CreatedAt, &items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, fmt.Errorf("failed to decode purchase items: %w", err)
	}
	return p, nil
}

// CreatePurchase сохраняет неизменяемую запись о покупке
func (r *PurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	productIDs := make([]string, len(purchase.Items))
	quantities := make([]int32, len(purchase.Items))
	prices := make([]string, len(purchase.Items))
	for i, item := range purchase.Items {
		productIDs[i] = item.ProductID
		quantities[i] = int32(item.Quantity)
		prices[i] = item.Price.String()
	}

	err := executor(ctx, r.db).QueryRow(ctx, insertPurchaseQuery,
		purchase.ID, purchase.UserID, purchase.TotalAmount, purchase.Status,
		productIDs, quantities, prices,
	).Scan(&purchase.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("repository: failed to create purchase %s: %w", purchase.ID, err)
	}
	return nil
}

// GetPurchase получает покупку с позициями по ID
func (r *PurchaseRepository) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	p, err := scanPurchase(executor(ctx, r.db).QueryRow(ctx,
		selectPurchaseQuery+` WHERE p.id = $1 GROUP BY p.id`,
		id,
	))
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("repository: failed to get purchase %s: %w", id, err)
	}
	return p, nil
}

// ListPurchasesByUser возвращает покупки пользователя, новые первыми
func (r *PurchaseRepository) ListPurchasesByUser(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	return r.list(ctx,
		selectPurchaseQuery+` WHERE p.user_id = $1 GROUP BY p.id ORDER BY p.created_at DESC`,
		userID,
	)
}

// ListPurchases возвращает все покупки, новые первыми
func (r *PurchaseRepository) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	return r.list(ctx, selectPurchaseQuery+` GROUP BY p.id ORDER BY p.created_at DESC`)
}

func (r *PurchaseRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Purchase, error) {
	rows, err := executor(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		if isInvalidInput(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating purchases: %w", err)
	}
	return purchases, nil
}
