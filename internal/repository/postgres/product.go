package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, category, price, stock, is_active, created_at, updated_at`

// ProductRepository реализует каталог товаров и учет остатков
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProduct добавляет товар в каталог
func (r *ProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created, err := scanProduct(executor(ctx, r.db).QueryRow(ctx,
		`INSERT INTO products (id, name, category, price, stock, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+productColumns,
		product.ID, product.Name, product.Category, product.Price, product.Stock, product.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError("id", "product already exists")
		}
		if isCheckViolation(err) {
			return nil, domain.NewValidationError("product", "price must be positive and stock non-negative")
		}
		return nil, fmt.Errorf("repository: failed to create product %q: %w", product.ID, err)
	}
	return created, nil
}

// UpdateProduct обновляет карточку товара целиком
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	updated, err := scanProduct(executor(ctx, r.db).QueryRow(ctx,
		`UPDATE products
		 SET name = $2, category = $3, price = $4, stock = $5, is_active = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+productColumns,
		product.ID, product.Name, product.Category, product.Price, product.Stock, product.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		if isCheckViolation(err) {
			return nil, domain.NewValidationError("product", "price must be positive and stock non-negative")
		}
		return nil, fmt.Errorf("repository: failed to update product %q: %w", product.ID, err)
	}
	return updated, nil
}

// GetProduct получает товар по ID, в том числе неактивный
func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := scanProduct(executor(ctx, r.db).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %q: %w", id, err)
	}
	return p, nil
}

// ListProducts возвращает товары каталога по имени
func (r *ProductRepository) ListProducts(ctx context.Context, includeInactive bool) ([]*domain.Product, error) {
	rows, err := executor(ctx, r.db).Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE is_active OR $1 ORDER BY name, id`,
		includeInactive,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}
	return products, nil
}

// Reserve списывает quantity с остатка одним условным обновлением.
// Достаточность остатка проверяется в момент записи, а не заранее.
func (r *ProductRepository) Reserve(ctx context.Context, productID string, quantity int) error {
	db := executor(ctx, r.db)

	tag, err := db.Exec(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = NOW()
		 WHERE id = $1 AND is_active AND stock >= $2`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to reserve product %q: %w", productID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Диагностика причины отказа, результат не используется для записи
	var (
		name   string
		stock  int
		active bool
	)
	err = db.QueryRow(ctx, `SELECT name, stock, is_active FROM products WHERE id = $1`, productID).
		Scan(&name, &stock, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("repository: failed to inspect product %q: %w", productID, err)
	}
	if !active {
		return domain.ErrProductNotFound
	}
	return &domain.InsufficientStockError{ProductID: productID, Name: name, Requested: quantity, Available: stock}
}

// Release возвращает quantity на остаток (компенсация Reserve)
func (r *ProductRepository) Release(ctx context.Context, productID string, quantity int) error {
	tag, err := executor(ctx, r.db).Exec(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = NOW() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to release product %q: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
