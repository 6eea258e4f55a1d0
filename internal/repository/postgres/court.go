package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
)

const courtColumns = `id, name, venue, address, price_per_hour, status, created_at, updated_at`

// CourtRepository реализует каталог кортов
type CourtRepository struct {
	db DBTX
}

// NewCourtRepository создает новый CourtRepository
func NewCourtRepository(db DBTX) *CourtRepository {
	return &CourtRepository{db: db}
}

func scanCourt(row pgx.Row) (*domain.Court, error) {
	c := &domain.Court{}
	if err := row.Scan(&c.ID, &c.Name, &c.Venue, &c.Address, &c.PricePerHour, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCourt добавляет корт
func (r *CourtRepository) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	created, err := scanCourt(executor(ctx, r.db).QueryRow(ctx,
		`INSERT INTO courts (id, name, venue, address, price_per_hour, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+courtColumns,
		court.ID, court.Name, court.Venue, court.Address, court.PricePerHour, court.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError("id", "court already exists")
		}
		if isCheckViolation(err) {
			return nil, domain.NewValidationError("court", "price must be positive and status open or closed")
		}
		return nil, fmt.Errorf("repository: failed to create court %q: %w", court.ID, err)
	}
	return created, nil
}

// UpdateCourt обновляет корт целиком
func (r *CourtRepository) UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	updated, err := scanCourt(executor(ctx, r.db).QueryRow(ctx,
		`UPDATE courts
		 SET name = $2, venue = $3, address = $4, price_per_hour = $5, status = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+courtColumns,
		court.ID, court.Name, court.Venue, court.Address, court.PricePerHour, court.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		if isCheckViolation(err) {
			return nil, domain.NewValidationError("court", "price must be positive and status open or closed")
		}
		return nil, fmt.Errorf("repository: failed to update court %q: %w", court.ID, err)
	}
	return updated, nil
}

// GetCourt получает корт по ID
func (r *CourtRepository) GetCourt(ctx context.Context, id string) (*domain.Court, error) {
	c, err := scanCourt(executor(ctx, r.db).QueryRow(ctx,
		`SELECT `+courtColumns+` FROM courts WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("repository: failed to get court %q: %w", id, err)
	}
	return c, nil
}

// ListCourts возвращает корты, при onlyOpen только открытые
func (r *CourtRepository) ListCourts(ctx context.Context, onlyOpen bool) ([]*domain.Court, error) {
	rows, err := executor(ctx, r.db).Query(ctx,
		`SELECT `+courtColumns+` FROM courts WHERE NOT $1 OR status = 'open' ORDER BY name, id`,
		onlyOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query courts: %w", err)
	}
	defer rows.Close()

	var courts []*domain.Court
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan court: %w", err)
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating courts: %w", err)
	}
	return courts, nil
}
