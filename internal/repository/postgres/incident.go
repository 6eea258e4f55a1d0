package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
)

const incidentColumns = `id, kind, order_ref, subject_id, quantity, amount, last_error, attempts, status, created_at, updated_at`

// IncidentRepository хранит неудачные компенсации
type IncidentRepository struct {
	db DBTX
}

// NewIncidentRepository создает новый IncidentRepository
func NewIncidentRepository(db DBTX) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func scanIncident(row pgx.Row) (*domain.Incident, error) {
	i := &domain.Incident{}
	err := row.Scan(&i.ID, &i.Kind, &i.OrderRef, &i.SubjectID, &i.Quantity, &i.Amount,
		&i.LastError, &i.Attempts, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// CreateIncident сохраняет инцидент. Сага вызывает его вне транзакции,
// поэтому запись переживает откат заказа.
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *domain.Incident) error {
	err := executor(ctx, r.db).QueryRow(ctx,
		`INSERT INTO compensation_incidents (id, kind, order_ref, subject_id, quantity, amount, last_error, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		incident.ID, incident.Kind, incident.OrderRef, incident.SubjectID,
		incident.Quantity, incident.Amount, incident.LastError, incident.Status,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create incident for %s: %w", incident.OrderRef, err)
	}
	return nil
}

// ListOpenIncidents возвращает открытые инциденты, старые первыми
func (r *IncidentRepository) ListOpenIncidents(ctx context.Context, limit int) ([]*domain.Incident, error) {
	rows, err := executor(ctx, r.db).Query(ctx,
		`SELECT `+incidentColumns+` FROM compensation_incidents
		 WHERE status = 'open'
		 ORDER BY created_at
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query open incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*domain.Incident
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan incident: %w", err)
		}
		incidents = append(incidents, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating incidents: %w", err)
	}
	return incidents, nil
}

// GetIncident получает инцидент по ID
func (r *IncidentRepository) GetIncident(ctx context.Context, id string) (*domain.Incident, error) {
	i, err := scanIncident(executor(ctx, r.db).QueryRow(ctx,
		`SELECT `+incidentColumns+` FROM compensation_incidents WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get incident %s: %w", id, err)
	}
	return i, nil
}

// ResolveIncident помечает открытый инцидент закрытым. Для уже закрытого
// или переданного вручную инцидента возвращает ErrIncidentNotOpen.
func (r *IncidentRepository) ResolveIncident(ctx context.Context, id string) error {
	db := executor(ctx, r.db)
	tag, err := db.Exec(ctx,
		`UPDATE compensation_incidents
		 SET status = 'resolved', attempts = attempts + 1, last_error = '', updated_at = NOW()
		 WHERE id = $1 AND status = 'open'`,
		id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to resolve incident %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return r.notOpen(ctx, db, id)
	}
	return nil
}

// RecordIncidentFailure увеличивает счетчик попыток и выставляет статус
// открытому инциденту
func (r *IncidentRepository) RecordIncidentFailure(ctx context.Context, id, lastError string, status domain.IncidentStatus) error {
	db := executor(ctx, r.db)
	tag, err := db.Exec(ctx,
		`UPDATE compensation_incidents
		 SET attempts = attempts + 1, last_error = $2, status = $3, updated_at = NOW()
		 WHERE id = $1 AND status = 'open'`,
		id, lastError, status,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record failure of incident %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return r.notOpen(ctx, db, id)
	}
	return nil
}

// notOpen различает отсутствующий инцидент и инцидент в другом статусе
func (r *IncidentRepository) notOpen(ctx context.Context, db DBTX, id string) error {
	var status domain.IncidentStatus
	err := db.QueryRow(ctx, `SELECT status FROM compensation_incidents WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrIncidentNotFound
		}
		return fmt.Errorf("repository: failed to get status of incident %s: %w", id, err)
	}
	return fmt.Errorf("%w: %s is %s", domain.ErrIncidentNotOpen, id, status)
}
