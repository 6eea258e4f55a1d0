package memory

import (
	"context"
	"sort"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

// CreateIncident сохраняет инцидент компенсации
func (s *Store) CreateIncident(ctx context.Context, incident *domain.Incident) error {
	return s.write(ctx, func(st *state) error {
		now := s.now()
		incident.CreatedAt, incident.UpdatedAt = now, now
		st.incidents[incident.ID] = copyIncident(incident)
		return nil
	})
}

// ListOpenIncidents возвращает открытые инциденты, старые первыми
func (s *Store) ListOpenIncidents(_ context.Context, limit int) ([]*domain.Incident, error) {
	var result []*domain.Incident
	err := s.read(func(st *state) error {
		for _, i := range st.incidents {
			if i.Status == domain.IncidentStatusOpen {
				result = append(result, copyIncident(i))
			}
		}
		return nil
	})
	sort.Slice(result, func(a, b int) bool {
		return result[a].CreatedAt.Before(result[b].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, err
}

// GetIncident получает инцидент по ID
func (s *Store) GetIncident(_ context.Context, id string) (*domain.Incident, error) {
	var found *domain.Incident
	err := s.read(func(st *state) error {
		i, ok := st.incidents[id]
		if !ok {
			return domain.ErrIncidentNotFound
		}
		found = copyIncident(i)
		return nil
	})
	return found, err
}

// ResolveIncident помечает открытый инцидент закрытым
func (s *Store) ResolveIncident(ctx context.Context, id string) error {
	return s.write(ctx, func(st *state) error {
		i, ok := st.incidents[id]
		if !ok {
			return domain.ErrIncidentNotFound
		}
		if i.Status != domain.IncidentStatusOpen {
			return domain.ErrIncidentNotOpen
		}
		i.Attempts++
		i.LastError = ""
		i.Status = domain.IncidentStatusResolved
		i.UpdatedAt = s.now()
		return nil
	})
}

// RecordIncidentFailure увеличивает счетчик попыток и выставляет статус
func (s *Store) RecordIncidentFailure(ctx context.Context, id, lastError string, status domain.IncidentStatus) error {
	return s.write(ctx, func(st *state) error {
		i, ok := st.incidents[id]
		if !ok {
			return domain.ErrIncidentNotFound
		}
		if i.Status != domain.IncidentStatusOpen {
			return domain.ErrIncidentNotOpen
		}
		i.Attempts++
		i.LastError = lastError
		i.Status = status
		i.UpdatedAt = s.now()
		return nil
	})
}
