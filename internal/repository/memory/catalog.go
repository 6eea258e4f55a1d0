package memory

import (
	"context"
	"sort"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

// CreateProduct добавляет товар
func (s *Store) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var created *domain.Product
	err := s.write(ctx, func(st *state) error {
		if _, exists := st.products[product.ID]; exists {
			return domain.NewValidationError("id", "product already exists")
		}
		p := copyProduct(product)
		p.CreatedAt, p.UpdatedAt = s.now(), s.now()
		st.products[p.ID] = p
		created = copyProduct(p)
		return nil
	})
	return created, err
}

// UpdateProduct обновляет товар целиком
func (s *Store) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var updated *domain.Product
	err := s.write(ctx, func(st *state) error {
		existing, ok := st.products[product.ID]
		if !ok {
			return domain.ErrProductNotFound
		}
		p := copyProduct(product)
		p.CreatedAt, p.UpdatedAt = existing.CreatedAt, s.now()
		st.products[p.ID] = p
		updated = copyProduct(p)
		return nil
	})
	return updated, err
}

// GetProduct получает товар по ID
func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	var found *domain.Product
	err := s.read(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		found = copyProduct(p)
		return nil
	})
	return found, err
}

// ListProducts возвращает товары по имени
func (s *Store) ListProducts(_ context.Context, includeInactive bool) ([]*domain.Product, error) {
	var result []*domain.Product
	err := s.read(func(st *state) error {
		for _, p := range st.products {
			if p.IsActive || includeInactive {
				result = append(result, copyProduct(p))
			}
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, err
}

// Reserve уменьшает остаток, если его хватает в момент записи
func (s *Store) Reserve(ctx context.Context, productID string, quantity int) error {
	return s.write(ctx, func(st *state) error {
		p, ok := st.products[productID]
		if !ok || !p.IsActive {
			return domain.ErrProductNotFound
		}
		if p.Stock < quantity {
			return &domain.InsufficientStockError{
				ProductID: productID, Name: p.Name, Requested: quantity, Available: p.Stock,
			}
		}
		p.Stock -= quantity
		p.UpdatedAt = s.now()
		return nil
	})
}

// Release возвращает quantity на остаток
func (s *Store) Release(ctx context.Context, productID string, quantity int) error {
	return s.write(ctx, func(st *state) error {
		p, ok := st.products[productID]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.Stock += quantity
		p.UpdatedAt = s.now()
		return nil
	})
}

// CreateCourt добавляет корт
func (s *Store) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	var created *domain.Court
	err := s.write(ctx, func(st *state) error {
		if _, exists := st.courts[court.ID]; exists {
			return domain.NewValidationError("id", "court already exists")
		}
		c := copyCourt(court)
		c.CreatedAt, c.UpdatedAt = s.now(), s.now()
		st.courts[c.ID] = c
		created = copyCourt(c)
		return nil
	})
	return created, err
}

// UpdateCourt обновляет корт целиком
func (s *Store) UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	var updated *domain.Court
	err := s.write(ctx, func(st *state) error {
		existing, ok := st.courts[court.ID]
		if !ok {
			return domain.ErrCourtNotFound
		}
		c := copyCourt(court)
		c.CreatedAt, c.UpdatedAt = existing.CreatedAt, s.now()
		st.courts[c.ID] = c
		updated = copyCourt(c)
		return nil
	})
	return updated, err
}

// GetCourt получает корт по ID
func (s *Store) GetCourt(_ context.Context, id string) (*domain.Court, error) {
	var found *domain.Court
	err := s.read(func(st *state) error {
		c, ok := st.courts[id]
		if !ok {
			return domain.ErrCourtNotFound
		}
		found = copyCourt(c)
		return nil
	})
	return found, err
}

// ListCourts возвращает корты, при onlyOpen только открытые
func (s *Store) ListCourts(_ context.Context, onlyOpen bool) ([]*domain.Court, error) {
	var result []*domain.Court
	err := s.read(func(st *state) error {
		for _, c := range st.courts {
			if !onlyOpen || c.IsOpen() {
				result = append(result, copyCourt(c))
			}
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, err
}
