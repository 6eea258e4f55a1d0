package memory

import (
	"context"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

// CreatePurchase сохраняет неизменяемую запись о покупке
func (s *Store) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	return s.write(ctx, func(st *state) error {
		for _, item := range purchase.Items {
			if _, ok := st.products[item.ProductID]; !ok {
				return domain.ErrProductNotFound
			}
		}
		purchase.CreatedAt = s.now()
		st.purchases[purchase.ID] = copyPurchase(purchase)
		return nil
	})
}

// GetPurchase получает покупку по ID
func (s *Store) GetPurchase(_ context.Context, id string) (*domain.Purchase, error) {
	var found *domain.Purchase
	err := s.read(func(st *state) error {
		p, ok := st.purchases[id]
		if !ok {
			return domain.ErrPurchaseNotFound
		}
		found = copyPurchase(p)
		return nil
	})
	return found, err
}

// ListPurchasesByUser возвращает покупки пользователя, новые первыми
func (s *Store) ListPurchasesByUser(_ context.Context, userID string) ([]*domain.Purchase, error) {
	return s.listPurchases(func(p *domain.Purchase) bool { return p.UserID == userID })
}

// ListPurchases возвращает все покупки, новые первыми
func (s *Store) ListPurchases(_ context.Context) ([]*domain.Purchase, error) {
	return s.listPurchases(func(*domain.Purchase) bool { return true })
}

func (s *Store) listPurchases(match func(p *domain.Purchase) bool) ([]*domain.Purchase, error) {
	var result []*domain.Purchase
	err := s.read(func(st *state) error {
		for _, p := range st.purchases {
			if match(p) {
				result = append(result, copyPurchase(p))
			}
		}
		return nil
	})
	newestFirst(result,
		func(p *domain.Purchase) time.Time { return p.CreatedAt },
		func(p *domain.Purchase) string { return p.ID })
	return result, err
}
