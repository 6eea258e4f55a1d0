package memory

import (
	"context"
	"strings"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateUser создает пользователя с нулевым балансом
func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created *domain.User
	err := s.write(ctx, func(st *state) error {
		for _, u := range st.users {
			if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) {
				return domain.ErrUserExists
			}
		}
		u := copyUser(user)
		u.WalletBalance = decimal.Zero
		u.IsActive = true
		if u.Role == "" {
			u.Role = domain.RoleUser
		}
		u.CreatedAt = s.now()
		st.users[u.ID] = u
		created = copyUser(u)
		return nil
	})
	return created, err
}

// GetUserByLogin ищет пользователя по имени пользователя или email
func (s *Store) GetUserByLogin(_ context.Context, login string) (*domain.User, error) {
	var found *domain.User
	err := s.read(func(st *state) error {
		for _, u := range st.users {
			if u.Username == login || u.Email == login {
				found = copyUser(u)
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return found, err
}

// GetUserByID получает пользователя по ID
func (s *Store) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	var found *domain.User
	err := s.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		found = copyUser(u)
		return nil
	})
	return found, err
}

// UpdateRole меняет роль пользователя
func (s *Store) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return s.updateUser(ctx, id, func(u *domain.User) { u.Role = role })
}

// SetActive включает или отключает учетную запись
func (s *Store) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return s.updateUser(ctx, id, func(u *domain.User) { u.IsActive = active })
}

func (s *Store) updateUser(ctx context.Context, id string, mutate func(u *domain.User)) (*domain.User, error) {
	var updated *domain.User
	err := s.write(ctx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		mutate(u)
		updated = copyUser(u)
		return nil
	})
	return updated, err
}
