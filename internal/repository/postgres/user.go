package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, name, phone, password_hash, role, wallet_balance, is_active, created_at`

// UserRepository реализует репозиторий пользователей.
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Name, &user.Phone,
		&user.PasswordHash, &user.Role, &user.WalletBalance, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser создает нового пользователя с нулевым балансом
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := scanUser(executor(ctx, r.db).QueryRow(ctx,
		`INSERT INTO users (id, username, email, name, phone, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		user.ID, user.Username, user.Email, user.Name, user.Phone, user.PasswordHash, user.Role,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", user.Username, err)
	}

	return created, nil
}

// GetUserByLogin получает пользователя по имени пользователя или email
func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(executor(ctx, r.db).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`,
		login,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by login %q: %w", login, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(executor(ctx, r.db).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %s: %w", id, err)
	}

	return user, nil
}

// UpdateRole меняет роль пользователя
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	user, err := scanUser(executor(ctx, r.db).QueryRow(ctx,
		`UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns,
		id, role,
	))
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to update role of user %s: %w", id, err)
	}

	return user, nil
}

// SetActive включает или отключает учетную запись
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := scanUser(executor(ctx, r.db).QueryRow(ctx,
		`UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns,
		id, active,
	))
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to set active flag of user %s: %w", id, err)
	}

	return user, nil
}
