package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/jwt"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	passwordPolicy password.Policy
	jwtManager     *jwt.Manager
	newID          func() string
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	passwordPolicy password.Policy,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		passwordPolicy: passwordPolicy,
		jwtManager:     jwtManager,
		newID:          uuid.NewString,
	}
}

// Register регистрирует нового пользователя с пустым кошельком
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, string, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	// Валидация входных данных
	if in.Name == "" {
		return nil, "", domain.NewValidationError("name", "is required")
	}
	if in.Username == "" {
		return nil, "", domain.NewValidationError("username", "is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, "", domain.NewValidationError("email", "must be a valid email address")
	}
	if err := s.passwordPolicy.Validate(in.Password); err != nil {
		return nil, "", domain.NewValidationError("password", err.Error())
	}

	// Хеширование пароля
	hash, err := s.passwordHasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("auth service: failed to hash password for user %q: %w", in.Username, err)
	}

	// Создание пользователя
	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		ID:           s.newID(),
		Username:     in.Username,
		Email:        in.Email,
		Name:         in.Name,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("auth service: failed to register user %q: %w", in.Username, err)
	}

	token, err := s.jwtManager.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return user, token, nil
}

// Login аутентифицирует пользователя по имени пользователя или email
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (*domain.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || userPassword == "" {
		return nil, "", domain.NewValidationError("credentials", "login and password are required")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("auth service: failed to check password for user %s: %w", user.ID, err)
	}
	if !user.IsActive {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return user, token, nil
}

// UpdateRole меняет роль пользователя.
// Менеджер и администратор не могут выдать роль выше своей
// и не могут менять роль тех, кто старше их.
func (s *AuthService) UpdateRole(ctx context.Context, actor *domain.User, userID string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}
	if actor == nil || !actor.Role.AtLeast(domain.RoleManager) || role.Outranks(actor.Role) {
		return nil, domain.ErrForbidden
	}

	target, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to get user %s: %w", userID, err)
	}
	if target.Role.Outranks(actor.Role) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to update role for user %s: %w", userID, err)
	}
	return updated, nil
}

// SetActive блокирует или разблокирует пользователя
func (s *AuthService) SetActive(ctx context.Context, actor *domain.User, userID string, active bool) (*domain.User, error) {
	if actor == nil || !actor.Role.AtLeast(domain.RoleManager) {
		return nil, domain.ErrForbidden
	}
	if actor.ID == userID && !active {
		return nil, domain.NewValidationError("isActive", "cannot deactivate own account")
	}

	target, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to get user %s: %w", userID, err)
	}
	if target.Role.Outranks(actor.Role) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.userRepo.SetActive(ctx, userID, active)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to update status for user %s: %w", userID, err)
	}
	return updated, nil
}
