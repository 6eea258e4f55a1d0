package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	domainmocks "github.com/ironboundtech/TheDrinkDistrict/internal/domain/mocks"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/jwt"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/password"
	passwordmocks "github.com/ironboundtech/TheDrinkDistrict/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, *domainmocks.UserRepositoryMock, *passwordmocks.HasherMock, *jwt.Manager) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, password.Policy{MinLength: 6}, jwtManager)
	svc.newID = func() string { return "user-1" }
	return svc, mockUserRepo, mockHasher, jwtManager
}

func TestAuthService_Register(t *testing.T) {
	svc, mockUserRepo, mockHasher, jwtManager := newTestAuthService(t)
	ctx := context.Background()

	input := domain.RegisterInput{
		Name:     "Somchai",
		Username: "somchai",
		Email:    "Somchai@Example.com",
		Password: "password123",
	}

	t.Run("Success", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hashed_password", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "user-1" && u.Email == "somchai@example.com" &&
				u.Role == domain.RoleUser && u.PasswordHash == "hashed_password"
		})).RunAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			return u, nil
		}).Once()

		user, token, err := svc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)

		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("Validation errors", func(t *testing.T) {
		tests := []struct {
			name  string
			field string
			edit  func(in *domain.RegisterInput)
		}{
			{"empty name", "name", func(in *domain.RegisterInput) { in.Name = " " }},
			{"empty username", "username", func(in *domain.RegisterInput) { in.Username = "" }},
			{"bad email", "email", func(in *domain.RegisterInput) { in.Email = "not-an-email" }},
			{"short password", "password", func(in *domain.RegisterInput) { in.Password = "123" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := input
				tt.edit(&in)

				user, token, err := svc.Register(ctx, in)
				require.ErrorIs(t, err, domain.ErrValidation)
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.field, vErr.Field)
				assert.Nil(t, user)
				assert.Empty(t, token)
			})
		}
	})

	t.Run("Hash password error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("", errors.New("hash error")).Once()

		_, token, err := svc.Register(ctx, input)
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("User already exists", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hashed_password", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domain.ErrUserExists).Once()

		_, token, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hashed_password", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, _, err := svc.Register(ctx, input)
		require.Error(t, err)
		assert.False(t, domain.IsClientError(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, mockUserRepo, mockHasher, _ := newTestAuthService(t)
	ctx := context.Background()

	user := &domain.User{ID: "user-1", Username: "somchai", PasswordHash: "hashed_password", Role: domain.RoleUser, IsActive: true}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "somchai").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed_password", "password123").Return(nil).Once()

		got, token, err := svc.Login(ctx, "somchai", "password123")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.NotEmpty(t, token)
	})

	t.Run("Empty login", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "", "password")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, token)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, _, err := svc.Login(ctx, "ghost", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "somchai").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed_password", "wrong").Return(password.ErrMismatch).Once()

		_, _, err := svc.Login(ctx, "somchai", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Inactive user", func(t *testing.T) {
		inactive := *user
		inactive.IsActive = false
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "somchai").Return(&inactive, nil).Once()
		mockHasher.EXPECT().Check("hashed_password", "password123").Return(nil).Once()

		_, _, err := svc.Login(ctx, "somchai", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "somchai").Return(nil, errors.New("db error")).Once()

		_, _, err := svc.Login(ctx, "somchai", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_UpdateRole(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	manager := &domain.User{ID: "manager-1", Role: domain.RoleManager}
	target := &domain.User{ID: "user-2", Role: domain.RoleUser}

	t.Run("Admin grants manager", func(t *testing.T) {
		updated := &domain.User{ID: "user-2", Role: domain.RoleManager}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, "user-2").Return(target, nil).Once()
		mockUserRepo.EXPECT().UpdateRole(mock.Anything, "user-2", domain.RoleManager).Return(updated, nil).Once()

		got, err := svc.UpdateRole(ctx, admin, "user-2", domain.RoleManager)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, got.Role)
	})

	t.Run("Manager cannot grant admin", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, manager, "user-2", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Manager cannot demote admin", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, "admin-1").Return(admin, nil).Once()

		_, err := svc.UpdateRole(ctx, manager, "admin-1", domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Regular user forbidden", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, target, "user-2", domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, admin, "user-2", domain.Role("owner"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.UpdateRole(ctx, admin, "ghost", domain.RoleStaff)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestAuthService_SetActive(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService(t)
	ctx := context.Background()

	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}

	t.Run("Deactivate user", func(t *testing.T) {
		target := &domain.User{ID: "user-2", Role: domain.RoleUser, IsActive: true}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, "user-2").Return(target, nil).Once()
		mockUserRepo.EXPECT().SetActive(mock.Anything, "user-2", false).
			Return(&domain.User{ID: "user-2", Role: domain.RoleUser}, nil).Once()

		got, err := svc.SetActive(ctx, admin, "user-2", false)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("Cannot deactivate self", func(t *testing.T) {
		_, err := svc.SetActive(ctx, admin, "admin-1", false)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Staff forbidden", func(t *testing.T) {
		_, err := svc.SetActive(ctx, &domain.User{ID: "staff-1", Role: domain.RoleStaff}, "user-2", true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
