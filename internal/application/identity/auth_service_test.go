package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/identity"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/infrastructure/auth"
	"github.com/soultrip/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "soultrip-test",
		MaxRefreshCount:        10,
	})
}

func newTestAuthService(userRepo identity.UserRepository) *AuthService {
	return NewAuthService(
		userRepo,
		newTestJWTService(),
		auth.NewInMemoryTokenBlacklist(),
		DefaultAuthServiceConfig(),
		zap.NewNop(),
	)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates active account and returns tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", mock.Anything, "wanderer").Return(false, nil)
		userRepo.On("ExistsByEmail", mock.Anything, "wanderer@example.com").Return(false, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		svc := newTestAuthService(userRepo)
		result, err := svc.Register(context.Background(), RegisterInput{
			Username: "Wanderer",
			Email:    "Wanderer@Example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "wanderer", result.User.Username)
		assert.Equal(t, "wanderer@example.com", result.User.Email)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", mock.Anything, "wanderer").Return(true, nil)

		svc := newTestAuthService(userRepo)
		result, err := svc.Register(context.Background(), RegisterInput{
			Username: "wanderer",
			Email:    "wanderer@example.com",
			Password: "password123",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)
	})

	t.Run("rejects registered email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", mock.Anything, "wanderer").Return(false, nil)
		userRepo.On("ExistsByEmail", mock.Anything, "wanderer@example.com").Return(true, nil)

		svc := newTestAuthService(userRepo)
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "wanderer",
			Email:    "wanderer@example.com",
			Password: "password123",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	})

	t.Run("rejects weak password without touching the repository", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newTestAuthService(userRepo)

		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "wanderer",
			Email:    "wanderer@example.com",
			Password: "short",
		})

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_Login(t *testing.T) {
	newActiveUser := func(t *testing.T) *identity.User {
		t.Helper()
		user, err := identity.NewUser("wanderer", "wanderer@example.com", "password123")
		require.NoError(t, err)
		return user
	}

	t.Run("returns tokens for valid credentials", func(t *testing.T) {
		user := newActiveUser(t)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "wanderer").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		svc := newTestAuthService(userRepo)
		result, err := svc.Login(context.Background(), LoginInput{
			Username: "wanderer",
			Password: "password123",
			IP:       "10.0.0.1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, "10.0.0.1", user.LastLoginIP)
	})

	t.Run("rejects unknown user with generic error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

		svc := newTestAuthService(userRepo)
		_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "password123"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("records failed attempt on wrong password", func(t *testing.T) {
		user := newActiveUser(t)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "wanderer").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		svc := newTestAuthService(userRepo)
		_, err := svc.Login(context.Background(), LoginInput{Username: "wanderer", Password: "wrongpass1"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("locks account after max failed attempts", func(t *testing.T) {
		user := newActiveUser(t)
		for i := 0; i < 4; i++ {
			user.RecordLoginFailure(5, 15*time.Minute)
		}

		userRepo := new(MockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "wanderer").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		svc := newTestAuthService(userRepo)
		_, err := svc.Login(context.Background(), LoginInput{Username: "wanderer", Password: "wrongpass1"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
		assert.True(t, user.IsLocked())
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		user := newActiveUser(t)
		user.Deactivate()

		userRepo := new(MockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "wanderer").Return(user, nil)

		svc := newTestAuthService(userRepo)
		_, err := svc.Login(context.Background(), LoginInput{Username: "wanderer", Password: "password123"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("issues new pair for valid refresh token", func(t *testing.T) {
		user, err := identity.NewUser("wanderer", "wanderer@example.com", "password123")
		require.NoError(t, err)

		jwtService := newTestJWTService()
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Username)
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist(), DefaultAuthServiceConfig(), zap.NewNop())
		result, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		svc := newTestAuthService(new(MockUserRepository))
		_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "not-a-token"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("blacklists the presented token", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		svc := NewAuthService(new(MockUserRepository), newTestJWTService(), blacklist, DefaultAuthServiceConfig(), zap.NewNop())

		err := svc.Logout(context.Background(), LogoutInput{
			UserID:   uuid.New(),
			TokenJTI: "some-jti",
			TokenTTL: time.Minute,
		})

		require.NoError(t, err)
		revoked, err := blacklist.IsBlacklisted(context.Background(), "some-jti")
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("changes password when old one matches", func(t *testing.T) {
		user, err := identity.NewUser("wanderer", "wanderer@example.com", "password123")
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		svc := newTestAuthService(userRepo)
		err = svc.ChangePassword(context.Background(), ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "password123",
			NewPassword: "newpassword456",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("newpassword456"))
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		user, err := identity.NewUser("wanderer", "wanderer@example.com", "password123")
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := newTestAuthService(userRepo)
		err = svc.ChangePassword(context.Background(), ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "wrongpass1",
			NewPassword: "newpassword456",
		})

		assert.Error(t, err)
		assert.True(t, user.VerifyPassword("password123"))
	})
}
