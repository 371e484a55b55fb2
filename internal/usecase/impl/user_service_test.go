package impl

import (
	"context"
	"testing"
	"time"

	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/repository"
	"bid4service/internal/domain/service"
	mockRepo "bid4service/internal/mocks/repository"
	mockService "bid4service/internal/mocks/service"
	"bid4service/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func createTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceFixtures) {
	t.Helper()

	f := &userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockService.NewMockPasswordHasher(t),
		tokenService:     mockService.NewMockTokenService(t),
	}

	srv := NewUserService(UserServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Logger:           newDiscardLogger(),
	})

	return srv, f
}

func (f *userServiceFixtures) passthroughTx() {
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
	f.repoFactory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo).Maybe()
	f.repoFactory.EXPECT().RefreshTokenRepo().Return(f.refreshTokenRepo).Maybe()
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates user and password authentication", func(t *testing.T) {
		srv, f := createTestUserService(t)

		newUserID := uuid.New()
		f.hasher.EXPECT().Hash("secret-password").Return("hashed-password", nil)
		f.passthroughTx()
		f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "new@example.com" && user.Role == entity.RoleCustomer
		})).Run(func(_ context.Context, user *entity.User) {
			user.ID = newUserID
		}).Return(nil)
		f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == newUserID &&
				auth.Provider == entity.ProviderTypePassword &&
				auth.ProviderUserID == "new@example.com" &&
				auth.PasswordHash == "hashed-password"
		})).Return(nil)

		output, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "secret-password",
		})

		require.NoError(t, err)
		assert.Equal(t, newUserID, output.User.ID)
	})

	t.Run("provider role is preserved", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.hasher.EXPECT().Hash(mock.Anything).Return("hashed-password", nil)
		f.passthroughTx()
		f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleProvider
		})).Return(nil)
		f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).Return(nil)

		_, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Name:     "Pro",
			Email:    "pro@example.com",
			Password: "secret-password",
			Role:     entity.RoleProvider,
		})

		require.NoError(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		srv, _ := createTestUserService(t)

		_, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Name:     "X",
			Email:    "x@example.com",
			Password: "secret-password",
			Role:     entity.Role("admin"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate email surfaces conflict", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.hasher.EXPECT().Hash(mock.Anything).Return("hashed-password", nil)
		f.passthroughTx()
		f.userRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "email taken"))

		_, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Name:     "Dup",
			Email:    "dup@example.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypePassword,
		ProviderUserID: "user@example.com",
		PasswordHash:   "hashed-password",
	}
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleCustomer}

	t.Run("valid credentials mint a session", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.passthroughTx()
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypePassword, "user@example.com").
			Return(authRecord, nil)
		f.hasher.EXPECT().Check("secret-password", "hashed-password").Return(true)
		f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
		f.tokenService.EXPECT().GenerateTokens(user).Return("access-jwt", "refresh-jwt", nil)
		f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
		f.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
		f.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "hashed-refresh"
		})).Return(nil)

		output, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "user@example.com",
			Password: "secret-password",
		})

		require.NoError(t, err)
		assert.Equal(t, "access-jwt", output.AccessToken)
		assert.Equal(t, "refresh-jwt", output.RefreshToken)
		assert.Equal(t, userID, output.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.passthroughTx()
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypePassword, "user@example.com").
			Return(authRecord, nil)
		f.hasher.EXPECT().Check("wrong-password", "hashed-password").Return(false)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "user@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email fails identically to a wrong password", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.passthroughTx()
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypePassword, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleCustomer}

	t.Run("issues a new access token", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("refresh-jwt").
			Return(&service.Claims{UserID: userID, TokenType: "refresh"}, nil)
		f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
		f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hashed-refresh").
			Return(&entity.RefreshToken{UserID: userID, TokenHash: "hashed-refresh"}, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
		f.tokenService.EXPECT().GenerateTokens(user).Return("new-access-jwt", "unused-refresh", nil)

		output, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
			RefreshToken: "refresh-jwt",
		})

		require.NoError(t, err)
		assert.Equal(t, "new-access-jwt", output.AccessToken)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("garbage").
			Return(nil, errors.New("token is malformed"))

		_, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
			RefreshToken: "garbage",
		})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("refresh-jwt").
			Return(&service.Claims{UserID: userID, TokenType: "refresh"}, nil)
		f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
		f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hashed-refresh").
			Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
			RefreshToken: "refresh-jwt",
		})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestUserService_Logout(t *testing.T) {
	t.Run("deletes the refresh token", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("refresh-jwt").
			Return(&service.Claims{TokenType: "refresh"}, nil)
		f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
		f.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "hashed-refresh").Return(nil)

		err := srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh-jwt"})

		require.NoError(t, err)
	})

	t.Run("logging out twice is idempotent", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("refresh-jwt").
			Return(&service.Claims{TokenType: "refresh"}, nil)
		f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
		f.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "hashed-refresh").
			Return(repository.ErrRefreshTokenNotFound)

		err := srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh-jwt"})

		require.NoError(t, err)
	})

	t.Run("an invalid token is still deleted by hash", func(t *testing.T) {
		srv, f := createTestUserService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("expired-jwt").
			Return(nil, errors.New("token is expired"))
		f.tokenService.EXPECT().HashToken("expired-jwt").Return("hashed-expired")
		f.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "hashed-expired").Return(nil)

		err := srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "expired-jwt"})

		require.NoError(t, err)
	})
}
