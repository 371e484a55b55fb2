package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
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

type oauthServiceFixtures struct {
	registry         *mockService.MockProviderRegistry
	stateStore       *mockService.MockStateStore
	exchanger        *mockService.MockTokenExchanger
	profileFetcher   *mockService.MockProfileFetcher
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	tokenService     *mockService.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestOAuthService(t *testing.T) (usecase.OAuthUsecase, *oauthServiceFixtures) {
	t.Helper()

	f := &oauthServiceFixtures{
		registry:         mockService.NewMockProviderRegistry(t),
		stateStore:       mockService.NewMockStateStore(t),
		exchanger:        mockService.NewMockTokenExchanger(t),
		profileFetcher:   mockService.NewMockProfileFetcher(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		tokenService:     mockService.NewMockTokenService(t),
	}

	srv := NewOAuthService(OAuthServiceParams{
		Registry:       f.registry,
		StateStore:     f.stateStore,
		Exchanger:      f.exchanger,
		ProfileFetcher: f.profileFetcher,
		TxManager:      f.txManager,
		AuthRepo:       f.authRepo,
		TokenService:   f.tokenService,
		Logger:         newDiscardLogger(),
	})

	return srv, f
}

// passthroughTx makes the transaction manager run the given function against
// the mock repository factory, as a real transaction would.
func (f *oauthServiceFixtures) passthroughTx() {
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
	f.repoFactory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo).Maybe()
	f.repoFactory.EXPECT().RefreshTokenRepo().Return(f.refreshTokenRepo).Maybe()
}

func googleConfig() *service.ProviderConfig {
	return &service.ProviderConfig{
		Provider:    entity.ProviderTypeGoogle,
		AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL:    "https://oauth2.googleapis.com/token",
		UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		ClientID:    "client-id",
		RedirectURL: "https://api.example.com/auth/google/callback",
		Scopes:      []string{"openid", "email", "profile"},
	}
}

func googleProfile() *service.ExternalProfile {
	return &service.ExternalProfile{
		ExternalID:    "google-user-1",
		Email:         "user@example.com",
		DisplayName:   "Test User",
		AvatarURL:     "https://example.com/avatar.png",
		EmailVerified: true,
	}
}

func providerTokens() *service.ProviderTokens {
	return &service.ProviderTokens{
		AccessToken:  "provider-access",
		RefreshToken: "provider-refresh",
		ExpiresIn:    3600,
	}
}

func TestOAuthService_Providers(t *testing.T) {
	srv, f := createTestOAuthService(t)

	f.registry.EXPECT().Statuses().Return([]service.ProviderState{
		{Provider: entity.ProviderTypeGoogle, Enabled: true},
		{Provider: entity.ProviderTypeFacebook, Enabled: false},
	})

	statuses := srv.Providers(context.Background())

	require.Len(t, statuses, 2)
	assert.Equal(t, entity.ProviderTypeGoogle, statuses[0].Provider)
	assert.True(t, statuses[0].Enabled)
	assert.Equal(t, entity.ProviderTypeFacebook, statuses[1].Provider)
	assert.False(t, statuses[1].Enabled)
}

func TestOAuthService_AuthorizationURL(t *testing.T) {
	t.Run("issues state and builds provider URL", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
		f.stateStore.EXPECT().Issue(mock.Anything, entity.ProviderTypeGoogle, "/dashboard").
			Return("state-token", nil)

		authURL, err := srv.AuthorizationURL(context.Background(), "google", "/dashboard")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(authURL, "https://accounts.google.com/o/oauth2/v2/auth?"))
		assert.Contains(t, authURL, "state=state-token")
		assert.Contains(t, authURL, "response_type=code")
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.registry.EXPECT().Lookup("myspace").Return(nil, domainerrors.ErrInvalidProvider)

		_, err := srv.AuthorizationURL(context.Background(), "myspace", "")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidProvider)
	})

	t.Run("rejects absolute return URL", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)

		_, err := srv.AuthorizationURL(context.Background(), "google", "https://evil.example.com")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects protocol-relative return URL", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)

		_, err := srv.AuthorizationURL(context.Background(), "google", "//evil.example.com")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("empty return URL is allowed", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
		f.stateStore.EXPECT().Issue(mock.Anything, entity.ProviderTypeGoogle, "").
			Return("state-token", nil)

		_, err := srv.AuthorizationURL(context.Background(), "google", "")

		require.NoError(t, err)
	})
}

func TestOAuthService_HandleCallback_ProviderError(t *testing.T) {
	srv, _ := createTestOAuthService(t)

	_, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider:         "google",
		ErrorCode:        "access_denied",
		ErrorDescription: "user cancelled",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamProvider)
}

func TestOAuthService_HandleCallback_MissingParams(t *testing.T) {
	srv, _ := createTestOAuthService(t)

	_, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "",
		State:    "state-token",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingParams)
}

func TestOAuthService_HandleCallback_StateProviderMismatch(t *testing.T) {
	srv, f := createTestOAuthService(t)

	f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(&entity.CorrelationState{Provider: entity.ProviderTypeGitHub, IssuedAt: time.Now()}, nil)

	_, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "auth-code",
		State:    "state-token",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestOAuthService_HandleCallback_ConsumedState(t *testing.T) {
	srv, f := createTestOAuthService(t)

	f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(nil, domainerrors.ErrInvalidState)

	_, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "auth-code",
		State:    "state-token",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestOAuthService_HandleCallback_ExistingLink(t *testing.T) {
	srv, f := createTestOAuthService(t)

	userID := uuid.New()
	existingUser := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleCustomer}
	existingAuth := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: "google-user-1",
	}

	f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(&entity.CorrelationState{Provider: entity.ProviderTypeGoogle, ReturnURL: "/dashboard", IssuedAt: time.Now()}, nil)
	f.exchanger.EXPECT().Exchange(mock.Anything, mock.Anything, "auth-code", "state-token").
		Return(providerTokens(), nil)
	f.profileFetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(googleProfile(), nil)

	f.passthroughTx()
	f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
		Return(existingAuth, nil)
	f.authRepo.EXPECT().UpdateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.AccessToken == "provider-access" && auth.Email == "user@example.com"
	})).Return(nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(existingUser, nil)

	f.tokenService.EXPECT().GenerateTokens(existingUser).Return("access-jwt", "refresh-jwt", nil)
	f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
	f.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "hashed-refresh"
	})).Return(nil)

	output, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "auth-code",
		State:    "state-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-jwt", output.AccessToken)
	assert.Equal(t, "refresh-jwt", output.RefreshToken)
	assert.False(t, output.IsNewUser)
	assert.Equal(t, "/dashboard", output.ReturnURL)
	assert.Equal(t, userID, output.User.ID)
}

func TestOAuthService_HandleCallback_EmailMatchAttachesLink(t *testing.T) {
	srv, f := createTestOAuthService(t)

	userID := uuid.New()
	existingUser := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleCustomer}

	f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(&entity.CorrelationState{Provider: entity.ProviderTypeGoogle, IssuedAt: time.Now()}, nil)
	f.exchanger.EXPECT().Exchange(mock.Anything, mock.Anything, "auth-code", "state-token").
		Return(providerTokens(), nil)
	f.profileFetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(googleProfile(), nil)

	f.passthroughTx()
	f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
		Return(nil, repository.ErrAuthNotFound)
	f.userRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(existingUser, nil)
	f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.UserID == userID && auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-user-1"
	})).Return(nil)

	f.tokenService.EXPECT().GenerateTokens(existingUser).Return("access-jwt", "refresh-jwt", nil)
	f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
	f.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)

	output, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "auth-code",
		State:    "state-token",
	})

	require.NoError(t, err)
	assert.False(t, output.IsNewUser)
	assert.Equal(t, userID, output.User.ID)
}

func TestOAuthService_HandleCallback_CreatesNewUser(t *testing.T) {
	srv, f := createTestOAuthService(t)

	f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(&entity.CorrelationState{Provider: entity.ProviderTypeGoogle, IssuedAt: time.Now()}, nil)
	f.exchanger.EXPECT().Exchange(mock.Anything, mock.Anything, "auth-code", "state-token").
		Return(providerTokens(), nil)
	f.profileFetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(googleProfile(), nil)

	f.passthroughTx()
	f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
		Return(nil, repository.ErrAuthNotFound)
	f.userRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").
		Return(nil, repository.ErrUserNotFound)
	newUserID := uuid.New()
	f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "user@example.com" && user.Role == entity.RoleCustomer && user.EmailVerified
	})).Run(func(_ context.Context, user *entity.User) {
		user.ID = newUserID
	}).Return(nil)
	f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.UserID == newUserID
	})).Return(nil)

	f.tokenService.EXPECT().GenerateTokens(mock.Anything).Return("access-jwt", "refresh-jwt", nil)
	f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
	f.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)

	output, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "auth-code",
		State:    "state-token",
	})

	require.NoError(t, err)
	assert.True(t, output.IsNewUser)
	assert.Equal(t, newUserID, output.User.ID)
}

func TestOAuthService_HandleCallback_MissingEmail(t *testing.T) {
	srv, f := createTestOAuthService(t)

	profile := googleProfile()
	profile.Email = ""

	f.registry.EXPECT().Lookup("twitter").Return(&service.ProviderConfig{
		Provider: entity.ProviderTypeTwitter,
		AuthURL:  "https://x.com/i/oauth2/authorize",
		UsePKCE:  true,
	}, nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(&entity.CorrelationState{Provider: entity.ProviderTypeTwitter, IssuedAt: time.Now()}, nil)
	f.exchanger.EXPECT().Exchange(mock.Anything, mock.Anything, "auth-code", "state-token").
		Return(providerTokens(), nil)
	f.profileFetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(profile, nil)

	f.passthroughTx()
	f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeTwitter, "google-user-1").
		Return(nil, repository.ErrAuthNotFound)

	_, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "twitter",
		Code:     "auth-code",
		State:    "state-token",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingEmail)
}

func TestOAuthService_HandleCallback_RetriesLostRace(t *testing.T) {
	srv, f := createTestOAuthService(t)

	userID := uuid.New()
	existingUser := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleCustomer}
	existingAuth := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: "google-user-1",
	}

	f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
	f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
		Return(&entity.CorrelationState{Provider: entity.ProviderTypeGoogle, IssuedAt: time.Now()}, nil)
	f.exchanger.EXPECT().Exchange(mock.Anything, mock.Anything, "auth-code", "state-token").
		Return(providerTokens(), nil)
	f.profileFetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(googleProfile(), nil)

	f.passthroughTx()
	// First resolve loses the duplicate-key race against a concurrent callback;
	// the retry finds the link the winner created.
	f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
		Return(nil, repository.ErrAuthNotFound).Once()
	f.userRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").
		Return(existingUser, nil).Once()
	f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrAlreadyLinked, "external identity already linked")).Once()

	f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
		Return(existingAuth, nil).Once()
	f.authRepo.EXPECT().UpdateAuthentication(mock.Anything, mock.Anything).Return(nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(existingUser, nil)

	f.tokenService.EXPECT().GenerateTokens(existingUser).Return("access-jwt", "refresh-jwt", nil)
	f.tokenService.EXPECT().HashToken("refresh-jwt").Return("hashed-refresh")
	f.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)

	output, err := srv.HandleCallback(context.Background(), &usecase.CallbackInput{
		Provider: "google",
		Code:     "auth-code",
		State:    "state-token",
	})

	require.NoError(t, err)
	assert.False(t, output.IsNewUser)
	assert.Equal(t, userID, output.User.ID)
}

func TestOAuthService_LinkProvider(t *testing.T) {
	userID := uuid.New()

	linkInput := func() *usecase.LinkInput {
		return &usecase.LinkInput{
			UserID:   userID,
			Provider: "google",
			Code:     "auth-code",
			State:    "state-token",
		}
	}

	setupRoundTrip := func(f *oauthServiceFixtures) {
		f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)
		f.stateStore.EXPECT().Consume(mock.Anything, "state-token").
			Return(&entity.CorrelationState{Provider: entity.ProviderTypeGoogle, IssuedAt: time.Now()}, nil)
		f.exchanger.EXPECT().Exchange(mock.Anything, mock.Anything, "auth-code", "state-token").
			Return(providerTokens(), nil)
		f.profileFetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).
			Return(googleProfile(), nil)
		f.passthroughTx()
	}

	t.Run("creates a fresh link", func(t *testing.T) {
		srv, f := createTestOAuthService(t)
		setupRoundTrip(f)

		f.userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID}, nil)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
			Return(nil, repository.ErrAuthNotFound)
		f.authRepo.EXPECT().FindAuthenticationByUser(mock.Anything, userID, entity.ProviderTypeGoogle).
			Return(nil, repository.ErrAuthNotFound)
		f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID && auth.ProviderUserID == "google-user-1"
		})).Return(nil)

		err := srv.LinkProvider(context.Background(), linkInput())

		require.NoError(t, err)
	})

	t.Run("identity already linked to another user", func(t *testing.T) {
		srv, f := createTestOAuthService(t)
		setupRoundTrip(f)

		f.userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID}, nil)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)

		err := srv.LinkProvider(context.Background(), linkInput())

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyLinked)
	})

	t.Run("re-linking the same identity refreshes metadata", func(t *testing.T) {
		srv, f := createTestOAuthService(t)
		setupRoundTrip(f)

		f.userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID}, nil)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
			Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeGoogle}, nil)
		f.authRepo.EXPECT().UpdateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.AccessToken == "provider-access"
		})).Return(nil)

		err := srv.LinkProvider(context.Background(), linkInput())

		require.NoError(t, err)
	})

	t.Run("user already holds a different identity from the provider", func(t *testing.T) {
		srv, f := createTestOAuthService(t)
		setupRoundTrip(f)

		f.userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID}, nil)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-user-1").
			Return(nil, repository.ErrAuthNotFound)
		f.authRepo.EXPECT().FindAuthenticationByUser(mock.Anything, userID, entity.ProviderTypeGoogle).
			Return(&entity.Authentication{UserID: userID, ProviderUserID: "google-user-2"}, nil)

		err := srv.LinkProvider(context.Background(), linkInput())

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyLinked)
	})

	t.Run("missing params", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.registry.EXPECT().Lookup("google").Return(googleConfig(), nil)

		err := srv.LinkProvider(context.Background(), &usecase.LinkInput{
			UserID:   userID,
			Provider: "google",
		})

		assert.ErrorIs(t, err, domainerrors.ErrMissingParams)
	})
}

func TestOAuthService_UnlinkProvider(t *testing.T) {
	userID := uuid.New()

	t.Run("removes a linked identity", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		authID := uuid.New()
		f.passthroughTx()
		f.authRepo.EXPECT().FindAuthenticationByUser(mock.Anything, userID, entity.ProviderTypeGoogle).
			Return(&entity.Authentication{ID: authID, UserID: userID, Provider: entity.ProviderTypeGoogle}, nil)
		f.authRepo.EXPECT().CountAuthenticationsByUser(mock.Anything, userID).Return(int64(2), nil)
		f.authRepo.EXPECT().DeleteAuthentication(mock.Anything, authID).Return(nil)

		err := srv.UnlinkProvider(context.Background(), userID, "google")

		require.NoError(t, err)
	})

	t.Run("refuses to remove the last method", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.passthroughTx()
		f.authRepo.EXPECT().FindAuthenticationByUser(mock.Anything, userID, entity.ProviderTypeGoogle).
			Return(&entity.Authentication{ID: uuid.New(), UserID: userID}, nil)
		f.authRepo.EXPECT().CountAuthenticationsByUser(mock.Anything, userID).Return(int64(1), nil)

		err := srv.UnlinkProvider(context.Background(), userID, "google")

		assert.ErrorIs(t, err, domainerrors.ErrLastAuthMethod)
	})

	t.Run("provider not linked", func(t *testing.T) {
		srv, f := createTestOAuthService(t)

		f.passthroughTx()
		f.authRepo.EXPECT().FindAuthenticationByUser(mock.Anything, userID, entity.ProviderTypeGoogle).
			Return(nil, repository.ErrAuthNotFound)

		err := srv.UnlinkProvider(context.Background(), userID, "google")

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("unknown provider name", func(t *testing.T) {
		srv, _ := createTestOAuthService(t)

		err := srv.UnlinkProvider(context.Background(), userID, "myspace")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidProvider)
	})

	t.Run("password is not an unlinkable provider", func(t *testing.T) {
		srv, _ := createTestOAuthService(t)

		err := srv.UnlinkProvider(context.Background(), userID, "password")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidProvider)
	})
}

func TestOAuthService_ListLinkedAccounts(t *testing.T) {
	srv, f := createTestOAuthService(t)

	userID := uuid.New()
	linkedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	f.authRepo.EXPECT().ListAuthenticationsByUser(mock.Anything, userID).Return([]*entity.Authentication{
		{Provider: entity.ProviderTypePassword, Email: "user@example.com"},
		{Provider: entity.ProviderTypeGoogle, Email: "user@example.com", DisplayName: "Test User", AccessToken: "secret", CreatedAt: linkedAt},
		{Provider: entity.ProviderTypeGitHub, Email: "", DisplayName: "testuser", ProfileURL: "https://github.com/testuser"},
	}, nil)

	accounts, err := srv.ListLinkedAccounts(context.Background(), userID)

	require.NoError(t, err)
	// The local password credential is never reported as a linked account.
	require.Len(t, accounts, 2)
	assert.Equal(t, entity.ProviderTypeGoogle, accounts[0].Provider)
	assert.Equal(t, linkedAt, accounts[0].CreatedAt)
	assert.Equal(t, entity.ProviderTypeGitHub, accounts[1].Provider)
	assert.Equal(t, "https://github.com/testuser", accounts[1].ProfileURL)
}
