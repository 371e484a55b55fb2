// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bid4service/internal/delivery/context"
	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/repository"
	"bid4service/internal/domain/service"
	"bid4service/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reconcileMaxAttempts bounds the re-resolve loop that recovers from losing a
// duplicate-key race against a concurrent callback for the same identity.
const reconcileMaxAttempts = 3

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	registry       service.ProviderRegistry
	stateStore     service.StateStore
	exchanger      service.TokenExchanger
	profileFetcher service.ProfileFetcher
	txManager      repository.TransactionManager
	authRepo       repository.AuthRepository
	tokenService   service.TokenService
	logger         *slog.Logger
}

// OAuthServiceParams holds dependencies for the OAuth service, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Registry       service.ProviderRegistry
	StateStore     service.StateStore
	Exchanger      service.TokenExchanger
	ProfileFetcher service.ProfileFetcher
	TxManager      repository.TransactionManager
	AuthRepo       repository.AuthRepository
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewOAuthService is the constructor for oauthService. It receives all dependencies as interfaces.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		registry:       params.Registry,
		stateStore:     params.StateStore,
		exchanger:      params.Exchanger,
		profileFetcher: params.ProfileFetcher,
		txManager:      params.TxManager,
		authRepo:       params.AuthRepo,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Providers lists every supported provider with its enabled flag.
func (srv *oauthService) Providers(_ context.Context) []usecase.ProviderStatus {
	states := srv.registry.Statuses()
	statuses := make([]usecase.ProviderStatus, 0, len(states))
	for _, state := range states {
		statuses = append(statuses, usecase.ProviderStatus{
			Provider: state.Provider,
			Enabled:  state.Enabled,
		})
	}

	return statuses
}

// AuthorizationURL starts a login round-trip: issues the correlation state and
// builds the provider authorization URL.
func (srv *oauthService) AuthorizationURL(ctx context.Context, provider, returnURL string) (string, error) {
	cfg, err := srv.registry.Lookup(provider)
	if err != nil {
		return "", err
	}

	if err := validateReturnURL(returnURL); err != nil {
		return "", err
	}

	state, err := srv.stateStore.Issue(ctx, cfg.Provider, returnURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue correlation state")
	}

	srv.log(ctx).Debug("Issued authorization redirect", slog.String("provider", provider))

	return cfg.AuthorizationURL(state), nil
}

// validateReturnURL accepts only site-relative paths, so the post-login
// redirect cannot be pointed at a foreign origin.
func validateReturnURL(returnURL string) error {
	if returnURL == "" {
		return nil
	}
	if !strings.HasPrefix(returnURL, "/") || strings.HasPrefix(returnURL, "//") {
		return domainerrors.ErrValidationFailed.WrapMessage("returnUrl must be a relative path")
	}

	return nil
}

// HandleCallback completes a login round-trip: validates state, exchanges the
// code, resolves the external identity to a local account and mints a session.
func (srv *oauthService) HandleCallback(ctx context.Context, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	// A provider-reported error still consumed the user's consent screen;
	// surface it before touching the state store so the token stays intact
	// for an immediate retry only if the provider never got our state back.
	if input.ErrorCode != "" {
		srv.log(ctx).Warn("Provider returned authorization error",
			slog.String("provider", input.Provider),
			slog.String("errorCode", input.ErrorCode))

		return nil, domainerrors.ErrUpstreamProvider.WithDetails(input.ErrorCode + ": " + input.ErrorDescription).WrapMessage(input.Provider)
	}

	if input.Code == "" || input.State == "" {
		return nil, domainerrors.ErrMissingParams.WrapMessage(input.Provider)
	}

	cfg, err := srv.registry.Lookup(input.Provider)
	if err != nil {
		return nil, err
	}

	// Consume is atomic: replayed or concurrent callbacks with this token
	// fail from here on.
	state, err := srv.stateStore.Consume(ctx, input.State)
	if err != nil {
		return nil, err
	}
	if state.Provider != cfg.Provider {
		// Token was issued for a different provider's round-trip.
		return nil, domainerrors.ErrInvalidState.WrapMessage(input.Provider)
	}

	tokens, err := srv.exchanger.Exchange(ctx, cfg, input.Code, input.State)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileFetcher.Fetch(ctx, cfg, tokens)
	if err != nil {
		return nil, err
	}

	user, isNewUser, err := srv.reconcileIdentity(ctx, cfg.Provider, profile, tokens)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.mintSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Completed provider callback",
		slog.String("provider", input.Provider),
		slog.Any("userID", user.ID),
		slog.Bool("isNewUser", isNewUser))

	return &usecase.CallbackOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		IsNewUser:    isNewUser,
		ReturnURL:    state.ReturnURL,
		User:         user,
	}, nil
}

// reconcileIdentity resolves an external identity to a local account. Three
// outcomes: the identity is already linked, the email matches an existing
// account, or a fresh account is created. Losing a duplicate-key race against
// a concurrent callback re-resolves from the top, where the first outcome now
// applies.
func (srv *oauthService) reconcileIdentity(ctx context.Context, provider entity.ProviderType, profile *service.ExternalProfile, tokens *service.ProviderTokens) (*entity.User, bool, error) {
	var user *entity.User
	var isNewUser bool

	for attempt := 1; ; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var resolveErr error
			user, isNewUser, resolveErr = srv.resolveUser(ctx, repoFactory, provider, profile, tokens)

			return resolveErr
		})
		if err == nil {
			return user, isNewUser, nil
		}

		conflict := errors.Is(err, domainerrors.ErrUserAlreadyExists) || errors.Is(err, domainerrors.ErrAlreadyLinked)
		if !conflict || attempt >= reconcileMaxAttempts {
			return nil, false, errors.Wrap(err, "failed to reconcile external identity")
		}

		srv.log(ctx).Warn("Lost identity reconciliation race, re-resolving",
			slog.String("provider", provider.String()),
			slog.Int("attempt", attempt))
	}
}

func (srv *oauthService) resolveUser(ctx context.Context, repoFactory repository.RepositoryFactory, provider entity.ProviderType, profile *service.ExternalProfile, tokens *service.ProviderTokens) (*entity.User, bool, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	// Outcome 1: the external identity is already linked.
	authRecord, err := authRepo.FindAuthentication(ctx, provider, profile.ExternalID)
	if err == nil {
		applyProfileToAuth(authRecord, profile, tokens)
		if err := authRepo.UpdateAuthentication(ctx, authRecord); err != nil {
			return nil, false, errors.Wrap(err, "failed to refresh linked identity")
		}

		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to load linked user")
		}

		return user, false, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, false, errors.Wrap(err, "failed to find authentication")
	}

	// Outcome 2: an account with the provider-reported email already exists;
	// attach the identity to it.
	if profile.Email != "" {
		user, err := userRepo.FindByEmail(ctx, profile.Email)
		if err == nil {
			newAuth := buildAuthEntity(user.ID, provider, profile, tokens)
			if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
				return nil, false, err
			}

			return user, false, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, errors.Wrap(err, "failed to find user by email")
		}
	}

	// Outcome 3: no match anywhere, create a fresh account. Without an email
	// there is nothing to key the new account on.
	if profile.Email == "" {
		return nil, false, domainerrors.ErrMissingEmail.WrapMessage(provider.String())
	}

	newUser := &entity.User{
		Name:      profile.DisplayName,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
		Role:      entity.RoleCustomer,
		// The provider completed its own verification round-trip before
		// handing the identity over.
		EmailVerified: true,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, false, err
	}

	newAuth := buildAuthEntity(newUser.ID, provider, profile, tokens)
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, false, err
	}

	return newUser, true, nil
}

// mintSession generates the local token pair and persists the hashed refresh
// token.
func (srv *oauthService) mintSession(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate session tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RefreshTokenRepo().CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL()),
		})
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

// LinkProvider attaches an external identity to the authenticated user.
func (srv *oauthService) LinkProvider(ctx context.Context, input *usecase.LinkInput) error {
	cfg, err := srv.registry.Lookup(input.Provider)
	if err != nil {
		return err
	}

	if input.Code == "" || input.State == "" {
		return domainerrors.ErrMissingParams.WrapMessage(input.Provider)
	}

	state, err := srv.stateStore.Consume(ctx, input.State)
	if err != nil {
		return err
	}
	if state.Provider != cfg.Provider {
		return domainerrors.ErrInvalidState.WrapMessage(input.Provider)
	}

	tokens, err := srv.exchanger.Exchange(ctx, cfg, input.Code, input.State)
	if err != nil {
		return err
	}

	profile, err := srv.profileFetcher.Fetch(ctx, cfg, tokens)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.performLink(ctx, repoFactory, cfg.Provider, input, profile, tokens)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to link provider",
			slog.String("provider", input.Provider),
			slog.Any("userID", input.UserID),
			slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Linked provider to user",
		slog.String("provider", input.Provider),
		slog.Any("userID", input.UserID))

	return nil
}

func (srv *oauthService) performLink(ctx context.Context, repoFactory repository.RepositoryFactory, provider entity.ProviderType, input *usecase.LinkInput, profile *service.ExternalProfile, tokens *service.ProviderTokens) error {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load linking user")
	}

	existing, err := authRepo.FindAuthentication(ctx, provider, profile.ExternalID)
	if err == nil {
		if existing.UserID != input.UserID {
			return domainerrors.ErrAlreadyLinked.WrapMessage(provider.String())
		}

		// Re-linking the same identity refreshes its cached metadata.
		applyProfileToAuth(existing, profile, tokens)

		return authRepo.UpdateAuthentication(ctx, existing)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return errors.Wrap(err, "failed to check existing link")
	}

	if _, err := authRepo.FindAuthenticationByUser(ctx, input.UserID, provider); err == nil {
		// The user already holds a different identity from this provider.
		return domainerrors.ErrAlreadyLinked.WrapMessage(provider.String())
	} else if !errors.Is(err, repository.ErrAuthNotFound) {
		return errors.Wrap(err, "failed to check user's existing link")
	}

	return authRepo.CreateAuthentication(ctx, buildAuthEntity(input.UserID, provider, profile, tokens))
}

// UnlinkProvider removes a linked identity, refusing to remove the last
// remaining authentication method.
func (srv *oauthService) UnlinkProvider(ctx context.Context, userID uuid.UUID, provider string) error {
	// Parse directly rather than via the registry: a link made while the
	// provider was enabled must stay removable after its credentials are gone.
	providerType, ok := entity.ParseOAuthProvider(provider)
	if !ok {
		return domainerrors.ErrInvalidProvider.WrapMessage(provider)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthenticationByUser(ctx, userID, providerType)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("provider not linked")
			}

			return errors.Wrap(err, "failed to find linked identity")
		}

		count, err := authRepo.CountAuthenticationsByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count authentication methods")
		}
		if count <= 1 {
			return domainerrors.ErrLastAuthMethod.WrapMessage(provider)
		}

		return authRepo.DeleteAuthentication(ctx, authRecord.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to unlink provider",
			slog.String("provider", provider),
			slog.Any("userID", userID),
			slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Unlinked provider from user",
		slog.String("provider", provider),
		slog.Any("userID", userID))

	return nil
}

// ListLinkedAccounts returns the user's linked external identities in a
// client-safe shape. The local password credential and cached provider tokens
// are never included.
func (srv *oauthService) ListLinkedAccounts(ctx context.Context, userID uuid.UUID) ([]*usecase.LinkedAccount, error) {
	auths, err := srv.authRepo.ListAuthenticationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authentications")
	}

	accounts := make([]*usecase.LinkedAccount, 0, len(auths))
	for _, auth := range auths {
		if !auth.Provider.IsOAuth() {
			continue
		}
		accounts = append(accounts, &usecase.LinkedAccount{
			Provider:    auth.Provider,
			Email:       auth.Email,
			DisplayName: auth.DisplayName,
			AvatarURL:   auth.AvatarURL,
			ProfileURL:  auth.ProfileURL,
			CreatedAt:   auth.CreatedAt,
		})
	}

	return accounts, nil
}

// buildAuthEntity assembles a new authentication row for an external identity.
func buildAuthEntity(userID uuid.UUID, provider entity.ProviderType, profile *service.ExternalProfile, tokens *service.ProviderTokens) *entity.Authentication {
	auth := &entity.Authentication{
		UserID:         userID,
		Provider:       provider,
		ProviderUserID: profile.ExternalID,
	}
	applyProfileToAuth(auth, profile, tokens)

	return auth
}

// applyProfileToAuth refreshes the cached provider tokens and display
// metadata on an authentication record.
func applyProfileToAuth(auth *entity.Authentication, profile *service.ExternalProfile, tokens *service.ProviderTokens) {
	auth.AccessToken = tokens.AccessToken
	auth.RefreshToken = tokens.RefreshToken
	auth.TokenExpiresAt = tokens.ExpiresAt(time.Now())
	auth.Email = profile.Email
	auth.DisplayName = profile.DisplayName
	auth.AvatarURL = profile.AvatarURL
	auth.ProfileURL = profile.ProfileURL
}
