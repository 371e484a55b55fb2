package oauth

import (
	"context"
	"sync"

	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/service"

	"github.com/coreos/go-oidc/v3/oidc"
)

// idTokenVerifier validates identity tokens against the issuer's published
// signing keys. Tokens are never decoded without signature verification.
type idTokenVerifier struct {
	mu        sync.Mutex
	providers map[string]*oidc.Provider
}

// NewIDTokenVerifier builds the verifier. Issuer metadata and signing keys are
// discovered lazily and cached per issuer.
func NewIDTokenVerifier() service.IDTokenVerifier {
	return &idTokenVerifier{providers: make(map[string]*oidc.Provider)}
}

// Verify checks the token's signature, issuer, audience and expiry, then maps
// its claims into the canonical profile shape.
func (v *idTokenVerifier) Verify(ctx context.Context, cfg *service.ProviderConfig, rawIDToken string) (*service.ExternalProfile, error) {
	if rawIDToken == "" {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails("token response carried no identity token").WrapMessage(cfg.Provider.String())
	}

	provider, err := v.issuerProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails(err.Error()).WrapMessage(cfg.Provider.String())
	}

	idToken, err := provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails(err.Error()).WrapMessage(cfg.Provider.String())
	}

	claims := map[string]any{}
	if err := idToken.Claims(&claims); err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails(err.Error()).WrapMessage(cfg.Provider.String())
	}

	profile := mapGenericProfile(claims)
	profile.ExternalID = idToken.Subject

	return profile, nil
}

func (v *idTokenVerifier) issuerProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if provider, ok := v.providers[issuer]; ok {
		return provider, nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}
	v.providers[issuer] = provider

	return provider, nil
}
