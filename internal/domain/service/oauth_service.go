// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"
	"time"

	"bid4service/internal/domain/entity"
)

// ExternalProfile is the canonical user profile extracted from any supported
// provider's user-info payload or identity token. It is transient: derived
// per callback and never persisted verbatim beyond the linked-account record.
type ExternalProfile struct {
	ExternalID    string         // Provider-specific user ID (e.g. Google's 'sub' claim). Never empty.
	Email         string         // Email address, empty when the provider does not share one.
	DisplayName   string         // Full display name.
	GivenName     string         // First name, when the provider splits names.
	FamilyName    string         // Last name, when the provider splits names.
	AvatarURL     string         // Profile picture URL.
	ProfileURL    string         // Public profile page URL.
	EmailVerified bool           // Whether the provider vouches for the email.
	Raw           map[string]any // The provider payload the profile was mapped from.
}

// ProviderTokens is the provider's response to an authorization-code exchange.
type ProviderTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ExpiresAt converts the relative expires_in to an absolute timestamp.
// Returns nil when the provider did not report an expiry.
func (t *ProviderTokens) ExpiresAt(now time.Time) *time.Time {
	if t.ExpiresIn <= 0 {
		return nil
	}
	at := now.Add(time.Duration(t.ExpiresIn) * time.Second)

	return &at
}

// ProviderConfig identifies one external identity provider: its protocol
// endpoints, requested scopes and client credentials. Immutable after startup.
type ProviderConfig struct {
	Provider     entity.ProviderType
	AuthURL      string   // Authorization endpoint the user is redirected to.
	TokenURL     string   // Token endpoint the authorization code is exchanged at.
	UserInfoURL  string   // User-info endpoint; empty for identity-token providers.
	Issuer       string   // OIDC issuer, used to verify identity tokens.
	ClientID     string
	ClientSecret string
	RedirectURL  string   // Callback URL registered at the provider.
	Scopes       []string // Scopes requested during authorization.

	// UsePKCE marks providers that require proof-key verification. The
	// correlation state token doubles as the code verifier, so no extra
	// per-flow secret has to be stored.
	UsePKCE bool

	// UsesIDToken marks identity-only providers that deliver user claims in
	// a signed identity token instead of a user-info endpoint.
	UsesIDToken bool
}

// AuthorizationURL builds the provider authorization URL for one login
// round-trip, carrying the correlation state token. For PKCE providers the
// S256 challenge is derived from the same state token.
func (c *ProviderConfig) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.ClientID)
	params.Set("redirect_uri", c.RedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(c.Scopes, " "))
	params.Set("state", state)

	if c.UsePKCE {
		sum := sha256.Sum256([]byte(state))
		params.Set("code_challenge", base64.RawURLEncoding.EncodeToString(sum[:]))
		params.Set("code_challenge_method", "S256")
	}
	if c.UsesIDToken {
		// Identity-token providers deliver the code and state via form post.
		params.Set("response_mode", "form_post")
	}

	return c.AuthURL + "?" + params.Encode()
}

// ProviderState is one entry of the public capability list.
type ProviderState struct {
	Provider entity.ProviderType
	Enabled  bool
}

// ProviderRegistry resolves provider names to their static configuration.
// Read-only, no side effects.
type ProviderRegistry interface {
	// Lookup returns the configuration for a supported, credentialed
	// provider. Unknown names and providers without runtime credentials are
	// rejected before any network call.
	Lookup(name string) (*ProviderConfig, error)

	// Statuses enumerates the closed provider set with enabled flags derived
	// from the presence of credentials.
	Statuses() []ProviderState
}

// StateStore manages short-lived, single-use CSRF correlation tokens tying an
// authorization request to its callback. Implementations must make Consume
// atomic: two concurrent callbacks with one token must not both succeed.
type StateStore interface {
	// Issue mints a cryptographically random, URL-safe token and stores the
	// correlation record under it.
	Issue(ctx context.Context, provider entity.ProviderType, returnURL string) (string, error)

	// Consume removes and returns the record in one step. Missing, expired
	// and already-consumed tokens all fail identically.
	Consume(ctx context.Context, token string) (*entity.CorrelationState, error)
}

// TokenExchanger performs the authorization-code-for-token exchange against a
// provider's token endpoint. Exchanges are never retried: authorization codes
// are single-use, so a failed exchange requires a fresh authorization
// round-trip.
type TokenExchanger interface {
	Exchange(ctx context.Context, cfg *ProviderConfig, code, stateToken string) (*ProviderTokens, error)
}

// ProfileFetcher turns provider tokens into a canonical ExternalProfile,
// either by calling the provider's user-info endpoint or by verifying and
// decoding an identity token.
type ProfileFetcher interface {
	Fetch(ctx context.Context, cfg *ProviderConfig, tokens *ProviderTokens) (*ExternalProfile, error)
}

// IDTokenVerifier validates a signed identity token (signature, issuer,
// audience, expiry) and extracts its claims. Unverified decoding of identity
// tokens is not acceptable anywhere in this codebase.
type IDTokenVerifier interface {
	Verify(ctx context.Context, cfg *ProviderConfig, rawIDToken string) (*ExternalProfile, error)
}
