// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ProviderType identifies a single authentication method source.
// "password" is the local credential; every other value is an external
// OAuth/OpenID identity provider.
type ProviderType string

const (
	// ProviderTypePassword indicates the local email/password credential.
	ProviderTypePassword ProviderType = "password"
	// ProviderTypeGoogle indicates Google Sign-In.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeFacebook indicates Facebook Login.
	ProviderTypeFacebook ProviderType = "facebook"
	// ProviderTypeLinkedIn indicates LinkedIn OIDC sign-in.
	ProviderTypeLinkedIn ProviderType = "linkedin"
	// ProviderTypeApple indicates Sign in with Apple.
	ProviderTypeApple ProviderType = "apple"
	// ProviderTypeTwitter indicates Twitter (X) OAuth 2.0 with PKCE.
	ProviderTypeTwitter ProviderType = "twitter"
	// ProviderTypeGitHub indicates GitHub OAuth.
	ProviderTypeGitHub ProviderType = "github"
	// ProviderTypeMicrosoft indicates Microsoft identity platform sign-in.
	ProviderTypeMicrosoft ProviderType = "microsoft"
)

// OAuthProviders is the closed set of supported external identity providers,
// in the order they are surfaced to clients.
var OAuthProviders = []ProviderType{
	ProviderTypeGoogle,
	ProviderTypeFacebook,
	ProviderTypeLinkedIn,
	ProviderTypeApple,
	ProviderTypeTwitter,
	ProviderTypeGitHub,
	ProviderTypeMicrosoft,
}

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsOAuth reports whether the provider is an external OAuth provider
// (anything other than the local password credential).
func (p ProviderType) IsOAuth() bool {
	for _, known := range OAuthProviders {
		if p == known {
			return true
		}
	}

	return false
}

// ParseOAuthProvider maps a path/query value to a supported external
// provider. The bool is false for anything outside the closed set, including
// the local "password" provider, which must never be reachable through the
// OAuth endpoints.
func ParseOAuthProvider(s string) (ProviderType, bool) {
	p := ProviderType(s)
	if p.IsOAuth() {
		return p, true
	}

	return "", false
}
