// Package oauth implements the external identity-provider integrations: the
// provider registry, authorization-code exchange and profile retrieval.
package oauth

import (
	"bid4service/config"
	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/service"
)

// endpoint holds the static, provider-specific protocol knowledge: URLs,
// default scopes and exchange quirks. Credentials come from configuration.
type endpoint struct {
	authURL     string
	tokenURL    string
	userInfoURL string
	issuer      string
	scopes      []string
	usePKCE     bool
	usesIDToken bool
}

// endpoints is the closed set of supported providers. Adding a provider means
// adding a row here plus its mapping rules in the profile fetcher.
var endpoints = map[entity.ProviderType]endpoint{
	entity.ProviderTypeGoogle: {
		authURL:     "https://accounts.google.com/o/oauth2/v2/auth",
		tokenURL:    "https://oauth2.googleapis.com/token",
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		scopes:      []string{"openid", "email", "profile"},
	},
	entity.ProviderTypeFacebook: {
		authURL:     "https://www.facebook.com/v18.0/dialog/oauth",
		tokenURL:    "https://graph.facebook.com/v18.0/oauth/access_token",
		userInfoURL: "https://graph.facebook.com/me",
		scopes:      []string{"email", "public_profile"},
	},
	entity.ProviderTypeLinkedIn: {
		authURL:     "https://www.linkedin.com/oauth/v2/authorization",
		tokenURL:    "https://www.linkedin.com/oauth/v2/accessToken",
		userInfoURL: "https://api.linkedin.com/v2/userinfo",
		scopes:      []string{"openid", "profile", "email"},
	},
	entity.ProviderTypeApple: {
		authURL:     "https://appleid.apple.com/auth/authorize",
		tokenURL:    "https://appleid.apple.com/auth/token",
		issuer:      "https://appleid.apple.com",
		scopes:      []string{"name", "email"},
		usesIDToken: true,
	},
	entity.ProviderTypeTwitter: {
		authURL:     "https://twitter.com/i/oauth2/authorize",
		tokenURL:    "https://api.twitter.com/2/oauth2/token",
		userInfoURL: "https://api.twitter.com/2/users/me",
		scopes:      []string{"tweet.read", "users.read"},
		usePKCE:     true,
	},
	entity.ProviderTypeGitHub: {
		authURL:     "https://github.com/login/oauth/authorize",
		tokenURL:    "https://github.com/login/oauth/access_token",
		userInfoURL: "https://api.github.com/user",
		scopes:      []string{"read:user", "user:email"},
	},
	entity.ProviderTypeMicrosoft: {
		authURL:     "https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
		tokenURL:    "https://login.microsoftonline.com/common/oauth2/v2.0/token",
		userInfoURL: "https://graph.microsoft.com/v1.0/me",
		scopes:      []string{"openid", "email", "profile", "User.Read"},
	},
}

// registry resolves provider names against the static endpoint table and the
// configured credentials. Built once at startup, read-only afterwards.
type registry struct {
	configs map[entity.ProviderType]*service.ProviderConfig
}

// NewRegistry builds the provider registry from configuration. Providers
// without a credentials entry stay in the capability list but are disabled.
func NewRegistry(cfg *config.Config) service.ProviderRegistry {
	configs := make(map[entity.ProviderType]*service.ProviderConfig)
	for provider, ep := range endpoints {
		creds, ok := cfg.OAuth.Providers[provider.String()]
		if !ok || creds.ClientID == "" {
			continue
		}

		scopes := ep.scopes
		if len(creds.Scopes) > 0 {
			scopes = creds.Scopes
		}

		configs[provider] = &service.ProviderConfig{
			Provider:     provider,
			AuthURL:      ep.authURL,
			TokenURL:     ep.tokenURL,
			UserInfoURL:  ep.userInfoURL,
			Issuer:       ep.issuer,
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       scopes,
			UsePKCE:      ep.usePKCE,
			UsesIDToken:  ep.usesIDToken,
		}
	}

	return &registry{configs: configs}
}

// Lookup returns the configuration for an enabled provider. Unknown names and
// providers without credentials are rejected before any network call.
func (r *registry) Lookup(name string) (*service.ProviderConfig, error) {
	provider, ok := entity.ParseOAuthProvider(name)
	if !ok {
		return nil, domainerrors.ErrInvalidProvider.WrapMessage(name)
	}

	cfg, ok := r.configs[provider]
	if !ok {
		return nil, domainerrors.ErrInvalidProvider.WrapMessage(name)
	}

	return cfg, nil
}

// Statuses enumerates the supported provider set with enabled flags derived
// from the presence of credentials. Order is stable.
func (r *registry) Statuses() []service.ProviderState {
	states := make([]service.ProviderState, 0, len(entity.OAuthProviders))
	for _, provider := range entity.OAuthProviders {
		_, enabled := r.configs[provider]
		states = append(states, service.ProviderState{Provider: provider, Enabled: enabled})
	}

	return states
}
