package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/service"
	"bid4service/internal/errors"
)

// profileMapper turns one provider's raw user-info payload into the canonical
// profile shape. Mapping is data extraction only, no network calls.
type profileMapper func(raw map[string]any) *service.ExternalProfile

// mappers translates each provider's payload field names. Providers without an
// entry fall back to the generic OIDC-claims mapper.
var mappers = map[entity.ProviderType]profileMapper{
	entity.ProviderTypeGoogle: func(raw map[string]any) *service.ExternalProfile {
		return &service.ExternalProfile{
			ExternalID:    str(raw, "id"),
			Email:         str(raw, "email"),
			DisplayName:   str(raw, "name"),
			GivenName:     str(raw, "given_name"),
			FamilyName:    str(raw, "family_name"),
			AvatarURL:     str(raw, "picture"),
			ProfileURL:    str(raw, "link"),
			EmailVerified: boolean(raw, "verified_email"),
			Raw:           raw,
		}
	},
	entity.ProviderTypeFacebook: func(raw map[string]any) *service.ExternalProfile {
		email := str(raw, "email")

		return &service.ExternalProfile{
			ExternalID:  str(raw, "id"),
			Email:       email,
			DisplayName: str(raw, "name"),
			GivenName:   str(raw, "first_name"),
			FamilyName:  str(raw, "last_name"),
			AvatarURL:   nested(raw, "picture", "data", "url"),
			// Facebook only shares addresses it has confirmed.
			EmailVerified: email != "",
			Raw:           raw,
		}
	},
	entity.ProviderTypeLinkedIn: func(raw map[string]any) *service.ExternalProfile {
		return &service.ExternalProfile{
			ExternalID:    str(raw, "sub"),
			Email:         str(raw, "email"),
			DisplayName:   str(raw, "name"),
			GivenName:     str(raw, "given_name"),
			FamilyName:    str(raw, "family_name"),
			AvatarURL:     str(raw, "picture"),
			EmailVerified: boolean(raw, "email_verified"),
			Raw:           raw,
		}
	},
	entity.ProviderTypeTwitter: func(raw map[string]any) *service.ExternalProfile {
		// The v2 API wraps the user object in a "data" envelope and never
		// shares an email address.
		data, _ := raw["data"].(map[string]any)
		if data == nil {
			data = raw
		}

		profileURL := ""
		if username := str(data, "username"); username != "" {
			profileURL = "https://twitter.com/" + username
		}

		return &service.ExternalProfile{
			ExternalID:  str(data, "id"),
			DisplayName: str(data, "name"),
			AvatarURL:   str(data, "profile_image_url"),
			ProfileURL:  profileURL,
			Raw:         raw,
		}
	},
	entity.ProviderTypeGitHub: func(raw map[string]any) *service.ExternalProfile {
		displayName := str(raw, "name")
		if displayName == "" {
			displayName = str(raw, "login")
		}
		email := str(raw, "email")

		return &service.ExternalProfile{
			ExternalID:  str(raw, "id"),
			Email:       email,
			DisplayName: displayName,
			AvatarURL:   str(raw, "avatar_url"),
			ProfileURL:  str(raw, "html_url"),
			// A public profile email on GitHub is account-verified.
			EmailVerified: email != "",
			Raw:           raw,
		}
	},
	entity.ProviderTypeMicrosoft: func(raw map[string]any) *service.ExternalProfile {
		email := str(raw, "mail")
		if email == "" {
			email = str(raw, "userPrincipalName")
		}

		return &service.ExternalProfile{
			ExternalID:    str(raw, "id"),
			Email:         email,
			DisplayName:   str(raw, "displayName"),
			GivenName:     str(raw, "givenName"),
			FamilyName:    str(raw, "surname"),
			EmailVerified: email != "",
			Raw:           raw,
		}
	},
}

// mapGenericProfile handles providers without a dedicated mapper using the
// standard OIDC claim names.
func mapGenericProfile(raw map[string]any) *service.ExternalProfile {
	id := str(raw, "sub")
	if id == "" {
		id = str(raw, "id")
	}

	return &service.ExternalProfile{
		ExternalID:    id,
		Email:         str(raw, "email"),
		DisplayName:   str(raw, "name"),
		GivenName:     str(raw, "given_name"),
		FamilyName:    str(raw, "family_name"),
		AvatarURL:     str(raw, "picture"),
		ProfileURL:    str(raw, "profile"),
		EmailVerified: boolean(raw, "email_verified"),
		Raw:           raw,
	}
}

// profileFetcher retrieves and normalizes user profiles, either from a
// user-info endpoint or from a verified identity token.
type profileFetcher struct {
	client   *http.Client
	verifier service.IDTokenVerifier
}

// NewProfileFetcher builds the fetcher. The verifier handles identity-token
// providers.
func NewProfileFetcher(verifier service.IDTokenVerifier) service.ProfileFetcher {
	return &profileFetcher{
		client:   &http.Client{Timeout: 10 * time.Second},
		verifier: verifier,
	}
}

// Fetch turns provider tokens into a canonical profile. The external ID is
// mandatory; everything else degrades to empty values.
func (f *profileFetcher) Fetch(ctx context.Context, cfg *service.ProviderConfig, tokens *service.ProviderTokens) (*service.ExternalProfile, error) {
	if cfg.UsesIDToken {
		profile, err := f.verifier.Verify(ctx, cfg, tokens.IDToken)
		if err != nil {
			return nil, err
		}

		return checkProfile(cfg, profile)
	}

	raw, err := f.fetchUserInfo(ctx, cfg, tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	mapper, ok := mappers[cfg.Provider]
	if !ok {
		return checkProfile(cfg, mapGenericProfile(raw))
	}

	return checkProfile(cfg, mapper(raw))
}

func (f *profileFetcher) fetchUserInfo(ctx context.Context, cfg *service.ProviderConfig, accessToken string) (map[string]any, error) {
	endpoint := cfg.UserInfoURL
	switch cfg.Provider {
	case entity.ProviderTypeFacebook:
		// The Graph API returns only the fields asked for.
		endpoint += "?fields=" + url.QueryEscape("id,name,email,first_name,last_name,picture.type(large)")
	case entity.ProviderTypeTwitter:
		endpoint += "?user.fields=" + url.QueryEscape("id,name,username,profile_image_url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build user-info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if cfg.Provider == entity.ProviderTypeGitHub {
		req.Header.Set("Accept", "application/vnd.github+json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WrapMessage(cfg.Provider.String())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read user-info response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails(string(body)).WrapMessage(cfg.Provider.String())
	}

	raw := map[string]any{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails(err.Error()).WrapMessage(cfg.Provider.String())
	}

	return raw, nil
}

// checkProfile enforces the one hard mapping requirement: a non-empty
// provider-side user ID.
func checkProfile(cfg *service.ProviderConfig, profile *service.ExternalProfile) (*service.ExternalProfile, error) {
	if profile.ExternalID == "" {
		return nil, domainerrors.ErrProfileFetchFailed.WithDetails("payload carried no user id").WrapMessage(cfg.Provider.String())
	}

	return profile, nil
}

// str extracts a string field, rendering JSON numbers (e.g. GitHub's numeric
// user id) as their decimal text.
func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}

		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

func boolean(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		// Some providers encode boolean claims as strings.
		return v == "true"
	default:
		return false
	}
}

func nested(m map[string]any, keys ...string) string {
	current := m
	for i, key := range keys {
		if i == len(keys)-1 {
			return str(current, key)
		}
		next, ok := current[key].(map[string]any)
		if !ok {
			return ""
		}
		current = next
	}

	return ""
}
