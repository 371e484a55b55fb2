package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bid4service/internal/domain/entity"
	"bid4service/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileMapper_Google(t *testing.T) {
	profile := mappers[entity.ProviderTypeGoogle](map[string]any{
		"id":             "108417812",
		"email":          "user@gmail.com",
		"verified_email": true,
		"name":           "Test User",
		"given_name":     "Test",
		"family_name":    "User",
		"picture":        "https://lh3.googleusercontent.com/a/photo",
	})

	assert.Equal(t, "108417812", profile.ExternalID)
	assert.Equal(t, "user@gmail.com", profile.Email)
	assert.Equal(t, "Test User", profile.DisplayName)
	assert.Equal(t, "Test", profile.GivenName)
	assert.Equal(t, "User", profile.FamilyName)
	assert.True(t, profile.EmailVerified)
}

func TestProfileMapper_FacebookNestedPicture(t *testing.T) {
	profile := mappers[entity.ProviderTypeFacebook](map[string]any{
		"id":    "10223344",
		"name":  "Test User",
		"email": "user@example.com",
		"picture": map[string]any{
			"data": map[string]any{"url": "https://graph.facebook.com/photo.jpg"},
		},
	})

	assert.Equal(t, "10223344", profile.ExternalID)
	assert.Equal(t, "https://graph.facebook.com/photo.jpg", profile.AvatarURL)
	assert.True(t, profile.EmailVerified)
}

func TestProfileMapper_TwitterDataEnvelope(t *testing.T) {
	profile := mappers[entity.ProviderTypeTwitter](map[string]any{
		"data": map[string]any{
			"id":                "2244994945",
			"name":              "Test User",
			"username":          "testuser",
			"profile_image_url": "https://pbs.twimg.com/profile.jpg",
		},
	})

	assert.Equal(t, "2244994945", profile.ExternalID)
	assert.Equal(t, "Test User", profile.DisplayName)
	assert.Equal(t, "https://twitter.com/testuser", profile.ProfileURL)
	// Twitter never shares an email address.
	assert.Empty(t, profile.Email)
	assert.False(t, profile.EmailVerified)
}

func TestProfileMapper_GitHubNumericID(t *testing.T) {
	profile := mappers[entity.ProviderTypeGitHub](map[string]any{
		"id":         float64(583231),
		"login":      "octocat",
		"name":       "The Octocat",
		"email":      "octocat@github.com",
		"avatar_url": "https://avatars.githubusercontent.com/u/583231",
		"html_url":   "https://github.com/octocat",
	})

	assert.Equal(t, "583231", profile.ExternalID)
	assert.Equal(t, "The Octocat", profile.DisplayName)
	assert.Equal(t, "https://github.com/octocat", profile.ProfileURL)
}

func TestProfileMapper_GitHubLoginFallback(t *testing.T) {
	profile := mappers[entity.ProviderTypeGitHub](map[string]any{
		"id":    float64(583231),
		"login": "octocat",
	})

	assert.Equal(t, "octocat", profile.DisplayName)
	assert.Empty(t, profile.Email)
	assert.False(t, profile.EmailVerified)
}

func TestProfileMapper_MicrosoftPrincipalNameFallback(t *testing.T) {
	profile := mappers[entity.ProviderTypeMicrosoft](map[string]any{
		"id":                "ab12cd34",
		"displayName":       "Test User",
		"userPrincipalName": "user@contoso.onmicrosoft.com",
	})

	assert.Equal(t, "user@contoso.onmicrosoft.com", profile.Email)
}

func TestProfileMapper_GenericFallback(t *testing.T) {
	profile := mapGenericProfile(map[string]any{
		"sub":            "abc-123",
		"email":          "user@example.com",
		"email_verified": "true",
		"name":           "Test User",
	})

	assert.Equal(t, "abc-123", profile.ExternalID)
	assert.True(t, profile.EmailVerified)
}

func TestProfileFetcher_FetchUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer the-access-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"108417812","email":"user@gmail.com","verified_email":true,"name":"Test User"}`))
	}))
	defer server.Close()

	fetcher := NewProfileFetcher(NewIDTokenVerifier())
	profile, err := fetcher.Fetch(context.Background(), &service.ProviderConfig{
		Provider:    entity.ProviderTypeGoogle,
		UserInfoURL: server.URL,
	}, &service.ProviderTokens{AccessToken: "the-access-token"})

	require.NoError(t, err)
	assert.Equal(t, "108417812", profile.ExternalID)
	assert.Equal(t, "user@gmail.com", profile.Email)
}

func TestProfileFetcher_GitHubAcceptHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":583231,"login":"octocat"}`))
	}))
	defer server.Close()

	fetcher := NewProfileFetcher(NewIDTokenVerifier())
	profile, err := fetcher.Fetch(context.Background(), &service.ProviderConfig{
		Provider:    entity.ProviderTypeGitHub,
		UserInfoURL: server.URL,
	}, &service.ProviderTokens{AccessToken: "the-access-token"})

	require.NoError(t, err)
	assert.Equal(t, "583231", profile.ExternalID)
}

func TestProfileFetcher_MissingExternalID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"user@example.com"}`))
	}))
	defer server.Close()

	fetcher := NewProfileFetcher(NewIDTokenVerifier())
	profile, err := fetcher.Fetch(context.Background(), &service.ProviderConfig{
		Provider:    entity.ProviderTypeGoogle,
		UserInfoURL: server.URL,
	}, &service.ProviderTokens{AccessToken: "the-access-token"})

	assert.Error(t, err)
	assert.Nil(t, profile)
}

func TestProfileFetcher_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	fetcher := NewProfileFetcher(NewIDTokenVerifier())
	profile, err := fetcher.Fetch(context.Background(), &service.ProviderConfig{
		Provider:    entity.ProviderTypeGoogle,
		UserInfoURL: server.URL,
	}, &service.ProviderTokens{AccessToken: "expired"})

	assert.Error(t, err)
	assert.Nil(t, profile)
}
