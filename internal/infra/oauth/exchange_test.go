package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/service"
	"bid4service/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExchanger_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.PostForm.Get("code_verifier"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	exchanger := NewTokenExchanger()
	tokens, err := exchanger.Exchange(context.Background(), &service.ProviderConfig{
		Provider:     entity.ProviderTypeGoogle,
		TokenURL:     server.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://api.example.com/auth/google/callback",
	}, "the-code", "state-token")

	require.NoError(t, err)
	assert.Equal(t, "at", tokens.AccessToken)
	assert.Equal(t, "rt", tokens.RefreshToken)
	assert.EqualValues(t, 3600, tokens.ExpiresIn)
	assert.NotNil(t, tokens.ExpiresAt(time.Now()))
}

func TestTokenExchanger_PKCESendsVerifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		// The correlation state token doubles as the code verifier.
		assert.Equal(t, "state-token", r.PostForm.Get("code_verifier"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"bearer"}`))
	}))
	defer server.Close()

	exchanger := NewTokenExchanger()
	tokens, err := exchanger.Exchange(context.Background(), &service.ProviderConfig{
		Provider: entity.ProviderTypeTwitter,
		TokenURL: server.URL,
		ClientID: "client-id",
		UsePKCE:  true,
	}, "the-code", "state-token")

	require.NoError(t, err)
	assert.Equal(t, "at", tokens.AccessToken)
}

func TestTokenExchanger_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	exchanger := NewTokenExchanger()
	tokens, err := exchanger.Exchange(context.Background(), &service.ProviderConfig{
		Provider: entity.ProviderTypeGoogle,
		TokenURL: server.URL,
	}, "stale-code", "state-token")

	assert.Nil(t, tokens)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrTokenExchangeFailed.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "invalid_grant")
}

func TestTokenExchanger_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	exchanger := NewTokenExchanger()
	tokens, err := exchanger.Exchange(context.Background(), &service.ProviderConfig{
		Provider: entity.ProviderTypeGoogle,
		TokenURL: server.URL,
	}, "the-code", "state-token")

	assert.Nil(t, tokens)
	assert.Error(t, err)
}
