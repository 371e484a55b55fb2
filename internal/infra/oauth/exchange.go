package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/service"
	"bid4service/internal/errors"
)

const exchangeTimeout = 10 * time.Second

// maxResponseBytes caps how much of a provider response is read. Token and
// profile payloads are small; anything bigger is a misbehaving upstream.
const maxResponseBytes = 1 << 20

// tokenExchanger redeems authorization codes at provider token endpoints.
// Exchanges are never retried: authorization codes are single-use.
type tokenExchanger struct {
	client *http.Client
}

// NewTokenExchanger builds the exchanger with a bounded-timeout HTTP client.
func NewTokenExchanger() service.TokenExchanger {
	return &tokenExchanger{
		client: &http.Client{Timeout: exchangeTimeout},
	}
}

// Exchange posts the authorization code to the provider token endpoint and
// decodes the token response. For PKCE providers the correlation state token
// is sent as the code verifier.
func (e *tokenExchanger) Exchange(ctx context.Context, cfg *service.ProviderConfig, code, stateToken string) (*service.ProviderTokens, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)
	form.Set("redirect_uri", cfg.RedirectURL)
	if cfg.UsePKCE {
		form.Set("code_verifier", stateToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// GitHub answers with form-encoded text unless JSON is requested
	// explicitly; the header is harmless for everyone else.
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrTokenExchangeFailed.WrapMessage(cfg.Provider.String())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read token response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails(string(body)).WrapMessage(cfg.Provider.String())
	}

	tokens := &service.ProviderTokens{}
	if err := json.Unmarshal(body, tokens); err != nil {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails(err.Error()).WrapMessage(cfg.Provider.String())
	}
	if tokens.AccessToken == "" && tokens.IDToken == "" {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails("response carried no usable token").WrapMessage(cfg.Provider.String())
	}

	return tokens, nil
}
