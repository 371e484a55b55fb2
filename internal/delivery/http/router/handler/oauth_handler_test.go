package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"bid4service/config"
	httpmiddleware "bid4service/internal/delivery/http/middleware"
	"bid4service/internal/delivery/http/validator"
	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	mockUsecase "bid4service/internal/mocks/usecase"
	"bid4service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func testOAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OAuth.Frontend.CallbackURL = "https://app.example.com/auth/callback"
	cfg.OAuth.Frontend.ErrorURL = "https://app.example.com/auth/error"

	return cfg
}

func TestOAuthHandler_Providers(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	uc.EXPECT().Providers(mock.Anything).Return([]usecase.ProviderStatus{
		{Provider: entity.ProviderTypeGoogle, Enabled: true},
		{Provider: entity.ProviderTypeApple, Enabled: false},
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/providers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Providers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	providers := body["data"].(map[string]any)["providers"].([]any)
	require.Len(t, providers, 2)
	first := providers[0].(map[string]any)
	assert.Equal(t, "google", first["provider"])
	assert.Equal(t, true, first["enabled"])
}

func TestOAuthHandler_Authorize(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	uc.EXPECT().AuthorizationURL(mock.Anything, "google", "/dashboard").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc", nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/google?returnUrl=/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	require.NoError(t, h.Authorize(c))
	// JSON with the URL, not a redirect: the client navigates on its own.
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", data["authUrl"])
}

func TestOAuthHandler_Callback_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	uc.EXPECT().HandleCallback(mock.Anything, mock.MatchedBy(func(input *usecase.CallbackInput) bool {
		return input.Provider == "google" && input.Code == "auth-code" && input.State == "state-token"
	})).Return(&usecase.CallbackOutput{
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-jwt",
		IsNewUser:    true,
		ReturnURL:    "/dashboard",
		User:         &entity.User{ID: uuid.New()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=auth-code&state=state-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "app.example.com", location.Host)
	assert.Equal(t, "/auth/callback", location.Path)
	assert.Equal(t, "access-jwt", location.Query().Get("access_token"))
	assert.Equal(t, "refresh-jwt", location.Query().Get("refresh_token"))
	assert.Equal(t, "true", location.Query().Get("is_new_user"))
	assert.Equal(t, "/dashboard", location.Query().Get("return_url"))
}

func TestOAuthHandler_Callback_FormPost(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	uc.EXPECT().HandleCallback(mock.Anything, mock.MatchedBy(func(input *usecase.CallbackInput) bool {
		return input.Provider == "apple" && input.Code == "auth-code" && input.State == "state-token"
	})).Return(&usecase.CallbackOutput{
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-jwt",
		User:         &entity.User{ID: uuid.New()},
	}, nil)

	form := url.Values{}
	form.Set("code", "auth-code")
	form.Set("state", "state-token")
	req := httptest.NewRequest(http.MethodPost, "/auth/apple/callback", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("apple")

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestOAuthHandler_Callback_ErrorRedirect(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	uc.EXPECT().HandleCallback(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidState)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=auth-code&state=stale", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/auth/error", location.Path)
	assert.Equal(t, "invalid_state", location.Query().Get("error"))
}

func TestOAuthHandler_Callback_UnexpectedErrorRedirect(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	uc.EXPECT().HandleCallback(mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=auth-code&state=state-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	require.NoError(t, h.Callback(c))

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "internal_error", location.Query().Get("error"))
}

func TestOAuthHandler_Link(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	userID := uuid.New()
	uc.EXPECT().LinkProvider(mock.Anything, mock.MatchedBy(func(input *usecase.LinkInput) bool {
		return input.UserID == userID && input.Provider == "github" && input.Code == "auth-code"
	})).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/link/github",
		strings.NewReader(`{"code":"auth-code","state":"state-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("github")
	c.Set("userID", userID)

	require.NoError(t, h.Link(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOAuthHandler_Link_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	req := httptest.NewRequest(http.MethodPost, "/auth/link/github",
		strings.NewReader(`{"code":"auth-code","state":"state-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("github")

	require.NoError(t, h.Link(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOAuthHandler_Unlink(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	userID := uuid.New()
	uc.EXPECT().UnlinkProvider(mock.Anything, userID, "google").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/auth/link/google", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")
	c.Set("userID", userID)

	require.NoError(t, h.Unlink(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOAuthHandler_LinkedAccounts(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockOAuthUsecase(t)
	h := NewOAuthHandler(uc, testOAuthConfig())

	userID := uuid.New()
	linkedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	uc.EXPECT().ListLinkedAccounts(mock.Anything, userID).Return([]*usecase.LinkedAccount{
		{Provider: entity.ProviderTypeGoogle, Email: "user@example.com", DisplayName: "Test User", CreatedAt: linkedAt},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/linked-accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.LinkedAccounts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	linked := body["data"].(map[string]any)["linked_accounts"].([]any)
	require.Len(t, linked, 1)
	account := linked[0].(map[string]any)
	assert.Equal(t, "google", account["provider"])
	assert.Equal(t, "2026-03-14T09:30:00Z", account["created_at"])
}
