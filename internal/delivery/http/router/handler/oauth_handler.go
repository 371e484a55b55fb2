package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bid4service/config"
	"bid4service/internal/delivery/http/middleware"
	"bid4service/internal/delivery/http/response"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler holds dependencies for the identity-federation handlers.
type OAuthHandler struct {
	uc  usecase.OAuthUsecase
	cfg *config.Config
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{uc: uc, cfg: cfg}
}

type linkRequest struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state" validate:"required"`
}

// Providers lists every supported provider with its enabled flag.
func (h *OAuthHandler) Providers(c echo.Context) error {
	statuses := h.uc.Providers(c.Request().Context())

	providers := make([]map[string]any, 0, len(statuses))
	for _, status := range statuses {
		providers = append(providers, map[string]any{
			"provider": status.Provider.String(),
			"enabled":  status.Enabled,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"providers": providers})
}

// Authorize starts a provider login round-trip. The authorization URL is
// returned as JSON rather than a redirect so browser clients can navigate to
// it themselves; a fetch following a cross-origin 302 would be blocked.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	provider := c.Param("provider")
	returnURL := c.QueryParam("returnUrl")

	authURL, err := h.uc.AuthorizationURL(c.Request().Context(), provider, returnURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"authUrl": authURL})
}

// Callback completes a provider round-trip. Providers deliver the result via
// query parameters, or a form post for identity-token providers. Whatever the
// outcome, the browser ends up back at the front end.
func (h *OAuthHandler) Callback(c echo.Context) error {
	input := &usecase.CallbackInput{
		Provider:         c.Param("provider"),
		Code:             h.callbackValue(c, "code"),
		State:            h.callbackValue(c, "state"),
		ErrorCode:        h.callbackValue(c, "error"),
		ErrorDescription: h.callbackValue(c, "error_description"),
	}

	output, err := h.uc.HandleCallback(c.Request().Context(), input)
	if err != nil {
		return h.redirectError(c, err)
	}

	params := url.Values{}
	params.Set("access_token", output.AccessToken)
	params.Set("refresh_token", output.RefreshToken)
	params.Set("is_new_user", strconv.FormatBool(output.IsNewUser))
	if output.ReturnURL != "" {
		params.Set("return_url", output.ReturnURL)
	}

	return c.Redirect(http.StatusFound, h.cfg.OAuth.Frontend.CallbackURL+"?"+params.Encode())
}

// callbackValue reads a callback parameter from the query string or, for
// form_post providers, the posted form.
func (h *OAuthHandler) callbackValue(c echo.Context, name string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}

	return c.FormValue(name)
}

// redirectError sends the browser to the front end's error page carrying a
// machine-readable error code. Token and state details never reach the client.
func (h *OAuthHandler) redirectError(c echo.Context, err error) error {
	code := "internal_error"

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		code = strings.ToLower(appErr.ErrorCode())
	}

	params := url.Values{}
	params.Set("error", code)

	return c.Redirect(http.StatusFound, h.cfg.OAuth.Frontend.ErrorURL+"?"+params.Encode())
}

// Link attaches an external identity to the authenticated user.
func (h *OAuthHandler) Link(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req linkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.LinkProvider(c.Request().Context(), &usecase.LinkInput{
		UserID:   userID,
		Provider: c.Param("provider"),
		Code:     req.Code,
		State:    req.State,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Provider linked"})
}

// Unlink removes a linked identity from the authenticated user.
func (h *OAuthHandler) Unlink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.UnlinkProvider(c.Request().Context(), userID, c.Param("provider")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Provider unlinked"})
}

// LinkedAccounts lists the authenticated user's linked external identities.
func (h *OAuthHandler) LinkedAccounts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	accounts, err := h.uc.ListLinkedAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	linked := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		linked = append(linked, map[string]any{
			"provider":     account.Provider.String(),
			"email":        account.Email,
			"display_name": account.DisplayName,
			"avatar_url":   account.AvatarURL,
			"profile_url":  account.ProfileURL,
			"created_at":   account.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"linked_accounts": linked})
}
