package usecase

import (
	"context"
	"time"

	"bid4service/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CallbackInput carries everything a provider sends back to the callback
// endpoint, via query parameters or a form post.
type CallbackInput struct {
	Provider         string
	Code             string
	State            string
	ErrorCode        string // Provider-reported error, e.g. access_denied.
	ErrorDescription string
}

// LinkInput carries the data to attach an external identity to an
// authenticated user.
type LinkInput struct {
	UserID   uuid.UUID
	Provider string
	Code     string
	State    string
}

// --- Output DTOs ---

// CallbackOutput returns the local session minted after a completed provider
// round-trip, plus where the front end asked to resume.
type CallbackOutput struct {
	AccessToken  string
	RefreshToken string
	IsNewUser    bool
	ReturnURL    string
	User         *entity.User
}

// LinkedAccount is one row of a user's linked-identity listing. Cached
// provider tokens never leave the persistence layer.
type LinkedAccount struct {
	Provider    entity.ProviderType
	Email       string
	DisplayName string
	AvatarURL   string
	ProfileURL  string
	CreatedAt   time.Time
}

// ProviderStatus is one entry of the public provider capability list.
type ProviderStatus struct {
	Provider entity.ProviderType
	Enabled  bool
}

// OAuthUsecase defines the interface for the identity-federation operations:
// starting a provider round-trip, completing it, and managing linked accounts.
type OAuthUsecase interface {
	// Providers lists every supported provider with its enabled flag.
	Providers(ctx context.Context) []ProviderStatus

	// AuthorizationURL starts a login round-trip: issues the correlation
	// state and builds the provider authorization URL.
	AuthorizationURL(ctx context.Context, provider, returnURL string) (string, error)

	// HandleCallback completes a login round-trip: validates state, exchanges
	// the code, resolves the external identity to a local account and mints a
	// session.
	HandleCallback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error)

	// LinkProvider attaches an external identity to the authenticated user.
	LinkProvider(ctx context.Context, input *LinkInput) error

	// UnlinkProvider removes a linked identity, refusing to remove the last
	// remaining authentication method.
	UnlinkProvider(ctx context.Context, userID uuid.UUID, provider string) error

	// ListLinkedAccounts returns the user's authentication methods in a
	// client-safe shape.
	ListLinkedAccounts(ctx context.Context, userID uuid.UUID) ([]*LinkedAccount, error)
}
