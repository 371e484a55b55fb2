// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a single method of logging in (a credential).
// A local password is one record with Provider "password"; every linked
// external identity is another record keyed by (Provider, ProviderUserID).
// An account must keep at least one Authentication row at all times.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g. "password", "google", "apple".
	ProviderUserID string       // The user's unique ID at the external provider (e.g. Google's 'sub' claim).
	PasswordHash   string       // bcrypt hash, only populated when Provider is "password".

	// Cached provider credentials, refreshed on every successful login.
	AccessToken    string     // Provider access token.
	RefreshToken   string     // Provider refresh token, when the provider issues one.
	TokenExpiresAt *time.Time // Expiry of the cached access token, when known.

	// Cached display metadata from the provider profile.
	Email       string // Email as reported by the provider at link time.
	DisplayName string // Display name as reported by the provider.
	AvatarURL   string // Avatar URL as reported by the provider.
	ProfileURL  string // Public profile URL, when the provider exposes one.

	CreatedAt time.Time // When this authentication method was first linked.
	UpdatedAt time.Time // When the cached tokens/metadata were last refreshed.
}

// IsPassword reports whether this record is the local password credential.
func (a *Authentication) IsPassword() bool {
	return a.Provider == ProviderTypePassword
}

// RefreshToken represents a long-lived, authorized user session. It is used
// to obtain a new access token after the old one expires, without requiring
// credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e., when the user logged in).
}
