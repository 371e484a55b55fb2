// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the local account identity. The marketplace modules (jobs, bids,
// messaging) hang their data off this id; the federation core only reads and
// creates accounts, it never deletes them.
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email         string    // The user's primary contact email. Unique across all accounts.
	Name          string    // The user's display name.
	AvatarURL     string    // Profile picture URL, usually seeded from the first linked provider.
	Role          Role      // Marketplace role. OAuth sign-up defaults to RoleCustomer.
	EmailVerified bool      // True when the email was verified locally or vouched for by an OAuth provider.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}
