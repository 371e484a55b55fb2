// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bid4service/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
)

// AuthRepository defines the standard operations for authentication-method
// persistence: local password credentials and linked external identities.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	// Uniqueness on (provider, provider_user_id) and on (user_id, provider)
	// is enforced by the store; violations surface as domain conflict errors.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// UpdateAuthentication refreshes an existing record, typically to cache
	// new provider tokens and display metadata after a login.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// DeleteAuthentication removes an authentication method by its ID.
	DeleteAuthentication(ctx context.Context, id uuid.UUID) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUser finds the authentication method a user holds for one provider.
	FindAuthenticationByUser(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	// ListAuthenticationsByUser returns all authentication methods for a user.
	ListAuthenticationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error)

	// CountAuthenticationsByUser returns how many authentication methods a
	// user holds. Used to enforce the at-least-one-auth-method invariant.
	CountAuthenticationsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
