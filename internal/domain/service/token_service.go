package service

import (
	"time"

	"bid4service/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the verified content of a local session token.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	TokenType string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating the local
// session credentials (JWTs). Access and refresh tokens are signed with
// distinct secrets; the refresh token carries only the account id plus a
// token-type marker.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hash under which a raw refresh token is persisted.
	HashToken(raw string) string

	// RefreshTokenTTL returns the configured lifetime for refresh tokens.
	RefreshTokenTTL() time.Duration
}
