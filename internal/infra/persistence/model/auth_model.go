package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel mirrors the 'user_authentications' table. One row per
// authentication method: the local password credential or one linked external
// identity. Two composite unique indexes carry the core invariants: an
// external identity belongs to at most one user, and a user holds at most one
// link per provider.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_auth_user_provider"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_external;uniqueIndex:idx_auth_user_provider"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_external"`
	PasswordHash   string    `gorm:"type:varchar(255)"`

	// Cached provider tokens and display metadata, refreshed on every login
	// through the provider.
	AccessToken    string `gorm:"type:text"`
	RefreshToken   string `gorm:"type:text"`
	TokenExpiresAt *time.Time
	Email          string `gorm:"type:varchar(255)"`
	DisplayName    string `gorm:"type:varchar(255)"`
	AvatarURL      string `gorm:"type:varchar(512)"`
	ProfileURL     string `gorm:"type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Tokens are stored as
// SHA-256 hashes; the raw value never reaches the database.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
