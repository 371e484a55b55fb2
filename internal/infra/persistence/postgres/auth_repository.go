package postgres

import (
	"context"
	"strings"

	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/domain/repository"
	"bid4service/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new authentication method. Unique-index
// violations are mapped to the domain conflict matching the violated index:
// the external identity already belongs to someone, or the user already holds
// a link for this provider.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(constraintName(err), "user_provider") {
				return domainerrors.ErrAlreadyLinked.WrapMessage("user already holds this provider")
			}

			return domainerrors.ErrAlreadyLinked.WrapMessage("external identity already linked")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("authentication references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt
	auth.UpdatedAt = authM.UpdatedAt

	return nil
}

// UpdateAuthentication refreshes an existing record, typically to cache new
// provider tokens and display metadata after a login.
func (repo *authRepository) UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthDomain(auth)

	if err := repo.db.WithContext(ctx).Save(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyLinked.WrapMessage("authentication conflicts with existing link")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update authentication")
	}

	auth.UpdatedAt = authM.UpdatedAt

	return nil
}

// DeleteAuthentication removes an authentication method by its ID.
func (repo *authRepository) DeleteAuthentication(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AuthenticationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete authentication")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	authM := &model.AuthenticationModel{}
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(authM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthDomain(authM), nil
}

// FindAuthenticationByUser finds the authentication method a user holds for one provider.
func (repo *authRepository) FindAuthenticationByUser(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	authM := &model.AuthenticationModel{}
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(authM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication by user")
	}

	return toAuthDomain(authM), nil
}

// ListAuthenticationsByUser returns all authentication methods for a user,
// oldest first.
func (repo *authRepository) ListAuthenticationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error) {
	var authMs []*model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&authMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authentications")
	}

	auths := make([]*entity.Authentication, 0, len(authMs))
	for _, authM := range authMs {
		auths = append(auths, toAuthDomain(authM))
	}

	return auths, nil
}

// CountAuthenticationsByUser returns how many authentication methods a user holds.
func (repo *authRepository) CountAuthenticationsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count authentications")
	}

	return count, nil
}

// --- Mapper Functions ---

func toAuthDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		TokenExpiresAt: data.TokenExpiresAt,
		Email:          data.Email,
		DisplayName:    data.DisplayName,
		AvatarURL:      data.AvatarURL,
		ProfileURL:     data.ProfileURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAuthDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider.String(),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		TokenExpiresAt: data.TokenExpiresAt,
		Email:          data.Email,
		DisplayName:    data.DisplayName,
		AvatarURL:      data.AvatarURL,
		ProfileURL:     data.ProfileURL,
	}
}
