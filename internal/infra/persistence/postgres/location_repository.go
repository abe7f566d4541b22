// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	"heatmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create persists a new location for its owning user.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owning user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt

	return nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindByUser retrieves all locations owned by a user, newest first.
func (repo *locationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by user")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindAll retrieves every location, newest first.
func (repo *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Count returns the total number of locations.
func (repo *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count locations")
	}

	return count, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		ZipCode:      data.ZipCode,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		BusinessType: entity.NormalizeBusinessType(data.BusinessType),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		ZipCode:      data.ZipCode,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		BusinessType: data.BusinessType.String(),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
	}
}
