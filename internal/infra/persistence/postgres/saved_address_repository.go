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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// savedAddressRepository implements the repository.SavedAddressRepository interface.
type savedAddressRepository struct {
	db *gorm.DB
}

// NewSavedAddressRepository is the constructor for savedAddressRepository.
func NewSavedAddressRepository(db *gorm.DB) repository.SavedAddressRepository {
	return &savedAddressRepository{
		db: db,
	}
}

// Create persists a new bookmark for its owning user.
func (repo *savedAddressRepository) Create(ctx context.Context, address *entity.SavedAddress) error {
	addressM := fromSavedAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owning user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required saved address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create saved address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindByID retrieves a bookmark by its unique ID.
func (repo *savedAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedAddress, error) {
	var addressM model.SavedAddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved address by ID")
	}

	return toSavedAddressDomain(&addressM), nil
}

// FindByUser retrieves all bookmarks owned by a user, newest first.
func (repo *savedAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedAddress, error) {
	var addressModels []*model.SavedAddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find saved addresses by user")
	}

	addresses := make([]*entity.SavedAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toSavedAddressDomain(addressM))
	}

	return addresses, nil
}

// FindAll retrieves every bookmark, newest first.
func (repo *savedAddressRepository) FindAll(ctx context.Context) ([]*entity.SavedAddress, error) {
	var addressModels []*model.SavedAddressModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all saved addresses")
	}

	addresses := make([]*entity.SavedAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toSavedAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateNameAndNotes mutates the only two fields that may change after creation.
func (repo *savedAddressRepository) UpdateNameAndNotes(ctx context.Context, id uuid.UUID, name, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SavedAddressModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  name,
			"notes": notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update saved address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSavedAddressNotFound
	}

	return nil
}

// Delete removes a bookmark by its ID.
func (repo *savedAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedAddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSavedAddressNotFound
	}

	return nil
}

// Count returns the total number of bookmarks.
func (repo *savedAddressRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SavedAddressModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count saved addresses")
	}

	return count, nil
}

// --- Mapper Functions ---

// toSavedAddressDomain converts a GORM SavedAddressModel to a domain SavedAddress entity.
func toSavedAddressDomain(data *model.SavedAddressModel) *entity.SavedAddress {
	if data == nil {
		return nil
	}

	return &entity.SavedAddress{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		ZipCode:     data.ZipCode,
		AddressType: entity.AddressType(data.AddressType),
		FiltersUsed: entity.Document(data.FiltersUsed),
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
	}
}

// fromSavedAddressDomain converts a domain SavedAddress entity to a GORM SavedAddressModel.
func fromSavedAddressDomain(data *entity.SavedAddress) *model.SavedAddressModel {
	if data == nil {
		return nil
	}

	return &model.SavedAddressModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		ZipCode:     data.ZipCode,
		AddressType: data.AddressType.String(),
		FiltersUsed: datatypes.JSON(data.FiltersUsed),
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
	}
}
