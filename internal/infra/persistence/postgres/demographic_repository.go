// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	"heatmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// demographicRepository implements the repository.DemographicRepository interface.
type demographicRepository struct {
	db *gorm.DB
}

// NewDemographicRepository is the constructor for demographicRepository.
func NewDemographicRepository(db *gorm.DB) repository.DemographicRepository {
	return &demographicRepository{
		db: db,
	}
}

// Upsert inserts the record or updates the existing row for its ZIP code.
// The update runs first; when it touches no row the record is inserted, and
// a duplicate-key failure on that insert means a concurrent load created the
// row in between, so the write retries as an update and reports as one.
func (repo *demographicRepository) Upsert(ctx context.Context, record *entity.Demographic) (bool, error) {
	recordM := fromDemographicDomain(record)

	updated, err := repo.updateByZip(ctx, recordM)
	if err != nil {
		return false, err
	}
	if updated {
		return false, nil
	}

	err = repo.db.WithContext(ctx).Create(recordM).Error
	if err == nil {
		// Update the entity with generated values
		record.ID = recordM.ID
		record.UpdatedAt = recordM.UpdatedAt

		return true, nil
	}
	if !isUniqueConstraintViolation(err) {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to insert demographic record")
	}

	// Lost the race to a concurrent load for the same ZIP code.
	if _, err := repo.updateByZip(ctx, recordM); err != nil {
		return false, err
	}

	return false, nil
}

// updateByZip overwrites the loadable columns of the row for this ZIP code
// and reports whether a row was touched. The row ID and the ZIP code itself
// never change once a row exists.
func (repo *demographicRepository) updateByZip(ctx context.Context, recordM *model.DemographicModel) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DemographicModel{}).
		Where("zip_code = ?", recordM.ZipCode).
		Updates(map[string]any{
			"city":              recordM.City,
			"state":             recordM.State,
			"population":        recordM.Population,
			"median_income":     recordM.MedianIncome,
			"median_age":        recordM.MedianAge,
			"median_home_value": recordM.MedianHomeValue,
			"households":        recordM.Households,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update demographic record")
	}

	return result.RowsAffected > 0, nil
}

// FindByZip retrieves the record for a ZIP code.
func (repo *demographicRepository) FindByZip(ctx context.Context, zipCode string) (*entity.Demographic, error) {
	var recordM model.DemographicModel

	if err := repo.db.WithContext(ctx).
		Where("zip_code = ?", zipCode).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDemographicNotFound
		}

		return nil, errors.Wrap(err, "failed to find demographic by zip code")
	}

	return toDemographicDomain(&recordM), nil
}

// FindAll retrieves every record ordered by ZIP code.
func (repo *demographicRepository) FindAll(ctx context.Context) ([]*entity.Demographic, error) {
	var recordModels []*model.DemographicModel

	if err := repo.db.WithContext(ctx).
		Order("zip_code ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all demographics")
	}

	records := make([]*entity.Demographic, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toDemographicDomain(recordM))
	}

	return records, nil
}

// Count returns the total number of demographic records.
func (repo *demographicRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DemographicModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count demographics")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDemographicDomain converts a GORM DemographicModel to a domain Demographic entity.
func toDemographicDomain(data *model.DemographicModel) *entity.Demographic {
	if data == nil {
		return nil
	}

	return &entity.Demographic{
		ID:              data.ID,
		ZipCode:         data.ZipCode,
		City:            data.City,
		State:           data.State,
		Population:      data.Population,
		MedianIncome:    data.MedianIncome,
		MedianAge:       data.MedianAge,
		MedianHomeValue: data.MedianHomeValue,
		Households:      data.Households,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDemographicDomain converts a domain Demographic entity to a GORM DemographicModel.
func fromDemographicDomain(data *entity.Demographic) *model.DemographicModel {
	if data == nil {
		return nil
	}

	return &model.DemographicModel{
		ID:              data.ID,
		ZipCode:         data.ZipCode,
		City:            data.City,
		State:           data.State,
		Population:      data.Population,
		MedianIncome:    data.MedianIncome,
		MedianAge:       data.MedianAge,
		MedianHomeValue: data.MedianHomeValue,
		Households:      data.Households,
		UpdatedAt:       data.UpdatedAt,
	}
}
