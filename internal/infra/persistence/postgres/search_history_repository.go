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

// searchHistoryRepository implements the repository.SearchHistoryRepository interface.
type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository is the constructor for searchHistoryRepository.
func NewSearchHistoryRepository(db *gorm.DB) repository.SearchHistoryRepository {
	return &searchHistoryRepository{
		db: db,
	}
}

// Create appends a new history entry for its owning user.
func (repo *searchHistoryRepository) Create(ctx context.Context, entry *entity.SearchHistory) error {
	entryM := fromSearchHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owning user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create search history entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.SearchedAt = entryM.SearchedAt

	return nil
}

// FindRecentByUser retrieves the user's most recent entries, newest first,
// capped at repository.RecentSearchLimit.
func (repo *searchHistoryRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SearchHistory, error) {
	var entryModels []*model.SearchHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(repository.RecentSearchLimit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent searches by user")
	}

	entries := make([]*entity.SearchHistory, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toSearchHistoryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toSearchHistoryDomain converts a GORM SearchHistoryModel to a domain SearchHistory entity.
func toSearchHistoryDomain(data *model.SearchHistoryModel) *entity.SearchHistory {
	if data == nil {
		return nil
	}

	return &entity.SearchHistory{
		ID:         data.ID,
		UserID:     data.UserID,
		ZipCode:    data.ZipCode,
		Filters:    entity.Document(data.Filters),
		SearchedAt: data.SearchedAt,
	}
}

// fromSearchHistoryDomain converts a domain SearchHistory entity to a GORM SearchHistoryModel.
func fromSearchHistoryDomain(data *entity.SearchHistory) *model.SearchHistoryModel {
	if data == nil {
		return nil
	}

	return &model.SearchHistoryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ZipCode:    data.ZipCode,
		Filters:    datatypes.JSON(data.Filters),
		SearchedAt: data.SearchedAt,
	}
}
