// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// completionRepository implements the adapter.CompletionRepository interface.
type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new completion repository instance.
func NewCompletionRepository(db *gorm.DB) adapter.CompletionRepository {
	return &completionRepository{
		db: db,
	}
}

// Upsert writes the entry keyed by (user, habit, date). A conflicting row
// keeps its id and created_at; only the period columns move.
func (r *completionRepository) Upsert(ctx context.Context, entry *entity.CompletionEntry) error {
	entryModel := model.CompletionEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"morning", "afternoon", "evening", "night", "updated_at",
		}),
	}).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByHabitAndDate retrieves one entry, or nil when none exists.
func (r *completionRepository) FindByHabitAndDate(ctx context.Context, userID, habitID uuid.UUID, date valueobject.Day) (*entity.CompletionEntry, error) {
	var entryModel model.CompletionEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND date = ?", userID, habitID, date.String()).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByHabit retrieves one habit's full completion log in date order.
func (r *completionRepository) FindByHabit(ctx context.Context, userID, habitID uuid.UUID) ([]*entity.CompletionEntry, error) {
	var entryModels []model.CompletionEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Order("date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCompletionEntities(entryModels), nil
}

// FindByUserAndRange retrieves every entry of the user within the inclusive
// date range, across all habits.
func (r *completionRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end valueobject.Day) ([]*entity.CompletionEntry, error) {
	var entryModels []model.CompletionEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.String(), end.String()).
		Order("date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCompletionEntities(entryModels), nil
}

func toCompletionEntities(entryModels []model.CompletionEntryModel) []*entity.CompletionEntry {
	entries := make([]*entity.CompletionEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries
}
