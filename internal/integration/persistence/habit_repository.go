// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create creates a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a habit by its ID, or nil when it does not exist.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindByUserID retrieves all of a user's habits in creation order,
// including archived ones.
func (r *habitRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toHabitEntities(habitModels), nil
}

// FindActiveByUserID retrieves the user's non-archived habits in creation order.
func (r *habitRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("position ASC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toHabitEntities(habitModels), nil
}

// Update updates an existing habit in the database.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Save(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountByUserID returns the number of habits the user has ever created.
func (r *habitRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.HabitModel{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

func toHabitEntities(habitModels []model.HabitModel) []*entity.Habit {
	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits
}
