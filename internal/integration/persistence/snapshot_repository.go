// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Upsert writes the snapshot keyed by (user, habit, snapshot date). A
// conflicting row keeps its id and created_at and takes the new streak
// state, which is what makes re-snapshotting a day idempotent.
func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *entity.StreakSnapshot) error {
	snapshotModel := model.StreakSnapshotFromEntity(snapshot)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "habit_id"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"habit_name", "habit_color", "habit_category", "streak_type",
			"current_streak", "longest_streak", "start_date", "end_date",
			"last_completed_date", "total_completions", "completion_rate",
			"is_archived", "archived_at", "updated_at",
		}),
	}).Create(snapshotModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByHabitAndDate retrieves one snapshot, or nil when none exists.
func (r *snapshotRepository) FindByHabitAndDate(ctx context.Context, userID, habitID uuid.UUID, date valueobject.Day) (*entity.StreakSnapshot, error) {
	var snapshotModel model.StreakSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND snapshot_date = ?", userID, habitID, date.String()).
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity(), nil
}

// FindLatestPerHabit retrieves the most recent snapshot of each habit,
// filtered by archived state.
func (r *snapshotRepository) FindLatestPerHabit(ctx context.Context, userID uuid.UUID, archived bool) ([]*entity.StreakSnapshot, error) {
	var snapshotModels []model.StreakSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_archived = ?", userID, archived).
		Where(`snapshot_date = (
			SELECT MAX(s2.snapshot_date) FROM streak_snapshots s2
			WHERE s2.habit_id = streak_snapshots.habit_id AND s2.user_id = streak_snapshots.user_id
		)`).
		Order("current_streak DESC").
		Find(&snapshotModels)
	if result.Error != nil {
		return nil, result.Error
	}

	snapshots := make([]*entity.StreakSnapshot, len(snapshotModels))
	for i, sm := range snapshotModels {
		snapshots[i] = sm.ToEntity()
	}
	return snapshots, nil
}

// CountByHabit returns the number of snapshot rows for one habit.
func (r *snapshotRepository) CountByHabit(ctx context.Context, userID, habitID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.StreakSnapshotModel{}).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// MarkHabitArchived flips every snapshot row of the habit to the archived
// streak type. Rows are never deleted.
func (r *snapshotRepository) MarkHabitArchived(ctx context.Context, userID, habitID uuid.UUID, archivedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.StreakSnapshotModel{}).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Updates(map[string]interface{}{
			"streak_type": string(entity.StreakTypeArchived),
			"is_archived": true,
			"archived_at": archivedAt,
			"updated_at":  archivedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
