package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

type fakeHabitRepo struct {
	habits map[uuid.UUID]*entity.Habit
}

func newFakeHabitRepo(habits ...*entity.Habit) *fakeHabitRepo {
	repo := &fakeHabitRepo{habits: make(map[uuid.UUID]*entity.Habit)}
	for _, h := range habits {
		repo.habits[h.ID] = h
	}
	return repo
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	return r.habits[id], nil
}

func (r *fakeHabitRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			habits = append(habits, h)
		}
	}
	return habits, nil
}

func (r *fakeHabitRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for _, h := range r.habits {
		if h.UserID == userID && h.IsActive {
			habits = append(habits, h)
		}
	}
	return habits, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *entity.Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	habits, _ := r.FindByUserID(context.Background(), userID)
	return len(habits), nil
}

type fakeCompletionRepo struct {
	entries []*entity.CompletionEntry
}

func (r *fakeCompletionRepo) Upsert(_ context.Context, entry *entity.CompletionEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeCompletionRepo) FindByHabitAndDate(_ context.Context, _, habitID uuid.UUID, date valueobject.Day) (*entity.CompletionEntry, error) {
	for _, e := range r.entries {
		if e.HabitID == habitID && e.Date == date {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeCompletionRepo) FindByHabit(_ context.Context, _, habitID uuid.UUID) ([]*entity.CompletionEntry, error) {
	var log []*entity.CompletionEntry
	for _, e := range r.entries {
		if e.HabitID == habitID {
			log = append(log, e)
		}
	}
	return log, nil
}

func (r *fakeCompletionRepo) FindByUserAndRange(_ context.Context, userID uuid.UUID, start, end valueobject.Day) ([]*entity.CompletionEntry, error) {
	var log []*entity.CompletionEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end) {
			log = append(log, e)
		}
	}
	return log, nil
}

type snapshotKey struct {
	habitID uuid.UUID
	date    valueobject.Day
}

type fakeSnapshotRepo struct {
	rows       map[snapshotKey]*entity.StreakSnapshot
	failHabits map[uuid.UUID]bool
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{
		rows:       make(map[snapshotKey]*entity.StreakSnapshot),
		failHabits: make(map[uuid.UUID]bool),
	}
}

func (r *fakeSnapshotRepo) Upsert(_ context.Context, snap *entity.StreakSnapshot) error {
	if r.failHabits[snap.HabitID] {
		return errors.New("storage unavailable")
	}
	key := snapshotKey{habitID: snap.HabitID, date: snap.SnapshotDate}
	if existing, ok := r.rows[key]; ok {
		// Matching key overwrites stats, it never duplicates the row.
		snap.ID = existing.ID
		snap.CreatedAt = existing.CreatedAt
	}
	r.rows[key] = snap
	return nil
}

func (r *fakeSnapshotRepo) FindByHabitAndDate(_ context.Context, _, habitID uuid.UUID, date valueobject.Day) (*entity.StreakSnapshot, error) {
	return r.rows[snapshotKey{habitID: habitID, date: date}], nil
}

func (r *fakeSnapshotRepo) FindLatestPerHabit(_ context.Context, userID uuid.UUID, archived bool) ([]*entity.StreakSnapshot, error) {
	latest := make(map[uuid.UUID]*entity.StreakSnapshot)
	for _, snap := range r.rows {
		if snap.UserID != userID || snap.IsArchived != archived {
			continue
		}
		if cur, ok := latest[snap.HabitID]; !ok || snap.SnapshotDate.After(cur.SnapshotDate) {
			latest[snap.HabitID] = snap
		}
	}
	var snaps []*entity.StreakSnapshot
	for _, snap := range latest {
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func (r *fakeSnapshotRepo) CountByHabit(_ context.Context, _, habitID uuid.UUID) (int64, error) {
	var count int64
	for key := range r.rows {
		if key.habitID == habitID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSnapshotRepo) MarkHabitArchived(_ context.Context, _, habitID uuid.UUID, archivedAt time.Time) error {
	for _, snap := range r.rows {
		if snap.HabitID == habitID {
			snap.StreakType = entity.StreakTypeArchived
			snap.IsArchived = true
			at := archivedAt
			snap.ArchivedAt = &at
		}
	}
	return nil
}

func seedCompletions(repo *fakeCompletionRepo, userID, habitID uuid.UUID, dates ...valueobject.Day) {
	for _, d := range dates {
		e := entity.NewCompletionEntry(userID, habitID, d)
		e.SetPeriod(entity.TimePeriodMorning, 100)
		repo.entries = append(repo.entries, e)
	}
}

func TestSnapshotHabitStoresStreakState(t *testing.T) {
	userID := uuid.New()
	habit := entity.NewHabit(userID, "Meditate", "wellness", entity.DefaultHabitColor, 7, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo := newFakeHabitRepo(habit)
	completionRepo := &fakeCompletionRepo{}
	snapshotRepo := newFakeSnapshotRepo()
	seedCompletions(completionRepo, userID, habit.ID, "2024-01-01", "2024-01-02", "2024-01-03")

	uc := NewSnapshotHabitUseCase(habitRepo, completionRepo, snapshotRepo)
	out, err := uc.Execute(context.Background(), SnapshotHabitInput{UserID: userID, HabitID: habit.ID, Date: "2024-01-03"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	snap := out.Snapshot
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.CurrentStreak != 3 || snap.LongestStreak != 3 || snap.TotalCompletions != 3 {
		t.Errorf("snapshot stats = %d/%d/%d, want 3/3/3", snap.CurrentStreak, snap.LongestStreak, snap.TotalCompletions)
	}
	if snap.StreakType != entity.StreakTypeActive {
		t.Errorf("StreakType = %s, want active", snap.StreakType)
	}
	if snap.HabitName != "Meditate" || snap.HabitCategory != "wellness" {
		t.Errorf("snapshot did not denormalize habit fields: %+v", snap)
	}
}

func TestSnapshotHabitMissingHabitYieldsNil(t *testing.T) {
	uc := NewSnapshotHabitUseCase(newFakeHabitRepo(), &fakeCompletionRepo{}, newFakeSnapshotRepo())

	out, err := uc.Execute(context.Background(), SnapshotHabitInput{UserID: uuid.New(), HabitID: uuid.New(), Date: "2024-01-03"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Snapshot != nil {
		t.Errorf("expected nil snapshot for a missing habit, got %+v", out.Snapshot)
	}
}

func TestSnapshotHabitIsIdempotent(t *testing.T) {
	userID := uuid.New()
	habit := entity.NewHabit(userID, "Run", "fitness", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo := newFakeHabitRepo(habit)
	completionRepo := &fakeCompletionRepo{}
	snapshotRepo := newFakeSnapshotRepo()
	seedCompletions(completionRepo, userID, habit.ID, "2024-01-01", "2024-01-02")

	uc := NewSnapshotHabitUseCase(habitRepo, completionRepo, snapshotRepo)
	input := SnapshotHabitInput{UserID: userID, HabitID: habit.ID, Date: "2024-01-02"}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	first, _ := snapshotRepo.FindByHabitAndDate(context.Background(), userID, habit.ID, "2024-01-02")

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	second, _ := snapshotRepo.FindByHabitAndDate(context.Background(), userID, habit.ID, "2024-01-02")

	if count, _ := snapshotRepo.CountByHabit(context.Background(), userID, habit.ID); count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
	if first.ID != second.ID {
		t.Error("re-snapshotting the same date replaced the row instead of overwriting it")
	}
	if first.StreakResult != second.StreakResult {
		t.Errorf("re-running diverged: %+v vs %+v", first.StreakResult, second.StreakResult)
	}
}

func TestArchiveOnDeletionPreservesHistory(t *testing.T) {
	userID := uuid.New()
	habit := entity.NewHabit(userID, "Journal", "wellness", entity.DefaultHabitColor, 7, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo := newFakeHabitRepo(habit)
	completionRepo := &fakeCompletionRepo{}
	snapshotRepo := newFakeSnapshotRepo()
	seedCompletions(completionRepo, userID, habit.ID, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")

	snapshotUC := NewSnapshotHabitUseCase(habitRepo, completionRepo, snapshotRepo)

	// Daily snapshots already exist for the first days.
	for _, d := range []valueobject.Day{"2024-01-03", "2024-01-04"} {
		if _, err := snapshotUC.Execute(context.Background(), SnapshotHabitInput{UserID: userID, HabitID: habit.ID, Date: d}); err != nil {
			t.Fatalf("seeding snapshot for %s failed: %v", d, err)
		}
	}

	deletionTime := time.Date(2024, 1, 5, 22, 15, 0, 0, time.UTC)
	habit.Archive(deletionTime)

	uc := NewArchiveOnDeletionUseCase(snapshotUC, snapshotRepo).WithClock(func() time.Time { return deletionTime })
	if err := uc.Execute(context.Background(), ArchiveOnDeletionInput{UserID: userID, HabitID: habit.ID}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	count, _ := snapshotRepo.CountByHabit(context.Background(), userID, habit.ID)
	if count != 3 {
		t.Errorf("snapshot rows = %d, want 3 (two historical plus the final one)", count)
	}

	final, _ := snapshotRepo.FindByHabitAndDate(context.Background(), userID, habit.ID, "2024-01-05")
	if final == nil {
		t.Fatal("final snapshot for the deletion day is missing")
	}
	if final.CurrentStreak != 5 {
		t.Errorf("final CurrentStreak = %d, want 5", final.CurrentStreak)
	}

	for _, snap := range snapshotRepo.rows {
		if !snap.IsArchived || snap.StreakType != entity.StreakTypeArchived {
			t.Errorf("snapshot %s not archived: type=%s archived=%v", snap.SnapshotDate, snap.StreakType, snap.IsArchived)
		}
	}
}

func TestSnapshotAllContinuesPastFailures(t *testing.T) {
	userID := uuid.New()
	good := entity.NewHabit(userID, "Read", "learning", entity.DefaultHabitColor, 5, entity.TaskTypeRecurring, "2024-01-01", 0)
	bad := entity.NewHabit(userID, "Stretch", "fitness", entity.DefaultHabitColor, 5, entity.TaskTypeRecurring, "2024-01-01", 1)
	archived := entity.NewHabit(userID, "Piano", "music", entity.DefaultHabitColor, 2, entity.TaskTypeRecurring, "2024-01-01", 2)
	archived.Archive(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	habitRepo := newFakeHabitRepo(good, bad, archived)
	completionRepo := &fakeCompletionRepo{}
	snapshotRepo := newFakeSnapshotRepo()
	snapshotRepo.failHabits[bad.ID] = true

	snapshotUC := NewSnapshotHabitUseCase(habitRepo, completionRepo, snapshotRepo)
	uc := NewSnapshotAllUseCase(habitRepo, snapshotUC)

	out, err := uc.Execute(context.Background(), SnapshotAllInput{UserID: userID, Date: "2024-01-03"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Snapshotted != 2 {
		t.Errorf("Snapshotted = %d, want 2 (archived habits are included)", out.Snapshotted)
	}
	if out.Failed != 1 {
		t.Errorf("Failed = %d, want 1", out.Failed)
	}

	archivedSnap, _ := snapshotRepo.FindByHabitAndDate(context.Background(), userID, archived.ID, "2024-01-03")
	if archivedSnap == nil || archivedSnap.StreakType != entity.StreakTypeArchived {
		t.Errorf("archived habit snapshot = %+v, want streak type archived", archivedSnap)
	}
}
