package habit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/usecase/snapshot"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

type fakeHabitRepo struct {
	habits []*entity.Habit
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.habits = append(r.habits, habit)
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	for _, h := range r.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
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
	for i, h := range r.habits {
		if h.ID == habit.ID {
			r.habits[i] = habit
			return nil
		}
	}
	return errors.New("habit not found")
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

type fakeSnapshotRepo struct {
	snapshots map[string]*entity.StreakSnapshot
	archived  map[uuid.UUID]bool
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{
		snapshots: make(map[string]*entity.StreakSnapshot),
		archived:  make(map[uuid.UUID]bool),
	}
}

func (r *fakeSnapshotRepo) Upsert(_ context.Context, s *entity.StreakSnapshot) error {
	r.snapshots[s.HabitID.String()+s.SnapshotDate.String()] = s
	return nil
}

func (r *fakeSnapshotRepo) FindByHabitAndDate(_ context.Context, _, habitID uuid.UUID, date valueobject.Day) (*entity.StreakSnapshot, error) {
	return r.snapshots[habitID.String()+date.String()], nil
}

func (r *fakeSnapshotRepo) FindLatestPerHabit(_ context.Context, _ uuid.UUID, _ bool) ([]*entity.StreakSnapshot, error) {
	return nil, nil
}

func (r *fakeSnapshotRepo) CountByHabit(_ context.Context, _, habitID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.snapshots {
		if s.HabitID == habitID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSnapshotRepo) MarkHabitArchived(_ context.Context, _, habitID uuid.UUID, _ time.Time) error {
	r.archived[habitID] = true
	for _, s := range r.snapshots {
		if s.HabitID == habitID {
			s.IsArchived = true
		}
	}
	return nil
}

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return func() time.Time { return t }
}

func TestCreateHabitDefaults(t *testing.T) {
	repo := &fakeHabitRepo{}
	uc := NewCreateHabitUseCase(repo).WithClock(fixedClock("2024-03-10T08:00:00Z"))
	userID := uuid.New()

	out, err := uc.Execute(context.Background(), CreateHabitInput{
		UserID: userID,
		Name:   "  Meditate  ",
		Goal:   5,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	h := out.Habit
	if h.Name != "Meditate" {
		t.Errorf("Name = %q, want trimmed", h.Name)
	}
	if h.Color != entity.DefaultHabitColor {
		t.Errorf("Color = %q, want default", h.Color)
	}
	if h.TaskType != entity.TaskTypeRecurring {
		t.Errorf("TaskType = %q, want recurring", h.TaskType)
	}
	if h.StartDate != "2024-03-10" {
		t.Errorf("StartDate = %s, want today", h.StartDate)
	}
	if h.Position != 0 {
		t.Errorf("Position = %d, want 0", h.Position)
	}

	out2, err := uc.Execute(context.Background(), CreateHabitInput{UserID: userID, Name: "Read"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if out2.Habit.Position != 1 {
		t.Errorf("second Position = %d, want 1", out2.Habit.Position)
	}
}

func TestCreateHabitValidation(t *testing.T) {
	uc := NewCreateHabitUseCase(&fakeHabitRepo{})
	userID := uuid.New()

	tests := []struct {
		name  string
		input CreateHabitInput
	}{
		{name: "blank name", input: CreateHabitInput{UserID: userID, Name: "   "}},
		{name: "bad task type", input: CreateHabitInput{UserID: userID, Name: "x", TaskType: "weekly"}},
		{name: "goal above 7", input: CreateHabitInput{UserID: userID, Name: "x", Goal: 8}},
		{name: "negative goal", input: CreateHabitInput{UserID: userID, Name: "x", Goal: -1}},
		{name: "malformed start date", input: CreateHabitInput{UserID: userID, Name: "x", StartDate: "10-03-2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tt.input); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestListHabitsVisibilityFilter(t *testing.T) {
	repo := &fakeHabitRepo{}
	userID := uuid.New()

	recurring := entity.NewHabit(userID, "Run", "", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-10", 0)
	oneOff := entity.NewHabit(userID, "Dentist", "", entity.DefaultHabitColor, 0, entity.TaskTypeSingleDay, "2024-01-15", 1)
	retired := entity.NewHabit(userID, "Swim", "", entity.DefaultHabitColor, 2, entity.TaskTypeRecurring, "2024-01-01", 2)
	retired.Archive(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	repo.habits = append(repo.habits, recurring, oneOff, retired)

	uc := NewListHabitsUseCase(repo)

	out, err := uc.Execute(context.Background(), ListHabitsInput{UserID: userID, Date: "2024-01-15"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(out.Habits) != 2 {
		t.Fatalf("visible on Jan 15 = %d habits, want 2", len(out.Habits))
	}

	// Single-day habit is invisible on any other day; archived habit is
	// invisible after its archival day.
	out, _ = uc.Execute(context.Background(), ListHabitsInput{UserID: userID, Date: "2024-01-16"})
	if len(out.Habits) != 1 || out.Habits[0].Name != "Run" {
		t.Errorf("visible on Jan 16 = %v", names(out.Habits))
	}

	// Before its archival the retired habit still shows.
	out, _ = uc.Execute(context.Background(), ListHabitsInput{UserID: userID, Date: "2024-01-11"})
	if len(out.Habits) != 2 {
		t.Errorf("visible on Jan 11 = %v, want Run and Swim", names(out.Habits))
	}

	// No date: active only, unless archived are requested.
	out, _ = uc.Execute(context.Background(), ListHabitsInput{UserID: userID})
	if len(out.Habits) != 2 {
		t.Errorf("active = %v, want 2", names(out.Habits))
	}
	out, _ = uc.Execute(context.Background(), ListHabitsInput{UserID: userID, IncludeArchived: true})
	if len(out.Habits) != 3 {
		t.Errorf("all = %v, want 3", names(out.Habits))
	}
}

func names(habits []*entity.Habit) []string {
	var out []string
	for _, h := range habits {
		out = append(out, h.Name)
	}
	return out
}

func TestUpdateHabitPartialFields(t *testing.T) {
	repo := &fakeHabitRepo{}
	userID := uuid.New()
	habit := entity.NewHabit(userID, "Run", "fitness", "#FF0000", 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	repo.habits = append(repo.habits, habit)

	uc := NewUpdateHabitUseCase(repo)

	goal := 5
	out, err := uc.Execute(context.Background(), UpdateHabitInput{
		UserID:  userID,
		HabitID: habit.ID,
		Goal:    &goal,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Habit.Goal != 5 {
		t.Errorf("Goal = %d, want 5", out.Habit.Goal)
	}
	if out.Habit.Name != "Run" || out.Habit.Color != "#FF0000" {
		t.Error("untouched fields changed")
	}

	if _, err := uc.Execute(context.Background(), UpdateHabitInput{
		UserID:  uuid.New(),
		HabitID: habit.ID,
	}); err == nil {
		t.Error("foreign user allowed to update habit")
	}

	var habitErr *domainerror.HabitError
	_, err = uc.Execute(context.Background(), UpdateHabitInput{UserID: userID, HabitID: uuid.New()})
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitNotFound {
		t.Errorf("missing habit error = %v", err)
	}
}

func TestArchiveHabitPreservesStreakHistory(t *testing.T) {
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}
	snapshotRepo := newFakeSnapshotRepo()
	userID := uuid.New()

	habit := entity.NewHabit(userID, "Run", "", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo.habits = append(habitRepo.habits, habit)
	for _, d := range []valueobject.Day{"2024-01-08", "2024-01-09", "2024-01-10"} {
		e := entity.NewCompletionEntry(userID, habit.ID, d)
		e.SetPeriod(entity.TimePeriodMorning, 100)
		completionRepo.entries = append(completionRepo.entries, e)
	}

	clock := fixedClock("2024-01-10T22:00:00Z")
	snapshotHabit := snapshot.NewSnapshotHabitUseCase(habitRepo, completionRepo, snapshotRepo)
	archiveStreak := snapshot.NewArchiveOnDeletionUseCase(snapshotHabit, snapshotRepo).WithClock(clock)
	uc := NewArchiveHabitUseCase(habitRepo, archiveStreak).WithClock(clock)

	if err := uc.Execute(context.Background(), ArchiveHabitInput{UserID: userID, HabitID: habit.ID}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !habit.IsArchived() {
		t.Error("habit not archived")
	}
	final := snapshotRepo.snapshots[habit.ID.String()+"2024-01-10"]
	if final == nil {
		t.Fatal("final snapshot missing")
	}
	if final.CurrentStreak != 3 {
		t.Errorf("final CurrentStreak = %d, want 3", final.CurrentStreak)
	}
	if !final.IsArchived {
		t.Error("final snapshot not marked archived")
	}
	if final.StreakType != entity.StreakTypeArchived {
		t.Errorf("StreakType = %s, want archived", final.StreakType)
	}

	// Second archive attempt is rejected, history untouched.
	err := uc.Execute(context.Background(), ArchiveHabitInput{UserID: userID, HabitID: habit.ID})
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitAlreadyArchived {
		t.Errorf("second archive error = %v", err)
	}
}
