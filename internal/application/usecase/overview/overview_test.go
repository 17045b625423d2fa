package overview

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

func (r *fakeHabitRepo) Update(_ context.Context, _ *entity.Habit) error { return nil }

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

type fakeCache struct {
	weekly  map[string]*entity.WeeklyOverview
	monthly map[string]*entity.MonthlyOverview
	gets    int
	sets    int
	fail    bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		weekly:  make(map[string]*entity.WeeklyOverview),
		monthly: make(map[string]*entity.MonthlyOverview),
	}
}

func (c *fakeCache) GetWeekly(_ context.Context, userID uuid.UUID, weekStart valueobject.Day) (*entity.WeeklyOverview, error) {
	c.gets++
	if c.fail {
		return nil, errors.New("cache unavailable")
	}
	return c.weekly[userID.String()+weekStart.String()], nil
}

func (c *fakeCache) SetWeekly(_ context.Context, userID uuid.UUID, weekStart valueobject.Day, overview *entity.WeeklyOverview) error {
	c.sets++
	if c.fail {
		return errors.New("cache unavailable")
	}
	c.weekly[userID.String()+weekStart.String()] = overview
	return nil
}

func (c *fakeCache) GetMonthly(_ context.Context, userID uuid.UUID, year int, month time.Month) (*entity.MonthlyOverview, error) {
	c.gets++
	if c.fail {
		return nil, errors.New("cache unavailable")
	}
	return c.monthly[monthKey(userID, year, month)], nil
}

func (c *fakeCache) SetMonthly(_ context.Context, userID uuid.UUID, year int, month time.Month, overview *entity.MonthlyOverview) error {
	c.sets++
	if c.fail {
		return errors.New("cache unavailable")
	}
	c.monthly[monthKey(userID, year, month)] = overview
	return nil
}

func monthKey(userID uuid.UUID, year int, month time.Month) string {
	return userID.String() + time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func complete(repo *fakeCompletionRepo, userID, habitID uuid.UUID, dates ...valueobject.Day) {
	for _, d := range dates {
		e := entity.NewCompletionEntry(userID, habitID, d)
		e.SetPeriod(entity.TimePeriodNight, 100)
		repo.entries = append(repo.entries, e)
	}
}

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return func() time.Time { return t }
}

func TestRangeIsFullyPast(t *testing.T) {
	tests := []struct {
		rangeEnd valueobject.Day
		today    valueobject.Day
		want     bool
	}{
		{rangeEnd: "2024-01-07", today: "2024-01-08", want: true},
		{rangeEnd: "2024-01-07", today: "2024-01-07", want: false},
		{rangeEnd: "2024-01-07", today: "2024-01-05", want: false},
	}

	for _, tt := range tests {
		if got := RangeIsFullyPast(tt.rangeEnd, tt.today); got != tt.want {
			t.Errorf("RangeIsFullyPast(%s, %s) = %v, want %v", tt.rangeEnd, tt.today, got, tt.want)
		}
	}

	if !MonthIsFullyPast(2024, time.January, "2024-02-01") {
		t.Error("January should be fully past on Feb 1")
	}
	if MonthIsFullyPast(2024, time.January, "2024-01-31") {
		t.Error("January is not fully past on its own last day")
	}
}

func TestBuildDailyProgressBounds(t *testing.T) {
	days := valueobject.DaysIn("2024-01-01", "2024-01-03")

	// No habits in scope: always zero.
	progress := buildDailyProgress(nil, completionIndex{}, days, "2024-01-02")
	for _, p := range progress {
		if p.Completion != 0 {
			t.Errorf("day %s completion = %d, want 0 with no habits", p.Date, p.Completion)
		}
	}
	if !progress[1].IsToday || progress[0].IsToday {
		t.Error("isToday flags wrong")
	}
	if progress[0].DayLabel != "Mon" {
		t.Errorf("DayLabel = %s, want Mon", progress[0].DayLabel)
	}

	// One of three habits completed: round(1/3*100) = 33.
	userID := uuid.New()
	habits := []*entity.Habit{
		entity.NewHabit(userID, "a", "", entity.DefaultHabitColor, 7, entity.TaskTypeRecurring, "2024-01-01", 0),
		entity.NewHabit(userID, "b", "", entity.DefaultHabitColor, 7, entity.TaskTypeRecurring, "2024-01-01", 1),
		entity.NewHabit(userID, "c", "", entity.DefaultHabitColor, 7, entity.TaskTypeRecurring, "2024-01-01", 2),
	}
	completed := completionIndex{habits[0].ID: {"2024-01-01": true}}
	progress = buildDailyProgress(habits, completed, days, "2024-01-05")
	if progress[0].Completion != 33 {
		t.Errorf("completion = %d, want 33", progress[0].Completion)
	}
	for _, p := range progress {
		if p.Completion < 0 || p.Completion > 100 {
			t.Errorf("completion %d out of [0,100]", p.Completion)
		}
	}
}

func TestAverageCompletionOneDecimal(t *testing.T) {
	days := []entity.DailyProgress{
		{Completion: 33}, {Completion: 67}, {Completion: 0},
	}
	// (33+67+0)/3 = 33.333... -> 33.3
	if got := averageCompletion(days); got != 33.3 {
		t.Errorf("averageCompletion = %v, want 33.3", got)
	}
	if got := averageCompletion(nil); got != 0 {
		t.Errorf("averageCompletion(nil) = %v, want 0", got)
	}
}

func TestBuildTopHabitsRankingAndTies(t *testing.T) {
	userID := uuid.New()
	days := valueobject.DaysIn("2024-01-01", "2024-01-04")

	var habits []*entity.Habit
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		habits = append(habits, entity.NewHabit(userID, name, "", entity.DefaultHabitColor, 7, entity.TaskTypeRecurring, "2024-01-01", len(habits)))
	}
	completed := completionIndex{
		habits[1].ID: {"2024-01-01": true, "2024-01-02": true},             // b: 50%
		habits[3].ID: {"2024-01-01": true, "2024-01-02": true},             // d: 50%, tie with b
		habits[5].ID: {"2024-01-01": true, "2024-01-02": true, "2024-01-03": true}, // f: 75%
	}

	top := buildTopHabits(habits, completed, days)

	if len(top) != 5 {
		t.Fatalf("len(top) = %d, want 5", len(top))
	}
	if top[0].Name != "f" || top[0].CompletionRate != 75 {
		t.Errorf("top[0] = %s (%d%%), want f (75%%)", top[0].Name, top[0].CompletionRate)
	}
	// Stable sort: b before d on the 50% tie, encounter order preserved.
	if top[1].Name != "b" || top[2].Name != "d" {
		t.Errorf("tie order = %s, %s; want b, d", top[1].Name, top[2].Name)
	}
}

func TestStreakWithinRangeResetsOnGap(t *testing.T) {
	days := valueobject.DaysIn("2024-01-01", "2024-01-07")
	habitDays := map[valueobject.Day]bool{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-04": true,
		"2024-01-05": true,
		"2024-01-06": true,
	}
	if got := streakWithinRange(habitDays, days); got != 3 {
		t.Errorf("streakWithinRange = %d, want 3", got)
	}
	if got := streakWithinRange(nil, days); got != 0 {
		t.Errorf("streakWithinRange(nil) = %d, want 0", got)
	}
}

func TestGetWeeklyCurrentWeekSkipsCache(t *testing.T) {
	userID := uuid.New()
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}
	cache := newFakeCache()

	habit := entity.NewHabit(userID, "Run", "", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo.habits = append(habitRepo.habits, habit)
	complete(completionRepo, userID, habit.ID, "2024-01-10")

	uc := NewGetWeeklyUseCase(habitRepo, completionRepo, cache, time.Hour).
		WithClock(fixedClock("2024-01-10T15:00:00Z"))

	out, err := uc.Execute(context.Background(), GetWeeklyInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if cache.gets != 0 || cache.sets != 0 {
		t.Errorf("current week touched the cache: gets=%d sets=%d", cache.gets, cache.sets)
	}
	if out.Cached {
		t.Error("current week reported as cached")
	}
	if out.Overview.WeekStart != "2024-01-08" || out.Overview.WeekEnd != "2024-01-14" {
		t.Errorf("week bounds = %s..%s", out.Overview.WeekStart, out.Overview.WeekEnd)
	}
	// Wednesday the 10th is completed: 100% that day, over 7 days -> 14.3.
	if out.Overview.WeeklyAverage != 14.3 {
		t.Errorf("WeeklyAverage = %v, want 14.3", out.Overview.WeeklyAverage)
	}
}

func TestGetWeeklyPastWeekWritesCache(t *testing.T) {
	userID := uuid.New()
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}
	cache := newFakeCache()

	habit := entity.NewHabit(userID, "Run", "", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo.habits = append(habitRepo.habits, habit)
	complete(completionRepo, userID, habit.ID, "2024-01-01", "2024-01-02", "2024-01-03")

	uc := NewGetWeeklyUseCase(habitRepo, completionRepo, cache, time.Hour).
		WithClock(fixedClock("2024-01-10T15:00:00Z"))

	out, err := uc.Execute(context.Background(), GetWeeklyInput{UserID: userID, WeekStart: "2024-01-03"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Cached {
		t.Error("fresh build reported as cached")
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
	if out.Overview.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", out.Overview.LongestStreak)
	}

	// Second request inside the validity window is served from cache.
	out2, err := uc.Execute(context.Background(), GetWeeklyInput{UserID: userID, WeekStart: "2024-01-01"})
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if !out2.Cached {
		t.Error("expected a cache hit")
	}
	for _, d := range out2.Overview.Days {
		if d.IsToday {
			t.Error("past week day flagged as today")
		}
	}
}

func TestGetWeeklyStaleCacheEntryIsRecomputed(t *testing.T) {
	userID := uuid.New()
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}
	cache := newFakeCache()

	stale := &entity.WeeklyOverview{
		WeekStart:    "2024-01-01",
		WeekEnd:      "2024-01-07",
		CalculatedAt: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
	}
	cache.weekly[userID.String()+"2024-01-01"] = stale

	uc := NewGetWeeklyUseCase(habitRepo, completionRepo, cache, time.Hour).
		WithClock(fixedClock("2024-01-10T12:00:00Z")) // entry is two hours old

	out, err := uc.Execute(context.Background(), GetWeeklyInput{UserID: userID, WeekStart: "2024-01-01"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Cached {
		t.Error("stale entry must not be returned as valid")
	}
	if cache.sets != 1 {
		t.Errorf("stale entry not overwritten: sets=%d", cache.sets)
	}
}

func TestGetWeeklyCacheFailureIsNonFatal(t *testing.T) {
	userID := uuid.New()
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}
	cache := newFakeCache()
	cache.fail = true

	uc := NewGetWeeklyUseCase(habitRepo, completionRepo, cache, time.Hour).
		WithClock(fixedClock("2024-01-10T15:00:00Z"))

	out, err := uc.Execute(context.Background(), GetWeeklyInput{UserID: userID, WeekStart: "2024-01-01"})
	if err != nil {
		t.Fatalf("cache failure propagated: %v", err)
	}
	if out.Overview == nil {
		t.Fatal("no overview despite cache failure")
	}
}

func TestGetMonthlyIncludesArchivedHabits(t *testing.T) {
	userID := uuid.New()
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}
	cache := newFakeCache()

	active := entity.NewHabit(userID, "Run", "", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	retired := entity.NewHabit(userID, "Swim", "", entity.DefaultHabitColor, 2, entity.TaskTypeRecurring, "2024-01-01", 1)
	retired.Archive(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	habitRepo.habits = append(habitRepo.habits, active, retired)

	complete(completionRepo, userID, retired.ID, "2024-01-15", "2024-01-16", "2024-01-17", "2024-01-18")
	complete(completionRepo, userID, active.ID, "2024-01-20")

	uc := NewGetMonthlyUseCase(habitRepo, completionRepo, cache, time.Hour).
		WithClock(fixedClock("2024-03-05T09:00:00Z"))

	out, err := uc.Execute(context.Background(), GetMonthlyInput{UserID: userID, Year: 2024, Month: time.January})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(out.Overview.Days) != 31 {
		t.Errorf("days = %d, want 31", len(out.Overview.Days))
	}
	if out.Overview.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d, want 4 from the archived habit", out.Overview.LongestStreak)
	}
	if cache.sets != 1 {
		t.Errorf("past month not cached: sets=%d", cache.sets)
	}

	var retiredStreak int
	for _, hs := range out.Overview.HabitStreaks {
		if hs.HabitID == retired.ID {
			retiredStreak = hs.LongestStreak
		}
	}
	if retiredStreak != 4 {
		t.Errorf("retired habit month streak = %d, want 4", retiredStreak)
	}
}

func TestGetMonthlyRejectsInvalidMonth(t *testing.T) {
	uc := NewGetMonthlyUseCase(&fakeHabitRepo{}, &fakeCompletionRepo{}, newFakeCache(), time.Hour).
		WithClock(fixedClock("2024-03-05T09:00:00Z"))

	if _, err := uc.Execute(context.Background(), GetMonthlyInput{UserID: uuid.New(), Year: 2024, Month: 13}); err == nil {
		t.Error("month 13 accepted")
	}
}

func TestGetHeatmapRange(t *testing.T) {
	userID := uuid.New()
	habitRepo := &fakeHabitRepo{}
	completionRepo := &fakeCompletionRepo{}

	habit := entity.NewHabit(userID, "Run", "", entity.DefaultHabitColor, 3, entity.TaskTypeRecurring, "2024-01-01", 0)
	habitRepo.habits = append(habitRepo.habits, habit)
	complete(completionRepo, userID, habit.ID, "2024-01-05")

	uc := NewGetHeatmapUseCase(habitRepo, completionRepo).
		WithClock(fixedClock("2024-02-01T09:00:00Z"))

	out, err := uc.Execute(context.Background(), GetHeatmapInput{UserID: userID, StartDate: "2024-01-01", EndDate: "2024-01-07"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(out.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(out.Days))
	}
	if out.Days[4].Completion != 100 {
		t.Errorf("completion on the completed day = %d, want 100", out.Days[4].Completion)
	}

	if _, err := uc.Execute(context.Background(), GetHeatmapInput{UserID: userID, StartDate: "2024-01-07", EndDate: "2024-01-01"}); err == nil {
		t.Error("reversed range accepted")
	}
}
