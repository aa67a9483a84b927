package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LianHaeming/workoutplanner/models"
	"github.com/LianHaeming/workoutplanner/storage"
)

// flakySlot wraps a MemorySlot and fails writes while failSet is true.
type flakySlot struct {
	*storage.MemorySlot
	failSet bool
	failGet bool
	sets    int
}

var errDiskFull = errors.New("disk full")

func (s *flakySlot) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGet {
		return "", false, errors.New("slot offline")
	}
	return s.MemorySlot.Get(ctx, key)
}

func (s *flakySlot) Set(ctx context.Context, key, value string) error {
	s.sets++
	if s.failSet {
		return errDiskFull
	}
	return s.MemorySlot.Set(ctx, key, value)
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func newTestPlanner(t *testing.T, slot storage.Slot, opts ...Option) *Planner {
	t.Helper()
	return New(slot, zaptest.NewLogger(t), opts...)
}

func TestLoadEmptySlot(t *testing.T) {
	p := newTestPlanner(t, storage.NewMemorySlot())
	s := p.Load(context.Background())
	if s == nil || len(s) != 0 {
		t.Fatalf("expected empty schedule, got %+v", s)
	}
}

func TestLoadMalformedSlotLogsAndStartsEmpty(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"{not json", "[]", `{"Monday": "planks"}`} {
		slot := storage.NewMemorySlot()
		if err := slot.Set(ctx, ScheduleKey, raw); err != nil {
			t.Fatalf("seed slot: %v", err)
		}

		core, logs := observer.New(zap.WarnLevel)
		p := New(slot, zap.New(core))

		s := p.Load(ctx)
		if len(s) != 0 {
			t.Fatalf("load %q: expected empty schedule, got %+v", raw, s)
		}
		if logs.FilterMessage("stored schedule is malformed, starting empty").Len() != 1 {
			t.Fatalf("load %q: expected one warning, got %v", raw, logs.All())
		}
	}
}

func TestLoadKeepsScheduleWithFractionalNumbers(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot()
	raw := `{"Monday":[{"id":1,"category":"Core","name":"Planks","sets":3.5,"reps":10,"duration":30,"completed":false}],` +
		`"Friday":[{"id":2,"category":"Cardio","name":"Running","sets":3,"reps":10,"duration":45,"completed":true}]}`
	if err := slot.Set(ctx, ScheduleKey, raw); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	p := newTestPlanner(t, slot)
	s := p.Load(ctx)
	if s.Count() != 2 {
		t.Fatalf("expected both entries to survive, got %+v", s)
	}
	if e, ok := s.Find(models.Monday, 1); !ok || e.Sets != 3 {
		t.Fatalf("expected Planks with 3 sets, got %+v (%v)", e, ok)
	}
}

func TestLoadNullIsEmpty(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot()
	_ = slot.Set(ctx, ScheduleKey, "null")

	s := newTestPlanner(t, slot).Load(ctx)
	if s == nil || len(s) != 0 {
		t.Fatalf("expected empty non-nil schedule, got %#v", s)
	}
}

func TestLoadReadFailureStartsEmpty(t *testing.T) {
	slot := &flakySlot{MemorySlot: storage.NewMemorySlot(), failGet: true}
	core, logs := observer.New(zap.WarnLevel)

	s := New(slot, zap.New(core)).Load(context.Background())
	if len(s) != 0 {
		t.Fatalf("expected empty schedule, got %+v", s)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
}

func TestLoadThenSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot()

	first := newTestPlanner(t, slot, WithClock(fixedClock(1_700_000_000_000)))
	first.Load(ctx)
	if _, err := first.AddExercise(ctx, models.Monday, "Core", "Planks"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := first.AddExercise(ctx, models.Friday, "Cardio", "Running"); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, _, _ := slot.Get(ctx, ScheduleKey)

	second := newTestPlanner(t, slot)
	if err := second.Save(ctx, second.Load(ctx)); err != nil {
		t.Fatalf("save: %v", err)
	}
	after, _, _ := slot.Get(ctx, ScheduleKey)
	if before != after {
		t.Fatalf("expected byte-identical storage\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestAddExerciseScenario(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot()
	p := newTestPlanner(t, slot, WithClock(fixedClock(1_700_000_000_000)))
	p.Load(ctx)

	entry, err := p.AddExercise(ctx, models.Monday, "Core", "Planks")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected id to be assigned")
	}

	monday := p.Schedule()[models.Monday]
	if len(monday) != 1 {
		t.Fatalf("expected 1 monday entry, got %d", len(monday))
	}
	want := models.ExerciseEntry{ID: entry.ID, Category: "Core", Name: "Planks", Sets: 3, Reps: 10, Duration: 30}
	if monday[0] != want {
		t.Fatalf("expected %+v, got %+v", want, monday[0])
	}

	stored, ok, _ := slot.Get(ctx, ScheduleKey)
	if !ok {
		t.Fatal("expected add to write through")
	}
	decoded, err := Decode(stored)
	if err != nil {
		t.Fatalf("decode stored: %v", err)
	}
	if !decoded.Equal(p.Schedule()) {
		t.Fatalf("expected stored schedule to match memory, got %s", stored)
	}
}

func TestIDsAreUniqueAcrossDays(t *testing.T) {
	ctx := context.Background()
	p := newTestPlanner(t, storage.NewMemorySlot(), WithClock(fixedClock(5000)))
	p.Load(ctx)

	seen := map[int64]bool{}
	for _, day := range models.Days {
		for i := 0; i < 3; i++ {
			e, err := p.AddExercise(ctx, day, "Core", "Planks")
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			if seen[e.ID] {
				t.Fatalf("duplicate id %d", e.ID)
			}
			seen[e.ID] = true
		}
	}
}

func TestLoadSeedsIDSource(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot()
	_ = slot.Set(ctx, ScheduleKey, `{"Monday":[{"id":9000,"category":"Core","name":"Planks","sets":3,"reps":10,"duration":30,"completed":false}]}`)

	p := newTestPlanner(t, slot, WithClock(fixedClock(100)))
	p.Load(ctx)
	e, err := p.AddExercise(ctx, models.Tuesday, "Core", "Planks")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID <= 9000 {
		t.Fatalf("expected id above stored max, got %d", e.ID)
	}
}

func TestCommandsWriteThrough(t *testing.T) {
	ctx := context.Background()
	slot := &flakySlot{MemorySlot: storage.NewMemorySlot()}
	p := newTestPlanner(t, slot)
	p.Load(ctx)

	e, _ := p.AddExercise(ctx, models.Tuesday, "Core", "Planks")
	_ = p.ToggleComplete(ctx, models.Tuesday, e.ID)
	_ = p.UpdateField(ctx, models.Tuesday, e.ID, models.FieldReps, "15")
	_ = p.RemoveExercise(ctx, models.Tuesday, 424242)
	_ = p.RemoveExercise(ctx, models.Tuesday, e.ID)

	if slot.sets != 5 {
		t.Fatalf("expected a save per command, got %d", slot.sets)
	}
}

func TestTuesdayCompletedCount(t *testing.T) {
	ctx := context.Background()
	p := newTestPlanner(t, storage.NewMemorySlot())
	p.Load(ctx)

	first, _ := p.AddExercise(ctx, models.Tuesday, "Core", "Planks")
	_, _ = p.AddExercise(ctx, models.Tuesday, "Cardio", "Running")
	if err := p.ToggleComplete(ctx, models.Tuesday, first.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	sum := p.Schedule().Summarize(models.Tuesday)
	if sum.Completed != 1 || sum.Total != 2 {
		t.Fatalf("expected 1/2 completed, got %d/%d", sum.Completed, sum.Total)
	}
}

func TestUpdateFieldFallback(t *testing.T) {
	ctx := context.Background()
	p := newTestPlanner(t, storage.NewMemorySlot())
	p.Load(ctx)

	e, _ := p.AddExercise(ctx, models.Monday, "Core", "Planks")
	if err := p.UpdateField(ctx, models.Monday, e.ID, models.FieldReps, "abc"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := p.Schedule().Find(models.Monday, e.ID)
	if got.Reps != 0 {
		t.Fatalf("expected reps 0, got %d", got.Reps)
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	slot := &flakySlot{MemorySlot: storage.NewMemorySlot()}
	core, logs := observer.New(zap.ErrorLevel)
	p := New(slot, zap.New(core))
	p.Load(ctx)

	slot.failSet = true
	e, err := p.AddExercise(ctx, models.Wednesday, "Lower Body", "Squats")
	if !errors.Is(err, ErrPersist) || !errors.Is(err, errDiskFull) {
		t.Fatalf("expected ErrPersist wrapping disk full, got %v", err)
	}
	if _, ok := p.Schedule().Find(models.Wednesday, e.ID); !ok {
		t.Fatal("expected entry to stay in memory after failed save")
	}
	if logs.FilterMessage("schedule not persisted").Len() != 1 {
		t.Fatalf("expected save failure to be logged, got %v", logs.All())
	}

	slot.failSet = false
	if err := p.ToggleComplete(ctx, models.Wednesday, e.ID); err != nil {
		t.Fatalf("toggle after recovery: %v", err)
	}
	stored, _, _ := slot.Get(ctx, ScheduleKey)
	decoded, err := Decode(stored)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, ok := decoded.Find(models.Wednesday, e.ID)
	if !ok || !got.Completed {
		t.Fatalf("expected next save to reconcile storage, got %s", stored)
	}
}

func TestCatalogDefaultsAndOverride(t *testing.T) {
	p := newTestPlanner(t, storage.NewMemorySlot())
	if !p.Catalog().Contains("Core", "Planks") {
		t.Fatal("expected default catalog")
	}

	custom := models.Catalog{{Name: "Mobility", Exercises: []string{"Hip Circles"}}}
	p = newTestPlanner(t, storage.NewMemorySlot(), WithCatalog(custom))
	if !p.Catalog().Contains("Mobility", "Hip Circles") || p.Catalog().Contains("Core", "Planks") {
		t.Fatalf("expected custom catalog, got %+v", p.Catalog())
	}
}
