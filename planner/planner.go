// Package planner holds the weekly schedule for one session and writes it
// through to durable storage after every change.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/LianHaeming/workoutplanner/models"
	"github.com/LianHaeming/workoutplanner/storage"
)

// ScheduleKey is the slot key holding the serialized schedule.
const ScheduleKey = "workoutSchedule"

const tracerName = "github.com/LianHaeming/workoutplanner/planner"

// ErrPersist wraps failures to write the schedule to its slot. The
// in-memory schedule has already been updated when it is returned.
var ErrPersist = errors.New("persist schedule")

// Planner owns the current schedule. Commands apply a pure mutation from
// models, swap in the result and save it. Commands are serialized.
type Planner struct {
	mu       sync.Mutex
	slot     storage.Slot
	logger   *zap.Logger
	ids      *IDSource
	catalog  models.Catalog
	schedule models.Schedule
	tracer   trace.Tracer
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock sets the clock used for new entry ids.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.ids = NewIDSource(now) }
}

// WithCatalog replaces the built-in exercise catalog.
func WithCatalog(c models.Catalog) Option {
	return func(p *Planner) { p.catalog = c }
}

// New returns a Planner with an empty schedule. Call Load to read the
// stored one.
func New(slot storage.Slot, logger *zap.Logger, opts ...Option) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Planner{
		slot:     slot,
		logger:   logger,
		ids:      NewIDSource(nil),
		catalog:  models.DefaultCatalog(),
		schedule: models.Schedule{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads the stored schedule and makes it current. A missing,
// unreadable or malformed value yields an empty schedule; the problem is
// logged, never returned.
func (p *Planner) Load(ctx context.Context) models.Schedule {
	ctx, span := p.tracer.Start(ctx, "planner.Load")
	defer span.End()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.schedule = p.read(ctx)
	p.ids.Observe(p.schedule.MaxID())
	span.SetAttributes(attribute.Int("schedule.entries", p.schedule.Count()))
	return p.schedule
}

func (p *Planner) read(ctx context.Context) models.Schedule {
	raw, ok, err := p.slot.Get(ctx, ScheduleKey)
	if err != nil {
		p.logger.Warn("could not read schedule, starting empty", zap.Error(err))
		return models.Schedule{}
	}
	if !ok {
		return models.Schedule{}
	}
	s, err := Decode(raw)
	if err != nil {
		p.logger.Warn("stored schedule is malformed, starting empty",
			zap.Error(err),
			zap.Int("bytes", len(raw)),
		)
		return models.Schedule{}
	}
	return s
}

// Decode parses a serialized schedule. JSON null decodes to an empty one.
func Decode(raw string) (models.Schedule, error) {
	var s models.Schedule
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	if s == nil {
		s = models.Schedule{}
	}
	return s, nil
}

// Save overwrites the stored schedule with s.
func (p *Planner) Save(ctx context.Context, s models.Schedule) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := p.slot.Set(ctx, ScheduleKey, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Schedule returns the current snapshot. Snapshots are never modified once
// published; callers must treat them as read-only.
func (p *Planner) Schedule() models.Schedule {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.schedule
}

// Catalog returns the exercise catalog offered by the picker.
func (p *Planner) Catalog() models.Catalog {
	return p.catalog
}

// AddExercise plans a new default entry for name at the end of day and
// returns it.
func (p *Planner) AddExercise(ctx context.Context, day models.Day, category, name string) (models.ExerciseEntry, error) {
	entry := models.NewExerciseEntry(p.ids.Next(), category, name)
	err := p.apply(ctx, "AddExercise", day, entry.ID, func(s models.Schedule) models.Schedule {
		return models.AddExercise(s, day, entry)
	})
	return entry, err
}

// RemoveExercise deletes the entry with id from day.
func (p *Planner) RemoveExercise(ctx context.Context, day models.Day, id int64) error {
	return p.apply(ctx, "RemoveExercise", day, id, func(s models.Schedule) models.Schedule {
		return models.RemoveExercise(s, day, id)
	})
}

// ToggleComplete flips the completed flag of the entry with id on day.
func (p *Planner) ToggleComplete(ctx context.Context, day models.Day, id int64) error {
	return p.apply(ctx, "ToggleComplete", day, id, func(s models.Schedule) models.Schedule {
		return models.ToggleComplete(s, day, id)
	})
}

// UpdateField sets field of the entry with id on day from raw, with 0 for
// unparseable input.
func (p *Planner) UpdateField(ctx context.Context, day models.Day, id int64, field models.Field, raw string) error {
	return p.apply(ctx, "UpdateField", day, id, func(s models.Schedule) models.Schedule {
		return models.UpdateField(s, day, id, field, raw)
	})
}

// apply runs mutate against the current schedule, publishes the result and
// writes it through. A failed write is logged and returned; the new
// schedule stays current.
func (p *Planner) apply(ctx context.Context, op string, day models.Day, id int64, mutate func(models.Schedule) models.Schedule) error {
	ctx, span := p.tracer.Start(ctx, "planner."+op, trace.WithAttributes(
		attribute.String("day", string(day)),
		attribute.Int64("exercise.id", id),
	))
	defer span.End()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.schedule = mutate(p.schedule)

	if err := p.Save(ctx, p.schedule); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		p.logger.Error("schedule not persisted",
			zap.String("op", op),
			zap.String("day", string(day)),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
