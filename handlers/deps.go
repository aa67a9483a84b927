package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/LianHaeming/workoutplanner/planner"
	"github.com/LianHaeming/workoutplanner/storage"
	"github.com/LianHaeming/workoutplanner/tmpl"
)

// Deps holds all handler dependencies.
type Deps struct {
	Planner      *planner.Planner
	Settings     *storage.SettingsStore
	Templates    *tmpl.Templates
	Logger       *zap.Logger
	ICSStartHour int
	// Now anchors calendar exports; defaults to time.Now.
	Now func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Deps) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}
