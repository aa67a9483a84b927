package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/LianHaeming/workoutplanner/models"
)

// WeekPageData is the template data for the week grid.
type WeekPageData struct {
	Settings models.UserSettings
	Week     models.WeekSummary
}

// HandleWeek renders the seven day cards.
func (d *Deps) HandleWeek(w http.ResponseWriter, r *http.Request) {
	data := WeekPageData{
		Settings: d.Settings.Get(r.Context()),
		Week:     d.Planner.Schedule().Week(),
	}
	d.render(w, "week.html", data)
}

// DayPageData is the template data for the day panel.
type DayPageData struct {
	Settings models.UserSettings
	Summary  models.DaySummary
	Entries  []models.ExerciseEntry
	Catalog  models.Catalog
	Prev     models.Day
	Next     models.Day
	Fields   []models.Field
}

// HandleDay renders one day's entries and the catalog picker.
func (d *Deps) HandleDay(w http.ResponseWriter, r *http.Request) {
	data, ok := d.dayPageData(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	d.render(w, "day.html", data)
}

// HandleDayEntriesPartial returns just the entry list of a day, for
// refreshing the panel after a command.
func (d *Deps) HandleDayEntriesPartial(w http.ResponseWriter, r *http.Request) {
	data, ok := d.dayPageData(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	d.render(w, "partials/entries.html", data)
}

func (d *Deps) dayPageData(r *http.Request) (DayPageData, bool) {
	day, ok := models.ParseDay(chi.URLParam(r, "day"))
	if !ok {
		return DayPageData{}, false
	}

	schedule := d.Planner.Schedule()
	i := day.Index()
	n := len(models.Days)

	return DayPageData{
		Settings: d.Settings.Get(r.Context()),
		Summary:  schedule.Summarize(day),
		Entries:  schedule.Entries(day),
		Catalog:  d.Planner.Catalog(),
		Prev:     models.Days[(i+n-1)%n],
		Next:     models.Days[(i+1)%n],
		Fields:   []models.Field{models.FieldSets, models.FieldReps, models.FieldDuration},
	}, true
}

// SettingsPageData is the template data for the settings page.
type SettingsPageData struct {
	Settings models.UserSettings
}

// HandleSettingsPage renders the settings form.
func (d *Deps) HandleSettingsPage(w http.ResponseWriter, r *http.Request) {
	d.render(w, "settings.html", SettingsPageData{Settings: d.Settings.Get(r.Context())})
}

func (d *Deps) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.Templates.ExecuteTemplate(w, name, data); err != nil {
		d.logger().Error("template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
