package export

import (
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/LianHaeming/workoutplanner/models"
)

// CalendarOptions positions the exported week in time.
type CalendarOptions struct {
	// WeekOf is any moment in the week to anchor to; its location is used
	// for event times.
	WeekOf time.Time
	// StartHour is when the first exercise of each day begins.
	StartHour int
	// Stamp is written as DTSTAMP on every event.
	Stamp time.Time
}

// WeekStart returns midnight of the Monday on or before t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ICS renders s as an iCalendar feed. Each entry becomes a weekly
// recurring event; a day's entries run back to back from StartHour for
// their planned minutes.
func ICS(s models.Schedule, opts CalendarOptions) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//workoutplanner//Weekly Plan//EN")
	cal.SetXWRCalName("Workout plan")

	monday := WeekStart(opts.WeekOf)
	for i, day := range models.Days {
		start := monday.AddDate(0, 0, i).Add(time.Duration(opts.StartHour) * time.Hour)
		for _, e := range s[day] {
			minutes := e.Duration
			if minutes < 0 {
				minutes = 0
			}
			end := start.Add(time.Duration(minutes) * time.Minute)

			event := cal.AddEvent(strconv.FormatInt(e.ID, 10) + "@workoutplanner")
			event.SetDtStampTime(opts.Stamp)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(e.Name)
			event.SetDescription(fmt.Sprintf("%s: %d sets x %d reps, %d min", e.Category, e.Sets, e.Reps, e.Duration))
			event.AddRrule("FREQ=WEEKLY")

			start = end
		}
	}
	return cal.Serialize()
}
