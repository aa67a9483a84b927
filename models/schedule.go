package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Day is a calendar day name used as a schedule key.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days is the fixed display order of the week.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay returns the canonical day for s, ignoring case and surrounding space.
func ParseDay(s string) (Day, bool) {
	// A Caser keeps state between calls, so each parse gets its own.
	d := Day(cases.Title(language.English).String(strings.TrimSpace(s)))
	for _, known := range Days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Short returns the three-letter label shown on the week grid.
func (d Day) Short() string {
	r := []rune(string(d))
	if len(r) <= 3 {
		return string(d)
	}
	return string(r[:3])
}

// Index returns the position of d in Days, or -1.
func (d Day) Index() int {
	for i, known := range Days {
		if d == known {
			return i
		}
	}
	return -1
}

// Default parameters for a freshly planned exercise.
const (
	DefaultSets     = 3
	DefaultReps     = 10
	DefaultDuration = 30 // minutes
)

// ExerciseEntry is one planned exercise on one day.
type ExerciseEntry struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Duration  int    `json:"duration"`
	Completed bool   `json:"completed"`
}

// NewExerciseEntry builds an entry with the default sets, reps and duration.
func NewExerciseEntry(id int64, category, name string) ExerciseEntry {
	return ExerciseEntry{
		ID:        id,
		Category:  category,
		Name:      name,
		Sets:      DefaultSets,
		Reps:      DefaultReps,
		Duration:  DefaultDuration,
		Completed: false,
	}
}

// UnmarshalJSON reads an entry, truncating fractional numbers toward zero
// so one stray "3.5" does not make the whole stored schedule unreadable.
func (e *ExerciseEntry) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID        json.Number `json:"id"`
		Category  string      `json:"category"`
		Name      string      `json:"name"`
		Sets      json.Number `json:"sets"`
		Reps      json.Number `json:"reps"`
		Duration  json.Number `json:"duration"`
		Completed bool        `json:"completed"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	id, err := wholeNumber("id", wire.ID)
	if err != nil {
		return err
	}
	out := ExerciseEntry{ID: id, Category: wire.Category, Name: wire.Name, Completed: wire.Completed}
	for _, f := range []struct {
		name string
		raw  json.Number
		dst  *int
	}{
		{"sets", wire.Sets, &out.Sets},
		{"reps", wire.Reps, &out.Reps},
		{"duration", wire.Duration, &out.Duration},
	} {
		n, err := wholeNumber(f.name, f.raw)
		if err != nil {
			return err
		}
		if int64(int(n)) != n {
			return fmt.Errorf("%s: %s out of range", f.name, f.raw)
		}
		*f.dst = int(n)
	}
	*e = out
	return nil
}

func wholeNumber(field string, n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%s: %s is not a usable number", field, n)
	}
	return int64(math.Trunc(f)), nil
}

// Schedule maps a day to its ordered exercises. A missing day is a rest day.
//
// Schedules are values: mutations return a new map and never touch the
// slices of the receiver, so untouched days may be shared between snapshots.
type Schedule map[Day][]ExerciseEntry

// Entries returns the exercises planned for day, or nil.
func (s Schedule) Entries(day Day) []ExerciseEntry {
	return s[day]
}

// Find returns the entry with the given id on day.
func (s Schedule) Find(day Day, id int64) (ExerciseEntry, bool) {
	for _, e := range s[day] {
		if e.ID == id {
			return e, true
		}
	}
	return ExerciseEntry{}, false
}

// MaxID returns the largest entry id across all days, or 0.
func (s Schedule) MaxID() int64 {
	var max int64
	for _, entries := range s {
		for _, e := range entries {
			if e.ID > max {
				max = e.ID
			}
		}
	}
	return max
}

// Count returns the total number of entries across all days.
func (s Schedule) Count() int {
	n := 0
	for _, entries := range s {
		n += len(entries)
	}
	return n
}

// Equal reports whether s and other hold the same entries in the same order.
// An absent day and an empty day compare equal.
func (s Schedule) Equal(other Schedule) bool {
	seen := map[Day]bool{}
	for day := range s {
		seen[day] = true
	}
	for day := range other {
		seen[day] = true
	}
	for day := range seen {
		a, b := s[day], other[day]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// clone returns a shallow copy of the map; day slices are shared.
func (s Schedule) clone() Schedule {
	out := make(Schedule, len(s)+1)
	for day, entries := range s {
		out[day] = entries
	}
	return out
}
