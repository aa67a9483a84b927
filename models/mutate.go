package models

import (
	"strconv"
	"strings"
	"unicode"
)

// Field names an editable numeric parameter of an ExerciseEntry.
type Field string

const (
	FieldSets     Field = "sets"
	FieldReps     Field = "reps"
	FieldDuration Field = "duration"
)

// ParseField maps a wire name to a Field.
func ParseField(s string) (Field, bool) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldSets, FieldReps, FieldDuration:
		return f, true
	}
	return "", false
}

// ParseIntOr parses the leading integer of raw: optional whitespace, an
// optional sign, then decimal digits, or hex digits after "0x". Anything
// after the digits is ignored, so "12kg" is 12, "3.9" is 3 and "0x1f" is
// 31. Without digits, or on overflow, it returns fallback.
func ParseIntOr(raw string, fallback int) int {
	s := strings.TrimLeftFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit, s = 16, isHex, s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return fallback
	}
	n, err := strconv.ParseInt(sign+s[:end], base, strconv.IntSize)
	if err != nil {
		return fallback
	}
	return int(n)
}

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// AddExercise appends entry to day, creating the day if needed.
func AddExercise(s Schedule, day Day, entry ExerciseEntry) Schedule {
	out := s.clone()
	current := s[day]
	entries := make([]ExerciseEntry, len(current), len(current)+1)
	copy(entries, current)
	out[day] = append(entries, entry)
	return out
}

// RemoveExercise drops the entry with id from day. A missing day or id
// leaves the schedule unchanged.
func RemoveExercise(s Schedule, day Day, id int64) Schedule {
	if _, ok := s.Find(day, id); !ok {
		return s
	}
	out := s.clone()
	entries := make([]ExerciseEntry, 0, len(s[day]))
	for _, e := range s[day] {
		if e.ID != id {
			entries = append(entries, e)
		}
	}
	out[day] = entries
	return out
}

// ToggleComplete flips the completed flag of the entry with id on day.
func ToggleComplete(s Schedule, day Day, id int64) Schedule {
	return updateEntry(s, day, id, func(e *ExerciseEntry) {
		e.Completed = !e.Completed
	})
}

// UpdateField sets one numeric field of the entry with id on day from raw,
// read through ParseIntOr with a fallback of 0. Unknown fields are ignored.
func UpdateField(s Schedule, day Day, id int64, field Field, raw string) Schedule {
	v := ParseIntOr(raw, 0)
	var set func(e *ExerciseEntry)
	switch field {
	case FieldSets:
		set = func(e *ExerciseEntry) { e.Sets = v }
	case FieldReps:
		set = func(e *ExerciseEntry) { e.Reps = v }
	case FieldDuration:
		set = func(e *ExerciseEntry) { e.Duration = v }
	default:
		return s
	}
	return updateEntry(s, day, id, set)
}

func updateEntry(s Schedule, day Day, id int64, fn func(e *ExerciseEntry)) Schedule {
	if _, ok := s.Find(day, id); !ok {
		return s
	}
	out := s.clone()
	entries := make([]ExerciseEntry, len(s[day]))
	copy(entries, s[day])
	for i := range entries {
		if entries[i].ID == id {
			fn(&entries[i])
		}
	}
	out[day] = entries
	return out
}
