package models

import "testing"

func TestCountLabel(t *testing.T) {
	cases := map[int]string{
		0:     "Rest day",
		1:     "1 exercise",
		2:     "2 exercises",
		7:     "7 exercises",
		1000:  "1000 exercises",
		12345: "12345 exercises",
	}
	for n, want := range cases {
		if got := CountLabel(n); got != want {
			t.Fatalf("CountLabel(%d): expected %q, got %q", n, want, got)
		}
	}
}

func TestWeekSummary(t *testing.T) {
	s := Schedule{
		Monday: {NewExerciseEntry(1, "Core", "Planks"), NewExerciseEntry(2, "Cardio", "Running")},
		Friday: {NewExerciseEntry(3, "Flexibility", "Yoga")},
	}
	s = ToggleComplete(s, Monday, 2)

	week := s.Week()
	if len(week.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week.Days))
	}
	if week.Days[0].Day != Monday || week.Days[6].Day != Sunday {
		t.Fatalf("expected Monday..Sunday order, got %s..%s", week.Days[0].Day, week.Days[6].Day)
	}
	mon := week.Days[0]
	if mon.Total != 2 || mon.Completed != 1 || mon.Minutes != 60 || mon.IsRest {
		t.Fatalf("unexpected monday summary %+v", mon)
	}
	if mon.Short != "Mon" || mon.Label != "2 exercises" {
		t.Fatalf("unexpected monday labels %+v", mon)
	}
	if !week.Days[1].IsRest || week.Days[1].Label != "Rest day" {
		t.Fatalf("expected tuesday rest day, got %+v", week.Days[1])
	}
	if week.Total != 3 || week.Completed != 1 || week.Minutes != 90 || week.RestDays != 5 {
		t.Fatalf("unexpected week totals %+v", week)
	}
}
