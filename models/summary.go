package models

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const exerciseCountKey = "%d exercises"

// The plural form is chosen on the count (arg 1) but the number is printed
// from its plain decimal text (arg 2), so large counts stay ungrouped.
func init() {
	message.Set(language.English, exerciseCountKey,
		plural.Selectf(1, "%d",
			"=1", "1 exercise",
			"other", "%[2]s exercises",
		))
}

// DaySummary is the week-grid card for one day.
type DaySummary struct {
	Day       Day    `json:"day"`
	Short     string `json:"short"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Minutes   int    `json:"minutes"`
	IsRest    bool   `json:"isRest"`
	Label     string `json:"label"`
}

// WeekSummary holds the seven day cards in display order plus totals.
type WeekSummary struct {
	Days      []DaySummary `json:"days"`
	Total     int          `json:"total"`
	Completed int          `json:"completed"`
	Minutes   int          `json:"minutes"`
	RestDays  int          `json:"restDays"`
}

// Summarize computes the card for day.
func (s Schedule) Summarize(day Day) DaySummary {
	entries := s[day]
	sum := DaySummary{
		Day:   day,
		Short: day.Short(),
		Total: len(entries),
	}
	for _, e := range entries {
		if e.Completed {
			sum.Completed++
		}
		sum.Minutes += e.Duration
	}
	sum.IsRest = sum.Total == 0
	sum.Label = CountLabel(sum.Total)
	return sum
}

// Week summarizes every day in Days order.
func (s Schedule) Week() WeekSummary {
	week := WeekSummary{Days: make([]DaySummary, 0, len(Days))}
	for _, day := range Days {
		sum := s.Summarize(day)
		week.Days = append(week.Days, sum)
		week.Total += sum.Total
		week.Completed += sum.Completed
		week.Minutes += sum.Minutes
		if sum.IsRest {
			week.RestDays++
		}
	}
	return week
}

// CountLabel is the card caption: "Rest day", "1 exercise" or "N exercises".
func CountLabel(n int) string {
	if n == 0 {
		return "Rest day"
	}
	return message.NewPrinter(language.English).Sprintf(exerciseCountKey, n, strconv.Itoa(n))
}
