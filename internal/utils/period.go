package utils

import (
	"fmt"
	"time"
)

// Window ist ein halb offenes Zeitfenster [From, To).
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodWeek      = "week"
	PeriodLastWeek  = "last_week"
	PeriodMonth     = "month"
	PeriodLastMonth = "last_month"
	PeriodYear      = "year"
)

// Periods listet alle gültigen Kurznamen.
var Periods = []string{PeriodToday, PeriodYesterday, PeriodWeek, PeriodLastWeek, PeriodMonth, PeriodLastMonth, PeriodYear}

// ResolvePeriod übersetzt einen Kurznamen in ein Fenster in der Zeitzone loc.
// Wochen beginnen am Montag. Das Fenster umfasst immer den ganzen Zeitraum,
// auch wenn er in der Zukunft endet.
func ResolvePeriod(name string, now time.Time, loc *time.Location) (Window, error) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch name {
	case PeriodToday:
		return Window{From: today, To: today.AddDate(0, 0, 1)}, nil
	case PeriodYesterday:
		return Window{From: today.AddDate(0, 0, -1), To: today}, nil
	case PeriodWeek:
		monday := startOfWeek(today)
		return Window{From: monday, To: monday.AddDate(0, 0, 7)}, nil
	case PeriodLastWeek:
		monday := startOfWeek(today)
		return Window{From: monday.AddDate(0, 0, -7), To: monday}, nil
	case PeriodMonth:
		first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return Window{From: first, To: first.AddDate(0, 1, 0)}, nil
	case PeriodLastMonth:
		first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return Window{From: first.AddDate(0, -1, 0), To: first}, nil
	case PeriodYear:
		first := time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return Window{From: first, To: first.AddDate(1, 0, 0)}, nil
	}

	return Window{}, fmt.Errorf("unknown period %q", name)
}

func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7 // Montag = 0
	return day.AddDate(0, 0, -offset)
}

// FormatDuration formatiert Sekunden als HH:MM:SS.
func FormatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
