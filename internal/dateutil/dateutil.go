// Package dateutil converts between calendar dates and ISO date strings and
// computes week and month boundaries.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the ISO date layout used on the wire.
const Layout = "2006-01-02"

// FormatDate formats t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// ParseDate parses a YYYY-MM-DD string as local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today returns local midnight of the current day.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// Monday returns midnight of the Monday that starts t's week.
func Monday(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday has Sunday=0; shift so Monday=0.
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

// WeekRange is a Monday..Sunday window.
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// GetWeekDates returns the week window offset weeks from the week containing now.
// Offset 0 is the current week; negative offsets go backward.
func GetWeekDates(now time.Time, offset int) WeekRange {
	start := Monday(now).AddDate(0, 0, offset*7)
	return WeekRange{Start: start, End: start.AddDate(0, 0, 6)}
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves a month cursor by delta months, rolling the year over.
// The result is always the first of the month so day overflow cannot skip a month.
func AddMonths(t time.Time, delta int) time.Time {
	return FirstOfMonth(t).AddDate(0, delta, 0)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDate returns the YYYY-MM-DD string for a day of the given month.
func MonthDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ClockLayout is the 24-hour HH:MM layout used for task times.
const ClockLayout = "15:04"

// ValidClock reports whether s is a 24-hour HH:MM time.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil && len(s) == 5
}
