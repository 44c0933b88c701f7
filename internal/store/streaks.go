package store

import (
	"sort"
	"time"

	"github.com/hy4ri/habitflow/internal/dateutil"
)

// currentStreak counts consecutive completed days ending today. If today
// is not completed yet the streak may still end yesterday. Both the
// dashboard and per-habit analytics use this rule, so a habit not yet
// checked today keeps the streak it had at the end of yesterday.
func currentStreak(done map[string]bool, today time.Time) int {
	day := today
	if !done[dateutil.FormatDate(day)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for done[dateutil.FormatDate(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// bestStreak returns the longest run of consecutive dates.
func bestStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		prev, err := dateutil.ParseDate(sorted[i-1])
		if err != nil {
			run = 1
			continue
		}
		switch sorted[i] {
		case sorted[i-1]:
			continue
		case dateutil.FormatDate(prev.AddDate(0, 0, 1)):
			run++
		default:
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
