package ui

import (
	"math"
	"time"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
)

// EmptyHabitsMessage is shown under the calendar header when there are no habits.
const EmptyHabitsMessage = "No habits yet. Press 'a' to add your first habit."

// EmptyTasksMessage is shown when the task date has no tasks.
const EmptyTasksMessage = "No tasks for this day. Press 'a' to add one."

// CalendarCell is one day of one habit row.
type CalendarCell struct {
	Day    int
	Done   bool
	Today  bool
	Future bool
}

// CalendarRow is one habit across the month.
type CalendarRow struct {
	Habit api.Habit
	Cells []CalendarCell
}

// CalendarGrid is the habits × days view model for a month.
type CalendarGrid struct {
	Title    string
	Days     []int
	Weekdays []string
	Rows     []CalendarRow
	Empty    bool
}

// BuildCalendarGrid lays out one row per habit and one column per day of month.
// An empty habit list still yields the header with Empty set.
func BuildCalendarGrid(habits []api.Habit, cal api.CalendarMonth, month, today time.Time) CalendarGrid {
	first := dateutil.FirstOfMonth(month)
	year, mon := first.Year(), first.Month()
	days := dateutil.DaysInMonth(year, mon)

	g := CalendarGrid{
		Title:    first.Format("January 2006"),
		Days:     make([]int, days),
		Weekdays: make([]string, days),
		Rows:     make([]CalendarRow, 0, len(habits)),
		Empty:    len(habits) == 0,
	}
	for d := 1; d <= days; d++ {
		g.Days[d-1] = d
		g.Weekdays[d-1] = time.Date(year, mon, d, 0, 0, 0, 0, time.Local).Weekday().String()[:1]
	}

	todayStart := dateutil.StartOfDay(today)
	for _, h := range habits {
		row := CalendarRow{Habit: h, Cells: make([]CalendarCell, days)}
		for d := 1; d <= days; d++ {
			date := time.Date(year, mon, d, 0, 0, 0, 0, todayStart.Location())
			row.Cells[d-1] = CalendarCell{
				Day:    d,
				Done:   cal.IsCompleted(h.ID, d),
				Today:  date.Equal(todayStart),
				Future: date.After(todayStart),
			}
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// Bar is one column of the weekly chart.
type Bar struct {
	Label      string
	DayNum     int
	Date       string
	Percentage float64
	Filled     int // rows filled out of the chart height
	Today      bool
}

// WeeklyChart is the dashboard bar chart view model.
type WeeklyChart struct {
	Height int
	Bars   []Bar
}

// BuildWeeklyChart scales a weekly series to height rows.
func BuildWeeklyChart(days []api.DayPercentage, height int, today string) WeeklyChart {
	if height < 1 {
		height = 1
	}
	c := WeeklyChart{Height: height, Bars: make([]Bar, 0, len(days))}
	for _, d := range days {
		pct := clampPercent(d.Percentage)
		dayNum := d.DayNum
		if dayNum == 0 {
			if t, err := dateutil.ParseDate(d.Date); err == nil {
				dayNum = t.Day()
			}
		}
		c.Bars = append(c.Bars, Bar{
			Label:      d.Day,
			DayNum:     dayNum,
			Date:       d.Date,
			Percentage: pct,
			Filled:     int(math.Round(pct / 100 * float64(height))),
			Today:      d.Date == today,
		})
	}
	return c
}

// RingCircumference is the circumference of the report progress rings.
const RingCircumference = 2 * math.Pi * 54

// RingOffset returns the stroke offset for pct: C − C·pct/100.
func RingOffset(pct, circumference float64) float64 {
	pct = clampPercent(pct)
	return circumference - circumference*pct/100
}

// Ring is a progress ring view model.
type Ring struct {
	Label    string
	Percent  float64
	Offset   float64
	Segments int
	Filled   int
}

// BuildRing maps pct to a ring drawn with segments glyphs.
func BuildRing(label string, pct float64, segments int) Ring {
	pct = clampPercent(pct)
	offset := RingOffset(pct, RingCircumference)
	drawn := (RingCircumference - offset) / RingCircumference
	return Ring{
		Label:    label,
		Percent:  pct,
		Offset:   offset,
		Segments: segments,
		Filled:   int(math.Round(drawn * float64(segments))),
	}
}

// LinePoint is one day of the reports line chart, as row levels from the bottom.
type LinePoint struct {
	Day        int
	HabitRate  float64
	TaskRate   float64
	HabitLevel int
	TaskLevel  int
	HasTasks   bool
}

// LineChart is the dual series (habit% and task%) month chart.
type LineChart struct {
	Height int
	Points []LinePoint
}

// BuildLineChart scales a month of trends to height rows.
func BuildLineChart(m *api.MonthlyTrends, height int) LineChart {
	if height < 2 {
		height = 2
	}
	c := LineChart{Height: height}
	if m == nil {
		return c
	}
	top := float64(height - 1)
	for _, d := range m.DailyData {
		c.Points = append(c.Points, LinePoint{
			Day:        d.Day,
			HabitRate:  d.HabitRate,
			TaskRate:   d.TaskRate,
			HabitLevel: int(math.Round(clampPercent(d.HabitRate) / 100 * top)),
			TaskLevel:  int(math.Round(clampPercent(d.TaskRate) / 100 * top)),
			HasTasks:   d.TasksTotal > 0,
		})
	}
	return c
}

// StreakRow is one habit in the streak grid.
type StreakRow struct {
	Name    string
	Icon    string
	Color   string
	Current int
	Best    int
	Total   int
}

// BuildStreakGrid lists current and best streaks per habit.
func BuildStreakGrid(a *api.Analytics) []StreakRow {
	if a == nil {
		return nil
	}
	rows := make([]StreakRow, 0, len(a.HabitStreaks))
	for _, h := range a.HabitStreaks {
		rows = append(rows, StreakRow{
			Name:    h.Name,
			Icon:    h.Icon,
			Color:   h.Color,
			Current: h.CurrentStreak,
			Best:    h.BestStreak,
			Total:   h.TotalCompletions,
		})
	}
	return rows
}

// Breakdown splits a daily report into done and pending columns.
type Breakdown struct {
	HabitsDone    []string
	HabitsPending []string
	TasksDone     []string
	TasksPending  []string
}

// BuildDailyBreakdown groups a day's habits and tasks by completion.
func BuildDailyBreakdown(r *api.DailyReport) Breakdown {
	var b Breakdown
	if r == nil {
		return b
	}
	for _, h := range r.Habits {
		label := h.Icon + " " + h.Name
		if h.Completed {
			b.HabitsDone = append(b.HabitsDone, label)
		} else {
			b.HabitsPending = append(b.HabitsPending, label)
		}
	}
	for _, t := range r.Tasks {
		label := t.Title
		if badge := t.TimeRange(); badge != "" {
			label = badge + " " + label
		}
		if t.Completed {
			b.TasksDone = append(b.TasksDone, label)
		} else {
			b.TasksPending = append(b.TasksPending, label)
		}
	}
	return b
}

// TaskRow is a task with its rendered time badge.
type TaskRow struct {
	Task  api.Task
	Badge string // "" when the task has no start time
}

// BuildTaskRows keeps backend order and attaches time badges.
func BuildTaskRows(tasks []api.Task) []TaskRow {
	rows := make([]TaskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = TaskRow{Task: t, Badge: t.TimeRange()}
	}
	return rows
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
