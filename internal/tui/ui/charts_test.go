package ui

import (
	"math"
	"testing"
	"time"

	"github.com/hy4ri/habitflow/internal/api"
)

func strPtr(s string) *string { return &s }

func TestBuildCalendarGridEmpty(t *testing.T) {
	month := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	today := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local)

	g := BuildCalendarGrid(nil, nil, month, today)
	if !g.Empty {
		t.Error("expected empty grid")
	}
	if len(g.Days) != 28 || len(g.Weekdays) != 28 {
		t.Errorf("expected 28 header columns, got %d/%d", len(g.Days), len(g.Weekdays))
	}
	if len(g.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(g.Rows))
	}
	if g.Title != "February 2026" {
		t.Errorf("Title = %q", g.Title)
	}
}

func TestBuildCalendarGridCells(t *testing.T) {
	month := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local)
	today := time.Date(2026, time.October, 19, 15, 30, 0, 0, time.Local)
	habits := []api.Habit{{ID: 1, Name: "Read"}, {ID: 2, Name: "Run"}}
	cal := api.CalendarMonth{1: {1, 19}}

	g := BuildCalendarGrid(habits, cal, month, today)
	if g.Empty || len(g.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", g)
	}
	if len(g.Rows[0].Cells) != 31 {
		t.Fatalf("expected 31 cells, got %d", len(g.Rows[0].Cells))
	}

	read := g.Rows[0].Cells
	if !read[0].Done || !read[18].Done || read[1].Done {
		t.Errorf("unexpected completion cells: %+v %+v %+v", read[0], read[1], read[18])
	}
	if !read[18].Today || read[17].Today {
		t.Error("expected only day 19 to be today")
	}
	if !read[19].Future || read[18].Future {
		t.Error("expected days after 19 to be future")
	}
	if g.Rows[1].Cells[0].Done {
		t.Error("habit 2 has no completions")
	}
	if g.Weekdays[0] != "T" { // 2026-10-01 is a Thursday
		t.Errorf("Weekdays[0] = %q", g.Weekdays[0])
	}
}

func TestBuildWeeklyChart(t *testing.T) {
	days := []api.DayPercentage{
		{Date: "2026-10-12", Day: "Mon", Percentage: 50},
		{Date: "2026-10-13", Day: "Tue", DayNum: 13, Percentage: 100},
		{Date: "2026-10-14", Day: "Wed", Percentage: 140},
		{Date: "2026-10-15", Day: "Thu", Percentage: 0},
	}

	c := BuildWeeklyChart(days, 8, "2026-10-13")
	if len(c.Bars) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(c.Bars))
	}
	if c.Bars[0].Filled != 4 || c.Bars[1].Filled != 8 || c.Bars[3].Filled != 0 {
		t.Errorf("unexpected fill %+v", c.Bars)
	}
	if c.Bars[2].Percentage != 100 || c.Bars[2].Filled != 8 {
		t.Errorf("expected clamp to 100, got %+v", c.Bars[2])
	}
	if c.Bars[0].DayNum != 12 {
		t.Errorf("expected day number parsed from date, got %d", c.Bars[0].DayNum)
	}
	if !c.Bars[1].Today || c.Bars[0].Today {
		t.Error("expected only Tuesday to be today")
	}
}

func TestRingOffset(t *testing.T) {
	const c = 100.0
	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 100},
		{25, 75},
		{50, 50},
		{100, 0},
		{150, 0},
		{-10, 100},
	}
	for _, tt := range tests {
		if got := RingOffset(tt.pct, c); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RingOffset(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}

	ring := BuildRing("Habits", 50, 20)
	if ring.Filled != 10 {
		t.Errorf("expected 10 filled segments, got %d", ring.Filled)
	}
	if math.Abs(ring.Offset-RingCircumference/2) > 1e-9 {
		t.Errorf("Offset = %v", ring.Offset)
	}
}

func TestBuildLineChart(t *testing.T) {
	m := &api.MonthlyTrends{
		DailyData: []api.DailyTrend{
			{Day: 1, HabitRate: 100, TaskRate: 0},
			{Day: 2, HabitRate: 50, TaskRate: 100, TasksTotal: 2},
		},
	}

	c := BuildLineChart(m, 5)
	if len(c.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(c.Points))
	}
	if c.Points[0].HabitLevel != 4 || c.Points[0].HasTasks {
		t.Errorf("unexpected first point %+v", c.Points[0])
	}
	if c.Points[1].HabitLevel != 2 || c.Points[1].TaskLevel != 4 || !c.Points[1].HasTasks {
		t.Errorf("unexpected second point %+v", c.Points[1])
	}

	if empty := BuildLineChart(nil, 5); len(empty.Points) != 0 {
		t.Error("expected no points for nil trends")
	}
}

func TestBuildDailyBreakdownAndTaskRows(t *testing.T) {
	r := &api.DailyReport{
		Habits: []api.DailyHabit{
			{Name: "Read", Icon: "📚", Completed: true},
			{Name: "Run", Icon: "🏃"},
		},
		Tasks: []api.Task{
			{Title: "Standup", StartTime: strPtr("09:00"), EndTime: strPtr("09:15"), Completed: true},
			{Title: "Groceries"},
		},
	}

	b := BuildDailyBreakdown(r)
	if len(b.HabitsDone) != 1 || b.HabitsDone[0] != "📚 Read" || len(b.HabitsPending) != 1 {
		t.Errorf("unexpected habits %+v", b)
	}
	if len(b.TasksDone) != 1 || b.TasksDone[0] != "09:00–09:15 Standup" {
		t.Errorf("unexpected done tasks %+v", b.TasksDone)
	}
	if len(b.TasksPending) != 1 || b.TasksPending[0] != "Groceries" {
		t.Errorf("unexpected pending tasks %+v", b.TasksPending)
	}

	rows := BuildTaskRows(r.Tasks)
	if rows[0].Badge != "09:00–09:15" || rows[1].Badge != "" {
		t.Errorf("unexpected badges %q %q", rows[0].Badge, rows[1].Badge)
	}
}

func TestBuildStreakGrid(t *testing.T) {
	if rows := BuildStreakGrid(nil); rows != nil {
		t.Error("expected nil rows for nil analytics")
	}
	a := &api.Analytics{HabitStreaks: []api.HabitStreak{{Name: "Read", CurrentStreak: 2, BestStreak: 4}}}
	rows := BuildStreakGrid(a)
	if len(rows) != 1 || rows[0].Current != 2 || rows[0].Best != 4 {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Read", 10, "Read"},
		{"Meditation", 5, "Medi…"},
		{"日本語テキスト", 5, "日本…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFitCellPadsToWidth(t *testing.T) {
	if got := fitCell("Run", 6); got != "Run   " {
		t.Errorf("fitCell short = %q", got)
	}
	if got := fitCell("Meditation", 5); got != "Medi…" {
		t.Errorf("fitCell long = %q", got)
	}
}
