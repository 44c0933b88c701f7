// Package api provides a client for the HabitFlow local REST API and the
// JSON types exchanged with it.
package api

import (
	"fmt"
	"strings"
)

// Priority is a task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Next cycles low → medium → high → low.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Default habit appearance.
const (
	DefaultHabitIcon  = "✓"
	DefaultHabitColor = "#6366F1"
)

// Habit represents a tracked daily habit.
type Habit struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Task represents a to-do scoped to a single day.
type Task struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	StartTime *string  `json:"start_time"`
	EndTime   *string  `json:"end_time"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// HasTime reports whether the task has a start time.
func (t Task) HasTime() bool {
	return t.StartTime != nil && strings.TrimSpace(*t.StartTime) != ""
}

// TimeRange formats the task's time badge: "09:00" or "09:00–10:30".
// It returns "" when no start time is set.
func (t Task) TimeRange() string {
	if !t.HasTime() {
		return ""
	}
	if t.EndTime != nil && strings.TrimSpace(*t.EndTime) != "" {
		return *t.StartTime + "–" + *t.EndTime
	}
	return *t.StartTime
}

// CalendarMonth maps habit ID to the day numbers completed in a month.
type CalendarMonth map[int64][]int

// IsCompleted reports whether habitID was completed on day.
func (c CalendarMonth) IsCompleted(habitID int64, day int) bool {
	for _, d := range c[habitID] {
		if d == day {
			return true
		}
	}
	return false
}

// DayPercentage is one bar of the weekly chart.
type DayPercentage struct {
	Date       string  `json:"date"`
	Day        string  `json:"day"`
	DayNum     int     `json:"day_num,omitempty"`
	Percentage float64 `json:"percentage"`
	Completed  int     `json:"completed"`
}

// Stats is the dashboard summary.
type Stats struct {
	Streak           int             `json:"streak"`
	CompletionRate   float64         `json:"completion_rate"`
	TodayTasksDone   int             `json:"today_tasks_done"`
	TodayTasksTotal  int             `json:"today_tasks_total"`
	TotalHabits      int             `json:"total_habits"`
	TodayCompletions int             `json:"today_completions"`
	WeeklyData       []DayPercentage `json:"weekly_data"`
}

// HabitStreak is a habit with its streak figures.
type HabitStreak struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	CurrentStreak    int    `json:"current_streak"`
	BestStreak       int    `json:"best_streak"`
	TotalCompletions int    `json:"total_completions"`
}

// Analytics is the all-time summary shown on the reports page.
type Analytics struct {
	BestStreak                int           `json:"best_streak"`
	BestStreakHabit           *string       `json:"best_streak_habit"`
	MostConsistentHabit       *string       `json:"most_consistent_habit"`
	MostConsistentCompletions int           `json:"most_consistent_completions"`
	TotalHabitCompletions     int           `json:"total_habit_completions"`
	TotalTasksCompleted       int           `json:"total_tasks_completed"`
	WeekHabitCompletions      int           `json:"week_habit_completions"`
	WeekTasksCompleted        int           `json:"week_tasks_completed"`
	TodayCompletionRate       float64       `json:"today_completion_rate"`
	HabitStreaks              []HabitStreak `json:"habit_streaks"`
}

// DailyTrend is one day of the monthly report series.
type DailyTrend struct {
	Date        string  `json:"date"`
	Day         int     `json:"day"`
	HabitsDone  int     `json:"habits_done"`
	HabitsTotal int     `json:"habits_total"`
	HabitRate   float64 `json:"habit_rate"`
	TasksDone   int     `json:"tasks_done"`
	TasksTotal  int     `json:"tasks_total"`
	TaskRate    float64 `json:"task_rate"`
}

// MonthlyTrends is the per-day completion series for a month.
type MonthlyTrends struct {
	Year         int          `json:"year"`
	Month        int          `json:"month"`
	DailyData    []DailyTrend `json:"daily_data"`
	AvgHabitRate float64      `json:"avg_habit_rate"`
	AvgTaskRate  float64      `json:"avg_task_rate"`
}

// DailyHabit is a habit with its completion state on a given day.
type DailyHabit struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

// DailyReport is the habits-vs-tasks breakdown for one day.
type DailyReport struct {
	Date            string       `json:"date"`
	Habits          []DailyHabit `json:"habits"`
	Tasks           []Task       `json:"tasks"`
	HabitsCompleted int          `json:"habits_completed"`
	HabitsTotal     int          `json:"habits_total"`
	TasksCompleted  int          `json:"tasks_completed"`
	TasksTotal      int          `json:"tasks_total"`
	HabitRate       float64      `json:"habit_rate"`
	TaskRate        float64      `json:"task_rate"`
	OverallScore    float64      `json:"overall_score"`
}

// Summary renders the report as plain text for the clipboard.
func (r *DailyReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HabitFlow · %s\n", r.Date)
	fmt.Fprintf(&b, "Habits %d/%d (%.0f%%) · Tasks %d/%d (%.0f%%) · Score %.0f%%\n",
		r.HabitsCompleted, r.HabitsTotal, r.HabitRate,
		r.TasksCompleted, r.TasksTotal, r.TaskRate, r.OverallScore)
	for _, h := range r.Habits {
		mark := "[ ]"
		if h.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, h.Icon, h.Name)
	}
	for _, t := range r.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := mark + " " + t.Title
		if badge := t.TimeRange(); badge != "" {
			line += " (" + badge + ")"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// CreateHabitRequest is the body for POST /api/habits.
type CreateHabitRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// CreateTaskRequest is the body for POST /api/tasks.
type CreateTaskRequest struct {
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Priority  Priority `json:"priority,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
}

// ToggleHabitRequest is the body for POST /api/habits/{id}/toggle.
type ToggleHabitRequest struct {
	Date string `json:"date"`
}

// ReorderHabitsRequest is the body for POST /api/habits/reorder.
type ReorderHabitsRequest struct {
	HabitIDs []int64 `json:"habit_ids"`
}

// ToggleResponse carries the completion state after a toggle.
type ToggleResponse struct {
	Completed bool `json:"completed"`
}

// SuccessResponse is returned by delete and reorder endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Setting is a server-side key/value pair.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
