package store

import (
	"fmt"
	"math"
	"time"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
)

// overallStreakWindow bounds how far back the dashboard streak looks.
const overallStreakWindow = 30

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func (s *Store) count(query string, args ...interface{}) (int, error) {
	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}

// completionsByDate returns the number of habit completions per date in [from, to].
func (s *Store) completionsByDate(from, to string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT date, COUNT(*) FROM habit_completions WHERE date BETWEEN ? AND ? GROUP BY date`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			date string
			n    int
		)
		if err := rows.Scan(&date, &n); err != nil {
			return nil, err
		}
		out[date] = n
	}
	return out, rows.Err()
}

func (s *Store) daySeries(start time.Time, days, totalHabits int, withDayNum bool) ([]api.DayPercentage, error) {
	end := start.AddDate(0, 0, days-1)
	counts, err := s.completionsByDate(dateutil.FormatDate(start), dateutil.FormatDate(end))
	if err != nil {
		return nil, err
	}

	series := make([]api.DayPercentage, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		key := dateutil.FormatDate(day)
		dp := api.DayPercentage{
			Date:       key,
			Day:        day.Format("Mon"),
			Percentage: round1(percent(counts[key], totalHabits)),
			Completed:  counts[key],
		}
		if withDayNum {
			dp.DayNum = day.Day()
		}
		series = append(series, dp)
	}
	return series, nil
}

// Stats computes the dashboard summary for today.
func (s *Store) Stats() (*api.Stats, error) {
	today := s.today()
	todayStr := dateutil.FormatDate(today)

	totalHabits, err := s.count(`SELECT COUNT(*) FROM habits`)
	if err != nil {
		return nil, err
	}
	todayCompletions, err := s.count(`SELECT COUNT(*) FROM habit_completions WHERE date = ?`, todayStr)
	if err != nil {
		return nil, err
	}
	tasksTotal, err := s.count(`SELECT COUNT(*) FROM tasks WHERE date = ?`, todayStr)
	if err != nil {
		return nil, err
	}
	tasksDone, err := s.count(`SELECT COUNT(*) FROM tasks WHERE date = ? AND completed = 1`, todayStr)
	if err != nil {
		return nil, err
	}

	windowStart := today.AddDate(0, 0, -(overallStreakWindow - 1))
	active, err := s.completionsByDate(dateutil.FormatDate(windowStart), todayStr)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(active))
	for d := range active {
		done[d] = true
	}

	weekly, err := s.daySeries(today.AddDate(0, 0, -6), 7, totalHabits, false)
	if err != nil {
		return nil, err
	}

	return &api.Stats{
		Streak:           currentStreak(done, today),
		CompletionRate:   round1(percent(todayCompletions, totalHabits)),
		TodayTasksDone:   tasksDone,
		TodayTasksTotal:  tasksTotal,
		TotalHabits:      totalHabits,
		TodayCompletions: todayCompletions,
		WeeklyData:       weekly,
	}, nil
}

// WeeklyData returns seven days of habit completion percentages from startDate.
func (s *Store) WeeklyData(startDate string) ([]api.DayPercentage, error) {
	start, err := dateutil.ParseDate(startDate)
	if err != nil {
		return nil, invalid("%v", err)
	}
	totalHabits, err := s.count(`SELECT COUNT(*) FROM habits`)
	if err != nil {
		return nil, err
	}
	return s.daySeries(start, 7, totalHabits, true)
}

// DailyReport returns every habit and task for date with completion rates.
func (s *Store) DailyReport(date string) (*api.DailyReport, error) {
	if _, err := dateutil.ParseDate(date); err != nil {
		return nil, invalid("%v", err)
	}

	rows, err := s.db.Query(`
		SELECT h.id, h.name, h.icon, h.color,
		       CASE WHEN hc.id IS NOT NULL THEN 1 ELSE 0 END
		FROM habits h
		LEFT JOIN habit_completions hc ON h.id = hc.habit_id AND hc.date = ?
		ORDER BY h.sort_order, h.id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily habits: %w", err)
	}
	habits := make([]api.DailyHabit, 0)
	for rows.Next() {
		var h api.DailyHabit
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &h.Completed); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan daily habit: %w", err)
		}
		habits = append(habits, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	taskRows, err := s.db.Query(`SELECT `+taskColumns+` FROM tasks WHERE date = ? ORDER BY start_time, id`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily tasks: %w", err)
	}
	tasks := make([]api.Task, 0)
	for taskRows.Next() {
		t, err := scanTask(taskRows)
		if err != nil {
			taskRows.Close()
			return nil, fmt.Errorf("failed to scan daily task: %w", err)
		}
		tasks = append(tasks, t)
	}
	taskRows.Close()
	if err := taskRows.Err(); err != nil {
		return nil, err
	}

	r := &api.DailyReport{Date: date, Habits: habits, Tasks: tasks, HabitsTotal: len(habits), TasksTotal: len(tasks)}
	for _, h := range habits {
		if h.Completed {
			r.HabitsCompleted++
		}
	}
	for _, t := range tasks {
		if t.Completed {
			r.TasksCompleted++
		}
	}
	habitRate := percent(r.HabitsCompleted, r.HabitsTotal)
	taskRate := percent(r.TasksCompleted, r.TasksTotal)
	r.HabitRate = round1(habitRate)
	r.TaskRate = round1(taskRate)
	if len(habits) > 0 || len(tasks) > 0 {
		r.OverallScore = round1((habitRate + taskRate) / 2)
	}
	return r, nil
}

// MonthlyTrends returns per-day habit and task completion rates for a month.
func (s *Store) MonthlyTrends(year int, month time.Month) (*api.MonthlyTrends, error) {
	if month < time.January || month > time.December {
		return nil, invalid("month %d out of range", int(month))
	}
	days := dateutil.DaysInMonth(year, month)
	from := dateutil.MonthDate(year, month, 1)
	to := dateutil.MonthDate(year, month, days)

	totalHabits, err := s.count(`SELECT COUNT(*) FROM habits`)
	if err != nil {
		return nil, err
	}
	habitCounts, err := s.completionsByDate(from, to)
	if err != nil {
		return nil, err
	}

	type taskCount struct{ total, done int }
	taskCounts := make(map[string]taskCount)
	rows, err := s.db.Query(
		`SELECT date, COUNT(*), COALESCE(SUM(completed), 0) FROM tasks WHERE date BETWEEN ? AND ? GROUP BY date`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	for rows.Next() {
		var (
			date string
			tc   taskCount
		)
		if err := rows.Scan(&date, &tc.total, &tc.done); err != nil {
			rows.Close()
			return nil, err
		}
		taskCounts[date] = tc
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	m := &api.MonthlyTrends{Year: year, Month: int(month), DailyData: make([]api.DailyTrend, 0, days)}
	var habitSum, taskSum float64
	taskDays := 0
	for day := 1; day <= days; day++ {
		date := dateutil.MonthDate(year, month, day)
		tc := taskCounts[date]
		d := api.DailyTrend{
			Date:        date,
			Day:         day,
			HabitsDone:  habitCounts[date],
			HabitsTotal: totalHabits,
			HabitRate:   round1(percent(habitCounts[date], totalHabits)),
			TasksDone:   tc.done,
			TasksTotal:  tc.total,
			TaskRate:    round1(percent(tc.done, tc.total)),
		}
		habitSum += d.HabitRate
		if tc.total > 0 {
			taskSum += d.TaskRate
			taskDays++
		}
		m.DailyData = append(m.DailyData, d)
	}
	m.AvgHabitRate = round1(habitSum / float64(days))
	if taskDays > 0 {
		m.AvgTaskRate = round1(taskSum / float64(taskDays))
	}
	return m, nil
}

// HabitStreaks returns current and best streaks for every habit in display order.
func (s *Store) HabitStreaks() ([]api.HabitStreak, error) {
	habits, err := s.ListHabits()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT habit_id, date FROM habit_completions ORDER BY habit_id, date`)
	if err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}
	byHabit := make(map[int64][]string)
	for rows.Next() {
		var (
			id   int64
			date string
		)
		if err := rows.Scan(&id, &date); err != nil {
			rows.Close()
			return nil, err
		}
		byHabit[id] = append(byHabit[id], date)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	today := s.today()
	out := make([]api.HabitStreak, 0, len(habits))
	for _, h := range habits {
		dates := byHabit[h.ID]
		done := make(map[string]bool, len(dates))
		for _, d := range dates {
			done[d] = true
		}
		out = append(out, api.HabitStreak{
			ID:               h.ID,
			Name:             h.Name,
			Icon:             h.Icon,
			Color:            h.Color,
			CurrentStreak:    currentStreak(done, today),
			BestStreak:       bestStreak(dates),
			TotalCompletions: len(dates),
		})
	}
	return out, nil
}

// Analytics computes the all-time summary for the reports page.
func (s *Store) Analytics() (*api.Analytics, error) {
	streaks, err := s.HabitStreaks()
	if err != nil {
		return nil, err
	}

	a := &api.Analytics{HabitStreaks: streaks}
	var best, consistent *api.HabitStreak
	for i := range streaks {
		h := &streaks[i]
		if best == nil || h.BestStreak > best.BestStreak {
			best = h
		}
		if consistent == nil || h.TotalCompletions > consistent.TotalCompletions {
			consistent = h
		}
	}
	if best != nil {
		a.BestStreak = best.BestStreak
		name := best.Name
		a.BestStreakHabit = &name
	}
	if consistent != nil {
		name := consistent.Name
		a.MostConsistentHabit = &name
		a.MostConsistentCompletions = consistent.TotalCompletions
	}

	today := s.today()
	todayStr := dateutil.FormatDate(today)
	weekStart := dateutil.FormatDate(dateutil.Monday(today))

	if a.TotalHabitCompletions, err = s.count(`SELECT COUNT(*) FROM habit_completions`); err != nil {
		return nil, err
	}
	if a.TotalTasksCompleted, err = s.count(`SELECT COUNT(*) FROM tasks WHERE completed = 1`); err != nil {
		return nil, err
	}
	if a.WeekHabitCompletions, err = s.count(`SELECT COUNT(*) FROM habit_completions WHERE date >= ?`, weekStart); err != nil {
		return nil, err
	}
	if a.WeekTasksCompleted, err = s.count(`SELECT COUNT(*) FROM tasks WHERE date >= ? AND completed = 1`, weekStart); err != nil {
		return nil, err
	}
	todayDone, err := s.count(`SELECT COUNT(*) FROM habit_completions WHERE date = ?`, todayStr)
	if err != nil {
		return nil, err
	}
	a.TodayCompletionRate = round1(percent(todayDone, len(streaks)))
	return a, nil
}
