package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/tui/styles"
)

const (
	ringSegments    = 20
	lineChartHeight = 8
)

// renderReports renders rings, the monthly line chart, the streak grid and
// the daily breakdown.
func (r *Renderer) renderReports(width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("📊 Reports") + "  " +
		styles.CalendarHeader.Render("‹ "+r.ReportMonth.Format("January 2006")+" ›") + "\n\n")

	if r.Analytics == nil && r.Monthly == nil && r.Daily == nil {
		b.WriteString(styles.Muted.Render("No report data yet."))
		return b.String()
	}

	if r.Daily != nil {
		habits := BuildRing("Habits", r.Daily.HabitRate, ringSegments)
		tasks := BuildRing("Tasks", r.Daily.TaskRate, ringSegments)
		rings := lipgloss.JoinHorizontal(lipgloss.Top,
			renderRing(habits, styles.RingHabits),
			"   ",
			renderRing(tasks, styles.RingTasks),
			"   ",
			renderCard(fmt.Sprintf("%.0f%%", r.Daily.OverallScore), "score "+r.Daily.Date),
		)
		b.WriteString(rings + "\n\n")
	}

	if r.Monthly != nil {
		b.WriteString(styles.Subtitle.Render("Monthly trend") + "  " +
			styles.HabitLine.Render(fmt.Sprintf("● habits %.0f%%", r.Monthly.AvgHabitRate)) + "  " +
			styles.TaskLine.Render(fmt.Sprintf("× tasks %.0f%%", r.Monthly.AvgTaskRate)) + "\n")
		b.WriteString(renderLineChart(BuildLineChart(r.Monthly, lineChartHeight)) + "\n\n")
	}

	var lower []string
	if r.Analytics != nil {
		lower = append(lower, r.renderStreakGrid(width/2))
	}
	if r.Daily != nil {
		lower = append(lower, renderBreakdown(BuildDailyBreakdown(r.Daily), width/2))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, lower...) + "\n\n")

	b.WriteString(renderHints([2]string{"[ ]", "month"}, [2]string{"y", "copy summary"}, [2]string{"R", "refresh"}))
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// renderRing draws a ring as a segmented track with the percentage in the middle.
func renderRing(ring Ring, fill lipgloss.Style) string {
	var track strings.Builder
	for i := 0; i < ring.Segments; i++ {
		if i < ring.Filled {
			track.WriteString(fill.Render("●"))
		} else {
			track.WriteString(styles.RingTrack.Render("○"))
		}
	}
	label := fmt.Sprintf("%s %.0f%%", ring.Label, ring.Percent)
	return lipgloss.JoinVertical(lipgloss.Center, track.String(), styles.CardValue.Render(label))
}

// renderLineChart plots both series on a shared grid, two columns per day.
func renderLineChart(c LineChart) string {
	if len(c.Points) == 0 {
		return styles.Muted.Render("No data for this month.")
	}

	var b strings.Builder
	for level := c.Height - 1; level >= 0; level-- {
		var axis string
		switch level {
		case c.Height - 1:
			axis = "100┤"
		case 0:
			axis = "  0┤"
		default:
			axis = "   │"
		}
		b.WriteString(styles.Muted.Render(axis))
		for _, p := range c.Points {
			habit := p.HabitLevel == level
			task := p.HasTasks && p.TaskLevel == level
			switch {
			case habit && task:
				b.WriteString(styles.Title.Render("◆ "))
			case habit:
				b.WriteString(styles.HabitLine.Render("● "))
			case task:
				b.WriteString(styles.TaskLine.Render("× "))
			default:
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("    ")
	for _, p := range c.Points {
		if p.Day == 1 || p.Day%5 == 0 {
			b.WriteString(styles.Muted.Render(fmt.Sprintf("%-2d", p.Day)))
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}

func (r *Renderer) renderStreakGrid(width int) string {
	var b strings.Builder
	a := r.Analytics

	b.WriteString(styles.Subtitle.Render("Streaks") + "\n")
	if a.BestStreakHabit != nil {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("Best: %s (%d days)", *a.BestStreakHabit, a.BestStreak)) + "\n")
	}
	if a.MostConsistentHabit != nil {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("Most consistent: %s (%d)", *a.MostConsistentHabit, a.MostConsistentCompletions)) + "\n")
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("This week: %d habits, %d tasks", a.WeekHabitCompletions, a.WeekTasksCompleted)) + "\n\n")

	rows := BuildStreakGrid(a)
	if len(rows) == 0 {
		b.WriteString(styles.Muted.Render("No habits yet."))
	}
	nameWidth := width - 22
	if nameWidth < 8 {
		nameWidth = 8
	}
	for _, row := range rows {
		name := fitCell(row.Icon+" "+row.Name, nameWidth)
		b.WriteString(styles.HabitColor(row.Color).Render(name))
		b.WriteString(fmt.Sprintf(" 🔥%3d  best %3d\n", row.Current, row.Best))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func renderBreakdown(bd Breakdown, width int) string {
	col := func(title string, done, pending []string) string {
		var b strings.Builder
		b.WriteString(styles.Subtitle.Render(title) + "\n")
		for _, s := range done {
			b.WriteString(styles.TaskCompleted.Render(styles.CheckboxChecked+" "+s) + "\n")
		}
		for _, s := range pending {
			b.WriteString(styles.CheckboxUnchecked + " " + s + "\n")
		}
		if len(done)+len(pending) == 0 {
			b.WriteString(styles.Muted.Render("none") + "\n")
		}
		return lipgloss.NewStyle().Width(width / 2).Render(b.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col("Habits", bd.HabitsDone, bd.HabitsPending),
		col("Tasks", bd.TasksDone, bd.TasksPending),
	)
}
