package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/tui/styles"
)

const weeklyChartHeight = 8

// renderDashboard renders the stat cards and the weekly chart.
func (r *Renderer) renderDashboard(width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("🏠 Dashboard") + "\n\n")

	if r.Stats == nil {
		b.WriteString(styles.Muted.Render("No statistics yet."))
		return b.String()
	}

	s := r.Stats
	cards := []string{
		renderCard(fmt.Sprintf("🔥 %d", s.Streak), "day streak"),
		renderCard(fmt.Sprintf("%.0f%%", s.CompletionRate), "today's habits"),
		renderCard(fmt.Sprintf("%d/%d", s.TodayTasksDone, s.TodayTasksTotal), "today's tasks"),
		renderCard(fmt.Sprintf("%d", s.TotalHabits), "habits"),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	week := dateutil.GetWeekDates(r.Now(), r.WeekOffset)
	label := "This week"
	if r.WeekOffset != 0 {
		label = fmt.Sprintf("%s – %s", week.Start.Format("Jan 2"), week.End.Format("Jan 2"))
	}
	b.WriteString(styles.Subtitle.Render("Weekly progress · "+label) + "\n\n")

	chart := BuildWeeklyChart(r.Weekly, weeklyChartHeight, dateutil.FormatDate(r.Today()))
	b.WriteString(renderWeeklyChart(chart) + "\n\n")

	b.WriteString(renderHints([2]string{"[ ]", "prev/next week"}, [2]string{"R", "refresh"}))
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func renderCard(value, label string) string {
	return styles.Card.Width(16).Render(styles.CardValue.Render(value) + "\n" + styles.CardLabel.Render(label))
}

// renderWeeklyChart draws one vertical bar per day, three columns apiece.
func renderWeeklyChart(c WeeklyChart) string {
	if len(c.Bars) == 0 {
		return styles.Muted.Render("No data for this week.")
	}

	var b strings.Builder
	for row := c.Height; row >= 1; row-- {
		for _, bar := range c.Bars {
			if bar.Filled >= row {
				b.WriteString(styles.BarFill.Render(" ███ "))
			} else {
				b.WriteString(styles.BarTrack.Render(" ░░░ "))
			}
		}
		b.WriteString("\n")
	}

	for _, bar := range c.Bars {
		b.WriteString(fmt.Sprintf("%4.0f%%", bar.Percentage))
	}
	b.WriteString("\n")
	for _, bar := range c.Bars {
		label := fmt.Sprintf(" %-3s ", bar.Label)
		if bar.Today {
			b.WriteString(styles.CalendarToday.Render(label))
		} else {
			b.WriteString(styles.CalendarWeekday.Render(label))
		}
	}
	return b.String()
}
