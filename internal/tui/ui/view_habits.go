package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/tui/styles"
)

const habitNameWidth = 16

// renderHabits renders the month calendar grid.
func (r *Renderer) renderHabits(width int) string {
	grid := BuildCalendarGrid(r.Habits, r.Calendar, r.CalendarMonth, r.Today())

	var b strings.Builder
	b.WriteString(styles.Title.Render("✓ Habits") + "  " + styles.CalendarHeader.Render("‹ "+grid.Title+" ›") + "\n\n")
	b.WriteString(renderCalendarGrid(grid, r.HabitCursor, r.DayCursor))
	b.WriteString("\n\n")
	b.WriteString(renderHints(
		[2]string{r.Keymap.Left.Key + "/" + r.Keymap.Right.Key, "day"},
		[2]string{r.Keymap.Down.Key + "/" + r.Keymap.Up.Key, "habit"},
		[2]string{"x", "toggle"},
		[2]string{"[ ]", "month"},
		[2]string{"a", "add"},
		[2]string{"M", "manage"},
	))
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// renderCalendarGrid draws the header rows and one row per habit.
func renderCalendarGrid(g CalendarGrid, cursorRow, cursorDay int) string {
	var b strings.Builder

	pad := strings.Repeat(" ", habitNameWidth+1)
	b.WriteString(pad)
	for _, wd := range g.Weekdays {
		b.WriteString(styles.CalendarWeekday.Render(fmt.Sprintf("%3s", wd)))
	}
	b.WriteString("\n" + pad)
	for _, d := range g.Days {
		b.WriteString(styles.CalendarHeader.Render(fmt.Sprintf("%3d", d)))
	}
	b.WriteString("\n")

	if g.Empty {
		b.WriteString("\n" + styles.Muted.Render(EmptyHabitsMessage))
		return b.String()
	}

	for i, row := range g.Rows {
		name := fitCell(row.Habit.Icon+" "+row.Habit.Name, habitNameWidth)
		color := styles.HabitColor(row.Habit.Color)
		if i == cursorRow {
			b.WriteString(styles.InputLabelFocused.Render(name) + " ")
		} else {
			b.WriteString(color.Render(name) + " ")
		}

		for _, c := range row.Cells {
			glyph := "  ·"
			style := styles.CellEmpty
			switch {
			case c.Done:
				glyph = "  ●"
				style = color
			case c.Today:
				glyph = "  ○"
				style = styles.CalendarToday
			case c.Future:
				glyph = "   "
			}
			if i == cursorRow && c.Day == cursorDay {
				style = styles.CalendarCursor
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
