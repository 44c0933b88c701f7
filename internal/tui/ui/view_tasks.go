package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/tui/styles"
)

// renderTasks renders the task list for the task date.
func (r *Renderer) renderTasks(width int) string {
	var b strings.Builder

	date := r.TaskDate.Format("Monday, January 2 2006")
	if dateutil.FormatDate(r.TaskDate) == dateutil.FormatDate(r.Today()) {
		date += " · today"
	}
	b.WriteString(styles.Title.Render("📋 Tasks") + "  " + styles.Subtitle.Render("‹ "+date+" ›") + "\n\n")

	rows := BuildTaskRows(r.Tasks)
	if len(rows) == 0 {
		b.WriteString(styles.Muted.Render(EmptyTasksMessage) + "\n")
	}

	done := 0
	for i, row := range rows {
		t := row.Task
		checkbox := styles.CheckboxUnchecked
		if t.Completed {
			checkbox = styles.CheckboxChecked
			done++
		}

		prio := styles.PriorityStyle(string(t.Priority)).Render("●")
		title := truncateString(t.Title, width-24)
		if t.Completed {
			title = styles.TaskCompleted.Render(title)
		}
		line := checkbox + " " + prio + " " + title
		if row.Badge != "" {
			line += styles.TaskTime.Render(row.Badge)
		}

		if i == r.TaskCursor {
			b.WriteString(styles.TaskSelected.Render(line))
		} else {
			b.WriteString(styles.TaskItem.Render(line))
		}
		b.WriteString("\n")
	}

	if len(rows) > 0 {
		b.WriteString("\n" + styles.Muted.Render(progressLine(done, len(rows))) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderHints(
		[2]string{r.Keymap.Left.Key + "/" + r.Keymap.Right.Key, "day"},
		[2]string{"t", "today"},
		[2]string{"p", "pick date"},
		[2]string{"x", "toggle"},
		[2]string{"a", "add"},
		[2]string{r.Keymap.DeleteLabel(), "delete"},
	))
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func progressLine(done, total int) string {
	return fmt.Sprintf("%s%s %d/%d done", strings.Repeat("■", done), strings.Repeat("□", total-done), done, total)
}
