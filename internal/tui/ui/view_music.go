package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/tui/components"
	"github.com/hy4ri/habitflow/internal/tui/state"
	"github.com/hy4ri/habitflow/internal/tui/styles"
)

// renderMusic renders the focus timer page.
func (r *Renderer) renderMusic(width int) string {
	var content strings.Builder

	header := styles.Title.Width(width).Align(lipgloss.Center).Render("🎧 FOCUS")
	content.WriteString(header + "\n\n")

	f := r.Focus
	if f == nil {
		return content.String()
	}

	largeTime := components.RenderLargeTime(components.FormatDuration(f.Remaining))
	timeStyle := styles.HabitLine
	if f.Phase == state.FocusBreak {
		timeStyle = styles.TaskLine
	}
	content.WriteString(timeStyle.Width(width).Align(lipgloss.Center).Render(largeTime) + "\n")

	barWidth := width / 2
	filled := int(float64(barWidth) * f.Progress())
	bar := styles.BarFill.Render(strings.Repeat("█", filled)) +
		styles.BarTrack.Render(strings.Repeat("░", barWidth-filled))
	content.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar) + "\n")

	status := "paused"
	if f.Running {
		status = "running"
	}
	info := fmt.Sprintf("%s #%d · %s", f.Phase, f.Sessions+1, status)
	content.WriteString(styles.Subtitle.Width(width).Align(lipgloss.Center).Render(info) + "\n")
	total := fmt.Sprintf("%d focus sessions completed", r.FocusTotal)
	content.WriteString(styles.Muted.Width(width).Align(lipgloss.Center).Render(total) + "\n\n")

	hints := renderHints(
		[2]string{"space", "start/pause"},
		[2]string{"r", "reset"},
		[2]string{"m", "skip phase"},
	)
	content.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(hints))
	return content.String()
}
