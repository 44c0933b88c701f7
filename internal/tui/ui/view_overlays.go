package ui

import (
	"strings"

	"github.com/hy4ri/habitflow/internal/tui/state"
	"github.com/hy4ri/habitflow/internal/tui/styles"
)

func (r *Renderer) dialogWidth() int {
	w := r.Width / 2
	if w < 44 {
		w = min(44, r.Width-4)
	}
	return w
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return styles.InputLabelFocused.Render("› " + name)
	}
	return styles.InputLabel.Render("  " + name)
}

// renderHabitForm renders the add habit modal.
func (r *Renderer) renderHabitForm() string {
	f := r.HabitForm
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render("New Habit") + "\n\n")
	b.WriteString(fieldLabel("Name", f.FocusIndex == state.HabitFieldName) + "\n")
	b.WriteString(f.Name.View() + "\n\n")
	b.WriteString(fieldLabel("Icon", f.FocusIndex == state.HabitFieldIcon) + "\n")
	b.WriteString(f.Icon.View() + "\n\n")
	b.WriteString(fieldLabel("Color", f.FocusIndex == state.HabitFieldColor) + "\n")

	var swatches []string
	for i, c := range state.HabitColors {
		glyph := "○"
		if i == f.ColorIndex {
			glyph = "●"
		}
		swatches = append(swatches, styles.HabitColor(c).Render(glyph))
	}
	b.WriteString("  " + strings.Join(swatches, " ") + "\n\n")

	b.WriteString(styles.HelpDesc.Render("Enter: save | Esc: cancel | Tab: next field | Space: next color"))
	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}

// renderTaskForm renders the add task modal.
func (r *Renderer) renderTaskForm() string {
	f := r.TaskForm
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render("New Task · "+f.Date.Format("Mon Jan 2")) + "\n\n")
	b.WriteString(fieldLabel("Title", f.FocusIndex == state.TaskFieldTitle) + "\n")
	b.WriteString(f.Title.View() + "\n\n")

	b.WriteString(fieldLabel("Priority", f.FocusIndex == state.TaskFieldPriority) + "\n")
	b.WriteString("  " + styles.PriorityStyle(string(f.Priority)).Render("● "+string(f.Priority)) + "\n\n")

	b.WriteString(fieldLabel("Start (HH:MM)", f.FocusIndex == state.TaskFieldStart) + "\n")
	b.WriteString(f.StartTime.View() + "\n\n")
	b.WriteString(fieldLabel("End (HH:MM)", f.FocusIndex == state.TaskFieldEnd) + "\n")
	b.WriteString(f.EndTime.View() + "\n\n")

	b.WriteString(styles.HelpDesc.Render("Enter: save | Esc: cancel | Tab: next field"))
	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}

// renderDatePicker renders the set task date modal.
func (r *Renderer) renderDatePicker() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Go to date") + "\n\n")
	b.WriteString(styles.InputLabel.Render("Date (YYYY-MM-DD)") + "\n")
	b.WriteString(r.DatePicker.Input.View() + "\n\n")
	b.WriteString(styles.HelpDesc.Render("Enter: go | Esc: cancel"))
	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}

// renderConfirmDialog renders a yes/no modal.
func (r *Renderer) renderConfirmDialog() string {
	c := r.Confirm
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(c.Title) + "\n\n")
	b.WriteString(c.Message + "\n\n")
	b.WriteString(styles.HelpKey.Render("y") + styles.HelpDesc.Render(" confirm   ") +
		styles.HelpKey.Render("n") + styles.HelpDesc.Render(" cancel"))
	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}

// renderManageDialog renders the manage habits list.
func (r *Renderer) renderManageDialog() string {
	m := r.Manage
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Manage Habits") + "\n\n")

	if len(m.Items) == 0 {
		b.WriteString(styles.Muted.Render("No habits.") + "\n")
	}
	width := r.dialogWidth() - 10
	for i, h := range m.Items {
		prefix := "  "
		if m.Dragging == h.ID {
			prefix = "⇅ "
		}
		line := prefix + styles.HabitColor(h.Color).Render(h.Icon) + " " + truncateString(h.Name, width)
		if i == m.Cursor {
			b.WriteString(styles.TaskSelected.Render(line))
		} else {
			b.WriteString(styles.TaskItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "enter: pick up | j/k: move | dd: delete | esc: close"
	if m.IsDragging() {
		hint = "j/k: choose target | enter: drop | esc: cancel drag"
	}
	b.WriteString(styles.HelpDesc.Render(hint))
	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}
