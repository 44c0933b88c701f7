// Package components provides reusable UI pieces for the HabitFlow TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/tui/styles"
)

// HelpModel renders the help overlay with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// View renders the shortcuts in two columns.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("⌨️  Keyboard Shortcuts"))
	b.WriteString("\n")

	// Column 1: pages, navigation, general. Column 2: page actions.
	col1Sections := map[string]bool{
		"Pages":      true,
		"Navigation": true,
		"General":    true,
	}

	var col1Content, col2Content strings.Builder
	currentColumn := &col1Content

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		if desc == "" && key != "" {
			if col1Sections[key] {
				currentColumn = &col1Content
			} else {
				currentColumn = &col2Content
			}
			currentColumn.WriteString("\n" + styles.Subtitle.Render(" "+key+" ") + "\n")
			continue
		}
		if key == "" && desc == "" {
			continue
		}

		keyStyle := styles.HelpKey.Width(14).Align(lipgloss.Right).PaddingRight(2)
		currentColumn.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
	}

	colWidth := h.width / 2
	if colWidth > 50 || colWidth <= 0 {
		colWidth = 50
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(col1Content.String()),
		columnStyle.Render(col2Content.String()),
	))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	if h.width > 0 {
		footer = lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer)
	}
	b.WriteString(footer)
	return b.String()
}

// SetSize sets the available area.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets the help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
