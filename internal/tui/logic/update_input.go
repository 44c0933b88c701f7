package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// If we're in help view, any key goes back
	if h.ShowHelp {
		h.ShowHelp = false
		return nil
	}

	// Modals own the keyboard; the confirm modal may sit over the manage list.
	switch {
	case h.Confirm != nil:
		return h.handleConfirmKeyMsg(msg)
	case h.HabitForm != nil:
		return h.handleHabitFormKeyMsg(msg)
	case h.TaskForm != nil:
		return h.handleTaskFormKeyMsg(msg)
	case h.DatePicker != nil:
		return h.handleDatePickerKeyMsg(msg)
	case h.Manage != nil && h.Manage.Open:
		return h.handleManageKeyMsg(msg)
	}

	action, ok := h.keys.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	// Global actions
	switch action {
	case "quit":
		return tea.Quit
	case "help":
		h.ShowHelp = true
		return nil
	case "refresh":
		h.StatusMsg = ""
		return h.loadPage(h.CurrentPage)
	case "toggle_theme":
		h.ToggleTheme()
		return nil
	case "toggle_sidebar":
		h.ToggleSidebar()
		return nil
	case "toggle_sound":
		h.SetSoundEnabled(!h.SoundEnabled)
		if h.SoundEnabled {
			h.StatusMsg = "Sound on"
		} else {
			h.StatusMsg = "Sound off"
		}
		return nil
	case "next_page":
		return h.cyclePage(1)
	case "prev_page":
		return h.cyclePage(-1)
	case "page_dashboard":
		return h.NavigateTo(state.PageDashboard)
	case "page_habits":
		return h.NavigateTo(state.PageHabits)
	case "page_tasks":
		return h.NavigateTo(state.PageTasks)
	case "page_music":
		return h.NavigateTo(state.PageMusic)
	case "page_reports":
		return h.NavigateTo(state.PageReports)
	}

	switch h.CurrentPage {
	case state.PageHabits:
		return h.handleHabitsAction(action)
	case state.PageTasks:
		return h.handleTasksAction(action)
	case state.PageMusic:
		return h.handleMusicAction(action)
	case state.PageReports:
		return h.handleReportsAction(action)
	default:
		return h.handleDashboardAction(action)
	}
}

func (h *Handler) handleDashboardAction(action string) tea.Cmd {
	switch action {
	case "prev", "left":
		return h.PrevWeek()
	case "next", "right":
		return h.NextWeek()
	case "today":
		return h.LoadDashboard()
	}
	return nil
}

func (h *Handler) handleReportsAction(action string) tea.Cmd {
	switch action {
	case "prev", "left":
		return h.PrevReportMonth()
	case "next", "right":
		return h.NextReportMonth()
	case "today":
		h.ReportMonth = dateutil.FirstOfMonth(h.Today())
		return h.LoadReports()
	case "copy":
		return h.copyDailySummary()
	}
	return nil
}

// copyDailySummary puts the daily report on the system clipboard.
func (h *Handler) copyDailySummary() tea.Cmd {
	if h.Daily == nil {
		return h.alert("No report loaded yet")
	}
	if err := clipboard.WriteAll(h.Daily.Summary()); err != nil {
		h.Log.Warn("clipboard write failed", zap.Error(err))
		return h.alert(fmt.Sprintf("Could not copy: %v", err))
	}
	h.StatusMsg = "Daily summary copied"
	return nil
}

func (h *Handler) handleConfirmKeyMsg(msg tea.KeyMsg) tea.Cmd {
	c := h.Confirm
	ok, done := c.Resolve(msg.String())
	if !done {
		return nil
	}
	h.Confirm = nil
	if !ok {
		return h.playCue(sound.CueClose)
	}

	switch c.Action {
	case state.ConfirmDeleteHabit:
		return h.deleteHabit(c.ID)
	case state.ConfirmDeleteTask:
		return h.deleteTask(c.ID)
	}
	return nil
}
