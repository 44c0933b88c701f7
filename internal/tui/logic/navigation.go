package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

// NavigateTo switches to page, plays the navigate cue and runs that
// page's loader.
func (h *Handler) NavigateTo(page state.Page) tea.Cmd {
	h.CurrentPage = page
	h.keys.Reset()
	h.Err = nil
	h.StatusMsg = ""
	return tea.Batch(h.playCue(sound.CueNavigate), h.loadPage(page))
}

// cyclePage moves to the next or previous page, wrapping around.
func (h *Handler) cyclePage(delta int) tea.Cmd {
	pages := state.GetPageDefinitions()
	idx := 0
	for i, p := range pages {
		if p.Page == h.CurrentPage {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(pages)) % len(pages)
	return h.NavigateTo(pages[idx].Page)
}

// PrevWeek moves the dashboard chart one week back.
func (h *Handler) PrevWeek() tea.Cmd {
	h.WeekOffset--
	return h.LoadWeekly()
}

// NextWeek moves the dashboard chart one week forward.
func (h *Handler) NextWeek() tea.Cmd {
	h.WeekOffset++
	return h.LoadWeekly()
}

// PrevMonth moves the habit calendar one month back and reloads it.
func (h *Handler) PrevMonth() tea.Cmd {
	return h.setCalendarMonth(dateutil.AddMonths(h.CalendarMonth, -1))
}

// NextMonth moves the habit calendar one month forward and reloads it.
func (h *Handler) NextMonth() tea.Cmd {
	return h.setCalendarMonth(dateutil.AddMonths(h.CalendarMonth, 1))
}

func (h *Handler) setCalendarMonth(month time.Time) tea.Cmd {
	h.CalendarMonth = month
	today := h.Today()
	if dateutil.FirstOfMonth(today).Equal(month) {
		h.DayCursor = today.Day()
	}
	h.clampHabitCursor()
	return h.LoadHabits()
}

// PrevReportMonth moves the reports one month back and re-runs the full load.
func (h *Handler) PrevReportMonth() tea.Cmd {
	h.ReportMonth = dateutil.AddMonths(h.ReportMonth, -1)
	return h.LoadReports()
}

// NextReportMonth moves the reports one month forward and re-runs the full load.
func (h *Handler) NextReportMonth() tea.Cmd {
	h.ReportMonth = dateutil.AddMonths(h.ReportMonth, 1)
	return h.LoadReports()
}

// ShiftTaskDate moves the task date by days and reloads the list.
func (h *Handler) ShiftTaskDate(days int) tea.Cmd {
	return h.SetTaskDate(h.TaskDate.AddDate(0, 0, days))
}

// SetTaskDate sets the task date and reloads the list.
func (h *Handler) SetTaskDate(date time.Time) tea.Cmd {
	h.TaskDate = dateutil.StartOfDay(date)
	h.TaskCursor = 0
	return h.LoadTasks()
}
