// Package logic holds the update side of the TUI: key handling, loaders and
// the messages they produce.
package logic

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/components"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

const focusTimerID = 1

type Handler struct {
	*state.State

	keys   state.KeyState
	timer  *components.TimerModel
	notify func(title, message string) error
}

func NewHandler(s *state.State) *Handler {
	return &Handler{
		State: s,
		timer: components.NewTimerModel(focusTimerID),
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.loadPage(h.CurrentPage),
	)
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case components.TimerTickMsg:
		return h.handleTimerTick(msg)

	case errMsg:
		h.Loading = false
		h.Err = msg.err
		h.Log.Warn("request failed", zap.Error(msg.err))
		return h.playCue(sound.CueError)

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case dashboardLoadedMsg:
		h.Loading = false
		h.Err = nil
		h.Stats = msg.stats
		h.Weekly = msg.stats.WeeklyData
		return nil

	case weeklyLoadedMsg:
		h.Loading = false
		h.Weekly = msg.days
		return nil

	case habitsLoadedMsg:
		h.Loading = false
		h.Err = nil
		h.Habits = msg.habits
		h.Calendar = msg.calendar
		h.clampHabitCursor()
		return nil

	case calendarLoadedMsg:
		h.Loading = false
		h.Calendar = msg.calendar
		return nil

	case tasksLoadedMsg:
		h.Loading = false
		h.Err = nil
		h.Tasks = msg.tasks
		h.clampTaskCursor()
		return nil

	case reportsLoadedMsg:
		h.Loading = false
		h.Err = nil
		h.Analytics = msg.analytics
		h.Monthly = msg.monthly
		h.Daily = msg.daily
		return nil

	case musicLoadedMsg:
		h.Loading = false
		h.FocusTotal = msg.total
		return nil

	case focusSessionsSavedMsg:
		h.FocusTotal = msg.total
		return nil

	case habitToggledMsg:
		return h.handleHabitToggled(msg)

	case taskToggledMsg:
		return h.handleTaskToggled(msg)

	case habitCreatedMsg:
		h.StatusMsg = "Habit created: " + msg.habit.Name
		return tea.Batch(h.playCue(sound.CueCreate), h.LoadHabits())

	case taskCreatedMsg:
		h.StatusMsg = "Task added"
		return tea.Batch(h.playCue(sound.CueCreate), h.LoadTasks())

	case habitDeletedMsg:
		h.Loading = false
		h.StatusMsg = "Habit deleted"
		return nil

	case taskDeletedMsg:
		h.StatusMsg = "Task deleted"
		return h.LoadTasks()

	case habitsReorderedMsg:
		h.StatusMsg = "Habit order saved"
		return h.LoadHabits()
	}

	// Forward non-key messages (like blink) to active inputs
	switch {
	case h.HabitForm != nil:
		return h.HabitForm.Update(msg)
	case h.TaskForm != nil:
		return h.TaskForm.Update(msg)
	case h.DatePicker != nil:
		var cmd tea.Cmd
		h.DatePicker.Input, cmd = h.DatePicker.Input.Update(msg)
		return cmd
	}
	return nil
}

// playCue plays cue off the update loop.
func (h *Handler) playCue(cue sound.Cue) tea.Cmd {
	if h.Sound == nil || !h.Sound.Enabled() {
		return nil
	}
	snd := h.Sound
	return func() tea.Msg {
		snd.Play(cue)
		return nil
	}
}

// alert reports a validation failure without touching the network.
func (h *Handler) alert(text string) tea.Cmd {
	h.Err = nil
	h.StatusMsg = "⚠ " + text
	return h.playCue(sound.CueError)
}

func (h *Handler) clampHabitCursor() {
	if h.HabitCursor >= len(h.Habits) {
		h.HabitCursor = len(h.Habits) - 1
	}
	if h.HabitCursor < 0 {
		h.HabitCursor = 0
	}
	days := dateutil.DaysInMonth(h.CalendarMonth.Year(), h.CalendarMonth.Month())
	if h.DayCursor > days {
		h.DayCursor = days
	}
	if h.DayCursor < 1 {
		h.DayCursor = 1
	}
}

func (h *Handler) clampTaskCursor() {
	if h.TaskCursor >= len(h.Tasks) {
		h.TaskCursor = len(h.Tasks) - 1
	}
	if h.TaskCursor < 0 {
		h.TaskCursor = 0
	}
}

func (h *Handler) selectedHabit() (api.Habit, bool) {
	if h.HabitCursor < 0 || h.HabitCursor >= len(h.Habits) {
		return api.Habit{}, false
	}
	return h.Habits[h.HabitCursor], true
}

func (h *Handler) selectedTask() (api.Task, bool) {
	if h.TaskCursor < 0 || h.TaskCursor >= len(h.Tasks) {
		return api.Task{}, false
	}
	return h.Tasks[h.TaskCursor], true
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

type dashboardLoadedMsg struct{ stats *api.Stats }
type weeklyLoadedMsg struct{ days []api.DayPercentage }
type habitsLoadedMsg struct {
	habits   []api.Habit
	calendar api.CalendarMonth
}
type calendarLoadedMsg struct{ calendar api.CalendarMonth }
type tasksLoadedMsg struct{ tasks []api.Task }
type reportsLoadedMsg struct {
	analytics *api.Analytics
	monthly   *api.MonthlyTrends
	daily     *api.DailyReport
}
type musicLoadedMsg struct{ total int }

type focusSessionsSavedMsg struct{ total int }

type habitToggledMsg struct {
	name      string
	completed bool
}
type taskToggledMsg struct{ completed bool }
type habitCreatedMsg struct{ habit *api.Habit }
type taskCreatedMsg struct{ task *api.Task }
type habitDeletedMsg struct{ id int64 }
type taskDeletedMsg struct{ id int64 }
type habitsReorderedMsg struct{}
