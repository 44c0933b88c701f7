package logic

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

func (h *Handler) handleHabitsAction(action string) tea.Cmd {
	days := dateutil.DaysInMonth(h.CalendarMonth.Year(), h.CalendarMonth.Month())

	switch action {
	case "up":
		if h.HabitCursor > 0 {
			h.HabitCursor--
		}
	case "down":
		if h.HabitCursor < len(h.Habits)-1 {
			h.HabitCursor++
		}
	case "left":
		if h.DayCursor > 1 {
			h.DayCursor--
		}
	case "right":
		if h.DayCursor < days {
			h.DayCursor++
		}
	case "top":
		h.HabitCursor = 0
	case "bottom":
		h.clampHabitCursor()
		if len(h.Habits) > 0 {
			h.HabitCursor = len(h.Habits) - 1
		}
	case "prev":
		return h.PrevMonth()
	case "next":
		return h.NextMonth()
	case "today":
		return h.setCalendarMonth(dateutil.FirstOfMonth(h.Today()))
	case "toggle", "select":
		return h.ToggleHabitAtCursor()
	case "add":
		return h.openHabitForm()
	case "manage":
		return h.OpenManage()
	case "delete":
		habit, ok := h.selectedHabit()
		if !ok {
			return nil
		}
		return h.confirmDeleteHabit(habit)
	}
	return nil
}

// ToggleHabitAtCursor flips the completion under the calendar cursor and
// then reloads the month.
func (h *Handler) ToggleHabitAtCursor() tea.Cmd {
	habit, ok := h.selectedHabit()
	if !ok {
		return nil
	}
	year, month := h.CalendarMonth.Year(), h.CalendarMonth.Month()
	date := dateutil.MonthDate(year, month, h.DayCursor)
	if day, err := dateutil.ParseDate(date); err == nil && day.After(h.Today()) {
		return h.alert("Can't complete a day in the future")
	}

	client := h.Client
	return func() tea.Msg {
		completed, err := client.ToggleHabit(habit.ID, date)
		if err != nil {
			return errMsg{err}
		}
		return habitToggledMsg{name: habit.Name, completed: completed}
	}
}

func (h *Handler) handleHabitToggled(msg habitToggledMsg) tea.Cmd {
	cue := sound.CueUncomplete
	h.StatusMsg = "Unmarked " + msg.name
	if msg.completed {
		cue = sound.CueComplete
		h.StatusMsg = "Completed " + msg.name
	}
	return tea.Batch(h.playCue(cue), h.LoadCalendar())
}

func (h *Handler) openHabitForm() tea.Cmd {
	h.HabitForm = state.NewHabitForm()
	return tea.Batch(h.playCue(sound.CueOpen), textinput.Blink)
}

func (h *Handler) handleHabitFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.HabitForm = nil
		return h.playCue(sound.CueClose)
	case "enter":
		req, err := h.HabitForm.Request()
		if err != nil {
			return h.alert(err.Error())
		}
		h.HabitForm = nil
		return h.createHabit(req)
	}
	return h.HabitForm.Update(msg)
}

func (h *Handler) createHabit(req api.CreateHabitRequest) tea.Cmd {
	h.Loading = true
	client := h.Client
	return func() tea.Msg {
		habit, err := client.CreateHabit(req)
		if err != nil {
			return errMsg{err}
		}
		return habitCreatedMsg{habit: habit}
	}
}

func (h *Handler) confirmDeleteHabit(habit api.Habit) tea.Cmd {
	h.Confirm = &state.Confirm{
		Title:   "Delete habit?",
		Message: fmt.Sprintf("%s %s and its history will be removed.", habit.Icon, habit.Name),
		Action:  state.ConfirmDeleteHabit,
		ID:      habit.ID,
	}
	return h.playCue(sound.CueOpen)
}

// deleteHabit removes the habit locally right away and deletes it on the
// server. The list is not reloaded.
func (h *Handler) deleteHabit(id int64) tea.Cmd {
	for i, habit := range h.Habits {
		if habit.ID == id {
			h.Habits = append(h.Habits[:i:i], h.Habits[i+1:]...)
			break
		}
	}
	delete(h.Calendar, id)
	if h.Manage != nil && h.Manage.Open {
		h.Manage.Remove(id)
	}
	h.clampHabitCursor()

	client := h.Client
	return tea.Batch(h.playCue(sound.CueDelete), func() tea.Msg {
		if err := client.DeleteHabit(id); err != nil {
			return errMsg{err}
		}
		return habitDeletedMsg{id: id}
	})
}

// OpenManage opens the manage habits modal over the current list.
func (h *Handler) OpenManage() tea.Cmd {
	if h.Manage == nil {
		h.Manage = state.NewManageHabits()
	}
	h.Manage.OpenWith(h.Habits)
	h.keys.Reset()
	return h.playCue(sound.CueOpen)
}

// CloseManage closes the modal, persists the final order and reloads the
// habits. Every dismissal goes through here.
func (h *Handler) CloseManage() tea.Cmd {
	ids := h.Manage.Close()
	h.Habits = append([]api.Habit(nil), h.Manage.Items...)
	h.keys.Reset()

	cue := h.playCue(sound.CueClose)
	if len(ids) == 0 {
		return cue
	}
	client := h.Client
	return tea.Batch(cue, func() tea.Msg {
		if err := client.ReorderHabits(ids); err != nil {
			return errMsg{err}
		}
		return habitsReorderedMsg{}
	})
}

func (h *Handler) handleManageKeyMsg(msg tea.KeyMsg) tea.Cmd {
	m := h.Manage
	action, _ := h.keys.HandleKey(msg, h.Keymap)

	switch action {
	case "back":
		if m.IsDragging() {
			m.CancelDrag()
			return nil
		}
		return h.CloseManage()
	case "quit", "manage":
		return h.CloseManage()
	case "up":
		m.MoveCursor(-1)
	case "down":
		m.MoveCursor(1)
	case "top":
		m.MoveCursor(-len(m.Items))
	case "bottom":
		m.MoveCursor(len(m.Items))
	case "select", "toggle":
		selected, ok := m.Selected()
		if !ok {
			return nil
		}
		if m.IsDragging() {
			if m.Drop(selected.ID) {
				return h.playCue(sound.CueDrop)
			}
			return nil
		}
		if m.StartDrag(selected.ID) {
			return h.playCue(sound.CueDrag)
		}
	case "delete":
		if m.IsDragging() {
			return nil
		}
		selected, ok := m.Selected()
		if !ok {
			return nil
		}
		return h.confirmDeleteHabit(selected)
	}
	return nil
}
