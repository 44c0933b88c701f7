package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

func (h *Handler) handleTasksAction(action string) tea.Cmd {
	switch action {
	case "up":
		if h.TaskCursor > 0 {
			h.TaskCursor--
		}
	case "down":
		if h.TaskCursor < len(h.Tasks)-1 {
			h.TaskCursor++
		}
	case "top":
		h.TaskCursor = 0
	case "bottom":
		if len(h.Tasks) > 0 {
			h.TaskCursor = len(h.Tasks) - 1
		}
	case "left", "prev":
		return h.ShiftTaskDate(-1)
	case "right", "next":
		return h.ShiftTaskDate(1)
	case "today":
		return h.SetTaskDate(h.Today())
	case "pick_date":
		h.DatePicker = state.NewDatePicker(h.TaskDate)
		return tea.Batch(h.playCue(sound.CueOpen), textinput.Blink)
	case "add":
		h.TaskForm = state.NewTaskForm(h.TaskDate)
		return tea.Batch(h.playCue(sound.CueOpen), textinput.Blink)
	case "toggle", "select":
		return h.ToggleTaskAtCursor()
	case "delete":
		task, ok := h.selectedTask()
		if !ok {
			return nil
		}
		h.Confirm = &state.Confirm{
			Title:   "Delete task?",
			Message: task.Title,
			Action:  state.ConfirmDeleteTask,
			ID:      task.ID,
		}
		return h.playCue(sound.CueOpen)
	}
	return nil
}

// ToggleTaskAtCursor flips the selected task and then reloads the day.
func (h *Handler) ToggleTaskAtCursor() tea.Cmd {
	task, ok := h.selectedTask()
	if !ok {
		return nil
	}
	client := h.Client
	return func() tea.Msg {
		completed, err := client.ToggleTask(task.ID)
		if err != nil {
			return errMsg{err}
		}
		return taskToggledMsg{completed: completed}
	}
}

func (h *Handler) handleTaskToggled(msg taskToggledMsg) tea.Cmd {
	cue := sound.CueUncomplete
	if msg.completed {
		cue = sound.CueComplete
	}
	return tea.Batch(h.playCue(cue), h.LoadTasks())
}

func (h *Handler) deleteTask(id int64) tea.Cmd {
	client := h.Client
	return tea.Batch(h.playCue(sound.CueDelete), func() tea.Msg {
		if err := client.DeleteTask(id); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{id: id}
	})
}

func (h *Handler) handleTaskFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.TaskForm = nil
		return h.playCue(sound.CueClose)
	case "enter":
		req, err := h.TaskForm.Request()
		if err != nil {
			return h.alert(err.Error())
		}
		h.TaskForm = nil
		return h.createTask(req)
	}
	return h.TaskForm.Update(msg)
}

func (h *Handler) createTask(req api.CreateTaskRequest) tea.Cmd {
	h.Loading = true
	client := h.Client
	return func() tea.Msg {
		task, err := client.CreateTask(req)
		if err != nil {
			return errMsg{err}
		}
		return taskCreatedMsg{task: task}
	}
}

func (h *Handler) handleDatePickerKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.DatePicker = nil
		return h.playCue(sound.CueClose)
	case "enter":
		date, err := h.DatePicker.Value()
		if err != nil {
			return h.alert("Enter a date as YYYY-MM-DD")
		}
		h.DatePicker = nil
		return h.SetTaskDate(date)
	}

	var cmd tea.Cmd
	h.DatePicker.Input, cmd = h.DatePicker.Input.Update(msg)
	return cmd
}
