package state

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
)

// Task form fields, in focus order.
const (
	TaskFieldTitle = iota
	TaskFieldPriority
	TaskFieldStart
	TaskFieldEnd
)

const taskFieldCount = 4

// ErrTitleRequired is returned when a task is submitted without a title.
var ErrTitleRequired = errors.New("please enter a task title")

// TaskForm is the state of the add-task modal.
type TaskForm struct {
	Title      textinput.Model
	Priority   api.Priority
	StartTime  textinput.Model
	EndTime    textinput.Model
	Date       time.Time
	FocusIndex int
}

// NewTaskForm creates a form for a task on date.
func NewTaskForm(date time.Time) *TaskForm {
	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.Focus()
	title.CharLimit = 200
	title.Width = 40

	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.CharLimit = 5
	start.Width = 6

	end := textinput.New()
	end.Placeholder = "HH:MM"
	end.CharLimit = 5
	end.Width = 6

	return &TaskForm{
		Title:     title,
		Priority:  api.PriorityMedium,
		StartTime: start,
		EndTime:   end,
		Date:      date,
	}
}

// Update routes key input to the focused field.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		if f.FocusIndex == TaskFieldPriority {
			switch key.String() {
			case " ", "l", "right":
				f.Priority = f.Priority.Next()
			case "h", "left":
				f.Priority = f.Priority.Next().Next()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case TaskFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case TaskFieldStart:
		f.StartTime, cmd = f.StartTime.Update(msg)
	case TaskFieldEnd:
		f.EndTime, cmd = f.EndTime.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % taskFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + taskFieldCount) % taskFieldCount)
}

// Focus focuses the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.StartTime.Blur()
	f.EndTime.Blur()

	switch index {
	case TaskFieldTitle:
		f.Title.Focus()
	case TaskFieldStart:
		f.StartTime.Focus()
	case TaskFieldEnd:
		f.EndTime.Focus()
	}
}

// Request validates the form and builds the create request.
func (f *TaskForm) Request() (api.CreateTaskRequest, error) {
	title := strings.TrimSpace(f.Title.Value())
	if title == "" {
		return api.CreateTaskRequest{}, ErrTitleRequired
	}
	req := api.CreateTaskRequest{
		Title:    title,
		Date:     dateutil.FormatDate(f.Date),
		Priority: f.Priority,
	}

	start := strings.TrimSpace(f.StartTime.Value())
	end := strings.TrimSpace(f.EndTime.Value())
	if start != "" {
		if !dateutil.ValidClock(start) {
			return api.CreateTaskRequest{}, fmt.Errorf("start time %q must be HH:MM", start)
		}
		req.StartTime = &start
	}
	if end != "" {
		if start == "" {
			return api.CreateTaskRequest{}, errors.New("an end time needs a start time")
		}
		if !dateutil.ValidClock(end) {
			return api.CreateTaskRequest{}, fmt.Errorf("end time %q must be HH:MM", end)
		}
		req.EndTime = &end
	}
	return req, nil
}
