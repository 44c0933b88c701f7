package state

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/hy4ri/habitflow/internal/dateutil"
)

// DatePicker is the set-task-date modal.
type DatePicker struct {
	Input textinput.Model
}

// NewDatePicker creates a picker prefilled with current.
func NewDatePicker(current time.Time) *DatePicker {
	in := textinput.New()
	in.Placeholder = dateutil.Layout
	in.CharLimit = 10
	in.Width = 12
	in.SetValue(dateutil.FormatDate(current))
	in.CursorEnd()
	in.Focus()
	return &DatePicker{Input: in}
}

// Value parses the entered date.
func (d *DatePicker) Value() (time.Time, error) {
	return dateutil.ParseDate(strings.TrimSpace(d.Input.Value()))
}
