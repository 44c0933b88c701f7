package state

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/api"
)

// Habit form fields, in focus order.
const (
	HabitFieldName = iota
	HabitFieldIcon
	HabitFieldColor
)

const habitFieldCount = 3

// HabitColors is the palette cycled by the color field.
var HabitColors = []string{
	api.DefaultHabitColor,
	"#EC4899",
	"#F59E0B",
	"#10B981",
	"#3B82F6",
	"#8B5CF6",
	"#EF4444",
	"#14B8A6",
}

// ErrNameRequired is returned when a habit is submitted without a name.
var ErrNameRequired = errors.New("please enter a habit name")

// HabitForm is the state of the add-habit modal.
type HabitForm struct {
	Name       textinput.Model
	Icon       textinput.Model
	ColorIndex int
	FocusIndex int
}

// NewHabitForm creates an empty habit form.
func NewHabitForm() *HabitForm {
	name := textinput.New()
	name.Placeholder = "e.g. Read 20 pages"
	name.Focus()
	name.CharLimit = 80
	name.Width = 40

	icon := textinput.New()
	icon.Placeholder = api.DefaultHabitIcon
	icon.CharLimit = 4
	icon.Width = 4

	return &HabitForm{Name: name, Icon: icon}
}

// Color returns the selected color.
func (f *HabitForm) Color() string {
	return HabitColors[f.ColorIndex%len(HabitColors)]
}

// Update routes key input to the focused field.
func (f *HabitForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.Focus((f.FocusIndex + 1) % habitFieldCount)
			return nil
		case "shift+tab", "up":
			f.Focus((f.FocusIndex - 1 + habitFieldCount) % habitFieldCount)
			return nil
		}

		if f.FocusIndex == HabitFieldColor {
			switch key.String() {
			case " ", "l", "right":
				f.ColorIndex = (f.ColorIndex + 1) % len(HabitColors)
			case "h", "left":
				f.ColorIndex = (f.ColorIndex - 1 + len(HabitColors)) % len(HabitColors)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case HabitFieldName:
		f.Name, cmd = f.Name.Update(msg)
	case HabitFieldIcon:
		f.Icon, cmd = f.Icon.Update(msg)
	}
	return cmd
}

// Focus focuses the field at index.
func (f *HabitForm) Focus(index int) {
	f.FocusIndex = index
	f.Name.Blur()
	f.Icon.Blur()
	switch index {
	case HabitFieldName:
		f.Name.Focus()
	case HabitFieldIcon:
		f.Icon.Focus()
	}
}

// Request validates the form and builds the create request.
func (f *HabitForm) Request() (api.CreateHabitRequest, error) {
	name := strings.TrimSpace(f.Name.Value())
	if name == "" {
		return api.CreateHabitRequest{}, ErrNameRequired
	}
	icon := strings.TrimSpace(f.Icon.Value())
	if icon == "" {
		icon = api.DefaultHabitIcon
	}
	return api.CreateHabitRequest{Name: name, Icon: icon, Color: f.Color()}, nil
}
