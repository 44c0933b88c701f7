// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from.
type Palette struct {
	Name       string
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Surface    lipgloss.Color
	Selected   lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	HabitLine  lipgloss.Color // habit series in the reports chart
	TaskLine   lipgloss.Color // task series in the reports chart
	EmptyCell  lipgloss.Color
	OnAccent   lipgloss.Color
	BarTrack   lipgloss.Color
	BarFill    lipgloss.Color
	RingTrack  lipgloss.Color
	RingHabits lipgloss.Color
	RingTasks  lipgloss.Color
}

// Dark and Light are the two built-in themes.
var (
	Dark = Palette{
		Name:       "dark",
		Text:       "#E5E7EB",
		Subtle:     "#9CA3AF",
		Highlight:  "#6366F1",
		Surface:    "#1F1F1F",
		Selected:   "#2A2A2A",
		Error:      "#F87171",
		Success:    "#4ADE80",
		Warning:    "#FBBF24",
		HabitLine:  "#818CF8",
		TaskLine:   "#34D399",
		EmptyCell:  "#374151",
		OnAccent:   "#FFFFFF",
		BarTrack:   "#374151",
		BarFill:    "#6366F1",
		RingTrack:  "#374151",
		RingHabits: "#818CF8",
		RingTasks:  "#34D399",
	}

	Light = Palette{
		Name:       "light",
		Text:       "#1F2937",
		Subtle:     "#6B7280",
		Highlight:  "#4F46E5",
		Surface:    "#E8E8E8",
		Selected:   "#EEEEEE",
		Error:      "#DC2626",
		Success:    "#16A34A",
		Warning:    "#D97706",
		HabitLine:  "#4F46E5",
		TaskLine:   "#059669",
		EmptyCell:  "#D1D5DB",
		OnAccent:   "#FFFFFF",
		BarTrack:   "#E5E7EB",
		BarFill:    "#4F46E5",
		RingTrack:  "#E5E7EB",
		RingHabits: "#4F46E5",
		RingTasks:  "#059669",
	}
)

// Current is the active palette.
var Current = Dark

// Base styles
var (
	// Title is the style for section titles
	Title lipgloss.Style

	// Subtitle is for secondary headings
	Subtitle lipgloss.Style

	// Muted is for secondary text
	Muted lipgloss.Style
)

// Task styles
var (
	TaskItem      lipgloss.Style
	TaskSelected  lipgloss.Style
	TaskCompleted lipgloss.Style
	TaskTime      lipgloss.Style

	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
)

// Layout styles
var (
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	MainContent   lipgloss.Style
	Card          lipgloss.Style
	CardValue     lipgloss.Style
	CardLabel     lipgloss.Style
)

// StatusBar styles
var (
	StatusBar        lipgloss.Style
	StatusBarKey     lipgloss.Style
	StatusBarText    lipgloss.Style
	StatusBarError   lipgloss.Style
	StatusBarSuccess lipgloss.Style
)

// Help styles
var (
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
)

// Input and dialog styles
var (
	InputLabel        lipgloss.Style
	InputLabelFocused lipgloss.Style
	Dialog            lipgloss.Style
	DialogTitle       lipgloss.Style
	Spinner           lipgloss.Style
)

// Calendar grid styles
var (
	CalendarHeader  lipgloss.Style
	CalendarWeekday lipgloss.Style
	CalendarToday   lipgloss.Style
	CalendarCursor  lipgloss.Style
	CellEmpty       lipgloss.Style
)

// Chart styles
var (
	BarFill    lipgloss.Style
	BarTrack   lipgloss.Style
	HabitLine  lipgloss.Style
	TaskLine   lipgloss.Style
	RingTrack  lipgloss.Style
	RingHabits lipgloss.Style
	RingTasks  lipgloss.Style
)

// Checkbox glyphs
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)

func init() {
	Apply(Dark)
}

// ForTheme returns the palette named name, defaulting to Dark.
func ForTheme(name string) Palette {
	if name == Light.Name {
		return Light
	}
	return Dark
}

// Apply rebuilds every style from p and makes it current.
func Apply(p Palette) {
	Current = p

	Title = lipgloss.NewStyle().Bold(true).Foreground(p.Highlight)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(p.Subtle)
	Muted = lipgloss.NewStyle().Foreground(p.Subtle)

	TaskItem = lipgloss.NewStyle().PaddingLeft(2).Foreground(p.Text)
	TaskSelected = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeftForeground(p.Highlight).
		Bold(true).
		Background(p.Selected)
	TaskCompleted = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	TaskTime = lipgloss.NewStyle().Foreground(p.Highlight).PaddingLeft(1)

	PriorityHigh = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	PriorityMedium = lipgloss.NewStyle().Foreground(p.Warning)
	PriorityLow = lipgloss.NewStyle().Foreground(p.Subtle)

	Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Subtle).
		Padding(0, 1)
	SidebarItem = lipgloss.NewStyle().PaddingLeft(1).Foreground(p.Text)
	SidebarActive = lipgloss.NewStyle().
		PaddingLeft(1).
		Bold(true).
		Foreground(p.OnAccent).
		Background(p.Highlight)
	MainContent = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Subtle).
		Padding(0, 1)
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Highlight).
		Padding(0, 2).
		Align(lipgloss.Center)
	CardValue = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	CardLabel = lipgloss.NewStyle().Foreground(p.Subtle)

	StatusBar = lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface).Padding(0, 1)
	StatusBarKey = lipgloss.NewStyle().Bold(true).Foreground(p.Highlight).Background(p.Surface)
	StatusBarText = lipgloss.NewStyle().Foreground(p.Subtle).Background(p.Surface)
	StatusBarError = lipgloss.NewStyle().Foreground(p.Error).Background(p.Surface).Bold(true)
	StatusBarSuccess = lipgloss.NewStyle().Foreground(p.Success).Background(p.Surface).Bold(true)

	HelpKey = lipgloss.NewStyle().Bold(true).Foreground(p.Highlight)
	HelpDesc = lipgloss.NewStyle().Foreground(p.Subtle)

	InputLabel = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	InputLabelFocused = lipgloss.NewStyle().Bold(true).Foreground(p.Highlight)
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Highlight).
		Padding(1, 2)
	DialogTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Highlight)
	Spinner = lipgloss.NewStyle().Foreground(p.Highlight)

	CalendarHeader = lipgloss.NewStyle().Bold(true).Foreground(p.Highlight)
	CalendarWeekday = lipgloss.NewStyle().Foreground(p.Subtle)
	CalendarToday = lipgloss.NewStyle().Bold(true).Foreground(p.Success)
	CalendarCursor = lipgloss.NewStyle().Bold(true).Reverse(true)
	CellEmpty = lipgloss.NewStyle().Foreground(p.EmptyCell)

	BarFill = lipgloss.NewStyle().Foreground(p.BarFill)
	BarTrack = lipgloss.NewStyle().Foreground(p.BarTrack)
	HabitLine = lipgloss.NewStyle().Foreground(p.HabitLine)
	TaskLine = lipgloss.NewStyle().Foreground(p.TaskLine)
	RingTrack = lipgloss.NewStyle().Foreground(p.RingTrack)
	RingHabits = lipgloss.NewStyle().Foreground(p.RingHabits)
	RingTasks = lipgloss.NewStyle().Foreground(p.RingTasks)
}

// PriorityStyle returns the style for a task priority.
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// HabitColor returns a foreground style in the habit's own color.
func HabitColor(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(Current.Highlight)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
