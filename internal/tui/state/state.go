package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/config"
	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/styles"
)

// Page represents a top-level page.
type Page int

const (
	PageDashboard Page = iota
	PageHabits
	PageTasks
	PageMusic
	PageReports
)

// PageInfo holds page metadata for the sidebar.
type PageInfo struct {
	Page      Page
	Icon      string
	Name      string
	ShortName string
	Key       string
}

// GetPageDefinitions returns the pages in sidebar order.
func GetPageDefinitions() []PageInfo {
	return []PageInfo{
		{PageDashboard, "🏠", "Dashboard", "Dash", "1"},
		{PageHabits, "✓", "Habits", "Hab", "2"},
		{PageTasks, "📋", "Tasks", "Tsk", "3"},
		{PageMusic, "🎧", "Focus", "Foc", "4"},
		{PageReports, "📊", "Reports", "Rep", "5"},
	}
}

func (p Page) String() string {
	for _, info := range GetPageDefinitions() {
		if info.Page == p {
			return info.Name
		}
	}
	return "Unknown"
}

// ParsePage maps a config or flag value to a page.
func ParsePage(name string) (Page, bool) {
	switch name {
	case "dashboard", "":
		return PageDashboard, true
	case "habits", "calendar":
		return PageHabits, true
	case "tasks":
		return PageTasks, true
	case "music", "focus":
		return PageMusic, true
	case "reports":
		return PageReports, true
	}
	return PageDashboard, false
}

// Preferences persists the UI flags that survive restarts.
type Preferences interface {
	SavePreferences(config.Preferences) error
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Sound  *sound.Manager
	Prefs  Preferences
	Log    *zap.Logger
	Keymap KeymapData

	// Navigation and cursors
	CurrentPage   Page
	TaskDate      time.Time
	CalendarMonth time.Time // first of the month shown on the habits page
	ReportMonth   time.Time // first of the month shown on the reports page
	WeekOffset    int

	// Data
	Habits    []api.Habit
	Calendar  api.CalendarMonth
	Tasks     []api.Task
	Stats     *api.Stats
	Weekly    []api.DayPercentage
	Analytics *api.Analytics
	Monthly   *api.MonthlyTrends
	Daily     *api.DailyReport

	// Persisted preferences
	Theme            string
	SidebarCollapsed bool
	SoundEnabled     bool

	// List state
	HabitCursor int
	DayCursor   int // 1-based day of CalendarMonth
	TaskCursor  int

	// UI state
	Loading   bool
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHelp  bool
	Spinner   spinner.Model

	// Modals
	HabitForm  *HabitForm
	TaskForm   *TaskForm
	Confirm    *Confirm
	Manage     *ManageHabits
	DatePicker *DatePicker

	Focus      *FocusTimer
	FocusTotal int // completed work sessions, stored as a server setting

	// Now is the clock; tests replace it.
	Now func() time.Time
}

// New creates the application state from the loaded config.
func New(client *api.Client, cfg *config.Config, prefs Preferences, snd *sound.Manager, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	if snd == nil {
		snd = sound.NewManager(false, log)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	today := dateutil.Today()
	s := &State{
		Client:           client,
		Config:           cfg,
		Sound:            snd,
		Prefs:            prefs,
		Log:              log,
		Keymap:           KeymapFor(cfg.UI.VimMode),
		TaskDate:         today,
		CalendarMonth:    dateutil.FirstOfMonth(today),
		ReportMonth:      dateutil.FirstOfMonth(today),
		DayCursor:        today.Day(),
		Theme:            cfg.UI.Theme,
		SidebarCollapsed: cfg.UI.SidebarCollapsed,
		SoundEnabled:     cfg.UI.SoundEnabled,
		Spinner:          sp,
		Focus:            NewFocusTimer(cfg.Focus.WorkMinutes, cfg.Focus.BreakMinutes),
		Now:              time.Now,
	}
	if page, ok := ParsePage(cfg.UI.StartPage); ok {
		s.CurrentPage = page
	}
	snd.SetEnabled(s.SoundEnabled)
	styles.Apply(styles.ForTheme(s.Theme))
	return s
}

// Today returns the local date at midnight according to Now.
func (s *State) Today() time.Time {
	return dateutil.StartOfDay(s.Now())
}

// ReportDay is the date of the daily breakdown: today when the report month
// is the current month, otherwise the last day of the report month.
func (s *State) ReportDay() time.Time {
	today := s.Today()
	if dateutil.FirstOfMonth(today).Equal(s.ReportMonth) {
		return today
	}
	y, m := s.ReportMonth.Year(), s.ReportMonth.Month()
	return time.Date(y, m, dateutil.DaysInMonth(y, m), 0, 0, 0, 0, time.Local)
}

// SetTheme switches and persists the color theme.
func (s *State) SetTheme(theme string) {
	if theme != config.ThemeLight {
		theme = config.ThemeDark
	}
	s.Theme = theme
	styles.Apply(styles.ForTheme(theme))
	s.Spinner.Style = styles.Spinner
	s.persist()
}

// ToggleTheme flips between dark and light.
func (s *State) ToggleTheme() {
	if s.Theme == config.ThemeLight {
		s.SetTheme(config.ThemeDark)
	} else {
		s.SetTheme(config.ThemeLight)
	}
}

// SetSidebarCollapsed sets and persists the sidebar flag.
func (s *State) SetSidebarCollapsed(collapsed bool) {
	s.SidebarCollapsed = collapsed
	s.persist()
}

// ToggleSidebar flips the sidebar flag.
func (s *State) ToggleSidebar() {
	s.SetSidebarCollapsed(!s.SidebarCollapsed)
}

// SetSoundEnabled sets and persists the sound flag.
func (s *State) SetSoundEnabled(enabled bool) {
	s.SoundEnabled = enabled
	s.Sound.SetEnabled(enabled)
	s.persist()
}

// persist writes the preferences; a failure is logged and otherwise ignored.
func (s *State) persist() {
	if s.Prefs == nil {
		return
	}
	err := s.Prefs.SavePreferences(config.Preferences{
		Theme:            s.Theme,
		SidebarCollapsed: s.SidebarCollapsed,
		SoundEnabled:     s.SoundEnabled,
	})
	if err != nil {
		s.Log.Warn("failed to save preferences", zap.Error(err))
	}
}
