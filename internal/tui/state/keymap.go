package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Left   Key
	Right  Key
	Top    Key
	Bottom Key
	Prev   Key
	Next   Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key

	// Item actions
	Add    Key
	Toggle Key
	Delete Key
	Manage Key
	Today  Key
	Pick   Key
	Copy   Key

	// Focus timer
	TimerReset Key
	TimerSkip  Key

	// Preferences
	Theme   Key
	Sidebar Key
	Sound   Key

	// Vim enables the letter motions and the gg/dd sequences.
	Vim bool
}

// KeymapFor returns the Vim keymap when vim is true. Otherwise motion keys
// are the arrows, home/end and delete, and h/j/k/l, g, G and d are unbound.
func KeymapFor(vim bool) KeymapData {
	k := DefaultKeymap()
	if vim {
		return k
	}
	k.Up = Key{Key: "up", Help: "up"}
	k.Down = Key{Key: "down", Help: "down"}
	k.Left = Key{Key: "left", Help: "left"}
	k.Right = Key{Key: "right", Help: "right"}
	k.Top = Key{Key: "home", Help: "top"}
	k.Bottom = Key{Key: "end", Help: "bottom"}
	k.Delete = Key{Key: "delete", Help: "delete"}
	k.Vim = false
	return k
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Left:   Key{Key: "h", Help: "left"},
		Right:  Key{Key: "l", Help: "right"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},
		Prev:   Key{Key: "[", Help: "previous week/month/day"},
		Next:   Key{Key: "]", Help: "next week/month/day"},

		Select:  Key{Key: "enter", Help: "select"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "R", Help: "refresh"},

		Add:    Key{Key: "a", Help: "add"},
		Toggle: Key{Key: "x", Help: "complete/uncomplete"},
		Delete: Key{Key: "d", Help: "delete (dd)"},
		Manage: Key{Key: "M", Help: "manage habits"},
		Today:  Key{Key: "t", Help: "jump to today"},
		Pick:   Key{Key: "p", Help: "pick date"},
		Copy:   Key{Key: "y", Help: "copy daily summary"},

		TimerReset: Key{Key: "r", Help: "reset timer"},
		TimerSkip:  Key{Key: "m", Help: "skip phase"},

		Theme:   Key{Key: "T", Help: "toggle theme"},
		Sidebar: Key{Key: "b", Help: "toggle sidebar"},
		Sound:   Key{Key: "S", Help: "toggle sound"},

		Vim: true,
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if keymap.Vim {
		if ks.WaitingG {
			ks.WaitingG = false
			if key == keymap.Top.Key {
				return "top", true
			}
		}
		if ks.WaitingD {
			ks.WaitingD = false
			if key == keymap.Delete.Key {
				return "delete", true
			}
		}

		switch key {
		case keymap.Top.Key:
			ks.WaitingG = true
			return "", true
		case keymap.Delete.Key:
			ks.WaitingD = true
			return "", true
		}
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Left.Key, "left":
		return "left", true
	case keymap.Right.Key, "right":
		return "right", true
	case keymap.Top.Key, "home":
		return "top", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case keymap.Delete.Key:
		return "delete", true
	case keymap.Prev.Key:
		return "prev", true
	case keymap.Next.Key:
		return "next", true
	case keymap.Select.Key:
		return "select", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.Add.Key:
		return "add", true
	case keymap.Toggle.Key, " ":
		return "toggle", true
	case keymap.Manage.Key:
		return "manage", true
	case keymap.Today.Key:
		return "today", true
	case keymap.Pick.Key:
		return "pick_date", true
	case keymap.Copy.Key:
		return "copy", true
	case keymap.TimerReset.Key:
		return "timer_reset", true
	case keymap.TimerSkip.Key:
		return "timer_skip", true
	case keymap.Theme.Key:
		return "toggle_theme", true
	case keymap.Sidebar.Key:
		return "toggle_sidebar", true
	case keymap.Sound.Key:
		return "toggle_sound", true
	case "1":
		return "page_dashboard", true
	case "2":
		return "page_habits", true
	case "3":
		return "page_tasks", true
	case "4":
		return "page_music", true
	case "5":
		return "page_reports", true
	case "tab":
		return "next_page", true
	case "shift+tab":
		return "prev_page", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
}

// TopLabel and DeleteLabel are the keystrokes shown in hints.
func (k KeymapData) TopLabel() string {
	if k.Vim {
		return "gg"
	}
	return k.Top.Key
}

func (k KeymapData) DeleteLabel() string {
	if k.Vim {
		return "dd"
	}
	return k.Delete.Key
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	top, del := k.TopLabel(), k.DeleteLabel()
	return [][]string{
		{"Pages", ""},
		{"1-5", "Dashboard / Habits / Tasks / Focus / Reports"},
		{"tab/shift+tab", "Next/previous page"},
		{"", ""},
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{k.Left.Key + "/" + k.Right.Key, "Move left/right"},
		{top + "/" + k.Bottom.Key, "Go to top/bottom"},
		{k.Prev.Key + "/" + k.Next.Key, "Previous/next week, month or day"},
		{"", ""},
		{"Habits", ""},
		{k.Toggle.Key + "/space", "Toggle the selected day"},
		{k.Add.Key, "Add habit"},
		{k.Manage.Key, "Manage and reorder habits"},
		{"", ""},
		{"Tasks", ""},
		{k.Add.Key, "Add task"},
		{k.Toggle.Key + "/space", "Complete/uncomplete task"},
		{del, "Delete task"},
		{k.Today.Key, "Jump to today"},
		{k.Pick.Key, "Pick a date"},
		{"", ""},
		{"Focus", ""},
		{"space", "Start/pause"},
		{k.TimerReset.Key, "Reset"},
		{k.TimerSkip.Key, "Skip phase"},
		{"", ""},
		{"Reports", ""},
		{k.Copy.Key, "Copy daily summary"},
		{"", ""},
		{"General", ""},
		{k.Theme.Key, "Toggle theme"},
		{k.Sidebar.Key, "Toggle sidebar"},
		{k.Sound.Key, "Toggle sound"},
		{k.Refresh.Key, "Refresh data"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
