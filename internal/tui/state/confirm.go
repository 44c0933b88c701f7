package state

// ConfirmAction identifies what a confirm modal guards.
type ConfirmAction int

const (
	ConfirmDeleteHabit ConfirmAction = iota
	ConfirmDeleteTask
)

// Confirm is a yes/no modal.
type Confirm struct {
	Title   string
	Message string
	Action  ConfirmAction
	ID      int64
}

// Resolve maps a key to the modal's answer. done is false for keys that
// neither confirm nor cancel.
func (c *Confirm) Resolve(key string) (ok, done bool) {
	switch key {
	case "y", "Y", "enter":
		return true, true
	case "n", "N", "esc", "q":
		return false, true
	}
	return false, false
}
