package state

import "github.com/hy4ri/habitflow/internal/api"

// ManageHabits is the manage/reorder modal.
//
// It moves through closed → open → dragging → dropped → … → closed. Items is
// a local copy of the habit list; drops splice it in place and Close hands
// back the final id order for the caller to persist.
type ManageHabits struct {
	Open     bool
	Items    []api.Habit
	Cursor   int
	Dragging int64 // id being dragged, 0 when idle
	Dirty    bool  // order differs from the one the modal opened with
}

// NewManageHabits returns a closed modal.
func NewManageHabits() *ManageHabits {
	return &ManageHabits{}
}

// OpenWith opens the modal over a copy of habits.
func (m *ManageHabits) OpenWith(habits []api.Habit) {
	m.Open = true
	m.Items = append([]api.Habit(nil), habits...)
	m.Cursor = 0
	m.Dragging = 0
	m.Dirty = false
}

// IsDragging reports whether an item is picked up.
func (m *ManageHabits) IsDragging() bool {
	return m.Dragging != 0
}

// StartDrag picks up the habit with id. It returns false for unknown ids.
func (m *ManageHabits) StartDrag(id int64) bool {
	if m.indexOf(id) < 0 {
		return false
	}
	m.Dragging = id
	return true
}

// CancelDrag drops nothing and clears the dragged id.
func (m *ManageHabits) CancelDrag() {
	m.Dragging = 0
}

// Drop moves the dragged habit to the position of target. It is a no-op
// (returning false) when nothing is dragged, when target is the dragged
// habit, or when either id is not in the list.
func (m *ManageHabits) Drop(target int64) bool {
	dragged := m.Dragging
	m.Dragging = 0
	if dragged == 0 || dragged == target {
		return false
	}
	from, to := m.indexOf(dragged), m.indexOf(target)
	if from < 0 || to < 0 {
		return false
	}

	item := m.Items[from]
	m.Items = append(m.Items[:from], m.Items[from+1:]...)
	m.Items = append(m.Items[:to], append([]api.Habit{item}, m.Items[to:]...)...)
	m.Cursor = to
	m.Dirty = true
	return true
}

// Remove deletes the habit with id from the local list.
func (m *ManageHabits) Remove(id int64) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.Items = append(m.Items[:i], m.Items[i+1:]...)
	if m.Dragging == id {
		m.Dragging = 0
	}
	if m.Cursor >= len(m.Items) && m.Cursor > 0 {
		m.Cursor = len(m.Items) - 1
	}
	return true
}

// Selected returns the habit under the cursor.
func (m *ManageHabits) Selected() (api.Habit, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return api.Habit{}, false
	}
	return m.Items[m.Cursor], true
}

// MoveCursor moves the cursor by delta, clamped to the list.
func (m *ManageHabits) MoveCursor(delta int) {
	m.Cursor += delta
	if m.Cursor >= len(m.Items) {
		m.Cursor = len(m.Items) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// IDs returns the current id order.
func (m *ManageHabits) IDs() []int64 {
	ids := make([]int64, len(m.Items))
	for i, h := range m.Items {
		ids[i] = h.ID
	}
	return ids
}

// Close closes the modal and returns the id order to persist.
func (m *ManageHabits) Close() []int64 {
	ids := m.IDs()
	m.Open = false
	m.Dragging = 0
	return ids
}

func (m *ManageHabits) indexOf(id int64) int {
	for i, h := range m.Items {
		if h.ID == id {
			return i
		}
	}
	return -1
}
