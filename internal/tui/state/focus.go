package state

import "time"

// FocusPhase is the current phase of the focus timer.
type FocusPhase int

const (
	FocusWork FocusPhase = iota
	FocusBreak
)

func (p FocusPhase) String() string {
	if p == FocusBreak {
		return "Break"
	}
	return "Focus"
}

// FocusTimer is a countdown that alternates work and break phases.
type FocusTimer struct {
	Phase     FocusPhase
	Remaining time.Duration
	Running   bool
	Sessions  int // completed work phases
	Work      time.Duration
	Break     time.Duration
}

// NewFocusTimer creates a timer with the given phase lengths in minutes.
func NewFocusTimer(workMinutes, breakMinutes int) *FocusTimer {
	if workMinutes <= 0 {
		workMinutes = 25
	}
	if breakMinutes <= 0 {
		breakMinutes = 5
	}
	t := &FocusTimer{
		Work:  time.Duration(workMinutes) * time.Minute,
		Break: time.Duration(breakMinutes) * time.Minute,
	}
	t.Remaining = t.Work
	return t
}

// Target returns the length of the current phase.
func (t *FocusTimer) Target() time.Duration {
	if t.Phase == FocusBreak {
		return t.Break
	}
	return t.Work
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (t *FocusTimer) Progress() float64 {
	target := t.Target()
	if target <= 0 {
		return 0
	}
	return float64(target-t.Remaining) / float64(target)
}

// Toggle starts or pauses the timer and returns the new running state.
func (t *FocusTimer) Toggle() bool {
	t.Running = !t.Running
	return t.Running
}

// Reset stops the timer and restores the current phase's full length.
func (t *FocusTimer) Reset() {
	t.Running = false
	t.Remaining = t.Target()
}

// Tick advances a running timer by d. It returns true when the phase ran out,
// in which case the timer has already moved to the next phase and stopped.
func (t *FocusTimer) Tick(d time.Duration) bool {
	if !t.Running {
		return false
	}
	t.Remaining -= d
	if t.Remaining > 0 {
		return false
	}
	if t.Phase == FocusWork {
		t.Sessions++
	}
	t.Skip()
	return true
}

// Skip moves to the next phase and stops the timer. Skipped work phases are
// not counted as sessions.
func (t *FocusTimer) Skip() {
	if t.Phase == FocusWork {
		t.Phase = FocusBreak
	} else {
		t.Phase = FocusWork
	}
	t.Running = false
	t.Remaining = t.Target()
}
