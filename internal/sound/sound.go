// Package sound maps named UI events to short synthesized tone sequences.
package sound

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Cue names a UI event that has a sound.
type Cue string

const (
	CueNavigate   Cue = "navigate"
	CueOpen       Cue = "open"
	CueClose      Cue = "close"
	CueComplete   Cue = "complete"
	CueUncomplete Cue = "uncomplete"
	CueDelete     Cue = "delete"
	CueDrag       Cue = "drag"
	CueDrop       Cue = "drop"
	CueCreate     Cue = "create"
	CueError      Cue = "error"
	CueTimerDone  Cue = "timer-done"
)

// Tone is a single fixed-frequency beep followed by an optional silence.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Gap      time.Duration
}

// Cues is the event → tone sequence table.
var Cues = map[Cue][]Tone{
	CueNavigate:   {{Freq: 660, Duration: 40 * time.Millisecond}},
	CueOpen:       {{Freq: 520, Duration: 50 * time.Millisecond}, {Freq: 780, Duration: 60 * time.Millisecond}},
	CueClose:      {{Freq: 780, Duration: 50 * time.Millisecond}, {Freq: 520, Duration: 60 * time.Millisecond}},
	CueComplete:   {{Freq: 523, Duration: 70 * time.Millisecond}, {Freq: 659, Duration: 70 * time.Millisecond}, {Freq: 784, Duration: 110 * time.Millisecond}},
	CueUncomplete: {{Freq: 440, Duration: 80 * time.Millisecond}, {Freq: 349, Duration: 90 * time.Millisecond}},
	CueDelete:     {{Freq: 330, Duration: 90 * time.Millisecond}, {Freq: 220, Duration: 140 * time.Millisecond}},
	CueDrag:       {{Freq: 880, Duration: 30 * time.Millisecond}},
	CueDrop:       {{Freq: 587, Duration: 40 * time.Millisecond, Gap: 20 * time.Millisecond}, {Freq: 587, Duration: 40 * time.Millisecond}},
	CueCreate:     {{Freq: 659, Duration: 60 * time.Millisecond}, {Freq: 988, Duration: 90 * time.Millisecond}},
	CueError:      {{Freq: 196, Duration: 180 * time.Millisecond}},
	CueTimerDone:  {{Freq: 784, Duration: 150 * time.Millisecond, Gap: 80 * time.Millisecond}, {Freq: 784, Duration: 150 * time.Millisecond, Gap: 80 * time.Millisecond}, {Freq: 1046, Duration: 300 * time.Millisecond}},
}

// BeepFunc plays one tone. It matches beeep.Beep.
type BeepFunc func(freq float64, durationMS int) error

// Manager plays cues when enabled. It is safe for concurrent use since
// cues are played from command goroutines.
type Manager struct {
	mu      sync.RWMutex
	enabled bool
	beep    BeepFunc
	sleep   func(time.Duration)
	log     *zap.Logger
}

// NewManager returns a Manager backed by the system speaker.
func NewManager(enabled bool, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		enabled: enabled,
		beep:    beeep.Beep,
		sleep:   time.Sleep,
		log:     log,
	}
}

// SetBeepFunc replaces the tone primitive (useful for testing).
func (m *Manager) SetBeepFunc(fn BeepFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beep = fn
	m.sleep = func(time.Duration) {}
}

// Enabled reports whether playback is on.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// SetEnabled turns playback on or off.
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// Play synthesizes the tones for cue. Unknown cues and playback
// failures are ignored; a failed tone aborts the rest of the sequence.
func (m *Manager) Play(cue Cue) {
	m.mu.RLock()
	enabled, beep, sleep := m.enabled, m.beep, m.sleep
	m.mu.RUnlock()

	if !enabled {
		return
	}
	tones, ok := Cues[cue]
	if !ok {
		return
	}
	for _, t := range tones {
		if err := beep(t.Freq, int(t.Duration/time.Millisecond)); err != nil {
			m.log.Debug("sound playback failed", zap.String("cue", string(cue)), zap.Error(err))
			return
		}
		if t.Gap > 0 {
			sleep(t.Gap)
		}
	}
}
