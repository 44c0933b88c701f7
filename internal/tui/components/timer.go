package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the time between timer ticks.
const TickInterval = time.Second

// TimerTickMsg is sent every second while the focus timer runs.
type TimerTickMsg struct {
	ID   int
	Time time.Time
}

// TimerModel schedules ticks for a countdown. Only ticks carrying the
// current generation are honored, so pausing and resuming never doubles
// the tick rate.
type TimerModel struct {
	id      int
	gen     int
	running bool
}

// NewTimerModel creates a new timer component.
func NewTimerModel(id int) *TimerModel {
	return &TimerModel{id: id}
}

// Start starts the timer.
func (m *TimerModel) Start() tea.Cmd {
	m.running = true
	m.gen++
	return m.Tick()
}

// Stop stops the timer.
func (m *TimerModel) Stop() {
	m.running = false
	m.gen++
}

// Running reports whether ticks are being scheduled.
func (m *TimerModel) Running() bool {
	return m.running
}

// Accept reports whether msg belongs to the current run.
func (m *TimerModel) Accept(msg TimerTickMsg) bool {
	return m.running && msg.ID == m.id*1000+m.gen
}

// Tick returns a command that sends a TimerTickMsg after TickInterval.
func (m *TimerModel) Tick() tea.Cmd {
	id := m.id*1000 + m.gen
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TimerTickMsg{ID: id, Time: t}
	})
}

// FormatDuration formats a duration as MM:SS or HH:MM:SS if needed.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// clockRows is the height of the large clock font.
const clockRows = 3

// clockGlyphs is a compact box-drawing font for the focus clock.
var clockGlyphs = map[rune][clockRows]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {"  ┓", "  ┃", "  ┻"},
	'2': {"┏━┓", "┏━┛", "┗━━"},
	'3': {"┏━┓", " ━┫", "┗━┛"},
	'4': {"╻ ╻", "┗━┫", "  ╹"},
	'5': {"┏━━", "┗━┓", "┗━┛"},
	'6': {"┏━━", "┣━┓", "┗━┛"},
	'7': {"━━┓", "  ┃", "  ╹"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "┗━┛"},
	':': {" ", "•", "•"},
}

// RenderLargeTime draws an MM:SS or HH:MM:SS string in the clock font.
// Runes without a glyph are skipped.
func RenderLargeTime(clock string) string {
	var rows [clockRows][]string
	for _, r := range clock {
		g, ok := clockGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}

	var out strings.Builder
	for _, row := range rows {
		out.WriteString(strings.Join(row, " "))
		out.WriteByte('\n')
	}
	return out.String()
}
