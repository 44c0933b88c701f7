package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/components"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

func (h *Handler) handleMusicAction(action string) tea.Cmd {
	f := h.Focus
	switch action {
	case "toggle", "select":
		if f.Toggle() {
			h.StatusMsg = f.Phase.String() + " started"
			return h.timer.Start()
		}
		h.timer.Stop()
		h.StatusMsg = "Paused"
	case "timer_reset":
		f.Reset()
		h.timer.Stop()
		h.StatusMsg = "Timer reset"
	case "timer_skip":
		f.Skip()
		h.timer.Stop()
		h.StatusMsg = f.Phase.String() + " ready"
	}
	return nil
}

func (h *Handler) handleTimerTick(msg components.TimerTickMsg) tea.Cmd {
	if !h.timer.Accept(msg) {
		return nil
	}

	finished := h.Focus.Phase
	if !h.Focus.Tick(components.TickInterval) {
		return h.timer.Tick()
	}

	// Phase ended; Tick has already switched phase and stopped the clock.
	h.timer.Stop()
	cmds := []tea.Cmd{h.playCue(sound.CueTimerDone)}

	title, body := "Break over", "Time to focus."
	if finished == state.FocusWork {
		h.FocusTotal++
		title, body = "Focus session complete", "Take a break."
		cmds = append(cmds, h.incrementFocusSessions())
	}
	h.StatusMsg = title

	notify := h.notify
	log := h.Log
	cmds = append(cmds, func() tea.Msg {
		if err := notify("HabitFlow", title+". "+body); err != nil {
			log.Debug("failed to send notification", zap.Error(err))
		}
		return nil
	})
	return tea.Batch(cmds...)
}
