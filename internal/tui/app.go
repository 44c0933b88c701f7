// Package tui provides the terminal user interface for HabitFlow.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/config"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/logic"
	"github.com/hy4ri/habitflow/internal/tui/state"
	"github.com/hy4ri/habitflow/internal/tui/ui"
)

// App is the main Bubble Tea model for the application. It owns the state
// and shares it with the update handler and the renderer.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance.
func NewApp(client *api.Client, cfg *config.Config, prefs state.Preferences, snd *sound.Manager, log *zap.Logger) *App {
	s := state.New(client, cfg, prefs, snd, log)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// State exposes the shared application state.
func (a *App) State() *state.State {
	return a.state
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
