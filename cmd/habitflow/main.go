// Package main is the entry point for the HabitFlow application.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/config"
	"github.com/hy4ri/habitflow/internal/logging"
	"github.com/hy4ri/habitflow/internal/server"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/store"
	"github.com/hy4ri/habitflow/internal/tui"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

const version = "0.1.0"

const helpText = `habitflow - Terminal habit and task tracker with Vim keybindings

USAGE:
    habitflow [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --serve         Run only the API server (no terminal UI)
    --habits        Start on the habits page
    --tasks         Start on the tasks page
    --focus         Start on the focus timer page
    --reports       Start on the reports page

CONFIGURATION:
    Config file: ~/.config/habitflow/config.yaml
    Database:    ~/.local/share/habitflow/habitflow.db

    Environment:
        HABITFLOW_ADDR   Override the server address
        HABITFLOW_DB     Override the database path

KEYBINDINGS:
    Pages:
        1-5         Dashboard, Habits, Tasks, Focus, Reports
        Tab         Next page
        b           Collapse/expand the sidebar

    Navigation:
        j/k         Move down/up
        h/l         Move left/right
        [ ]         Previous/next week, month or day
        gg/G        Go to top/bottom
        t           Jump to today

    Actions:
        Space/x     Toggle completion
        a           Add habit or task
        dd          Delete habit or task
        M           Manage and reorder habits
        p           Pick the task date
        y           Copy the daily summary (reports)

    Focus:
        Space       Start/pause
        r           Reset
        m           Skip phase

    Other:
        T           Toggle theme
        S           Toggle sound
        R           Refresh
        ?           Show help
        q           Quit
`

const configTemplate = `# HabitFlow Configuration
# Location: ~/.config/habitflow/config.yaml

server:
  # Address of the local API server
  addr: "127.0.0.1:8765"

  # Start the server inside the TUI process (default: true)
  # Set to false when running 'habitflow --serve' separately.
  embedded: true

storage:
  # SQLite database file (default: ~/.local/share/habitflow/habitflow.db)
  # db_path: ""

ui:
  # "dark" or "light"
  theme: dark
  sidebar_collapsed: false
  sound_enabled: true

  # Vim-style keybindings: h/j/k/l, gg/G and dd (default: true)
  # When false, use the arrow keys, Home/End and Delete instead.
  vim_mode: true

  # dashboard, habits, tasks, focus or reports
  # start_page: dashboard

focus:
  work_minutes: 25
  break_minutes: 5

log:
  # debug, info, warn or error
  level: info
  # file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		serveOnly   bool
		viewHabits  bool
		viewTasks   bool
		viewFocus   bool
		viewReports bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&serveOnly, "serve", false, "Run only the API server")
	flag.BoolVar(&viewHabits, "habits", false, "Start on the habits page")
	flag.BoolVar(&viewTasks, "tasks", false, "Start on the tasks page")
	flag.BoolVar(&viewFocus, "focus", false, "Start on the focus page")
	flag.BoolVar(&viewReports, "reports", false, "Start on the reports page")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("habitflow version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	if serveOnly {
		return runServer()
	}

	// determine initial page
	startPage := ""
	if viewHabits {
		startPage = "habits"
	} else if viewTasks {
		startPage = "tasks"
	} else if viewFocus {
		startPage = "focus"
	} else if viewReports {
		startPage = "reports"
	}

	return runApp(startPage)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Run 'habitflow' to start.")
	return nil
}

// runServer runs the API server in the foreground until interrupted.
func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.NewServer(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(cfg.Server.Addr, st, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runApp starts the main TUI application.
func runApp(startPage string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	client := api.NewClient(cfg.ClientURL())

	// A server that already answers (e.g. 'habitflow --serve') is reused.
	if cfg.Server.Embedded && client.Health() != nil {
		stopServer, err := startEmbedded(cfg, client, log)
		if err != nil {
			return err
		}
		defer stopServer()
	}

	prefs := config.NewPreferenceStore(path, cfg)
	snd := sound.NewManager(cfg.UI.SoundEnabled, log)

	app := tui.NewApp(client, cfg, prefs, snd, log)
	// Flags pick the page for this run only; the config file keeps its own.
	if page, ok := state.ParsePage(startPage); ok && startPage != "" {
		app.State().CurrentPage = page
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// startEmbedded serves the API in-process and waits until it answers.
// The returned func shuts the server down and closes the database.
func startEmbedded(cfg *config.Config, client *api.Client, log *zap.Logger) (func(), error) {
	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}

	srv := server.New(cfg.Server.Addr, st, log)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("server shutdown failed", zap.Error(err))
		}
		st.Close()
	}

	deadline := time.Now().Add(3 * time.Second)
	for {
		select {
		case err := <-errCh:
			st.Close()
			if err == nil {
				err = fmt.Errorf("server stopped unexpectedly")
			}
			return nil, fmt.Errorf("failed to start server on %s: %w", cfg.Server.Addr, err)
		default:
		}

		if err := client.Health(); err == nil {
			return stop, nil
		}
		if time.Now().After(deadline) {
			stop()
			return nil, fmt.Errorf("server on %s did not become ready", cfg.Server.Addr)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
