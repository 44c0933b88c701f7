// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultAddr is the loopback address the embedded server binds to.
const DefaultAddr = "127.0.0.1:8765"

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Focus   FocusConfig   `yaml:"focus"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds settings for the local API server.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// BaseURL overrides the URL the client uses; derived from Addr when empty.
	BaseURL string `yaml:"base_url,omitempty"`

	// Embedded starts the server in-process alongside the TUI.
	Embedded bool `yaml:"embedded"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `yaml:"db_path,omitempty"` // defaults to DataDir()/habitflow.db
}

// UIConfig holds UI-related settings. Theme, SidebarCollapsed and
// SoundEnabled are rewritten every time they change in the app.
type UIConfig struct {
	Theme            string `yaml:"theme"` // "dark" or "light"
	SidebarCollapsed bool   `yaml:"sidebar_collapsed"`
	SoundEnabled     bool   `yaml:"sound_enabled"`
	VimMode          bool   `yaml:"vim_mode"`
	StartPage        string `yaml:"start_page,omitempty"`
}

// FocusConfig holds the focus timer lengths in minutes.
type FocusConfig struct {
	WorkMinutes  int `yaml:"work_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"` // defaults to DataDir()/habitflow.log
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:     DefaultAddr,
			Embedded: true,
		},
		UI: UIConfig{
			Theme:        ThemeDark,
			SoundEnabled: true,
			VimMode:      true,
		},
		Focus: FocusConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ClientURL returns the base URL the API client should use.
func (c *Config) ClientURL() string {
	if c.Server.BaseURL != "" {
		return c.Server.BaseURL
	}
	return "http://" + c.Server.Addr
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "habitflow")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DataDir returns the path to the data directory holding the database and logs.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/habitflow/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, "habitflow")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path, applies environment overrides
// and fills in derived paths.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.fillPaths(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("HABITFLOW_ADDR")); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITFLOW_DB")); v != "" {
		c.Storage.DBPath = v
	}
}

func (c *Config) fillPaths() error {
	if c.Storage.DBPath != "" && c.Log.File != "" {
		return nil
	}
	dir, err := DataDir()
	if err != nil {
		return err
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = filepath.Join(dir, "habitflow.db")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dir, "habitflow.log")
	}
	return nil
}

func (c *Config) normalize() {
	if c.UI.Theme != ThemeLight {
		c.UI.Theme = ThemeDark
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Focus.WorkMinutes <= 0 {
		c.Focus.WorkMinutes = 25
	}
	if c.Focus.BreakMinutes <= 0 {
		c.Focus.BreakMinutes = 5
	}
}

// Preferences are the UI flags that survive restarts.
type Preferences struct {
	Theme            string
	SidebarCollapsed bool
	SoundEnabled     bool
}

// PreferenceStore persists Preferences into a config file.
type PreferenceStore struct {
	mu   sync.Mutex
	path string
	cfg  *Config
}

// NewPreferenceStore returns a store that updates the ui keys of the file at
// path on every change and mirrors them into cfg.
func NewPreferenceStore(path string, cfg *Config) *PreferenceStore {
	return &PreferenceStore{path: path, cfg: cfg}
}

// SavePreferences rewrites ui.theme, ui.sidebar_collapsed and
// ui.sound_enabled in the file on disk. Every other key and comment in the
// file is left as written; env overrides and derived paths never reach it.
func (s *PreferenceStore) SavePreferences(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.UI.Theme = p.Theme
	s.cfg.UI.SidebarCollapsed = p.SidebarCollapsed
	s.cfg.UI.SoundEnabled = p.SoundEnabled

	var doc yaml.Node
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("failed to update config file: top level is not a mapping")
	}

	ui := mappingValue(root, "ui")
	if ui.Kind != yaml.MappingNode {
		*ui = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", HeadComment: ui.HeadComment}
	}
	setScalar(mappingValue(ui, "theme"), "!!str", p.Theme)
	setScalar(mappingValue(ui, "sidebar_collapsed"), "!!bool", strconv.FormatBool(p.SidebarCollapsed))
	setScalar(mappingValue(ui, "sound_enabled"), "!!bool", strconv.FormatBool(p.SoundEnabled))

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// mappingValue returns the value node for key in m, appending an empty one
// when the key is missing.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, v)
	return v
}

// setScalar replaces n's value in place so its comments stay attached.
func setScalar(n *yaml.Node, tag, value string) {
	n.Kind = yaml.ScalarNode
	n.Tag = tag
	n.Value = value
	n.Style = 0
	n.Content = nil
}
