package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("HABITFLOW_ADDR", "")
	t.Setenv("HABITFLOW_DB", "")

	cfg, err := LoadFrom(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr || !cfg.Server.Embedded {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if cfg.UI.Theme != ThemeDark || !cfg.UI.SoundEnabled {
		t.Errorf("unexpected ui config %+v", cfg.UI)
	}
	if want := filepath.Join(dir, "habitflow", "habitflow.db"); cfg.Storage.DBPath != want {
		t.Errorf("db path = %s, want %s", cfg.Storage.DBPath, want)
	}
	if cfg.ClientURL() != "http://"+DefaultAddr {
		t.Errorf("client url = %s", cfg.ClientURL())
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  addr: 127.0.0.1:9999
  embedded: false
ui:
  theme: light
  sidebar_collapsed: true
  sound_enabled: false
focus:
  work_minutes: 50
  break_minutes: 0
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HABITFLOW_DB", "/tmp/custom.db")
	t.Setenv("HABITFLOW_ADDR", "")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" || cfg.Server.Embedded {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if cfg.UI.Theme != ThemeLight || !cfg.UI.SidebarCollapsed || cfg.UI.SoundEnabled {
		t.Errorf("unexpected ui config %+v", cfg.UI)
	}
	if cfg.Storage.DBPath != "/tmp/custom.db" {
		t.Errorf("env override ignored: %s", cfg.Storage.DBPath)
	}
	if cfg.Focus.WorkMinutes != 50 || cfg.Focus.BreakMinutes != 5 {
		t.Errorf("unexpected focus config %+v", cfg.Focus)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("ui: [unclosed"), 0600)
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestPreferenceStorePersists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("HABITFLOW_ADDR", "")
	t.Setenv("HABITFLOW_DB", "")
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	store := NewPreferenceStore(path, cfg)
	if err := store.SavePreferences(Preferences{Theme: ThemeLight, SidebarCollapsed: true, SoundEnabled: false}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.UI.Theme != ThemeLight || !loaded.UI.SidebarCollapsed || loaded.UI.SoundEnabled {
		t.Errorf("preferences not persisted: %+v", loaded.UI)
	}
}

func TestPreferenceStoreKeepsOneRunOverridesOutOfFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	path := filepath.Join(dir, "config.yaml")
	content := `server:
  # Address of the local API server
  addr: 127.0.0.1:8700
ui:
  theme: dark
  vim_mode: false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HABITFLOW_DB", "/tmp/scratch.db")
	t.Setenv("HABITFLOW_ADDR", "127.0.0.1:9999")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := NewPreferenceStore(path, cfg).SavePreferences(Preferences{Theme: ThemeLight, SoundEnabled: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if cfg.UI.Theme != ThemeLight {
		t.Errorf("in-memory theme = %s", cfg.UI.Theme)
	}

	t.Setenv("HABITFLOW_DB", "")
	t.Setenv("HABITFLOW_ADDR", "")
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if want := filepath.Join(dir, "habitflow", "habitflow.db"); loaded.Storage.DBPath != want {
		t.Errorf("db path = %s, want %s", loaded.Storage.DBPath, want)
	}
	if loaded.Server.Addr != "127.0.0.1:8700" {
		t.Errorf("addr = %s", loaded.Server.Addr)
	}
	if loaded.UI.Theme != ThemeLight || !loaded.UI.SoundEnabled || loaded.UI.VimMode {
		t.Errorf("unexpected ui config %+v", loaded.UI)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, unwanted := range []string{"db_path", "habitflow.log", "9999"} {
		if strings.Contains(string(raw), unwanted) {
			t.Errorf("file should not contain %q:\n%s", unwanted, raw)
		}
	}
	if !strings.Contains(string(raw), "# Address of the local API server") {
		t.Errorf("comments were dropped:\n%s", raw)
	}
}
