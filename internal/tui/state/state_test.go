package state

import (
	"errors"
	"testing"
	"time"

	"github.com/hy4ri/habitflow/internal/config"
)

type recordingPrefs struct {
	saved []config.Preferences
	err   error
}

func (r *recordingPrefs) SavePreferences(p config.Preferences) error {
	r.saved = append(r.saved, p)
	return r.err
}

func TestPreferencesPersistOnChange(t *testing.T) {
	prefs := &recordingPrefs{}
	s := New(nil, config.DefaultConfig(), prefs, nil, nil)

	s.ToggleTheme()
	s.ToggleSidebar()
	s.SetSoundEnabled(false)

	if len(prefs.saved) != 3 {
		t.Fatalf("saved %d times, want 3", len(prefs.saved))
	}
	last := prefs.saved[2]
	if last.Theme != config.ThemeLight || !last.SidebarCollapsed || last.SoundEnabled {
		t.Errorf("unexpected preferences %+v", last)
	}
	if s.Sound.Enabled() {
		t.Error("sound manager should follow the flag")
	}
}

func TestPreferencesErrorIgnored(t *testing.T) {
	prefs := &recordingPrefs{err: errors.New("disk full")}
	s := New(nil, config.DefaultConfig(), prefs, nil, nil)
	s.SetTheme("light")
	if s.Theme != config.ThemeLight {
		t.Errorf("theme = %q", s.Theme)
	}
	s.SetTheme("neon")
	if s.Theme != config.ThemeDark {
		t.Errorf("unknown theme should fall back to dark, got %q", s.Theme)
	}
}

func TestReportDay(t *testing.T) {
	s := New(nil, config.DefaultConfig(), nil, nil, nil)
	s.Now = func() time.Time { return time.Date(2026, 10, 19, 15, 0, 0, 0, time.Local) }
	s.ReportMonth = time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)
	if got := s.ReportDay(); got.Day() != 19 {
		t.Errorf("current month report day = %v", got)
	}
	s.ReportMonth = time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	if got := s.ReportDay(); got.Day() != 28 || got.Month() != time.February {
		t.Errorf("past month report day = %v", got)
	}
}

func TestParsePage(t *testing.T) {
	if p, ok := ParsePage("reports"); !ok || p != PageReports {
		t.Errorf("ParsePage(reports) = %v, %v", p, ok)
	}
	if _, ok := ParsePage("inbox"); ok {
		t.Error("unknown page should not parse")
	}
}

func TestFocusTimer(t *testing.T) {
	f := NewFocusTimer(1, 1)
	if f.Tick(time.Second) {
		t.Error("paused timer should not advance")
	}
	f.Toggle()
	for i := 0; i < 59; i++ {
		if f.Tick(time.Second) {
			t.Fatalf("phase ended early at tick %d", i)
		}
	}
	if !f.Tick(time.Second) {
		t.Fatal("phase should end after a minute")
	}
	if f.Phase != FocusBreak || f.Running || f.Sessions != 1 || f.Remaining != time.Minute {
		t.Errorf("unexpected state after work phase %+v", f)
	}
	f.Skip()
	if f.Phase != FocusWork {
		t.Errorf("phase = %v, want work", f.Phase)
	}
	f.Skip()
	if f.Phase != FocusBreak || f.Sessions != 1 {
		t.Errorf("skipped work phase counted: %+v", f)
	}
}
