package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/config"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestVimKeymapSequences(t *testing.T) {
	km := KeymapFor(true)
	var ks KeyState

	if action, ok := ks.HandleKey(runeKey('j'), km); action != "down" || !ok {
		t.Errorf("j = %q, %v; want down", action, ok)
	}
	if action, ok := ks.HandleKey(runeKey('g'), km); action != "" || !ok {
		t.Fatalf("first g = %q, %v; want pending", action, ok)
	}
	if action, _ := ks.HandleKey(runeKey('g'), km); action != "top" {
		t.Errorf("gg = %q, want top", action)
	}
	ks.HandleKey(runeKey('d'), km)
	if action, _ := ks.HandleKey(runeKey('d'), km); action != "delete" {
		t.Errorf("dd = %q, want delete", action)
	}
	if action, _ := ks.HandleKey(runeKey('G'), km); action != "bottom" {
		t.Errorf("G = %q, want bottom", action)
	}
}

func TestPlainKeymapDropsVimAliases(t *testing.T) {
	km := KeymapFor(false)
	var ks KeyState

	for _, r := range []rune{'h', 'j', 'k', 'l', 'g', 'G', 'd'} {
		if action, ok := ks.HandleKey(runeKey(r), km); action != "" || ok {
			t.Errorf("%q = %q, %v; want unbound", r, action, ok)
		}
	}
	if ks.WaitingG || ks.WaitingD {
		t.Error("plain keymap should not start key sequences")
	}

	cases := map[tea.KeyType]string{
		tea.KeyUp:     "up",
		tea.KeyDown:   "down",
		tea.KeyLeft:   "left",
		tea.KeyRight:  "right",
		tea.KeyHome:   "top",
		tea.KeyEnd:    "bottom",
		tea.KeyDelete: "delete",
	}
	for typ, want := range cases {
		if action, _ := ks.HandleKey(tea.KeyMsg{Type: typ}, km); action != want {
			t.Errorf("%v = %q, want %q", typ, action, want)
		}
	}

	// Non-motion bindings are shared.
	if action, _ := ks.HandleKey(runeKey('x'), km); action != "toggle" {
		t.Errorf("x = %q, want toggle", action)
	}
}

func TestStateKeymapFollowsVimMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.VimMode = false
	s := New(nil, cfg, nil, nil, nil)
	if s.Keymap.Vim || s.Keymap.Down.Key != "down" {
		t.Errorf("keymap = %+v, want plain bindings", s.Keymap.Down)
	}
	if got := s.Keymap.DeleteLabel(); got != "delete" {
		t.Errorf("DeleteLabel = %q, want delete", got)
	}
	for _, item := range s.Keymap.HelpItems() {
		if item[0] == "gg/G" || item[0] == "dd" {
			t.Errorf("help lists vim binding %q", item[0])
		}
	}
}
