package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, p Picker, msg tea.Msg) (Picker, tea.Cmd) {
	t.Helper()
	m, cmd := p.Update(msg)
	next, ok := m.(Picker)
	if !ok {
		t.Fatalf("Update returned %T, want Picker", m)
	}
	return next, cmd
}

func TestPickerStartsOnSelectedTheme(t *testing.T) {
	p := NewPicker(theme.NamedThemes(), "Oceanic Twilight")
	if got := p.Highlighted(); got != "Oceanic Twilight" {
		t.Fatalf("expected cursor on selected theme, got %q", got)
	}

	fresh := NewPicker(theme.NamedThemes(), "")
	if got := fresh.Highlighted(); got != theme.NamedThemes()[0] {
		t.Fatalf("expected cursor on first theme, got %q", got)
	}
}

func TestPickerNavigationClampsAtEdges(t *testing.T) {
	names := []string{"Classic Light", "Midnight Dark", "Solar Flare"}
	p := NewPicker(names, "")

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyUp})
	if p.Highlighted() != "Classic Light" {
		t.Fatalf("up at top should stay, got %q", p.Highlighted())
	}
	p, _ = update(t, p, runes("j"))
	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	if p.Highlighted() != "Solar Flare" {
		t.Fatalf("down at bottom should stay, got %q", p.Highlighted())
	}
	p, _ = update(t, p, runes("k"))
	if p.Highlighted() != "Midnight Dark" {
		t.Fatalf("k should move up, got %q", p.Highlighted())
	}
}

func TestPickerEnterSelectsAndQuits(t *testing.T) {
	p := NewPicker(theme.NamedThemes(), "Solar Flare")
	p, cmd := update(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	want := Choice{Name: "Solar Flare", Action: ActionSelect}
	if got := p.Choice(); got != want {
		t.Fatalf("Choice() = %+v, want %+v", got, want)
	}
	if p.View() != "" {
		t.Fatalf("view should be empty after quitting")
	}
}

func TestPickerAdoptReportsPresetAction(t *testing.T) {
	p := NewPicker(theme.NamedThemes(), "Midnight Dark")
	p, _ = update(t, p, runes("a"))
	want := Choice{Name: "Midnight Dark", Action: ActionAdopt}
	if got := p.Choice(); got != want {
		t.Fatalf("Choice() = %+v, want %+v", got, want)
	}
}

func TestPickerQuitLeavesNoChoice(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		p := NewPicker(theme.NamedThemes(), "")
		p, cmd := update(t, p, msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if got := p.Choice(); got.Action != ActionNone {
			t.Fatalf("%s: expected no action, got %+v", msg, got)
		}
	}
}

func TestPickerViewTogglesPreview(t *testing.T) {
	p := NewPicker(theme.NamedThemes(), "Solar Flare")

	vars := ansi.Strip(p.View())
	if !strings.Contains(vars, "--color-primary") {
		t.Fatalf("default preview should list variables:\n%s", vars)
	}
	if !strings.Contains(vars, "Solar Flare "+activeMarker) {
		t.Fatalf("selected theme should be marked:\n%s", vars)
	}

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyTab})
	preset := ansi.Strip(p.View())
	if !strings.Contains(preset, "View work") {
		t.Fatalf("tab should switch to the rendered preset preview:\n%s", preset)
	}
	if strings.Contains(preset, "--color-primary") {
		t.Fatalf("preset preview should not list variables:\n%s", preset)
	}
}

func TestPickerHelpToggle(t *testing.T) {
	p := NewPicker(theme.NamedThemes(), "")
	short := ansi.Strip(p.View())
	if strings.Contains(short, "toggle preview") {
		t.Fatalf("short help should not list the preview toggle:\n%s", short)
	}
	p, _ = update(t, p, runes("?"))
	full := ansi.Strip(p.View())
	if !strings.Contains(full, "toggle preview") {
		t.Fatalf("full help should list the preview toggle:\n%s", full)
	}
}
