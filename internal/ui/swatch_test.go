package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"folio/internal/theme"
)

func TestChipUsesBackgroundColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	got := Chip("#8b5cf6")
	if !strings.Contains(got, "48;2;139;92;246") {
		t.Fatalf("expected truecolor background for accent, got %q", got)
	}
	if w := ansi.StringWidth(got); w != chipWidth {
		t.Fatalf("chip width = %d, want %d", w, chipWidth)
	}
	if blank := Chip("var(--color-primary)"); blank != strings.Repeat(" ", chipWidth) {
		t.Fatalf("non-color value should render blank, got %q", blank)
	}
}

func TestPadRightIsWidthAware(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	if w := ansi.StringWidth(padRight(styled, 6)); w != 6 {
		t.Fatalf("padded styled width = %d, want 6", w)
	}
	if got := ansi.Strip(padRight("primary-hover", 7)); ansi.StringWidth(got) != 7 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation with ellipsis, got %q", got)
	}
}

func TestRenderPaletteListsEveryRole(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	p, err := theme.GeneratePalette("#8b5cf6", theme.ModeLight)
	if err != nil {
		t.Fatalf("GeneratePalette: %v", err)
	}
	out := ansi.Strip(RenderPalette(p))
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 palette rows, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"primary-hover  rgb(119, 72, 226)", "accent", "rgb(199, 152, 255)", "text-muted"} {
		if !strings.Contains(out, want) {
			t.Fatalf("palette output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderVarsResolvesReferencesForChips(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	named, ok := theme.LookupNamed("Solar Flare")
	if !ok {
		t.Fatal("Solar Flare not registered")
	}
	out := RenderVars(theme.NamedSnapshot(named).Vars)

	var bgLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(ansi.Strip(line), "--button-bg ") {
			bgLine = line
		}
	}
	if bgLine == "" {
		t.Fatalf("expected --button-bg row:\n%s", ansi.Strip(out))
	}
	// var(--color-secondary) resolves to #D84315.
	if !strings.Contains(bgLine, "48;2;216;67;21") {
		t.Fatalf("expected resolved secondary chip, got %q", bgLine)
	}
	if !strings.Contains(ansi.Strip(bgLine), "var(--color-secondary)") {
		t.Fatalf("raw value should still be shown, got %q", ansi.Strip(bgLine))
	}
}

func TestRenderSwatchesMarksActive(t *testing.T) {
	out := ansi.Strip(RenderSwatches(theme.PresetSwatches, []string{"#123456"}, "#8B5CF6"))

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, activeMarker) {
			marked = append(marked, line)
		}
	}
	if len(marked) != 1 || !strings.Contains(marked[0], "#8b5cf6") {
		t.Fatalf("expected exactly the violet preset to be marked, got %q", marked)
	}
	if !strings.Contains(out, "#123456") {
		t.Fatalf("custom swatch missing:\n%s", out)
	}

	empty := ansi.Strip(RenderSwatches(nil, nil, ""))
	if !strings.Contains(empty, "(none)") {
		t.Fatalf("expected placeholder for no custom swatches, got:\n%s", empty)
	}
}

func TestRenderThemeTable(t *testing.T) {
	out := ansi.Strip(RenderThemeTable(theme.NamedThemes(), "Midnight Dark"))
	for _, name := range theme.NamedThemes() {
		if !strings.Contains(out, name) {
			t.Fatalf("table missing %s:\n%s", name, out)
		}
	}
	var selectedRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, activeMarker) {
			selectedRow = line
		}
	}
	if !strings.Contains(selectedRow, "Midnight Dark") || !strings.Contains(selectedRow, "dark") {
		t.Fatalf("expected Midnight Dark row to be marked, got %q", selectedRow)
	}
}
