package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"folio/internal/theme"
)

func TestCanvasNormalizesNewlines(t *testing.T) {
	canvas := NewCanvas(8, 4)
	canvas.DrawStringAt(0, 0, "A\nB")

	lines := strings.Split(canvas.Render(), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(lines))
	}
	if got := strings.TrimSpace(ansi.Strip(lines[0])); got != "A" {
		t.Fatalf("line 0 mismatch, expected A got %q", got)
	}
	if got := strings.TrimSpace(ansi.Strip(lines[1])); got != "B" {
		t.Fatalf("line 1 mismatch, expected B got %q", got)
	}
}

func TestCanvasCenterPositionsContent(t *testing.T) {
	const width, height = 20, 10
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, lipgloss.NewStyle().Width(width).Height(height).Render(""))

	canvas.Center("AA\nBB")
	lines := strings.Split(canvas.Render(), "\n")

	expectedRow := 4 // (10 - 2) / 2
	if len(lines) <= expectedRow+1 {
		t.Fatalf("not enough lines rendered, got %d", len(lines))
	}
	if idx := strings.Index(ansi.Strip(lines[expectedRow]), "AA"); idx != 9 {
		t.Fatalf("expected 'AA' centered at column 9, got column %d", idx)
	}
	if idx := strings.Index(ansi.Strip(lines[expectedRow+1]), "BB"); idx != 9 {
		t.Fatalf("expected 'BB' centered at column 9, got column %d", idx)
	}
}

func TestRenderPreviewDrawsCardAndButton(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	cfg := theme.DefaultConfig()
	cfg.Mode = theme.ModeDark
	cfg.ButtonStyle = theme.ButtonPill

	out, err := RenderPreview(cfg, 44, 11)
	if err != nil {
		t.Fatalf("RenderPreview returned error: %v", err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Portfolio", "dark mode, pill buttons", "View work"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("preview missing %q:\n%s", want, plain)
		}
	}
	// Dark page background #0f0f0f.
	if !strings.Contains(out, "48;2;15;15;15") {
		t.Fatalf("expected dark page background in preview")
	}
}

func TestRenderPreviewRejectsInvalidAccent(t *testing.T) {
	cfg := theme.DefaultConfig()
	cfg.AccentColor = "purple"
	if _, err := RenderPreview(cfg, 20, 5); err == nil {
		t.Fatal("expected error for invalid accent")
	}
}
