package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"folio/internal/theme"
)

func TestDescribeMarkdownCoversThemeAndPreset(t *testing.T) {
	named, ok := theme.LookupNamed("Midnight Dark")
	if !ok {
		t.Fatal("Midnight Dark not registered")
	}
	md := DescribeMarkdown(named)

	for _, want := range []string{
		"# " + named.Icon + " Midnight Dark",
		"- mode: `dark`",
		"- accent: `#58a6ff`",
		"- class: `theme-midnight-dark`",
		"| `--color-primary` | `#58A6FF` |",
		"| `--button-hover-bg` |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderDescriptionPlainFallsBackToWrapping(t *testing.T) {
	named, _ := theme.LookupNamed("Forest Whisper")
	out := RenderDescription(named, "plain", 60)
	if out != buildMarkdownRenderer("plain", 60)(DescribeMarkdown(named)) {
		t.Fatalf("plain format should bypass glamour")
	}
	if !strings.Contains(out, "Forest Whisper") {
		t.Fatalf("expected theme name in output:\n%s", out)
	}
}

func TestRenderDescriptionRich(t *testing.T) {
	named, _ := theme.LookupNamed("Solar Flare")
	out := ansi.Strip(RenderDescription(named, "rich", 80))
	if !strings.Contains(out, "Solar Flare") || !strings.Contains(out, "--color-primary") {
		t.Fatalf("expected rendered markdown to keep content:\n%s", out)
	}
}
