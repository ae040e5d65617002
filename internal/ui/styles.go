package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"folio/internal/theme"
)

// Styles are the lipgloss styles derived from a generated palette so the
// terminal preview uses the same colors a page would.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Surface lipgloss.Style
	Page    lipgloss.Style
	Button  lipgloss.Style
	Hover   lipgloss.Style
	Cursor  lipgloss.Style
}

// NewStyles builds the style set for p and the button style.
func NewStyles(p theme.Palette, style theme.ButtonStyle) Styles {
	primary := termColor(p.Primary)
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		Label:   lipgloss.NewStyle().Foreground(termColor(p.TextMuted)),
		Text:    lipgloss.NewStyle().Foreground(termColor(p.Text)),
		Muted:   lipgloss.NewStyle().Foreground(termColor(p.TextMuted)).Italic(true),
		Surface: surfaceStyle(p),
		Page:    lipgloss.NewStyle().Background(termColor(p.Background)),
		Button:  buttonStyle(p.Primary, style),
		Hover:   buttonStyle(p.PrimaryHover, style),
		Cursor:  lipgloss.NewStyle().Bold(true).Foreground(termColor(p.Accent)),
	}
}

func surfaceStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(termColor(p.Surface)).
		Foreground(termColor(p.Text)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(termColor(p.Border)).
		BorderBackground(termColor(p.Background)).
		Padding(1, 2)
}

// buttonStyle approximates each button geometry with terminal borders:
// sharp corners, rounded corners, no frame, or extra horizontal padding.
func buttonStyle(bg string, style theme.ButtonStyle) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(termColor(bg)).
		Foreground(lipgloss.Color(ContrastText(bg))).
		Bold(true).
		Padding(0, 2)
	switch style {
	case theme.ButtonSharp:
		return s.Border(lipgloss.NormalBorder()).BorderForeground(termColor(bg))
	case theme.ButtonMinimal:
		return s.Background(lipgloss.NoColor{}).Foreground(termColor(bg)).Underline(true).Padding(0, 1)
	case theme.ButtonPill:
		return s.Border(lipgloss.RoundedBorder()).BorderForeground(termColor(bg)).Padding(0, 4)
	default:
		return s.Border(lipgloss.RoundedBorder()).BorderForeground(termColor(bg))
	}
}

// buildMarkdownRenderer returns a glamour renderer for the output.format
// setting, falling back to plain word wrapping.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
