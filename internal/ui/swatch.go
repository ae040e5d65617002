package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"folio/internal/theme"
)

const (
	chipWidth        = 4
	descriptionWidth = 48
	activeMarker     = "●"
)

// Chip renders a small filled block in color. Values that are not colors
// render as blank space of the same width.
func Chip(color string) string {
	blank := strings.Repeat(" ", chipWidth)
	if _, ok := ToHex(color); !ok {
		return blank
	}
	return lipgloss.NewStyle().Background(termColor(color)).Render(blank)
}

// Swatch renders label on a color background with legible text.
func Swatch(color, label string) string {
	if _, ok := ToHex(color); !ok {
		return label
	}
	return lipgloss.NewStyle().
		Background(termColor(color)).
		Foreground(lipgloss.Color(ContrastText(color))).
		Padding(0, 1).
		Render(label)
}

// padRight pads s with spaces to width display cells, truncating when it is
// wider.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

// RenderPalette lists every palette entry as a chip, its role and its value.
func RenderPalette(p theme.Palette) string {
	rows := []struct{ name, value string }{
		{"primary", p.Primary},
		{"primary-hover", p.PrimaryHover},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"surface", p.Surface},
		{"background", p.Background},
		{"text", p.Text},
		{"text-muted", p.TextMuted},
		{"border", p.Border},
	}
	width := 0
	for _, r := range rows {
		width = max(width, ansi.StringWidth(r.name))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s  %s", Chip(r.value), padRight(r.name, width), r.value))
	}
	return strings.Join(lines, "\n")
}

// RenderVars lists snapshot variables, with a chip for color values.
func RenderVars(vars []theme.Var) string {
	width := 0
	for _, v := range vars {
		width = max(width, ansi.StringWidth(v.Name))
	}
	lookup := make(map[string]string, len(vars))
	for _, v := range vars {
		lookup[v.Name] = v.Value
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		resolved := resolveVar(v.Value, lookup)
		lines = append(lines, fmt.Sprintf("%s %s  %s", Chip(resolved), padRight(v.Name, width), v.Value))
	}
	return strings.Join(lines, "\n")
}

// RenderSwatches renders the preset and custom accent swatches, marking the
// one matching active.
func RenderSwatches(presets []theme.Swatch, custom []string, active string) string {
	var b strings.Builder
	b.WriteString("Presets\n")
	for _, s := range presets {
		b.WriteString(swatchLine(s.Value, s.Name, active))
		b.WriteByte('\n')
	}
	b.WriteString("\nCustom\n")
	if len(custom) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, c := range custom {
		b.WriteString(swatchLine(c, "", active))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func swatchLine(color, name, active string) string {
	marker := " "
	if strings.EqualFold(color, active) {
		marker = activeMarker
	}
	line := fmt.Sprintf("%s %s %s", marker, Chip(color), padRight(color, 8))
	if name != "" {
		line += "  " + name
	}
	return line
}

// RenderThemeTable lists the named themes with the selected one marked.
func RenderThemeTable(names []string, selected string) string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		t, ok := theme.LookupNamed(name)
		if !ok {
			continue
		}
		marker := ""
		if name == selected {
			marker = activeMarker
		}
		mode := "light"
		if t.IsDark {
			mode = "dark"
		}
		rows = append(rows, []string{
			marker,
			t.Icon + " " + t.Name,
			mode,
			Chip(t.Vars["--color-primary"]) + Chip(t.Vars["--color-accent"]) + Chip(t.Vars["--color-bg"]),
			wordwrap.String(t.Description, descriptionWidth),
		})
	}
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "Theme", "Mode", "Colors", "Description").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
