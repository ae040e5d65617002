package ui

import (
	"fmt"
	"sort"
	"strings"

	"folio/internal/theme"
)

// DescribeMarkdown documents a named theme as markdown: its description, the
// granular configuration it maps to, and every variable it writes.
func DescribeMarkdown(t theme.NamedTheme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", t.Icon, t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Description)
	}

	cfg := t.Config()
	b.WriteString("## As a configuration preset\n\n")
	fmt.Fprintf(&b, "- mode: `%s`\n", cfg.Mode)
	fmt.Fprintf(&b, "- accent: `%s`\n", cfg.AccentColor)
	fmt.Fprintf(&b, "- button style: `%s`\n", cfg.ButtonStyle)
	fmt.Fprintf(&b, "- class: `%s`\n\n", theme.NamedThemeClass(t.Name))

	b.WriteString("## Variables\n\n")
	b.WriteString("| variable | value |\n|---|---|\n")
	names := make([]string, 0, len(t.Vars))
	for name := range t.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "| `%s` | `%s` |\n", name, t.Vars[name])
	}

	b.WriteString("\n## Button\n\n")
	b.WriteString("| variable | value |\n|---|---|\n")
	snap := theme.NamedSnapshot(t)
	for _, v := range snap.Vars {
		if strings.HasPrefix(v.Name, "--button-") {
			fmt.Fprintf(&b, "| `%s` | `%s` |\n", v.Name, v.Value)
		}
	}
	return b.String()
}

// RenderDescription renders DescribeMarkdown for the terminal using the
// output.format setting ("rich", "dark", "light", "plain").
func RenderDescription(t theme.NamedTheme, format string, width int) string {
	if width <= 0 {
		width = 80
	}
	return buildMarkdownRenderer(format, width)(DescribeMarkdown(t))
}
