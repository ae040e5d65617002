package theme

// Monochrome Minimal: sleek, modern, typographic.
var monochromeMinimal = struct {
	Background       string
	Surface          string
	Primary          string
	Secondary        string
	Accent           string
	TextPrimary      string
	TextSecondary    string
	Border           string
	GradientFrom     string
	GradientTo       string
	HeroGradientFrom string
	HeroGradientTo   string
}{
	Background:       "#FAFAFA",
	Surface:          "#F0F0F0",
	Primary:          "#333333",
	Secondary:        "#666666",
	Accent:           "#999999",
	TextPrimary:      "#111111",
	TextSecondary:    "#444444",
	Border:           "#DDDDDD",
	GradientFrom:     "#333333",
	GradientTo:       "#666666",
	HeroGradientFrom: "#111111",
	HeroGradientTo:   "#333333",
}

func init() {
	RegisterNamedTheme(NamedTheme{
		Name:        "Monochrome Minimal",
		Description: "All-gray palette, letting typography and layout shine.",
		Icon:        "⚫",
		IsDark:      false,
		Vars: map[string]string{
			"--color-bg":                 monochromeMinimal.Background,
			"--color-surface":            monochromeMinimal.Surface,
			"--color-primary":            monochromeMinimal.Primary,
			"--color-secondary":          monochromeMinimal.Secondary,
			"--color-accent":             monochromeMinimal.Accent,
			"--color-text-primary":       monochromeMinimal.TextPrimary,
			"--color-text-secondary":     monochromeMinimal.TextSecondary,
			"--color-border":             monochromeMinimal.Border,
			"--color-gradient-from":      monochromeMinimal.GradientFrom,
			"--color-gradient-to":        monochromeMinimal.GradientTo,
			"--color-hero-gradient-from": monochromeMinimal.HeroGradientFrom,
			"--color-hero-gradient-to":   monochromeMinimal.HeroGradientTo,
		},
		Button: ButtonSpec{
			Background:      "transparent",
			Foreground:      "var(--color-primary)",
			HoverBackground: "var(--color-surface)",
			BorderRadius:    "0px",
		},
	})
}
