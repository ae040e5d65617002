package theme

// Midnight Dark: deep, moody, immersive.
var midnightDark = struct {
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
	Background:       "#0D1117",
	Surface:          "#161B22",
	Primary:          "#58A6FF",
	Secondary:        "#8B949E",
	Accent:           "#F85149",
	TextPrimary:      "#C9D1D9",
	TextSecondary:    "#8B949E",
	Border:           "#30363D",
	GradientFrom:     "#58A6FF",
	GradientTo:       "#F85149",
	HeroGradientFrom: "#58A6FF",
	HeroGradientTo:   "#A855F7",
}

func init() {
	RegisterNamedTheme(NamedTheme{
		Name:        "Midnight Dark",
		Description: "A dark theme with cool blue accents for night-owl coders.",
		Icon:        "🌙",
		IsDark:      true,
		Vars: map[string]string{
			"--color-bg":                 midnightDark.Background,
			"--color-surface":            midnightDark.Surface,
			"--color-primary":            midnightDark.Primary,
			"--color-secondary":          midnightDark.Secondary,
			"--color-accent":             midnightDark.Accent,
			"--color-text-primary":       midnightDark.TextPrimary,
			"--color-text-secondary":     midnightDark.TextSecondary,
			"--color-border":             midnightDark.Border,
			"--color-gradient-from":      midnightDark.GradientFrom,
			"--color-gradient-to":        midnightDark.GradientTo,
			"--color-hero-gradient-from": midnightDark.HeroGradientFrom,
			"--color-hero-gradient-to":   midnightDark.HeroGradientTo,
		},
		Button: ButtonSpec{
			Background:      "var(--color-primary)",
			Foreground:      "#0D1117",
			HoverBackground: "#1B6CA8",
			BorderRadius:    "4px",
		},
	})
}
