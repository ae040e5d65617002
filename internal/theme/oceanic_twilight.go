package theme

// Oceanic Twilight: cool, calming, nature-inspired.
var oceanicTwilight = struct {
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
	Background:       "#E0F7FA",
	Surface:          "#B2EBF2",
	Primary:          "#00796B",
	Secondary:        "#004D40",
	Accent:           "#00ACC1",
	TextPrimary:      "#004D40",
	TextSecondary:    "#00695C",
	Border:           "#4DD0E1",
	GradientFrom:     "#00796B",
	GradientTo:       "#00ACC1",
	HeroGradientFrom: "#00796B",
	HeroGradientTo:   "#004D40",
}

func init() {
	RegisterNamedTheme(NamedTheme{
		Name:        "Oceanic Twilight",
		Description: "Deep blues and teals for a serene, ocean-themed interface.",
		Icon:        "🌊",
		IsDark:      false,
		Vars: map[string]string{
			"--color-bg":                 oceanicTwilight.Background,
			"--color-surface":            oceanicTwilight.Surface,
			"--color-primary":            oceanicTwilight.Primary,
			"--color-secondary":          oceanicTwilight.Secondary,
			"--color-accent":             oceanicTwilight.Accent,
			"--color-text-primary":       oceanicTwilight.TextPrimary,
			"--color-text-secondary":     oceanicTwilight.TextSecondary,
			"--color-border":             oceanicTwilight.Border,
			"--color-gradient-from":      oceanicTwilight.GradientFrom,
			"--color-gradient-to":        oceanicTwilight.GradientTo,
			"--color-hero-gradient-from": oceanicTwilight.HeroGradientFrom,
			"--color-hero-gradient-to":   oceanicTwilight.HeroGradientTo,
		},
		Button: ButtonSpec{
			Background:      "var(--color-primary)",
			Foreground:      "#E0F7FA",
			HoverBackground: "#004D40",
			BorderRadius:    "6px",
		},
	})
}
