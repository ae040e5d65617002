package theme

// Solar Flare: warm, energetic, vibrant.
var solarFlare = struct {
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
	Background:       "#FFF8E1",
	Surface:          "#FFE0B2",
	Primary:          "#FF6F00",
	Secondary:        "#D84315",
	Accent:           "#FFC400",
	TextPrimary:      "#3E2723",
	TextSecondary:    "#5D4037",
	Border:           "#FFCC80",
	GradientFrom:     "#FF6F00",
	GradientTo:       "#FFC400",
	HeroGradientFrom: "#FF6F00",
	HeroGradientTo:   "#D84315",
}

func init() {
	RegisterNamedTheme(NamedTheme{
		Name:        "Solar Flare",
		Description: "A punchy, high-energy palette with warm yellows and reds.",
		Icon:        "🔥",
		IsDark:      false,
		Vars: map[string]string{
			"--color-bg":                 solarFlare.Background,
			"--color-surface":            solarFlare.Surface,
			"--color-primary":            solarFlare.Primary,
			"--color-secondary":          solarFlare.Secondary,
			"--color-accent":             solarFlare.Accent,
			"--color-text-primary":       solarFlare.TextPrimary,
			"--color-text-secondary":     solarFlare.TextSecondary,
			"--color-border":             solarFlare.Border,
			"--color-gradient-from":      solarFlare.GradientFrom,
			"--color-gradient-to":        solarFlare.GradientTo,
			"--color-hero-gradient-from": solarFlare.HeroGradientFrom,
			"--color-hero-gradient-to":   solarFlare.HeroGradientTo,
		},
		Button: ButtonSpec{
			Background:      "var(--color-secondary)",
			Foreground:      "#FFF8E1",
			HoverBackground: "#BF360C",
			BorderRadius:    "8px",
		},
	})
}
