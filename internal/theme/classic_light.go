package theme

// Classic Light: fresh, clean, high-contrast.
var classicLight = struct {
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
	Background:       "#FFFFFF",
	Surface:          "#F4F4F4",
	Primary:          "#0052CC",
	Secondary:        "#172B4D",
	Accent:           "#FF5630",
	TextPrimary:      "#172B4D",
	TextSecondary:    "#42526E",
	Border:           "#DFE1E6",
	GradientFrom:     "#0052CC",
	GradientTo:       "#FF5630",
	HeroGradientFrom: "#0052CC",
	HeroGradientTo:   "#FF5630",
}

func init() {
	RegisterNamedTheme(NamedTheme{
		Name:        "Classic Light",
		Description: "A bright, minimal palette for a clean look.",
		Icon:        "☀️",
		IsDark:      false,
		Vars: map[string]string{
			"--color-bg":                 classicLight.Background,
			"--color-surface":            classicLight.Surface,
			"--color-primary":            classicLight.Primary,
			"--color-secondary":          classicLight.Secondary,
			"--color-accent":             classicLight.Accent,
			"--color-text-primary":       classicLight.TextPrimary,
			"--color-text-secondary":     classicLight.TextSecondary,
			"--color-border":             classicLight.Border,
			"--color-gradient-from":      classicLight.GradientFrom,
			"--color-gradient-to":        classicLight.GradientTo,
			"--color-hero-gradient-from": classicLight.HeroGradientFrom,
			"--color-hero-gradient-to":   classicLight.HeroGradientTo,
		},
		Button: ButtonSpec{
			Background:      "var(--color-primary)",
			Foreground:      "#FFFFFF",
			HoverBackground: "#0039A6",
			BorderRadius:    "4px",
		},
	})
}
