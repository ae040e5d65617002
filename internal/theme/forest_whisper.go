package theme

// Forest Whisper: earthy, muted, organic.
var forestWhisper = struct {
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
	Background:       "#F1F8E9",
	Surface:          "#DCEDC8",
	Primary:          "#558B2F",
	Secondary:        "#33691E",
	Accent:           "#AFB42B",
	TextPrimary:      "#2E7D32",
	TextSecondary:    "#4CAF50",
	Border:           "#C5E1A5",
	GradientFrom:     "#558B2F",
	GradientTo:       "#AFB42B",
	HeroGradientFrom: "#558B2F",
	HeroGradientTo:   "#33691E",
}

func init() {
	RegisterNamedTheme(NamedTheme{
		Name:        "Forest Whisper",
		Description: "Muted greens and browns for a grounded, eco-friendly feel.",
		Icon:        "🌲",
		IsDark:      false,
		Vars: map[string]string{
			"--color-bg":                 forestWhisper.Background,
			"--color-surface":            forestWhisper.Surface,
			"--color-primary":            forestWhisper.Primary,
			"--color-secondary":          forestWhisper.Secondary,
			"--color-accent":             forestWhisper.Accent,
			"--color-text-primary":       forestWhisper.TextPrimary,
			"--color-text-secondary":     forestWhisper.TextSecondary,
			"--color-border":             forestWhisper.Border,
			"--color-gradient-from":      forestWhisper.GradientFrom,
			"--color-gradient-to":        forestWhisper.GradientTo,
			"--color-hero-gradient-from": forestWhisper.HeroGradientFrom,
			"--color-hero-gradient-to":   forestWhisper.HeroGradientTo,
		},
		Button: ButtonSpec{
			Background:      "var(--color-accent)",
			Foreground:      "#1B5E20",
			HoverBackground: "#9E9D24",
			BorderRadius:    "12px",
		},
	})
}
