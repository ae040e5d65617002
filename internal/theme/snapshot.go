package theme

import (
	"fmt"
	"strconv"
)

// Var is a single CSS custom property assignment.
type Var struct {
	Name  string
	Value string
}

// StyleSnapshot is everything the applier writes to the document root for a
// configuration: custom properties in write order, plus the classes that
// must be present.
type StyleSnapshot struct {
	Vars    []Var
	Classes []string
}

// Lookup returns the value of the named variable in the snapshot.
func (s StyleSnapshot) Lookup(name string) (string, bool) {
	for _, v := range s.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Class names written by the applier.
const (
	ClassDarkMode     = "dark-mode"
	ClassLightMode    = "light-mode"
	buttonClassPrefix = "btn-"
)

type buttonGeometry struct {
	radius  string
	padding string
}

func buttonGeometryFor(cfg ThemeConfig) buttonGeometry {
	switch cfg.ButtonStyle {
	case ButtonSharp:
		return buttonGeometry{radius: "0px", padding: "12px 24px"}
	case ButtonMinimal:
		return buttonGeometry{radius: "4px", padding: "8px 16px"}
	case ButtonPill:
		return buttonGeometry{radius: "50px", padding: "12px 24px"}
	default:
		return buttonGeometry{radius: px(cfg.BorderRadius), padding: "12px 24px"}
	}
}

// ButtonClass returns the root marker class for a button style.
func ButtonClass(style ButtonStyle) string {
	return buttonClassPrefix + string(style)
}

// Snapshot computes the root style state for cfg without touching any document.
func Snapshot(cfg ThemeConfig) (StyleSnapshot, error) {
	p, err := GeneratePalette(cfg.AccentColor, cfg.Mode)
	if err != nil {
		return StyleSnapshot{}, err
	}
	radius := px(cfg.BorderRadius)
	btn := buttonGeometryFor(cfg)

	vars := []Var{
		{"--color-primary", p.Primary},
		{"--color-primary-hover", p.PrimaryHover},
		{"--color-secondary", p.Secondary},
		{"--color-accent", p.Accent},
		{"--color-surface", p.Surface},
		{"--color-background", p.Background},
		{"--color-text", p.Text},
		{"--color-text-muted", p.TextMuted},
		{"--color-border", p.Border},

		{"--border-radius", radius},
		{"--spacing", px(cfg.Spacing)},
		{"--shadow-intensity", strconv.FormatFloat(cfg.ShadowIntensity, 'f', -1, 64)},

		{"--button-radius", btn.radius},
		{"--button-padding", btn.padding},

		// Older component styles still read these names.
		{"--background", p.Background},
		{"--foreground", p.Text},
		{"--primary", p.Primary},
		{"--primary-foreground", p.Surface},
		{"--secondary", p.Secondary},
		{"--secondary-foreground", p.Text},
		{"--accent", p.Accent},
		{"--accent-foreground", p.Text},
		{"--border", p.Border},
		{"--input", p.Border},
		{"--ring", p.Primary},
		{"--radius", radius},
	}

	modeClass := ClassLightMode
	if cfg.Mode == ModeDark {
		modeClass = ClassDarkMode
	}
	return StyleSnapshot{
		Vars:    vars,
		Classes: []string{modeClass, ButtonClass(cfg.ButtonStyle)},
	}, nil
}

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}
