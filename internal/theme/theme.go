// Package theme provides the folio theme engine: the granular ThemeConfig
// model, the palette generator, the style snapshot applied to the document
// root, and the catalog of pre-baked named themes.
package theme

import (
	"fmt"
	"math"
	"strings"

	apperrors "folio/internal/errors"
)

// Mode selects the light or dark variant of the derived palette.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ButtonStyle selects the button geometry written by the applier.
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonSharp   ButtonStyle = "sharp"
	ButtonMinimal ButtonStyle = "minimal"
	ButtonPill    ButtonStyle = "pill"
)

// ButtonStyles lists the supported button styles in display order.
var ButtonStyles = []ButtonStyle{ButtonRounded, ButtonSharp, ButtonMinimal, ButtonPill}

// Bounds for the numeric ThemeConfig fields.
const (
	MinBorderRadius = 0
	MaxBorderRadius = 24
	MinSpacing      = 16
	MaxSpacing      = 64

	MinShadowIntensity = 0.0
	MaxShadowIntensity = 0.5
)

// ThemeConfig is the granular theme configuration. Its JSON shape is also the
// theme file format used by export and import.
type ThemeConfig struct {
	Mode            Mode        `json:"mode"`
	AccentColor     string      `json:"accentColor"`
	ButtonStyle     ButtonStyle `json:"buttonStyle"`
	BorderRadius    int         `json:"borderRadius"`
	Spacing         int         `json:"spacing"`
	ShadowIntensity float64     `json:"shadowIntensity"`
}

// DefaultConfig returns the compiled-in factory default.
func DefaultConfig() ThemeConfig {
	return ThemeConfig{
		Mode:            ModeLight,
		AccentColor:     "#8b5cf6",
		ButtonStyle:     ButtonRounded,
		BorderRadius:    8,
		Spacing:         16,
		ShadowIntensity: 0.15,
	}
}

// Swatch is a named recommended accent color.
type Swatch struct {
	Name  string
	Value string
}

// PresetSwatches are the recommended accent colors offered next to the
// user's custom colors.
var PresetSwatches = []Swatch{
	{Name: "Purple", Value: "#8b5cf6"},
	{Name: "Blue", Value: "#3b82f6"},
	{Name: "Green", Value: "#10b981"},
	{Name: "Red", Value: "#ef4444"},
	{Name: "Orange", Value: "#f97316"},
	{Name: "Pink", Value: "#ec4899"},
	{Name: "Teal", Value: "#14b8a6"},
	{Name: "Indigo", Value: "#6366f1"},
}

// IsPresetSwatch reports whether color matches a preset swatch, ignoring case
// and a missing '#'.
func IsPresetSwatch(color string) bool {
	if hex, err := CanonicalHex(color); err == nil {
		color = hex
	}
	for _, s := range PresetSwatches {
		if strings.EqualFold(s.Value, color) {
			return true
		}
	}
	return false
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// Valid reports whether s is a known button style.
func (s ButtonStyle) Valid() bool {
	for _, known := range ButtonStyles {
		if s == known {
			return true
		}
	}
	return false
}

// Validate reports the first field that falls outside its domain.
func (c ThemeConfig) Validate() error {
	if !c.Mode.Valid() {
		return invalidConfig("mode %q must be light or dark", c.Mode)
	}
	if _, err := ParseHex(c.AccentColor); err != nil {
		return err
	}
	if !c.ButtonStyle.Valid() {
		return invalidConfig("button style %q is not supported", c.ButtonStyle)
	}
	if c.BorderRadius < MinBorderRadius || c.BorderRadius > MaxBorderRadius {
		return invalidConfig("border radius %d outside [%d, %d]", c.BorderRadius, MinBorderRadius, MaxBorderRadius)
	}
	if c.Spacing < MinSpacing || c.Spacing > MaxSpacing {
		return invalidConfig("spacing %d outside [%d, %d]", c.Spacing, MinSpacing, MaxSpacing)
	}
	if math.IsNaN(c.ShadowIntensity) || c.ShadowIntensity < MinShadowIntensity || c.ShadowIntensity > MaxShadowIntensity {
		return invalidConfig("shadow intensity %v outside [%v, %v]", c.ShadowIntensity, MinShadowIntensity, MaxShadowIntensity)
	}
	return nil
}

// Normalize clamps numeric fields into range and replaces unknown enum values
// with the defaults. A parseable accent is rewritten as lowercase #rrggbb; an
// unparseable one is kept so Validate and the applier can reject it.
func (c ThemeConfig) Normalize() ThemeConfig {
	def := DefaultConfig()
	if !c.Mode.Valid() {
		c.Mode = def.Mode
	}
	if !c.ButtonStyle.Valid() {
		c.ButtonStyle = def.ButtonStyle
	}
	c.AccentColor = strings.TrimSpace(c.AccentColor)
	if c.AccentColor == "" {
		c.AccentColor = def.AccentColor
	}
	if hex, err := CanonicalHex(c.AccentColor); err == nil {
		c.AccentColor = hex
	}
	c.BorderRadius = clampInt(c.BorderRadius, MinBorderRadius, MaxBorderRadius)
	c.Spacing = clampInt(c.Spacing, MinSpacing, MaxSpacing)
	if math.IsNaN(c.ShadowIntensity) {
		c.ShadowIntensity = def.ShadowIntensity
	}
	c.ShadowIntensity = math.Max(MinShadowIntensity, math.Min(MaxShadowIntensity, c.ShadowIntensity))
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func invalidConfig(format string, args ...any) error {
	return apperrors.New(apperrors.CodeInvalidConfig, fmt.Sprintf(format, args...), nil)
}
