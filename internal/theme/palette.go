package theme

import (
	"fmt"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	apperrors "folio/internal/errors"
)

// Offsets applied to the accent channels for the derived tones.
const (
	hoverDarkenAmount   = 20
	accentLightenAmount = 60
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB holds 8-bit color channels.
type RGB struct {
	R, G, B int
}

// String formats the channels as a CSS rgb() value.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Palette is the full set of UI colors derived from an accent and a mode.
type Palette struct {
	Primary      string
	PrimaryHover string
	Secondary    string
	Accent       string
	Surface      string
	Background   string
	Text         string
	TextMuted    string
	Border       string
}

// neutrals are the per-mode constants that do not depend on the accent.
type neutrals struct {
	secondary, surface, background, text, textMuted, border string
}

var modeNeutrals = map[Mode]neutrals{
	ModeLight: {
		secondary:  "#e4e4e7",
		surface:    "#ffffff",
		background: "#fafafa",
		text:       "#1a1a1a",
		textMuted:  "#6b7280",
		border:     "#e5e7eb",
	},
	ModeDark: {
		secondary:  "#3f3f46",
		surface:    "#1a1a1a",
		background: "#0f0f0f",
		text:       "#fafafa",
		textMuted:  "#9ca3af",
		border:     "#374151",
	},
}

// ParseHex parses a six-digit hex color, with or without the leading '#'.
func ParseHex(hex string) (RGB, error) {
	trimmed := strings.TrimSpace(hex)
	if !hexPattern.MatchString(trimmed) {
		return RGB{}, apperrors.New(apperrors.CodeInvalidColor,
			fmt.Sprintf("invalid accent color %q: want six hex digits", hex), nil)
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return RGB{}, apperrors.New(apperrors.CodeInvalidColor,
			fmt.Sprintf("invalid accent color %q", hex), err)
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// CanonicalHex returns hex in the stored form: lowercase with a leading '#'.
func CanonicalHex(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Hex formats the channels as a lowercase #rrggbb value.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten moves every channel by amount, toward white in light mode and
// toward black in dark mode.
func (c RGB) Lighten(amount int, mode Mode) RGB {
	factor := amount
	if mode != ModeLight {
		factor = -amount
	}
	return c.shift(factor)
}

// Darken is the inverse of Lighten.
func (c RGB) Darken(amount int, mode Mode) RGB {
	factor := -amount
	if mode != ModeLight {
		factor = amount
	}
	return c.shift(factor)
}

func (c RGB) shift(factor int) RGB {
	return RGB{
		R: clampInt(c.R+factor, 0, 255),
		G: clampInt(c.G+factor, 0, 255),
		B: clampInt(c.B+factor, 0, 255),
	}
}

// GeneratePalette derives the UI palette for accent in the given mode. The
// primary color is the accent in canonical #rrggbb form. Unknown modes are treated as dark, matching the light/else branching of the
// offset rule.
func GeneratePalette(accent string, mode Mode) (Palette, error) {
	rgb, err := ParseHex(accent)
	if err != nil {
		return Palette{}, err
	}
	n, ok := modeNeutrals[mode]
	if !ok {
		n = modeNeutrals[ModeDark]
	}
	return Palette{
		Primary:      rgb.Hex(),
		PrimaryHover: rgb.Darken(hoverDarkenAmount, mode).String(),
		Secondary:    n.secondary,
		Accent:       rgb.Lighten(accentLightenAmount, mode).String(),
		Surface:      n.surface,
		Background:   n.background,
		Text:         n.text,
		TextMuted:    n.textMuted,
		Border:       n.border,
	}, nil
}
