package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// lightnessThreshold is the CIE L* above which dark text reads better.
const lightnessThreshold = 0.6

const (
	inkDark  = "#000000"
	inkLight = "#ffffff"
)

// ToHex normalizes a CSS color value ("#rrggbb" or "rgb(r, g, b)") to
// lowercase "#rrggbb".
func ToHex(value string) (string, bool) {
	c, ok := parseCSSColor(value)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// ContrastText returns black or white, whichever is more legible on bg.
// Unparseable colors get white.
func ContrastText(bg string) string {
	c, ok := parseCSSColor(bg)
	if !ok {
		return inkLight
	}
	l, _, _ := c.Lab()
	if l > lightnessThreshold {
		return inkDark
	}
	return inkLight
}

// resolveVar follows var(--name) references through vars until it reaches a
// literal value. Unknown references resolve to "".
func resolveVar(value string, vars map[string]string) string {
	for depth := 0; depth < 8; depth++ {
		v := strings.TrimSpace(value)
		if !strings.HasPrefix(v, "var(") || !strings.HasSuffix(v, ")") {
			return v
		}
		value = vars[strings.TrimSpace(v[4:len(v)-1])]
	}
	return ""
}

func parseCSSColor(value string) (colorful.Color, bool) {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "rgb(") {
		var r, g, b int
		if _, err := fmt.Sscanf(v, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
			return colorful.Color{}, false
		}
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Clamped(), true
	}
	if len(v) == 7 && v[0] == '#' {
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	return colorful.Color{}, false
}

func termColor(value string) lipgloss.TerminalColor {
	if hex, ok := ToHex(value); ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.NoColor{}
}
