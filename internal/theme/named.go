package theme

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// ButtonSpec is the pre-baked button styling of a named theme.
type ButtonSpec struct {
	Background      string
	Foreground      string
	HoverBackground string
	BorderRadius    string
}

// NamedTheme is a complete, immutable color and button bundle.
type NamedTheme struct {
	Name        string
	Description string
	Icon        string
	IsDark      bool
	Vars        map[string]string
	Button      ButtonSpec
}

// DefaultNamedTheme is selected when nothing has been persisted.
const DefaultNamedTheme = "Classic Light"

var globalRegistry = &registry{
	themes: make(map[string]NamedTheme),
}

type registry struct {
	mu     sync.RWMutex
	themes map[string]NamedTheme
}

// RegisterNamedTheme adds a theme to the catalog. Themes register themselves
// from init and are never mutated afterwards.
func RegisterNamedTheme(t NamedTheme) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.themes[t.Name] = t
}

// LookupNamed returns the theme registered under name.
func LookupNamed(name string) (NamedTheme, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	t, ok := globalRegistry.themes[name]
	return t, ok
}

// NamedThemes returns all registered theme names in sorted order.
func NamedThemes() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	names := make([]string, 0, len(globalRegistry.themes))
	for name := range globalRegistry.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// KebabCase converts "Midnight Dark" to "midnight-dark" and "hoverBg" to
// "hover-bg".
func KebabCase(s string) string {
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "-")
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
			b.WriteRune('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NamedThemeClass returns the root class marking name as the active theme.
func NamedThemeClass(name string) string {
	return "theme-" + KebabCase(name)
}

// NamedSnapshot returns the variables and class written for t. Theme
// variables come first in sorted order, followed by the button variables.
func NamedSnapshot(t NamedTheme) StyleSnapshot {
	names := make([]string, 0, len(t.Vars))
	for name := range t.Vars {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]Var, 0, len(names)+4)
	for _, name := range names {
		vars = append(vars, Var{Name: name, Value: t.Vars[name]})
	}
	vars = append(vars,
		Var{Name: "--button-" + KebabCase("bg"), Value: t.Button.Background},
		Var{Name: "--button-" + KebabCase("color"), Value: t.Button.Foreground},
		Var{Name: "--button-" + KebabCase("hoverBg"), Value: t.Button.HoverBackground},
		Var{Name: "--button-" + KebabCase("borderRadius"), Value: t.Button.BorderRadius},
	)
	return StyleSnapshot{
		Vars:    vars,
		Classes: []string{NamedThemeClass(t.Name)},
	}
}

// Config derives a granular configuration from the theme so a named theme can
// be used as a preset for the config engine.
func (t NamedTheme) Config() ThemeConfig {
	cfg := DefaultConfig()
	if primary, ok := t.Vars["--color-primary"]; ok {
		if _, err := ParseHex(primary); err == nil {
			cfg.AccentColor = strings.ToLower(primary)
		}
	}
	if t.IsDark {
		cfg.Mode = ModeDark
	}
	radius, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(t.Button.BorderRadius), "px"))
	switch {
	case err != nil:
	case radius == 0:
		cfg.ButtonStyle = ButtonSharp
	case radius >= 50:
		cfg.ButtonStyle = ButtonPill
	default:
		cfg.ButtonStyle = ButtonRounded
		cfg.BorderRadius = clampInt(radius, MinBorderRadius, MaxBorderRadius)
	}
	return cfg
}
