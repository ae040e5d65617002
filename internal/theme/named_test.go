package theme

import (
	"reflect"
	"testing"
)

// TestAllNamedThemesRegistered verifies the catalog contents.
func TestAllNamedThemesRegistered(t *testing.T) {
	expected := []string{
		"Classic Light",
		"Forest Whisper",
		"Midnight Dark",
		"Monochrome Minimal",
		"Oceanic Twilight",
		"Solar Flare",
	}
	if got := NamedThemes(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("NamedThemes() = %v, want %v", got, expected)
	}
	if _, ok := LookupNamed(DefaultNamedTheme); !ok {
		t.Fatalf("default theme %q is not registered", DefaultNamedTheme)
	}
}

func TestLookupUnknownTheme(t *testing.T) {
	if _, ok := LookupNamed("Nonexistent Theme"); ok {
		t.Fatal("LookupNamed returned a theme for an unknown name")
	}
}

// TestNamedThemesComplete verifies every theme defines the full variable set.
func TestNamedThemesComplete(t *testing.T) {
	required := []string{
		"--color-bg", "--color-surface", "--color-primary", "--color-secondary",
		"--color-accent", "--color-text-primary", "--color-text-secondary",
		"--color-border", "--color-gradient-from", "--color-gradient-to",
		"--color-hero-gradient-from", "--color-hero-gradient-to",
	}
	for _, name := range NamedThemes() {
		th, _ := LookupNamed(name)
		if th.Description == "" || th.Icon == "" {
			t.Errorf("theme %q missing description or icon", name)
		}
		for _, v := range required {
			if th.Vars[v] == "" {
				t.Errorf("theme %q: %s is empty", name, v)
			}
		}
		if th.Button.Background == "" || th.Button.Foreground == "" ||
			th.Button.HoverBackground == "" || th.Button.BorderRadius == "" {
			t.Errorf("theme %q has incomplete button spec: %+v", name, th.Button)
		}
	}
}

func TestKebabCase(t *testing.T) {
	cases := map[string]string{
		"Classic Light":       "classic-light",
		"Monochrome  Minimal": "monochrome-minimal",
		"hoverBg":             "hover-bg",
		"borderRadius":        "border-radius",
		"bg":                  "bg",
	}
	for in, want := range cases {
		if got := KebabCase(in); got != want {
			t.Errorf("KebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamedSnapshotButtonVars(t *testing.T) {
	th, _ := LookupNamed("Solar Flare")
	snap := NamedSnapshot(th)
	want := map[string]string{
		"--button-bg":            "var(--color-secondary)",
		"--button-color":         "#FFF8E1",
		"--button-hover-bg":      "#BF360C",
		"--button-border-radius": "8px",
		"--color-primary":        "#FF6F00",
	}
	for name, value := range want {
		if got, _ := snap.Lookup(name); got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
	if !reflect.DeepEqual(snap.Classes, []string{"theme-solar-flare"}) {
		t.Errorf("Classes = %v", snap.Classes)
	}
}

func TestApplyNamedReplacesThemeClass(t *testing.T) {
	root := NewRoot()
	classic, _ := LookupNamed("Classic Light")
	midnight, _ := LookupNamed("Midnight Dark")

	root.ApplyNamed(classic)
	root.ApplyNamed(midnight)

	if root.HasClass("theme-classic-light") {
		t.Errorf("previous theme class should be removed, got %v", root.Classes())
	}
	if !root.HasClass("theme-midnight-dark") {
		t.Errorf("expected theme-midnight-dark, got %v", root.Classes())
	}
	if got, _ := root.Property("--color-bg"); got != "#0D1117" {
		t.Errorf("--color-bg = %q, want Midnight Dark background", got)
	}
}

func TestNamedThemeConfigPreset(t *testing.T) {
	cases := []struct {
		name   string
		mode   Mode
		accent string
		style  ButtonStyle
		radius int
	}{
		{"Classic Light", ModeLight, "#0052cc", ButtonRounded, 4},
		{"Midnight Dark", ModeDark, "#58a6ff", ButtonRounded, 4},
		{"Forest Whisper", ModeLight, "#558b2f", ButtonRounded, 12},
		{"Monochrome Minimal", ModeLight, "#333333", ButtonSharp, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th, _ := LookupNamed(tc.name)
			cfg := th.Config()
			if cfg.Mode != tc.mode || cfg.AccentColor != tc.accent || cfg.ButtonStyle != tc.style || cfg.BorderRadius != tc.radius {
				t.Errorf("Config() = %+v", cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("derived config invalid: %v", err)
			}
		})
	}
}
