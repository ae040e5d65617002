package ui

import "testing"

func TestToHexNormalizesCSSColors(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#8B5CF6", "#8b5cf6", true},
		{" #10b981 ", "#10b981", true},
		{"rgb(119, 72, 226)", "#7748e2", true},
		{"rgb(0, 0, 0)", "#000000", true},
		{"var(--color-primary)", "", false},
		{"#fff", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ToHex(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ToHex(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestContrastTextPicksLegibleInk(t *testing.T) {
	cases := map[string]string{
		"#ffffff":          inkDark,
		"#fafafa":          inkDark,
		"#FFC400":          inkDark,
		"#0f0f0f":          inkLight,
		"#1a1a1a":          inkLight,
		"rgb(79, 32, 186)": inkLight,
		"not a color":      inkLight,
	}
	for bg, want := range cases {
		if got := ContrastText(bg); got != want {
			t.Errorf("ContrastText(%q) = %s, want %s", bg, got, want)
		}
	}
}

func TestResolveVarFollowsReferences(t *testing.T) {
	vars := map[string]string{
		"--color-primary":   "#FF6F00",
		"--color-secondary": "var(--color-primary)",
		"--loop":            "var(--loop)",
	}
	if got := resolveVar("var(--color-secondary)", vars); got != "#FF6F00" {
		t.Fatalf("expected chained reference to resolve, got %q", got)
	}
	if got := resolveVar("#123456", vars); got != "#123456" {
		t.Fatalf("literal should pass through, got %q", got)
	}
	if got := resolveVar("var(--missing)", vars); got != "" {
		t.Fatalf("unknown reference should resolve empty, got %q", got)
	}
	if got := resolveVar("var(--loop)", vars); got != "" {
		t.Fatalf("cyclic reference should give up, got %q", got)
	}
}
