package theme

import (
	"sort"
	"strings"
	"sync"
)

// Root models the document root element: an ordered set of inline custom
// properties and a class list. It is the only thing the applier and the named
// theme registry mutate.
type Root struct {
	mu      sync.RWMutex
	order   []string
	props   map[string]string
	classes []string
	// named holds the properties written by ApplyNamed since the last
	// ApplyConfig.
	named map[string]struct{}
}

// NewRoot returns an empty document root.
func NewRoot() *Root {
	return &Root{props: make(map[string]string)}
}

// SetProperty sets a custom property, keeping its original position if it
// already exists.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setPropertyLocked(name, value)
}

func (r *Root) setPropertyLocked(name, value string) {
	if _, ok := r.props[name]; !ok {
		r.order = append(r.order, name)
	}
	r.props[name] = value
}

// Property returns the value of a custom property.
func (r *Root) Property(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.props[name]
	return v, ok
}

// Properties returns a copy of all custom properties in write order.
func (r *Root) Properties() []Var {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Var, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Var{Name: name, Value: r.props[name]})
	}
	return out
}

// HasClass reports whether the class list contains class.
func (r *Root) HasClass(class string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOfLocked(class) >= 0
}

// Classes returns a copy of the class list.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.classes...)
}

// ClassAttr renders the class list as an HTML class attribute value.
func (r *Root) ClassAttr() string {
	return strings.Join(r.Classes(), " ")
}

func (r *Root) indexOfLocked(class string) int {
	for i, c := range r.classes {
		if c == class {
			return i
		}
	}
	return -1
}

func (r *Root) addClassLocked(class string) {
	if r.indexOfLocked(class) < 0 {
		r.classes = append(r.classes, class)
	}
}

func (r *Root) removeClassLocked(class string) {
	if i := r.indexOfLocked(class); i >= 0 {
		r.classes = append(r.classes[:i], r.classes[i+1:]...)
	}
}

func (r *Root) deletePropertyLocked(name string) {
	if _, ok := r.props[name]; !ok {
		return
	}
	delete(r.props, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// clearNamedLocked drops the named theme overlay: every theme class and the
// properties only a named theme writes. Properties in keep stay in place.
func (r *Root) clearNamedLocked(keep []Var) {
	for _, name := range NamedThemes() {
		r.removeClassLocked(NamedThemeClass(name))
	}
	kept := make(map[string]struct{}, len(keep))
	for _, v := range keep {
		kept[v.Name] = struct{}{}
	}
	for name := range r.named {
		if _, ok := kept[name]; !ok {
			r.deletePropertyLocked(name)
		}
	}
	r.named = nil
}

func (r *Root) toggleClassLocked(class string, on bool) {
	if on {
		r.addClassLocked(class)
		return
	}
	r.removeClassLocked(class)
}

// ApplyConfig writes the style snapshot for cfg onto the root, replacing any
// named theme applied earlier. On an invalid accent the root is left
// untouched and the palette error is returned.
func (r *Root) ApplyConfig(cfg ThemeConfig) error {
	snap, err := Snapshot(cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearNamedLocked(snap.Vars)
	for _, v := range snap.Vars {
		r.setPropertyLocked(v.Name, v.Value)
	}
	r.toggleClassLocked(ClassDarkMode, cfg.Mode == ModeDark)
	r.toggleClassLocked(ClassLightMode, cfg.Mode != ModeDark)
	for _, style := range ButtonStyles {
		r.removeClassLocked(ButtonClass(style))
	}
	r.addClassLocked(ButtonClass(cfg.ButtonStyle))
	return nil
}

// ApplyNamed swaps the active named theme class and writes the theme's
// variables. Classes of every registered named theme are removed first.
func (r *Root) ApplyNamed(t NamedTheme) {
	snap := NamedSnapshot(t)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range NamedThemes() {
		r.removeClassLocked(NamedThemeClass(name))
	}
	for _, c := range snap.Classes {
		r.addClassLocked(c)
	}
	if r.named == nil {
		r.named = make(map[string]struct{}, len(snap.Vars))
	}
	for _, v := range snap.Vars {
		r.setPropertyLocked(v.Name, v.Value)
		r.named[v.Name] = struct{}{}
	}
}

// CSS renders the root state as a stylesheet. Properties keep write order;
// classes are listed in a leading comment so the output can be diffed.
func (r *Root) CSS() string {
	props := r.Properties()
	classes := r.Classes()
	sort.Strings(classes)

	var b strings.Builder
	if len(classes) > 0 {
		b.WriteString("/* classes: ")
		b.WriteString(strings.Join(classes, " "))
		b.WriteString(" */\n")
	}
	b.WriteString(":root {\n")
	for _, v := range props {
		b.WriteString("  ")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
