package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the theme picker.
// Up/Down share help text since they appear as a single help entry.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Adopt  key.Binding
	Mode   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default picker bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓", "move"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select theme"),
		),
		Adopt: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "use as config preset"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "toggle preview"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Adopt, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Adopt, k.Mode},
		{k.Help, k.Quit},
	}
}
