package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/theme"
)

// Action is what the user asked the picker to do with the highlighted theme.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionAdopt
)

// Choice is the outcome of a picker session.
type Choice struct {
	Name   string
	Action Action
}

const (
	previewWidth  = 44
	previewHeight = 11
)

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	pickerItemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	pickerFocusStyle = lipgloss.NewStyle().Bold(true).Reverse(true).PaddingLeft(1).PaddingRight(1)
)

// Picker is a Bubble Tea model for browsing named themes with a live preview.
type Picker struct {
	names      []string
	cursor     int
	selected   string
	showPreset bool
	keys       KeyMap
	help       help.Model
	choice     Choice
	quitting   bool
}

// NewPicker starts with the cursor on selected, or the first theme.
func NewPicker(names []string, selected string) Picker {
	p := Picker{
		names:    append([]string(nil), names...),
		selected: selected,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	for i, name := range p.names {
		if name == selected {
			p.cursor = i
			break
		}
	}
	return p
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
		return p, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.quitting = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.names)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keys.Mode):
			p.showPreset = !p.showPreset
		case key.Matches(msg, p.keys.Help):
			p.help.ShowAll = !p.help.ShowAll
		case key.Matches(msg, p.keys.Select):
			return p.finish(ActionSelect)
		case key.Matches(msg, p.keys.Adopt):
			return p.finish(ActionAdopt)
		}
	}
	return p, nil
}

func (p Picker) finish(action Action) (tea.Model, tea.Cmd) {
	if name := p.Highlighted(); name != "" {
		p.choice = Choice{Name: name, Action: action}
	}
	p.quitting = true
	return p, tea.Quit
}

// Highlighted returns the theme under the cursor.
func (p Picker) Highlighted() string {
	if p.cursor < 0 || p.cursor >= len(p.names) {
		return ""
	}
	return p.names[p.cursor]
}

// Choice returns what the user picked; Action is ActionNone on quit.
func (p Picker) Choice() Choice {
	return p.choice
}

func (p Picker) View() string {
	if p.quitting {
		return ""
	}
	var list strings.Builder
	list.WriteString(pickerTitleStyle.Render("Themes"))
	list.WriteByte('\n')
	for i, name := range p.names {
		label := name
		if t, ok := theme.LookupNamed(name); ok {
			label = t.Icon + " " + name
		}
		if name == p.selected {
			label += " " + activeMarker
		}
		if i == p.cursor {
			list.WriteString(pickerFocusStyle.Render(label))
		} else {
			list.WriteString(pickerItemStyle.Render(label))
		}
		list.WriteByte('\n')
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(3).Render(list.String()),
		p.preview(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, "", p.help.View(p.keys))
}

func (p Picker) preview() string {
	t, ok := theme.LookupNamed(p.Highlighted())
	if !ok {
		return ""
	}
	if p.showPreset {
		out, err := RenderPreview(t.Config(), previewWidth, previewHeight)
		if err != nil {
			return err.Error()
		}
		return out
	}
	return RenderVars(theme.NamedSnapshot(t).Vars)
}
