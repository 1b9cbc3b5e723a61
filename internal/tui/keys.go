package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// keyMap holds every binding of the viewer. The arrow, Home, End, Delete,
// Enter and Space bindings are forwarded to the focused tab group.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Delete   key.Binding
	Add      key.Binding
	Jump     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next stop")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous stop")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous tab")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous tab (vertical)")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next tab (vertical)")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first tab")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last tab")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "activate")),
		Delete:   key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "close tab")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add tab")),
		Jump:     key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "go to fragment")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Activate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate, k.Delete},
		{k.Left, k.Right, k.Up, k.Down, k.Home, k.End},
		{k.Add, k.Jump, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// tabsKey translates msg into the key a tab group understands.
func (k keyMap) tabsKey(msg tea.KeyMsg) tabs.Key {
	switch {
	case msg.Type == tea.KeyEnter:
		return tabs.KeyEnter
	case msg.Type == tea.KeySpace:
		return tabs.KeySpace
	case key.Matches(msg, k.Next):
		return tabs.KeyTab
	case key.Matches(msg, k.Left):
		return tabs.KeyLeft
	case key.Matches(msg, k.Right):
		return tabs.KeyRight
	case key.Matches(msg, k.Up):
		return tabs.KeyUp
	case key.Matches(msg, k.Down):
		return tabs.KeyDown
	case key.Matches(msg, k.Home):
		return tabs.KeyHome
	case key.Matches(msg, k.End):
		return tabs.KeyEnd
	case key.Matches(msg, k.Delete):
		return tabs.KeyDelete
	}
	return tabs.KeyNone
}
