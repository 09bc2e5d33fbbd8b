package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// SelectKeyMap defines the keyboard bindings of a Select
type SelectKeyMap struct {
	Commit key.Binding // open when closed, choose highlighted option when open
	Down   key.Binding
	Up     key.Binding
	Close  key.Binding
}

// DefaultSelectKeyMap returns the standard Select bindings
func DefaultSelectKeyMap() SelectKeyMap {
	return SelectKeyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open/choose"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k SelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Down, k.Up, k.Close}
}

// FullHelp implements help.KeyMap
func (k SelectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
