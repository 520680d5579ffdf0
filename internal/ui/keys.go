package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the search screen reacts to.
// Printable keys are left to the text input, so bindings use ctrl, arrows and function keys.
type keyMap struct {
	ToggleRegex key.Binding
	Next        key.Binding
	Prev        key.Binding
	Clear       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ToggleRegex: key.NewBinding(
			key.WithKeys("ctrl+r", "tab"),
			key.WithHelp("ctrl+r", "toggle regex"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next match"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous match"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleRegex, k.Next, k.Prev, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleRegex, k.Clear},
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}
