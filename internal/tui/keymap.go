package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the studio TUI.
type KeyMap struct {
	PrevDay     key.Binding
	NextDay     key.Binding
	EditContext key.Binding
	Generate    key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Regenerate  key.Binding
	Back        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		EditContext: key.NewBinding(
			key.WithKeys("tab", "c"),
			key.WithHelp("tab/c", "edit context"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter", "g"),
			key.WithHelp("enter/g", "generate ideas"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "draft brief posts"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
