package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the dropdown host
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	Select  key.Binding
	Toggle  key.Binding
	Dismiss key.Binding
	Tab     key.Binding
	Clear   key.Binding
	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Home:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/select")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open/toggle")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "close")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+x", "delete"), key.WithHelp("ctrl+x", "clear")),
		Confirm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Dismiss, k.Confirm, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Select, k.Toggle, k.Dismiss, k.Tab},
		{k.Clear, k.Confirm, k.Help, k.Quit},
	}
}
