package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/domain"
	"selectkit/internal/ui/input/types"
)

// Keys is the subset of bindings the modes react to
type Keys struct {
	Up, Down, Home, End key.Binding
	Select, Toggle      key.Binding
	Dismiss, Tab        key.Binding
	Clear, Confirm      key.Binding
	Help, Quit          key.Binding
}

// common handles the bindings every mode shares
func (k Keys) common(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Confirm):
		return []types.Action{types.ConfirmAction{}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearAction{}}, true
	}
	return nil, false
}

// navigation maps the menu keys to engine key codes
func (k Keys) navigation(msg tea.KeyMsg) (domain.KeyCode, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return domain.KeyUp, true
	case key.Matches(msg, k.Down):
		return domain.KeyDown, true
	case key.Matches(msg, k.Home):
		return domain.KeyHome, true
	case key.Matches(msg, k.End):
		return domain.KeyEnd, true
	case key.Matches(msg, k.Select):
		return domain.KeyEnter, true
	case key.Matches(msg, k.Dismiss):
		return domain.KeyEscape, true
	case key.Matches(msg, k.Tab):
		return domain.KeyTab, true
	}
	return domain.KeyUnknown, false
}

// ListMode handles keys while the menu is open without a search field
type ListMode struct {
	keys Keys
}

func NewListMode(keys Keys) *ListMode {
	return &ListMode{keys: keys}
}

func (m *ListMode) Name() string { return "list" }

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.keys.common(msg); ok {
		return actions, true
	}
	if code, ok := m.keys.navigation(msg); ok {
		return []types.Action{types.KeyAction{Code: code}}, true
	}
	switch {
	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.KeyAction{Code: domain.KeySpace}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}
