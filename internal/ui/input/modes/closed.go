package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/domain"
	"selectkit/internal/ui/input/types"
)

// ClosedMode handles keys while the menu is closed
type ClosedMode struct {
	keys Keys
}

func NewClosedMode(keys Keys) *ClosedMode {
	return &ClosedMode{keys: keys}
}

func (m *ClosedMode) Name() string { return "closed" }

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.keys.common(msg); ok {
		return actions, true
	}
	switch {
	case key.Matches(msg, m.keys.Select):
		return []types.Action{types.KeyAction{Code: domain.KeyEnter}}, true
	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.KeyAction{Code: domain.KeySpace}}, true
	case key.Matches(msg, m.keys.Dismiss):
		// nothing left to close: leave
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help) && !ctx.IsSearchable():
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	// a searchable dropdown opens when the user starts typing
	return nil, false
}
