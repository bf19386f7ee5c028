package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/ui/input/types"
)

// SearchMode handles keys while the menu is open and the search field has
// text focus. Anything that isn't a menu key is left for the text input.
type SearchMode struct {
	keys Keys
}

func NewSearchMode(keys Keys) *SearchMode {
	return &SearchMode{keys: keys}
}

func (m *SearchMode) Name() string { return "search" }

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.keys.common(msg); ok {
		return actions, true
	}
	if code, ok := m.keys.navigation(msg); ok {
		return []types.Action{types.KeyAction{Code: code}}, true
	}
	return nil, false
}
