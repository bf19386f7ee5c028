package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeClosed: the menu is closed and the trigger has focus
	ModeClosed Mode = iota
	// ModeList: the menu is open without a search field
	ModeList
	// ModeSearch: the menu is open and the search field has text focus
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeSearch:
		return "search"
	}
	return "closed"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to dropdown state needed for input handling
type Context interface {
	IsOpen() bool
	IsSearchable() bool
}

// ModeFor derives the input mode from the dropdown state
func ModeFor(ctx Context) Mode {
	switch {
	case !ctx.IsOpen():
		return ModeClosed
	case ctx.IsSearchable():
		return ModeSearch
	default:
		return ModeList
	}
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
