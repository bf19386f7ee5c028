package types

import "selectkit/internal/domain"

// KeyAction forwards a key to the dropdown
type KeyAction struct {
	Code domain.KeyCode
}

func (a KeyAction) Type() string { return "key" }

// UpdateTextAction carries the new search text
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ClearAction empties the selection
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// ConfirmAction accepts the current selection and ends the session
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// QuitAction ends the session without a result
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

// ToggleHelpAction switches between short and full help
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }
