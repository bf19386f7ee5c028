package selection

import "selectkit/internal/domain"

// State holds selection state
type State struct {
	Mode     domain.Mode
	Selected domain.Selection
}

// Result describes what a toggle did
type Result struct {
	Changed    bool // the selection differs from before
	Reselected bool // Single mode picked the value that was already selected
	Close      bool // the menu should close (Single mode commit)
}

// Event types
type SelectionChangedEvent struct {
	Added   []domain.Key
	Removed []domain.Key
	Total   int
}

type SelectionClearedEvent struct {
	Previous domain.Selection
}

type SelectionReconciledEvent struct {
	Selection domain.Selection
}
