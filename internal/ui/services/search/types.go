package search

import "selectkit/internal/domain"

// State holds search state
type State struct {
	Term    string
	Visible []domain.OptionRecord // Filtered projection of the catalog
}

// Event types
type TermChangedEvent struct {
	OldTerm      string
	Term         string
	VisibleCount int
}

type SearchClearedEvent struct{}
