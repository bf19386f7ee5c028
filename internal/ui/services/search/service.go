package search

import (
	"strings"

	"selectkit/internal/domain"
	"selectkit/internal/ui/services/events"
)

// Filter returns the options whose label contains term, ignoring case, in
// catalog order. An empty term yields every option. The result never aliases
// the input slice.
func Filter(options []domain.OptionRecord, term string) []domain.OptionRecord {
	out := make([]domain.OptionRecord, 0, len(options))
	if term == "" {
		return append(out, options...)
	}
	needle := strings.ToLower(term)
	for _, opt := range options {
		// disabled options stay visible so users can see why they can't pick them
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			out = append(out, opt)
		}
	}
	return out
}

// Service keeps the current search term and the visible options derived from it
type Service struct {
	state     *State
	bus       events.EventBus
	optionsFn func() []domain.OptionRecord // Function to get the catalog
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetOptionsFunction sets the function to query the catalog
func (s *Service) SetOptionsFunction(fn func() []domain.OptionRecord) {
	s.optionsFn = fn
	s.recompute()
}

// SetTerm changes the search term. It returns false, without recomputing or
// publishing anything, when the term is unchanged.
func (s *Service) SetTerm(term string) bool {
	if term == s.state.Term {
		return false // Same search
	}

	old := s.state.Term
	s.state.Term = term
	s.recompute()

	if term == "" {
		s.bus.Publish(SearchClearedEvent{})
	}
	s.bus.Publish(TermChangedEvent{
		OldTerm:      old,
		Term:         term,
		VisibleCount: len(s.state.Visible),
	})
	return true
}

// Clear resets the term; it reports whether anything changed
func (s *Service) Clear() bool {
	return s.SetTerm("")
}

// Refresh recomputes the visible options after the catalog changed
func (s *Service) Refresh() {
	s.recompute()
}

// GetTerm returns the current search term
func (s *Service) GetTerm() string {
	return s.state.Term
}

// Visible returns the visible options
func (s *Service) Visible() []domain.OptionRecord {
	return s.state.Visible
}

// VisibleCount returns the number of visible options
func (s *Service) VisibleCount() int {
	return len(s.state.Visible)
}

// At returns the visible option at index
func (s *Service) At(index int) (domain.OptionRecord, bool) {
	if index < 0 || index >= len(s.state.Visible) {
		return domain.OptionRecord{}, false
	}
	return s.state.Visible[index], true
}

// IndexOf returns the visible index of key, or -1
func (s *Service) IndexOf(key domain.Key) int {
	for i, opt := range s.state.Visible {
		if opt.Value == key {
			return i
		}
	}
	return -1
}

// Enabled reports, per visible index, whether the option can be selected
func (s *Service) Enabled(index int) bool {
	opt, ok := s.At(index)
	return ok && !opt.Disabled
}

func (s *Service) recompute() {
	var options []domain.OptionRecord
	if s.optionsFn != nil {
		options = s.optionsFn()
	}
	s.state.Visible = Filter(options, s.state.Term)
}
