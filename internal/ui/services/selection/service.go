package selection

import (
	"fmt"

	"selectkit/internal/domain"
	"selectkit/internal/ui/services/catalog"
	"selectkit/internal/ui/services/events"
)

// Service owns the current selection and its mutation rules
type Service struct {
	state   *State
	bus     events.EventBus
	catalog *catalog.Catalog
}

// NewService creates a new selection service
func NewService(bus events.EventBus, cat *catalog.Catalog, mode domain.Mode) *Service {
	return &Service{
		state: &State{
			Mode:     mode,
			Selected: domain.EmptySelection(mode),
		},
		bus:     bus,
		catalog: cat,
	}
}

// Mode returns the selection mode
func (s *Service) Mode() domain.Mode {
	return s.state.Mode
}

// SetMode switches mode, converting the current selection
func (s *Service) SetMode(mode domain.Mode) {
	s.state.Mode = mode
	s.state.Selected = s.state.Selected.As(mode)
}

// Toggle selects or deselects key. Disabled and unknown keys are ignored.
func (s *Service) Toggle(key domain.Key) Result {
	opt, ok := s.catalog.Lookup(key)
	if !ok {
		s.catalog.Warn("toggle", key)
		return Result{}
	}
	if opt.Disabled {
		return Result{}
	}

	if s.state.Mode == domain.Single {
		if s.state.Selected.Contains(key) {
			return Result{Reselected: true, Close: true}
		}
		var removed []domain.Key
		if prev, had := s.state.Selected.Key(); had {
			removed = append(removed, prev)
		}
		s.state.Selected = domain.NewSingle(key)
		s.bus.Publish(SelectionChangedEvent{
			Added:   []domain.Key{key},
			Removed: removed,
			Total:   1,
		})
		return Result{Changed: true, Close: true}
	}

	var added, removed []domain.Key
	if s.state.Selected.Contains(key) {
		s.state.Selected = s.state.Selected.Without(key)
		removed = append(removed, key)
	} else {
		s.state.Selected = s.state.Selected.With(key)
		added = append(added, key)
	}

	s.bus.Publish(SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   s.state.Selected.Len(),
	})
	return Result{Changed: true}
}

// Clear empties the selection; it reports whether anything was selected
func (s *Service) Clear() bool {
	if !s.HasSelection() {
		return false
	}
	prev := s.state.Selected
	s.state.Selected = domain.EmptySelection(s.state.Mode)
	s.bus.Publish(SelectionClearedEvent{Previous: prev})
	return true
}

// Reconcile adopts a host-provided value. Keys the catalog doesn't know are
// dropped with a warning; disabled keys are kept as given.
func (s *Service) Reconcile(value domain.Selection) {
	value = value.As(s.state.Mode)
	keys := value.Keys()
	kept := make([]domain.Key, 0, len(keys))
	for _, k := range keys {
		if !s.catalog.Contains(k) {
			s.catalog.Warn("set value", k)
			continue
		}
		kept = append(kept, k)
	}

	next := domain.EmptySelection(s.state.Mode)
	if s.state.Mode == domain.Multiple {
		next = domain.NewMultiple(kept...)
	} else if len(kept) > 0 {
		next = domain.NewSingle(kept[0])
	}

	if next.Equal(s.state.Selected) {
		return
	}
	s.state.Selected = next
	s.bus.Publish(SelectionReconciledEvent{Selection: next})
}

// Selection returns the current selection
func (s *Service) Selection() domain.Selection {
	return s.state.Selected
}

// IsSelected checks if key is selected
func (s *Service) IsSelected(key domain.Key) bool {
	return s.state.Selected.Contains(key)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return !s.state.Selected.IsEmpty()
}

// Describe summarizes the selection for the trigger: the label of a single
// choice, the placeholder when empty, otherwise a count
func (s *Service) Describe(placeholder string) string {
	keys := s.state.Selected.Keys()
	switch len(keys) {
	case 0:
		return placeholder
	case 1:
		if label := s.catalog.Label(keys[0]); label != "" {
			return label
		}
		// selected key vanished from the catalog
		return keys[0].String()
	default:
		return fmt.Sprintf("%d selected", len(keys))
	}
}
