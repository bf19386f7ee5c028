package navigation

import (
	"selectkit/internal/ui/services/events"
)

// Service moves the keyboard focus over the visible options
type Service struct {
	state     *State
	bus       events.EventBus
	countFn   func() int     // Function to get the number of visible options
	enabledFn func(int) bool // Function to check whether an index can be focused
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{Focus: -1},
		bus:   bus,
	}
}

// SetQueryFunctions sets the functions used to inspect the visible options
func (s *Service) SetQueryFunctions(count func() int, enabled func(int) bool) {
	s.countFn = count
	s.enabledFn = enabled
}

// GetFocus returns the focused index, or -1
func (s *Service) GetFocus() int {
	return s.state.Focus
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.set(s.step(-1))
	case DirectionDown:
		s.set(s.step(+1))
	case DirectionHome:
		s.set(s.First())
	case DirectionEnd:
		s.set(s.Last())
	}
}

// FocusFirst moves focus to the first enabled entry, or -1
func (s *Service) FocusFirst() {
	s.set(s.First())
}

// MoveToIndex focuses index if it is a valid, enabled entry
func (s *Service) MoveToIndex(index int) bool {
	if index < 0 || index >= s.count() || !s.enabled(index) {
		return false
	}
	s.set(index)
	return true
}

// Reset drops the focus
func (s *Service) Reset() {
	s.set(-1)
}

// Clamp pulls the focus back onto an enabled entry after the visible set
// changed: the nearest one at or below the old focus, or -1 when there is none.
func (s *Service) Clamp() {
	i := s.state.Focus
	if i < 0 {
		s.set(-1)
		return
	}
	if n := s.count(); i >= n {
		i = n - 1
	}
	for i >= 0 && !s.enabled(i) {
		i--
	}
	s.set(i)
}

// First returns the first enabled index, or -1
func (s *Service) First() int {
	for i := 0; i < s.count(); i++ {
		if s.enabled(i) {
			return i
		}
	}
	return -1
}

// Last returns the last enabled index, or -1
func (s *Service) Last() int {
	for i := s.count() - 1; i >= 0; i-- {
		if s.enabled(i) {
			return i
		}
	}
	return -1
}

// step walks delta positions from the current focus with wraparound,
// skipping disabled entries. From -1, down lands on the first enabled entry
// and up on the last.
func (s *Service) step(delta int) int {
	n := s.count()
	if n == 0 {
		return -1
	}
	cur := s.state.Focus
	if cur < 0 || cur >= n {
		if delta > 0 {
			cur = -1
		} else {
			cur = n
		}
	}
	for i := 1; i <= n; i++ {
		next := ((cur+delta*i)%n + n) % n
		if s.enabled(next) {
			return next
		}
	}
	return -1
}

func (s *Service) set(index int) {
	if index == s.state.Focus {
		return
	}
	old := s.state.Focus
	s.state.Focus = index
	s.bus.Publish(FocusMovedEvent{OldIndex: old, NewIndex: index})
}

func (s *Service) count() int {
	if s.countFn == nil {
		return 0
	}
	return s.countFn()
}

func (s *Service) enabled(i int) bool {
	if s.enabledFn == nil {
		return true
	}
	return s.enabledFn(i)
}
