package coordinator

import (
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/ui/services/catalog"
	"selectkit/internal/ui/services/emitter"
	"selectkit/internal/ui/services/events"
)

// State is the interaction state of a dropdown
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Region names the parts of a dropdown a pointer press can land in
type Region int

const (
	RegionTrigger Region = iota
	RegionMenu
)

// HitTester is supplied by the platform: it says whether a pointer press
// landed inside a region of this dropdown
type HitTester interface {
	Contains(region Region, ev domain.PointerDownEvent) bool
}

// HitTestFunc adapts a function to HitTester
type HitTestFunc func(region Region, ev domain.PointerDownEvent) bool

func (f HitTestFunc) Contains(region Region, ev domain.PointerDownEvent) bool {
	return f(region, ev)
}

// Props is what the host supplies at construction and on every refresh
type Props struct {
	Options []domain.OptionRecord
	// Value is the host's current value. Nil leaves the dropdown in charge of
	// its own value (uncontrolled).
	Value          *domain.Selection
	Mode           domain.Mode
	Searchable     bool
	Disabled       bool
	Placeholder    string
	EmitOnReselect bool
}

// Config carries the collaborators of a dropdown
type Config struct {
	// Environment is the process-wide listener registry used for dismissal
	Environment eventbus.EventBus
	HitTester   HitTester
	OnChange    emitter.ChangeFunc
	// OnOpenChange is called after every open/close transition
	OnOpenChange func(open bool)
	Group        *Group
	// Bus receives service events; a private bus is created when nil
	Bus  events.EventBus
	Warn catalog.WarnFunc
	ID   string
}
