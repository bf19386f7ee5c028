// Package selectkit is a headless selection engine for dropdown and combobox
// widgets. It owns the open/closed state, filtering, keyboard focus, outside
// dismissal and the selection itself; the host owns rendering.
//
// A host creates one environment per process, publishes every pointer press
// and key press on it, and builds dropdowns against it:
//
//	env := selectkit.NewEnvironment()
//	dd := selectkit.New(selectkit.Config{
//		Environment: env,
//		HitTester:   hits,
//		OnChange:    func(v selectkit.Selection) { ... },
//	}, selectkit.Props{Options: options, Mode: selectkit.Single})
//	defer dd.Close()
package selectkit

import (
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/ui/coordinator"
	"selectkit/internal/ui/viewmodels"
)

// Data model
type (
	Key          = domain.Key
	OptionRecord = domain.OptionRecord
	Mode         = domain.Mode
	Selection    = domain.Selection
)

// Interaction controller
type (
	Dropdown    = coordinator.Dropdown
	Group       = coordinator.Group
	Props       = coordinator.Props
	Config      = coordinator.Config
	State       = coordinator.State
	Region      = coordinator.Region
	HitTester   = coordinator.HitTester
	HitTestFunc = coordinator.HitTestFunc
)

// Presentation boundary
type (
	ViewModel  = viewmodels.ViewModel
	OptionView = viewmodels.OptionView
)

// Environment
type (
	Environment      = eventbus.EventBus
	Point            = domain.Point
	PointerDownEvent = domain.PointerDownEvent
	KeyDownEvent     = domain.KeyDownEvent
	KeyCode          = domain.KeyCode
)

const (
	Single   = domain.Single
	Multiple = domain.Multiple

	Closed = coordinator.Closed
	Open   = coordinator.Open

	RegionTrigger = coordinator.RegionTrigger
	RegionMenu    = coordinator.RegionMenu

	KeyEnter  = domain.KeyEnter
	KeySpace  = domain.KeySpace
	KeyEscape = domain.KeyEscape
	KeyTab    = domain.KeyTab
	KeyUp     = domain.KeyUp
	KeyDown   = domain.KeyDown
	KeyHome   = domain.KeyHome
	KeyEnd    = domain.KeyEnd
)

// ErrInvalidKey is returned by KeyOf for values that are not strings or integers
var ErrInvalidKey = domain.ErrInvalidKey

// StringKey returns a string key
func StringKey(s string) Key { return domain.StringKey(s) }

// IntKey returns an integer key
func IntKey(i int64) Key { return domain.IntKey(i) }

// KeyOf converts a host value to a key
func KeyOf(v any) (Key, error) { return domain.KeyOf(v) }

// NoneSelected returns an empty single-value selection
func NoneSelected() Selection { return domain.NoneSelected() }

// NewSingle returns a single-value selection holding key
func NewSingle(key Key) Selection { return domain.NewSingle(key) }

// NewMultiple returns a multi-value selection in the given order
func NewMultiple(keys ...Key) Selection { return domain.NewMultiple(keys...) }

// NewEnvironment creates a listener registry for one host
func NewEnvironment() Environment { return eventbus.New() }

// New creates a dropdown. Call Close when the widget goes away.
func New(cfg Config, props Props) *Dropdown { return coordinator.New(cfg, props) }

// NewGroup creates a set of dropdowns of which at most one is open
func NewGroup() *Group { return coordinator.NewGroup() }
