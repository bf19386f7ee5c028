package coordinator

import (
	"log"

	"github.com/google/uuid"

	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/ui/services/catalog"
	"selectkit/internal/ui/services/emitter"
	"selectkit/internal/ui/services/events"
	"selectkit/internal/ui/services/navigation"
	"selectkit/internal/ui/services/search"
	"selectkit/internal/ui/services/selection"
	"selectkit/internal/ui/viewmodels"
)

// Dropdown is the interaction controller of a dropdown/combobox. It owns the
// open/closed state, keyboard focus and dismissal listeners, and drives the
// selection services. All methods must be called from the UI goroutine.
type Dropdown struct {
	// Services
	Catalog    *catalog.Catalog
	Search     *search.Service
	Selection  *selection.Service
	Navigation *navigation.Service
	Emitter    *emitter.Emitter

	// Dependencies
	bus   events.EventBus
	env   eventbus.EventBus
	hit   HitTester
	group *Group
	warn  catalog.WarnFunc

	id            string
	props         Props
	state         State
	searchFocused bool
	onOpenChange  func(bool)
	listeners     []func() // environment registrations held while Open
	leaveGroup    func()
	torn          bool
}

// New creates a dropdown from cfg and the initial host props
func New(cfg Config, props Props) *Dropdown {
	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	warn := cfg.Warn
	if warn == nil {
		warn = log.Printf
	}
	id := cfg.ID
	if id == "" {
		id = "selectkit-" + uuid.NewString()
	}

	cat := catalog.New(bus, warn)
	d := &Dropdown{
		Catalog:      cat,
		Search:       search.NewService(bus),
		Selection:    selection.NewService(bus, cat, props.Mode),
		Navigation:   navigation.NewService(bus),
		Emitter:      emitter.New(bus),
		bus:          bus,
		env:          cfg.Environment,
		hit:          cfg.HitTester,
		warn:         warn,
		id:           id,
		onOpenChange: cfg.OnOpenChange,
	}
	d.Emitter.SetOnChange(cfg.OnChange)

	// Wire up service dependencies
	d.wireServices()

	d.applyProps(props, true)

	if cfg.Group != nil {
		d.group = cfg.Group
		d.leaveGroup = cfg.Group.add(d)
	}
	if d.env != nil && d.hit == nil {
		warn("selectkit: dropdown %s has an environment but no hit tester; outside presses will not dismiss it", id)
	}
	return d
}

// wireServices connects services with their dependencies
func (d *Dropdown) wireServices() {
	// Search filters whatever the catalog currently holds
	d.Search.SetOptionsFunction(func() []domain.OptionRecord {
		return d.Catalog.Options()
	})

	// Navigation walks the visible options
	d.Navigation.SetQueryFunctions(
		func() int { return d.Search.VisibleCount() },
		func(i int) bool { return d.Search.Enabled(i) },
	)
}

// SetProps applies a host refresh. It never notifies the host of a change.
func (d *Dropdown) SetProps(props Props) {
	d.applyProps(props, false)
}

func (d *Dropdown) applyProps(props Props, initial bool) {
	var focusedKey domain.Key
	if opt, ok := d.Search.At(d.Navigation.GetFocus()); ok {
		focusedKey = opt.Value
	}

	prev := d.props
	d.props = props
	d.Emitter.SetEmitOnReselect(props.EmitOnReselect)

	if initial || props.Mode != prev.Mode {
		d.Selection.SetMode(props.Mode)
	}

	d.Catalog.Set(props.Options)
	d.Search.Refresh()

	if props.Value != nil {
		d.Selection.Reconcile(*props.Value)
	}

	if !props.Searchable && d.Search.GetTerm() != "" {
		d.Search.Clear()
		d.searchFocused = false
	}

	if d.state == Open {
		// keep focus on the same option when it survived the refresh
		if idx := d.Search.IndexOf(focusedKey); !focusedKey.IsZero() && idx >= 0 {
			d.Navigation.MoveToIndex(idx)
		}
		d.Navigation.Clamp()
		if props.Disabled {
			d.close()
		}
	}
}

// ActivateTrigger handles a click, Enter or Space on the trigger
func (d *Dropdown) ActivateTrigger() {
	if d.props.Disabled || d.torn {
		return
	}
	if d.state == Open {
		d.close()
		return
	}
	d.open()
}

// ChangeSearch handles edits in the search field. Typing into a closed
// searchable dropdown opens it.
func (d *Dropdown) ChangeSearch(term string) {
	if !d.props.Searchable || d.props.Disabled || d.torn {
		return
	}
	if d.state == Closed {
		d.open()
	}
	if !d.Search.SetTerm(term) {
		return
	}
	if term == "" {
		d.Navigation.Reset()
		return
	}
	d.Navigation.FocusFirst()
}

// ActivateOption handles a click on the visible option at index
func (d *Dropdown) ActivateOption(index int) {
	if d.state != Open {
		return
	}
	opt, ok := d.Search.At(index)
	if !ok {
		d.warn("selectkit: activate option: index %d out of range [0,%d)", index, d.Search.VisibleCount())
		return
	}
	d.selectKey(opt.Value)
}

// HoverOption moves focus to the option under the pointer
func (d *Dropdown) HoverOption(index int) {
	if d.state != Open {
		return
	}
	d.Navigation.MoveToIndex(index)
}

// KeyDown handles a key pressed while the dropdown has focus
func (d *Dropdown) KeyDown(code domain.KeyCode) {
	if d.props.Disabled || d.torn {
		return
	}

	if d.state == Closed {
		switch code {
		case domain.KeyEnter, domain.KeySpace:
			d.open()
		}
		return
	}

	switch code {
	case domain.KeyUp:
		d.Navigation.Navigate(navigation.DirectionUp)
	case domain.KeyDown:
		d.Navigation.Navigate(navigation.DirectionDown)
	case domain.KeyHome:
		d.Navigation.Navigate(navigation.DirectionHome)
	case domain.KeyEnd:
		d.Navigation.Navigate(navigation.DirectionEnd)
	case domain.KeyEnter:
		d.selectFocused()
	case domain.KeySpace:
		// in a searchable dropdown space belongs to the search text
		if !d.props.Searchable {
			d.selectFocused()
		}
	case domain.KeyEscape, domain.KeyTab:
		d.close()
	}
}

// ClearSelection empties the selection as a user action
func (d *Dropdown) ClearSelection() {
	if d.props.Disabled || d.torn {
		return
	}
	d.Emitter.Track(d.Selection.Selection, func() {
		d.Selection.Clear()
	})
}

// Dismiss closes the dropdown without touching the selection
func (d *Dropdown) Dismiss() {
	d.close()
}

// Close tears the dropdown down, releasing every listener it holds. It is
// safe to call more than once.
func (d *Dropdown) Close() {
	d.close()
	if d.leaveGroup != nil {
		d.leaveGroup()
		d.leaveGroup = nil
	}
	d.torn = true
}

// ViewModel returns a snapshot for the presentation layer
func (d *Dropdown) ViewModel() viewmodels.ViewModel {
	return viewmodels.Build(d)
}

func (d *Dropdown) selectFocused() {
	opt, ok := d.Search.At(d.Navigation.GetFocus())
	if !ok {
		return
	}
	d.selectKey(opt.Value)
}

func (d *Dropdown) selectKey(key domain.Key) {
	d.Emitter.Track(d.Selection.Selection, func() {
		r := d.Selection.Toggle(key)
		if r.Reselected {
			d.Emitter.MarkReselect()
		}
		if r.Close {
			d.close()
			return
		}
		d.Navigation.Clamp()
	})
}

func (d *Dropdown) open() {
	if d.state == Open {
		return
	}
	d.state = Open
	d.acquireListeners()

	if d.props.Searchable {
		d.searchFocused = true
		d.Navigation.Reset()
	} else {
		d.Navigation.FocusFirst()
	}

	if d.group != nil {
		d.group.opened(d)
	}
	if d.onOpenChange != nil {
		d.onOpenChange(true)
	}
}

func (d *Dropdown) close() {
	if d.state == Closed {
		return
	}
	d.state = Closed
	d.releaseListeners()

	d.searchFocused = false
	d.Search.Clear()
	d.Navigation.Reset()

	if d.onOpenChange != nil {
		d.onOpenChange(false)
	}
}

// acquireListeners registers the outside-press and Escape listeners. Any
// stale registration is dropped first so there is only ever one of each.
func (d *Dropdown) acquireListeners() {
	d.releaseListeners()
	if d.env == nil {
		return
	}
	d.listeners = append(d.listeners,
		d.env.Subscribe(eventbus.EventPointerDown, d.onPointerDown),
		d.env.Subscribe(eventbus.EventKeyDown, d.onEnvironmentKey),
	)
}

func (d *Dropdown) releaseListeners() {
	listeners := d.listeners
	d.listeners = nil
	for _, release := range listeners {
		release()
	}
}

func (d *Dropdown) onPointerDown(e eventbus.DomainEvent) {
	ev, ok := e.(eventbus.PointerDownEvent)
	if !ok || d.state != Open || d.hit == nil {
		return
	}
	if d.hit.Contains(RegionTrigger, ev) || d.hit.Contains(RegionMenu, ev) {
		return
	}
	d.close()
}

func (d *Dropdown) onEnvironmentKey(e eventbus.DomainEvent) {
	if ev, ok := e.(eventbus.KeyDownEvent); ok && ev.Code == domain.KeyEscape {
		d.close()
	}
}

// Read side, used by the view model

// ID returns the widget id
func (d *Dropdown) ID() string { return d.id }

// State returns the interaction state
func (d *Dropdown) State() State { return d.state }

// IsOpen reports whether the menu is open
func (d *Dropdown) IsOpen() bool { return d.state == Open }

// IsDisabled reports whether the whole control is disabled
func (d *Dropdown) IsDisabled() bool { return d.props.Disabled }

// Mode returns the selection mode
func (d *Dropdown) Mode() domain.Mode { return d.Selection.Mode() }

// IsSearchable reports whether the dropdown has a search field
func (d *Dropdown) IsSearchable() bool { return d.props.Searchable }

// SearchFocused reports whether the search field holds text focus
func (d *Dropdown) SearchFocused() bool { return d.searchFocused }

// SearchTerm returns the current search term
func (d *Dropdown) SearchTerm() string { return d.Search.GetTerm() }

// Visible returns the visible options
func (d *Dropdown) Visible() []domain.OptionRecord { return d.Search.Visible() }

// FocusIndex returns the focused visible index, or -1
func (d *Dropdown) FocusIndex() int { return d.Navigation.GetFocus() }

// Value returns the current selection
func (d *Dropdown) Value() domain.Selection { return d.Selection.Selection() }

// Summary returns the trigger text
func (d *Dropdown) Summary() string { return d.Selection.Describe(d.props.Placeholder) }

// ListenerCount returns the number of environment registrations held
func (d *Dropdown) ListenerCount() int { return len(d.listeners) }
