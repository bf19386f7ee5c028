// Package emitter turns selection mutations into host change notifications:
// at most one per discrete user action, and none for mutations the host
// itself caused.
package emitter

import (
	"selectkit/internal/domain"
	"selectkit/internal/ui/services/events"
	"selectkit/internal/ui/services/selection"
)

// ChangeFunc receives the new value in the dropdown's mode
type ChangeFunc func(domain.Selection)

// Emitter collects selection events raised during an action and reports the
// net change once the action completes
type Emitter struct {
	onChange       ChangeFunc
	emitOnReselect bool

	depth      int
	dirty      bool
	reselected bool
	emitted    int
}

// New creates an emitter listening to selection events on bus
func New(bus events.EventBus) *Emitter {
	e := &Emitter{}
	mark := func(interface{}) {
		if e.depth > 0 {
			e.dirty = true
		}
	}
	bus.Subscribe(events.EventType(selection.SelectionChangedEvent{}), mark)
	bus.Subscribe(events.EventType(selection.SelectionClearedEvent{}), mark)
	return e
}

// SetOnChange sets the host callback; nil disables notifications
func (e *Emitter) SetOnChange(fn ChangeFunc) {
	e.onChange = fn
}

// SetEmitOnReselect makes picking the already-selected value in Single mode
// notify the host
func (e *Emitter) SetEmitOnReselect(v bool) {
	e.emitOnReselect = v
}

// MarkReselect records that the current action re-picked the selected value
func (e *Emitter) MarkReselect() {
	if e.depth > 0 {
		e.reselected = true
	}
}

// Track runs action as one discrete user action. read returns the current
// selection. Nested calls fold into the outermost one.
func (e *Emitter) Track(read func() domain.Selection, action func()) {
	if e.depth > 0 {
		action()
		return
	}

	pre := read()
	e.dirty, e.reselected = false, false
	e.depth++
	func() {
		defer func() { e.depth-- }()
		action()
	}()

	post := read()
	changed := e.dirty && !post.Equal(pre)
	reselect := e.reselected && e.emitOnReselect
	e.dirty, e.reselected = false, false

	if !changed && !reselect {
		return
	}
	e.emitted++
	if e.onChange != nil {
		e.onChange(post)
	}
}

// Emitted returns how many notifications have been sent
func (e *Emitter) Emitted() int {
	return e.emitted
}
