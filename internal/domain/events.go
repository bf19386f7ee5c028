package domain

import "errors"

// ErrInvalidKey is returned when a host value cannot be used as an option key
var ErrInvalidKey = errors.New("invalid option key")

// EventType represents the type of environment event
type EventType string

// Event types
const (
	EventPointerDown EventType = "PointerDown"
	EventKeyDown     EventType = "KeyDown"
)

// DomainEvent is the interface for all environment events
type DomainEvent interface {
	Type() EventType
}

// Point is a position in host coordinates (cells for a terminal host)
type Point struct {
	X, Y int
}

// PointerDownEvent is emitted when a pointer is pressed anywhere in the environment
type PointerDownEvent struct {
	At Point
}

func (e PointerDownEvent) Type() EventType { return EventPointerDown }

// KeyCode names the keys the engine reacts to
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

func (k KeyCode) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	}
	return "unknown"
}

// KeyDownEvent is emitted when a key is pressed anywhere in the environment
type KeyDownEvent struct {
	Code KeyCode
}

func (e KeyDownEvent) Type() EventType { return EventKeyDown }
