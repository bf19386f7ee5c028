package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"selectkit/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPointerDown = domain.EventPointerDown
	EventKeyDown     = domain.EventKeyDown
)

// Re-export domain event types
type PointerDownEvent = domain.PointerDownEvent
type KeyDownEvent = domain.KeyDownEvent

// EventHandler is a function that handles environment events
type EventHandler func(DomainEvent)

// EventBus is the process-wide registry for environment listeners. A host
// publishes every pointer press and key press it sees; widgets subscribe only
// while they need to observe them.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	ListenerCount(eventType EventType) int
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers, synchronously and in
// subscription order
func (b *bus) Publish(event DomainEvent) {
	// Snapshot so handlers may unsubscribe while we iterate
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	handlersCopy := make([]subscription, len(handlers))
	copy(handlersCopy, handlers)
	b.mu.RUnlock()

	for _, sub := range handlersCopy {
		if !b.live(event.Type(), sub.id) {
			// released by an earlier handler of this same event
			continue
		}
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

func (b *bus) live(eventType EventType, id uint64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.handlers[eventType] {
		if sub.id == id {
			return true
		}
	}
	return false
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function; calling it more than once is harmless
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, sub := range handlers {
			if sub.id == id {
				b.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
				break
			}
		}
		if len(b.handlers[eventType]) == 0 {
			delete(b.handlers, eventType)
		}
	}
}

// ListenerCount returns the number of live subscriptions for eventType
func (b *bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
