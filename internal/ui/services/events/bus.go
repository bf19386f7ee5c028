package events

import (
	"fmt"
	"sync"
)

// Bus is a simple synchronous event bus for UI services. Handlers run on the
// publisher's goroutine, in subscription order, before Publish returns.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]listener
	nextID    int
}

type listener struct {
	id int
	fn func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]listener),
	}
}

// Subscribe registers a listener for an event type and returns a function
// that removes it
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, fn: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		ls := b.listeners[eventType]
		for i, l := range ls {
			if l.id == id {
				b.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]listener(nil), b.listeners[EventType(event)]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h.fn(event)
	}
}

// EventType extracts the type name from an event, e.g. "selection.ChangedEvent"
func EventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
