package events

import (
	"fmt"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the publishing goroutine, in subscription order, so a published event is
// fully handled before Publish returns.
type Bus struct {
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners. Publishing on a nil bus is a no-op.
func (b *Bus) Publish(event interface{}) {
	if b == nil {
		return
	}
	for _, handler := range b.listeners[TypeOf(event)] {
		handler(event)
	}
}

// On subscribes a typed handler for events of type T
func On[T any](b *Bus, handler func(T)) {
	var zero T
	b.Subscribe(TypeOf(zero), func(e interface{}) {
		handler(e.(T))
	})
}

// TypeOf returns the event type key for an event value
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
