package events

import (
	"fmt"
	"sync"

	"pupfinder/internal/logging"
)

// Bus is a simple event bus for UI services
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type.
// eventType is the Go type name of the event, e.g. "search.PageLoadedEvent".
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventType := TypeOf(event)
	logging.Debug("ui event", "type", eventType)

	for _, handler := range b.listeners[eventType] {
		// Run handlers in goroutines to avoid blocking the UI loop
		go handler(event)
	}
}

// TypeOf returns the name events are subscribed under
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}

// Recorder is an EventBus that keeps every published event in order.
// Handy in tests and for diagnostics.
type Recorder struct {
	mu     sync.Mutex
	events []interface{}
}

func (r *Recorder) Publish(event interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder) Subscribe(eventType string, handler func(interface{})) {}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]interface{}(nil), r.events...)
}

// Last returns the most recent event, or nil
func (r *Recorder) Last() interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}
