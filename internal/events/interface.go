package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent delivers an event to every current listener
	SendEvent(event Event) error

	// Listen registers a listener; the returned channel closes when ctx is
	// canceled or the publisher shuts down
	Listen(ctx context.Context) (<-chan Event, error)

	// Close drops every listener and rejects further sends
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
