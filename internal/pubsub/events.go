// Package pubsub provides a generic publish/subscribe event system used to
// fan log entries and watcher notifications out to the panel.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	LoggedEvent  EventType = "logged"  // a log entry was written
	ChangedEvent EventType = "changed" // a watched file changed
	ErrorEvent   EventType = "error"   // a background component failed
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
