package shared

import "time"

// DomainEvent is the base interface for change events emitted after a
// successful store commit. The rendering collaborator subscribes to these
// instead of polling; see EventPublisher.
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
}

// EventPublisher fans committed change events out to subscribers.
// Defined here (usage side); implemented by the infrastructure layer.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}

// EventSubscriber registers handlers for a given event type.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}

// EventHandler processes a single event type.
type EventHandler interface {
	Handle(event DomainEvent) error
	EventType() string
}
