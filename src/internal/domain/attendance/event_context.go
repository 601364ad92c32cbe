package attendance

import (
	"strings"
	"sync"
)

// ActiveEvent is the event type + date new registrations apply to.
type ActiveEvent struct {
	EventType string
	Date      string
}

// EventContext is per-session state: the "configure event" action sets it,
// every subsequent registration in the same session consumes it. It is never
// persisted and never shared across sessions; a new session starts
// unconfigured. Guarded by a mutex because the store's push notifications
// may re-render (and thus read) concurrently with a command.
type EventContext struct {
	mu     sync.Mutex
	active *ActiveEvent
}

func NewEventContext() *EventContext {
	return &EventContext{}
}

// Configure sets the active event. The event type is free text (the portal
// offers Missa/Ensaio/Evento but admins may type others); the date must be
// a calendar date.
func (c *EventContext) Configure(eventType, date string) error {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return ErrInvalidEventType
	}
	if err := ValidateDate(date); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = &ActiveEvent{EventType: eventType, Date: date}
	return nil
}

// Active returns the configured event or ErrEventNotConfigured.
func (c *EventContext) Active() (ActiveEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return ActiveEvent{}, ErrEventNotConfigured
	}
	return *c.active, nil
}

// Reset clears the context (session end / logout).
func (c *EventContext) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
}
