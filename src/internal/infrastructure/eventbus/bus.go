// Package eventbus is the in-process implementation of the shared event
// interfaces. Handlers run synchronously on the publisher's goroutine;
// publish happens after commit, so a slow handler delays rendering, never
// the transaction.
package eventbus

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Bus fans events out to the handlers subscribed to their type.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]shared.EventHandler)}
}

func (b *Bus) Subscribe(eventType string, handler shared.EventHandler) error {
	if eventType == "" {
		return errors.New("eventbus: empty event type")
	}
	if handler == nil {
		return errors.New("eventbus: nil handler")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Publish delivers event to every subscriber of its type. All handlers run
// even when one fails; the failures come back joined.
func (b *Bus) Publish(event shared.DomainEvent) error {
	if event == nil {
		return errors.New("eventbus: nil event")
	}

	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h.Handle(event); err != nil {
			slog.Warn("event handler failed",
				"event_type", event.EventType(),
				"event_id", event.EventID(),
				"error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) PublishBatch(events []shared.DomainEvent) error {
	var errs []error
	for _, event := range events {
		if err := b.Publish(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
