package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

type stubEvent struct {
	id        string
	eventType string
}

func (e stubEvent) EventID() string       { return e.id }
func (e stubEvent) EventType() string     { return e.eventType }
func (e stubEvent) OccurredAt() time.Time { return time.Now() }
func (e stubEvent) AggregateID() string   { return "agg-1" }

type recordingHandler struct {
	eventType string
	seen      []shared.DomainEvent
	err       error
}

func (h *recordingHandler) Handle(event shared.DomainEvent) error {
	h.seen = append(h.seen, event)
	return h.err
}

func (h *recordingHandler) EventType() string { return h.eventType }

func TestPublish_DeliversToSubscribedType(t *testing.T) {
	bus := New()
	saved := &recordingHandler{eventType: "attendance.record_saved"}
	deleted := &recordingHandler{eventType: "attendance.record_deleted"}
	require.NoError(t, bus.Subscribe(saved.EventType(), saved))
	require.NoError(t, bus.Subscribe(deleted.EventType(), deleted))

	require.NoError(t, bus.Publish(stubEvent{id: "1", eventType: "attendance.record_saved"}))

	assert.Len(t, saved.seen, 1)
	assert.Empty(t, deleted.seen)
}

func TestPublish_NoSubscribersIsFine(t *testing.T) {
	bus := New()
	assert.NoError(t, bus.Publish(stubEvent{id: "1", eventType: "member.registered"}))
}

func TestPublish_AllHandlersRunDespiteFailure(t *testing.T) {
	bus := New()
	boom := errors.New("boom")
	failing := &recordingHandler{eventType: "member.registered", err: boom}
	ok := &recordingHandler{eventType: "member.registered"}
	require.NoError(t, bus.Subscribe(failing.EventType(), failing))
	require.NoError(t, bus.Subscribe(ok.EventType(), ok))

	err := bus.Publish(stubEvent{id: "1", eventType: "member.registered"})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, ok.seen, 1)
}

func TestSubscribe_Validation(t *testing.T) {
	bus := New()
	assert.Error(t, bus.Subscribe("", &recordingHandler{}))
	assert.Error(t, bus.Subscribe("member.registered", nil))
}

func TestPublishBatch(t *testing.T) {
	bus := New()
	h := &recordingHandler{eventType: "attendance.record_saved"}
	require.NoError(t, bus.Subscribe(h.EventType(), h))

	events := []shared.DomainEvent{
		stubEvent{id: "1", eventType: "attendance.record_saved"},
		stubEvent{id: "2", eventType: "attendance.record_saved"},
	}
	require.NoError(t, bus.PublishBatch(events))
	assert.Len(t, h.seen, 2)
}
