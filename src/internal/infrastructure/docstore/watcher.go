package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// ChangeEvent is a store-level change surfaced from a change stream. The
// rendering collaborator subscribes to these instead of polling the
// collections.
type ChangeEvent struct {
	id         string
	eventType  string
	occurredAt time.Time
	documentID string
}

func (e ChangeEvent) EventID() string       { return e.id }
func (e ChangeEvent) EventType() string     { return e.eventType }
func (e ChangeEvent) OccurredAt() time.Time { return e.occurredAt }
func (e ChangeEvent) AggregateID() string   { return e.documentID }

// Watcher tails a collection's change stream and republishes every change
// on the event bus as "docstore.<collection>.<operation>".
type Watcher struct {
	coll      *mongo.Collection
	name      string
	publisher shared.EventPublisher
}

func NewWatcher(coll *mongo.Collection, name string, publisher shared.EventPublisher) *Watcher {
	return &Watcher{coll: coll, name: name, publisher: publisher}
}

// Watch blocks until ctx is cancelled or the stream fails. Publish errors
// are logged and the stream keeps going; a lost subscriber must not stall
// the store.
func (w *Watcher) Watch(ctx context.Context) error {
	stream, err := w.coll.Watch(ctx, mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return shared.ErrStoreUnavailable.WithContext("collection", w.name, "cause", err.Error())
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var change struct {
			OperationType string `bson:"operationType"`
			DocumentKey   struct {
				ID string `bson:"_id"`
			} `bson:"documentKey"`
		}
		if err := stream.Decode(&change); err != nil {
			slog.Warn("change stream decode failed", "collection", w.name, "error", err)
			continue
		}

		event := ChangeEvent{
			id:         uuid.New().String(),
			eventType:  fmt.Sprintf("docstore.%s.%s", w.name, change.OperationType),
			occurredAt: time.Now(),
			documentID: change.DocumentKey.ID,
		}
		if err := w.publisher.Publish(event); err != nil {
			slog.Warn("change event publish failed", "collection", w.name, "error", err)
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return shared.ErrStoreUnavailable.WithContext("collection", w.name, "cause", err.Error())
	}
	return nil
}
