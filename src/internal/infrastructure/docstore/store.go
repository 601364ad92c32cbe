// Package docstore is the MongoDB backend. It implements the same
// repository and transaction interfaces as the SQLite persistence layer, so
// the application layer never knows which store it runs on.
//
// Collections are namespaced by application id, mirroring the portal's
// multi-tenant document layout.
package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

const connectTimeout = 10 * time.Second

// Store wraps a connected MongoDB database and hands out the portal's
// collections.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	appID  string
}

// Connect dials MongoDB and verifies the connection with a ping. appID
// namespaces the collection names; empty means no namespace.
func Connect(ctx context.Context, uri, database, appID string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, shared.ErrStoreUnavailable.WithContext("cause", err.Error())
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, shared.ErrStoreUnavailable.WithContext("cause", err.Error())
	}

	slog.Debug("mongodb store ready", "database", database, "app_id", appID)
	return &Store{
		client: client,
		db:     client.Database(database),
		appID:  appID,
	}, nil
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Client exposes the raw client for session management.
func (s *Store) Client() *mongo.Client { return s.client }

func (s *Store) collection(name string) *mongo.Collection {
	if s.appID != "" {
		name = fmt.Sprintf("%s.%s", s.appID, name)
	}
	return s.db.Collection(name)
}

// Members is the member totals collection.
func (s *Store) Members() *mongo.Collection { return s.collection("members") }

// Attendance is the attendance record collection.
func (s *Store) Attendance() *mongo.Collection { return s.collection("attendance") }

// AuditLogs is the append-only audit collection.
func (s *Store) AuditLogs() *mongo.Collection { return s.collection("audit_logs") }
