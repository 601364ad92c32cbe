package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

type auditDoc struct {
	ID        string    `bson:"_id"`
	User      string    `bson:"user"`
	Action    string    `bson:"action"`
	Module    string    `bson:"module"`
	Details   string    `bson:"details,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func toAuditDoc(e *audit.Entry) *auditDoc {
	return &auditDoc{
		ID:        e.ID,
		User:      e.User,
		Action:    e.Action,
		Module:    e.Module,
		Details:   e.Details,
		Timestamp: e.Timestamp,
	}
}

func (doc *auditDoc) toDomain() *audit.Entry {
	return &audit.Entry{
		ID:        doc.ID,
		User:      doc.User,
		Action:    doc.Action,
		Module:    doc.Module,
		Details:   doc.Details,
		Timestamp: doc.Timestamp,
	}
}

// AuditRepository implements audit.Repository on the mongo store.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{coll: store.AuditLogs()}
}

func (r *AuditRepository) Append(ctx shared.TransactionContext, e *audit.Entry) error {
	_, err := r.coll.InsertOne(resolveContext(ctx), toAuditDoc(e))
	return err
}

func (r *AuditRepository) FindRecent(ctx shared.TransactionContext, limit int) ([]*audit.Entry, error) {
	c := resolveContext(ctx)
	cursor, err := r.coll.Find(c, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c)

	var entries []*audit.Entry
	for cursor.Next(c) {
		var doc auditDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, doc.toDomain())
	}
	return entries, cursor.Err()
}
