package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// recordDoc is the attendance document; _id is the derived record key, so
// overwriting the same (date, event, member) triple is structural.
type recordDoc struct {
	ID            string    `bson:"_id"`
	MemberID      string    `bson:"memberId"`
	MemberName    string    `bson:"memberName"`
	EventType     string    `bson:"eventType"`
	Date          string    `bson:"date"`
	Status        string    `bson:"status"`
	Justification string    `bson:"justification,omitempty"`
	Points        int       `bson:"points"`
	CreatedAt     time.Time `bson:"createdAt"`
}

func toRecordDoc(rec *attendance.Record) *recordDoc {
	return &recordDoc{
		ID:            rec.Key(),
		MemberID:      rec.MemberID().String(),
		MemberName:    rec.MemberName(),
		EventType:     rec.EventType(),
		Date:          rec.Date(),
		Status:        string(rec.Status()),
		Justification: rec.Justification(),
		Points:        rec.Points(),
		CreatedAt:     rec.CreatedAt(),
	}
}

func (doc *recordDoc) toDomain() (*attendance.Record, error) {
	id, err := member.MemberIDFromString(doc.MemberID)
	if err != nil {
		return nil, err
	}
	return attendance.ReconstructRecord(
		doc.ID,
		id,
		doc.MemberName,
		doc.EventType,
		doc.Date,
		attendance.Status(doc.Status),
		doc.Justification,
		doc.Points,
		doc.CreatedAt,
	), nil
}

// AttendanceRepository implements attendance.Repository on the mongo store.
type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(store *Store) *AttendanceRepository {
	return &AttendanceRepository{coll: store.Attendance()}
}

var recordSort = bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}

func (r *AttendanceRepository) FindByKey(ctx shared.TransactionContext, key string) (*attendance.Record, error) {
	var doc recordDoc
	err := r.coll.FindOne(resolveContext(ctx), bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, attendance.ErrRecordNotFound.WithContext("record_key", key)
		}
		return nil, err
	}
	return doc.toDomain()
}

func (r *AttendanceRepository) FindAll(ctx shared.TransactionContext) ([]*attendance.Record, error) {
	return r.find(resolveContext(ctx), bson.M{})
}

func (r *AttendanceRepository) FindByMemberID(ctx shared.TransactionContext, id member.MemberID) ([]*attendance.Record, error) {
	return r.find(resolveContext(ctx), bson.M{"memberId": id.String()})
}

func (r *AttendanceRepository) find(ctx context.Context, filter bson.M) ([]*attendance.Record, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(recordSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*attendance.Record
	for cursor.Next(ctx) {
		var doc recordDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		rec, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cursor.Err()
}

func (r *AttendanceRepository) Upsert(ctx shared.TransactionContext, rec *attendance.Record) error {
	doc := toRecordDoc(rec)
	_, err := r.coll.ReplaceOne(
		resolveContext(ctx),
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *AttendanceRepository) Delete(ctx shared.TransactionContext, key string) error {
	result, err := r.coll.DeleteOne(resolveContext(ctx), bson.M{"_id": key})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return attendance.ErrRecordNotFound.WithContext("record_key", key)
	}
	return nil
}

func (r *AttendanceRepository) DeleteByMemberID(ctx shared.TransactionContext, id member.MemberID) (int, error) {
	result, err := r.coll.DeleteMany(resolveContext(ctx), bson.M{"memberId": id.String()})
	if err != nil {
		return 0, err
	}
	return int(result.DeletedCount), nil
}

func (r *AttendanceRepository) DeleteAll(ctx shared.TransactionContext) error {
	_, err := r.coll.DeleteMany(resolveContext(ctx), bson.M{})
	return err
}
