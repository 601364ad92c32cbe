package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// memberDoc is the member document. Field names are the wire contract with
// the portal's existing documents; whatsapp is the contact number.
type memberDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	WhatsApp    string    `bson:"whatsapp,omitempty"`
	TotalPoints int       `bson:"totalPoints"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func toMemberDoc(m *member.Member) *memberDoc {
	return &memberDoc{
		ID:          m.MemberID().String(),
		Name:        m.Name(),
		WhatsApp:    m.Contact(),
		TotalPoints: m.TotalPoints(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func (doc *memberDoc) toDomain() (*member.Member, error) {
	id, err := member.MemberIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	return member.ReconstructMember(id, doc.Name, doc.WhatsApp, doc.TotalPoints, doc.CreatedAt, doc.UpdatedAt)
}

// MemberRepository implements member.Repository on the mongo store.
type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{coll: store.Members()}
}

// EnsureIndexes creates the unique name index; the display name is the
// natural key linking a member to its user account.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return shared.ErrStoreUnavailable.WithContext("cause", err.Error())
	}
	return nil
}

func (r *MemberRepository) Save(ctx shared.TransactionContext, m *member.Member) error {
	_, err := r.coll.InsertOne(resolveContext(ctx), toMemberDoc(m))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return member.ErrMemberAlreadyExists.WithContext("name", m.Name())
		}
		return err
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx shared.TransactionContext, id member.MemberID) (*member.Member, error) {
	return r.findOne(resolveContext(ctx), bson.M{"_id": id.String()}, "member_id", id.String())
}

func (r *MemberRepository) FindByName(ctx shared.TransactionContext, name string) (*member.Member, error) {
	return r.findOne(resolveContext(ctx), bson.M{"name": name}, "name", name)
}

func (r *MemberRepository) findOne(ctx context.Context, filter bson.M, ctxKey, ctxVal string) (*member.Member, error) {
	var doc memberDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, member.ErrMemberNotFound.WithContext(ctxKey, ctxVal)
		}
		return nil, err
	}
	return doc.toDomain()
}

func (r *MemberRepository) FindAll(ctx shared.TransactionContext) ([]*member.Member, error) {
	c := resolveContext(ctx)
	cursor, err := r.coll.Find(c, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c)

	var members []*member.Member
	for cursor.Next(c) {
		var doc memberDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		m, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, cursor.Err()
}

// IncrementPoints applies $inc inside the session's transaction, the
// document-store form of the single-statement increment. Requires a
// transaction context.
func (r *MemberRepository) IncrementPoints(ctx shared.TransactionContext, id member.MemberID, delta int) error {
	sc, ok := ctx.(mongoSessionContext)
	if !ok {
		return shared.ErrTransactionRequired.WithContext("operation", "IncrementPoints")
	}

	result, err := r.coll.UpdateByID(sc.Context(), id.String(), bson.M{
		"$inc": bson.M{"totalPoints": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", id.String())
	}
	return nil
}

func (r *MemberRepository) ResetAllPoints(ctx shared.TransactionContext) error {
	_, err := r.coll.UpdateMany(resolveContext(ctx), bson.M{}, bson.M{
		"$set": bson.M{"totalPoints": 0, "updatedAt": time.Now()},
	})
	return err
}

func (r *MemberRepository) Delete(ctx shared.TransactionContext, id member.MemberID) error {
	result, err := r.coll.DeleteOne(resolveContext(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", id.String())
	}
	return nil
}
