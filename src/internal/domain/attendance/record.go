package attendance

import (
	"strings"
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// Record is one attendance entry for a (date, eventType, member) triple.
// Its key is derived from that triple, so re-registering the same triple
// overwrites rather than duplicates.
//
// points is always the scoring policy applied to the stored fields; the
// constructors are the only places that compute it.
type Record struct {
	key           string
	memberID      member.MemberID
	memberName    string // denormalized display-name snapshot
	eventType     string
	date          string // DateLayout, no time component
	status        Status
	justification string
	points        int
	createdAt     time.Time // immutable; survives edits and re-keying
}

// NewRecord builds a record for a registration or an edit.
//
// createdAt is the original creation timestamp when overwriting or moving an
// existing record, or time.Now() for a first registration — callers read the
// existing record inside the same transaction and pass its timestamp.
func NewRecord(
	memberID member.MemberID,
	memberName string,
	eventType, date string,
	status Status,
	justification string,
	createdAt time.Time,
) (*Record, error) {
	if strings.TrimSpace(eventType) == "" {
		return nil, ErrInvalidEventType
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus.WithContext("status", string(status))
	}
	if memberID.IsEmpty() {
		return nil, member.ErrInvalidMemberID
	}

	return &Record{
		key:           DeriveRecordKey(date, eventType, memberID),
		memberID:      memberID,
		memberName:    memberName,
		eventType:     eventType,
		date:          date,
		status:        status,
		justification: justification,
		points:        ComputePoints(eventType, status, justification),
		createdAt:     createdAt,
	}, nil
}

// ReconstructRecord rebuilds a record from the store without revalidating
// the scoring policy: stored points are the committed truth and reversing a
// deletion must use them, even if the scale has since changed.
func ReconstructRecord(
	key string,
	memberID member.MemberID,
	memberName string,
	eventType, date string,
	status Status,
	justification string,
	points int,
	createdAt time.Time,
) *Record {
	return &Record{
		key:           key,
		memberID:      memberID,
		memberName:    memberName,
		eventType:     eventType,
		date:          date,
		status:        status,
		justification: justification,
		points:        points,
		createdAt:     createdAt,
	}
}

func (r *Record) Key() string               { return r.key }
func (r *Record) MemberID() member.MemberID { return r.memberID }
func (r *Record) MemberName() string        { return r.memberName }
func (r *Record) EventType() string         { return r.eventType }
func (r *Record) Date() string              { return r.date }
func (r *Record) Status() Status            { return r.status }
func (r *Record) Justification() string     { return r.justification }
func (r *Record) Points() int               { return r.points }
func (r *Record) CreatedAt() time.Time      { return r.createdAt }

// IsJustified reports whether the record carries a non-empty justification.
func (r *Record) IsJustified() bool {
	return strings.TrimSpace(r.justification) != ""
}
