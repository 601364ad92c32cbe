package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// RecordSavedEvent fires after a registration or edit commits. Created is
// true for a first registration of the triple, false for an overwrite/edit.
type RecordSavedEvent struct {
	eventID    string
	recordKey  string
	memberID   member.MemberID
	status     Status
	points     int
	created    bool
	occurredAt time.Time
}

func NewRecordSavedEvent(rec *Record, created bool) *RecordSavedEvent {
	return &RecordSavedEvent{
		eventID:    uuid.New().String(),
		recordKey:  rec.Key(),
		memberID:   rec.MemberID(),
		status:     rec.Status(),
		points:     rec.Points(),
		created:    created,
		occurredAt: time.Now(),
	}
}

func (e *RecordSavedEvent) EventID() string           { return e.eventID }
func (e *RecordSavedEvent) EventType() string         { return "attendance.record_saved" }
func (e *RecordSavedEvent) OccurredAt() time.Time     { return e.occurredAt }
func (e *RecordSavedEvent) AggregateID() string       { return e.recordKey }
func (e *RecordSavedEvent) MemberID() member.MemberID { return e.memberID }
func (e *RecordSavedEvent) Status() Status            { return e.status }
func (e *RecordSavedEvent) Points() int               { return e.points }
func (e *RecordSavedEvent) Created() bool             { return e.created }

// RecordDeletedEvent fires after a single record is deleted and its points
// reversed.
type RecordDeletedEvent struct {
	eventID        string
	recordKey      string
	memberID       member.MemberID
	pointsReversed int
	occurredAt     time.Time
}

func NewRecordDeletedEvent(rec *Record) *RecordDeletedEvent {
	return &RecordDeletedEvent{
		eventID:        uuid.New().String(),
		recordKey:      rec.Key(),
		memberID:       rec.MemberID(),
		pointsReversed: rec.Points(),
		occurredAt:     time.Now(),
	}
}

func (e *RecordDeletedEvent) EventID() string           { return e.eventID }
func (e *RecordDeletedEvent) EventType() string         { return "attendance.record_deleted" }
func (e *RecordDeletedEvent) OccurredAt() time.Time     { return e.occurredAt }
func (e *RecordDeletedEvent) AggregateID() string       { return e.recordKey }
func (e *RecordDeletedEvent) MemberID() member.MemberID { return e.memberID }
func (e *RecordDeletedEvent) PointsReversed() int       { return e.pointsReversed }

// RecordsClearedEvent fires after the clear-all bulk operation completes
// both phases.
type RecordsClearedEvent struct {
	eventID    string
	occurredAt time.Time
}

func NewRecordsClearedEvent() *RecordsClearedEvent {
	return &RecordsClearedEvent{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
	}
}

func (e *RecordsClearedEvent) EventID() string       { return e.eventID }
func (e *RecordsClearedEvent) EventType() string     { return "attendance.records_cleared" }
func (e *RecordsClearedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *RecordsClearedEvent) AggregateID() string   { return "attendance" }
