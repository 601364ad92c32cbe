package member

import (
	"time"

	"github.com/google/uuid"
)

// MemberRegisteredEvent fires when a user account gains its member mirror.
type MemberRegisteredEvent struct {
	eventID    string
	memberID   MemberID
	name       string
	occurredAt time.Time
}

func NewMemberRegisteredEvent(memberID MemberID, name string) *MemberRegisteredEvent {
	return &MemberRegisteredEvent{
		eventID:    uuid.New().String(),
		memberID:   memberID,
		name:       name,
		occurredAt: time.Now(),
	}
}

func (e *MemberRegisteredEvent) EventID() string       { return e.eventID }
func (e *MemberRegisteredEvent) EventType() string     { return "member.registered" }
func (e *MemberRegisteredEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *MemberRegisteredEvent) AggregateID() string   { return e.memberID.String() }
func (e *MemberRegisteredEvent) Name() string          { return e.name }

// MemberDeletedEvent fires after a member and its attendance history are
// removed in the user-deletion cascade.
type MemberDeletedEvent struct {
	eventID        string
	memberID       MemberID
	name           string
	recordsDeleted int
	occurredAt     time.Time
}

func NewMemberDeletedEvent(memberID MemberID, name string, recordsDeleted int) *MemberDeletedEvent {
	return &MemberDeletedEvent{
		eventID:        uuid.New().String(),
		memberID:       memberID,
		name:           name,
		recordsDeleted: recordsDeleted,
		occurredAt:     time.Now(),
	}
}

func (e *MemberDeletedEvent) EventID() string       { return e.eventID }
func (e *MemberDeletedEvent) EventType() string     { return "member.deleted" }
func (e *MemberDeletedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *MemberDeletedEvent) AggregateID() string   { return e.memberID.String() }
func (e *MemberDeletedEvent) Name() string          { return e.name }
func (e *MemberDeletedEvent) RecordsDeleted() int   { return e.recordsDeleted }
