package member

import (
	"strings"
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Member is the aggregate mirroring a portal user account 1:1.
//
// Invariant: totalPoints equals the sum of points over all attendance
// records whose memberId is this member's id. The invariant is maintained
// incrementally by the attendance ledger through atomic increments inside
// store transactions — never by this aggregate recomputing the scalar —
// so Member does not expose a totalPoints setter.
//
// The display name doubles as the natural key linking a member to its user
// account (the account store is external), which is why it is normalized on
// construction: uppercased and trimmed, the way the portal registers users.
type Member struct {
	memberID    MemberID
	name        string
	contact     string // WhatsApp contact; empty when not registered
	totalPoints int

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewMember creates a member for a freshly created user account.
// The point total starts at zero.
func NewMember(name, contact string) (*Member, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "" {
		return nil, ErrInvalidName
	}

	now := time.Now()
	m := &Member{
		memberID:  NewMemberID(),
		name:      normalized,
		contact:   strings.TrimSpace(contact),
		createdAt: now,
		updatedAt: now,
	}
	m.addEvent(NewMemberRegisteredEvent(m.memberID, m.name))
	return m, nil
}

// ReconstructMember rebuilds the aggregate from the store. Unlike NewMember
// it emits no event and accepts the persisted point total as-is; negative
// totals are tolerated (the store does not enforce the floor) so corrupt
// data remains visible instead of being masked.
func ReconstructMember(
	memberID MemberID,
	name, contact string,
	totalPoints int,
	createdAt, updatedAt time.Time,
) (*Member, error) {
	if memberID.IsEmpty() {
		return nil, ErrInvalidMemberID.WithContext("reason", "empty member ID in store")
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName.WithContext("member_id", memberID.String())
	}
	return &Member{
		memberID:    memberID,
		name:        name,
		contact:     contact,
		totalPoints: totalPoints,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (m *Member) MemberID() MemberID   { return m.memberID }
func (m *Member) Name() string         { return m.name }
func (m *Member) Contact() string      { return m.contact }
func (m *Member) TotalPoints() int     { return m.totalPoints }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
func (m *Member) UpdatedAt() time.Time { return m.updatedAt }

// UpdateContact replaces the WhatsApp contact used by absence notifications.
func (m *Member) UpdateContact(contact string) {
	m.contact = strings.TrimSpace(contact)
	m.updatedAt = time.Now()
}

func (m *Member) addEvent(event shared.DomainEvent) {
	m.events = append(m.events, event)
}

// PullEvents returns pending domain events and clears the list. Called by
// the application layer after a successful commit, so events are published
// at most once and only for persisted state.
func (m *Member) PullEvents() []shared.DomainEvent {
	events := m.events
	m.events = nil
	return events
}
