package member

import (
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Marker distinguishes MemberID from other entity IDs at compile time.
type Marker struct{}

// MemberID is the store-assigned identity of a member document.
type MemberID = shared.EntityID[Marker]

// NewMemberID generates a new member ID (UUID v4).
func NewMemberID() MemberID {
	return shared.NewEntityID[Marker]()
}

// MemberIDFromString parses a member ID received from the store or a
// command; returns ErrInvalidMemberID on malformed input.
func MemberIDFromString(s string) (MemberID, error) {
	return shared.EntityIDFromString[Marker](s, ErrInvalidMemberID)
}
