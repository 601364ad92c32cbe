package shared

import (
	"github.com/google/uuid"
)

// EntityID is a generic, immutable entity identifier backed by a UUID v4.
//
// The type parameter T is a marker type used only for compile-time
// distinction: EntityID[member.Marker] and EntityID[other.Marker] cannot be
// mixed up or compared. Each bounded context declares its own alias:
//
//	type Marker struct{}
//	type MemberID = shared.EntityID[Marker]
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID generates a new random entity ID.
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.New()}
}

// EntityIDFromString parses a UUID string into an entity ID.
//
// errTemplate is the domain error to return on parse failure; each bounded
// context supplies its own (shared must not depend on business errors).
// If the template supports WithContext, the raw input is attached.
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", err.Error(),
			)
		}
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: id}, nil
}

// String returns the lowercase UUID representation.
func (e EntityID[T]) String() string {
	return e.value.String()
}

// Equals reports whether two IDs of the same entity type are equal.
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty reports whether the ID is the zero value (unset or failed parse).
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}
