package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMarker struct{}

var errBadID = &DomainError{Code: "TEST_INVALID_ID", Message: "invalid id"}

func TestNewEntityID_Unique(t *testing.T) {
	a := NewEntityID[testMarker]()
	b := NewEntityID[testMarker]()

	assert.False(t, a.IsEmpty())
	assert.False(t, a.Equals(b), "two generated IDs should differ")
}

func TestEntityIDFromString_RoundTrip(t *testing.T) {
	original := NewEntityID[testMarker]()

	parsed, err := EntityIDFromString[testMarker](original.String(), errBadID)
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
}

func TestEntityIDFromString_Invalid(t *testing.T) {
	_, err := EntityIDFromString[testMarker]("not-a-uuid", errBadID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadID)
}

func TestEntityID_ZeroValueIsEmpty(t *testing.T) {
	var id EntityID[testMarker]
	assert.True(t, id.IsEmpty())
}
