package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

func TestMemberDocMapping(t *testing.T) {
	m, err := member.NewMember("Ana Bonin", "5544999990000")
	require.NoError(t, err)

	doc := toMemberDoc(m)
	assert.Equal(t, m.MemberID().String(), doc.ID)
	assert.Equal(t, "ANA BONIN", doc.Name)
	assert.Equal(t, "5544999990000", doc.WhatsApp)
	assert.Equal(t, 0, doc.TotalPoints)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.True(t, back.MemberID().Equals(m.MemberID()))
	assert.Equal(t, m.Name(), back.Name())
}

func TestRecordDocMapping(t *testing.T) {
	id := member.NewMemberID()
	createdAt := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	rec, err := attendance.NewRecord(id, "ANA BONIN", attendance.EventMissa, "2026-03-01", attendance.StatusAbsent, "", createdAt)
	require.NoError(t, err)

	doc := toRecordDoc(rec)
	assert.Equal(t, rec.Key(), doc.ID)
	assert.Equal(t, id.String(), doc.MemberID)
	assert.Equal(t, 5, doc.Points)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Equal(t, rec.Key(), back.Key())
	assert.Equal(t, rec.Points(), back.Points())
	assert.True(t, back.CreatedAt().Equal(createdAt))
}

func TestRecordDocMapping_BadMemberID(t *testing.T) {
	doc := &recordDoc{ID: "2026-03-01_Missa_x", MemberID: "not-a-uuid"}
	_, err := doc.toDomain()
	assert.Error(t, err)
}
