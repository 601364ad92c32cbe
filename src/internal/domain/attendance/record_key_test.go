package attendance

import (
	"fmt"
	"testing"

	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/stretchr/testify/assert"
)

func TestDeriveRecordKey_Format(t *testing.T) {
	id := member.NewMemberID()

	key := DeriveRecordKey("2024-05-05", EventMissa, id)

	assert.Equal(t, fmt.Sprintf("2024-05-05_Missa_%s", id.String()), key)
}

func TestDeriveRecordKey_NormalizesWhitespace(t *testing.T) {
	id := member.NewMemberID()

	key := DeriveRecordKey("2024-05-05", "Ensaio  Geral", id)

	assert.Equal(t, fmt.Sprintf("2024-05-05_Ensaio-Geral_%s", id.String()), key)
	assert.NotContains(t, key, " ")
}

func TestDeriveRecordKey_SameTripleSameKey(t *testing.T) {
	id := member.NewMemberID()

	a := DeriveRecordKey("2024-05-05", EventMissa, id)
	b := DeriveRecordKey("2024-05-05", EventMissa, id)
	c := DeriveRecordKey("2024-05-12", EventMissa, id)

	assert.Equal(t, a, b, "identity is deterministic per (date, event, member)")
	assert.NotEqual(t, a, c)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-05-05"))
	assert.ErrorIs(t, ValidateDate("05/05/2024"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate(""), ErrInvalidDate)
}
