package attendance

import (
	"fmt"
	"regexp"
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// DateLayout is the calendar-date format used throughout the ledger
// (no time component).
const DateLayout = "2006-01-02"

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveRecordKey builds the natural document identity of an attendance
// record: "{date}_{eventType}_{memberId}" with every whitespace run in the
// concatenated string replaced by a single hyphen.
//
// The format is a wire contract shared with existing stored data — the key
// doubles as the uniqueness constraint (at most one record per date, event
// and member) and makes registration idempotent per triple. Replicate it
// byte-exactly or old documents become unreachable.
func DeriveRecordKey(date, eventType string, memberID member.MemberID) string {
	raw := fmt.Sprintf("%s_%s_%s", date, eventType, memberID.String())
	return whitespaceRun.ReplaceAllString(raw, "-")
}

// ValidateDate checks the calendar-date wire format.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate.WithContext("date", date)
	}
	return nil
}
