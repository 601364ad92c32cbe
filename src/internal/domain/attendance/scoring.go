package attendance

import "strings"

// Status is the recorded attendance status. The Portuguese literals are part
// of the stored document format and must not be translated.
type Status string

const (
	StatusPresent Status = "Presente"
	StatusAbsent  Status = "Ausente"
)

// IsValid reports whether s is one of the two recognized statuses.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Well-known event types. Event types are free text — unknown types are
// accepted and simply carry no penalty.
const (
	EventMissa  = "Missa"
	EventEnsaio = "Ensaio"
	EventEvento = "Evento"
)

// ComputePoints is the scoring policy: the single source of truth for the
// point scale, reused by registration, edits, and nothing else.
//
// Rules, in order: presence costs nothing; a justified absence costs
// nothing; otherwise the penalty depends on the event type
// (Missa=5, Ensaio=4, Evento=10, anything else 0).
//
// Total, deterministic, side-effect-free. The scale is an observable
// contract of the stored records; do not change it without migrating data.
func ComputePoints(eventType string, status Status, justification string) int {
	if status == StatusPresent {
		return 0
	}
	if strings.TrimSpace(justification) != "" {
		return 0
	}
	switch eventType {
	case EventMissa:
		return 5
	case EventEnsaio:
		return 4
	case EventEvento:
		return 10
	default:
		return 0
	}
}
