// Package audit holds the portal's append-only action log. Every ledger
// mutation appends an entry after its transaction commits; append failures
// are logged and never propagated back into the operation that triggered
// them.
package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Portal module names recorded with each entry. Stored values; Portuguese
// by contract with existing data.
const (
	ModuleAttendance     = "Controle de Presença"
	ModuleUserManagement = "Gestão de Usuários"
)

// Entry is one audit-log line: who did what, where, and when.
type Entry struct {
	ID        string
	User      string
	Action    string
	Module    string
	Details   string
	Timestamp time.Time
}

// NewEntry stamps a fresh entry.
func NewEntry(user, action, module, details string) *Entry {
	return &Entry{
		ID:        uuid.New().String(),
		User:      user,
		Action:    action,
		Module:    module,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// Repository persists audit entries. Appends run outside the ledger's
// transactions on purpose: an audit failure must never roll back the
// audited operation.
type Repository interface {
	Append(ctx shared.TransactionContext, e *Entry) error

	// FindRecent returns up to limit entries, newest first.
	FindRecent(ctx shared.TransactionContext, limit int) ([]*Entry, error)
}
