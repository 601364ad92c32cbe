package member

import (
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Repository is the member half of the ledger store adapter.
//
// Transaction participation follows the shared convention: writes require a
// ctx from TransactionManager.InTransaction; reads accept nil for
// auto-commit access. IncrementPoints additionally refuses a nil ctx with
// ErrTransactionRequired, because an increment outside the transaction that
// also mutates the attendance record would break the running-total
// invariant under concurrency.
type Repository interface {
	// Save creates the member document; ErrMemberAlreadyExists when a
	// member with the same name already exists.
	Save(ctx shared.TransactionContext, m *Member) error

	// FindByID returns ErrMemberNotFound when absent.
	FindByID(ctx shared.TransactionContext, id MemberID) (*Member, error)

	// FindByName looks a member up by its normalized display name (the
	// account link key). ErrMemberNotFound when absent.
	FindByName(ctx shared.TransactionContext, name string) (*Member, error)

	// FindAll returns every member ordered by name.
	FindAll(ctx shared.TransactionContext) ([]*Member, error)

	// IncrementPoints applies totalPoints += delta as an atomic
	// store-level increment. Never implemented as read-modify-write.
	IncrementPoints(ctx shared.TransactionContext, id MemberID, delta int) error

	// ResetAllPoints sets every member's totalPoints to zero (second phase
	// of the clear-all bulk operation).
	ResetAllPoints(ctx shared.TransactionContext) error

	// Delete removes the member document. ErrMemberNotFound when absent.
	Delete(ctx shared.TransactionContext, id MemberID) error
}
