package attendance

import (
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Repository is the attendance half of the ledger store adapter, keyed by
// the derived record key (see DeriveRecordKey).
//
// Reads accept a nil TransactionContext (auto-commit); the ledger's
// transactional flows always pass the transaction's ctx so that the read
// participates in the same conflict-detection scope as the increment and
// the upsert.
type Repository interface {
	// FindByKey returns ErrRecordNotFound when absent.
	FindByKey(ctx shared.TransactionContext, key string) (*Record, error)

	// FindAll returns every record, newest first (date desc, then
	// createdAt desc) — the order the records view renders.
	FindAll(ctx shared.TransactionContext) ([]*Record, error)

	// FindByMemberID returns the member's records, newest first.
	FindByMemberID(ctx shared.TransactionContext, id member.MemberID) ([]*Record, error)

	// Upsert writes the record at its key, overwriting any existing
	// document (the second registration of a triple replaces the first).
	Upsert(ctx shared.TransactionContext, rec *Record) error

	// Delete removes the record at key. ErrRecordNotFound when absent.
	Delete(ctx shared.TransactionContext, key string) error

	// DeleteByMemberID removes all of a member's records (cascade on
	// member deletion) and reports how many were removed.
	DeleteByMemberID(ctx shared.TransactionContext, id member.MemberID) (int, error)

	// DeleteAll empties the collection (first phase of clear-all).
	// Deleting an already-empty collection is not an error.
	DeleteAll(ctx shared.TransactionContext) error
}
