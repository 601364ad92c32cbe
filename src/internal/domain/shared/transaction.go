package shared

// TransactionContext is a marker interface carrying an open store
// transaction across repository calls without leaking the backend type
// (gorm.DB, mongo session) into the domain layer.
//
// Convention, enforced by the repositories:
//   - Mutating operations require a non-nil ctx obtained from
//     TransactionManager.InTransaction; point increments return
//     ErrTransactionRequired otherwise.
//   - Read operations accept a nil ctx and then run outside any
//     transaction, on the adapter's own connection. Reads that feed a
//     mutation in the same unit of work must receive the transaction's ctx,
//     never a cached snapshot, or the conflict-detection scope is lost.
type TransactionContext interface {
}

// TransactionManager runs a unit of work atomically against the store.
//
// fn either commits as a whole or leaves no effect. Implementations retry a
// bounded number of times when the backend reports a concurrent-write
// conflict and then fail with ErrTransactionConflict; any error from fn
// aborts immediately and is returned unchanged.
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
