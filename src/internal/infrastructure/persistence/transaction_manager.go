package persistence

import (
	"strings"
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
	"gorm.io/gorm"
)

// DefaultTxMaxRetries bounds the retry loop for conflicting concurrent
// writes before the failure surfaces as ErrTransactionConflict.
const DefaultTxMaxRetries = 3

// GORMTransactionManager implements shared.TransactionManager on a GORM
// connection. Each InTransaction call is all-or-nothing: GORM rolls back on
// error and on panic (re-raising the panic).
//
// SQLite reports concurrent-writer conflicts as busy/locked errors rather
// than serialization failures; those are retried with a short backoff and
// translated into the ledger's error taxonomy when exhausted.
type GORMTransactionManager struct {
	db         *gorm.DB
	maxRetries int
}

func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db, maxRetries: DefaultTxMaxRetries}
}

// NewGORMTransactionManagerWithRetries overrides the retry bound
// (configuration surface; zero retries is legal).
func NewGORMTransactionManagerWithRetries(db *gorm.DB, maxRetries int) *GORMTransactionManager {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &GORMTransactionManager{db: db, maxRetries: maxRetries}
}

// InTransaction runs fn atomically, retrying conflicting attempts up to the
// configured bound. Errors returned by fn abort immediately and pass
// through unchanged.
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	var lastErr error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 10 * time.Millisecond)
		}

		err := m.db.Transaction(func(tx *gorm.DB) error {
			return fn(NewGORMTransactionContext(tx))
		})
		if err == nil {
			return nil
		}
		if !isConflictError(err) {
			return err
		}
		lastErr = err
	}

	return shared.ErrTransactionConflict.WithContext(
		"attempts", m.maxRetries+1,
		"cause", lastErr.Error(),
	)
}

// isConflictError recognizes SQLite's concurrent-writer failures.
func isConflictError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}
