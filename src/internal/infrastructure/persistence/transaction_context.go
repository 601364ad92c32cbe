package persistence

import (
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext wraps the *gorm.DB of an open transaction behind
// the shared marker interface, so the domain layer never sees GORM.
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext wraps db as a shared.TransactionContext.
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB exposes the transaction handle to the persistence subpackages.
// Intentionally not part of shared.TransactionContext: repositories assert
// for it locally, the domain layer cannot.
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}
