package audit

import (
	"gorm.io/gorm"

	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// RepositoryImpl implements audit.Repository on GORM.
type RepositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) audit.Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

func (r *RepositoryImpl) Append(ctx shared.TransactionContext, e *audit.Entry) error {
	return r.getDB(ctx).Create(toModel(e)).Error
}

func (r *RepositoryImpl) FindRecent(ctx shared.TransactionContext, limit int) ([]*audit.Entry, error) {
	var models []EntryModel
	result := r.getDB(ctx).Order("timestamp DESC").Limit(limit).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*audit.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, models[i].toDomain())
	}
	return entries, nil
}
