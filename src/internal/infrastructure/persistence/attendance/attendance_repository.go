package attendance

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// gormTransactionContext is the persistence package's context shape,
// asserted locally to avoid an import cycle.
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// RepositoryImpl implements attendance.Repository on GORM.
type RepositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) attendance.Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

func (r *RepositoryImpl) FindByKey(ctx shared.TransactionContext, key string) (*attendance.Record, error) {
	var model RecordModel
	result := r.getDB(ctx).Where("record_key = ?", key).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrRecordNotFound.WithContext("record_key", key)
		}
		return nil, result.Error
	}
	return model.toDomain()
}

// FindAll returns every record, newest event first, ties broken by the
// moment of registration.
func (r *RepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*attendance.Record, error) {
	var models []RecordModel
	result := r.getDB(ctx).Order("date DESC, created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDomainSlice(models)
}

func (r *RepositoryImpl) FindByMemberID(ctx shared.TransactionContext, id member.MemberID) ([]*attendance.Record, error) {
	var models []RecordModel
	result := r.getDB(ctx).
		Where("member_id = ?", id.String()).
		Order("date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDomainSlice(models)
}

// Upsert writes the record under its derived key, overwriting an existing
// row wholesale. The domain record already carries the preserved createdAt
// when it replaces an earlier one.
func (r *RepositoryImpl) Upsert(ctx shared.TransactionContext, rec *attendance.Record) error {
	return r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		UpdateAll: true,
	}).Create(toModel(rec)).Error
}

func (r *RepositoryImpl) Delete(ctx shared.TransactionContext, key string) error {
	result := r.getDB(ctx).Where("record_key = ?", key).Delete(&RecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return attendance.ErrRecordNotFound.WithContext("record_key", key)
	}
	return nil
}

// DeleteByMemberID removes every record of one member and reports how many
// rows went away. Zero is not an error: a member may have no history yet.
func (r *RepositoryImpl) DeleteByMemberID(ctx shared.TransactionContext, id member.MemberID) (int, error) {
	result := r.getDB(ctx).Where("member_id = ?", id.String()).Delete(&RecordModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *RepositoryImpl) DeleteAll(ctx shared.TransactionContext) error {
	return r.getDB(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&RecordModel{}).Error
}

func toDomainSlice(models []RecordModel) ([]*attendance.Record, error) {
	records := make([]*attendance.Record, 0, len(models))
	for i := range models {
		rec, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
