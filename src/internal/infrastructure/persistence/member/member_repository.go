package member

import (
	"errors"
	"strings"

	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext is the persistence package's context shape,
// asserted locally to avoid an import cycle.
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// RepositoryImpl implements member.Repository on GORM.
type RepositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) member.Repository {
	return &RepositoryImpl{db: db}
}

// getDB resolves the connection: the open transaction when ctx is one of
// ours, the auto-commit connection otherwise.
func (r *RepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

func (r *RepositoryImpl) Save(ctx shared.TransactionContext, m *member.Member) error {
	result := r.getDB(ctx).Create(toModel(m))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return member.ErrMemberAlreadyExists.WithContext("name", m.Name())
		}
		return result.Error
	}
	return nil
}

func (r *RepositoryImpl) FindByID(ctx shared.TransactionContext, id member.MemberID) (*member.Member, error) {
	var model MemberModel
	result := r.getDB(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound.WithContext("member_id", id.String())
		}
		return nil, result.Error
	}
	return model.toDomain()
}

func (r *RepositoryImpl) FindByName(ctx shared.TransactionContext, name string) (*member.Member, error) {
	var model MemberModel
	result := r.getDB(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound.WithContext("name", name)
		}
		return nil, result.Error
	}
	return model.toDomain()
}

func (r *RepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*member.Member, error) {
	var models []MemberModel
	result := r.getDB(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*member.Member, 0, len(models))
	for i := range models {
		m, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// IncrementPoints issues total_points = total_points + delta as a single
// UPDATE. The read-modify-write form is deliberately impossible here: under
// concurrent registrations for the same member it loses updates, so this is
// the only way the ledger mutates a point total. Requires a transaction.
func (r *RepositoryImpl) IncrementPoints(ctx shared.TransactionContext, id member.MemberID, delta int) error {
	gormCtx, ok := ctx.(gormTransactionContext)
	if !ok {
		return shared.ErrTransactionRequired.WithContext("operation", "IncrementPoints")
	}

	result := gormCtx.GetDB().Model(&MemberModel{}).
		Where("id = ?", id.String()).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", id.String())
	}
	return nil
}

func (r *RepositoryImpl) ResetAllPoints(ctx shared.TransactionContext) error {
	// Session with AllowGlobalUpdate: this is the one legitimate
	// whole-table UPDATE (clear-all phase two).
	return r.getDB(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&MemberModel{}).
		UpdateColumn("total_points", 0).Error
}

func (r *RepositoryImpl) Delete(ctx shared.TransactionContext, id member.MemberID) error {
	result := r.getDB(ctx).Where("id = ?", id.String()).Delete(&MemberModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", id.String())
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}
