package audit

import (
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
)

// EntryModel is the audit_logs table.
type EntryModel struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	User      string    `gorm:"column:user;type:varchar(255);not null"`
	Action    string    `gorm:"column:action;type:varchar(255);not null"`
	Module    string    `gorm:"column:module;type:varchar(64);not null"`
	Details   string    `gorm:"column:details;type:text"`
	Timestamp time.Time `gorm:"column:timestamp;index;not null"`
}

func (EntryModel) TableName() string { return "audit_logs" }

func toModel(e *audit.Entry) *EntryModel {
	return &EntryModel{
		ID:        e.ID,
		User:      e.User,
		Action:    e.Action,
		Module:    e.Module,
		Details:   e.Details,
		Timestamp: e.Timestamp,
	}
}

func (model *EntryModel) toDomain() *audit.Entry {
	return &audit.Entry{
		ID:        model.ID,
		User:      model.User,
		Action:    model.Action,
		Module:    model.Module,
		Details:   model.Details,
		Timestamp: model.Timestamp,
	}
}
