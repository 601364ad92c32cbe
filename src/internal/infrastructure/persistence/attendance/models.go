package attendance

import (
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// RecordModel is the attendance table. The record key is the primary key,
// so the same (date, event, member) triple can never produce two rows.
//
// created_at is written explicitly from the domain record and never
// auto-stamped: edits and re-keying must carry the original timestamp.
type RecordModel struct {
	RecordKey     string    `gorm:"column:record_key;type:varchar(255);primaryKey"`
	MemberID      string    `gorm:"column:member_id;type:varchar(36);index;not null"`
	MemberName    string    `gorm:"column:member_name;type:varchar(255);not null"`
	EventType     string    `gorm:"column:event_type;type:varchar(64);not null"`
	Date          string    `gorm:"column:date;type:varchar(10);not null"`
	Status        string    `gorm:"column:status;type:varchar(16);not null"`
	Justification string    `gorm:"column:justification;type:text"`
	Points        int       `gorm:"column:points;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime:false;autoUpdateTime:false"`
}

func (RecordModel) TableName() string { return "attendance" }

func toModel(rec *attendance.Record) *RecordModel {
	return &RecordModel{
		RecordKey:     rec.Key(),
		MemberID:      rec.MemberID().String(),
		MemberName:    rec.MemberName(),
		EventType:     rec.EventType(),
		Date:          rec.Date(),
		Status:        string(rec.Status()),
		Justification: rec.Justification(),
		Points:        rec.Points(),
		CreatedAt:     rec.CreatedAt(),
	}
}

func (model *RecordModel) toDomain() (*attendance.Record, error) {
	id, err := member.MemberIDFromString(model.MemberID)
	if err != nil {
		return nil, err
	}
	return attendance.ReconstructRecord(
		model.RecordKey,
		id,
		model.MemberName,
		model.EventType,
		model.Date,
		attendance.Status(model.Status),
		model.Justification,
		model.Points,
		model.CreatedAt,
	), nil
}
