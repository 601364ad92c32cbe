package member

import (
	"time"

	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// MemberModel is the members table. Infrastructure-only; the repository
// maps it to the domain aggregate.
//
// Constraints:
//   - id: primary key (UUID string)
//   - name: unique index — the display name is the natural key linking a
//     member to its user account
type MemberModel struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
	Contact     string    `gorm:"column:contact;type:varchar(32)"`
	TotalPoints int       `gorm:"column:total_points;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (MemberModel) TableName() string { return "members" }

func toModel(m *member.Member) *MemberModel {
	return &MemberModel{
		ID:          m.MemberID().String(),
		Name:        m.Name(),
		Contact:     m.Contact(),
		TotalPoints: m.TotalPoints(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func (model *MemberModel) toDomain() (*member.Member, error) {
	id, err := member.MemberIDFromString(model.ID)
	if err != nil {
		return nil, err
	}
	return member.ReconstructMember(
		id,
		model.Name,
		model.Contact,
		model.TotalPoints,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
