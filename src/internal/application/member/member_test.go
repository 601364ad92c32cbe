package member_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	appmember "github.com/ministerio-uziel/portal/src/internal/application/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/infrastructure/eventbus"
	"github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence"
	attendancestore "github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence/attendance"
	auditstore "github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence/audit"
	memberstore "github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence/member"
)

var (
	admin   = identity.Actor{Name: "julio", Role: identity.RoleAdmin}
	regular = identity.Actor{Name: "ana", Role: identity.RoleMember}
)

type stack struct {
	db       *gorm.DB
	members  member.Repository
	records  attendance.Repository
	register appmember.RegisterMemberUseCase
	remove   appmember.DeleteMemberUseCase
}

func newStack(t *testing.T) *stack {
	t.Helper()

	db, err := persistence.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	members := memberstore.NewRepository(db)
	records := attendancestore.NewRepository(db)
	txManager := persistence.NewGORMTransactionManager(db)
	bus := eventbus.New()
	auditor := auditapp.NewRecorder(auditstore.NewRepository(db))

	return &stack{
		db:       db,
		members:  members,
		records:  records,
		register: appmember.NewRegisterMemberUseCase(members, txManager, bus, auditor),
		remove:   appmember.NewDeleteMemberUseCase(members, records, txManager, bus, auditor),
	}
}

func TestRegisterMember_NormalizesName(t *testing.T) {
	s := newStack(t)

	res, err := s.register.Execute(appmember.RegisterMemberCommand{
		Actor: admin, Name: "  ana bonin ", Contact: "5544999990000",
	})
	require.NoError(t, err)
	assert.Equal(t, "ANA BONIN", res.Name)

	stored, err := s.members.FindByName(nil, "ANA BONIN")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.TotalPoints())
	assert.Equal(t, "5544999990000", stored.Contact())
}

func TestRegisterMember_EmptyName(t *testing.T) {
	s := newStack(t)

	_, err := s.register.Execute(appmember.RegisterMemberCommand{Actor: admin, Name: "   "})
	assert.ErrorIs(t, err, member.ErrInvalidName)
}

func TestRegisterMember_DuplicateName(t *testing.T) {
	s := newStack(t)

	_, err := s.register.Execute(appmember.RegisterMemberCommand{Actor: admin, Name: "Ana Bonin"})
	require.NoError(t, err)

	_, err = s.register.Execute(appmember.RegisterMemberCommand{Actor: admin, Name: "ANA BONIN"})
	assert.ErrorIs(t, err, member.ErrMemberAlreadyExists)
}

func TestDeleteMember_CascadesHistory(t *testing.T) {
	s := newStack(t)

	res, err := s.register.Execute(appmember.RegisterMemberCommand{Actor: admin, Name: "Ana Bonin"})
	require.NoError(t, err)
	id, err := member.MemberIDFromString(res.MemberID)
	require.NoError(t, err)

	// Two history entries for the member being removed.
	ctx := persistence.NewGORMTransactionContext(s.db)
	for _, date := range []string{"2026-03-01", "2026-03-08"} {
		rec, err := attendance.NewRecord(id, "ANA BONIN", attendance.EventMissa, date, attendance.StatusAbsent, "", time.Now())
		require.NoError(t, err)
		require.NoError(t, s.records.Upsert(ctx, rec))
	}

	deleted, err := s.remove.Execute(appmember.DeleteMemberCommand{Actor: admin, Name: "ANA BONIN"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted.RecordsDeleted)

	_, err = s.members.FindByName(nil, "ANA BONIN")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	remaining, err := s.records.FindByMemberID(nil, id)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteMember_RequiresAdmin(t *testing.T) {
	s := newStack(t)

	_, err := s.remove.Execute(appmember.DeleteMemberCommand{Actor: regular, Name: "ANA BONIN"})
	assert.ErrorIs(t, err, identity.ErrPermissionDenied)
}

func TestDeleteMember_UnknownName(t *testing.T) {
	s := newStack(t)

	_, err := s.remove.Execute(appmember.DeleteMemberCommand{Actor: admin, Name: "NOBODY"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
