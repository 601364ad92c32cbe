package attendance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appattendance "github.com/ministerio-uziel/portal/src/internal/application/attendance"
	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Mock repositories for exercising failure ordering without a store.

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) Save(ctx shared.TransactionContext, mem *member.Member) error {
	return m.Called(ctx, mem).Error(0)
}

func (m *mockMemberRepo) FindByID(ctx shared.TransactionContext, id member.MemberID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *mockMemberRepo) FindByName(ctx shared.TransactionContext, name string) (*member.Member, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *mockMemberRepo) FindAll(ctx shared.TransactionContext) ([]*member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*member.Member), args.Error(1)
}

func (m *mockMemberRepo) IncrementPoints(ctx shared.TransactionContext, id member.MemberID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *mockMemberRepo) ResetAllPoints(ctx shared.TransactionContext) error {
	return m.Called(ctx).Error(0)
}

func (m *mockMemberRepo) Delete(ctx shared.TransactionContext, id member.MemberID) error {
	return m.Called(ctx, id).Error(0)
}

type mockRecordRepo struct {
	mock.Mock
}

func (m *mockRecordRepo) FindByKey(ctx shared.TransactionContext, key string) (*attendance.Record, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Record), args.Error(1)
}

func (m *mockRecordRepo) FindAll(ctx shared.TransactionContext) ([]*attendance.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Record), args.Error(1)
}

func (m *mockRecordRepo) FindByMemberID(ctx shared.TransactionContext, id member.MemberID) ([]*attendance.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Record), args.Error(1)
}

func (m *mockRecordRepo) Upsert(ctx shared.TransactionContext, rec *attendance.Record) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockRecordRepo) Delete(ctx shared.TransactionContext, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRecordRepo) DeleteByMemberID(ctx shared.TransactionContext, id member.MemberID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockRecordRepo) DeleteAll(ctx shared.TransactionContext) error {
	return m.Called(ctx).Error(0)
}

// passthroughTxManager runs fn directly; errors pass through like a
// rolled-back transaction.
type passthroughTxManager struct{}

type fakeTxContext struct{}

func (passthroughTxManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return fn(fakeTxContext{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(shared.DomainEvent) error        { return nil }
func (noopPublisher) PublishBatch([]shared.DomainEvent) error { return nil }

type noopAuditRepo struct{}

func (noopAuditRepo) Append(shared.TransactionContext, *audit.Entry) error { return nil }
func (noopAuditRepo) FindRecent(shared.TransactionContext, int) ([]*audit.Entry, error) {
	return nil, nil
}

func newMockedRegister(memberRepo *mockMemberRepo, recordRepo *mockRecordRepo, eventCtx *attendance.EventContext) appattendance.RegisterAttendanceUseCase {
	return appattendance.NewRegisterAttendanceUseCase(
		memberRepo,
		recordRepo,
		passthroughTxManager{},
		eventCtx,
		noopPublisher{},
		auditapp.NewRecorder(noopAuditRepo{}),
		appattendance.NewAbsenceNotifier(appattendance.NotifierSettings{}, nil),
	)
}

func TestRegister_IncrementFailureAbortsBeforeUpsert(t *testing.T) {
	// Arrange
	memberRepo := new(mockMemberRepo)
	recordRepo := new(mockRecordRepo)
	eventCtx := attendance.NewEventContext()
	require.NoError(t, eventCtx.Configure(attendance.EventMissa, "2026-03-01"))

	m, err := member.NewMember("Ana Bonin", "")
	require.NoError(t, err)

	boom := errors.New("increment failed")
	memberRepo.On("FindByID", mock.Anything, m.MemberID()).Return(m, nil)
	recordRepo.On("FindByKey", mock.Anything, mock.Anything).Return(nil, attendance.ErrRecordNotFound)
	memberRepo.On("IncrementPoints", mock.Anything, m.MemberID(), 5).Return(boom)

	uc := newMockedRegister(memberRepo, recordRepo, eventCtx)

	// Act
	_, err = uc.Execute(appattendance.RegisterAttendanceCommand{
		Actor:    admin,
		MemberID: m.MemberID().String(),
		Status:   string(attendance.StatusAbsent),
	})

	// Assert: failure surfaces and the record write never happens.
	assert.ErrorIs(t, err, boom)
	recordRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRegister_DeltaAgainstExistingRecord(t *testing.T) {
	// Arrange: an existing unjustified Missa absence (5) being corrected to
	// Presente (0) must increment by -5.
	memberRepo := new(mockMemberRepo)
	recordRepo := new(mockRecordRepo)
	eventCtx := attendance.NewEventContext()
	require.NoError(t, eventCtx.Configure(attendance.EventMissa, "2026-03-01"))

	m, err := member.NewMember("Ana Bonin", "")
	require.NoError(t, err)
	existing, err := attendance.NewRecord(m.MemberID(), m.Name(), attendance.EventMissa, "2026-03-01", attendance.StatusAbsent, "", m.CreatedAt())
	require.NoError(t, err)

	memberRepo.On("FindByID", mock.Anything, m.MemberID()).Return(m, nil)
	recordRepo.On("FindByKey", mock.Anything, existing.Key()).Return(existing, nil)
	memberRepo.On("IncrementPoints", mock.Anything, m.MemberID(), -5).Return(nil)
	recordRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	uc := newMockedRegister(memberRepo, recordRepo, eventCtx)

	// Act
	res, err := uc.Execute(appattendance.RegisterAttendanceCommand{
		Actor:    admin,
		MemberID: m.MemberID().String(),
		Status:   string(attendance.StatusPresent),
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, 0, res.Points)
	memberRepo.AssertExpectations(t)
	recordRepo.AssertExpectations(t)
}
