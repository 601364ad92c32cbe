package attendance

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// RegisterAttendanceCommand registers (or overwrites) the acting session's
// configured event for one member.
type RegisterAttendanceCommand struct {
	Actor         identity.Actor
	MemberID      string
	Status        string // Presente | Ausente
	Justification string // only meaningful with Ausente
}

type RegisterAttendanceResult struct {
	RecordKey string
	Points    int
	// Created is false when the command overwrote an existing record for
	// the same (date, event, member) triple.
	Created bool
}

type RegisterAttendanceUseCase interface {
	Execute(cmd RegisterAttendanceCommand) (*RegisterAttendanceResult, error)
}

// RegisterAttendanceUseCaseImpl orchestrates the registration flow: read
// the existing record and the member inside one transaction, apply the
// point delta atomically, write the record under its derived key.
type RegisterAttendanceUseCaseImpl struct {
	memberRepo member.Repository
	recordRepo attendance.Repository
	txManager  shared.TransactionManager
	eventCtx   *attendance.EventContext
	publisher  shared.EventPublisher
	auditor    *auditapp.Recorder
	notifier   *AbsenceNotifier
}

func NewRegisterAttendanceUseCase(
	memberRepo member.Repository,
	recordRepo attendance.Repository,
	txManager shared.TransactionManager,
	eventCtx *attendance.EventContext,
	publisher shared.EventPublisher,
	auditor *auditapp.Recorder,
	notifier *AbsenceNotifier,
) RegisterAttendanceUseCase {
	return &RegisterAttendanceUseCaseImpl{
		memberRepo: memberRepo,
		recordRepo: recordRepo,
		txManager:  txManager,
		eventCtx:   eventCtx,
		publisher:  publisher,
		auditor:    auditor,
		notifier:   notifier,
	}
}

// Execute runs the registration.
//
// The transaction reads the existing record for the derived key (if any),
// computes the point delta between old and new, increments the member's
// total by that delta and overwrites the record. Reading and incrementing
// in the same transaction is what keeps the totals invariant under
// concurrent registrations; the delta is applied even when it is zero, so
// the member lookup still guards against registering for a ghost id.
func (uc *RegisterAttendanceUseCaseImpl) Execute(cmd RegisterAttendanceCommand) (*RegisterAttendanceResult, error) {
	active, err := uc.eventCtx.Active()
	if err != nil {
		return nil, err
	}

	memberID, err := member.MemberIDFromString(cmd.MemberID)
	if err != nil {
		return nil, err
	}

	status := attendance.Status(cmd.Status)
	if !status.IsValid() {
		return nil, attendance.ErrInvalidStatus.WithContext("status", cmd.Status)
	}

	var (
		rec     *attendance.Record
		target  *member.Member
		created bool
	)

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		target, err = uc.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}

		key := attendance.DeriveRecordKey(active.Date, active.EventType, memberID)
		previousPoints := 0
		createdAt := time.Now()

		existing, err := uc.recordRepo.FindByKey(ctx, key)
		switch {
		case err == nil:
			previousPoints = existing.Points()
			createdAt = existing.CreatedAt()
		case errors.Is(err, attendance.ErrRecordNotFound):
			created = true
		default:
			return err
		}

		rec, err = attendance.NewRecord(
			memberID, target.Name(),
			active.EventType, active.Date,
			status, cmd.Justification,
			createdAt,
		)
		if err != nil {
			return err
		}

		if err := uc.memberRepo.IncrementPoints(ctx, memberID, rec.Points()-previousPoints); err != nil {
			return err
		}
		return uc.recordRepo.Upsert(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(
		cmd.Actor.Name,
		"Presença Registrada",
		audit.ModuleAttendance,
		fmt.Sprintf("%s: %s em %s (%s)", target.Name(), string(status), active.EventType, active.Date),
	)

	if err := uc.publisher.Publish(attendance.NewRecordSavedEvent(rec, created)); err != nil {
		slog.Warn("record saved event publish failed", "record_key", rec.Key(), "error", err)
	}

	if status == attendance.StatusAbsent {
		uc.notifier.MaybeNotifyAbsence(cmd.Actor, target, active)
	}

	return &RegisterAttendanceResult{
		RecordKey: rec.Key(),
		Points:    rec.Points(),
		Created:   created,
	}, nil
}
