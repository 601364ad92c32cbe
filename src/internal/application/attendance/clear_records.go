package attendance

import (
	"log/slog"

	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// ClearRecordsCommand wipes the whole ledger: every attendance record and
// every point total. Admin only.
type ClearRecordsCommand struct {
	Actor identity.Actor
}

type ClearRecordsUseCase interface {
	Execute(cmd ClearRecordsCommand) error
}

// ClearRecordsUseCaseImpl runs the wipe as two separate transactions:
// delete all records, then zero all totals. The gap between them is a
// documented weakness rather than a bug to paper over; each phase is
// idempotent, so re-running after a phase-two failure converges to the
// empty ledger.
type ClearRecordsUseCaseImpl struct {
	memberRepo member.Repository
	recordRepo attendance.Repository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	auditor    *auditapp.Recorder
}

func NewClearRecordsUseCase(
	memberRepo member.Repository,
	recordRepo attendance.Repository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	auditor *auditapp.Recorder,
) ClearRecordsUseCase {
	return &ClearRecordsUseCaseImpl{
		memberRepo: memberRepo,
		recordRepo: recordRepo,
		txManager:  txManager,
		publisher:  publisher,
		auditor:    auditor,
	}
}

func (uc *ClearRecordsUseCaseImpl) Execute(cmd ClearRecordsCommand) error {
	if !cmd.Actor.IsAdmin() {
		return identity.ErrPermissionDenied.WithContext("action", "clear_records")
	}

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.recordRepo.DeleteAll(ctx)
	})
	if err != nil {
		return err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.memberRepo.ResetAllPoints(ctx)
	})
	if err != nil {
		// Records are gone but totals are not yet zeroed.
		return attendance.ErrPartialBulkFailure.WithContext("phase", "reset_totals", "cause", err.Error())
	}

	uc.auditor.Record(cmd.Actor.Name, "Limpeza Geral", audit.ModuleAttendance, "todos os registros e pontuações zerados")

	if err := uc.publisher.Publish(attendance.NewRecordsClearedEvent()); err != nil {
		slog.Warn("records cleared event publish failed", "error", err)
	}
	return nil
}
