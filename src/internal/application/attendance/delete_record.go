package attendance

import (
	"fmt"
	"log/slog"

	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// DeleteRecordCommand removes one attendance record and reverses its
// points. Admin only.
type DeleteRecordCommand struct {
	Actor     identity.Actor
	RecordKey string
}

type DeleteRecordResult struct {
	PointsReversed int
}

type DeleteRecordUseCase interface {
	Execute(cmd DeleteRecordCommand) (*DeleteRecordResult, error)
}

type DeleteRecordUseCaseImpl struct {
	memberRepo member.Repository
	recordRepo attendance.Repository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	auditor    *auditapp.Recorder
}

func NewDeleteRecordUseCase(
	memberRepo member.Repository,
	recordRepo attendance.Repository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	auditor *auditapp.Recorder,
) DeleteRecordUseCase {
	return &DeleteRecordUseCaseImpl{
		memberRepo: memberRepo,
		recordRepo: recordRepo,
		txManager:  txManager,
		publisher:  publisher,
		auditor:    auditor,
	}
}

// Execute deletes the record after reversing its stored points inside the
// same transaction. The stored value is reversed, not a recomputation:
// even if the scale has since changed, the total goes back exactly to what
// it was before the record existed. A zero-point record skips the
// increment, so deleting a Presente entry touches no totals.
func (uc *DeleteRecordUseCaseImpl) Execute(cmd DeleteRecordCommand) (*DeleteRecordResult, error) {
	if !cmd.Actor.IsAdmin() {
		return nil, identity.ErrPermissionDenied.WithContext("action", "delete_record")
	}

	var deleted *attendance.Record

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		rec, err := uc.recordRepo.FindByKey(ctx, cmd.RecordKey)
		if err != nil {
			return err
		}
		deleted = rec

		if rec.Points() != 0 {
			if err := uc.memberRepo.IncrementPoints(ctx, rec.MemberID(), -rec.Points()); err != nil {
				return err
			}
		}
		return uc.recordRepo.Delete(ctx, rec.Key())
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(
		cmd.Actor.Name,
		"Registro Excluído",
		audit.ModuleAttendance,
		fmt.Sprintf("%s: %s em %s (%s)", deleted.MemberName(), string(deleted.Status()), deleted.EventType(), deleted.Date()),
	)

	if err := uc.publisher.Publish(attendance.NewRecordDeletedEvent(deleted)); err != nil {
		slog.Warn("record deleted event publish failed", "record_key", deleted.Key(), "error", err)
	}

	return &DeleteRecordResult{PointsReversed: deleted.Points()}, nil
}
