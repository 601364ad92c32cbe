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

// UpdateRecordCommand edits an existing record's date, event type, status
// or justification. The member the record belongs to never changes.
type UpdateRecordCommand struct {
	Actor         identity.Actor
	RecordKey     string
	EventType     string
	Date          string
	Status        string
	Justification string
}

type UpdateRecordResult struct {
	RecordKey string // differs from the command's key when the edit re-keyed
	Points    int
}

type UpdateRecordUseCase interface {
	Execute(cmd UpdateRecordCommand) (*UpdateRecordResult, error)
}

// UpdateRecordUseCaseImpl re-derives the key from the edited fields. When
// the key changes the old record is deleted and the new one written in the
// same transaction, so the triple-uniqueness of keys survives edits.
type UpdateRecordUseCaseImpl struct {
	memberRepo member.Repository
	recordRepo attendance.Repository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	auditor    *auditapp.Recorder
}

func NewUpdateRecordUseCase(
	memberRepo member.Repository,
	recordRepo attendance.Repository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	auditor *auditapp.Recorder,
) UpdateRecordUseCase {
	return &UpdateRecordUseCaseImpl{
		memberRepo: memberRepo,
		recordRepo: recordRepo,
		txManager:  txManager,
		publisher:  publisher,
		auditor:    auditor,
	}
}

func (uc *UpdateRecordUseCaseImpl) Execute(cmd UpdateRecordCommand) (*UpdateRecordResult, error) {
	status := attendance.Status(cmd.Status)
	if !status.IsValid() {
		return nil, attendance.ErrInvalidStatus.WithContext("status", cmd.Status)
	}

	var updated *attendance.Record

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		original, err := uc.recordRepo.FindByKey(ctx, cmd.RecordKey)
		if err != nil {
			return err
		}

		// Member name and creation timestamp carry over from the original.
		updated, err = attendance.NewRecord(
			original.MemberID(), original.MemberName(),
			cmd.EventType, cmd.Date,
			status, cmd.Justification,
			original.CreatedAt(),
		)
		if err != nil {
			return err
		}

		if err := uc.memberRepo.IncrementPoints(ctx, original.MemberID(), updated.Points()-original.Points()); err != nil {
			return err
		}

		if updated.Key() != original.Key() {
			if err := uc.recordRepo.Delete(ctx, original.Key()); err != nil {
				return err
			}
		}
		return uc.recordRepo.Upsert(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(
		cmd.Actor.Name,
		"Registro Editado",
		audit.ModuleAttendance,
		fmt.Sprintf("%s: %s em %s (%s)", updated.MemberName(), string(status), cmd.EventType, cmd.Date),
	)

	if err := uc.publisher.Publish(attendance.NewRecordSavedEvent(updated, false)); err != nil {
		slog.Warn("record saved event publish failed", "record_key", updated.Key(), "error", err)
	}

	return &UpdateRecordResult{RecordKey: updated.Key(), Points: updated.Points()}, nil
}
