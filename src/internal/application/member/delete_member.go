package member

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

// DeleteMemberCommand removes a member and its whole attendance history in
// one cascade. The member is addressed by display name because user
// deletion starts from the account store, which only knows the name.
// Admin only.
type DeleteMemberCommand struct {
	Actor identity.Actor
	Name  string
}

type DeleteMemberResult struct {
	RecordsDeleted int
}

type DeleteMemberUseCase interface {
	Execute(cmd DeleteMemberCommand) (*DeleteMemberResult, error)
}

// DeleteMemberUseCaseImpl cascades in a single transaction: history first,
// then the member row. No point reversal happens because the totals leave
// with the member.
type DeleteMemberUseCaseImpl struct {
	memberRepo member.Repository
	recordRepo attendance.Repository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	auditor    *auditapp.Recorder
}

func NewDeleteMemberUseCase(
	memberRepo member.Repository,
	recordRepo attendance.Repository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	auditor *auditapp.Recorder,
) DeleteMemberUseCase {
	return &DeleteMemberUseCaseImpl{
		memberRepo: memberRepo,
		recordRepo: recordRepo,
		txManager:  txManager,
		publisher:  publisher,
		auditor:    auditor,
	}
}

func (uc *DeleteMemberUseCaseImpl) Execute(cmd DeleteMemberCommand) (*DeleteMemberResult, error) {
	if !cmd.Actor.IsAdmin() {
		return nil, identity.ErrPermissionDenied.WithContext("action", "delete_member")
	}

	var (
		target         *member.Member
		recordsDeleted int
	)

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		m, err := uc.memberRepo.FindByName(ctx, cmd.Name)
		if err != nil {
			return err
		}
		target = m

		recordsDeleted, err = uc.recordRepo.DeleteByMemberID(ctx, m.MemberID())
		if err != nil {
			return err
		}
		return uc.memberRepo.Delete(ctx, m.MemberID())
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(
		cmd.Actor.Name,
		"Usuário Excluído",
		audit.ModuleUserManagement,
		fmt.Sprintf("membro %s e %d registros removidos", target.Name(), recordsDeleted),
	)

	event := member.NewMemberDeletedEvent(target.MemberID(), target.Name(), recordsDeleted)
	if err := uc.publisher.Publish(event); err != nil {
		slog.Warn("member deleted event publish failed", "member", target.Name(), "error", err)
	}

	return &DeleteMemberResult{RecordsDeleted: recordsDeleted}, nil
}
