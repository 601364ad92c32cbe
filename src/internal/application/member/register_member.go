package member

import (
	"fmt"
	"log/slog"

	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// RegisterMemberCommand creates the member mirror for a new user account.
// The name is normalized (uppercased, trimmed) by the aggregate; the
// contact is the optional WhatsApp number used by absence notifications.
type RegisterMemberCommand struct {
	Actor   identity.Actor
	Name    string
	Contact string
}

type RegisterMemberResult struct {
	MemberID string
	Name     string
}

type RegisterMemberUseCase interface {
	Execute(cmd RegisterMemberCommand) (*RegisterMemberResult, error)
}

type RegisterMemberUseCaseImpl struct {
	memberRepo member.Repository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	auditor    *auditapp.Recorder
}

func NewRegisterMemberUseCase(
	memberRepo member.Repository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	auditor *auditapp.Recorder,
) RegisterMemberUseCase {
	return &RegisterMemberUseCaseImpl{
		memberRepo: memberRepo,
		txManager:  txManager,
		publisher:  publisher,
		auditor:    auditor,
	}
}

func (uc *RegisterMemberUseCaseImpl) Execute(cmd RegisterMemberCommand) (*RegisterMemberResult, error) {
	newMember, err := member.NewMember(cmd.Name, cmd.Contact)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.memberRepo.Save(ctx, newMember)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(
		cmd.Actor.Name,
		"Usuário Cadastrado",
		audit.ModuleUserManagement,
		fmt.Sprintf("membro %s criado", newMember.Name()),
	)

	if err := uc.publisher.PublishBatch(newMember.PullEvents()); err != nil {
		slog.Warn("member registered event publish failed", "member", newMember.Name(), "error", err)
	}

	return &RegisterMemberResult{
		MemberID: newMember.MemberID().String(),
		Name:     newMember.Name(),
	}, nil
}
