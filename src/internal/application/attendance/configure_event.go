package attendance

import (
	"fmt"

	auditapp "github.com/ministerio-uziel/portal/src/internal/application/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
)

// ConfigureEventCommand sets the session's active event; registrations
// that follow apply to it.
type ConfigureEventCommand struct {
	Actor     identity.Actor
	EventType string
	Date      string
}

type ConfigureEventUseCase interface {
	Execute(cmd ConfigureEventCommand) error
}

type ConfigureEventUseCaseImpl struct {
	eventCtx *attendance.EventContext
	auditor  *auditapp.Recorder
}

func NewConfigureEventUseCase(eventCtx *attendance.EventContext, auditor *auditapp.Recorder) ConfigureEventUseCase {
	return &ConfigureEventUseCaseImpl{eventCtx: eventCtx, auditor: auditor}
}

func (uc *ConfigureEventUseCaseImpl) Execute(cmd ConfigureEventCommand) error {
	if err := uc.eventCtx.Configure(cmd.EventType, cmd.Date); err != nil {
		return err
	}

	uc.auditor.Record(
		cmd.Actor.Name,
		"Evento Configurado",
		audit.ModuleAttendance,
		fmt.Sprintf("%s em %s", cmd.EventType, cmd.Date),
	)
	return nil
}
