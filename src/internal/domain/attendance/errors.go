package attendance

import "github.com/ministerio-uziel/portal/src/internal/domain/shared"

const (
	ErrCodeEventNotConfigured   shared.ErrorCode = "EVENT_NOT_CONFIGURED"
	ErrCodeRecordNotFound       shared.ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeInvalidDate          shared.ErrorCode = "EVENT_DATE_INVALID"
	ErrCodeInvalidEventType     shared.ErrorCode = "EVENT_TYPE_INVALID"
	ErrCodeInvalidStatus        shared.ErrorCode = "ATTENDANCE_STATUS_INVALID"
	ErrCodePartialBulkFailure   shared.ErrorCode = "PARTIAL_BULK_FAILURE"
)

var (
	// ErrEventNotConfigured: registration was attempted before
	// EventContext.Configure in this session.
	ErrEventNotConfigured = &shared.DomainError{
		Code:    ErrCodeEventNotConfigured,
		Message: "configure o evento e a data primeiro",
	}

	ErrRecordNotFound = &shared.DomainError{
		Code:    ErrCodeRecordNotFound,
		Message: "registro de presença não encontrado",
	}

	ErrInvalidDate = &shared.DomainError{
		Code:    ErrCodeInvalidDate,
		Message: "data deve estar no formato AAAA-MM-DD",
	}

	ErrInvalidEventType = &shared.DomainError{
		Code:    ErrCodeInvalidEventType,
		Message: "tipo de evento não pode ser vazio",
	}

	ErrInvalidStatus = &shared.DomainError{
		Code:    ErrCodeInvalidStatus,
		Message: "status deve ser Presente ou Ausente",
	}

	// ErrPartialBulkFailure: the clear-all sequence failed between its two
	// batches. Records may be gone while totals are not yet zeroed (or the
	// reverse); re-running clear-all converges the state.
	ErrPartialBulkFailure = &shared.DomainError{
		Code:    ErrCodePartialBulkFailure,
		Message: "limpeza em massa incompleta; execute novamente para convergir",
	}
)
