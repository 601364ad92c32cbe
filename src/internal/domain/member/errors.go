package member

import "github.com/ministerio-uziel/portal/src/internal/domain/shared"

const (
	ErrCodeMemberNotFound      shared.ErrorCode = "MEMBER_NOT_FOUND"
	ErrCodeMemberAlreadyExists shared.ErrorCode = "MEMBER_ALREADY_EXISTS"
	ErrCodeInvalidMemberID     shared.ErrorCode = "MEMBER_ID_INVALID"
	ErrCodeInvalidName         shared.ErrorCode = "MEMBER_NAME_INVALID"
)

var (
	ErrMemberNotFound = &shared.DomainError{
		Code:    ErrCodeMemberNotFound,
		Message: "membro não encontrado",
	}

	ErrMemberAlreadyExists = &shared.DomainError{
		Code:    ErrCodeMemberAlreadyExists,
		Message: "membro já cadastrado",
	}

	ErrInvalidMemberID = &shared.DomainError{
		Code:    ErrCodeInvalidMemberID,
		Message: "ID de membro inválido",
	}

	ErrInvalidName = &shared.DomainError{
		Code:    ErrCodeInvalidName,
		Message: "nome de membro não pode ser vazio",
	}
)
