// Package identity models the acting user as supplied by the external
// identity/session provider. The core trusts these values as given; it
// never authenticates.
package identity

import "github.com/ministerio-uziel/portal/src/internal/domain/shared"

// Role is the portal role attached to a session.
type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Actor is the user on whose behalf a command runs.
type Actor struct {
	Name string
	Role Role
}

// IsAdmin reports whether the actor holds administrative privileges.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

const ErrCodePermissionDenied shared.ErrorCode = "PERMISSION_DENIED"

// ErrPermissionDenied is returned when a command requires an admin or
// super-admin actor.
var ErrPermissionDenied = &shared.DomainError{
	Code:    ErrCodePermissionDenied,
	Message: "apenas administradores podem executar esta ação",
}
