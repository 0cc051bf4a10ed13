package session

import "ems-portal/internal/core/domain"

// Login routes of the two portals
const (
	AdminLoginRoute    = "/login"
	EmployeeLoginRoute = "/employee/login"
)

// Decision is the outcome of a guard check
type Decision int

const (
	// Pending means the holder is still restoring: render nothing
	Pending Decision = iota
	Allow
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	default:
		return "redirect"
	}
}

// Verdict is the guard's answer for one protected request
type Verdict struct {
	Decision Decision
	Identity domain.Identity
	Location string
	Replace  bool
}

// LoginRoute returns the login route of role
func LoginRoute(role domain.Role) string {
	if role == domain.RoleAdmin {
		return AdminLoginRoute
	}
	return EmployeeLoginRoute
}

// Authorize decides whether a view protected for role may be served.
// Both portals wait for the restore before deciding.
func Authorize(h *Holder, role domain.Role) Verdict {
	if h == nil {
		return redirectTo(role)
	}
	if !h.Restored() {
		return Verdict{Decision: Pending}
	}
	if identity, ok := h.Current(role); ok {
		return Verdict{Decision: Allow, Identity: identity}
	}
	return redirectTo(role)
}

func redirectTo(role domain.Role) Verdict {
	return Verdict{Decision: Redirect, Location: LoginRoute(role), Replace: true}
}
