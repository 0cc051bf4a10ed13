package middleware

import (
	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/session"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionGuard protects a route group for role. It must run after ClientMiddleware.
func SessionGuard(manager *session.Manager, role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		holder := manager.Holder(c.UserContext(), ClientID(c))
		verdict := session.Authorize(holder, role)

		switch verdict.Decision {
		case session.Pending:
			return c.SendStatus(fiber.StatusNoContent)
		case session.Allow:
			c.Locals(LocalIdentity, verdict.Identity)
			return c.Next()
		default:
			return response.Redirect(c, verdict.Location, verdict.Replace)
		}
	}
}

// AdminGuard protects the admin portal
func AdminGuard(manager *session.Manager) fiber.Handler {
	return SessionGuard(manager, domain.RoleAdmin)
}

// EmployeeGuard protects the employee portal
func EmployeeGuard(manager *session.Manager) fiber.Handler {
	return SessionGuard(manager, domain.RoleEmployee)
}

// CurrentIdentity returns the identity placed by SessionGuard
func CurrentIdentity(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(LocalIdentity).(domain.Identity)
	return identity, ok
}
