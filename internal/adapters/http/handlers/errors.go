package handlers

import (
	"errors"
	"strings"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// fail maps a service error onto the response helpers. notFound is the
// resource specific message for domain.ErrNotFound.
func fail(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return response.NotFound(c, "Account not found")
	case errors.Is(err, domain.ErrAccountConflict):
		return response.Conflict(c, "An account with this email exists in the other portal")
	case errors.Is(err, domain.ErrInvalidCredential):
		return response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, domain.ErrInactiveAccount):
		return response.Forbidden(c, "Account is inactive")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return response.Conflict(c, "Employee is already registered")
	case errors.Is(err, domain.ErrSignupDisabled):
		return response.Forbidden(c, "Admin sign-up is disabled")
	case errors.Is(err, domain.ErrTokenInvalid):
		return response.BadRequest(c, "Reset link is invalid or has expired")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, detail(err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, notFound)
	case errors.Is(err, domain.ErrInUse):
		return response.Conflict(c, detail(err, domain.ErrInUse))
	case errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, detail(err, domain.ErrDuplicateEntry))
	case errors.Is(err, domain.ErrInvalidState):
		return response.Conflict(c, detail(err, domain.ErrInvalidState))
	default:
		logger.Log.WithFields(logrus.Fields{"path": c.Path(), "method": c.Method()}).
			WithError(err).Error("❌ Request failed")
		return response.InternalServerError(c, "Something went wrong, please try again")
	}
}

// detail returns the part of the message added after the sentinel
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest := strings.TrimPrefix(msg, sentinel.Error()+": "); rest != msg {
		return rest
	}
	return msg
}
