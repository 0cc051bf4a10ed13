package handlers

import (
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PasswordResetHandler handles the admin review of employee reset requests
type PasswordResetHandler struct {
	resets *services.PasswordResetService
}

// NewPasswordResetHandler creates a new password reset handler
func NewPasswordResetHandler(resets *services.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{resets: resets}
}

const resetNotFound = "Reset request not found"

// List returns reset requests
// @Summary List password reset requests
// @Tags Admin Password Resets
// @Produce json
// @Param status query string false "Pending, Approved, Rejected, Completed or Expired"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/password-resets [get]
func (h *PasswordResetHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	requests, total, err := h.resets.List(c.UserContext(), c.Query("status"), params)
	if err != nil {
		return fail(c, err, resetNotFound)
	}
	return response.Success(c, "Reset requests retrieved successfully", pagination.NewResponse(requests, params, total))
}

// Approve lets the employee choose a new password
// @Summary Approve password reset
// @Tags Admin Password Resets
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/password-resets/{id}/approve [put]
func (h *PasswordResetHandler) Approve(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.resets.Approve(c.UserContext(), id); err != nil {
		return fail(c, err, resetNotFound)
	}
	return response.Success(c, "Reset request approved", nil)
}

// Reject declines a reset request
// @Summary Reject password reset
// @Tags Admin Password Resets
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/password-resets/{id}/reject [put]
func (h *PasswordResetHandler) Reject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.resets.Reject(c.UserContext(), id); err != nil {
		return fail(c, err, resetNotFound)
	}
	return response.Success(c, "Reset request rejected", nil)
}
