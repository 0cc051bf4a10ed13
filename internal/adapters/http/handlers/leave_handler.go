package handlers

import (
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LeaveHandler handles leave requests of both portals
type LeaveHandler struct {
	leaveService *services.LeaveService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

const leaveNotFound = "Leave request not found"

// Apply files a leave request for the logged in employee
// @Summary Apply for leave
// @Tags Employee
// @Accept json
// @Produce json
// @Param body body services.LeaveInput true "Leave"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /employee/leaves [post]
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	var req services.LeaveInput
	if err := bind(c, &req); err != nil {
		return err
	}

	leave, err := h.leaveService.Apply(c.UserContext(), employeeID, &req)
	if err != nil {
		return fail(c, err, leaveNotFound)
	}
	return response.Created(c, "Leave request submitted", leave)
}

// ListMine returns the leave requests of the logged in employee
// @Summary My leave requests
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/leaves [get]
func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}

	leaves, err := h.leaveService.ListMine(c.UserContext(), employeeID)
	if err != nil {
		return fail(c, err, leaveNotFound)
	}
	return response.Success(c, "Leave requests retrieved successfully", leaves)
}

// Cancel withdraws a pending leave request of the logged in employee
// @Summary Cancel leave request
// @Tags Employee
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/leaves/{id}/cancel [put]
func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.leaveService.Cancel(c.UserContext(), employeeID, id); err != nil {
		return fail(c, err, leaveNotFound)
	}
	return response.Success(c, "Leave request cancelled", nil)
}

// List returns leave requests of all employees
// @Summary List leave requests
// @Tags Admin Leaves
// @Produce json
// @Param status query string false "Pending, Approved, Rejected or Cancelled"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	leaves, total, err := h.leaveService.List(c.UserContext(), c.Query("status"), params)
	if err != nil {
		return fail(c, err, leaveNotFound)
	}
	return response.Success(c, "Leave requests retrieved successfully", pagination.NewResponse(leaves, params, total))
}

// Approve approves a pending leave request
// @Summary Approve leave
// @Tags Admin Leaves
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/leaves/{id}/approve [put]
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.leaveService.Approve(c.UserContext(), id); err != nil {
		return fail(c, err, leaveNotFound)
	}
	return response.Success(c, "Leave request approved", nil)
}

// Reject rejects a pending leave request with an optional reason
// @Summary Reject leave
// @Tags Admin Leaves
// @Accept json
// @Produce json
// @Param id path int true "Leave ID"
// @Param body body services.LeaveDecisionInput false "Reason"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/leaves/{id}/reject [put]
func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req services.LeaveDecisionInput
	if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}

	if err := h.leaveService.Reject(c.UserContext(), id, req.Reason); err != nil {
		return fail(c, err, leaveNotFound)
	}
	return response.Success(c, "Leave request rejected", nil)
}
