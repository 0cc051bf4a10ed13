package handlers

import (
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles announcements
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

const notificationNotFound = "Notification not found"

// Publish sends an announcement to everyone or to one department
// @Summary Publish notification
// @Tags Admin Notifications
// @Accept json
// @Produce json
// @Param body body services.NotificationInput true "Notification"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/notifications [post]
func (h *NotificationHandler) Publish(c *fiber.Ctx) error {
	adminID, err := currentID(c)
	if err != nil {
		return err
	}
	var req services.NotificationInput
	if err := bind(c, &req); err != nil {
		return err
	}

	notification, err := h.notificationService.Publish(c.UserContext(), adminID, &req)
	if err != nil {
		return fail(c, err, notificationNotFound)
	}
	return response.Created(c, "Notification published", notification)
}

// List returns all announcements
// @Summary List notifications
// @Tags Admin Notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	notifications, total, err := h.notificationService.List(c.UserContext(), params)
	if err != nil {
		return fail(c, err, notificationNotFound)
	}
	return response.Success(c, "Notifications retrieved successfully", pagination.NewResponse(notifications, params, total))
}

// Delete removes an announcement
// @Summary Delete notification
// @Tags Admin Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, notificationNotFound)
	}
	return response.Success(c, "Notification deleted", nil)
}

// ListMine returns the announcements addressed to the logged in employee
// @Summary My notifications
// @Tags Employee
// @Produce json
// @Param limit query int false "Maximum number of notifications" default(50)
// @Success 200 {object} response.Response
// @Router /employee/notifications [get]
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", services.DefaultNotificationLimit)
	notifications, err := h.notificationService.ListForEmployee(c.UserContext(), employeeID, limit)
	if err != nil {
		return fail(c, err, notificationNotFound)
	}
	return response.Success(c, "Notifications retrieved successfully", notifications)
}
