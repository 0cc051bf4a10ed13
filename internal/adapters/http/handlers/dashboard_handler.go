package handlers

import (
	"ems-portal/internal/adapters/http/middleware"
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// AdminMe returns the identity of the logged in admin
// @Summary Current admin
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/me [get]
func (h *DashboardHandler) AdminMe(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	return response.Success(c, "Admin retrieved successfully", identity)
}

// GetAdminDashboard returns admin dashboard data
// @Summary Admin Dashboard
// @Description Counters of employees, org structure and pending reviews
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.UserContext())
	if err != nil {
		return fail(c, err, "Dashboard not found")
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}
