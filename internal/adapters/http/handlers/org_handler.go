package handlers

import (
	"strconv"

	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrgHandler handles departments and designations
type OrgHandler struct {
	orgService *services.OrgService
}

// NewOrgHandler creates a new org handler
func NewOrgHandler(orgService *services.OrgService) *OrgHandler {
	return &OrgHandler{orgService: orgService}
}

// ListDepartments returns departments with their head counts
// @Summary List departments
// @Tags Admin Org
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/departments [get]
func (h *OrgHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.orgService.ListDepartments(c.UserContext())
	if err != nil {
		return fail(c, err, "Department not found")
	}
	return response.Success(c, "Departments retrieved successfully", departments)
}

// CreateDepartment adds a department
// @Summary Create department
// @Tags Admin Org
// @Accept json
// @Produce json
// @Param body body services.DepartmentInput true "Department"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/departments [post]
func (h *OrgHandler) CreateDepartment(c *fiber.Ctx) error {
	var req services.DepartmentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	department, err := h.orgService.CreateDepartment(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Department not found")
	}
	return response.Created(c, "Department created successfully", department)
}

// UpdateDepartment renames or relocates a department
// @Summary Update department
// @Tags Admin Org
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param body body services.DepartmentInput true "Department"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/departments/{id} [put]
func (h *OrgHandler) UpdateDepartment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req services.DepartmentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	department, err := h.orgService.UpdateDepartment(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Department not found")
	}
	return response.Success(c, "Department updated successfully", department)
}

// DeleteDepartment removes an unused department
// @Summary Delete department
// @Tags Admin Org
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/departments/{id} [delete]
func (h *OrgHandler) DeleteDepartment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orgService.DeleteDepartment(c.UserContext(), id); err != nil {
		return fail(c, err, "Department not found")
	}
	return response.Success(c, "Department deleted successfully", nil)
}

// ListDesignations returns designations, optionally of one department
// @Summary List designations
// @Tags Admin Org
// @Produce json
// @Param department_id query int false "Department ID"
// @Success 200 {object} response.Response
// @Router /admin/designations [get]
func (h *OrgHandler) ListDesignations(c *fiber.Ctx) error {
	var departmentID *uint
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "Invalid department_id")
		}
		v := uint(id)
		departmentID = &v
	}

	designations, err := h.orgService.ListDesignations(c.UserContext(), departmentID)
	if err != nil {
		return fail(c, err, "Designation not found")
	}
	return response.Success(c, "Designations retrieved successfully", designations)
}

// CreateDesignation adds a designation
// @Summary Create designation
// @Tags Admin Org
// @Accept json
// @Produce json
// @Param body body services.DesignationInput true "Designation"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/designations [post]
func (h *OrgHandler) CreateDesignation(c *fiber.Ctx) error {
	var req services.DesignationInput
	if err := bind(c, &req); err != nil {
		return err
	}

	designation, err := h.orgService.CreateDesignation(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "Designation not found")
	}
	return response.Created(c, "Designation created successfully", designation)
}

// UpdateDesignation changes a designation
// @Summary Update designation
// @Tags Admin Org
// @Accept json
// @Produce json
// @Param id path int true "Designation ID"
// @Param body body services.DesignationInput true "Designation"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/designations/{id} [put]
func (h *OrgHandler) UpdateDesignation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req services.DesignationInput
	if err := bind(c, &req); err != nil {
		return err
	}

	designation, err := h.orgService.UpdateDesignation(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, "Designation not found")
	}
	return response.Success(c, "Designation updated successfully", designation)
}

// DeleteDesignation removes an unused designation
// @Summary Delete designation
// @Tags Admin Org
// @Produce json
// @Param id path int true "Designation ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/designations/{id} [delete]
func (h *OrgHandler) DeleteDesignation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orgService.DeleteDesignation(c.UserContext(), id); err != nil {
		return fail(c, err, "Designation not found")
	}
	return response.Success(c, "Designation deleted successfully", nil)
}
