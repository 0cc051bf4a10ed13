package handlers

import (
	"ems-portal/internal/adapters/http/middleware"
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles employee profiles and their login accounts
type EmployeeHandler struct {
	employeeService *services.EmployeeService
	employeeAuth    *services.EmployeeAuthService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService, employeeAuth *services.EmployeeAuthService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		employeeAuth:    employeeAuth,
	}
}

// AccountStatusRequest activates or deactivates an employee login
type AccountStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

const employeeNotFound = "Employee not found"

// List returns employee profiles
// @Summary List employees
// @Tags Admin Employees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Code, name or email"
// @Success 200 {object} response.Response
// @Router /admin/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	employees, total, err := h.employeeService.List(c.UserContext(), params)
	if err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Success(c, "Employees retrieved successfully", pagination.NewResponse(employees, params, total))
}

// Get returns one employee profile
// @Summary Get employee
// @Tags Admin Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/employees/{id} [get]
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	employee, err := h.employeeService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Success(c, "Employee retrieved successfully", employee)
}

// Create adds an employee profile
// @Summary Create employee
// @Tags Admin Employees
// @Accept json
// @Produce json
// @Param body body services.EmployeeInput true "Profile"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req services.EmployeeInput
	if err := bind(c, &req); err != nil {
		return err
	}

	employee, err := h.employeeService.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Created(c, "Employee created successfully", employee)
}

// Update replaces an employee profile
// @Summary Update employee
// @Tags Admin Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param body body services.EmployeeInput true "Profile"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req services.EmployeeInput
	if err := bind(c, &req); err != nil {
		return err
	}

	employee, err := h.employeeService.Update(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Success(c, "Employee updated successfully", employee)
}

// Delete removes an employee with the account and records attached to it
// @Summary Delete employee
// @Tags Admin Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.employeeService.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Success(c, "Employee deleted successfully", nil)
}

// Register creates the login account of an employee and returns the derived password once
// @Summary Register employee account
// @Tags Admin Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/employees/{id}/register [post]
func (h *EmployeeHandler) Register(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.employeeAuth.Register(c.UserContext(), id)
	if err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Created(c, "Employee registered", result)
}

// SetAccountStatus activates or deactivates the login account of an employee
// @Summary Set employee account status
// @Tags Admin Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param body body AccountStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/employees/{id}/account-status [put]
func (h *EmployeeHandler) SetAccountStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req AccountStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.employeeAuth.SetStatus(c.UserContext(), id, *req.Active); err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Success(c, "Account status updated", fiber.Map{"active": *req.Active})
}

// Me returns the profile of the logged in employee
// @Summary Current employee
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /employee/me [get]
func (h *EmployeeHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	employee, err := h.employeeService.Get(c.UserContext(), identity.ID)
	if err != nil {
		return fail(c, err, employeeNotFound)
	}
	return response.Success(c, "Profile retrieved successfully", fiber.Map{
		"identity": identity,
		"profile":  employee,
	})
}
