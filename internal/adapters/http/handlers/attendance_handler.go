package handlers

import (
	"time"

	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles check-in, check-out and monthly reports
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn records today's arrival of the logged in employee
// @Summary Check in
// @Tags Employee
// @Produce json
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}

	record, err := h.attendanceService.CheckIn(c.UserContext(), employeeID)
	if err != nil {
		return fail(c, err, "Attendance not found")
	}
	return response.Created(c, "Checked in", record)
}

// CheckOut records today's departure of the logged in employee
// @Summary Check out
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}

	record, err := h.attendanceService.CheckOut(c.UserContext(), employeeID)
	if err != nil {
		return fail(c, err, "Attendance not found")
	}
	return response.Success(c, "Checked out", record)
}

// MyReport returns the monthly report of the logged in employee
// @Summary My attendance report
// @Tags Employee
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /employee/attendance/report [get]
func (h *AttendanceHandler) MyReport(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	return h.report(c, employeeID)
}

// EmployeeReport returns the monthly report of any employee
// @Summary Employee attendance report
// @Tags Admin Attendance
// @Produce json
// @Param employeeId path int true "Employee ID"
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/attendance/{employeeId} [get]
func (h *AttendanceHandler) EmployeeReport(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "employeeId")
	if err != nil {
		return err
	}
	return h.report(c, employeeID)
}

func (h *AttendanceHandler) report(c *fiber.Ctx, employeeID uint) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	report, err := h.attendanceService.Report(c.UserContext(), employeeID, year, month)
	if err != nil {
		return fail(c, err, "Attendance not found")
	}
	return response.Success(c, "Attendance report retrieved successfully", report)
}
