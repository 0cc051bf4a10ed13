package handlers

import (
	"ems-portal/internal/core/services"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles task assignment and progress
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

const taskNotFound = "Task not found"

// Assign gives a task to an employee
// @Summary Assign task
// @Tags Admin Tasks
// @Accept json
// @Produce json
// @Param body body services.TaskInput true "Task"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/tasks [post]
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	var req services.TaskInput
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Assign(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, taskNotFound)
	}
	return response.Created(c, "Task assigned", task)
}

// List returns tasks of all employees
// @Summary List tasks
// @Tags Admin Tasks
// @Produce json
// @Param status query string false "Pending, In Progress or Completed"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	tasks, total, err := h.taskService.List(c.UserContext(), c.Query("status"), params)
	if err != nil {
		return fail(c, err, taskNotFound)
	}
	return response.Success(c, "Tasks retrieved successfully", pagination.NewResponse(tasks, params, total))
}

// UpdateDueDate moves the due date of a task
// @Summary Change task due date
// @Tags Admin Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param body body services.TaskDueDateInput true "Due date"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/tasks/{id}/due-date [put]
func (h *TaskHandler) UpdateDueDate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req services.TaskDueDateInput
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.taskService.UpdateDueDate(c.UserContext(), id, &req); err != nil {
		return fail(c, err, taskNotFound)
	}
	return response.Success(c, "Due date updated", nil)
}

// ListMine returns the tasks of the logged in employee
// @Summary My tasks
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/tasks [get]
func (h *TaskHandler) ListMine(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListMine(c.UserContext(), employeeID)
	if err != nil {
		return fail(c, err, taskNotFound)
	}
	return response.Success(c, "Tasks retrieved successfully", tasks)
}

// UpdateStatus moves a task of the logged in employee to another status
// @Summary Update my task status
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param body body services.TaskStatusInput true "Status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employee/tasks/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	employeeID, err := currentID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req services.TaskStatusInput
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.taskService.UpdateStatus(c.UserContext(), employeeID, id, &req); err != nil {
		return fail(c, err, taskNotFound)
	}
	return response.Success(c, "Task status updated", nil)
}
