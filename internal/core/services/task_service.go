package services

import (
	"context"
	"strings"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/pagination"
)

// TaskService handles task assignment and progress
type TaskService struct {
	taskRepo     repositories.TaskRepository
	employeeRepo repositories.EmployeeRepository
	now          func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repositories.TaskRepository, employeeRepo repositories.EmployeeRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, employeeRepo: employeeRepo, now: time.Now}
}

// TaskInput represents the assign task form
type TaskInput struct {
	EmployeeID  uint   `json:"employee_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// TaskDueDateInput represents a due date change
type TaskDueDateInput struct {
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// TaskStatusInput represents a status change by the assignee
type TaskStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
}

// TaskView is a task with its overdue flag
type TaskView struct {
	*models.Task
	Overdue bool `json:"overdue"`
}

// Assign creates a pending task for an employee
func (s *TaskService) Assign(ctx context.Context, input *TaskInput) (*models.Task, error) {
	due, err := parseDate("due_date", input.DueDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		if isNotFound(err) {
			return nil, invalid("employee %d does not exist", input.EmployeeID)
		}
		return nil, storageError("load employee", err)
	}

	task := &models.Task{
		EmployeeID:  input.EmployeeID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		DueDate:     due,
		Status:      domain.TaskPending,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, storageError("create task", err)
	}

	logger.Log.Infof("✅ Task assigned: task_id=%d employee_id=%d", task.ID, task.EmployeeID)
	return task, nil
}

// List lists all tasks for the admin
func (s *TaskService) List(ctx context.Context, status string, params *pagination.Params) ([]*TaskView, int64, error) {
	tasks, total, err := s.taskRepo.List(ctx, status, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, storageError("list tasks", err)
	}
	return s.views(tasks), total, nil
}

// ListMine lists the tasks assigned to one employee
func (s *TaskService) ListMine(ctx context.Context, employeeID uint) ([]*TaskView, error) {
	tasks, err := s.taskRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, storageError("list tasks", err)
	}
	return s.views(tasks), nil
}

// UpdateDueDate changes the due date of a task
func (s *TaskService) UpdateDueDate(ctx context.Context, id uint, input *TaskDueDateInput) error {
	due, err := parseDate("due_date", input.DueDate)
	if err != nil {
		return err
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepo.UpdateDueDate(ctx, id, due); err != nil {
		return storageError("update task", err)
	}
	return nil
}

// UpdateStatus lets the assignee move a task among its statuses
func (s *TaskService) UpdateStatus(ctx context.Context, employeeID, id uint, input *TaskStatusInput) error {
	switch input.Status {
	case domain.TaskPending, domain.TaskInProgress, domain.TaskCompleted:
	default:
		return invalid("unknown task status %q", input.Status)
	}

	task, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if task.EmployeeID != employeeID {
		return domain.ErrNotFound
	}

	if err := s.taskRepo.UpdateStatus(ctx, id, input.Status); err != nil {
		return storageError("update task", err)
	}

	logger.Log.Infof("✅ Task %d is now %s", id, input.Status)
	return nil
}

func (s *TaskService) get(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load task", err)
	}
	return task, nil
}

func (s *TaskService) views(tasks []*models.Task) []*TaskView {
	now := s.now()
	out := make([]*TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = &TaskView{Task: t, Overdue: t.IsOverdue(now)}
	}
	return out
}
