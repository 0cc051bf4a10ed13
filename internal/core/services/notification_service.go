package services

import (
	"context"
	"strings"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/pagination"
)

// DefaultNotificationLimit is the number of notifications an employee sees
const DefaultNotificationLimit = 50

// NotificationService handles announcements published by admins
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	departmentRepo   repositories.DepartmentRepository
	employeeRepo     repositories.EmployeeRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	departmentRepo repositories.DepartmentRepository,
	employeeRepo repositories.EmployeeRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		departmentRepo:   departmentRepo,
		employeeRepo:     employeeRepo,
	}
}

// NotificationInput represents the publish form
type NotificationInput struct {
	Title          string `json:"title" validate:"required,max=200"`
	Message        string `json:"message" validate:"required,max=5000"`
	TargetAudience string `json:"target_audience" validate:"omitempty,max=100"`
}

// Publish stores an announcement for everyone or for one department
func (s *NotificationService) Publish(ctx context.Context, adminID uint, input *NotificationInput) (*models.Notification, error) {
	audience := strings.TrimSpace(input.TargetAudience)
	if audience == "" {
		audience = domain.NotificationTargetAll
	}

	if audience != domain.NotificationTargetAll {
		department, err := s.departmentRepo.GetByName(ctx, audience)
		if err != nil {
			if isNotFound(err) {
				return nil, invalid("unknown target audience %q", audience)
			}
			return nil, storageError("load department", err)
		}
		audience = department.Name
	}

	notification := &models.Notification{
		Title:          strings.TrimSpace(input.Title),
		Message:        strings.TrimSpace(input.Message),
		TargetAudience: audience,
		CreatedBy:      adminID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, storageError("create notification", err)
	}

	logger.Log.Infof("📢 Notification published to %s: %s", audience, notification.Title)
	return notification, nil
}

// List lists every notification for the admin
func (s *NotificationService) List(ctx context.Context, params *pagination.Params) ([]*models.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, storageError("list notifications", err)
	}
	return notifications, total, nil
}

// ListForEmployee lists notifications addressed to everyone or to the employee's department, newest first
func (s *NotificationService) ListForEmployee(ctx context.Context, employeeID uint, limit int) ([]*models.Notification, error) {
	if limit <= 0 || limit > DefaultNotificationLimit {
		limit = DefaultNotificationLimit
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load employee", err)
	}

	audiences := []string{domain.NotificationTargetAll}
	if employee.Department != nil {
		audiences = append(audiences, employee.Department.Name)
	}

	notifications, err := s.notificationRepo.ListForAudiences(ctx, audiences, limit)
	if err != nil {
		return nil, storageError("list notifications", err)
	}
	return notifications, nil
}

// Delete removes a notification
func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("delete notification", err)
	}
	return nil
}
