package services

import (
	"context"

	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	employeeRepo    repositories.EmployeeRepository
	accountRepo     repositories.EmployeeAccountRepository
	departmentRepo  repositories.DepartmentRepository
	designationRepo repositories.DesignationRepository
	resetRepo       repositories.PasswordResetRequestRepository
	leaveRepo       repositories.LeaveRepository
	taskRepo        repositories.TaskRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	employeeRepo repositories.EmployeeRepository,
	accountRepo repositories.EmployeeAccountRepository,
	departmentRepo repositories.DepartmentRepository,
	designationRepo repositories.DesignationRepository,
	resetRepo repositories.PasswordResetRequestRepository,
	leaveRepo repositories.LeaveRepository,
	taskRepo repositories.TaskRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo:    employeeRepo,
		accountRepo:     accountRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		resetRepo:       resetRepo,
		leaveRepo:       leaveRepo,
		taskRepo:        taskRepo,
	}
}

// GetAdminDashboard returns the admin dashboard counters
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	counters := []struct {
		name  string
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{"employees", &stats.Employees, s.employeeRepo.Count},
		{"accounts", &stats.RegisteredEmps, s.accountRepo.Count},
		{"departments", &stats.Departments, s.departmentRepo.Count},
		{"designations", &stats.Designations, s.designationRepo.Count},
		{"pending resets", &stats.PendingResets, byStatus(s.resetRepo.CountByStatus, domain.ResetPending)},
		{"pending leaves", &stats.PendingLeaves, byStatus(s.leaveRepo.CountByStatus, domain.LeavePending)},
		{"pending tasks", &stats.PendingTasks, byStatus(s.taskRepo.CountByStatus, domain.TaskPending)},
	}

	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, storageError("count "+c.name, err)
		}
		*c.dst = n
	}

	return stats, nil
}

func byStatus(count func(context.Context, string) (int64, error), status string) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		return count(ctx, status)
	}
}
