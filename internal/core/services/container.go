package services

import (
	"ems-portal/internal/adapters/mail"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/config"
	"ems-portal/internal/pkg/calendar"
)

// Services holds one instance of every service
type Services struct {
	AdminAuth     *AdminAuthService
	EmployeeAuth  *EmployeeAuthService
	Resets        *PasswordResetService
	Employees     *EmployeeService
	Org           *OrgService
	Leaves        *LeaveService
	Tasks         *TaskService
	Attendance    *AttendanceService
	Notifications *NotificationService
	Documents     *DocumentService
	Dashboard     *DashboardService
}

// NewServices wires every service over repos
func NewServices(repos *repositories.Repositories, mailer mail.Mailer, cal *calendar.Calendar, cfg *config.Config) *Services {
	return &Services{
		AdminAuth:     NewAdminAuthService(repos.Admins, repos.Accounts, repos.ResetTokens, mailer, cfg),
		EmployeeAuth:  NewEmployeeAuthService(repos.Employees, repos.Accounts, repos.Admins, cfg),
		Resets:        NewPasswordResetService(repos.Accounts, repos.ResetRequests, mailer, cfg),
		Employees:     NewEmployeeService(repos.Employees, repos.Accounts, repos.Admins, repos.Departments, repos.Designations),
		Org:           NewOrgService(repos.Departments, repos.Designations, repos.Employees),
		Leaves:        NewLeaveService(repos.Leaves, cal),
		Tasks:         NewTaskService(repos.Tasks, repos.Employees),
		Attendance:    NewAttendanceService(repos.Attendance, cal),
		Notifications: NewNotificationService(repos.Notifications, repos.Departments, repos.Employees),
		Documents:     NewDocumentService(repos.Documents, cfg),
		Dashboard: NewDashboardService(
			repos.Employees,
			repos.Accounts,
			repos.Departments,
			repos.Designations,
			repos.ResetRequests,
			repos.Leaves,
			repos.Tasks,
		),
	}
}
