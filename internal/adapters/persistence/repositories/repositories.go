package repositories

import "gorm.io/gorm"

// Repositories groups every repository the services depend on
type Repositories struct {
	Admins        AdminRepository
	Accounts      EmployeeAccountRepository
	ResetTokens   AdminResetTokenRepository
	ResetRequests PasswordResetRequestRepository
	Employees     EmployeeRepository
	Departments   DepartmentRepository
	Designations  DesignationRepository
	Leaves        LeaveRepository
	Tasks         TaskRepository
	Attendance    AttendanceRepository
	Notifications NotificationRepository
	Documents     DocumentRepository
}

// NewRepositories creates the GORM implementation of every repository
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Admins:        NewAdminRepository(db),
		Accounts:      NewEmployeeAccountRepository(db),
		ResetTokens:   NewAdminResetTokenRepository(db),
		ResetRequests: NewPasswordResetRequestRepository(db),
		Employees:     NewEmployeeRepository(db),
		Departments:   NewDepartmentRepository(db),
		Designations:  NewDesignationRepository(db),
		Leaves:        NewLeaveRepository(db),
		Tasks:         NewTaskRepository(db),
		Attendance:    NewAttendanceRepository(db),
		Notifications: NewNotificationRepository(db),
		Documents:     NewDocumentRepository(db),
	}
}
