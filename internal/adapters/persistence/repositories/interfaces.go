package repositories

import (
	"context"
	"time"

	"ems-portal/internal/adapters/persistence/models"
)

// AdminRepository defines admin account repository interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminAccount) error
	GetByID(ctx context.Context, id uint) (*models.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	GetByUsername(ctx context.Context, userName string) (*models.AdminAccount, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, userName string) (bool, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// EmployeeAccountRepository defines employee account repository interface
type EmployeeAccountRepository interface {
	Create(ctx context.Context, account *models.EmployeeAccount) error
	GetByEmail(ctx context.Context, email string) (*models.EmployeeAccount, error)
	GetByEmployeeID(ctx context.Context, employeeID uint) (*models.EmployeeAccount, error)
	ExistsByEmployeeID(ctx context.Context, employeeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdateStatus(ctx context.Context, employeeID uint, status string) error
	UpdateEmail(ctx context.Context, employeeID uint, email string) error
	ListEmployeeIDs(ctx context.Context, employeeIDs []uint) ([]uint, error)
	Count(ctx context.Context) (int64, error)
}

// AdminResetTokenRepository defines admin reset token repository interface
type AdminResetTokenRepository interface {
	Create(ctx context.Context, token *models.AdminResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.AdminResetToken, error)
	MarkUsed(ctx context.Context, id uint) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// PasswordResetRequestRepository defines employee password reset request repository interface
type PasswordResetRequestRepository interface {
	Create(ctx context.Context, req *models.PasswordResetRequest) error
	GetByID(ctx context.Context, id uint) (*models.PasswordResetRequest, error)
	GetLatestByEmployeeID(ctx context.Context, employeeID uint) (*models.PasswordResetRequest, error)
	GetByEmployeeIDAndStatus(ctx context.Context, employeeID uint, status string) (*models.PasswordResetRequest, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.PasswordResetRequest, int64, error)
	Transition(ctx context.Context, id uint, from, to string, at time.Time) (bool, error)
	ExpirePendingBefore(ctx context.Context, before time.Time) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// EmployeeRepository defines employee profile repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, search string, offset, limit int) ([]*models.Employee, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
	CountByDesignation(ctx context.Context, designationID uint) (int64, error)
}

// DepartmentSummary is a department with its usage counts
type DepartmentSummary struct {
	models.Department
	EmployeeCount    int64 `json:"employee_count"`
	DesignationCount int64 `json:"designation_count"`
}

// DepartmentRepository defines department repository interface
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*DepartmentSummary, error)
	Count(ctx context.Context) (int64, error)
}

// DesignationSummary is a designation with its employee count
type DesignationSummary struct {
	models.Designation
	EmployeeCount int64 `json:"employee_count"`
}

// DesignationRepository defines designation repository interface
type DesignationRepository interface {
	Create(ctx context.Context, designation *models.Designation) error
	GetByID(ctx context.Context, id uint) (*models.Designation, error)
	Update(ctx context.Context, designation *models.Designation) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, departmentID *uint) ([]*DesignationSummary, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
}

// LeaveRepository defines leave request repository interface
type LeaveRepository interface {
	Create(ctx context.Context, leave *models.LeaveRequest) error
	GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]*models.LeaveRequest, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.LeaveRequest, int64, error)
	Transition(ctx context.Context, id uint, from, to, reason string) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// TaskRepository defines task repository interface
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]*models.Task, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.Task, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	UpdateDueDate(ctx context.Context, id uint, due time.Time) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// AttendanceRepository defines attendance repository interface
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID uint, workDate string) (*models.Attendance, error)
	Update(ctx context.Context, record *models.Attendance) error
	ListByEmployeeBetween(ctx context.Context, employeeID uint, from, to string) ([]*models.Attendance, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForAudiences(ctx context.Context, audiences []string, limit int) ([]*models.Notification, error)
	List(ctx context.Context, offset, limit int) ([]*models.Notification, int64, error)
	Delete(ctx context.Context, id uint) error
}

// DocumentRepository defines document repository interface
type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]*models.Document, error)
	Delete(ctx context.Context, id uint) error
}
