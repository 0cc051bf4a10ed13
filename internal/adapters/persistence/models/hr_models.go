package models

import (
	"time"
)

// ============================================================
// Organisation tables
// ============================================================

// Department represents departments table
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Location  string    `gorm:"size:150" json:"location"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

// Designation represents designations table
type Designation struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Title        string      `gorm:"size:100;not null" json:"title"`
	DepartmentID *uint       `gorm:"index" json:"department_id"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Designation) TableName() string {
	return "designations"
}

// Employee represents employees table (the employee profile)
type Employee struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	EmployeeCode  string       `gorm:"uniqueIndex;size:30;not null" json:"employee_code"`
	FirstName     string       `gorm:"size:100;not null" json:"first_name"`
	LastName      string       `gorm:"size:100;not null" json:"last_name"`
	Email         string       `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone         string       `gorm:"size:20" json:"phone"`
	DateOfBirth   *time.Time   `gorm:"type:date" json:"date_of_birth"`
	HireDate      time.Time    `gorm:"type:date;not null" json:"hire_date"`
	Salary        *float64     `gorm:"type:decimal(12,2)" json:"salary"`
	DepartmentID  *uint        `gorm:"index" json:"department_id"`
	DesignationID *uint        `gorm:"index" json:"designation_id"`
	Status        string       `gorm:"size:20;default:'Active'" json:"status"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
	Department    *Department  `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Designation   *Designation `gorm:"foreignKey:DesignationID" json:"designation,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// FullName returns first and last name
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeeResponse DTO
type EmployeeResponse struct {
	ID               uint       `json:"id"`
	EmployeeCode     string     `json:"employee_code"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	HireDate         time.Time  `json:"hire_date"`
	Salary           *float64   `json:"salary"`
	DepartmentID     *uint      `json:"department_id"`
	DepartmentName   string     `json:"department_name,omitempty"`
	DesignationID    *uint      `json:"designation_id"`
	DesignationTitle string     `json:"designation_title,omitempty"`
	Status           string     `json:"status"`
	Registered       bool       `json:"registered"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (e *Employee) ToResponse() *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		Email:         e.Email,
		Phone:         e.Phone,
		DateOfBirth:   e.DateOfBirth,
		HireDate:      e.HireDate,
		Salary:        e.Salary,
		DepartmentID:  e.DepartmentID,
		DesignationID: e.DesignationID,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
	}
	if e.Department != nil {
		resp.DepartmentName = e.Department.Name
	}
	if e.Designation != nil {
		resp.DesignationTitle = e.Designation.Title
	}
	return resp
}

// ============================================================
// HR tables
// ============================================================

// LeaveRequest represents leave_requests table
type LeaveRequest struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EmployeeID      uint      `gorm:"index;not null" json:"employee_id"`
	LeaveType       string    `gorm:"size:50;not null" json:"leave_type"`
	StartDate       time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time `gorm:"type:date;not null" json:"end_date"`
	TotalDays       int       `gorm:"not null" json:"total_days"`
	Reason          string    `gorm:"type:text" json:"reason"`
	Status          string    `gorm:"size:20;index;default:'Pending'" json:"status"`
	RejectionReason string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Employee        *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Task represents tasks table
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"index;not null" json:"employee_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"type:date;not null" json:"due_date"`
	Status      string    `gorm:"size:20;index;default:'Pending'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Employee    *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task is past its due date and not completed
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == "Completed" {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, t.DueDate.Location())
	return t.DueDate.Before(today)
}

// Attendance represents attendance table: one row per employee per day
type Attendance struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EmployeeID uint       `gorm:"not null;uniqueIndex:idx_attendance_employee_day" json:"employee_id"`
	WorkDate   string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_day" json:"work_date"`
	CheckIn    time.Time  `gorm:"not null" json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	TotalHours float64    `gorm:"type:decimal(5,2);default:0" json:"total_hours"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// Notification represents notifications table
type Notification struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	TargetAudience string    `gorm:"size:100;index;default:'All'" json:"target_audience"`
	CreatedBy      uint      `gorm:"index" json:"created_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Document represents documents table
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"index;not null" json:"employee_id"`
	Category    string    `gorm:"size:20;not null" json:"category"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ContentType string    `gorm:"size:100;not null" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	Content     []byte    `gorm:"not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Document) TableName() string {
	return "documents"
}
