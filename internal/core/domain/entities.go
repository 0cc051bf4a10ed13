package domain

import "time"

// Role represents the portal a session belongs to
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Roles lists every portal role
var Roles = []Role{RoleAdmin, RoleEmployee}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Identity is the snapshot copied into a session at login time
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Account status
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

// Employee profile status
const (
	EmployeeActive     = "Active"
	EmployeeInactive   = "Inactive"
	EmployeeTerminated = "Terminated"
)

// Leave request status
const (
	LeavePending   = "Pending"
	LeaveApproved  = "Approved"
	LeaveRejected  = "Rejected"
	LeaveCancelled = "Cancelled"
)

// Leave types
var LeaveTypes = []string{"Sick Leave", "Casual Leave", "Annual Leave", "Maternity Leave", "Paternity Leave", "Unpaid Leave"}

// Task status
const (
	TaskPending    = "Pending"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
)

// Password reset request status
const (
	ResetPending   = "Pending"
	ResetApproved  = "Approved"
	ResetRejected  = "Rejected"
	ResetCompleted = "Completed"
	ResetExpired   = "Expired"
)

// Attendance day status in the monthly report
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHoliday = "Holiday"
	AttendanceWeekend = "Weekend"
)

// Document categories
const (
	DocumentPersonal  = "personal"
	DocumentEducation = "education"
	DocumentSkills    = "skills"
)

// NotificationTargetAll addresses every employee
const NotificationTargetAll = "All"

// AttendanceDay is one line of a monthly attendance report
type AttendanceDay struct {
	Date       string     `json:"date"`
	Status     string     `json:"status"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	TotalHours float64    `json:"total_hours"`
}

// AttendanceReport summarizes one employee month
type AttendanceReport struct {
	EmployeeID  uint            `json:"employee_id"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Days        []AttendanceDay `json:"days"`
	Present     int             `json:"present"`
	Absent      int             `json:"absent"`
	WorkingDays int             `json:"working_days"`
}

// DashboardStats holds the admin dashboard counters
type DashboardStats struct {
	Employees      int64 `json:"employees"`
	Departments    int64 `json:"departments"`
	Designations   int64 `json:"designations"`
	PendingResets  int64 `json:"pending_password_resets"`
	PendingLeaves  int64 `json:"pending_leaves"`
	PendingTasks   int64 `json:"pending_tasks"`
	RegisteredEmps int64 `json:"registered_employees"`
}
