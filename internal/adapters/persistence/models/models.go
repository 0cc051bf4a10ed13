package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Credential tables
// ============================================================

// AdminAccount represents admin_accounts table
type AdminAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	UserName  string    `gorm:"uniqueIndex;size:50;not null" json:"user_name"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'admin'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminAccount) TableName() string {
	return "admin_accounts"
}

// EmployeeAccount represents employee_accounts table.
// The unique index on employee_id allows one account per employee profile.
type EmployeeAccount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"uniqueIndex;not null" json:"employee_id"`
	Email      string    `gorm:"index;size:100;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Status     string    `gorm:"size:20;default:'active'" json:"status"`
	Role       string    `gorm:"size:20;default:'employee'" json:"role"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (EmployeeAccount) TableName() string {
	return "employee_accounts"
}

// IsActive reports whether the account may log in
func (a *EmployeeAccount) IsActive() bool {
	return a.Status == "active"
}

// AdminResetToken represents admin_reset_tokens table (single use reset links)
type AdminResetToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	AdminID   uint       `gorm:"index;not null" json:"admin_id"`
	TokenHash string     `gorm:"size:255;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UsedAt    *time.Time `gorm:"index" json:"used_at"`
}

func (AdminResetToken) TableName() string {
	return "admin_reset_tokens"
}

func (t *AdminResetToken) IsUsed() bool {
	return t.UsedAt != nil
}

// IsExpired reports whether the token is no longer valid at now
func (t *AdminResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// PasswordResetRequest represents password_reset_requests table
type PasswordResetRequest struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	EmployeeAccountID uint       `gorm:"index;not null" json:"employee_account_id"`
	EmployeeID        uint       `gorm:"index;not null" json:"employee_id"`
	Email             string     `gorm:"index;size:100;not null" json:"email"`
	Status            string     `gorm:"size:20;index;default:'Pending'" json:"status"`
	ReviewedAt        *time.Time `json:"reviewed_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Employee          *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (PasswordResetRequest) TableName() string {
	return "password_reset_requests"
}

// ============================================================
// Session storage
// ============================================================

// ClientSession represents client_sessions table: one row per client and key
type ClientSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  string    `gorm:"size:64;not null;uniqueIndex:idx_client_session_key" json:"client_id"`
	Key       string    `gorm:"column:session_key;size:32;not null;uniqueIndex:idx_client_session_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`
}

func (ClientSession) TableName() string {
	return "client_sessions"
}

// AutoMigrate runs auto migration for every table of the service
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Organisation
		&Department{},
		&Designation{},
		&Employee{},
		// Credentials
		&AdminAccount{},
		&EmployeeAccount{},
		&AdminResetToken{},
		&PasswordResetRequest{},
		&ClientSession{},
		// HR
		&LeaveRequest{},
		&Task{},
		&Attendance{},
		&Notification{},
		&Document{},
	)
}
