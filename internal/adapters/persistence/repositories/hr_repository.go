package repositories

import (
	"context"
	"time"

	"ems-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// Leave requests
// ============================================================

// leaveRepository implements LeaveRepository interface
type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository creates a new leave request repository
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *models.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepository) GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest
	if err := r.db.WithContext(ctx).Preload("Employee").First(&leave, id).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]*models.LeaveRequest, error) {
	var leaves []*models.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.LeaveRequest, int64, error) {
	var leaves []*models.LeaveRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.LeaveRequest{}).Scopes(withStatus(status)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(withStatus(status)).
		Preload("Employee").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&leaves).Error
	return leaves, total, err
}

// Transition moves a leave from one status to another; false when it was not in from
func (r *leaveRepository) Transition(ctx context.Context, id uint, from, to, reason string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "rejection_reason": reason})
	return result.RowsAffected > 0, result.Error
}

func (r *leaveRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LeaveRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ============================================================
// Tasks
// ============================================================

// taskRepository implements TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Preload("Employee").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Task, int64, error) {
	var tasks []*models.Task
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Task{}).Scopes(withStatus(status)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(withStatus(status)).
		Preload("Employee").
		Order("due_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	return tasks, total, err
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Update("status", status).Error
}

func (r *taskRepository) UpdateDueDate(ctx context.Context, id uint, due time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Update("due_date", due).Error
}

func (r *taskRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ============================================================
// Attendance
// ============================================================

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts a check-in; a second one for the same day fails with gorm.ErrDuplicatedKey
func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	return translateError(r.db.WithContext(ctx).Create(record).Error)
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID uint, workDate string) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND work_date = ?", employeeID, workDate).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// ListByEmployeeBetween lists records with work_date in [from, to] (YYYY-MM-DD)
func (r *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID uint, from, to string) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND work_date BETWEEN ? AND ?", employeeID, from, to).
		Order("work_date ASC").
		Find(&records).Error
	return records, err
}

// ============================================================
// Notifications
// ============================================================

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// ListForAudiences lists the newest notifications addressed to any of audiences
func (r *notificationRepository) ListForAudiences(ctx context.Context, audiences []string, limit int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Where("target_audience IN ?", audiences).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) List(ctx context.Context, offset, limit int) ([]*models.Notification, int64, error) {
	var notifications []*models.Notification
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ============================================================
// Documents
// ============================================================

// documentRepository implements DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// GetByID gets a document including its content
func (r *documentRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// ListByEmployee lists document metadata without content
func (r *documentRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]*models.Document, error) {
	var documents []*models.Document
	err := r.db.WithContext(ctx).
		Omit("content").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (r *documentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Document{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
