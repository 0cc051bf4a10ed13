package repositories

import (
	"context"
	"time"

	"ems-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// adminResetTokenRepository implements AdminResetTokenRepository interface
type adminResetTokenRepository struct {
	db *gorm.DB
}

// NewAdminResetTokenRepository creates a new admin reset token repository
func NewAdminResetTokenRepository(db *gorm.DB) AdminResetTokenRepository {
	return &adminResetTokenRepository{db: db}
}

// Create creates a new reset token record
func (r *adminResetTokenRepository) Create(ctx context.Context, token *models.AdminResetToken) error {
	return translateError(r.db.WithContext(ctx).Create(token).Error)
}

// GetByTokenHash gets a reset token by its hash
func (r *adminResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.AdminResetToken, error) {
	var token models.AdminResetToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// MarkUsed consumes a token; it reports false when the token was already used
func (r *adminResetTokenRepository) MarkUsed(ctx context.Context, id uint) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.AdminResetToken{}).
		Where("id = ?", id).
		Where("used_at IS NULL").
		Update("used_at", &now)
	return result.RowsAffected > 0, result.Error
}

// DeleteExpired deletes all expired tokens (cleanup job)
func (r *adminResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.AdminResetToken{})
	return result.RowsAffected, result.Error
}

// passwordResetRequestRepository implements PasswordResetRequestRepository interface
type passwordResetRequestRepository struct {
	db *gorm.DB
}

// NewPasswordResetRequestRepository creates a new password reset request repository
func NewPasswordResetRequestRepository(db *gorm.DB) PasswordResetRequestRepository {
	return &passwordResetRequestRepository{db: db}
}

// Create creates a new reset request
func (r *passwordResetRequestRepository) Create(ctx context.Context, req *models.PasswordResetRequest) error {
	return translateError(r.db.WithContext(ctx).Create(req).Error)
}

// GetByID gets a reset request by ID
func (r *passwordResetRequestRepository) GetByID(ctx context.Context, id uint) (*models.PasswordResetRequest, error) {
	var req models.PasswordResetRequest
	err := r.db.WithContext(ctx).Preload("Employee").First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetLatestByEmployeeID gets the newest reset request of an employee
func (r *passwordResetRequestRepository) GetLatestByEmployeeID(ctx context.Context, employeeID uint) (*models.PasswordResetRequest, error) {
	var req models.PasswordResetRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByEmployeeIDAndStatus gets the newest request of an employee in status
func (r *passwordResetRequestRepository) GetByEmployeeIDAndStatus(ctx context.Context, employeeID uint, status string) (*models.PasswordResetRequest, error) {
	var req models.PasswordResetRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Order("created_at DESC, id DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List lists reset requests, optionally filtered by status
func (r *passwordResetRequestRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.PasswordResetRequest, int64, error) {
	var reqs []*models.PasswordResetRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.PasswordResetRequest{}).Scopes(withStatus(status)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(withStatus(status)).
		Preload("Employee").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reqs).Error
	return reqs, total, err
}

// Transition moves a request from one status to another. It reports false
// when the request was not in status from.
func (r *passwordResetRequestRepository) Transition(ctx context.Context, id uint, from, to string, at time.Time) (bool, error) {
	updates := map[string]interface{}{"status": to}
	switch to {
	case "Completed":
		updates["completed_at"] = at
	default:
		updates["reviewed_at"] = at
	}

	result := r.db.WithContext(ctx).
		Model(&models.PasswordResetRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return result.RowsAffected > 0, result.Error
}

// ExpirePendingBefore expires pending requests created before the cutoff
func (r *passwordResetRequestRepository) ExpirePendingBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.PasswordResetRequest{}).
		Where("status = ? AND created_at < ?", "Pending", before).
		Updates(map[string]interface{}{"status": "Expired", "reviewed_at": time.Now()})
	return result.RowsAffected, result.Error
}

// CountByStatus counts requests in status
func (r *passwordResetRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PasswordResetRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
