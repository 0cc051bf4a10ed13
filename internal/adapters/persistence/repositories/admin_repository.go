package repositories

import (
	"context"

	"ems-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// adminRepository implements AdminRepository interface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin account repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create creates a new admin account
func (r *adminRepository) Create(ctx context.Context, admin *models.AdminAccount) error {
	return translateError(r.db.WithContext(ctx).Create(admin).Error)
}

// GetByID gets an admin by ID
func (r *adminRepository) GetByID(ctx context.Context, id uint) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail gets an admin by (lowercased) email
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByUsername gets an admin by user name
func (r *adminRepository) GetByUsername(ctx context.Context, userName string) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ExistsByEmail checks if an admin email exists
func (r *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminAccount{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByUsername checks if an admin user name exists
func (r *adminRepository) ExistsByUsername(ctx context.Context, userName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminAccount{}).Where("user_name = ?", userName).Count(&count).Error
	return count > 0, err
}

// UpdatePassword overwrites the password hash
func (r *adminRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminAccount{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}
