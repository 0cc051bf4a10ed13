package repositories

import (
	"context"

	"ems-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// employeeAccountRepository implements EmployeeAccountRepository interface
type employeeAccountRepository struct {
	db *gorm.DB
}

// NewEmployeeAccountRepository creates a new employee account repository
func NewEmployeeAccountRepository(db *gorm.DB) EmployeeAccountRepository {
	return &employeeAccountRepository{db: db}
}

// Create inserts an account. A second account for the same employee fails
// with gorm.ErrDuplicatedKey.
func (r *employeeAccountRepository) Create(ctx context.Context, account *models.EmployeeAccount) error {
	return translateError(r.db.WithContext(ctx).Create(account).Error)
}

// GetByEmail gets an account by (lowercased) email
func (r *employeeAccountRepository) GetByEmail(ctx context.Context, email string) (*models.EmployeeAccount, error) {
	var account models.EmployeeAccount
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmployeeID gets the account of an employee profile
func (r *employeeAccountRepository) GetByEmployeeID(ctx context.Context, employeeID uint) (*models.EmployeeAccount, error) {
	var account models.EmployeeAccount
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByEmployeeID checks if the employee is registered
func (r *employeeAccountRepository) ExistsByEmployeeID(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EmployeeAccount{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if an employee account email exists
func (r *employeeAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EmployeeAccount{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdatePassword overwrites the password hash
func (r *employeeAccountRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.EmployeeAccount{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}

// UpdateStatus sets the account status of an employee
func (r *employeeAccountRepository) UpdateStatus(ctx context.Context, employeeID uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.EmployeeAccount{}).
		Where("employee_id = ?", employeeID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateEmail sets the login email of an employee's account
func (r *employeeAccountRepository) UpdateEmail(ctx context.Context, employeeID uint, email string) error {
	result := r.db.WithContext(ctx).
		Model(&models.EmployeeAccount{}).
		Where("employee_id = ?", employeeID).
		Update("email", email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListEmployeeIDs returns which of employeeIDs have an account
func (r *employeeAccountRepository) ListEmployeeIDs(ctx context.Context, employeeIDs []uint) ([]uint, error) {
	var ids []uint
	if len(employeeIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.EmployeeAccount{}).
		Where("employee_id IN ?", employeeIDs).
		Pluck("employee_id", &ids).Error
	return ids, err
}

// Count counts registered employees
func (r *employeeAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EmployeeAccount{}).Count(&count).Error
	return count, err
}
