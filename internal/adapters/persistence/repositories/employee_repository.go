package repositories

import (
	"context"

	"ems-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee profile repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee profile
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return translateError(r.db.WithContext(ctx).Create(employee).Error)
}

// GetByID gets an employee with department and designation
func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Designation").
		First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail gets an employee by (lowercased) email
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("email = ?", email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update updates an employee profile
func (r *employeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return translateError(r.db.WithContext(ctx).
		Omit("Department", "Designation").
		Save(employee).Error)
}

// Delete deletes an employee profile together with its account and HR records
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.PasswordResetRequest{},
			&models.EmployeeAccount{},
			&models.LeaveRequest{},
			&models.Task{},
			&models.Attendance{},
			&models.Document{},
		}
		for _, model := range dependents {
			if err := tx.Where("employee_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Employee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List lists employees with search and pagination
func (r *employeeRepository) List(ctx context.Context, search string, offset, limit int) ([]*models.Employee, int64, error) {
	var employees []*models.Employee
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Employee{}).Scopes(withSearch(search)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(withSearch(search)).
		Preload("Department").
		Preload("Designation").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&employees).Error
	return employees, total, err
}

// Count counts employees
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&count).Error
	return count, err
}

// CountByDepartment counts employees of a department
func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("department_id = ?", departmentID).Count(&count).Error
	return count, err
}

// CountByDesignation counts employees holding a designation
func (r *employeeRepository) CountByDesignation(ctx context.Context, designationID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("designation_id = ?", designationID).Count(&count).Error
	return count, err
}
