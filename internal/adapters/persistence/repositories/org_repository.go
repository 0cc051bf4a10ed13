package repositories

import (
	"context"

	"ems-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// departmentRepository implements DepartmentRepository interface
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	return translateError(r.db.WithContext(ctx).Create(department).Error)
}

func (r *departmentRepository) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	var department models.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	var department models.Department
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	return translateError(r.db.WithContext(ctx).Save(department).Error)
}

func (r *departmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists departments by name with employee and designation counts
func (r *departmentRepository) List(ctx context.Context) ([]*DepartmentSummary, error) {
	var out []*DepartmentSummary
	err := r.db.WithContext(ctx).
		Model(&models.Department{}).
		Select("departments.*, " +
			"(SELECT COUNT(*) FROM employees WHERE employees.department_id = departments.id) AS employee_count, " +
			"(SELECT COUNT(*) FROM designations WHERE designations.department_id = departments.id) AS designation_count").
		Order("departments.name ASC").
		Scan(&out).Error
	return out, err
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Department{}).Count(&count).Error
	return count, err
}

// designationRepository implements DesignationRepository interface
type designationRepository struct {
	db *gorm.DB
}

// NewDesignationRepository creates a new designation repository
func NewDesignationRepository(db *gorm.DB) DesignationRepository {
	return &designationRepository{db: db}
}

func (r *designationRepository) Create(ctx context.Context, designation *models.Designation) error {
	return translateError(r.db.WithContext(ctx).Create(designation).Error)
}

func (r *designationRepository) GetByID(ctx context.Context, id uint) (*models.Designation, error) {
	var designation models.Designation
	if err := r.db.WithContext(ctx).Preload("Department").First(&designation, id).Error; err != nil {
		return nil, err
	}
	return &designation, nil
}

func (r *designationRepository) Update(ctx context.Context, designation *models.Designation) error {
	return translateError(r.db.WithContext(ctx).Omit("Department").Save(designation).Error)
}

func (r *designationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Designation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists designations, optionally of one department, with employee counts
func (r *designationRepository) List(ctx context.Context, departmentID *uint) ([]*DesignationSummary, error) {
	var out []*DesignationSummary
	query := r.db.WithContext(ctx).
		Model(&models.Designation{}).
		Select("designations.*, " +
			"(SELECT COUNT(*) FROM employees WHERE employees.designation_id = designations.id) AS employee_count")
	if departmentID != nil {
		query = query.Where("designations.department_id = ?", *departmentID)
	}
	err := query.Order("designations.title ASC").Scan(&out).Error
	return out, err
}

func (r *designationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Designation{}).Count(&count).Error
	return count, err
}

func (r *designationRepository) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Designation{}).Where("department_id = ?", departmentID).Count(&count).Error
	return count, err
}
