package services

import (
	"context"
	"fmt"
	"strings"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
)

// OrgService handles departments and designations
type OrgService struct {
	departmentRepo  repositories.DepartmentRepository
	designationRepo repositories.DesignationRepository
	employeeRepo    repositories.EmployeeRepository
}

// NewOrgService creates a new organisation service
func NewOrgService(
	departmentRepo repositories.DepartmentRepository,
	designationRepo repositories.DesignationRepository,
	employeeRepo repositories.EmployeeRepository,
) *OrgService {
	return &OrgService{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		employeeRepo:    employeeRepo,
	}
}

// DepartmentInput represents the department form
type DepartmentInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"max=150"`
}

// DesignationInput represents the designation form
type DesignationInput struct {
	Title        string `json:"title" validate:"required,max=100"`
	DepartmentID *uint  `json:"department_id"`
}

// ============================================================
// Departments
// ============================================================

// ListDepartments lists departments with usage counts
func (s *OrgService) ListDepartments(ctx context.Context) ([]*repositories.DepartmentSummary, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, storageError("list departments", err)
	}
	return departments, nil
}

// CreateDepartment creates a department
func (s *OrgService) CreateDepartment(ctx context.Context, input *DepartmentInput) (*models.Department, error) {
	department := &models.Department{
		Name:     strings.TrimSpace(input.Name),
		Location: strings.TrimSpace(input.Location),
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, storageError("create department", err)
	}

	logger.Log.Infof("✅ Department created: %s", department.Name)
	return department, nil
}

// UpdateDepartment updates a department
func (s *OrgService) UpdateDepartment(ctx context.Context, id uint, input *DepartmentInput) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load department", err)
	}

	department.Name = strings.TrimSpace(input.Name)
	department.Location = strings.TrimSpace(input.Location)
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, storageError("update department", err)
	}
	return department, nil
}

// DeleteDepartment deletes a department no employee or designation references
func (s *OrgService) DeleteDepartment(ctx context.Context, id uint) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("load department", err)
	}

	employees, err := s.employeeRepo.CountByDepartment(ctx, id)
	if err != nil {
		return storageError("count employees", err)
	}
	if employees > 0 {
		return fmt.Errorf("%w: department has %d employees", domain.ErrInUse, employees)
	}

	designations, err := s.designationRepo.CountByDepartment(ctx, id)
	if err != nil {
		return storageError("count designations", err)
	}
	if designations > 0 {
		return fmt.Errorf("%w: department has %d designations", domain.ErrInUse, designations)
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("delete department", err)
	}

	logger.Log.Infof("✅ Department deleted: %d", id)
	return nil
}

// ============================================================
// Designations
// ============================================================

// ListDesignations lists designations, optionally of one department
func (s *OrgService) ListDesignations(ctx context.Context, departmentID *uint) ([]*repositories.DesignationSummary, error) {
	designations, err := s.designationRepo.List(ctx, departmentID)
	if err != nil {
		return nil, storageError("list designations", err)
	}
	return designations, nil
}

// CreateDesignation creates a designation
func (s *OrgService) CreateDesignation(ctx context.Context, input *DesignationInput) (*models.Designation, error) {
	if err := s.checkDepartment(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	designation := &models.Designation{
		Title:        strings.TrimSpace(input.Title),
		DepartmentID: input.DepartmentID,
	}
	if err := s.designationRepo.Create(ctx, designation); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, storageError("create designation", err)
	}

	logger.Log.Infof("✅ Designation created: %s", designation.Title)
	return designation, nil
}

// UpdateDesignation updates a designation
func (s *OrgService) UpdateDesignation(ctx context.Context, id uint, input *DesignationInput) (*models.Designation, error) {
	designation, err := s.designationRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load designation", err)
	}
	if err := s.checkDepartment(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	designation.Title = strings.TrimSpace(input.Title)
	designation.DepartmentID = input.DepartmentID
	designation.Department = nil
	if err := s.designationRepo.Update(ctx, designation); err != nil {
		return nil, storageError("update designation", err)
	}
	return designation, nil
}

// DeleteDesignation deletes a designation no employee holds
func (s *OrgService) DeleteDesignation(ctx context.Context, id uint) error {
	if _, err := s.designationRepo.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("load designation", err)
	}

	employees, err := s.employeeRepo.CountByDesignation(ctx, id)
	if err != nil {
		return storageError("count employees", err)
	}
	if employees > 0 {
		return fmt.Errorf("%w: designation is held by %d employees", domain.ErrInUse, employees)
	}

	if err := s.designationRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("delete designation", err)
	}
	return nil
}

func (s *OrgService) checkDepartment(ctx context.Context, departmentID *uint) error {
	if departmentID == nil {
		return nil
	}
	if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
		if isNotFound(err) {
			return invalid("department %d does not exist", *departmentID)
		}
		return storageError("load department", err)
	}
	return nil
}
