package services

import (
	"context"
	"strings"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/pagination"
)

// EmployeeService handles employee profiles
type EmployeeService struct {
	employeeRepo    repositories.EmployeeRepository
	accountRepo     repositories.EmployeeAccountRepository
	adminRepo       repositories.AdminRepository
	departmentRepo  repositories.DepartmentRepository
	designationRepo repositories.DesignationRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	accountRepo repositories.EmployeeAccountRepository,
	adminRepo repositories.AdminRepository,
	departmentRepo repositories.DepartmentRepository,
	designationRepo repositories.DesignationRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo:    employeeRepo,
		accountRepo:     accountRepo,
		adminRepo:       adminRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

// EmployeeInput represents the employee profile form
type EmployeeInput struct {
	EmployeeCode  string   `json:"employee_code" validate:"required,max=30"`
	FirstName     string   `json:"first_name" validate:"required,max=100"`
	LastName      string   `json:"last_name" validate:"max=100"`
	Email         string   `json:"email" validate:"required,email,max=100"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth   string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	HireDate      string   `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Salary        *float64 `json:"salary" validate:"omitempty,gte=0"`
	DepartmentID  *uint    `json:"department_id"`
	DesignationID *uint    `json:"designation_id"`
	Status        string   `json:"status" validate:"omitempty,oneof=Active Inactive Terminated"`
}

// Create creates an employee profile
func (s *EmployeeService) Create(ctx context.Context, input *EmployeeInput) (*models.EmployeeResponse, error) {
	employee := &models.Employee{}
	if err := s.apply(ctx, employee, input); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, storageError("create employee", err)
	}

	logger.Log.Infof("✅ Employee created: %s", employee.EmployeeCode)
	return s.Get(ctx, employee.ID)
}

// Get returns an employee profile with its registration flag
func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load employee", err)
	}

	registered, err := s.accountRepo.ExistsByEmployeeID(ctx, id)
	if err != nil {
		return nil, storageError("check account", err)
	}

	resp := employee.ToResponse()
	resp.Registered = registered
	return resp, nil
}

// Update updates an employee profile. A changed email is copied to the
// employee's login account when one exists.
func (s *EmployeeService) Update(ctx context.Context, id uint, input *EmployeeInput) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load employee", err)
	}
	previousEmail := employee.Email

	if err := s.apply(ctx, employee, input); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, storageError("update employee", err)
	}

	if employee.Email != previousEmail {
		if err := s.accountRepo.UpdateEmail(ctx, id, employee.Email); err != nil && !isNotFound(err) {
			if isDuplicate(err) {
				return nil, domain.ErrDuplicateEntry
			}
			return nil, storageError("update account email", err)
		}
	}

	return s.Get(ctx, id)
}

// Delete deletes an employee profile and everything owned by it
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return storageError("delete employee", err)
	}

	logger.Log.Infof("✅ Employee deleted: %d", id)
	return nil
}

// List lists employee profiles; each carries whether an account exists
func (s *EmployeeService) List(ctx context.Context, params *pagination.Params) ([]*models.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, params.Search, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, storageError("list employees", err)
	}

	ids := make([]uint, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}

	registered := make(map[uint]bool, len(ids))
	if len(ids) > 0 {
		accountIDs, err := s.accountRepo.ListEmployeeIDs(ctx, ids)
		if err != nil {
			return nil, 0, storageError("list accounts", err)
		}
		for _, id := range accountIDs {
			registered[id] = true
		}
	}

	result := make([]*models.EmployeeResponse, len(employees))
	for i, e := range employees {
		result[i] = e.ToResponse()
		result[i].Registered = registered[e.ID]
	}
	return result, total, nil
}

func (s *EmployeeService) apply(ctx context.Context, employee *models.Employee, input *EmployeeInput) error {
	hireDate, err := parseDate("hire_date", input.HireDate)
	if err != nil {
		return err
	}
	dob, err := parseOptionalDate("date_of_birth", input.DateOfBirth)
	if err != nil {
		return err
	}

	if input.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *input.DepartmentID); err != nil {
			if isNotFound(err) {
				return invalid("department %d does not exist", *input.DepartmentID)
			}
			return storageError("load department", err)
		}
	}
	if input.DesignationID != nil {
		designation, err := s.designationRepo.GetByID(ctx, *input.DesignationID)
		if err != nil {
			if isNotFound(err) {
				return invalid("designation %d does not exist", *input.DesignationID)
			}
			return storageError("load designation", err)
		}
		if input.DepartmentID != nil && designation.DepartmentID != nil && *designation.DepartmentID != *input.DepartmentID {
			return invalid("designation %d belongs to another department", *input.DesignationID)
		}
	}

	email := normalizeEmail(input.Email)
	if email != employee.Email {
		exists, err := s.adminRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return storageError("check admin email", err)
		}
		if exists {
			return domain.ErrAccountConflict
		}
	}

	status := input.Status
	if status == "" {
		status = domain.EmployeeActive
	}

	employee.EmployeeCode = strings.TrimSpace(input.EmployeeCode)
	employee.FirstName = strings.TrimSpace(input.FirstName)
	employee.LastName = strings.TrimSpace(input.LastName)
	employee.Email = email
	employee.Phone = strings.TrimSpace(input.Phone)
	employee.DateOfBirth = dob
	employee.HireDate = hireDate
	employee.Salary = input.Salary
	employee.DepartmentID = input.DepartmentID
	employee.DesignationID = input.DesignationID
	employee.Status = status
	employee.Department = nil
	employee.Designation = nil
	return nil
}
