package services

import (
	"context"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/config"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/password"

	"github.com/sirupsen/logrus"
)

// EmployeeAuthService handles employee account registration and login
type EmployeeAuthService struct {
	employeeRepo repositories.EmployeeRepository
	accountRepo  repositories.EmployeeAccountRepository
	adminRepo    repositories.AdminRepository
	cfg          *config.Config
}

// NewEmployeeAuthService creates a new employee auth service
func NewEmployeeAuthService(
	employeeRepo repositories.EmployeeRepository,
	accountRepo repositories.EmployeeAccountRepository,
	adminRepo repositories.AdminRepository,
	cfg *config.Config,
) *EmployeeAuthService {
	return &EmployeeAuthService{
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
		adminRepo:    adminRepo,
		cfg:          cfg,
	}
}

// EmployeeLoginInput represents employee login input
type EmployeeLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmployeeRegisterInput represents self-service registration from the login page
type EmployeeRegisterInput struct {
	Email string `json:"email" validate:"required,email"`
}

// RegistrationResult carries the generated password; it is shown once
type RegistrationResult struct {
	EmployeeID   uint   `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

// Register creates the login account of an employee profile
func (s *EmployeeAuthService) Register(ctx context.Context, employeeID uint) (*RegistrationResult, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load employee", err)
	}
	return s.register(ctx, employee)
}

// RegisterByEmail creates the login account of the profile with email
func (s *EmployeeAuthService) RegisterByEmail(ctx context.Context, email string) (*RegistrationResult, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load employee", err)
	}
	return s.register(ctx, employee)
}

func (s *EmployeeAuthService) register(ctx context.Context, employee *models.Employee) (*RegistrationResult, error) {
	email := normalizeEmail(employee.Email)

	// 1. The email must not belong to an admin
	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, storageError("check admin email", err)
	}
	if exists {
		return nil, domain.ErrAccountConflict
	}

	// 2. Friendly pre-check; the unique index on employee_id decides races
	exists, err = s.accountRepo.ExistsByEmployeeID(ctx, employee.ID)
	if err != nil {
		return nil, storageError("check account", err)
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	// 3. Derive and hash the password
	generated := password.DeriveForProfile(employee.EmployeeCode, employee.Phone, employee.DateOfBirth)
	hashedPassword, err := password.HashWithCost(generated, s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, storageError("hash password", err)
	}

	account := &models.EmployeeAccount{
		EmployeeID: employee.ID,
		Email:      email,
		Password:   hashedPassword,
		Status:     domain.AccountActive,
		Role:       string(domain.RoleEmployee),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, storageError("create account", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"employee_id":   employee.ID,
		"employee_code": employee.EmployeeCode,
	}).Info("✅ Employee registered")

	return &RegistrationResult{
		EmployeeID:   employee.ID,
		EmployeeCode: employee.EmployeeCode,
		Email:        email,
		Password:     generated,
	}, nil
}

// Login authenticates an employee. Checks run in order: admin email
// conflict, account lookup, password, account status.
func (s *EmployeeAuthService) Login(ctx context.Context, input *EmployeeLoginInput) (*domain.Identity, error) {
	email := normalizeEmail(input.Email)

	// 1. Admin emails cannot log into the employee portal
	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, storageError("check admin email", err)
	}
	if exists {
		return nil, domain.ErrAccountConflict
	}

	// 2. Find account
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, storageError("load account", err)
	}

	// 3. Verify password
	if !password.Verify(input.Password, account.Password) {
		return nil, domain.ErrInvalidCredential
	}

	// 4. Check status
	if !account.IsActive() {
		return nil, domain.ErrInactiveAccount
	}

	identity := &domain.Identity{
		ID:    account.EmployeeID,
		Email: account.Email,
		Role:  domain.RoleEmployee,
	}
	if account.Employee != nil {
		identity.Name = account.Employee.FullName()
	}
	return identity, nil
}

// SetStatus activates or deactivates the account of an employee
func (s *EmployeeAuthService) SetStatus(ctx context.Context, employeeID uint, active bool) error {
	status := domain.AccountInactive
	if active {
		status = domain.AccountActive
	}

	if err := s.accountRepo.UpdateStatus(ctx, employeeID, status); err != nil {
		if isNotFound(err) {
			return domain.ErrAccountNotFound
		}
		return storageError("update account status", err)
	}

	logger.Log.Infof("✅ Employee account %d is now %s", employeeID, status)
	return nil
}
