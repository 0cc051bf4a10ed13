package services

import (
	"context"
	"fmt"
	"time"

	"ems-portal/internal/adapters/mail"
	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/config"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/pkg/password"
)

// StaleResetAge is how long a reset request may wait for review
const StaleResetAge = 7 * 24 * time.Hour

// PasswordResetService handles admin-reviewed employee password resets
type PasswordResetService struct {
	accountRepo repositories.EmployeeAccountRepository
	resetRepo   repositories.PasswordResetRequestRepository
	mailer      mail.Mailer
	cfg         *config.Config
	now         func() time.Time
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	accountRepo repositories.EmployeeAccountRepository,
	resetRepo repositories.PasswordResetRequestRepository,
	mailer mail.Mailer,
	cfg *config.Config,
) *PasswordResetService {
	return &PasswordResetService{
		accountRepo: accountRepo,
		resetRepo:   resetRepo,
		mailer:      mailer,
		cfg:         cfg,
		now:         time.Now,
	}
}

// ResetRequestInput represents the forgot password form of the employee portal
type ResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// EmployeeResetInput represents the new password form after approval
type EmployeeResetInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ResetStatus is the state of the newest request of an employee
type ResetStatus struct {
	RequestID uint      `json:"request_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Request files a pending reset request. One pending request per employee.
func (s *PasswordResetService) Request(ctx context.Context, email string) (*models.PasswordResetRequest, error) {
	account, err := s.account(ctx, email)
	if err != nil {
		return nil, err
	}

	if _, err := s.resetRepo.GetByEmployeeIDAndStatus(ctx, account.EmployeeID, domain.ResetPending); err == nil {
		return nil, fmt.Errorf("%w: a reset request is already pending", domain.ErrInvalidState)
	} else if !isNotFound(err) {
		return nil, storageError("check pending request", err)
	}

	req := &models.PasswordResetRequest{
		EmployeeAccountID: account.ID,
		EmployeeID:        account.EmployeeID,
		Email:             account.Email,
		Status:            domain.ResetPending,
	}
	if err := s.resetRepo.Create(ctx, req); err != nil {
		return nil, storageError("create reset request", err)
	}

	logger.Log.Infof("✅ Password reset requested: employee_id=%d", account.EmployeeID)
	return req, nil
}

// Status returns the newest request of the employee with email
func (s *PasswordResetService) Status(ctx context.Context, email string) (*ResetStatus, error) {
	account, err := s.account(ctx, email)
	if err != nil {
		return nil, err
	}

	req, err := s.resetRepo.GetLatestByEmployeeID(ctx, account.EmployeeID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load reset request", err)
	}

	return &ResetStatus{RequestID: req.ID, Status: req.Status, CreatedAt: req.CreatedAt}, nil
}

// List lists requests for the admin review page
func (s *PasswordResetService) List(ctx context.Context, status string, params *pagination.Params) ([]*models.PasswordResetRequest, int64, error) {
	reqs, total, err := s.resetRepo.List(ctx, status, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, storageError("list reset requests", err)
	}
	return reqs, total, nil
}

// Approve allows the employee to choose a new password
func (s *PasswordResetService) Approve(ctx context.Context, id uint) error {
	req, err := s.review(ctx, id, domain.ResetApproved)
	if err != nil {
		return err
	}

	msg := mail.Message{
		ToEmail: req.Email,
		Subject: "Your password reset was approved",
		Text:    fmt.Sprintf("Your password reset request was approved. Set a new password at %s/employee/reset-password", s.cfg.BaseURL),
	}
	if req.Employee != nil {
		msg.ToName = req.Employee.FullName()
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		// The approval stands; the employee can still check the status page
		logger.Log.Errorf("❌ Failed to send approval mail: %v", err)
	}
	return nil
}

// Reject refuses a pending request
func (s *PasswordResetService) Reject(ctx context.Context, id uint) error {
	_, err := s.review(ctx, id, domain.ResetRejected)
	return err
}

func (s *PasswordResetService) review(ctx context.Context, id uint, to string) (*models.PasswordResetRequest, error) {
	req, err := s.resetRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load reset request", err)
	}

	moved, err := s.resetRepo.Transition(ctx, id, domain.ResetPending, to, s.now())
	if err != nil {
		return nil, storageError("update reset request", err)
	}
	if !moved {
		return nil, fmt.Errorf("%w: request is %s", domain.ErrInvalidState, req.Status)
	}

	logger.Log.Infof("✅ Password reset request %d %s", id, to)
	req.Status = to
	return req, nil
}

// Reset stores a new password for an employee whose request was approved
func (s *PasswordResetService) Reset(ctx context.Context, input *EmployeeResetInput) error {
	if input.Password != input.ConfirmPassword {
		return invalid("passwords do not match")
	}
	if !password.ValidatePassword(input.Password) {
		return invalid("password must be at least %d characters", password.MinLength)
	}

	account, err := s.account(ctx, input.Email)
	if err != nil {
		return err
	}

	req, err := s.resetRepo.GetByEmployeeIDAndStatus(ctx, account.EmployeeID, domain.ResetApproved)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: no approved reset request", domain.ErrInvalidState)
		}
		return storageError("load reset request", err)
	}

	// Consume the approval first so it can only be used once
	moved, err := s.resetRepo.Transition(ctx, req.ID, domain.ResetApproved, domain.ResetCompleted, s.now())
	if err != nil {
		return storageError("complete reset request", err)
	}
	if !moved {
		return fmt.Errorf("%w: no approved reset request", domain.ErrInvalidState)
	}

	hashedPassword, err := password.HashWithCost(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return storageError("hash password", err)
	}
	if err := s.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		return storageError("update password", err)
	}

	logger.Log.Infof("✅ Employee password reset: employee_id=%d", account.EmployeeID)
	return nil
}

// ExpireStale expires pending requests older than olderThan
func (s *PasswordResetService) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := s.resetRepo.ExpirePendingBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, storageError("expire reset requests", err)
	}
	return n, nil
}

func (s *PasswordResetService) account(ctx context.Context, email string) (*models.EmployeeAccount, error) {
	account, err := s.accountRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, storageError("load account", err)
	}
	return account, nil
}
