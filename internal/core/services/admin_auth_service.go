package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"ems-portal/internal/adapters/mail"
	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/config"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/jwt"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/password"

	"github.com/google/uuid"
)

// AdminAuthService handles admin sign-up, login and password reset
type AdminAuthService struct {
	adminRepo   repositories.AdminRepository
	accountRepo repositories.EmployeeAccountRepository
	tokenRepo   repositories.AdminResetTokenRepository
	mailer      mail.Mailer
	cfg         *config.Config
	now         func() time.Time
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(
	adminRepo repositories.AdminRepository,
	accountRepo repositories.EmployeeAccountRepository,
	tokenRepo repositories.AdminResetTokenRepository,
	mailer mail.Mailer,
	cfg *config.Config,
) *AdminAuthService {
	return &AdminAuthService{
		adminRepo:   adminRepo,
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		cfg:         cfg,
		now:         time.Now,
	}
}

// AdminSignUpInput represents admin sign-up input
type AdminSignUpInput struct {
	Email      string `json:"email" validate:"required,email,max=100"`
	UserName   string `json:"user_name" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	SignupCode string `json:"signup_code" validate:"required"`
}

// AdminLoginInput represents admin login input. Login accepts an email or a user name.
type AdminLoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminResetInput represents the reset form submitted from the mailed link
type AdminResetInput struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SignUp creates an admin account
func (s *AdminAuthService) SignUp(ctx context.Context, input *AdminSignUpInput) (*domain.Identity, error) {
	// 1. Sign-up is gated by the configured code
	code := s.cfg.Admin.SignupCode
	if code == "" {
		return nil, domain.ErrSignupDisabled
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(input.SignupCode)) != 1 {
		return nil, domain.ErrInvalidCredential
	}

	email := normalizeEmail(input.Email)
	userName := strings.TrimSpace(input.UserName)

	// 2. The email must not belong to an employee account
	exists, err := s.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, storageError("check employee email", err)
	}
	if exists {
		return nil, domain.ErrAccountConflict
	}

	// 3. Email and user name are unique among admins
	exists, err = s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, storageError("check admin email", err)
	}
	if !exists {
		exists, err = s.adminRepo.ExistsByUsername(ctx, userName)
		if err != nil {
			return nil, storageError("check admin user name", err)
		}
	}
	if exists {
		return nil, domain.ErrDuplicateEntry
	}

	// 4. Hash password
	hashedPassword, err := password.HashWithCost(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, storageError("hash password", err)
	}

	admin := &models.AdminAccount{
		Email:    email,
		UserName: userName,
		Password: hashedPassword,
		Role:     string(domain.RoleAdmin),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, storageError("create admin", err)
	}

	logger.Log.Infof("✅ Admin registered: %s", admin.UserName)
	return adminIdentity(admin), nil
}

// Login authenticates an admin by email or user name
func (s *AdminAuthService) Login(ctx context.Context, input *AdminLoginInput) (*domain.Identity, error) {
	login := strings.TrimSpace(input.Login)

	var (
		admin *models.AdminAccount
		err   error
	)
	if strings.Contains(login, "@") {
		admin, err = s.adminRepo.GetByEmail(ctx, normalizeEmail(login))
	} else {
		admin, err = s.adminRepo.GetByUsername(ctx, login)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, storageError("load admin", err)
	}

	if !password.Verify(input.Password, admin.Password) {
		return nil, domain.ErrInvalidCredential
	}

	return adminIdentity(admin), nil
}

// RequestPasswordReset mails a single use reset link. Unknown emails succeed silently.
func (s *AdminAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	admin, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			logger.Log.Warnf("⚠️ Password reset requested for unknown admin email")
			return nil
		}
		return storageError("load admin", err)
	}

	tokenID := uuid.New().String()
	token, err := jwt.GenerateResetToken(admin.ID, admin.Email, tokenID, s.cfg.JWT.ResetSecret, s.cfg.JWT.ResetTokenMins)
	if err != nil {
		return storageError("sign reset token", err)
	}

	record := &models.AdminResetToken{
		AdminID:   admin.ID,
		TokenHash: password.HashToken(tokenID),
		ExpiresAt: s.now().Add(time.Duration(s.cfg.JWT.ResetTokenMins) * time.Minute),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return storageError("store reset token", err)
	}

	link := fmt.Sprintf("%s/new-password?token=%s", s.cfg.BaseURL, token)
	msg := mail.Message{
		ToName:  admin.UserName,
		ToEmail: admin.Email,
		Subject: "Reset your EMS admin password",
		Text: fmt.Sprintf("Open the link below within %d minutes to choose a new password:\n\n%s\n\nIf you did not ask for a reset, ignore this email.",
			s.cfg.JWT.ResetTokenMins, link),
		HTML: fmt.Sprintf(`<p>Open the link below within %d minutes to choose a new password:</p><p><a href="%s">Reset password</a></p><p>If you did not ask for a reset, ignore this email.</p>`,
			s.cfg.JWT.ResetTokenMins, link),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Log.Errorf("❌ Failed to send admin reset mail: %v", err)
		return storageError("send reset mail", err)
	}

	logger.Log.Infof("✅ Admin reset link issued: admin_id=%d", admin.ID)
	return nil
}

// ResetPassword consumes a reset token and stores the new password
func (s *AdminAuthService) ResetPassword(ctx context.Context, input *AdminResetInput) error {
	if input.Password != input.ConfirmPassword {
		return invalid("passwords do not match")
	}
	if !password.ValidatePassword(input.Password) {
		return invalid("password must be at least %d characters", password.MinLength)
	}

	claims, err := jwt.ValidateResetToken(input.Token, s.cfg.JWT.ResetSecret)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	record, err := s.tokenRepo.GetByTokenHash(ctx, password.HashToken(claims.ID))
	if err != nil {
		if isNotFound(err) {
			return domain.ErrTokenInvalid
		}
		return storageError("load reset token", err)
	}
	if record.AdminID != claims.AdminID || record.IsUsed() || record.IsExpired(s.now()) {
		return domain.ErrTokenInvalid
	}

	// Consume first so a token can never be used twice
	used, err := s.tokenRepo.MarkUsed(ctx, record.ID)
	if err != nil {
		return storageError("consume reset token", err)
	}
	if !used {
		return domain.ErrTokenInvalid
	}

	hashedPassword, err := password.HashWithCost(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return storageError("hash password", err)
	}
	if err := s.adminRepo.UpdatePassword(ctx, record.AdminID, hashedPassword); err != nil {
		return storageError("update admin password", err)
	}

	logger.Log.Infof("✅ Admin password reset: admin_id=%d", record.AdminID)
	return nil
}

func adminIdentity(admin *models.AdminAccount) *domain.Identity {
	return &domain.Identity{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.UserName,
		Role:  domain.RoleAdmin,
	}
}
