package handlers

import (
	"errors"

	"ems-portal/internal/adapters/http/middleware"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/services"
	"ems-portal/internal/core/session"
	"ems-portal/internal/pkg/metrics"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the public login, sign-up and password endpoints of both portals
type AuthHandler struct {
	adminAuth    *services.AdminAuthService
	employeeAuth *services.EmployeeAuthService
	resets       *services.PasswordResetService
	manager      *session.Manager
	board        *session.RedirectBoard
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	adminAuth *services.AdminAuthService,
	employeeAuth *services.EmployeeAuthService,
	resets *services.PasswordResetService,
	manager *session.Manager,
	board *session.RedirectBoard,
) *AuthHandler {
	return &AuthHandler{
		adminAuth:    adminAuth,
		employeeAuth: employeeAuth,
		resets:       resets,
		manager:      manager,
		board:        board,
	}
}

// ForgotRequest represents the admin forgot password form
type ForgotRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AdminSignUp creates an admin account
// @Summary Admin sign-up
// @Description Create an admin account. Requires the configured sign-up code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.AdminSignUpInput true "Sign-up data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/admin/signup [post]
func (h *AuthHandler) AdminSignUp(c *fiber.Ctx) error {
	var req services.AdminSignUpInput
	if err := bind(c, &req); err != nil {
		return err
	}

	identity, err := h.adminAuth.SignUp(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			return response.Forbidden(c, "Invalid sign-up code")
		}
		return fail(c, err, "Account not found")
	}

	return response.Created(c, "Admin account created", identity)
}

// AdminLogin starts an admin session for this client
// @Summary Admin login
// @Description Authenticate with email or user name
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.AdminLoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req services.AdminLoginInput
	if err := bind(c, &req); err != nil {
		return err
	}

	identity, err := h.adminAuth.Login(c.UserContext(), &req)
	if err != nil {
		metrics.LoginAttempt(string(domain.RoleAdmin), "failure")
		return fail(c, err, "Account not found")
	}
	return h.startSession(c, identity)
}

// AdminLogout ends the admin session of this client
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/admin/logout [post]
func (h *AuthHandler) AdminLogout(c *fiber.Ctx) error {
	return h.endSession(c, domain.RoleAdmin)
}

// AdminForgot mails a reset link when the email belongs to an admin
// @Summary Admin forgot password
// @Description Always answers with the same message so emails cannot be probed
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ForgotRequest true "Admin email"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/admin/forgot [post]
func (h *AuthHandler) AdminForgot(c *fiber.Ctx) error {
	var req ForgotRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.adminAuth.RequestPasswordReset(c.UserContext(), req.Email); err != nil {
		return fail(c, err, "Account not found")
	}
	return response.Success(c, "If the email is registered, a reset link has been sent", nil)
}

// AdminReset stores a new admin password from a mailed link
// @Summary Admin reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.AdminResetInput true "Token and new password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/admin/reset [post]
func (h *AuthHandler) AdminReset(c *fiber.Ctx) error {
	var req services.AdminResetInput
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.adminAuth.ResetPassword(c.UserContext(), &req); err != nil {
		return fail(c, err, "Account not found")
	}
	return response.Success(c, "Password updated, please log in", nil)
}

// EmployeeLogin starts an employee session for this client
// @Summary Employee login
// @Description Authenticate with email and the derived or reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.EmployeeLoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/employee/login [post]
func (h *AuthHandler) EmployeeLogin(c *fiber.Ctx) error {
	var req services.EmployeeLoginInput
	if err := bind(c, &req); err != nil {
		return err
	}

	identity, err := h.employeeAuth.Login(c.UserContext(), &req)
	if err != nil {
		metrics.LoginAttempt(string(domain.RoleEmployee), "failure")
		return fail(c, err, "Account not found")
	}
	return h.startSession(c, identity)
}

// EmployeeRegister creates the login account of the employee profile with this email
// @Summary Employee self registration
// @Description Returns the derived password once
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.EmployeeRegisterInput true "Profile email"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/employee/register [post]
func (h *AuthHandler) EmployeeRegister(c *fiber.Ctx) error {
	var req services.EmployeeRegisterInput
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.employeeAuth.RegisterByEmail(c.UserContext(), req.Email)
	if err != nil {
		return fail(c, err, "No employee profile with this email")
	}
	return response.Created(c, "Employee registered", result)
}

// EmployeeLogout ends the employee session of this client
// @Summary Employee logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/employee/logout [post]
func (h *AuthHandler) EmployeeLogout(c *fiber.Ctx) error {
	return h.endSession(c, domain.RoleEmployee)
}

// EmployeeForgot files a password reset request for admin review
// @Summary Employee forgot password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.ResetRequestInput true "Account email"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/employee/forgot [post]
func (h *AuthHandler) EmployeeForgot(c *fiber.Ctx) error {
	var req services.ResetRequestInput
	if err := bind(c, &req); err != nil {
		return err
	}

	request, err := h.resets.Request(c.UserContext(), req.Email)
	if err != nil {
		return fail(c, err, "Account not found")
	}
	return response.Created(c, "Reset request sent to the administrator", fiber.Map{
		"request_id": request.ID,
		"status":     request.Status,
	})
}

// EmployeeForgotStatus returns the state of the newest reset request
// @Summary Employee reset request status
// @Tags Auth
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/employee/forgot/status [get]
func (h *AuthHandler) EmployeeForgotStatus(c *fiber.Ctx) error {
	req := services.ResetRequestInput{Email: c.Query("email")}
	if err := check(&req); err != nil {
		return err
	}

	status, err := h.resets.Status(c.UserContext(), req.Email)
	if err != nil {
		return fail(c, err, "No reset request found")
	}
	return response.Success(c, "Reset request status", status)
}

// EmployeeReset sets a new password after the request was approved
// @Summary Employee reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.EmployeeResetInput true "Email and new password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/employee/reset [post]
func (h *AuthHandler) EmployeeReset(c *fiber.Ctx) error {
	var req services.EmployeeResetInput
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.resets.Reset(c.UserContext(), &req); err != nil {
		return fail(c, err, "No approved reset request found")
	}
	return response.Success(c, "Password updated, please log in", nil)
}

func (h *AuthHandler) startSession(c *fiber.Ctx, identity *domain.Identity) error {
	clientID := middleware.ClientID(c)
	if err := h.manager.Login(c.UserContext(), clientID, *identity); err != nil {
		return fail(c, err, "Account not found")
	}
	h.board.Clear(clientID, identity.Role)
	metrics.LoginAttempt(string(identity.Role), "success")

	return response.Success(c, "Login successful", fiber.Map{
		"identity": identity,
		"redirect": homeRoute(identity.Role),
	})
}

func (h *AuthHandler) endSession(c *fiber.Ctx, role domain.Role) error {
	clientID := middleware.ClientID(c)
	if err := h.manager.Logout(c.UserContext(), clientID, role); err != nil {
		return fail(c, err, "Account not found")
	}
	h.board.Clear(clientID, role)

	return response.Success(c, "Logged out successfully", fiber.Map{
		"redirect": session.LoginRoute(role),
	})
}

func homeRoute(role domain.Role) string {
	if role == domain.RoleAdmin {
		return "/dashboard"
	}
	return "/employee/dashboard"
}
