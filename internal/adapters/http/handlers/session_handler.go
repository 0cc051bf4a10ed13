package handlers

import (
	"time"

	"ems-portal/internal/adapters/http/middleware"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/session"
	"ems-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler receives UI heartbeats and reports session state
type SessionHandler struct {
	manager *session.Manager
	board   *session.RedirectBoard
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *session.Manager, board *session.RedirectBoard) *SessionHandler {
	return &SessionHandler{manager: manager, board: board}
}

// ActivityRequest is one user-interaction event seen by the UI
type ActivityRequest struct {
	Role string `json:"role" validate:"required,oneof=admin employee"`
	Kind string `json:"kind" validate:"required"`
}

// SessionStatus is the view of one portal session of the client
type SessionStatus struct {
	Role          domain.Role              `json:"role"`
	Authenticated bool                     `json:"authenticated"`
	Identity      *domain.Identity         `json:"identity,omitempty"`
	ExpiresAt     *time.Time               `json:"expires_at,omitempty"`
	Redirect      *session.PendingRedirect `json:"redirect,omitempty"`
}

// Activity resets the inactivity timer of a session
// @Summary Report user activity
// @Description Qualifying kinds are mousemove, mousedown, keypress, click, scroll and touchstart
// @Tags Session
// @Accept json
// @Produce json
// @Param body body ActivityRequest true "Event"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /session/activity [post]
func (h *SessionHandler) Activity(c *fiber.Ctx) error {
	var req ActivityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	touched := false
	if kind, ok := session.ParseEventKind(req.Kind); ok {
		touched = h.manager.Touch(middleware.ClientID(c), domain.Role(req.Role), kind)
	}
	return response.Success(c, "Activity recorded", fiber.Map{"active": touched})
}

// Status returns whether the client is logged in to a portal and any
// redirect left by an inactivity logout
// @Summary Session status
// @Tags Session
// @Produce json
// @Param role query string true "admin or employee"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /session/status [get]
func (h *SessionHandler) Status(c *fiber.Ctx) error {
	role := domain.Role(c.Query("role"))
	if !role.Valid() {
		return response.BadRequest(c, "role must be admin or employee")
	}

	clientID := middleware.ClientID(c)
	status := SessionStatus{Role: role}

	holder := h.manager.Holder(c.UserContext(), clientID)
	if identity, ok := holder.Current(role); ok {
		status.Authenticated = true
		status.Identity = &identity
		if mon, ok := h.manager.Monitor(clientID, role); ok {
			deadline := mon.Deadline().UTC()
			status.ExpiresAt = &deadline
		}
	}
	if redirect, ok := h.board.Take(clientID, role); ok {
		status.Redirect = &redirect
	}

	return response.Success(c, "Session status", status)
}
