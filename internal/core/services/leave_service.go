package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/calendar"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/pagination"
)

// LeaveService handles leave applications and their review
type LeaveService struct {
	leaveRepo repositories.LeaveRepository
	calendar  *calendar.Calendar
}

// NewLeaveService creates a new leave service
func NewLeaveService(leaveRepo repositories.LeaveRepository, cal *calendar.Calendar) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo, calendar: cal}
}

// LeaveInput represents the apply leave form
type LeaveInput struct {
	LeaveType string `json:"leave_type" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,max=1000"`
}

// MaxLeaveSpanDays bounds the calendar days of one leave request
const MaxLeaveSpanDays = 366

// LeaveDecisionInput represents the admin review form
type LeaveDecisionInput struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// Apply files a pending leave request; total days counts working days only
func (s *LeaveService) Apply(ctx context.Context, employeeID uint, input *LeaveInput) (*models.LeaveRequest, error) {
	if !validLeaveType(input.LeaveType) {
		return nil, invalid("unknown leave type %q", input.LeaveType)
	}
	start, err := parseDate("start_date", input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", input.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, invalid("end_date must not be before start_date")
	}
	if end.Sub(start) >= MaxLeaveSpanDays*24*time.Hour {
		return nil, invalid("a leave request may span at most %d days", MaxLeaveSpanDays)
	}

	days := s.calendar.WorkdaysBetween(start, end)
	if days == 0 {
		return nil, invalid("the selected range has no working days")
	}

	leave := &models.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  input.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  days,
		Reason:     strings.TrimSpace(input.Reason),
		Status:     domain.LeavePending,
	}
	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, storageError("create leave", err)
	}

	logger.Log.Infof("✅ Leave applied: employee_id=%d days=%d", employeeID, days)
	return leave, nil
}

// ListMine lists the leave requests of one employee
func (s *LeaveService) ListMine(ctx context.Context, employeeID uint) ([]*models.LeaveRequest, error) {
	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, storageError("list leaves", err)
	}
	return leaves, nil
}

// Cancel withdraws a pending request of the employee
func (s *LeaveService) Cancel(ctx context.Context, employeeID, id uint) error {
	leave, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if leave.EmployeeID != employeeID {
		return domain.ErrNotFound
	}
	return s.transition(ctx, leave, domain.LeaveCancelled, "")
}

// List lists leave requests for the admin, optionally filtered by status
func (s *LeaveService) List(ctx context.Context, status string, params *pagination.Params) ([]*models.LeaveRequest, int64, error) {
	leaves, total, err := s.leaveRepo.List(ctx, status, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, storageError("list leaves", err)
	}
	return leaves, total, nil
}

// Approve approves a pending request
func (s *LeaveService) Approve(ctx context.Context, id uint) error {
	leave, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, leave, domain.LeaveApproved, "")
}

// Reject rejects a pending request with a reason
func (s *LeaveService) Reject(ctx context.Context, id uint, reason string) error {
	leave, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, leave, domain.LeaveRejected, strings.TrimSpace(reason))
}

func (s *LeaveService) get(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	leave, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("load leave", err)
	}
	return leave, nil
}

func (s *LeaveService) transition(ctx context.Context, leave *models.LeaveRequest, to, reason string) error {
	moved, err := s.leaveRepo.Transition(ctx, leave.ID, domain.LeavePending, to, reason)
	if err != nil {
		return storageError("update leave", err)
	}
	if !moved {
		return fmt.Errorf("%w: leave is %s", domain.ErrInvalidState, leave.Status)
	}

	logger.Log.Infof("✅ Leave %d %s", leave.ID, to)
	return nil
}

func validLeaveType(t string) bool {
	for _, known := range domain.LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}
