package services

import (
	"context"
	"testing"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/calendar"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaveService() (*testhelpers.MemoryDB, *LeaveService) {
	db := testhelpers.NewMemoryDB()
	return db, NewLeaveService(db.Leaves(), calendar.New())
}

func TestApplyLeaveCountsWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		days  int
	}{
		{"full week", "2025-03-10", "2025-03-16", 5},
		{"single day", "2025-03-12", "2025-03-12", 1},
		{"week with Republic Day", "2026-01-26", "2026-01-30", 4},
		{"across a weekend", "2025-03-14", "2025-03-17", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newLeaveService()
			leave, err := svc.Apply(context.Background(), 1, &LeaveInput{
				LeaveType: "Casual Leave",
				StartDate: tt.start,
				EndDate:   tt.end,
				Reason:    "family function",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.days, leave.TotalDays)
			assert.Equal(t, domain.LeavePending, leave.Status)
		})
	}
}

func TestApplyLeaveRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input LeaveInput
	}{
		{"end before start", LeaveInput{LeaveType: "Sick Leave", StartDate: "2025-03-12", EndDate: "2025-03-11"}},
		{"weekend only", LeaveInput{LeaveType: "Sick Leave", StartDate: "2025-03-15", EndDate: "2025-03-16"}},
		{"unknown type", LeaveInput{LeaveType: "Nap Leave", StartDate: "2025-03-12", EndDate: "2025-03-12"}},
		{"bad date", LeaveInput{LeaveType: "Sick Leave", StartDate: "12/03/2025", EndDate: "2025-03-12"}},
		{"span too long", LeaveInput{LeaveType: "Sick Leave", StartDate: "0001-01-01", EndDate: "9999-12-31"}},
		{"one day over a leap year", LeaveInput{LeaveType: "Sick Leave", StartDate: "2024-01-01", EndDate: "2025-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newLeaveService()
			_, err := svc.Apply(context.Background(), 1, &tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestApplyLeaveAllowsFullLeapYear(t *testing.T) {
	_, svc := newLeaveService()
	leave, err := svc.Apply(context.Background(), 1, &LeaveInput{
		LeaveType: "Annual Leave",
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		Reason:    "sabbatical",
	})
	require.NoError(t, err)
	assert.Greater(t, leave.TotalDays, 200)
}

func TestLeaveReview(t *testing.T) {
	_, svc := newLeaveService()
	ctx := context.Background()

	apply := func(employeeID uint) uint {
		leave, err := svc.Apply(ctx, employeeID, &LeaveInput{LeaveType: "Annual Leave", StartDate: "2025-03-10", EndDate: "2025-03-11", Reason: "trip"})
		require.NoError(t, err)
		return leave.ID
	}

	approved := apply(1)
	rejected := apply(1)
	cancelled := apply(2)

	require.NoError(t, svc.Approve(ctx, approved))
	require.NoError(t, svc.Reject(ctx, rejected, "  busy quarter "))

	assert.ErrorIs(t, svc.Cancel(ctx, 1, cancelled), domain.ErrNotFound)
	require.NoError(t, svc.Cancel(ctx, 2, cancelled))

	assert.ErrorIs(t, svc.Approve(ctx, rejected), domain.ErrInvalidState)
	assert.ErrorIs(t, svc.Cancel(ctx, 1, approved), domain.ErrInvalidState)
	assert.ErrorIs(t, svc.Approve(ctx, 404), domain.ErrNotFound)

	mine, err := svc.ListMine(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, domain.LeaveRejected, mine[0].Status)
	assert.Equal(t, "busy quarter", mine[0].RejectionReason)
	assert.Equal(t, domain.LeaveApproved, mine[1].Status)

	params := &pagination.Params{Page: 1, Limit: 10}
	_, total, err := svc.List(ctx, domain.LeaveCancelled, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
