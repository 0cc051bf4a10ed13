package services

import (
	"context"
	"errors"
	"testing"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(db *testhelpers.MemoryDB) *DashboardService {
	return NewDashboardService(db.Employees(), db.Accounts(), db.Departments(), db.Designations(),
		db.ResetRequests(), db.Leaves(), db.Tasks())
}

func TestAdminDashboard(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	ctx := context.Background()

	emp := testhelpers.SeedEmployee(t, db)
	auth := NewEmployeeAuthService(db.Employees(), db.Accounts(), db.Admins(), testhelpers.TestConfig())
	_, err := auth.Register(ctx, emp.ID)
	require.NoError(t, err)

	resets := NewPasswordResetService(db.Accounts(), db.ResetRequests(), &testhelpers.RecordingMailer{}, testhelpers.TestConfig())
	_, err = resets.Request(ctx, emp.Email)
	require.NoError(t, err)

	tasks := NewTaskService(db.Tasks(), db.Employees())
	_, err = tasks.Assign(ctx, &TaskInput{EmployeeID: emp.ID, Title: "Onboarding", DueDate: "2030-01-01"})
	require.NoError(t, err)

	stats, err := newDashboardService(db).GetAdminDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{
		Employees:      1,
		RegisteredEmps: 1,
		PendingResets:  1,
		PendingTasks:   1,
	}, *stats)
}

func TestAdminDashboardStorageFailure(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	db.FailWith(errors.New("db down"))

	_, err := newDashboardService(db).GetAdminDashboard(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}
