package services

import (
	"context"
	"testing"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskAssignmentAndProgress(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	emp := testhelpers.SeedEmployee(t, db)
	svc := NewTaskService(db.Tasks(), db.Employees())
	svc.now = func() time.Time { return time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	overdue, err := svc.Assign(ctx, &TaskInput{EmployeeID: emp.ID, Title: "Quarterly report", DueDate: "2025-03-11"})
	require.NoError(t, err)
	today, err := svc.Assign(ctx, &TaskInput{EmployeeID: emp.ID, Title: "Standup notes", DueDate: "2025-03-12"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, today.Status)

	_, err = svc.Assign(ctx, &TaskInput{EmployeeID: 999, Title: "Ghost", DueDate: "2025-03-12"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mine, err := svc.ListMine(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].Overdue)
	assert.False(t, mine[1].Overdue)

	require.NoError(t, svc.UpdateStatus(ctx, emp.ID, overdue.ID, &TaskStatusInput{Status: domain.TaskInProgress}))
	require.NoError(t, svc.UpdateStatus(ctx, emp.ID, overdue.ID, &TaskStatusInput{Status: domain.TaskCompleted}))
	assert.ErrorIs(t, svc.UpdateStatus(ctx, emp.ID+1, overdue.ID, &TaskStatusInput{Status: domain.TaskPending}), domain.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, emp.ID, overdue.ID, &TaskStatusInput{Status: "Done"}), domain.ErrInvalidInput)

	mine, err = svc.ListMine(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, mine[0].Overdue, "completed tasks are never overdue")

	require.NoError(t, svc.UpdateDueDate(ctx, today.ID, &TaskDueDateInput{DueDate: "2025-03-01"}))
	all, total, err := svc.List(ctx, domain.TaskPending, &pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.True(t, all[0].Overdue)

	assert.ErrorIs(t, svc.UpdateDueDate(ctx, 999, &TaskDueDateInput{DueDate: "2025-03-01"}), domain.ErrNotFound)
}
