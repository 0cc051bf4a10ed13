package services

import (
	"context"
	"testing"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsByAudience(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	org := NewOrgService(db.Departments(), db.Designations(), db.Employees())
	svc := NewNotificationService(db.Notifications(), db.Departments(), db.Employees())
	ctx := context.Background()

	sales, err := org.CreateDepartment(ctx, &DepartmentInput{Name: "Sales"})
	require.NoError(t, err)
	_, err = org.CreateDepartment(ctx, &DepartmentInput{Name: "Finance"})
	require.NoError(t, err)

	emp := testhelpers.SeedEmployeeWith(t, db, &models.Employee{
		EmployeeCode: "EMP400",
		FirstName:    "Kiran",
		Email:        "kiran@ems.test",
		HireDate:     time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		DepartmentID: &sales.ID,
	})

	_, err = svc.Publish(ctx, 1, &NotificationInput{Title: "Holiday", Message: "Office closed Friday"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, 1, &NotificationInput{Title: "Targets", Message: "Q2 targets", TargetAudience: "Sales"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, 1, &NotificationInput{Title: "Audit", Message: "Audit next week", TargetAudience: "Finance"})
	require.NoError(t, err)

	_, err = svc.Publish(ctx, 1, &NotificationInput{Title: "x", Message: "y", TargetAudience: "Marketing"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mine, err := svc.ListForEmployee(ctx, emp.ID, 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Targets", mine[0].Title)
	assert.Equal(t, domain.NotificationTargetAll, mine[1].TargetAudience)

	require.NoError(t, svc.Delete(ctx, mine[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, mine[0].ID), domain.ErrNotFound)
}
