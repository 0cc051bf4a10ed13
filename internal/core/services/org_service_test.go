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

func TestDepartmentsAndDesignations(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	svc := NewOrgService(db.Departments(), db.Designations(), db.Employees())
	ctx := context.Background()

	eng, err := svc.CreateDepartment(ctx, &DepartmentInput{Name: " Engineering ", Location: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", eng.Name)

	_, err = svc.CreateDepartment(ctx, &DepartmentInput{Name: "Engineering"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	dev, err := svc.CreateDesignation(ctx, &DesignationInput{Title: "Developer", DepartmentID: &eng.ID})
	require.NoError(t, err)

	missing := uint(404)
	_, err = svc.CreateDesignation(ctx, &DesignationInput{Title: "Ghost", DepartmentID: &missing})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	testhelpers.SeedEmployeeWith(t, db, &models.Employee{
		EmployeeCode:  "EMP100",
		FirstName:     "Ravi",
		Email:         "ravi@ems.test",
		HireDate:      time.Date(2022, time.January, 3, 0, 0, 0, 0, time.UTC),
		DepartmentID:  &eng.ID,
		DesignationID: &dev.ID,
	})

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, int64(1), departments[0].EmployeeCount)
	assert.Equal(t, int64(1), departments[0].DesignationCount)

	designations, err := svc.ListDesignations(ctx, &eng.ID)
	require.NoError(t, err)
	require.Len(t, designations, 1)
	assert.Equal(t, int64(1), designations[0].EmployeeCount)

	assert.ErrorIs(t, svc.DeleteDepartment(ctx, eng.ID), domain.ErrInUse)
	assert.ErrorIs(t, svc.DeleteDesignation(ctx, dev.ID), domain.ErrInUse)
	assert.ErrorIs(t, svc.DeleteDepartment(ctx, 999), domain.ErrNotFound)

	updated, err := svc.UpdateDepartment(ctx, eng.ID, &DepartmentInput{Name: "R&D", Location: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, "R&D", updated.Name)
}

func TestDeleteUnusedDepartment(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	svc := NewOrgService(db.Departments(), db.Designations(), db.Employees())
	ctx := context.Background()

	hr, err := svc.CreateDepartment(ctx, &DepartmentInput{Name: "HR"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDepartment(ctx, hr.ID))

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Empty(t, departments)
}
