package services

import (
	"context"
	"testing"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/pagination"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeInput(code, email string) *EmployeeInput {
	return &EmployeeInput{
		EmployeeCode: code,
		FirstName:    "Meera",
		LastName:     "Iyer",
		Email:        email,
		Phone:        "9000012345",
		DateOfBirth:  "1990-07-04",
		HireDate:     "2020-01-15",
	}
}

func TestEmployeeCRUD(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	svc := NewEmployeeService(db.Employees(), db.Accounts(), db.Admins(), db.Departments(), db.Designations())
	ctx := context.Background()

	created, err := svc.Create(ctx, employeeInput("EMP200", "Meera@EMS.test"))
	require.NoError(t, err)
	assert.Equal(t, "meera@ems.test", created.Email)
	assert.Equal(t, domain.EmployeeActive, created.Status)
	assert.Equal(t, "Meera Iyer", created.FullName)
	assert.False(t, created.Registered)

	_, err = svc.Create(ctx, employeeInput("EMP200", "other@ems.test"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	bad := employeeInput("EMP201", "bad@ems.test")
	bad.HireDate = "15/01/2020"
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := employeeInput("EMP200", "meera@ems.test")
	in.Phone = "9000099999"
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "9000099999", updated.Phone)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestEmployeeListShowsRegistration(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	svc := NewEmployeeService(db.Employees(), db.Accounts(), db.Admins(), db.Departments(), db.Designations())
	auth := NewEmployeeAuthService(db.Employees(), db.Accounts(), db.Admins(), testhelpers.TestConfig())
	ctx := context.Background()

	a, err := svc.Create(ctx, employeeInput("EMP301", "a@ems.test"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, employeeInput("EMP302", "b@ems.test"))
	require.NoError(t, err)
	_, err = auth.Register(ctx, a.ID)
	require.NoError(t, err)

	list, total, err := svc.List(ctx, &pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.True(t, list[0].Registered)
	assert.False(t, list[1].Registered)

	list, total, err = svc.List(ctx, &pagination.Params{Page: 1, Limit: 10, Search: "emp302"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "EMP302", list[0].EmployeeCode)
}

func TestEmployeeEmailMustNotBelongToAdmin(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	svc := NewEmployeeService(db.Employees(), db.Accounts(), db.Admins(), db.Departments(), db.Designations())
	ctx := context.Background()
	testhelpers.SeedAdmin(t, db, "root@ems.test", "root", "correct horse")

	_, err := svc.Create(ctx, employeeInput("EMP400", "Root@ems.test"))
	assert.ErrorIs(t, err, domain.ErrAccountConflict)

	created, err := svc.Create(ctx, employeeInput("EMP400", "meera@ems.test"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, employeeInput("EMP400", "root@ems.test"))
	assert.ErrorIs(t, err, domain.ErrAccountConflict)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "meera@ems.test", got.Email)
}

func TestEmployeeEmailChangeReachesAccount(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	svc := NewEmployeeService(db.Employees(), db.Accounts(), db.Admins(), db.Departments(), db.Designations())
	auth := NewEmployeeAuthService(db.Employees(), db.Accounts(), db.Admins(), testhelpers.TestConfig())
	ctx := context.Background()

	created, err := svc.Create(ctx, employeeInput("EMP401", "meera@ems.test"))
	require.NoError(t, err)
	reg, err := auth.Register(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, employeeInput("EMP401", "Meera.Iyer@ems.test"))
	require.NoError(t, err)

	account, err := db.Accounts().GetByEmployeeID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "meera.iyer@ems.test", account.Email)

	_, err = auth.Login(ctx, &EmployeeLoginInput{Email: "meera.iyer@ems.test", Password: reg.Password})
	assert.NoError(t, err)
	_, err = auth.Login(ctx, &EmployeeLoginInput{Email: "meera@ems.test", Password: reg.Password})
	assert.Error(t, err)

	// Unregistered profiles have no account to update
	other, err := svc.Create(ctx, employeeInput("EMP402", "ravi@ems.test"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, other.ID, employeeInput("EMP402", "ravi.k@ems.test"))
	assert.NoError(t, err)
}
