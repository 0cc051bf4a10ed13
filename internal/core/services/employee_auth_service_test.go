package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/password"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeeAuthFixture struct {
	db  *testhelpers.MemoryDB
	svc *EmployeeAuthService
}

func newEmployeeAuthFixture() *employeeAuthFixture {
	db := testhelpers.NewMemoryDB()
	return &employeeAuthFixture{
		db:  db,
		svc: NewEmployeeAuthService(db.Employees(), db.Accounts(), db.Admins(), testhelpers.TestConfig()),
	}
}

func TestRegisterDerivesPassword(t *testing.T) {
	f := newEmployeeAuthFixture()
	emp := testhelpers.SeedEmployee(t, f.db)

	result, err := f.svc.Register(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "047#3210@1995", result.Password)
	assert.Equal(t, "asha.rao@ems.test", result.Email)

	account, err := f.db.Accounts().GetByEmployeeID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountActive, account.Status)
	assert.NotEqual(t, result.Password, account.Password)
	assert.True(t, password.Verify(result.Password, account.Password))
}

func TestRegisterTwiceIsRefused(t *testing.T) {
	f := newEmployeeAuthFixture()
	emp := testhelpers.SeedEmployee(t, f.db)

	_, err := f.svc.Register(context.Background(), emp.ID)
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	_, err = f.svc.RegisterByEmail(context.Background(), emp.Email)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestConcurrentRegistrationCreatesOneAccount(t *testing.T) {
	f := newEmployeeAuthFixture()
	emp := testhelpers.SeedEmployee(t, f.db)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Register(context.Background(), emp.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		}
	}
	assert.Equal(t, 1, succeeded)

	n, err := f.db.Accounts().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRegisterRefusesAdminEmail(t *testing.T) {
	f := newEmployeeAuthFixture()
	emp := testhelpers.SeedEmployee(t, f.db)
	testhelpers.SeedAdmin(t, f.db, emp.Email, "asha", "admin-password")

	_, err := f.svc.Register(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrAccountConflict)
}

func TestRegisterUnknownEmployee(t *testing.T) {
	f := newEmployeeAuthFixture()

	_, err := f.svc.Register(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.RegisterByEmail(context.Background(), "nobody@ems.test")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeLogin(t *testing.T) {
	f := newEmployeeAuthFixture()
	emp := testhelpers.SeedEmployee(t, f.db)
	_, err := f.svc.RegisterByEmail(context.Background(), "  Asha.Rao@EMS.test ")
	require.NoError(t, err)

	identity, err := f.svc.Login(context.Background(), &EmployeeLoginInput{Email: "ASHA.RAO@ems.test", Password: "047#3210@1995"})
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{ID: emp.ID, Email: "asha.rao@ems.test", Name: "Asha Rao", Role: domain.RoleEmployee}, *identity)
}

func TestEmployeeLoginFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, f *employeeAuthFixture)
		password string
		want     error
	}{
		{
			name:     "unknown email",
			password: "047#3210@1995",
			want:     domain.ErrAccountNotFound,
		},
		{
			name: "wrong birth year",
			setup: func(t *testing.T, f *employeeAuthFixture) {
				_, err := f.svc.RegisterByEmail(context.Background(), "asha.rao@ems.test")
				require.NoError(t, err)
			},
			password: "047#3210@1994",
			want:     domain.ErrInvalidCredential,
		},
		{
			name: "email also used by an admin",
			setup: func(t *testing.T, f *employeeAuthFixture) {
				_, err := f.svc.RegisterByEmail(context.Background(), "asha.rao@ems.test")
				require.NoError(t, err)
				testhelpers.SeedAdmin(t, f.db, "asha.rao@ems.test", "asha", "irrelevant")
			},
			password: "047#3210@1995",
			want:     domain.ErrAccountConflict,
		},
		{
			name: "inactive account",
			setup: func(t *testing.T, f *employeeAuthFixture) {
				res, err := f.svc.RegisterByEmail(context.Background(), "asha.rao@ems.test")
				require.NoError(t, err)
				require.NoError(t, f.svc.SetStatus(context.Background(), res.EmployeeID, false))
			},
			password: "047#3210@1995",
			want:     domain.ErrInactiveAccount,
		},
		{
			name: "inactive account with wrong password",
			setup: func(t *testing.T, f *employeeAuthFixture) {
				res, err := f.svc.RegisterByEmail(context.Background(), "asha.rao@ems.test")
				require.NoError(t, err)
				require.NoError(t, f.svc.SetStatus(context.Background(), res.EmployeeID, false))
			},
			password: "wrong",
			want:     domain.ErrInvalidCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEmployeeAuthFixture()
			testhelpers.SeedEmployee(t, f.db)
			if tt.setup != nil {
				tt.setup(t, f)
			}

			identity, err := f.svc.Login(context.Background(), &EmployeeLoginInput{Email: "asha.rao@ems.test", Password: tt.password})
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEmployeeLoginStorageFailure(t *testing.T) {
	f := newEmployeeAuthFixture()
	f.db.FailWith(errors.New("connection reset"))

	_, err := f.svc.Login(context.Background(), &EmployeeLoginInput{Email: "asha.rao@ems.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestSetStatusWithoutAccount(t *testing.T) {
	f := newEmployeeAuthFixture()
	emp := testhelpers.SeedEmployee(t, f.db)

	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), emp.ID, true), domain.ErrAccountNotFound)
}
