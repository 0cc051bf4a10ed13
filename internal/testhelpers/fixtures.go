package testhelpers

import (
	"context"
	"testing"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/config"
	"ems-portal/internal/pkg/password"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestConfig returns a configuration suitable for unit tests
func TestConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		BaseURL: "http://ems.test",
		Database: config.DatabaseConfig{
			Driver: config.DriverMySQL,
		},
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			ResetSecret:    "test-reset-secret",
			ResetTokenMins: 15,
		},
		Session: config.SessionConfig{
			Store:         config.SessionStoreMemory,
			CacheSize:     16,
			RetentionDays: 30,
		},
		Admin:    config.AdminConfig{SignupCode: "let-me-in"},
		Upload:   config.UploadConfig{MaxMB: 1},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
}

// SeedEmployee stores the reference profile EMP047 used across tests
func SeedEmployee(t testing.TB, db *MemoryDB) *models.Employee {
	t.Helper()
	dob := time.Date(1995, time.March, 12, 0, 0, 0, 0, time.UTC)
	return SeedEmployeeWith(t, db, &models.Employee{
		EmployeeCode: "EMP047",
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        "asha.rao@ems.test",
		Phone:        "9876543210",
		DateOfBirth:  &dob,
		HireDate:     time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:       "Active",
	})
}

// SeedEmployeeWith stores employee
func SeedEmployeeWith(t testing.TB, db *MemoryDB, employee *models.Employee) *models.Employee {
	t.Helper()
	require.NoError(t, db.Employees().Create(context.Background(), employee))
	return employee
}

// SeedAdmin stores an admin account with the given plain password
func SeedAdmin(t testing.TB, db *MemoryDB, email, userName, plain string) *models.AdminAccount {
	t.Helper()
	hash, err := password.HashWithCost(plain, bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.AdminAccount{Email: email, UserName: userName, Password: hash, Role: "admin"}
	require.NoError(t, db.Admins().Create(context.Background(), admin))
	return admin
}
