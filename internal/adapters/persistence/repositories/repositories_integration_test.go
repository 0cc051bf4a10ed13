package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts PostgreSQL in a container and migrates the schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:16-alpine",
		postgres.WithDatabase("ems_test"),
		postgres.WithUsername("ems"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, code, email string) *models.Employee {
	t.Helper()
	emp := &models.Employee{
		EmployeeCode: code,
		FirstName:    "Ravi",
		LastName:     "Kumar",
		Email:        email,
		Phone:        "9876543210",
		HireDate:     time.Date(2020, time.January, 6, 0, 0, 0, 0, time.UTC),
		Status:       "Active",
	}
	require.NoError(t, NewEmployeeRepository(db).Create(context.Background(), emp))
	return emp
}

func TestIntegrationEmployeeAccountUniqueness(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	emp := seedEmployee(t, db, "EMP047", "ravi@x.com")
	repo := NewEmployeeAccountRepository(db)

	first := &models.EmployeeAccount{EmployeeID: emp.ID, Email: emp.Email, Password: "hash", Status: "active", Role: "employee"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.EmployeeAccount{EmployeeID: emp.ID, Email: emp.Email, Password: "hash", Status: "active", Role: "employee"}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	ids, err := repo.ListEmployeeIDs(ctx, []uint{emp.ID, emp.ID + 100})
	require.NoError(t, err)
	assert.Equal(t, []uint{emp.ID}, ids)
}

func TestIntegrationClientSessionStore(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	store := NewClientSessionStore(db)

	_, err := store.Get(ctx, "c1", session.KeyAdmin)
	assert.ErrorIs(t, err, session.ErrNoValue)

	require.NoError(t, store.Put(ctx, "c1", session.KeyAdmin, []byte(`{"id":1}`)))
	require.NoError(t, store.Put(ctx, "c1", session.KeyAdmin, []byte(`{"id":2}`)))
	require.NoError(t, store.Put(ctx, "c1", session.KeyEmployee, []byte(`{"id":3}`)))

	raw, err := store.Get(ctx, "c1", session.KeyAdmin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2}`, string(raw))

	require.NoError(t, store.Delete(ctx, "c1", session.KeyAdmin))
	require.NoError(t, store.Delete(ctx, "c1", session.KeyAdmin))
	_, err = store.Get(ctx, "c1", session.KeyAdmin)
	assert.ErrorIs(t, err, session.ErrNoValue)

	purged, err := store.Purge(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestIntegrationResetRequestTransition(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	emp := seedEmployee(t, db, "EMP100", "anu@x.com")
	repo := NewPasswordResetRequestRepository(db)

	req := &models.PasswordResetRequest{EmployeeAccountID: 1, EmployeeID: emp.ID, Email: emp.Email, Status: "Pending"}
	require.NoError(t, repo.Create(ctx, req))

	ok, err := repo.Transition(ctx, req.ID, "Pending", "Approved", time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Transition(ctx, req.ID, "Pending", "Rejected", time.Now())
	require.NoError(t, err)
	assert.False(t, ok, "only pending requests can be reviewed")

	got, err := repo.GetByEmployeeIDAndStatus(ctx, emp.ID, "Approved")
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)
}

func TestIntegrationDepartmentCounts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	departments := NewDepartmentRepository(db)
	designations := NewDesignationRepository(db)

	dept := &models.Department{Name: "Engineering", Location: "Pune"}
	require.NoError(t, departments.Create(ctx, dept))
	require.ErrorIs(t, departments.Create(ctx, &models.Department{Name: "Engineering"}), gorm.ErrDuplicatedKey)
	require.NoError(t, designations.Create(ctx, &models.Designation{Title: "Engineer", DepartmentID: &dept.ID}))

	emp := seedEmployee(t, db, "EMP200", "dev@x.com")
	emp.DepartmentID = &dept.ID
	require.NoError(t, NewEmployeeRepository(db).Update(ctx, emp))

	list, err := departments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Engineering", list[0].Name)
	assert.Equal(t, int64(1), list[0].EmployeeCount)
	assert.Equal(t, int64(1), list[0].DesignationCount)
}
