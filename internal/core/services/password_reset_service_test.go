package services

import (
	"context"
	"testing"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/password"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resetFixture struct {
	db     *testhelpers.MemoryDB
	mailer *testhelpers.RecordingMailer
	svc    *PasswordResetService
	email  string
}

func newResetFixture(t *testing.T) *resetFixture {
	db := testhelpers.NewMemoryDB()
	emp := testhelpers.SeedEmployee(t, db)
	auth := NewEmployeeAuthService(db.Employees(), db.Accounts(), db.Admins(), testhelpers.TestConfig())
	_, err := auth.Register(context.Background(), emp.ID)
	require.NoError(t, err)

	mailer := &testhelpers.RecordingMailer{}
	return &resetFixture{
		db:     db,
		mailer: mailer,
		svc:    NewPasswordResetService(db.Accounts(), db.ResetRequests(), mailer, testhelpers.TestConfig()),
		email:  emp.Email,
	}
}

func TestResetRequestLifecycle(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	req, err := f.svc.Request(ctx, f.email)
	require.NoError(t, err)
	assert.Equal(t, domain.ResetPending, req.Status)

	_, err = f.svc.Request(ctx, f.email)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// Reset before approval is refused
	in := &EmployeeResetInput{Email: f.email, Password: "brand new pass", ConfirmPassword: "brand new pass"}
	assert.ErrorIs(t, f.svc.Reset(ctx, in), domain.ErrInvalidState)

	require.NoError(t, f.svc.Approve(ctx, req.ID))
	require.Len(t, f.mailer.Sent(), 1)
	assert.Equal(t, f.email, f.mailer.Sent()[0].ToEmail)

	status, err := f.svc.Status(ctx, f.email)
	require.NoError(t, err)
	assert.Equal(t, domain.ResetApproved, status.Status)

	require.NoError(t, f.svc.Reset(ctx, in))

	account, err := f.db.Accounts().GetByEmail(ctx, f.email)
	require.NoError(t, err)
	assert.True(t, password.Verify("brand new pass", account.Password))

	status, err = f.svc.Status(ctx, f.email)
	require.NoError(t, err)
	assert.Equal(t, domain.ResetCompleted, status.Status)

	// The approval is consumed
	assert.ErrorIs(t, f.svc.Reset(ctx, in), domain.ErrInvalidState)
}

func TestResetReviewOnlyFromPending(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	req, err := f.svc.Request(ctx, f.email)
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(ctx, req.ID))

	assert.ErrorIs(t, f.svc.Approve(ctx, req.ID), domain.ErrInvalidState)
	assert.ErrorIs(t, f.svc.Reject(ctx, req.ID), domain.ErrInvalidState)
	assert.ErrorIs(t, f.svc.Approve(ctx, 999), domain.ErrNotFound)
	assert.Empty(t, f.mailer.Sent())
}

func TestResetUnknownAccount(t *testing.T) {
	f := newResetFixture(t)

	_, err := f.svc.Request(context.Background(), "nobody@ems.test")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = f.svc.Status(context.Background(), f.email)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResetPasswordMismatch(t *testing.T) {
	f := newResetFixture(t)

	err := f.svc.Reset(context.Background(), &EmployeeResetInput{Email: f.email, Password: "brand new pass", ConfirmPassword: "brand new pasS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpireStaleRequests(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	req, err := f.svc.Request(ctx, f.email)
	require.NoError(t, err)

	n, err := f.svc.ExpireStale(ctx, StaleResetAge)
	require.NoError(t, err)
	assert.Zero(t, n)

	f.svc.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
	n, err = f.svc.ExpireStale(ctx, StaleResetAge)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.ErrorIs(t, f.svc.Approve(ctx, req.ID), domain.ErrInvalidState)

	// A new request may be filed once the old one expired
	_, err = f.svc.Request(ctx, f.email)
	assert.NoError(t, err)
}
