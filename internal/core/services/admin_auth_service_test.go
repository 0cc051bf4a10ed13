package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminAuthFixture struct {
	db     *testhelpers.MemoryDB
	mailer *testhelpers.RecordingMailer
	svc    *AdminAuthService
}

func newAdminAuthFixture() *adminAuthFixture {
	db := testhelpers.NewMemoryDB()
	mailer := &testhelpers.RecordingMailer{}
	return &adminAuthFixture{
		db:     db,
		mailer: mailer,
		svc:    NewAdminAuthService(db.Admins(), db.Accounts(), db.ResetTokens(), mailer, testhelpers.TestConfig()),
	}
}

func signUpInput() *AdminSignUpInput {
	return &AdminSignUpInput{
		Email:      "Root@EMS.test",
		UserName:   "root",
		Password:   "correct horse",
		SignupCode: "let-me-in",
	}
}

func TestAdminSignUpAndLogin(t *testing.T) {
	f := newAdminAuthFixture()

	identity, err := f.svc.SignUp(context.Background(), signUpInput())
	require.NoError(t, err)
	assert.Equal(t, "root@ems.test", identity.Email)
	assert.Equal(t, domain.RoleAdmin, identity.Role)

	for _, login := range []string{"root@ems.test", "ROOT@ems.test", "root"} {
		got, err := f.svc.Login(context.Background(), &AdminLoginInput{Login: login, Password: "correct horse"})
		require.NoError(t, err, login)
		assert.Equal(t, identity.ID, got.ID)
		assert.Equal(t, "root", got.Name)
	}
}

func TestAdminSignUpRefusals(t *testing.T) {
	t.Run("disabled without a code", func(t *testing.T) {
		f := newAdminAuthFixture()
		f.svc.cfg.Admin.SignupCode = ""
		_, err := f.svc.SignUp(context.Background(), signUpInput())
		assert.ErrorIs(t, err, domain.ErrSignupDisabled)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := newAdminAuthFixture()
		in := signUpInput()
		in.SignupCode = "guess"
		_, err := f.svc.SignUp(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})

	t.Run("email of an employee account", func(t *testing.T) {
		f := newAdminAuthFixture()
		emp := testhelpers.SeedEmployee(t, f.db)
		auth := NewEmployeeAuthService(f.db.Employees(), f.db.Accounts(), f.db.Admins(), testhelpers.TestConfig())
		_, err := auth.Register(context.Background(), emp.ID)
		require.NoError(t, err)

		in := signUpInput()
		in.Email = emp.Email
		_, err = f.svc.SignUp(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrAccountConflict)
	})

	t.Run("duplicate admin", func(t *testing.T) {
		f := newAdminAuthFixture()
		_, err := f.svc.SignUp(context.Background(), signUpInput())
		require.NoError(t, err)
		_, err = f.svc.SignUp(context.Background(), signUpInput())
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	})
}

func TestAdminLoginFailures(t *testing.T) {
	f := newAdminAuthFixture()
	testhelpers.SeedAdmin(t, f.db, "root@ems.test", "root", "correct horse")

	_, err := f.svc.Login(context.Background(), &AdminLoginInput{Login: "nobody@ems.test", Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = f.svc.Login(context.Background(), &AdminLoginInput{Login: "root", Password: "battery staple"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

var tokenPattern = regexp.MustCompile(`token=(\S+)`)

func TestAdminPasswordResetFlow(t *testing.T) {
	f := newAdminAuthFixture()
	testhelpers.SeedAdmin(t, f.db, "root@ems.test", "root", "correct horse")

	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "ROOT@ems.test"))

	sent := f.mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "root@ems.test", sent[0].ToEmail)
	match := tokenPattern.FindStringSubmatch(sent[0].Text)
	require.Len(t, match, 2)
	token := match[1]

	input := &AdminResetInput{Token: token, Password: "new password", ConfirmPassword: "new password"}
	require.NoError(t, f.svc.ResetPassword(context.Background(), input))

	_, err := f.svc.Login(context.Background(), &AdminLoginInput{Login: "root", Password: "new password"})
	assert.NoError(t, err)
	_, err = f.svc.Login(context.Background(), &AdminLoginInput{Login: "root", Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	// Single use
	assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), input), domain.ErrTokenInvalid)
}

func TestAdminPasswordResetStoredTokenExpires(t *testing.T) {
	f := newAdminAuthFixture()
	testhelpers.SeedAdmin(t, f.db, "root@ems.test", "root", "correct horse")
	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "root@ems.test"))

	match := tokenPattern.FindStringSubmatch(f.mailer.Sent()[0].Text)
	require.Len(t, match, 2)

	mins := time.Duration(testhelpers.TestConfig().JWT.ResetTokenMins) * time.Minute
	f.svc.now = func() time.Time { return time.Now().Add(mins) }

	input := &AdminResetInput{Token: match[1], Password: "new password", ConfirmPassword: "new password"}
	assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), input), domain.ErrTokenInvalid)
}

func TestAdminPasswordResetUnknownEmailIsSilent(t *testing.T) {
	f := newAdminAuthFixture()

	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "nobody@ems.test"))
	assert.Empty(t, f.mailer.Sent())
}

func TestAdminResetPasswordRejects(t *testing.T) {
	f := newAdminAuthFixture()

	err := f.svc.ResetPassword(context.Background(), &AdminResetInput{Token: "garbage", Password: "new password", ConfirmPassword: "new password"})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	err = f.svc.ResetPassword(context.Background(), &AdminResetInput{Token: "garbage", Password: "new password", ConfirmPassword: "other"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.svc.ResetPassword(context.Background(), &AdminResetInput{Token: "garbage", Password: "short", ConfirmPassword: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
