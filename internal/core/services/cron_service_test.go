package services

import (
	"context"
	"testing"
	"time"

	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPurger struct {
	before time.Time
	calls  int
}

func (p *recordingPurger) Purge(_ context.Context, before time.Time) (int64, error) {
	p.before = before
	p.calls++
	return 3, nil
}

func TestCronJobs(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	resets := NewPasswordResetService(db.Accounts(), db.ResetRequests(), &testhelpers.RecordingMailer{}, testhelpers.TestConfig())
	purger := &recordingPurger{}
	svc := NewCronService(resets, db.ResetTokens(), purger, 30*24*time.Hour)

	svc.PurgeSessions()
	assert.Equal(t, 1, purger.calls)
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), purger.before, time.Minute)

	svc.ExpireResetRequests()
	svc.CleanResetTokens()

	require.NoError(t, svc.Start())
	svc.Stop()
}

func TestCronWithoutSessionPurger(t *testing.T) {
	db := testhelpers.NewMemoryDB()
	resets := NewPasswordResetService(db.Accounts(), db.ResetRequests(), &testhelpers.RecordingMailer{}, testhelpers.TestConfig())

	svc := NewCronService(resets, db.ResetTokens(), nil, time.Hour)
	assert.NotPanics(t, svc.PurgeSessions)
}
