package services

import (
	"context"
	"time"

	"ems-portal/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SessionPurger deletes persisted sessions not written since before
type SessionPurger interface {
	Purge(ctx context.Context, before time.Time) (int64, error)
}

// TokenCleaner deletes expired admin reset tokens
type TokenCleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// CronService runs the periodic maintenance jobs
type CronService struct {
	cron      *cron.Cron
	resets    *PasswordResetService
	tokens    TokenCleaner
	sessions  SessionPurger
	retention time.Duration
}

// NewCronService creates a new cron service. sessions may be nil when the
// session store expires entries by itself.
func NewCronService(resets *PasswordResetService, tokens TokenCleaner, sessions SessionPurger, retention time.Duration) *CronService {
	return &CronService{
		cron:      cron.New(),
		resets:    resets,
		tokens:    tokens,
		sessions:  sessions,
		retention: retention,
	}
}

// Start schedules and starts all jobs
func (s *CronService) Start() error {
	jobs := []struct {
		spec string
		run  func()
	}{
		{"@hourly", s.ExpireResetRequests},
		{"@every 30m", s.CleanResetTokens},
		{"@daily", s.PurgeSessions},
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, job.run); err != nil {
			return err
		}
	}

	s.cron.Start()
	logger.Log.Info("🚀 CronService started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	logger.Log.Info("🛑 CronService stopped")
}

// ExpireResetRequests expires stale pending password reset requests
func (s *CronService) ExpireResetRequests() {
	n, err := s.resets.ExpireStale(context.Background(), StaleResetAge)
	if err != nil {
		logger.Log.Errorf("❌ Expire reset requests: %v", err)
		return
	}
	if n > 0 {
		logger.Log.Infof("✅ Expired %d password reset requests", n)
	}
}

// CleanResetTokens deletes expired admin reset tokens
func (s *CronService) CleanResetTokens() {
	n, err := s.tokens.DeleteExpired(context.Background())
	if err != nil {
		logger.Log.Errorf("❌ Clean reset tokens: %v", err)
		return
	}
	if n > 0 {
		logger.Log.Infof("✅ Deleted %d expired reset tokens", n)
	}
}

// PurgeSessions deletes sessions older than the retention period
func (s *CronService) PurgeSessions() {
	if s.sessions == nil {
		return
	}
	n, err := s.sessions.Purge(context.Background(), time.Now().Add(-s.retention))
	if err != nil {
		logger.Log.Errorf("❌ Purge sessions: %v", err)
		return
	}
	if n > 0 {
		logger.Log.Infof("✅ Purged %d stale sessions", n)
	}
}
