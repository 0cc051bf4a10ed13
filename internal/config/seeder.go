package config

import (
	"strings"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	logger.Log.Info("🌱 Running database seeders...")

	if err := s.seedAdmin(); err != nil {
		logger.Log.Warnf("⚠️ Admin seeder skipped: %v", err)
	}

	logger.Log.Info("✅ Database seeding completed")
	return nil
}

// seedAdmin creates the first admin from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
// Development only; in production admins sign up with ADMIN_SIGNUP_CODE.
func (s *Seeder) seedAdmin() error {
	if !s.cfg.IsDev() || s.cfg.Admin.SeedEmail == "" || s.cfg.Admin.SeedPassword == "" {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(s.cfg.Admin.SeedEmail))

	var count int64
	if err := s.db.Model(&models.AdminAccount{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.HashWithCost(s.cfg.Admin.SeedPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	admin := &models.AdminAccount{
		Email:    email,
		UserName: s.cfg.Admin.SeedUserName,
		Password: hashedPassword,
		Role:     "admin",
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	logger.Log.Infof("✅ Admin user created: %s", admin.UserName)
	return nil
}
