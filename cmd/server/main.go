package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ems-portal/internal/adapters/cache"
	"ems-portal/internal/adapters/http/middleware"
	"ems-portal/internal/adapters/http/routes"
	"ems-portal/internal/adapters/mail"
	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/config"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/services"
	"ems-portal/internal/core/session"
	"ems-portal/internal/pkg/calendar"
	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "ems-portal/docs" // Swagger docs
)

// @title EMS Portal API
// @version 1.0
// @description Employee management system: admin and employee portals with session based access
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@ems.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	logger.Init("ems-portal", cfg.LogLevel)

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		logger.Log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	logger.Log.Info("✅ Database migration completed")

	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		logger.Log.Warnf("⚠️ Warning: Failed to seed data: %v", err)
	}

	store, purger, closeStore := sessionStore(cfg, db)
	defer closeStore()

	board := session.NewRedirectBoard(nil)
	manager, err := session.NewManager(store,
		session.WithNavigator(board),
		session.WithCacheSize(cfg.Session.CacheSize),
		session.WithExpiryHook(func(role domain.Role) { metrics.SessionExpired(string(role)) }),
	)
	if err != nil {
		logger.Log.Fatalf("❌ Failed to create session manager: %v", err)
	}
	defer manager.Close()

	repos := repositories.NewRepositories(db)
	mailer := mail.New(cfg.Mail.SendGridAPIKey, cfg.Mail.FromName, cfg.Mail.FromEmail, cfg.Mail.Sandbox)
	svc := services.NewServices(repos, mailer, calendar.New(), cfg)

	retention := time.Duration(cfg.Session.RetentionDays) * 24 * time.Hour
	cronService := services.NewCronService(svc.Resets, repos.ResetTokens, purger, retention)
	if err := cronService.Start(); err != nil {
		logger.Log.Fatalf("❌ Failed to start cron: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EMS Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    (cfg.Upload.MaxMB + 1) << 20,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, svc, manager, board, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	logger.Log.Infof("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Errorf("❌ Failed to start server: %v", err)
	}
}

// sessionStore opens the configured session store. The purger is nil for
// stores that expire entries on their own.
func sessionStore(cfg *config.Config, db *gorm.DB) (session.Store, services.SessionPurger, func()) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Log.Fatalf("❌ Failed to connect to redis: %v", err)
		}
		ttl := time.Duration(cfg.Session.RetentionDays) * 24 * time.Hour
		logger.Log.Info("✅ Sessions stored in redis")
		return cache.NewRedisSessionStore(client, ttl), nil, func() { _ = client.Close() }
	case config.SessionStoreMemory:
		logger.Log.Warn("⚠️ Sessions stored in memory; they are lost on restart")
		return session.NewMemoryStore(), nil, func() {}
	default:
		store := repositories.NewClientSessionStore(db)
		return store, store, func() {}
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Log.Errorf("❌ Error during shutdown: %v", err)
	}
	logger.Log.Info("✅ Server stopped gracefully")
}
