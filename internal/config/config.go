package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ems-portal/internal/pkg/logger"
	"ems-portal/internal/pkg/password"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LogLevel string
	BaseURL  string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Session  SessionConfig
	Redis    RedisConfig
	Mail     MailConfig
	Admin    AdminConfig
	Upload   UploadConfig
	Security SecurityConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds signing secrets of the client cookie and the admin reset token
type JWTConfig struct {
	Secret         string
	ResetSecret    string
	ResetTokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// SessionConfig holds session storage configuration
type SessionConfig struct {
	Store         string
	CacheSize     int
	RetentionDays int
}

// RedisConfig holds Redis configuration (SESSION_STORE=redis)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MailConfig holds SendGrid configuration
type MailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	Sandbox        bool
}

// AdminConfig holds admin sign-up and seeding configuration
type AdminConfig struct {
	SignupCode   string
	SeedEmail    string
	SeedUserName string
	SeedPassword string
}

// UploadConfig holds document upload limits
type UploadConfig struct {
	MaxMB int
}

// SecurityConfig holds password hashing configuration
type SecurityConfig struct {
	BcryptCost int
}

// Session store kinds
const (
	SessionStoreDB     = "db"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn("⚠️ .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		BaseURL:  strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Session:  loadSessionConfig(),
		Redis:    loadRedisConfig(),
		Mail:     loadMailConfig(),
		Admin:    loadAdminConfig(),
		Upload:   UploadConfig{MaxMB: getEnvInt("UPLOAD_MAX_MB", 5)},
		Security: SecurityConfig{BcryptCost: getEnvInt("BCRYPT_COST", password.DefaultCost)},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	logger.Log.Infof("✅ Configuration loaded successfully [MODE: %s, DB: %s, SESSIONS: %s]",
		appMode, config.Database.Driver, config.Session.Store)
	return config, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql' or 'postgres')", c.Database.Driver)
	}

	switch c.Session.Store {
	case SessionStoreDB, SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("invalid SESSION_STORE: '%s' (must be 'db', 'redis' or 'memory')", c.Session.Store)
	}

	if c.IsProd() && (c.JWT.Secret == defaultJWTSecret || c.JWT.ResetSecret == defaultResetSecret) {
		return fmt.Errorf("PROD_JWT_SECRET and PROD_RESET_SECRET must be set in prod mode")
	}
	return nil
}

const (
	defaultJWTSecret   = "default_secret"
	defaultResetSecret = "default_reset_secret"
)

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))

	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", defaultPort),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "ems"),
		SSLMode:  getEnv(prefix+"DB_SSLMODE", "disable"),
	}
}

// loadJWTConfig loads signing config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := modePrefix(mode)

	return JWTConfig{
		Secret:         getEnv(prefix+"JWT_SECRET", defaultJWTSecret),
		ResetSecret:    getEnv(prefix+"RESET_SECRET", defaultResetSecret),
		ResetTokenMins: getEnvInt("RESET_TOKEN_MINUTES", 15),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := modePrefix(mode)

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadSessionConfig() SessionConfig {
	return SessionConfig{
		Store:         strings.ToLower(getEnv("SESSION_STORE", SessionStoreDB)),
		CacheSize:     getEnvInt("SESSION_CACHE_SIZE", 1024),
		RetentionDays: getEnvInt("SESSION_RETENTION_DAYS", 30),
	}
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func loadMailConfig() MailConfig {
	sandbox, _ := strconv.ParseBool(getEnv("MAIL_SANDBOX", "false"))

	return MailConfig{
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		FromEmail:      getEnv("MAIL_FROM", "no-reply@ems.local"),
		FromName:       getEnv("MAIL_FROM_NAME", "Employee Management System"),
		Sandbox:        sandbox,
	}
}

func loadAdminConfig() AdminConfig {
	return AdminConfig{
		SignupCode:   getEnv("ADMIN_SIGNUP_CODE", ""),
		SeedEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedUserName: getEnv("SEED_ADMIN_USERNAME", "admin"),
		SeedPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable; invalid values fall back to the default
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		logger.Log.Warnf("⚠️ Invalid %s, using %d", key, defaultValue)
		return defaultValue
	}
	return value
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return c.BaseURL
	}
	return origins
}
