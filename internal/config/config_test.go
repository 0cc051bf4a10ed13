package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, SessionStoreDB, cfg.Session.Store)
	assert.Equal(t, 1024, cfg.Session.CacheSize)
	assert.Equal(t, 30, cfg.Session.RetentionDays)
	assert.Equal(t, 15, cfg.JWT.ResetTokenMins)
	assert.Equal(t, 5, cfg.Upload.MaxMB)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoadModePrefixes(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("DEV_DB_HOST", "ignored")
	t.Setenv("PROD_JWT_SECRET", "s1")
	t.Setenv("PROD_RESET_SECRET", "s2")
	t.Setenv("APP_BASE_URL", "https://ems.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "s1", cfg.JWT.Secret)
	assert.Equal(t, "https://ems.example.com", cfg.BaseURL)
	assert.Equal(t, "https://ems.example.com", cfg.GetAllowedOrigins())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"app mode", map[string]string{"APP_MODE": "staging"}},
		{"db driver", map[string]string{"DB_DRIVER": "sqlite"}},
		{"session store", map[string]string{"SESSION_STORE": "files"}},
		{"prod default secrets", map[string]string{"APP_MODE": "prod"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("SESSION_CACHE_SIZE", "lots")
	assert.Equal(t, 1024, getEnvInt("SESSION_CACHE_SIZE", 1024))
}

func TestDSNs(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "u:p@tcp(h:1)/n?charset=utf8mb4&parseTime=True&loc=UTC", buildMySQLDSN(d))
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", buildPostgresDSN(d))

	_, err := buildDialector(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
