package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-that-is-32-bytes!"

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("JWT_SECRET", testJWTSecret)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "riftstats", cfg.ServiceName)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "riftstats", cfg.DBName)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, "riftstats", cfg.JWTIssuer)
		assert.Empty(t, cfg.RiotAPIKey, "Import is disabled without a key")
		assert.Equal(t, "https://%s.api.riotgames.com", cfg.RiotBaseURL)
		assert.Equal(t, 1200*time.Millisecond, cfg.RiotRequestDelay)
		assert.Equal(t, 10*time.Second, cfg.RiotTimeout)
		assert.Equal(t, "https://ddragon.leagueoflegends.com", cfg.DDragonBaseURL)
		assert.Zero(t, cfg.CatalogSyncInterval)
		assert.Empty(t, cfg.TrustedProxies)
		assert.True(t, cfg.AutoMigrate)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("JWT_SECRET", testJWTSecret)
		t.Setenv("JWT_TTL", "2h")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("RIOT_API_KEY", "RGAPI-test")
		t.Setenv("RIOT_REQUEST_DELAY", "50ms")
		t.Setenv("CATALOG_SYNC_INTERVAL", "24h")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")
		t.Setenv("AUTO_MIGRATE", "false")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "RGAPI-test", cfg.RiotAPIKey)
		assert.Equal(t, 50*time.Millisecond, cfg.RiotRequestDelay)
		assert.Equal(t, 24*time.Hour, cfg.CatalogSyncInterval)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.False(t, cfg.AutoMigrate)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", testJWTSecret)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error when JWT_SECRET is short", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("JWT_SECRET", "too-short")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"max valid port", "65535", false},
			{"zero port", "0", true},
			{"negative port", "-1", true},
			{"above max port", "65536", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("API_KEY", "test-key")
				t.Setenv("JWT_SECRET", testJWTSecret)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("JWT_SECRET", testJWTSecret)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})
}

// TestGetDBConnString verifies database connection string generation
func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "p@ss:word",
		DBHost:     "testhost",
		DBPort:     "5433",
		DBName:     "testdb",
	}

	assert.Equal(t, "postgres://testuser:p@ss:word@testhost:5433/testdb?sslmode=disable", cfg.GetDBConnString())
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvAPIKey, EnvLogLevel, EnvLogFormat, EnvLogDir,
		EnvServiceName, EnvVersion, EnvEnvironment,
		EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName,
		EnvDBMaxConns, EnvDBMaxConnIdleTime, EnvDBMaxConnLifetime,
		EnvJWTSecret, EnvJWTTTL, EnvJWTIssuer,
		EnvRiotAPIKey, EnvRiotBaseURL, EnvRiotRequestDelay, EnvRiotTimeout,
		EnvDDragonBaseURL, EnvCatalogSync, EnvTrustedProxies, EnvAutoMigrate,
	}

	for _, key := range envVars {
		// t.Setenv registers restoration; Unsetenv then clears it for this test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
