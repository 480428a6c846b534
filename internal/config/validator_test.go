package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setValidEnv sets every required variable to a usable value
func setValidEnv(t *testing.T) {
	t.Helper()
	clearEnvVars(t)
	t.Setenv(EnvEnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvDBUser, "riftstats")
	t.Setenv(EnvDBPassword, "s3cure")
	t.Setenv(EnvDBHost, "localhost")
	t.Setenv(EnvDBPort, "5432")
	t.Setenv(EnvDBName, "riftstats")
	t.Setenv(EnvAPIKey, "automation-key")
	t.Setenv(EnvJWTSecret, testJWTSecret)
	t.Setenv(EnvRiotAPIKey, "RGAPI-test")
}

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr []string
	}{
		{name: "valid"},
		{
			name:    "missing schema version",
			env:     map[string]string{EnvEnvSchemaVersion: ""},
			wantErr: []string{"ENV_SCHEMA_VERSION is not set"},
		},
		{
			name:    "outdated schema version",
			env:     map[string]string{EnvEnvSchemaVersion: "1.0"},
			wantErr: []string{"mismatch", "expected 1.1, got 1.0"},
		},
		{
			name:    "missing required",
			env:     map[string]string{EnvAPIKey: "", EnvDBHost: ""},
			wantErr: []string{"missing required environment variables", EnvDBHost, EnvAPIKey},
		},
		{
			name:    "short jwt secret",
			env:     map[string]string{EnvJWTSecret: "too-short"},
			wantErr: []string{"JWT_SECRET must be at least 32 bytes"},
		},
		{
			name:    "bad port and duration reported together",
			env:     map[string]string{EnvPort: "http", EnvRiotRequestDelay: "1.2"},
			wantErr: []string{"PORT must be an integer", "RIOT_REQUEST_DELAY must be a duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := ValidateEnv()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestValidateEnvWithWarnings_ExampleValues(t *testing.T) {
	setValidEnv(t)
	t.Setenv(EnvDBPassword, exampleDBPassword)
	t.Setenv(EnvAPIKey, exampleAPIKeyValue)
	t.Setenv(EnvRiotAPIKey, "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], EnvDBPassword)
	assert.Contains(t, warnings[1], EnvAPIKey)
	assert.Contains(t, warnings[2], EnvRiotAPIKey)
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	setValidEnv(t)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
