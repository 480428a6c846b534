package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is bumped whenever .env gains a required key
const ExpectedEnvSchemaVersion = "1.1"

// RequiredEnvVars must be present and non-empty
var RequiredEnvVars = []string{
	EnvEnvSchemaVersion,
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
	EnvAPIKey,
	EnvJWTSecret,
}

// durationEnvVars must parse with time.ParseDuration when set
var durationEnvVars = []string{
	EnvDBMaxConnIdleTime,
	EnvDBMaxConnLifetime,
	EnvJWTTTL,
	EnvRiotRequestDelay,
	EnvRiotTimeout,
	EnvCatalogSync,
}

// exampleValues are the placeholders shipped in .env.example
var exampleValues = []struct {
	key, value, hint string
}{
	{EnvDBPassword, exampleDBPassword, "please use a secure password"},
	{EnvAPIKey, exampleAPIKeyValue, "generate a secure key with: openssl rand -hex 32"},
	{EnvJWTSecret, exampleJWTSecretValue, "generate one with: openssl rand -hex 32"},
}

// ValidateEnv checks the raw environment before Load is attempted.
// All problems are reported together.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvEnvSchemaVersion)
	switch {
	case schemaVersion == "":
		return fmt.Errorf("%s is not set, add it to your .env file (expected: %s)", EnvEnvSchemaVersion, ExpectedEnvSchemaVersion)
	case schemaVersion != ExpectedEnvSchemaVersion:
		return fmt.Errorf("%s mismatch: expected %s, got %s, your .env file may be outdated", EnvEnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var errs []error

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	if secret := os.Getenv(EnvJWTSecret); secret != "" && len(secret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("%s must be at least %d bytes, got %d", EnvJWTSecret, MinJWTSecretLength, len(secret)))
	}

	for _, key := range []string{EnvPort, EnvDBPort, EnvDBMaxConns} {
		if v := os.Getenv(key); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				errs = append(errs, fmt.Errorf("%s must be an integer, got %q", key, v))
			}
		}
	}

	for _, key := range durationEnvVars {
		if v := os.Getenv(key); v != "" {
			if _, err := time.ParseDuration(v); err != nil {
				errs = append(errs, fmt.Errorf("%s must be a duration like 1200ms or 6h, got %q", key, v))
			}
		}
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and lists non-fatal issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, ex := range exampleValues {
		if os.Getenv(ex.key) == ex.value {
			warnings = append(warnings, fmt.Sprintf("%s appears to be using the example value, %s", ex.key, ex.hint))
		}
	}
	if os.Getenv(EnvRiotAPIKey) == "" {
		warnings = append(warnings, fmt.Sprintf("%s is not set, match import will be unavailable", EnvRiotAPIKey))
	}
	return warnings, nil
}
