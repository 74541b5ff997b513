package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// Placeholder values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// requiredEnvVars lists what each store driver cannot start without
var requiredEnvVars = map[string][]string{
	StoreDriverMemory:   {"API_KEY"},
	StoreDriverPostgres: {"API_KEY", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
}

// RequiredEnvVars returns the variables a deployment using driver must set.
// Unknown drivers are treated as postgres.
func RequiredEnvVars(driver string) []string {
	if vars, ok := requiredEnvVars[driver]; ok {
		return vars
	}
	return requiredEnvVars[StoreDriverPostgres]
}

// ValidateEnv checks the schema version and the variables required by driver.
// An unset ENV_SCHEMA_VERSION is accepted for the memory driver.
func ValidateEnv(driver string) error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	switch {
	case schemaVersion == "" && driver != StoreDriverMemory:
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars(driver) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s store: %s", driver, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports example values left in place
func ValidateEnvWithWarnings(driver string) ([]string, error) {
	if err := ValidateEnv(driver); err != nil {
		return nil, err
	}

	var warnings []string
	if driver != StoreDriverMemory && os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	return warnings, nil
}
