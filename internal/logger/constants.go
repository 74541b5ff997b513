package logger

import "strings"

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "scrapworld-api"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment String Values
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// environmentAliases maps accepted spellings onto the canonical environment values
var environmentAliases = map[string]string{
	EnvironmentDev:        EnvironmentDev,
	"development":         EnvironmentDev,
	EnvironmentStaging:    EnvironmentStaging,
	EnvironmentProduction: EnvironmentProduction,
	"production":          EnvironmentProduction,
	EnvironmentTest:       EnvironmentTest,
}

// NormalizeEnvironment returns the canonical environment name and whether it is known.
// An empty value means dev.
func NormalizeEnvironment(env string) (string, bool) {
	env = strings.ToLower(strings.TrimSpace(env))
	if env == "" {
		return EnvironmentDev, true
	}
	canonical, ok := environmentAliases[env]
	return canonical, ok
}

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
