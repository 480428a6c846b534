package logger

// Level and format names accepted by Config
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning" // alias slog does not parse
	LogFormatJSON   = "json"
	LogFormatText   = "text"
)

const (
	DefaultServiceName = "riftstats"
	DefaultVersion     = "dev"
)

// Environment names as set in ENVIRONMENT
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
)

// Attribute keys attached to records
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
