package config

import "time"

// Defaults for optional settings
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultServiceName       = "riftstats"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultDBName            = "riftstats"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultJWTTTL            = 24 * time.Hour
	DefaultJWTIssuer         = "riftstats"
	DefaultRiotBaseURL       = "https://%s.api.riotgames.com"
	DefaultRiotRequestDelay  = 1200 * time.Millisecond
	DefaultRiotTimeout       = 10 * time.Second
	DefaultDDragonBaseURL    = "https://ddragon.leagueoflegends.com"
	MinJWTSecretLength       = 32
)

// Environment variable keys
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogDir             = "LOG_DIR"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvEnvironment        = "ENVIRONMENT"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime  = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime  = "DB_MAX_CONN_LIFETIME"
	EnvAPIKey             = "API_KEY"
	EnvJWTSecret          = "JWT_SECRET"
	EnvJWTTTL             = "JWT_TTL"
	EnvJWTIssuer          = "JWT_ISSUER"
	EnvRiotAPIKey         = "RIOT_API_KEY"
	EnvRiotBaseURL        = "RIOT_BASE_URL_TEMPLATE"
	EnvRiotRequestDelay   = "RIOT_REQUEST_DELAY"
	EnvRiotTimeout        = "RIOT_TIMEOUT"
	EnvDDragonBaseURL     = "DDRAGON_BASE_URL"
	EnvCatalogSync        = "CATALOG_SYNC_INTERVAL"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvAutoMigrate        = "AUTO_MIGRATE"
	EnvEnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	exampleAPIKeyValue    = "generate_with_openssl_rand_hex_32"
	exampleJWTSecretValue = "generate_with_openssl_rand_hex_32_or_longer"
	exampleDBPassword     = "change_this_secure_password"
)
