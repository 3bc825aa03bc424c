package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimitPerMin caps requests per client IP per minute. 0 disables.
	RateLimitPerMin int `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"0"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// An empty DSN selects the in-memory stores (non-durable deployment).
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token validation settings.
// Identity itself is external; the server only verifies the bearer tokens
// the identity provider issues.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"campus-connect"`
}

// EnrichmentConfig holds settings for the description enrichment gateway.
type EnrichmentConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"ENRICHMENT_ENABLED"      env-default:"true"`
	APIKey      string        `yaml:"api_key"      env:"ENRICHMENT_API_KEY"`
	Model       string        `yaml:"model"        env:"ENRICHMENT_MODEL"        env-default:"claude-3-5-haiku-latest"`
	Timeout     time.Duration `yaml:"timeout"      env:"ENRICHMENT_TIMEOUT"      env-default:"30s"`
	MaxAttempts int           `yaml:"max_attempts" env:"ENRICHMENT_MAX_ATTEMPTS" env-default:"3"`
}

// LifecycleConfig holds input limits for the lifecycle engine.
type LifecycleConfig struct {
	MaxTitleLength   int `yaml:"max_title_length"   env:"LIFECYCLE_MAX_TITLE_LENGTH"   env-default:"200"`
	MaxMessageLength int `yaml:"max_message_length" env:"LIFECYCLE_MAX_MESSAGE_LENGTH" env-default:"2000"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
