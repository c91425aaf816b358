// Package config loads the application configuration from a yaml file and
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, HTTP server, database connection, token
// issuance, file uploads and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configuration.
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on.
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum time to wait for the next request with keep-alives enabled.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// BodyLimit caps the request body size in bytes. It must leave room
		// for multipart uploads up to the configured uploads max size.
		BodyLimit int `env:"HTTP_BODY_LIMIT" env-default:"8388608" yaml:"bodyLimit"`
		// CORSOrigin is the allowed origin for cross-origin requests.
		CORSOrigin string `env:"HTTP_CORS_ORIGIN" env-default:"http://localhost:3000" yaml:"corsOrigin"`
		// MetricsPath defines the URL path where Prometheus metrics are exposed.
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configuration.
	Database struct {
		// Username for database authentication.
		Username string `env:"DATABASE_USERNAME" env-default:"jobboard" yaml:"username"`
		// Password for database authentication.
		Password string `env:"DATABASE_PASSWORD" env-default:"jobboard" yaml:"password"`
		// Host is the database server hostname or IP address.
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number.
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection.
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to.
		DatabaseName string `env:"DATABASE_NAME" env-default:"jobboard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database.
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle pool.
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused.
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle.
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Auth contains token signing and password hashing configuration.
	Auth struct {
		// AccessTokenSecret is the HMAC secret signing access tokens.
		AccessTokenSecret string `env:"AUTH_ACCESS_TOKEN_SECRET" env-default:"" yaml:"accessTokenSecret"`
		// AccessTokenTTL is the access token lifetime.
		AccessTokenTTL time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m" yaml:"accessTokenTTL"`
		// RefreshTokenSecret is the HMAC secret signing refresh tokens.
		// It must differ from the access token secret.
		RefreshTokenSecret string `env:"AUTH_REFRESH_TOKEN_SECRET" env-default:"" yaml:"refreshTokenSecret"`
		// RefreshTokenTTL is the refresh token lifetime.
		RefreshTokenTTL time.Duration `env:"AUTH_REFRESH_TOKEN_TTL" env-default:"240h" yaml:"refreshTokenTTL"`
		// BcryptCost is the bcrypt cost factor used when hashing passwords.
		BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"auth"`

	// Uploads configures where multipart file uploads (company profiles,
	// resumes) are stored and how they are addressed.
	Uploads struct {
		// Directory is the local directory uploaded files are written to.
		Directory string `env:"UPLOADS_DIRECTORY" env-default:"./uploads" yaml:"directory"`
		// BaseURL prefixes the public URI returned for a stored file.
		BaseURL string `env:"UPLOADS_BASE_URL" env-default:"http://localhost:8080/uploads" yaml:"baseURL"`
		// MaxSize caps a single uploaded file in bytes.
		MaxSize int64 `env:"UPLOADS_MAX_SIZE" env-default:"5242880" yaml:"maxSize"`
	} `yaml:"uploads"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing
	// requests to complete during shutdown.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for a yaml config file and returns a filled Config.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
