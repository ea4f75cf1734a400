package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Limits holds the free and premium listing quotas of a single role. Both
// fields zero means the role was not configured.
type Limits struct {
	Free    int `env:"FREE"    yaml:"free"`
	Premium int `env:"PREMIUM" yaml:"premium"`
}

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and redis
// connections, authentication, quotas and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty means any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"estate" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the session store connection settings
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// MinRetryBackoff and MaxRetryBackoff bound the client's reconnect backoff
		MinRetryBackoff time.Duration `env:"REDIS_MIN_RETRY_BACKOFF" env-default:"8ms" yaml:"minRetryBackoff"`
		MaxRetryBackoff time.Duration `env:"REDIS_MAX_RETRY_BACKOFF" env-default:"512ms" yaml:"maxRetryBackoff"`
		// MaxTxRetries bounds optimistic transaction retries on a single session
		MaxTxRetries int `env:"REDIS_MAX_TX_RETRIES" env-default:"10" yaml:"maxTxRetries"`
	} `yaml:"redis"`

	// JWT contains the RS256 key pair used for bearer tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		Issuer    string `env:"JWT_ISSUER" env-default:"estate" yaml:"issuer"`
	} `yaml:"jwt"`

	Session struct {
		// TTL is both the session lifetime in redis and the bearer token lifetime
		TTL time.Duration `env:"SESSION_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"session"`

	Identity struct {
		// AdminEmails resolve to the admin role on sign-in
		AdminEmails []string `env:"IDENTITY_ADMIN_EMAILS" env-separator:"," yaml:"adminEmails"`
		// BcryptCost is the bcrypt work factor for new password hashes
		BcryptCost int `env:"IDENTITY_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"identity"`

	// Quotas holds the per role listing quotas
	Quotas struct {
		User  Limits `env-prefix:"QUOTAS_USER_"  yaml:"user"`
		Agent Limits `env-prefix:"QUOTAS_AGENT_" yaml:"agent"`
		Admin Limits `env-prefix:"QUOTAS_ADMIN_" yaml:"admin"`
	} `yaml:"quotas"`

	Listing struct {
		// RequireApproval stores new listings as pending until an admin approves them
		RequireApproval bool `env:"LISTING_REQUIRE_APPROVAL" env-default:"false" yaml:"requireApproval"`
		// DefaultLimit is the browse page size when none is requested
		DefaultLimit uint `env:"LISTING_DEFAULT_LIMIT" env-default:"20" yaml:"defaultLimit"`
		// MaxLimit caps the requested browse page size
		MaxLimit uint `env:"LISTING_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
		// MapLimit caps the number of pins returned by the map view
		MapLimit uint `env:"LISTING_MAP_LIMIT" env-default:"500" yaml:"mapLimit"`
	} `yaml:"listing"`

	Worker struct {
		// MaxWorkers is the number of concurrent purge workers
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load loads an optional .env file from the working directory, then reads the
// yaml config file at configPath with environment overrides, and returns a
// filled Config struct.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
