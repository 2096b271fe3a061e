package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "SHOPWAVE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Checkout CheckoutConfig
	Notifier NotifierConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPWAVE_APP_ENV" default:"dev"`
	Port         string `envconfig:"SHOPWAVE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPWAVE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPWAVE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects the backing database for the persisted key-value store.
// SQLite against a local file is the default; Postgres is available for
// deployments that want a shared datasource.
type StoreConfig struct {
	Driver string `envconfig:"SHOPWAVE_STORE_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SHOPWAVE_STORE_DSN" default:"shopwave.db"`
}

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

func (s StoreConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Driver)) {
	case StoreDriverSQLite, StoreDriverPostgres:
	default:
		return fmt.Errorf("unsupported store driver %q", s.Driver)
	}
	if strings.TrimSpace(s.DSN) == "" {
		return fmt.Errorf("store DSN is required")
	}
	return nil
}

// NormalizedDriver returns the lowercase driver name.
func (s StoreConfig) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(s.Driver))
}

type CheckoutConfig struct {
	// ProcessingDelay is how long the simulated payment call takes.
	ProcessingDelay time.Duration `envconfig:"SHOPWAVE_CHECKOUT_PROCESSING_DELAY" default:"2s"`
}

type NotifierConfig struct {
	FeedSize int `envconfig:"SHOPWAVE_NOTIFIER_FEED_SIZE" default:"50"`
}

// RedisConfig is optional; when URL is empty the idempotency middleware is
// skipped entirely.
type RedisConfig struct {
	URL          string        `envconfig:"SHOPWAVE_REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"SHOPWAVE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPWAVE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPWAVE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPWAVE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
