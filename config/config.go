package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"
)

const devSecret = "gamestore-dev-secret"

const defaultCORSOrigin = "http://localhost:5173"

// Config is read from the environment (and .env, loaded by main)
type Config struct {
	Port        string `env:"PORT"`
	Prod        bool   `env:"PROD,default=false"`
	UseHTTPS    bool   `env:"USE_HTTPS,default=false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// Session cookie secret
	SessionKey  string        `env:"KEY"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,default=24h"`
	CORSOrigins string        `env:"CORS_ORIGINS,default=http://localhost:5173"`

	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT,default=1"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST,default=5"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Store    StoreConfig
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Host     string `env:"POSTGRES_HOST,default=localhost"`
	Port     string `env:"POSTGRES_PORT,default=5432"`
	Database string `env:"POSTGRES_DATABASE"`
	SSLMode  string `env:"POSTGRES_SSLMODE,default=disable"`
	Verbose  bool   `env:"VERBOSE_POSTGRES,default=false"`
	Migrate  bool   `env:"MIGRATE_POSTGRES,default=false"`
}

type RedisConfig struct {
	// Empty disables the catalog cache and the checkout lock
	URL string `env:"REDIS_URL"`
	DB  int    `env:"REDIS_DB,default=0"`
}

type StoreConfig struct {
	CatalogCacheTTL     time.Duration `env:"CATALOG_CACHE_TTL,default=5m"`
	CatalogSyncSchedule string        `env:"CATALOG_SYNC_SCHEDULE,default=@every 10m"`
	PaymentDelay        time.Duration `env:"PAYMENT_DELAY,default=1s"`
	VerifyPaymentAmount bool          `env:"VERIFY_PAYMENT_AMOUNT,default=false"`
	CheckoutLockTTL     time.Duration `env:"CHECKOUT_LOCK_TTL,default=30s"`
}

// Load decodes the environment into a Config and checks it
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Prod && (c.SessionKey == "" || c.JWTSecret == "") {
		return errors.New("KEY and JWT_SECRET must be set in production")
	}
	if c.SessionKey == "" {
		logrus.Warn("KEY not set, using development session secret")
		c.SessionKey = devSecret
	}
	if c.JWTSecret == "" {
		logrus.Warn("JWT_SECRET not set, using development token secret")
		c.JWTSecret = devSecret
	}
	if c.UseHTTPS && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE are required with USE_HTTPS")
	}
	if c.AuthRateLimit <= 0 || c.AuthRateBurst <= 0 {
		return errors.New("AUTH_RATE_LIMIT and AUTH_RATE_BURST must be positive")
	}
	return nil
}

// Addr returns the listen address. PORT wins, otherwise 443 for HTTPS and 8080
func (c *Config) Addr() string {
	port := c.Port
	if port == "" {
		port = "8080"
		if c.UseHTTPS {
			port = "443"
		}
	}
	return ":" + port
}

// AllowedOrigins splits CORS_ORIGINS on commas
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		// cors.New panics without at least one origin
		return []string{defaultCORSOrigin}
	}
	return origins
}

// DSN returns the connection string, DATABASE_URL taking precedence
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	u := url.URL{
		Scheme:   "postgresql",
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.Database,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	if p.User != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	return u.String()
}
