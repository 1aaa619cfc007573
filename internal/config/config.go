package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr           = ":8080"
	defaultAPIBaseURL     = "http://localhost:8000"
	defaultBackendTimeout = 120 * time.Second
	defaultUploadMaxBytes = 20 << 20
	defaultAuthAttempts   = 10
	devSessionSecret      = "kanoon-dev-session-secret-change-me"
)

// Config holds all configuration for the application.
type Config struct {
	Env        string
	Addr       string
	AppBaseURL string

	// APIBaseURL is the single backend origin used by every feature page.
	APIBaseURL     string
	BackendTimeout time.Duration

	SessionSecret string
	// SessionDir switches the session store to the filesystem when set, so
	// large profile pictures do not overflow the cookie.
	SessionDir string

	// DashboardRequireLogin gates the dashboard tools behind a session.
	DashboardRequireLogin bool

	UploadMaxBytes   int64
	UploadStagingDir string

	// AuthAttemptsPerMinute caps credential form posts per client IP.
	AuthAttemptsPerMinute int

	TracingEnabled     bool
	TracingServiceName string
	TracingZipkinURL   string
}

// New loads configuration from the environment and exits on invalid values.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// Load reads configuration from environment variables without touching .env files.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                getenv("APP_ENV", "development"),
		Addr:               getenv("APP_ADDR", defaultAddr),
		AppBaseURL:         getenv("APP_BASE_URL", "http://localhost:8080"),
		APIBaseURL:         strings.TrimRight(getenv("API_BASE_URL", defaultAPIBaseURL), "/"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		SessionDir:         os.Getenv("SESSION_DIR"),
		UploadStagingDir:   os.Getenv("UPLOAD_STAGING_DIR"),
		TracingServiceName: getenv("TRACING_SERVICE_NAME", "kanoon-web"),
		TracingZipkinURL:   getenv("TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}

	var errs []error
	var err error

	if cfg.DashboardRequireLogin, err = getbool("DASHBOARD_REQUIRE_LOGIN", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.TracingEnabled, err = getbool("TRACING_ENABLED", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.BackendTimeout, err = getduration("BACKEND_TIMEOUT", defaultBackendTimeout); err != nil {
		errs = append(errs, err)
	}
	if cfg.UploadMaxBytes, err = getint64("UPLOAD_MAX_BYTES", defaultUploadMaxBytes); err != nil {
		errs = append(errs, err)
	}
	attempts, err := getint64("AUTH_ATTEMPTS_PER_MINUTE", defaultAuthAttempts)
	if err != nil {
		errs = append(errs, err)
	} else if attempts <= 0 {
		errs = append(errs, errors.New("AUTH_ATTEMPTS_PER_MINUTE must be positive"))
	}
	cfg.AuthAttemptsPerMinute = int(attempts)

	if cfg.APIBaseURL == "" {
		errs = append(errs, errors.New("API_BASE_URL must not be empty"))
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			errs = append(errs, errors.New("SESSION_SECRET is required in production"))
		}
		cfg.SessionSecret = devSessionSecret
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getint64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getduration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
