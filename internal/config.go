package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Contact delivery modes.
const (
	ContactDeliverySimulated = "simulated"
	ContactDeliveryPipeline  = "pipeline"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Log file rotation. Logs go to stdout only when LogFile is empty.
	LogFile        string
	LogMaxSizeMB   int
	LogMaxBackups  int
	LogMaxAgeDays  int
	DatabaseUrl    string
	BaseURL        string
	StaticDir      string
	ShutdownPeriod time.Duration

	// Contact form
	ContactDelivery          string // "simulated" or "pipeline"
	ContactSimulatedDelay    time.Duration
	ContactSubmitTimeout     time.Duration
	ContactRecipientOverride string // send every notification here instead of the department inbox
	ContactRateLimit         int
	ContactRateWindow        time.Duration
	ContactFormIdle          time.Duration
	IPHashKey                string

	// SMTP Configuration. An empty host logs emails instead of sending them.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTimeout  time.Duration

	// Storage Configuration
	StorageProvider string // "local" or "r2"

	// Local Storage (development)
	LocalStoragePath string

	// R2 Storage (production)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2Endpoint        string // optional, for S3-compatible test servers

	// Worker Configuration
	WorkerEnabled      bool
	WorkerConcurrency  int
	WorkerPollInterval time.Duration
	WorkerJobTimeout   time.Duration

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

// IsSecure reports whether cookies should carry the Secure flag.
func (c *Config) IsSecure() bool {
	return c.Env == "production"
}

// UsesPipeline reports whether contact submissions are stored and emailed.
func (c *Config) UsesPipeline() bool {
	return c.ContactDelivery == ContactDeliveryPipeline
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),

		DatabaseUrl:    getEnv("DATABASE_URL", ""),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		ShutdownPeriod: getEnvDuration("SHUTDOWN_PERIOD", 30*time.Second),

		// Contact form defaults match the simulated two second send
		ContactDelivery:          getEnv("CONTACT_DELIVERY", ContactDeliverySimulated),
		ContactSimulatedDelay:    getEnvDuration("CONTACT_SIMULATED_DELAY", 2*time.Second),
		ContactSubmitTimeout:     getEnvDuration("CONTACT_SUBMIT_TIMEOUT", 30*time.Second),
		ContactRecipientOverride: getEnv("CONTACT_RECIPIENT_OVERRIDE", ""),
		ContactRateLimit:         getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow:        getEnvDuration("CONTACT_RATE_WINDOW", time.Hour),
		ContactFormIdle:          getEnvDuration("CONTACT_FORM_IDLE", 30*time.Minute),
		IPHashKey:                getEnv("IP_HASH_KEY", ""),

		// SMTP defaults for Mailhog (development)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 1025),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@florian-technologies.com"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Florian Technologies"),
		SMTPTimeout:  getEnvDuration("SMTP_TIMEOUT", 30*time.Second),

		// Storage defaults to local filesystem for development
		StorageProvider:  getEnv("STORAGE_PROVIDER", "local"),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./storage"),

		// R2 configuration (production only)
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2Endpoint:        getEnv("R2_ENDPOINT", ""),

		// Worker defaults
		WorkerEnabled:      getEnvBool("WORKER_ENABLED", true),
		WorkerConcurrency:  getEnvInt("WORKER_CONCURRENCY", 2),
		WorkerPollInterval: getEnvDuration("WORKER_POLL_INTERVAL", 5*time.Second),
		WorkerJobTimeout:   getEnvDuration("WORKER_JOB_TIMEOUT", 2*time.Minute),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	switch c.ContactDelivery {
	case ContactDeliverySimulated:
	case ContactDeliveryPipeline:
		if c.DatabaseUrl == "" {
			return fmt.Errorf("DATABASE_URL is required when CONTACT_DELIVERY is 'pipeline'")
		}
		if c.IPHashKey == "" {
			return fmt.Errorf("IP_HASH_KEY is required when CONTACT_DELIVERY is 'pipeline'")
		}
		if len(c.IPHashKey) > 64 {
			return fmt.Errorf("IP_HASH_KEY must be at most 64 bytes, got %d", len(c.IPHashKey))
		}
	default:
		return fmt.Errorf("CONTACT_DELIVERY must be either 'simulated' or 'pipeline', got: %s", c.ContactDelivery)
	}

	if c.ContactRateLimit < 1 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be at least 1, got %d", c.ContactRateLimit)
	}

	// Validate storage configuration
	if c.StorageProvider == "r2" {
		if c.R2AccountID == "" {
			return fmt.Errorf("R2_ACCOUNT_ID is required when STORAGE_PROVIDER is 'r2'")
		}
		if c.R2AccessKeyID == "" {
			return fmt.Errorf("R2_ACCESS_KEY_ID is required when STORAGE_PROVIDER is 'r2'")
		}
		if c.R2SecretAccessKey == "" {
			return fmt.Errorf("R2_SECRET_ACCESS_KEY is required when STORAGE_PROVIDER is 'r2'")
		}
		if c.R2BucketName == "" {
			return fmt.Errorf("R2_BUCKET_NAME is required when STORAGE_PROVIDER is 'r2'")
		}
	} else if c.StorageProvider != "local" {
		return fmt.Errorf("STORAGE_PROVIDER must be either 'local' or 'r2', got: %s", c.StorageProvider)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
