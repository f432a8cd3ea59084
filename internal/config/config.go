package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Email    EmailConfig
	Engine   EngineConfig
	Server   ServerConfig
	Worker   WorkerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds identity token verification settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// StorageConfig holds S3-compatible object storage settings for uploaded videos
type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// RedisConfig holds leaderboard cache settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

// KafkaConfig holds domain event publishing settings
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// EmailConfig holds outbound notification email settings
type EmailConfig struct {
	ResendAPIKey  string
	DefaultSender string
}

// EngineConfig holds growth engine policy knobs
type EngineConfig struct {
	StoreTxAttempts           int
	CollabMaxSubmissions      int
	EnforceMilestoneThreshold bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// WorkerConfig holds the periodic trigger intervals used by cmd/worker
type WorkerConfig struct {
	SweepInterval     time.Duration
	ReconcileInterval time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Issuer = getEnvWithDefault("JWT_ISSUER", "growth-server")

	if cfg.Storage.Bucket, err = requireEnv("STORAGE_BUCKET"); err != nil {
		return nil, err
	}
	if cfg.Storage.AccessKeyID, err = requireEnv("STORAGE_ACCESS_KEY_ID"); err != nil {
		return nil, err
	}
	if cfg.Storage.SecretAccessKey, err = requireEnv("STORAGE_SECRET_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if cfg.Storage.PublicBaseURL, err = requireEnv("STORAGE_PUBLIC_BASE_URL"); err != nil {
		return nil, err
	}
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.Region = getEnvWithDefault("STORAGE_REGION", "auto")

	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
	}
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.CacheTTL, err = parseDuration("LEADERBOARD_CACHE_TTL", "30s"); err != nil {
		return nil, err
	}

	cfg.Kafka.Enabled = getEnvWithDefault("KAFKA_ENABLED", "false") == "true"
	if cfg.Kafka.Enabled {
		brokers, err := requireEnv("KAFKA_BROKERS")
		if err != nil {
			return nil, err
		}
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "growth-events")

	if cfg.Email.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Email.DefaultSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}

	if cfg.Engine.StoreTxAttempts, err = parseInt("STORE_TX_ATTEMPTS", "5"); err != nil {
		return nil, err
	}
	if cfg.Engine.CollabMaxSubmissions, err = parseInt("COLLAB_MAX_SUBMISSIONS", "50"); err != nil {
		return nil, err
	}
	cfg.Engine.EnforceMilestoneThreshold = getEnvWithDefault("MILESTONE_ENFORCE_THRESHOLD", "true") == "true"

	if cfg.Server.Port, err = parseInt("SERVER_PORT", "8080"); err != nil {
		return nil, err
	}
	if cfg.Server.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	if cfg.Worker.SweepInterval, err = parseDuration("SWEEP_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	if cfg.Worker.ReconcileInterval, err = parseDuration("COLLAB_RECONCILE_INTERVAL", "10m"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, defaultValue string) (int, error) {
	value, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}
