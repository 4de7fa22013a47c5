package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Insight provider names accepted in INSIGHT_PROVIDER.
const (
	InsightProviderStub   = "stub"
	InsightProviderGemini = "gemini"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Insight InsightConfig
	Digest  DigestConfig
	Alert   AlertConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the document database.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// InsightConfig selects and configures the generative-insight provider.
type InsightConfig struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
}

// DigestConfig holds the daily-digest scheduler settings.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
}

// AlertConfig configures the outbound alert webhook. An empty URL disables
// outbound alerts entirely.
type AlertConfig struct {
	WebhookURL string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "mmsports"),
		},
		Insight: InsightConfig{
			Provider:     os.Getenv("INSIGHT_PROVIDER"),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			GeminiModel:  os.Getenv("GEMINI_MODEL"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Dhaka"),
		},
		Alert: AlertConfig{
			WebhookURL: os.Getenv("ALERT_WEBHOOK_URL"),
		},
	}

	// Default the provider from what credentials are actually present, so
	// the dashboard keeps working on key-less deployments.
	if cfg.Insight.Provider == "" {
		if cfg.Insight.GeminiAPIKey != "" {
			cfg.Insight.Provider = InsightProviderGemini
		} else {
			cfg.Insight.Provider = InsightProviderStub
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	switch c.Insight.Provider {
	case InsightProviderStub:
	case InsightProviderGemini:
		if c.Insight.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY must be provided when INSIGHT_PROVIDER is gemini")
		}
	default:
		return fmt.Errorf("unsupported INSIGHT_PROVIDER %q", c.Insight.Provider)
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}
	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
