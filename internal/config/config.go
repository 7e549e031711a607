package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Digest    DigestConfig
	Seed      SeedConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// AssistantConfig controls the chat assistant behavior.
type AssistantConfig struct {
	ReplyDelay time.Duration
}

// DigestConfig holds settings for the scheduled overdue-students digest.
type DigestConfig struct {
	CronSchedule string
	WebhookURL   string
	Timezone     string
}

// SeedConfig toggles the demo fixtures loaded at boot.
type SeedConfig struct {
	DemoData bool
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

	replyDelay, err := time.ParseDuration(getenvWithDefault("BOT_REPLY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOT_REPLY_DELAY: %w", err)
	}

	seedDemo, err := strconv.ParseBool(getenvWithDefault("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Assistant: AssistantConfig{
			ReplyDelay: replyDelay,
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 9 * * *"),
			WebhookURL:   os.Getenv("DIGEST_WEBHOOK_URL"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Sao_Paulo"),
		},
		Seed: SeedConfig{
			DemoData: seedDemo,
		},
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

	if c.Assistant.ReplyDelay <= 0 {
		return errors.New("BOT_REPLY_DELAY must be positive")
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
