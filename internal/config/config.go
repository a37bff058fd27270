package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	BotToken        string
	HTTPAddr        string
	WebhookURL      string
	PollTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// A .env file in the working directory is loaded first if present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		WebhookURL:      envOrDefault("WEBHOOK_URL", ""),
		PollTimeout:     envDuration("POLL_TIMEOUT_SECONDS", 10*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("BOT_TOKEN must be provided")
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
