package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr         = ":8080"
	defaultSessionIdleTimeout = 30 * time.Minute
	defaultPanelConfigPath    = "./data/panel.toml"
)

type Config struct {
	BookingAPIURL      string
	BookingAPITimeout  time.Duration
	ListenAddr         string
	SessionIdleTimeout time.Duration
	PanelConfigPath    string

	TelegramBotToken    string
	TelegramAdminChatID int64
}

// Load loads configuration from environment variables only.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from an optional .env file and environment variables.
func LoadWithFile(envFile string) (*Config, error) {
	// Attempt to load .env file if provided, but don't fail if it doesn't exist.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		BookingAPIURL:    os.Getenv("BOOKING_API_URL"),
		ListenAddr:       getEnvOrDefault("LISTEN_ADDR", defaultListenAddr),
		PanelConfigPath:  getEnvOrDefault("PANEL_CONFIG_PATH", defaultPanelConfigPath),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	var err error
	if cfg.BookingAPITimeout, err = parseDuration("BOOKING_API_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.SessionIdleTimeout, err = parseDuration("SESSION_IDLE_TIMEOUT", defaultSessionIdleTimeout); err != nil {
		return nil, err
	}
	if raw := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); raw != "" {
		if cfg.TelegramAdminChatID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID must be an integer: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required fields are set.
func (c *Config) Validate() error {
	if c.BookingAPIURL == "" {
		return fmt.Errorf("BOOKING_API_URL is required")
	}
	u, err := url.Parse(c.BookingAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BOOKING_API_URL must be an absolute http(s) URL")
	}
	if c.BookingAPITimeout < 0 {
		return fmt.Errorf("BOOKING_API_TIMEOUT cannot be negative")
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if (c.TelegramBotToken == "") != (c.TelegramAdminChatID == 0) {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_ADMIN_CHAT_ID must be set together")
	}
	return nil
}

// TelegramEnabled reports whether admin notices can be delivered.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramAdminChatID != 0
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
