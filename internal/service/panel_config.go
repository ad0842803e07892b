package service

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
)

// TelegramConfig toggles admin notices. Credentials come from the environment.
type TelegramConfig struct {
	Enabled bool `toml:"enabled"`
}

// FeatureConfig holds user-facing panel settings.
// These are non-sensitive settings (texts, toggles) that can change
// without redeployment.
// Source: TOML configuration file
type FeatureConfig struct {
	Panel    panel.Messages `toml:"panel"`
	Telegram TelegramConfig `toml:"telegram"`
}

// DefaultFeatureConfig is used when no TOML file is present.
func DefaultFeatureConfig() *FeatureConfig {
	return &FeatureConfig{
		Panel:    panel.DefaultMessages(),
		Telegram: TelegramConfig{Enabled: true},
	}
}

// LoadFeatureConfig loads feature configuration from a TOML file. Keys missing
// from the file keep their defaults.
func LoadFeatureConfig(path string) (*FeatureConfig, error) {
	cfg := DefaultFeatureConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load feature config: %w", err)
	}
	cfg.Panel = cfg.Panel.WithDefaults()
	return cfg, nil
}
