package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ROADOFLIFE"

// Config holds the application configuration.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE" default:"road-of-life.log"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console"`

	// Seed 0 seeds from the wall clock.
	Seed        int64  `envconfig:"SEED" default:"0"`
	StartHealth int    `envconfig:"START_HEALTH" default:"85"`
	StartMorale int    `envconfig:"START_MORALE" default:"80"`
	FactEvery   int    `envconfig:"FACT_EVERY" default:"2"`
	CatalogPath string `envconfig:"CATALOG_PATH"`

	WindowWidth  int  `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight int  `envconfig:"WINDOW_HEIGHT" default:"720"`
	Fullscreen   bool `envconfig:"FULLSCREEN" default:"false"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.StartHealth < 1 || c.StartHealth > 100 {
		return fmt.Errorf("%s_START_HEALTH must be in 1..100, got %d", Prefix, c.StartHealth)
	}
	if c.StartMorale < 1 || c.StartMorale > 100 {
		return fmt.Errorf("%s_START_MORALE must be in 1..100, got %d", Prefix, c.StartMorale)
	}
	if c.FactEvery < 0 {
		return fmt.Errorf("%s_FACT_EVERY must not be negative, got %d", Prefix, c.FactEvery)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
