// Package config loads the dashboard configuration from an optional .env
// file, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration.
type Config struct {
	HTTP          HTTPConfig     `yaml:"http"`
	Provider      ProviderConfig `yaml:"provider"`
	LogLevel      string         `yaml:"logLevel"`
	DefaultCities []string       `yaml:"defaultCities"`
}

// HTTPConfig controls the dashboard server.
type HTTPConfig struct {
	Port   string `yaml:"port"`
	Origin string `yaml:"origin"`
}

// ProviderConfig controls calls to the weather provider.
type ProviderConfig struct {
	APIKey    string        `yaml:"apiKey"`
	BaseURL   string        `yaml:"baseUrl"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rateLimit"`
	Burst     int           `yaml:"burst"`
}

// Load reads .env, the YAML file and environment variables, in that order of precedence from lowest.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port: "8080",
		},
		Provider: ProviderConfig{
			BaseURL:   "https://api.openweathermap.org/data/2.5",
			RateLimit: 1,
			Burst:     5,
		},
		LogLevel: "info",
	}
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Port = v
	}
	if v := os.Getenv("ORIGIN"); v != "" {
		cfg.HTTP.Origin = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DEFAULT_CITIES"); v != "" {
		cfg.DefaultCities = splitList(v)
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PROVIDER_TIMEOUT: %w", err)
		}
		cfg.Provider.Timeout = parsed
	}
	if v := os.Getenv("PROVIDER_RATE_LIMIT"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PROVIDER_RATE_LIMIT: %w", err)
		}
		cfg.Provider.RateLimit = parsed
	}
	if v := os.Getenv("PROVIDER_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PROVIDER_BURST: %w", err)
		}
		cfg.Provider.Burst = parsed
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the configuration for values the dashboard cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Provider.APIKey) == "" {
		return errors.New("OPENWEATHER_API_KEY is required")
	}
	if _, err := strconv.Atoi(c.HTTP.Port); err != nil {
		return fmt.Errorf("port %q is not a number", c.HTTP.Port)
	}
	if c.Provider.Timeout < 0 {
		return errors.New("provider timeout must not be negative")
	}
	if c.Provider.RateLimit < 0 {
		return errors.New("provider rate limit must not be negative")
	}
	if c.Provider.RateLimit > 0 && c.Provider.Burst < 1 {
		return errors.New("provider burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}
