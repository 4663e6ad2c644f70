// Package config loads the settings dealcloud-activity needs before it may
// talk to the API: the site, the client credentials, and HTTP and logging
// options. Values come from the environment, optionally seeded from a .env
// file and a YAML file named by DEALCLOUD_CONFIG_PATH.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tonimelisma/dealcloud-activity/internal/logger"
)

// ConfigPathEnv names an optional YAML file read before the environment.
const ConfigPathEnv = "DEALCLOUD_CONFIG_PATH"

// DefaultDotenvFile is loaded from the working directory when present.
const DefaultDotenvFile = ".env"

// ErrConfig reports missing or invalid configuration.
var ErrConfig = errors.New("configuration error")

// Configuration holds all the application's settings.
type Configuration struct {
	Site         string     `yaml:"site" env:"DEALCLOUD_SITE" env-required:"true" env-description:"DealCloud site hostname"`
	ClientID     string     `yaml:"client_id" env:"DEALCLOUD_CLIENT_ID" env-required:"true" env-description:"OAuth2 client id"`
	ClientSecret string     `yaml:"client_secret" env:"DEALCLOUD_CLIENT_SECRET" env-required:"true" env-description:"OAuth2 client secret"`
	Debug        bool       `yaml:"debug" env:"DEALCLOUD_DEBUG" env-default:"false" env-description:"Enable debug logging"`
	LogFormat    string     `yaml:"log_format" env:"DEALCLOUD_LOG_FORMAT" env-default:"text" env-description:"Log format: text or json"`
	HTTP         HTTPConfig `yaml:"http"`
}

// HTTPConfig controls the shared HTTP client.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"DEALCLOUD_HTTP_TIMEOUT" env-default:"30s" env-description:"Timeout for each HTTP request"`
}

// Load reads the configuration. The given dotenv files, or DefaultDotenvFile
// when none are given, are loaded first; missing dotenv files are ignored and
// variables already set in the environment win.
func Load(dotenvFiles ...string) (*Configuration, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{DefaultDotenvFile}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: loading %s: %w", ErrConfig, file, err)
		}
	}

	cfg := &Configuration{}
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cleanenv cannot express as tags.
func (c *Configuration) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Site) == "" {
		missing = append(missing, "DEALCLOUD_SITE")
	}
	if strings.TrimSpace(c.ClientID) == "" {
		missing = append(missing, "DEALCLOUD_CLIENT_ID")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		missing = append(missing, "DEALCLOUD_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfig, strings.Join(missing, ", "))
	}

	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("%w: DEALCLOUD_HTTP_TIMEOUT must be positive, got %s", ErrConfig, c.HTTP.Timeout)
	}

	switch c.LogFormat {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: DEALCLOUD_LOG_FORMAT must be %q or %q, got %q", ErrConfig, logger.FormatText, logger.FormatJSON, c.LogFormat)
	}
	return nil
}

// Redacted returns a copy that is safe to print.
func (c *Configuration) Redacted() Configuration {
	out := *c
	if out.ClientSecret != "" {
		out.ClientSecret = "********"
	}
	return out
}

// Usage describes the environment variables the configuration reads.
func Usage() (string, error) {
	var cfg Configuration
	header := "Environment variables:"
	return cleanenv.GetDescription(&cfg, &header)
}
