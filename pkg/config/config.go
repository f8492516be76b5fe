package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variables override file values, e.g. PODCASTS_CATALOG_API_KEY
		viper.SetEnvPrefix("PODCASTS")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing file is fine, defaults and env vars apply
			if !errors.Is(err, os.ErrNotExist) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// reset clears the once guard so tests can re-run Init
func reset() {
	once = sync.Once{}
	initErr = nil
	viper.Reset()
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is not a valid port", port))
	}

	if err := validateBaseURL(viper.GetString("catalog.base_url")); err != nil {
		return err
	}

	if strings.TrimSpace(viper.GetString("catalog.envelope_field")) == "" {
		return apperrors.ConfigError("catalog.envelope_field", "must not be empty")
	}

	if err := validateAPIKey(); err != nil {
		return err
	}

	// Auto-correct invalid limits
	if viper.GetFloat64("catalog.rate_limit") <= 0 {
		viper.Set("catalog.rate_limit", 1)
	}
	if viper.GetInt("rate_limiting.requests_per_second") <= 0 {
		viper.Set("rate_limiting.requests_per_second", 10)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 20)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return apperrors.ConfigError("catalog.base_url", fmt.Sprintf("%q is not a url", raw)).WithDetail("cause", err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.ConfigError("catalog.base_url", fmt.Sprintf("%q must use http or https", raw))
	}
	return nil
}

// validateAPIKey rejects placeholder keys in production and warns elsewhere
func validateAPIKey() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
	}

	key := viper.GetString("catalog.api_key")
	for _, placeholder := range placeholders {
		if key == placeholder {
			if isProduction {
				return apperrors.ConfigError("catalog.api_key", "cannot use placeholder values in production")
			}
			logrus.Warn("Catalog API key is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is not a valid port", c.Server.Port))
	}

	if err := validateBaseURL(c.Catalog.BaseURL); err != nil {
		return err
	}

	if c.Catalog.EnvelopeField == "" {
		c.Catalog.EnvelopeField = "podcasts"
	}

	if c.Catalog.RateLimit <= 0 {
		c.Catalog.RateLimit = 1
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Catalog defaults, the Listen Notes test host needs no API key
	viper.SetDefault("catalog.base_url", "https://listen-api-test.listennotes.com/api/v2")
	viper.SetDefault("catalog.endpoint", "best_podcasts")
	viper.SetDefault("catalog.envelope_field", "podcasts")
	viper.SetDefault("catalog.api_key", "")
	viper.SetDefault("catalog.timeout", 15*time.Second)
	viper.SetDefault("catalog.rate_limit", 2)
	viper.SetDefault("catalog.user_agent", "PodcastBrowser/1.0")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.file_path", "./logs/podcasts.log")

	// Terminal browser defaults
	viper.SetDefault("ui.description_width", 80)
	viper.SetDefault("ui.alt_screen", true)
}
