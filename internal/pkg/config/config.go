package config

import (
	"github.com/spf13/viper"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
)

const (
	// EnvCloudAPIKey holds the Cloud API key used for both the management
	// API and the telemetry scrape basic auth.
	EnvCloudAPIKey = "CLOUD_API_KEY"

	// EnvCloudAPISecret holds the matching secret.
	EnvCloudAPISecret = "CLOUD_API_SECRET"
)

// Config carries the logger and the credentials loaded from the
// environment. Everything else arrives via command flags.
type Config struct {
	Logger    *log.Logger
	APIKey    string
	APISecret string
}

func New(logger *log.Logger) *Config {
	_ = viper.BindEnv("cloud_api_key", EnvCloudAPIKey)
	_ = viper.BindEnv("cloud_api_secret", EnvCloudAPISecret)
	return &Config{Logger: logger}
}

// LoadCredentials reads the Cloud API key and secret from the environment.
// Both must be present; the error names every missing variable so the user
// can fix them in one pass.
func (c *Config) LoadCredentials() error {
	c.APIKey = viper.GetString("cloud_api_key")
	c.APISecret = viper.GetString("cloud_api_secret")

	var missing []string
	if c.APIKey == "" {
		missing = append(missing, EnvCloudAPIKey)
	}
	if c.APISecret == "" {
		missing = append(missing, EnvCloudAPISecret)
	}
	if len(missing) > 0 {
		return &errors.ConfigurationError{Missing: missing}
	}
	return nil
}
