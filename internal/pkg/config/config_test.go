package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/errors"
	"github.com/confluentinc/ccloud-scrape-generator/internal/pkg/log"
)

func TestLoadCredentials(t *testing.T) {
	req := require.New(t)
	os.Setenv(EnvCloudAPIKey, "ABC123")
	os.Setenv(EnvCloudAPISecret, "s3cret")
	defer os.Unsetenv(EnvCloudAPIKey)
	defer os.Unsetenv(EnvCloudAPISecret)

	cfg := New(log.New())
	req.NoError(cfg.LoadCredentials())
	req.Equal("ABC123", cfg.APIKey)
	req.Equal("s3cret", cfg.APISecret)
}

func TestLoadCredentialsReportsAllMissingVariables(t *testing.T) {
	req := require.New(t)
	os.Unsetenv(EnvCloudAPIKey)
	os.Unsetenv(EnvCloudAPISecret)

	cfg := New(log.New())
	err := cfg.LoadCredentials()
	req.Error(err)

	confErr, ok := err.(*errors.ConfigurationError)
	req.True(ok)
	req.Equal([]string{EnvCloudAPIKey, EnvCloudAPISecret}, confErr.Missing)
}

func TestLoadCredentialsMissingSecretOnly(t *testing.T) {
	req := require.New(t)
	os.Setenv(EnvCloudAPIKey, "ABC123")
	os.Unsetenv(EnvCloudAPISecret)
	defer os.Unsetenv(EnvCloudAPIKey)

	cfg := New(log.New())
	err := cfg.LoadCredentials()
	req.Error(err)

	confErr, ok := err.(*errors.ConfigurationError)
	req.True(ok)
	req.Equal([]string{EnvCloudAPISecret}, confErr.Missing)
}
