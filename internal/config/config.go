// Package config loads CLI configuration from an HCL file with environment
// variable overrides. The auth token should live in the environment; the
// file mainly pins the base URL and request tuning.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Environment variables recognized by the CLI. They win over file values.
const (
	EnvBaseURL   = "IRIS_BASE_URL"
	EnvAuthToken = "IRIS_API_TOKEN"
)

// DefaultDashboardURL is used by `iris open` when the config file does not
// set dashboard_url.
const DefaultDashboardURL = "https://app.iris.ai"

// Config is the on-disk CLI configuration.
//
// Example:
//
//	base_url   = "https://api.iris.example.com"
//	auth_token = "..."          # prefer IRIS_API_TOKEN instead
//	timeout    = "30s"
//	dashboard_url = "https://app.iris.example.com"
type Config struct {
	BaseURL      string `hcl:"base_url,optional"`
	AuthToken    string `hcl:"auth_token,optional"`
	Timeout      string `hcl:"timeout,optional"`
	DashboardURL string `hcl:"dashboard_url,optional"`
}

// Load reads the config file at path (empty path skips the file and uses
// environment variables only), then applies environment overrides.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// hclsimple picks the syntax from the file name, so pass it through.
		if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAuthToken); v != "" {
		cfg.AuthToken = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.BaseURL == "" {
		result = multierror.Append(result, fmt.Errorf(
			"base URL is required (set base_url in the config file or %s)", EnvBaseURL))
	}
	if c.AuthToken == "" {
		result = multierror.Append(result, fmt.Errorf(
			"auth token is required (set auth_token in the config file or %s)", EnvAuthToken))
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err))
		}
	}

	return result.ErrorOrNil()
}

// ClientConfig converts the CLI configuration into a transport config.
func (c *Config) ClientConfig() *client.Config {
	clientCfg := client.DefaultConfig()
	clientCfg.BaseURL = c.BaseURL
	clientCfg.AuthToken = c.AuthToken
	if c.Timeout != "" {
		// validate() already checked the duration parses.
		timeout, _ := time.ParseDuration(c.Timeout)
		clientCfg.Timeout = timeout
	}
	return clientCfg
}
