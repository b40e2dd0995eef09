package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Config contains configuration for the IRIS API client.
type Config struct {
	// BaseURL is the base URL of the IRIS platform API.
	// Example: "https://api.iris.example.com"
	BaseURL string

	// AuthToken is the bearer token attached to every request. Keep it in
	// an environment variable rather than on disk where possible.
	AuthToken string

	// Timeout for a single HTTP request.
	// Default: 30 seconds.
	Timeout time.Duration

	// MaxRetries for requests that fail with a network error or a 5xx
	// response. 4xx responses are never retried.
	// Default: 3.
	MaxRetries int

	// UserAgent sent with every request.
	// Default: "iris-go/<version>".
	UserAgent string

	// Logger (optional). Defaults to a null logger; the client never
	// prints to stdout/stderr on its own.
	Logger hclog.Logger

	// Fs is the filesystem Upload reads from. Defaults to the OS
	// filesystem; tests substitute an in-memory one.
	Fs afero.Fs
}

// DefaultConfig returns a Config with sensible defaults. BaseURL and
// AuthToken still have to be filled in by the caller.
func DefaultConfig() *Config {
	return &Config{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		UserAgent:  defaultUserAgent,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got: %s", parsed.Scheme)
	}

	if c.AuthToken == "" {
		return fmt.Errorf("auth token is required")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got: %v", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must be non-negative, got: %d", c.MaxRetries)
	}

	return nil
}

func (c *Config) newHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   c.Timeout,
	}
}
