// Package client implements the HTTP transport for the IRIS platform API:
// bearer-token auth against a configurable base URL, JSON request/response
// handling, bounded retries for transient failures, and multipart uploads.
//
// Resource services in pkg/iris are thin wrappers over this client; nothing
// above this package deals with HTTP directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/iris-platform/iris-go/internal/version"
)

var defaultUserAgent = "iris-go/" + version.Version

// Client is the HTTP client for the IRIS platform API.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     hclog.Logger
	fs         afero.Fs
}

// New creates a new API client. Defaults are applied for any zero-valued
// optional field before validation.
func New(cfg *Config) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return &Client{
		config:     cfg,
		httpClient: cfg.newHTTPClient(),
		logger:     cfg.Logger.Named("iris-client"),
		fs:         cfg.Fs,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.config.BaseURL }

// Get issues a GET request. Query may be nil. The decoded JSON body is
// written into result when result is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	endpoint := path
	if len(query) > 0 {
		endpoint = path + "?" + query.Encode()
	}
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, result)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, result)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, result)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, result any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, result)
}

// Delete issues a DELETE request. Body may be nil.
func (c *Client) Delete(ctx context.Context, path string, body, result any) error {
	return c.doJSON(ctx, http.MethodDelete, path, body, result)
}

// Upload sends a file as a multipart/form-data POST, with extra form fields
// alongside the file part. The file is read through the configured afero
// filesystem.
func (c *Client) Upload(ctx context.Context, path, filePath string, fields map[string]string, result any) error {
	file, err := c.fs.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", key, err)
		}
	}
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	// Multipart bodies are not replayed, so uploads get a single attempt.
	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	respBody, err := c.send(req)
	if err != nil {
		return err
	}
	return decodeResult(respBody, result)
}

// doJSON executes a JSON round trip with retry on network errors and 5xx
// responses. 4xx responses are surfaced immediately as an *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(), uint64(c.config.MaxRetries)), ctx)

	var respBody []byte
	operation := func() error {
		var reader io.Reader
		if bodyBytes != nil {
			reader = bytes.NewReader(bodyBytes)
		}

		req, err := c.newRequest(ctx, method, path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if bodyBytes != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		respBody, err = c.send(req)
		if err != nil {
			var apiErr *APIError
			if asAPIError(err, &apiErr) && apiErr.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return err
	}
	return decodeResult(respBody, result)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	endpoint := strings.TrimSuffix(c.config.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// send executes the request and returns the raw response body. Non-2xx
// responses become an *APIError carrying the status code and the decoded
// error payload.
func (c *Client) send(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request complete",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func decodeResult(respBody []byte, result any) error {
	if result == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
