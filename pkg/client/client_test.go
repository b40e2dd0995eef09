package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(&Config{
		BaseURL:   baseURL,
		AuthToken: "test-token",
		Timeout:   5 * time.Second,
		Logger:    hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return c
}

func TestClient_Get(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/agents", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer mockServer.Close()

	c := newTestClient(t, mockServer.URL)

	var result map[string]any
	query := url.Values{}
	query.Set("limit", "10")
	err := c.Get(context.Background(), "api/v1/agents", query, &result)
	require.NoError(t, err)
	assert.Contains(t, result, "data")
}

func TestClient_Post(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Support Bot", body["name"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": "agent-1", "name": "Support Bot"})
	}))
	defer mockServer.Close()

	c := newTestClient(t, mockServer.URL)

	var result map[string]any
	err := c.Post(context.Background(), "api/v1/agents", map[string]any{"name": "Support Bot"}, &result)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", result["id"])
}

func TestClient_APIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "agent not found"})
	}))
	defer mockServer.Close()

	c := newTestClient(t, mockServer.URL)

	err := c.Get(context.Background(), "api/v1/agents/missing", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "agent not found", apiErr.Message)
	assert.Equal(t, "agent not found", apiErr.Body["error"])
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer mockServer.Close()

	c := newTestClient(t, mockServer.URL)

	var result map[string]any
	err := c.Get(context.Background(), "api/v1/agents", nil, &result)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, true, result["ok"])
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"error": "bad input"})
	}))
	defer mockServer.Close()

	c := newTestClient(t, mockServer.URL)

	err := c.Post(context.Background(), "api/v1/agents", map[string]any{}, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Upload(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "notes", r.FormValue("folder"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.txt", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{"uploaded": true})
	}))
	defer mockServer.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/report.txt", []byte("contents"), 0o644))

	c, err := New(&Config{
		BaseURL:   mockServer.URL,
		AuthToken: "test-token",
		Logger:    hclog.NewNullLogger(),
		Fs:        fs,
	})
	require.NoError(t, err)

	var result map[string]any
	err = c.Upload(context.Background(), "api/v1/bloqs/b1/folder/files", "/docs/report.txt",
		map[string]string{"folder": "notes"}, &result)
	require.NoError(t, err)
	assert.Equal(t, true, result["uploaded"])
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "missing base URL",
			config:  Config{AuthToken: "t"},
			wantErr: "base URL is required",
		},
		{
			name:    "bad scheme",
			config:  Config{BaseURL: "ftp://example.com", AuthToken: "t"},
			wantErr: "http or https",
		},
		{
			name:    "missing token",
			config:  Config{BaseURL: "https://example.com"},
			wantErr: "auth token is required",
		},
		{
			name:   "valid",
			config: Config{BaseURL: "https://example.com", AuthToken: "t"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
