package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads HCL file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/iris.hcl", []byte(`
base_url   = "https://api.iris.example.com"
auth_token = "file-token"
timeout    = "45s"
`), 0o644))

		cfg, err := Load(fs, "/etc/iris.hcl")
		require.NoError(t, err)
		assert.Equal(t, "https://api.iris.example.com", cfg.BaseURL)
		assert.Equal(t, "file-token", cfg.AuthToken)

		clientCfg := cfg.ClientConfig()
		assert.Equal(t, 45*time.Second, clientCfg.Timeout)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/iris.hcl", []byte(`
base_url   = "https://file.example.com"
auth_token = "file-token"
`), 0o644))

		t.Setenv(EnvBaseURL, "https://env.example.com")
		t.Setenv(EnvAuthToken, "env-token")

		cfg, err := Load(fs, "/etc/iris.hcl")
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", cfg.BaseURL)
		assert.Equal(t, "env-token", cfg.AuthToken)
	})

	t.Run("environment only, no file", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://env.example.com")
		t.Setenv(EnvAuthToken, "env-token")

		cfg, err := Load(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.AuthToken)
	})

	t.Run("missing credentials accumulate errors", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "")
		t.Setenv(EnvAuthToken, "")

		_, err := Load(afero.NewMemMapFs(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base URL is required")
		assert.Contains(t, err.Error(), "auth token is required")
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://env.example.com")
		t.Setenv(EnvAuthToken, "env-token")

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/iris.hcl", []byte(`
timeout = "soon"
`), 0o644))

		_, err := Load(fs, "/etc/iris.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timeout")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "/nope.hcl")
		require.Error(t, err)
	})
}
