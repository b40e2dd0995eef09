package iris

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/iris-platform/iris-go/pkg/client"
)

// newTestSDK spins up a mock API server and an SDK pointed at it.
func newTestSDK(t *testing.T, handler http.HandlerFunc, opts *Options) (*IRIS, *httptest.Server) {
	t.Helper()

	mockServer := httptest.NewServer(handler)
	t.Cleanup(mockServer.Close)

	if opts == nil {
		opts = &Options{}
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewMemMapFs()
	}

	// The client shares the SDK's filesystem so uploads see the same files
	// ingestion walked.
	c, err := client.New(&client.Config{
		BaseURL:   mockServer.URL,
		AuthToken: "test-token",
		Timeout:   5 * time.Second,
		Logger:    hclog.NewNullLogger(),
		Fs:        opts.Fs,
	})
	require.NoError(t, err)

	return New(c, opts), mockServer
}
