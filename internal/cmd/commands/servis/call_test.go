package servis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iris-platform/iris-go/internal/cmd/base"
	"github.com/iris-platform/iris-go/internal/config"
)

func newCallCommand(ui cli.Ui) *CallCommand {
	return &CallCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui)}
}

func TestCallCommand_FunctionBeforeFlags(t *testing.T) {
	var gotBody map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/integrations/execute", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"case": map[string]any{"id": "81223"}})
	}))
	defer mockServer.Close()

	t.Setenv(config.EnvBaseURL, mockServer.URL)
	t.Setenv(config.EnvAuthToken, "test-token")

	ui := cli.NewMockUi()
	cmd := newCallCommand(ui)

	// The invocation shape from the command's Help text.
	code := cmd.Run([]string{"getCaseDetails", "-param", "case_id=81223"})
	require.Equal(t, 0, code, "stderr: %s", ui.ErrorWriter.String())

	assert.Equal(t, "get_case_details", gotBody["action"])
	params := gotBody["parameters"].(map[string]any)
	assert.Equal(t, float64(81223), params["case_id"])
	assert.Contains(t, ui.OutputWriter.String(), "case")
}

func TestCallCommand_MissingFunctionName(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := newCallCommand(ui)

	code := cmd.Run([]string{"-param", "case_id=81223"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "function name is required")
}

func TestCallCommand_RejectsExtraArguments(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := newCallCommand(ui)

	code := cmd.Run([]string{"getCaseDetails", "extra"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "unexpected argument")
}
