package iris

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"listAccountUsers", "list_account_users"},
		{"getCaseDetails", "get_case_details"},
		{"test", "test"},
		{"createCase", "create_case"},
		{"already_snake_case", "already_snake_case"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.in))
			// Idempotent: converting the result again is a no-op.
			assert.Equal(t, tt.want, ToSnakeCase(tt.want))
		})
	}
}

func TestServisProxy_Execute(t *testing.T) {
	sdk, _ := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/integrations/execute", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "servis", body["integration"])
		assert.Equal(t, "get_case_details", body["action"])
		assert.Equal(t, map[string]any{"case_id": "c-42"}, body["parameters"])

		json.NewEncoder(w).Encode(map[string]any{"case": map[string]any{"id": "c-42"}})
	}, nil)

	result, err := sdk.Integrations.Servis().GetCaseDetails(context.Background(), "c-42")
	require.NoError(t, err)
	assert.Contains(t, result, "case")
}

func TestServisProxy_CallSnakeCasesMethodName(t *testing.T) {
	var gotAction string
	var gotParams any
	sdk, _ := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotAction = body["action"].(string)
		gotParams = body["parameters"]
		json.NewEncoder(w).Encode(map[string]any{"users": []any{}})
	}, nil)

	_, err := sdk.Integrations.Servis().Call(context.Background(), "listAccountUsers", nil)
	require.NoError(t, err)
	assert.Equal(t, "list_account_users", gotAction)
	// nil parameters become an empty mapping on the wire.
	assert.Equal(t, map[string]any{}, gotParams)
}

func TestServisProxy_RemoteErrorPayloadIsData(t *testing.T) {
	sdk, _ := newTestSDK(t, func(w http.ResponseWriter, r *http.Request) {
		// 200 with an error payload: the remote function itself failed,
		// but the transport call succeeded.
		json.NewEncoder(w).Encode(map[string]any{"error": "unknown account"})
	}, nil)

	result, err := sdk.Integrations.Servis().Execute(context.Background(), "list_account_users", nil)
	require.NoError(t, err)
	assert.Equal(t, "unknown account", result["error"])
}
