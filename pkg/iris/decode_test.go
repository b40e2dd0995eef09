package iris

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	t.Run("data envelope with meta", func(t *testing.T) {
		raw := json.RawMessage(`{"data":[{"id":"1"},{"id":"2"}],"meta":{"total":7,"page":1}}`)
		items, meta, err := decodeList(raw)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, meta)
		assert.Equal(t, 7, meta.Total)
	})

	t.Run("bare array", func(t *testing.T) {
		raw := json.RawMessage(`[{"id":"1"}]`)
		items, meta, err := decodeList(raw)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, meta)
	})

	t.Run("neither shape", func(t *testing.T) {
		_, _, err := decodeList(json.RawMessage(`{"oops":true}`))
		require.Error(t, err)
	})
}

func TestDecodeObject(t *testing.T) {
	t.Run("data envelope", func(t *testing.T) {
		obj, err := decodeObject(json.RawMessage(`{"data":{"id":"x"}}`))
		require.NoError(t, err)
		assert.Equal(t, "x", obj["id"])
	})

	t.Run("bare object", func(t *testing.T) {
		obj, err := decodeObject(json.RawMessage(`{"id":"x","name":"n"}`))
		require.NoError(t, err)
		assert.Equal(t, "x", obj["id"])
	})

	t.Run("resource with its own data field is not unwrapped", func(t *testing.T) {
		obj, err := decodeObject(json.RawMessage(`{"id":"x","data":{"k":"v"}}`))
		require.NoError(t, err)
		assert.Equal(t, "x", obj["id"])
	})
}

func TestDecodeModelTimestamps(t *testing.T) {
	type model struct {
		CreatedAt time.Time `json:"created_at"`
	}

	layouts := []string{
		"2026-08-01T10:00:00Z",
		"2026-08-01 10:00:00",
		"08/01/2026 10:00:00",
	}
	for _, layout := range layouts {
		t.Run(layout, func(t *testing.T) {
			var m model
			require.NoError(t, decodeModel(map[string]any{"created_at": layout}, &m))
			assert.Equal(t, 2026, m.CreatedAt.Year())
			assert.Equal(t, time.August, m.CreatedAt.Month())
		})
	}

	t.Run("empty string is zero time", func(t *testing.T) {
		var m model
		require.NoError(t, decodeModel(map[string]any{"created_at": ""}, &m))
		assert.True(t, m.CreatedAt.IsZero())
	})
}

func TestStringID(t *testing.T) {
	assert.Equal(t, "abc", stringID("abc"))
	assert.Equal(t, "4711", stringID(float64(4711)))
	assert.Equal(t, "", stringID(nil))
}
