package iris

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
)

// Meta carries pagination info from collection responses.
type Meta struct {
	Total   int `mapstructure:"total"`
	Page    int `mapstructure:"page"`
	PerPage int `mapstructure:"per_page"`
}

// decodeList handles the two collection envelopes the API uses:
// {"data": [...], "meta": {...}} and a bare JSON array. Meta is nil when
// the response carried none.
func decodeList(raw json.RawMessage) ([]map[string]any, *Meta, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta map[string]any  `json:"meta"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		var items []map[string]any
		if err := json.Unmarshal(envelope.Data, &items); err != nil {
			return nil, nil, fmt.Errorf("failed to decode collection data: %w", err)
		}
		var meta *Meta
		if envelope.Meta != nil {
			meta = &Meta{}
			if err := decodeModel(envelope.Meta, meta); err != nil {
				return nil, nil, fmt.Errorf("failed to decode collection meta: %w", err)
			}
		}
		return items, meta, nil
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("failed to decode collection response: %w", err)
	}
	return items, nil, nil
}

// decodeObject handles the two singular envelopes: the resource object
// directly, or wrapped as {"data": {...}}.
func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to decode resource response: %w", err)
	}
	if data, ok := body["data"].(map[string]any); ok && isEnvelope(body) {
		return data, nil
	}
	return body, nil
}

// isEnvelope distinguishes {"data": {...}, "meta"?: {...}} wrappers from
// resources that happen to carry a "data" field of their own.
func isEnvelope(body map[string]any) bool {
	for key := range body {
		if key != "data" && key != "meta" {
			return false
		}
	}
	return true
}

// decodeModel maps a loose JSON object onto a typed model. Timestamps in
// the API arrive in several layouts (RFC 3339, "2006-01-02 15:04:05",
// unix-ish strings), so time.Time fields go through dateparse.
func decodeModel(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
		DecodeHook:       flexibleTimeHook,
	})
	if err != nil {
		return fmt.Errorf("failed to build model decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}
	return nil
}

func flexibleTimeHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Time{}) || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if s == "" {
		return time.Time{}, nil
	}
	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return parsed, nil
}

// stringID normalizes a job or resource identifier that the API may emit
// as either a JSON string or a number.
func stringID(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
