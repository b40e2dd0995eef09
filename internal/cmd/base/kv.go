package base

import (
	"encoding/json"
	"fmt"
	"strings"
)

// KVFlag collects repeated -set key=value flags. Keys may use dot notation
// to address nested fields ("settings.schedule.enabled=true").
type KVFlag struct {
	pairs []string
}

func (f *KVFlag) String() string { return strings.Join(f.pairs, ",") }

func (f *KVFlag) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	f.pairs = append(f.pairs, value)
	return nil
}

// Map parses the collected pairs into an update mapping. Values that parse
// as JSON (numbers, booleans, null, quoted strings, objects, arrays) keep
// their JSON type; everything else stays a plain string.
func (f *KVFlag) Map() map[string]any {
	result := make(map[string]any, len(f.pairs))
	for _, pair := range f.pairs {
		key, value, _ := strings.Cut(pair, "=")
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			result[key] = parsed
		} else {
			result[key] = value
		}
	}
	return result
}
