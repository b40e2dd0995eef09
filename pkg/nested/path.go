package nested

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is the sentinel wrapped by every PathError. Use
// errors.Is(err, nested.ErrInvalidPath) to classify accessor failures.
var ErrInvalidPath = errors.New("invalid path")

// PathError describes why a dot-path could not be applied to a tree.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

func (e *PathError) Unwrap() error { return ErrInvalidPath }

func pathErr(path, format string, args ...any) error {
	return &PathError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// parseIndex validates a path segment used against an array. Only
// non-negative base-10 integers are accepted; "-1", "01a" and friends are
// rejected.
func parseIndex(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// Get walks root along the dot-separated path and returns the value found
// there. The second return is false when the path does not resolve: a
// missing key, an out-of-range or non-numeric array index, or traversal
// through a primitive. Absence is an expected condition for callers probing
// page components, so it is reported as a bool rather than an error.
func Get(root any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := root
	for _, segment := range strings.Split(path, ".") {
		switch container := current.(type) {
		case map[string]any:
			value, ok := container[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			idx, ok := parseIndex(segment)
			if !ok || idx >= len(container) {
				return nil, false
			}
			current = container[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Set writes value at the dot-separated path, mutating root in place.
// Missing intermediate map keys are auto-created as empty maps. Arrays are
// never auto-created or extended: an out-of-range index, a non-numeric
// segment against an array, or traversal through a primitive all return a
// PathError.
func Set(root map[string]any, path string, value any) error {
	if path == "" {
		return pathErr(path, "empty path")
	}
	if root == nil {
		return pathErr(path, "nil root")
	}

	segments := strings.Split(path, ".")
	var current any = root

	for _, segment := range segments[:len(segments)-1] {
		switch container := current.(type) {
		case map[string]any:
			child, ok := container[segment]
			if !ok {
				created := map[string]any{}
				container[segment] = created
				current = created
				continue
			}
			switch child.(type) {
			case map[string]any, []any:
				current = child
			default:
				return pathErr(path, "segment %q traverses a non-container value", segment)
			}
		case []any:
			idx, ok := parseIndex(segment)
			if !ok {
				return pathErr(path, "segment %q is not a valid array index", segment)
			}
			if idx >= len(container) {
				return pathErr(path, "index %d out of range (array length %d)", idx, len(container))
			}
			child := container[idx]
			switch child.(type) {
			case map[string]any, []any:
				current = child
			default:
				return pathErr(path, "segment %q traverses a non-container value", segment)
			}
		default:
			return pathErr(path, "segment %q traverses a non-container value", segment)
		}
	}

	last := segments[len(segments)-1]
	switch container := current.(type) {
	case map[string]any:
		container[last] = value
	case []any:
		idx, ok := parseIndex(last)
		if !ok {
			return pathErr(path, "segment %q is not a valid array index", last)
		}
		if idx >= len(container) {
			return pathErr(path, "index %d out of range (array length %d)", idx, len(container))
		}
		container[idx] = value
	default:
		return pathErr(path, "segment %q traverses a non-container value", last)
	}
	return nil
}

// MergeUpdates applies a partial update to target and returns the merged
// result as a new map; neither input is mutated. Three cases per update key:
//
//   - a key containing "." is treated as a Set path into the result,
//   - a plain key where both sides hold maps gets a single-level shallow
//     merge (update keys win, untouched target keys survive),
//   - anything else replaces the target value outright.
//
// The shallow merge here is deliberately not recursive; see Merge for the
// deep variant used by template resolution.
func MergeUpdates(target, updates map[string]any) (map[string]any, error) {
	result := Copy(target)
	if result == nil {
		result = map[string]any{}
	}

	for key, value := range updates {
		if strings.Contains(key, ".") {
			if err := Set(result, key, value); err != nil {
				return nil, err
			}
			continue
		}

		existing, present := result[key]
		existingMap, existingIsMap := existing.(map[string]any)
		updateMap, updateIsMap := value.(map[string]any)
		if present && existingIsMap && updateIsMap {
			merged := make(map[string]any, len(existingMap)+len(updateMap))
			for k, v := range existingMap {
				merged[k] = v
			}
			for k, v := range updateMap {
				merged[k] = v
			}
			result[key] = merged
			continue
		}

		result[key] = value
	}
	return result, nil
}
