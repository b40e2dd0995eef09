package nested

// Merge recursively combines two JSON-shaped trees. Override values win;
// base keys absent from override survive untouched. When both sides hold a
// map at the same key the merge recurses; arrays and scalars from override
// replace the base value wholesale (no element-wise array merging).
//
// Neither input is mutated and the result shares no containers with either,
// so callers are free to edit the returned tree.
func Merge(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		result[key] = copyValue(value)
	}
	for key, value := range override {
		baseValue, present := result[key]
		baseMap, baseIsMap := baseValue.(map[string]any)
		overrideMap, overrideIsMap := value.(map[string]any)
		if present && baseIsMap && overrideIsMap {
			result[key] = Merge(baseMap, overrideMap)
			continue
		}
		result[key] = copyValue(value)
	}
	return result
}

// Copy returns a deep copy of a JSON-shaped map. Primitives are shared
// (they are immutable); maps and slices are freshly allocated.
func Copy(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	result := make(map[string]any, len(tree))
	for key, value := range tree {
		result[key] = copyValue(value)
	}
	return result
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Copy(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = copyValue(elem)
		}
		return out
	default:
		return v
	}
}
