// Package templates holds the agent template registry and the resolver that
// layers caller customizations over a template's base configuration.
//
// The registry is an explicit object rather than package-level state so
// callers (and tests) can construct their own sets of templates; BuiltIn
// returns one seeded with the templates the IRIS platform ships with.
package templates

import (
	"fmt"
	"sort"

	"github.com/iris-platform/iris-go/pkg/nested"
)

// TemplateNotFoundError is returned by Registry.Lookup for unknown names.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// Registry maps template names to their base configuration trees.
type Registry struct {
	templates map[string]map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: map[string]map[string]any{}}
}

// Register stores a template under name. The tree is deep-copied on the way
// in so later edits by the caller cannot corrupt the registry.
func (r *Registry) Register(name string, base map[string]any) {
	r.templates[name] = nested.Copy(base)
}

// Lookup returns a deep copy of the named template's base configuration.
// Handing out copies keeps registry entries immutable no matter what the
// caller does with the result.
func (r *Registry) Lookup(name string) (map[string]any, error) {
	base, ok := r.templates[name]
	if !ok {
		return nil, &TemplateNotFoundError{Name: name}
	}
	return nested.Copy(base), nil
}

// Names returns the registered template names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve produces the final agent configuration by deep-merging caller
// customizations over the template's base tree. Unspecified nested keys from
// the template survive; customized values win. Resolving with empty
// customizations yields a tree deep-equal to the template, and repeated
// calls with the same inputs are deterministic.
func Resolve(template, customizations map[string]any) map[string]any {
	return nested.Merge(template, customizations)
}
