// Package nested provides dot-path access and structural merging for the
// loosely-typed JSON trees the IRIS API exchanges (page components, agent
// settings, integration payloads).
//
// Values follow the shape produced by encoding/json: map[string]any for
// objects, []any for arrays, and primitives for everything else. All
// functions in this package are pure with respect to their inputs unless
// documented otherwise.
//
// Two merge depths exist on purpose:
//
//   - MergeUpdates performs a single-level shallow merge, matching the
//     partial-update semantics of the page component endpoints.
//   - Merge recurses all the way down, matching how agent template
//     customizations are layered over a base template.
//
// Callers should not substitute one for the other; the API observes the
// difference.
package nested
