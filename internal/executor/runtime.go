package executor

import (
	"context"
)

// Runtime is the host integration surface for field resolution and
// leaf-value serialization used by the Executor.
//
// Contract:
//   - The Executor performs a breadth-first execution. At each depth it
//     drains all synchronous fields first via ResolveSync, then calls
//     BatchResolveAsync once with all async tasks collected at that depth.
//     The next depth does not begin until those results are completed, so
//     a parent value is always available before its sub-selections run.
//   - ResolveSync is never invoked for fields marked async, and
//     BatchResolveAsync only runs when at least one async field exists at
//     the current depth.
//   - Errors returned from either method become located GraphQL errors at
//     the failing field's path; sibling results are unaffected.
//   - Implementations must be safe for concurrent use and must not mutate
//     source or args values. The context passed in is the request context,
//     threaded unchanged to every invocation.
type Runtime interface {
	// ResolveSync resolves a synchronous field immediately. Called for
	// pure projections of an already-loaded parent value; these never
	// suspend. Return (nil, nil) to produce a GraphQL null.
	ResolveSync(ctx context.Context, objectType string, field string, source any, args map[string]any) (any, error)

	// BatchResolveAsync resolves one execution depth of async field
	// tasks. Tasks are independent: implementations may resolve them
	// concurrently, but must return exactly one result per task in task
	// order (results[i] corresponds to tasks[i]), with per-element
	// errors rather than a whole-batch failure.
	BatchResolveAsync(ctx context.Context, tasks []AsyncResolveTask) []AsyncResolveResult

	// SerializeLeafValue serializes a scalar or enum value to a
	// JSON-safe Go value. For enums, return the symbolic name as a
	// string; reject values outside the declared set.
	SerializeLeafValue(ctx context.Context, scalarOrEnumTypeName string, value any) (any, error)
}

type AsyncResolveTask struct {
	// ObjectType is the parent GraphQL object type name for the field.
	ObjectType string
	// Field is the GraphQL field name to resolve.
	Field string
	// Source is the parent object value (nil for root fields).
	Source any
	// Args are the field arguments, coerced to Go values per the schema.
	Args map[string]any
}

type AsyncResolveResult struct {
	// Value is the resolved raw value prior to completion, or nil on error.
	Value any
	// Error contains a failure specific to this element; other elements
	// in the same batch are unaffected.
	Error error
}
