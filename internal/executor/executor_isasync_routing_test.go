package executor

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	schema "github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
)

// Pattern: Calls comparison + Result comparison via go-cmp snapshot workflow
func TestRouting_IsAsync_SyncVsAsync_Calls(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {
				Name: "Query",
				Kind: schema.TypeKindObject,
				Fields: []*schema.Field{
					{Name: "a", Type: schema.NamedType("String"), Async: false},
					{Name: "b", Type: schema.NamedType("String"), Async: true},
				},
			},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}

	rt := NewMockRuntime(map[string]MockResolver{
		"Query.a": NewMockValueResolver("A"),
		"Query.b": NewMockValueResolver("B"),
	})

	exec := NewExecutor(rt, sch)
	doc := mustParseQuery(t, "{ a b }")

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil, nil)
	gotCalls := rt.GetCalls()

	wantRes := &ExecutionResult{
		Data: map[string]any{
			"a": "A",
			"b": "B",
		},
		Errors: []GraphQLError{},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}

	wantCalls := []Call{
		{Kind: "sync", ObjectType: "Query", Field: "a", Source: nil, Args: map[string]any{}, BatchID: 0},
		{Kind: "async", ObjectType: "Query", Field: "b", Source: nil, Args: map[string]any{}, BatchID: 1},
	}
	if diff := cmp.Diff(wantCalls, gotCalls); diff != "" {
		t.Fatalf("Runtime calls mismatch (-want +got):\n%s", diff)
	}
}

// Pattern: Snapshot-first (then paste expectations)
func TestRouting_DepthWiseBatch_Invariants_Calls(t *testing.T) {
	// d=1: same-depth async fields aggregated into one batch
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {
				Name: "Query",
				Kind: schema.TypeKindObject,
				Fields: []*schema.Field{
					{Name: "a", Type: schema.NamedType("String"), Async: true},
					{Name: "b", Type: schema.NamedType("String"), Async: true},
				},
			},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}

	rt := NewMockRuntime(map[string]MockResolver{
		"Query.a": NewMockValueResolver("A"),
		"Query.b": NewMockValueResolver("B"),
	})
	exec := NewExecutor(rt, sch)
	doc := mustParseQuery(t, "{ a b }")

	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil, nil)
	gotCalls := rt.GetCalls()

	wantRes := &ExecutionResult{
		Data:   map[string]any{"a": "A", "b": "B"},
		Errors: []GraphQLError{},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}

	wantCalls := []Call{
		{Kind: "async", ObjectType: "Query", Field: "a", Source: nil, Args: map[string]any{}, BatchID: 1},
		{Kind: "async", ObjectType: "Query", Field: "b", Source: nil, Args: map[string]any{}, BatchID: 1},
	}
	if diff := cmp.Diff(wantCalls, gotCalls); diff != "" {
		t.Fatalf("Runtime calls mismatch (-want +got):\n%s", diff)
	}

	// d=2: two async layers (root async -> nested async)
	sch2 := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query":  {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{{Name: "root", Type: schema.NamedType("Node"), Async: true}}},
			"Node":   {Name: "Node", Kind: schema.TypeKindObject, Fields: []*schema.Field{{Name: "x", Type: schema.NamedType("String"), Async: true}}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt2 := NewMockRuntime(map[string]MockResolver{
		"Query.root": func(ctx context.Context, src any, args map[string]any) (any, error) {
			return map[string]any{"id": "r"}, nil
		},
		"Node.x": NewMockValueResolver("X"),
	})
	exec2 := NewExecutor(rt2, sch2)
	doc2 := mustParseQuery(t, "{ root { x } }")

	gotRes2 := exec2.ExecuteRequest(context.Background(), doc2, "", nil, nil)
	gotCalls2 := rt2.GetCalls()

	wantRes2 := &ExecutionResult{
		Data:   map[string]any{"root": map[string]any{"x": "X"}},
		Errors: []GraphQLError{},
	}
	if diff := cmp.Diff(wantRes2, gotRes2); diff != "" {
		t.Fatalf("d2 result mismatch (-want +got):\n%s", diff)
	}
	wantCalls2 := []Call{
		{Kind: "async", ObjectType: "Query", Field: "root", Source: nil, Args: map[string]any{}, BatchID: 1},
		{Kind: "async", ObjectType: "Node", Field: "x", Source: map[string]any{"id": "r"}, Args: map[string]any{}, BatchID: 2},
	}
	if diff := cmp.Diff(wantCalls2, gotCalls2); diff != "" {
		t.Fatalf("d2 calls mismatch (-want +got):\n%s", diff)
	}

	// d=3: three async layers (root async -> child async -> grandchild async)
	sch3 := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{{Name: "root", Type: schema.NamedType("Node"), Async: true}}},
			"Node": {Name: "Node", Kind: schema.TypeKindObject, Fields: []*schema.Field{
				{Name: "child", Type: schema.NamedType("Node"), Async: true},
				{Name: "x", Type: schema.NamedType("String"), Async: true},
			}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt3 := NewMockRuntime(map[string]MockResolver{
		"Query.root": func(ctx context.Context, src any, args map[string]any) (any, error) {
			return map[string]any{"id": "r"}, nil
		},
		"Node.child": func(ctx context.Context, src any, args map[string]any) (any, error) {
			return map[string]any{"id": "c"}, nil
		},
		"Node.x": NewMockValueResolver("X"),
	})
	exec3 := NewExecutor(rt3, sch3)
	doc3 := mustParseQuery(t, "{ root { child { x } } }")

	gotRes3 := exec3.ExecuteRequest(context.Background(), doc3, "", nil, nil)
	gotCalls3 := rt3.GetCalls()

	wantRes3 := &ExecutionResult{
		Data: map[string]any{
			"root": map[string]any{
				"child": map[string]any{"x": "X"},
			},
		},
		Errors: []GraphQLError{},
	}
	if diff := cmp.Diff(wantRes3, gotRes3); diff != "" {
		t.Fatalf("d3 result mismatch (-want +got):\n%s", diff)
	}
	wantCalls3 := []Call{
		{Kind: "async", ObjectType: "Query", Field: "root", Source: nil, Args: map[string]any{}, BatchID: 1},
		{Kind: "async", ObjectType: "Node", Field: "child", Source: map[string]any{"id": "r"}, Args: map[string]any{}, BatchID: 2},
		{Kind: "async", ObjectType: "Node", Field: "x", Source: map[string]any{"id": "c"}, Args: map[string]any{}, BatchID: 3},
	}
	if diff := cmp.Diff(wantCalls3, gotCalls3); diff != "" {
		t.Fatalf("d3 calls mismatch (-want +got):\n%s", diff)
	}
}
