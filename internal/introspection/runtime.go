// Package introspection layers the __schema and __type entry points over an
// existing runtime. The wrapped runtime answers introspection fields from
// the registry itself; everything else is delegated to the base runtime.
package introspection

import (
	"context"
	"fmt"
	"sort"

	executor "github.com/webbomj/rsschool-nodejs-task-graphql/internal/executor"
	schema "github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
)

// Wrapper bundles the introspection-aware runtime with the extended schema
// it resolves against. Both must be handed to the executor together.
type Wrapper struct {
	Runtime executor.Runtime
	Schema  *schema.Schema
}

// Wrap extends sch with the introspection types and returns a runtime that
// resolves them. The original schema is left untouched and remains the one
// reported by introspection queries.
func Wrap(base executor.Runtime, sch *schema.Schema) *Wrapper {
	extended := extendSchema(sch)
	return &Wrapper{
		Runtime: &runtime{base: base, original: sch},
		Schema:  extended,
	}
}

type runtime struct {
	base     executor.Runtime
	original *schema.Schema
}

func (r *runtime) ResolveSync(ctx context.Context, objectType, field string, source any, args map[string]any) (any, error) {
	switch src := source.(type) {
	case *schema.Schema:
		if v, ok := resolveSchemaField(src, field); ok {
			return v, nil
		}
	case *schema.Type:
		if v, ok := resolveTypeField(src, field); ok {
			return v, nil
		}
	case *schema.TypeRef:
		return resolveTypeRefField(r.original, src, field), nil
	case *schema.Field:
		if v, ok := resolveFieldField(src, field); ok {
			return v, nil
		}
	case *schema.InputValue:
		if v, ok := resolveInputValueField(src, field); ok {
			return v, nil
		}
	case *schema.EnumValue:
		if v, ok := resolveEnumValueField(src, field); ok {
			return v, nil
		}
	case *schema.Directive:
		if v, ok := resolveDirectiveField(src, field); ok {
			return v, nil
		}
	}

	if objectType == r.original.QueryType {
		switch field {
		case "__schema":
			return r.original, nil
		case "__type":
			name, _ := args["name"].(string)
			if name == "" {
				return nil, nil
			}
			return r.original.Types[name], nil
		}
	}

	return r.base.ResolveSync(ctx, objectType, field, source, args)
}

func (r *runtime) BatchResolveAsync(ctx context.Context, tasks []executor.AsyncResolveTask) []executor.AsyncResolveResult {
	return r.base.BatchResolveAsync(ctx, tasks)
}

func (r *runtime) SerializeLeafValue(ctx context.Context, typ string, value any) (any, error) {
	return r.base.SerializeLeafValue(ctx, typ, value)
}

func resolveSchemaField(sch *schema.Schema, field string) (any, bool) {
	switch field {
	case "description":
		return sch.Description, true
	case "types":
		out := make([]*schema.Type, 0, len(sch.Types))
		for _, t := range sch.Types {
			out = append(out, t)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	case "queryType":
		return sch.GetQueryType(), true
	case "mutationType":
		return sch.GetMutationType(), true
	case "subscriptionType":
		return (*schema.Type)(nil), true
	case "directives":
		out := make([]*schema.Directive, 0, len(sch.Directives))
		for _, d := range sch.Directives {
			out = append(out, d)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	}
	return nil, false
}

func resolveTypeField(t *schema.Type, field string) (any, bool) {
	switch field {
	case "kind":
		return string(t.Kind), true
	case "name":
		return t.Name, true
	case "description":
		return t.Description, true
	case "fields":
		if t.Kind != schema.TypeKindObject {
			return nil, true
		}
		out := append([]*schema.Field(nil), t.FieldList()...)
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	case "enumValues":
		if t.Kind != schema.TypeKindEnum {
			return nil, true
		}
		out := append([]*schema.EnumValue(nil), t.EnumValues...)
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	case "inputFields":
		if t.Kind != schema.TypeKindInputObject {
			return nil, true
		}
		out := append([]*schema.InputValue(nil), t.InputFields...)
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	case "interfaces":
		if t.Kind == schema.TypeKindObject {
			return []*schema.Type{}, true
		}
		return nil, true
	case "possibleTypes", "ofType":
		return nil, true
	}
	return nil, false
}

// resolveTypeRefField renders a type reference as a __Type node: LIST and
// NON_NULL wrappers expose ofType, named references answer from the
// registered definition.
func resolveTypeRefField(sch *schema.Schema, tr *schema.TypeRef, field string) any {
	switch tr.Kind {
	case schema.TypeRefKindNonNull, schema.TypeRefKindList:
		switch field {
		case "kind":
			return string(tr.Kind)
		case "ofType":
			return tr.OfType
		}
		return nil
	}
	def := sch.Types[tr.Named]
	if def == nil {
		return nil
	}
	v, _ := resolveTypeField(def, field)
	return v
}

func resolveFieldField(f *schema.Field, field string) (any, bool) {
	switch field {
	case "name":
		return f.Name, true
	case "description":
		return f.Description, true
	case "args":
		if f.Arguments == nil {
			return []*schema.InputValue{}, true
		}
		return f.Arguments, true
	case "type":
		return f.Type, true
	case "isDeprecated":
		return false, true
	case "deprecationReason":
		return nil, true
	}
	return nil, false
}

func resolveInputValueField(v *schema.InputValue, field string) (any, bool) {
	switch field {
	case "name":
		return v.Name, true
	case "description":
		return v.Description, true
	case "type":
		return v.Type, true
	case "defaultValue":
		if v.DefaultValue == nil {
			return nil, true
		}
		return fmt.Sprintf("%v", v.DefaultValue), true
	case "isDeprecated":
		return false, true
	case "deprecationReason":
		return nil, true
	}
	return nil, false
}

func resolveEnumValueField(ev *schema.EnumValue, field string) (any, bool) {
	switch field {
	case "name":
		return ev.Name, true
	case "description":
		return ev.Description, true
	case "isDeprecated":
		return false, true
	case "deprecationReason":
		return nil, true
	}
	return nil, false
}

func resolveDirectiveField(d *schema.Directive, field string) (any, bool) {
	switch field {
	case "name":
		return d.Name, true
	case "description":
		return d.Description, true
	case "isRepeatable":
		return false, true
	case "locations":
		locs := append([]string(nil), d.Locations...)
		sort.Strings(locs)
		return locs, true
	case "args":
		if d.Arguments == nil {
			return []*schema.InputValue{}, true
		}
		return d.Arguments, true
	}
	return nil, false
}
