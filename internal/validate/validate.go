// Package validate checks parsed query documents against the schema before
// execution: field existence and a configurable operation depth bound.
package validate

import (
	"fmt"

	language "github.com/webbomj/rsschool-nodejs-task-graphql/internal/language"
	schema "github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
)

// DefaultMaxDepth bounds selection nesting when no explicit limit is set.
const DefaultMaxDepth = 5

// Document validates every operation in doc against sch. It returns all
// violations found; an empty slice means the document may execute.
//
// Depth counts field nesting only: each field level adds one, fragment
// spreads and inline fragments are transparent, and aliases are counted
// like the fields they name. An operation whose depth exceeds maxDepth is
// rejected without touching any resolver.
func Document(sch *schema.Schema, doc *language.QueryDocument, maxDepth int) []*language.Error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	v := &validator{schema: sch, document: doc}

	for _, op := range doc.Operations {
		var rootType *schema.Type
		switch op.Operation {
		case language.Query:
			rootType = sch.GetQueryType()
		case language.Mutation:
			rootType = sch.GetMutationType()
		default:
			v.addError("unsupported operation type: %s", op.Operation)
			continue
		}
		if rootType == nil {
			v.addError("root type not found for %s operation", op.Operation)
			continue
		}

		v.checkFields(rootType, op.SelectionSet, true, make(map[string]bool))

		depth := v.selectionDepth(op.SelectionSet, true, make(map[string]bool))
		if depth > maxDepth {
			name := op.Name
			if name == "" {
				name = "anonymous operation"
			}
			v.addError("%s exceeds maximum operation depth of %d", name, maxDepth)
		}
	}

	return v.errs
}

type validator struct {
	schema   *schema.Schema
	document *language.QueryDocument
	errs     []*language.Error
}

func (v *validator) addError(format string, args ...any) {
	v.errs = append(v.errs, &language.Error{Message: fmt.Sprintf(format, args...)})
}

// checkFields walks a selection set verifying each field exists on its
// parent type. Meta fields are always allowed; the introspection entry
// points __schema and __type resolve outside the registry, so their
// subtrees are skipped. visited guards cyclic fragment spreads.
func (v *validator) checkFields(parent *schema.Type, selectionSet language.SelectionSet, isRoot bool, visited map[string]bool) {
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *language.Field:
			if sel.Name == "__typename" {
				continue
			}
			if isRoot && (sel.Name == "__schema" || sel.Name == "__type") {
				continue
			}
			fieldDef := parent.Field(sel.Name)
			if fieldDef == nil {
				v.addError("Cannot query field '%s' on type '%s'", sel.Name, parent.Name)
				continue
			}
			if len(sel.SelectionSet) == 0 {
				continue
			}
			child := v.schema.Types[schema.GetNamedType(fieldDef.Type)]
			if child == nil || child.Kind != schema.TypeKindObject {
				continue
			}
			v.checkFields(child, sel.SelectionSet, false, visited)

		case *language.InlineFragment:
			target := parent
			if sel.TypeCondition != "" {
				target = v.conditionType(sel.TypeCondition)
				if target == nil {
					continue
				}
			}
			v.checkFields(target, sel.SelectionSet, isRoot, visited)

		case *language.FragmentSpread:
			if visited[sel.Name] {
				continue
			}
			frag := v.document.Fragments.ForName(sel.Name)
			if frag == nil {
				v.addError("unknown fragment '%s'", sel.Name)
				continue
			}
			target := parent
			if frag.TypeCondition != "" {
				target = v.conditionType(frag.TypeCondition)
				if target == nil {
					continue
				}
			}
			visited[sel.Name] = true
			v.checkFields(target, frag.SelectionSet, isRoot, visited)
			delete(visited, sel.Name)
		}
	}
}

func (v *validator) conditionType(name string) *schema.Type {
	t := v.schema.Types[name]
	if t == nil {
		v.addError("unknown type '%s' in fragment condition", name)
		return nil
	}
	return t
}

// selectionDepth computes the deepest field nesting in a selection set.
// Fragment boundaries do not add depth; visited guards cyclic spreads.
// The __schema and __type subtrees at the root are exempt, matching
// checkFields: introspection documents nest far deeper than domain
// queries and never touch a resolver.
func (v *validator) selectionDepth(selectionSet language.SelectionSet, isRoot bool, visited map[string]bool) int {
	max := 0
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *language.Field:
			if isRoot && (sel.Name == "__schema" || sel.Name == "__type") {
				continue
			}
			d := 1 + v.selectionDepth(sel.SelectionSet, false, visited)
			if d > max {
				max = d
			}
		case *language.InlineFragment:
			d := v.selectionDepth(sel.SelectionSet, isRoot, visited)
			if d > max {
				max = d
			}
		case *language.FragmentSpread:
			if visited[sel.Name] {
				continue
			}
			frag := v.document.Fragments.ForName(sel.Name)
			if frag == nil {
				continue
			}
			visited[sel.Name] = true
			d := v.selectionDepth(frag.SelectionSet, isRoot, visited)
			delete(visited, sel.Name)
			if d > max {
				max = d
			}
		}
	}
	return max
}
