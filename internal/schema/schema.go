package schema

import (
	"fmt"
	"sync"
)

// Schema is a registry of named types plus the root operation type names.
// Each named type is a process-wide singleton within one Schema instance;
// registering a second type under an existing name is a configuration error
// reported by Validate.
type Schema struct {
	QueryType    string
	MutationType string
	Types        map[string]*Type // All named types keyed by name
	Directives   map[string]*Directive
	Description  string

	conflicts []string
}

// NewSchema creates an empty schema with the built-in scalar types and the
// @include/@skip directives pre-registered.
func NewSchema(description string) *Schema {
	s := &Schema{
		Types:       make(map[string]*Type),
		Directives:  make(map[string]*Directive),
		Description: description,
	}
	s.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	s.AddDirective(includeDirective).
		AddDirective(skipDirective)
	return s
}

func (s *Schema) SetQueryType(name string) *Schema    { s.QueryType = name; return s }
func (s *Schema) SetMutationType(name string) *Schema { s.MutationType = name; return s }

// AddType registers t under its name. A duplicate name is recorded and
// surfaced by Validate; the first registration wins.
func (s *Schema) AddType(t *Type) *Schema {
	if _, exists := s.Types[t.Name]; exists {
		s.conflicts = append(s.conflicts, t.Name)
		return s
	}
	s.Types[t.Name] = t
	return s
}

func (s *Schema) AddDirective(d *Directive) *Schema {
	s.Directives[d.Name] = d
	return s
}

// GetQueryType returns the root query type (may be nil if absent)
func (s *Schema) GetQueryType() *Type { return s.Types[s.QueryType] }

// GetMutationType returns the root mutation type (may be nil if absent)
func (s *Schema) GetMutationType() *Type { return s.Types[s.MutationType] }

// Validate checks the registry for configuration errors: duplicate type
// names, missing or non-object root types, and field/argument/input type
// references that do not resolve to a registered type. Lazy field thunks
// are materialized as a side effect, so Validate must run after every type
// has been added.
func (s *Schema) Validate() error {
	for _, name := range s.conflicts {
		return fmt.Errorf("duplicate type name %q", name)
	}
	if s.QueryType == "" {
		return fmt.Errorf("schema has no query type")
	}
	if qt := s.GetQueryType(); qt == nil {
		return fmt.Errorf("query type %q is not registered", s.QueryType)
	} else if qt.Kind != TypeKindObject {
		return fmt.Errorf("query type %q is not an object type", s.QueryType)
	}
	if s.MutationType != "" {
		if mt := s.GetMutationType(); mt == nil {
			return fmt.Errorf("mutation type %q is not registered", s.MutationType)
		} else if mt.Kind != TypeKindObject {
			return fmt.Errorf("mutation type %q is not an object type", s.MutationType)
		}
	}
	for _, t := range s.Types {
		for _, f := range t.FieldList() {
			if err := s.checkRef(f.Type); err != nil {
				return fmt.Errorf("type %s, field %s: %w", t.Name, f.Name, err)
			}
			for _, arg := range f.Arguments {
				if err := s.checkRef(arg.Type); err != nil {
					return fmt.Errorf("type %s, field %s, argument %s: %w", t.Name, f.Name, arg.Name, err)
				}
			}
		}
		for _, in := range t.InputFields {
			if err := s.checkRef(in.Type); err != nil {
				return fmt.Errorf("input %s, field %s: %w", t.Name, in.Name, err)
			}
		}
	}
	return nil
}

func (s *Schema) checkRef(ref *TypeRef) error {
	if ref == nil {
		return fmt.Errorf("missing type reference")
	}
	name := ref.GetNamedType()
	if _, ok := s.Types[name]; !ok {
		return fmt.Errorf("unknown type %q", name)
	}
	return nil
}

// Type is a named GraphQL type (object, scalar, enum, input)
type Type struct {
	Name        string
	Kind        TypeKind
	Description string
	Fields      []*Field      // For OBJECT
	EnumValues  []*EnumValue  // For ENUM
	InputFields []*InputValue // For INPUT_OBJECT

	// FieldsFn lazily supplies additional field definitions. It exists to
	// break circular declaration dependencies: a type whose fields refer
	// back to itself (or to types declared later) registers a thunk that
	// is materialized on first FieldList call.
	FieldsFn func() []*Field

	once sync.Once
}

// NewType creates a named type of the given kind.
func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type {
	t.Fields = append(t.Fields, f)
	return t
}

// AddFieldsFunc registers a deferred field-list thunk, evaluated exactly
// once when the fields are first needed.
func (t *Type) AddFieldsFunc(fn func() []*Field) *Type {
	t.FieldsFn = fn
	return t
}

func (t *Type) AddEnumValue(v *EnumValue) *Type {
	t.EnumValues = append(t.EnumValues, v)
	return t
}

func (t *Type) AddInputField(v *InputValue) *Type {
	t.InputFields = append(t.InputFields, v)
	return t
}

// FieldList returns the type's fields, materializing the lazy thunk on
// first use.
func (t *Type) FieldList() []*Field {
	t.once.Do(func() {
		if t.FieldsFn != nil {
			t.Fields = append(t.Fields, t.FieldsFn()...)
		}
	})
	return t.Fields
}

// Field returns the field definition with the given name, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.FieldList() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// HasEnumValue reports whether name is a declared value of this enum type.
func (t *Type) HasEnumValue(name string) bool {
	for _, v := range t.EnumValues {
		if v.Name == name {
			return true
		}
	}
	return false
}

// TypeKind represents the kind of GraphQL type
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// Field represents a field on an object type
type Field struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   []*InputValue
	// Async marks resolver-backed fields that may suspend on an entity
	// store call. Plain projections of the parent value stay sync.
	Async bool
}

// NewField creates a field definition with the given result type.
func NewField(name, description string, t *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: t}
}

func (f *Field) SetAsync(async bool) *Field {
	f.Async = async
	return f
}

func (f *Field) AddArgument(v *InputValue) *Field {
	f.Arguments = append(f.Arguments, v)
	return f
}

// TypeRef represents a reference to a type (can be wrapped)
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // For List and NonNull
	Named  string   // For named types
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

func (t *TypeRef) IsList() bool {
	if t.Kind == TypeRefKindList {
		return true
	}
	if t.Kind == TypeRefKindNonNull && t.OfType != nil {
		return t.OfType.Kind == TypeRefKindList
	}
	return false
}

func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

func (t *TypeRef) GetNamedType() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

type EnumValue struct {
	Name        string
	Description string
}

func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue any
}

func NewInputValue(name, description string, t *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: t}
}

func (v *InputValue) SetDefault(val any) *InputValue {
	v.DefaultValue = val
	return v
}

type Directive struct {
	Name        string
	Description string
	Locations   []string
	Arguments   []*InputValue
}

func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }

// IsNonNull reports whether the type is wrapped with Non-Null.
func IsNonNull(t *TypeRef) bool { return t != nil && t.IsNonNull() }

// IsList reports whether the type is (or is wrapped by) a list type.
func IsList(t *TypeRef) bool { return t != nil && t.IsList() }

// Unwrap removes one layer of Non-Null or List wrapping and returns the inner type.
func Unwrap(t *TypeRef) *TypeRef { return t.Unwrap() }

// GetNamedType returns the innermost named type for the given reference.
func GetNamedType(t *TypeRef) string { return t.GetNamedType() }
