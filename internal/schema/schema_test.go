package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func validSchema() *Schema {
	sch := NewSchema("")
	sch.SetQueryType("Query")

	user := NewType("User", TypeKindObject, "")
	user.AddField(NewField("id", "", NonNullType(NamedType("ID"))))
	user.AddField(NewField("name", "", NamedType("String")))

	query := NewType("Query", TypeKindObject, "")
	query.AddField(NewField("user", "", NamedType("User")).
		AddArgument(NewInputValue("id", "", NonNullType(NamedType("ID")))))

	return sch.AddType(user).AddType(query)
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validSchema().Validate())
}

func TestValidateDuplicateTypeName(t *testing.T) {
	sch := validSchema()
	sch.AddType(NewType("User", TypeKindObject, ""))
	err := sch.Validate()
	require.ErrorContains(t, err, `duplicate type name "User"`)
}

func TestValidateMissingQueryType(t *testing.T) {
	sch := NewSchema("")
	require.ErrorContains(t, sch.Validate(), "schema has no query type")

	sch.SetQueryType("Query")
	require.ErrorContains(t, sch.Validate(), `query type "Query" is not registered`)

	sch.AddType(NewType("Query", TypeKindScalar, ""))
	require.ErrorContains(t, sch.Validate(), "not an object type")
}

func TestValidateDanglingReferences(t *testing.T) {
	sch := validSchema()
	sch.Types["Query"].AddField(NewField("ghost", "", NamedType("Ghost")))
	require.ErrorContains(t, sch.Validate(), `unknown type "Ghost"`)

	sch = validSchema()
	sch.Types["Query"].Field("user").AddArgument(NewInputValue("extra", "", NamedType("Ghost")))
	require.ErrorContains(t, sch.Validate(), `unknown type "Ghost"`)

	sch = validSchema()
	input := NewType("Filter", TypeKindInputObject, "")
	input.AddInputField(NewInputValue("by", "", NamedType("Ghost")))
	sch.AddType(input)
	require.ErrorContains(t, sch.Validate(), `unknown type "Ghost"`)
}

func TestFieldsFuncMaterializedOnce(t *testing.T) {
	calls := 0
	user := NewType("User", TypeKindObject, "")
	user.AddField(NewField("id", "", NonNullType(NamedType("ID"))))
	user.AddFieldsFunc(func() []*Field {
		calls++
		return []*Field{NewField("friends", "", ListType(NonNullType(NamedType("User"))))}
	})

	require.Len(t, user.FieldList(), 2)
	require.NotNil(t, user.Field("friends"))
	require.Len(t, user.FieldList(), 2)
	require.Equal(t, 1, calls)
}

func TestRender(t *testing.T) {
	sch := NewSchema("")
	sch.SetQueryType("Query")

	user := NewType("User", TypeKindObject, "")
	user.AddField(NewField("id", "", NonNullType(NamedType("ID"))))
	user.AddField(NewField("name", "", NamedType("String")))
	user.AddFieldsFunc(func() []*Field {
		return []*Field{NewField("friends", "", ListType(NonNullType(NamedType("User"))))}
	})

	query := NewType("Query", TypeKindObject, "")
	query.AddField(NewField("user", "", NamedType("User")).
		AddArgument(NewInputValue("id", "", NonNullType(NamedType("ID")))))

	sch.AddType(user).AddType(query)
	require.NoError(t, sch.Validate())

	want := `schema {
  query: Query
}

type Query {
  user(id: ID!): User
}

type User {
  id: ID!
  name: String
  friends: [User!]
}
`
	if diff := cmp.Diff(want, Render(sch)); diff != "" {
		t.Errorf("rendered SDL mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderInputAndEnum(t *testing.T) {
	sch := NewSchema("")
	sch.SetQueryType("Query")

	tier := NewType("Tier", TypeKindEnum, "")
	tier.AddEnumValue(NewEnumValue("basic", "")).AddEnumValue(NewEnumValue("business", ""))

	filter := NewType("Filter", TypeKindInputObject, "")
	filter.AddInputField(NewInputValue("tier", "", NamedType("Tier")))
	filter.AddInputField(NewInputValue("limit", "", NamedType("Int")).SetDefault(10))

	query := NewType("Query", TypeKindObject, "")
	query.AddField(NewField("count", "", NamedType("Int")).
		AddArgument(NewInputValue("filter", "", NamedType("Filter"))))

	sch.AddType(tier).AddType(filter).AddType(query)
	require.NoError(t, sch.Validate())

	want := `schema {
  query: Query
}

input Filter {
  tier: Tier
  limit: Int = 10
}

type Query {
  count(filter: Filter): Int
}

enum Tier {
  basic
  business
}
`
	if diff := cmp.Diff(want, Render(sch)); diff != "" {
		t.Errorf("rendered SDL mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeRefHelpers(t *testing.T) {
	ref := NonNullType(ListType(NonNullType(NamedType("User"))))
	require.True(t, IsNonNull(ref))
	require.True(t, IsList(ref))
	require.Equal(t, "User", GetNamedType(ref))
	require.Equal(t, TypeRefKindList, Unwrap(ref).Kind)

	named := NamedType("Post")
	require.False(t, IsNonNull(named))
	require.False(t, IsList(named))
	require.Same(t, named, Unwrap(named))
}
