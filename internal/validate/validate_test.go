package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/webbomj/rsschool-nodejs-task-graphql/internal/language"
	schema "github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()

	sch := schema.NewSchema("")
	sch.SetQueryType("Query")

	user := schema.NewType("User", schema.TypeKindObject, "")
	user.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID"))))
	user.AddField(schema.NewField("name", "", schema.NamedType("String")))
	user.AddField(schema.NewField("profile", "", schema.NamedType("Profile")))
	user.AddFieldsFunc(func() []*schema.Field {
		return []*schema.Field{
			schema.NewField("subscribedToUser", "", schema.ListType(schema.NamedType("User"))),
		}
	})

	profile := schema.NewType("Profile", schema.TypeKindObject, "")
	profile.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID"))))
	profile.AddField(schema.NewField("memberType", "", schema.NamedType("MemberType")))

	memberType := schema.NewType("MemberType", schema.TypeKindObject, "")
	memberType.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID"))))
	memberType.AddField(schema.NewField("discount", "", schema.NamedType("Float")))

	query := schema.NewType("Query", schema.TypeKindObject, "")
	query.AddField(schema.NewField("user", "", schema.NamedType("User")))
	query.AddField(schema.NewField("users", "", schema.ListType(schema.NamedType("User"))))

	sch.AddType(user).AddType(profile).AddType(memberType).AddType(query)
	require.NoError(t, sch.Validate())
	return sch
}

func mustParse(t *testing.T, q string) *language.QueryDocument {
	t.Helper()
	doc, err := language.ParseQuery(q)
	require.NoError(t, err)
	return doc
}

func TestDocument_DepthWithinBound(t *testing.T) {
	sch := testSchema(t)

	// Exactly five levels: the bound is inclusive.
	doc := mustParse(t, `{
                user {
                        subscribedToUser {
                                subscribedToUser {
                                        subscribedToUser { id }
                                }
                        }
                }
        }`)
	require.Empty(t, Document(sch, doc, DefaultMaxDepth))
}

func TestDocument_DepthExceeded(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{
                user {
                        subscribedToUser {
                                subscribedToUser {
                                        subscribedToUser {
                                                subscribedToUser { id }
                                        }
                                }
                        }
                }
        }`)
	errs := Document(sch, doc, DefaultMaxDepth)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "exceeds maximum operation depth of 5")
}

func TestDocument_FragmentsAddNoDepth(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{
                user { ...Deep }
        }
        fragment Deep on User {
                profile {
                        ... on Profile {
                                memberType { id }
                        }
                }
        }`)
	// user(1) -> profile(2) -> memberType(3) -> id(4)
	require.Empty(t, Document(sch, doc, 4))

	errs := Document(sch, doc, 3)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "exceeds maximum operation depth of 3")
}

func TestDocument_AliasesCountLikeFields(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{
                first: user {
                        subs: subscribedToUser {
                                more: subscribedToUser {
                                        evenMore: subscribedToUser {
                                                last: subscribedToUser { id }
                                        }
                                }
                        }
                }
        }`)
	errs := Document(sch, doc, DefaultMaxDepth)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "exceeds maximum operation depth of 5")
}

func TestDocument_UnknownField(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{ user { nope } }`)
	errs := Document(sch, doc, DefaultMaxDepth)
	require.Len(t, errs, 1)
	require.Equal(t, "Cannot query field 'nope' on type 'User'", errs[0].Message)
}

func TestDocument_UnknownFragment(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{ user { ...Missing } }`)
	errs := Document(sch, doc, DefaultMaxDepth)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "unknown fragment 'Missing'")
}

func TestDocument_IntrospectionAndMetaFieldsAllowed(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{
                __typename
                __schema { types { name } }
                __type(name: "User") { name }
                user { __typename id }
        }`)
	require.Empty(t, Document(sch, doc, DefaultMaxDepth))
}

func TestDocument_IntrospectionExemptFromDepthBound(t *testing.T) {
	sch := testSchema(t)

	// The stock IntrospectionQuery nests well past any sane domain bound.
	doc := mustParse(t, `query IntrospectionQuery {
                __schema {
                        types {
                                fields {
                                        type {
                                                ofType {
                                                        ofType {
                                                                ofType { name }
                                                        }
                                                }
                                        }
                                }
                        }
                }
        }`)
	require.Empty(t, Document(sch, doc, DefaultMaxDepth))

	// Domain selections alongside introspection are still bounded.
	doc = mustParse(t, `{
                __schema { types { name } }
                user {
                        subscribedToUser {
                                subscribedToUser {
                                        subscribedToUser {
                                                subscribedToUser { id }
                                        }
                                }
                        }
                }
        }`)
	errs := Document(sch, doc, DefaultMaxDepth)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "exceeds maximum operation depth of 5")
}

func TestDocument_CyclicFragmentsTerminate(t *testing.T) {
	sch := testSchema(t)

	doc := mustParse(t, `{
                user { ...A }
        }
        fragment A on User { id ...B }
        fragment B on User { name ...A }`)
	require.Empty(t, Document(sch, doc, DefaultMaxDepth))
}
