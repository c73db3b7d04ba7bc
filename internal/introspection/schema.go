package introspection

import (
	schema "github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
)

// extendSchema returns a copy of the schema with the introspection types
// registered and the __schema/__type fields appended to the query root.
// The original registry is not modified.
func extendSchema(original *schema.Schema) *schema.Schema {
	extended := &schema.Schema{
		QueryType:    original.QueryType,
		MutationType: original.MutationType,
		Types:        make(map[string]*schema.Type, len(original.Types)+8),
		Directives:   original.Directives,
		Description:  original.Description,
	}
	for name, typ := range original.Types {
		extended.Types[name] = typ
	}

	extended.Types["__Schema"] = schemaType()
	extended.Types["__Type"] = typeType()
	extended.Types["__Field"] = fieldType()
	extended.Types["__InputValue"] = inputValueType()
	extended.Types["__EnumValue"] = enumValueType()
	extended.Types["__Directive"] = directiveType()
	extended.Types["__TypeKind"] = typeKindEnum()
	extended.Types["__DirectiveLocation"] = directiveLocationEnum()

	if query := original.GetQueryType(); query != nil {
		queryCopy := schema.NewType(query.Name, query.Kind, query.Description)
		for _, f := range query.FieldList() {
			queryCopy.AddField(f)
		}
		queryCopy.AddField(schema.NewField("__schema",
			"Access the current type schema of this server.",
			schema.NonNullType(schema.NamedType("__Schema"))))
		queryCopy.AddField(schema.NewField("__type",
			"Request the type information of a single type.",
			schema.NamedType("__Type")).
			AddArgument(schema.NewInputValue("name", "The name of the type to look up.",
				schema.NonNullType(schema.NamedType("String")))))
		extended.Types[query.Name] = queryCopy
	}

	return extended
}

func schemaType() *schema.Type {
	t := schema.NewType("__Schema", schema.TypeKindObject,
		"A GraphQL Schema defines the capabilities of a GraphQL server.")
	t.AddField(schema.NewField("description", "", schema.NamedType("String")))
	t.AddField(schema.NewField("types", "A list of all types supported by this server.",
		schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("__Type"))))))
	t.AddField(schema.NewField("queryType", "The type that query operations will be rooted at.",
		schema.NonNullType(schema.NamedType("__Type"))))
	t.AddField(schema.NewField("mutationType", "If this server supports mutation, the type that mutation operations will be rooted at.",
		schema.NamedType("__Type")))
	t.AddField(schema.NewField("subscriptionType", "", schema.NamedType("__Type")))
	t.AddField(schema.NewField("directives", "A list of all directives supported by this server.",
		schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("__Directive"))))))
	return t
}

func typeType() *schema.Type {
	t := schema.NewType("__Type", schema.TypeKindObject,
		"The fundamental unit of any GraphQL Schema is the type.")
	t.AddField(schema.NewField("kind", "", schema.NonNullType(schema.NamedType("__TypeKind"))))
	t.AddField(schema.NewField("name", "", schema.NamedType("String")))
	t.AddField(schema.NewField("description", "", schema.NamedType("String")))
	t.AddField(schema.NewField("fields", "",
		schema.ListType(schema.NonNullType(schema.NamedType("__Field")))).
		AddArgument(schema.NewInputValue("includeDeprecated", "", schema.NamedType("Boolean")).SetDefault(false)))
	t.AddField(schema.NewField("interfaces", "", schema.ListType(schema.NonNullType(schema.NamedType("__Type")))))
	t.AddField(schema.NewField("possibleTypes", "", schema.ListType(schema.NonNullType(schema.NamedType("__Type")))))
	t.AddField(schema.NewField("enumValues", "",
		schema.ListType(schema.NonNullType(schema.NamedType("__EnumValue")))).
		AddArgument(schema.NewInputValue("includeDeprecated", "", schema.NamedType("Boolean")).SetDefault(false)))
	t.AddField(schema.NewField("inputFields", "",
		schema.ListType(schema.NonNullType(schema.NamedType("__InputValue")))).
		AddArgument(schema.NewInputValue("includeDeprecated", "", schema.NamedType("Boolean")).SetDefault(false)))
	t.AddField(schema.NewField("ofType", "", schema.NamedType("__Type")))
	return t
}

func fieldType() *schema.Type {
	t := schema.NewType("__Field", schema.TypeKindObject, "")
	t.AddField(schema.NewField("name", "", schema.NonNullType(schema.NamedType("String"))))
	t.AddField(schema.NewField("description", "", schema.NamedType("String")))
	t.AddField(schema.NewField("args", "",
		schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("__InputValue"))))).
		AddArgument(schema.NewInputValue("includeDeprecated", "", schema.NamedType("Boolean")).SetDefault(false)))
	t.AddField(schema.NewField("type", "", schema.NonNullType(schema.NamedType("__Type"))))
	t.AddField(schema.NewField("isDeprecated", "", schema.NonNullType(schema.NamedType("Boolean"))))
	t.AddField(schema.NewField("deprecationReason", "", schema.NamedType("String")))
	return t
}

func inputValueType() *schema.Type {
	t := schema.NewType("__InputValue", schema.TypeKindObject, "")
	t.AddField(schema.NewField("name", "", schema.NonNullType(schema.NamedType("String"))))
	t.AddField(schema.NewField("description", "", schema.NamedType("String")))
	t.AddField(schema.NewField("type", "", schema.NonNullType(schema.NamedType("__Type"))))
	t.AddField(schema.NewField("defaultValue", "", schema.NamedType("String")))
	t.AddField(schema.NewField("isDeprecated", "", schema.NonNullType(schema.NamedType("Boolean"))))
	t.AddField(schema.NewField("deprecationReason", "", schema.NamedType("String")))
	return t
}

func enumValueType() *schema.Type {
	t := schema.NewType("__EnumValue", schema.TypeKindObject, "")
	t.AddField(schema.NewField("name", "", schema.NonNullType(schema.NamedType("String"))))
	t.AddField(schema.NewField("description", "", schema.NamedType("String")))
	t.AddField(schema.NewField("isDeprecated", "", schema.NonNullType(schema.NamedType("Boolean"))))
	t.AddField(schema.NewField("deprecationReason", "", schema.NamedType("String")))
	return t
}

func directiveType() *schema.Type {
	t := schema.NewType("__Directive", schema.TypeKindObject, "")
	t.AddField(schema.NewField("name", "", schema.NonNullType(schema.NamedType("String"))))
	t.AddField(schema.NewField("description", "", schema.NamedType("String")))
	t.AddField(schema.NewField("isRepeatable", "", schema.NonNullType(schema.NamedType("Boolean"))))
	t.AddField(schema.NewField("locations", "",
		schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("__DirectiveLocation"))))))
	t.AddField(schema.NewField("args", "",
		schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("__InputValue"))))).
		AddArgument(schema.NewInputValue("includeDeprecated", "", schema.NamedType("Boolean")).SetDefault(false)))
	return t
}

func typeKindEnum() *schema.Type {
	t := schema.NewType("__TypeKind", schema.TypeKindEnum, "")
	for _, name := range []string{"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL"} {
		t.AddEnumValue(schema.NewEnumValue(name, ""))
	}
	return t
}

func directiveLocationEnum() *schema.Type {
	t := schema.NewType("__DirectiveLocation", schema.TypeKindEnum, "")
	for _, name := range []string{
		"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD",
		"FRAGMENT_DEFINITION", "FRAGMENT_SPREAD", "INLINE_FRAGMENT",
		"VARIABLE_DEFINITION", "SCHEMA", "SCALAR", "OBJECT",
		"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INTERFACE", "UNION",
		"ENUM", "ENUM_VALUE", "INPUT_OBJECT", "INPUT_FIELD_DEFINITION",
	} {
		t.AddEnumValue(schema.NewEnumValue(name, ""))
	}
	return t
}
