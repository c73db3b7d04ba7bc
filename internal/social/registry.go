// Package social defines the GraphQL schema of the social graph and the
// runtime that resolves it against a store. Entity attribute fields are
// synchronous projections of already-loaded values; relations, root fields
// and mutations are asynchronous and resolved depth-wise in batches.
package social

import (
	schema "github.com/webbomj/rsschool-nodejs-task-graphql/internal/schema"
)

// BuildSchema assembles the social graph type registry. The returned
// schema is validated; construction mistakes are reported as an error
// rather than a panic so callers can surface them at startup.
func BuildSchema() (*schema.Schema, error) {
	s := schema.NewSchema("Social graph API over users, profiles, posts and subscriptions.")
	s.SetQueryType("Query")
	s.SetMutationType("Mutation")

	s.AddType(schema.NewType("UUID", schema.TypeKindScalar, "RFC 4122 identifier rendered as a string."))

	memberTypeID := schema.NewType("MemberTypeId", schema.TypeKindEnum, "Membership tier identifier.")
	memberTypeID.AddEnumValue(schema.NewEnumValue("basic", ""))
	memberTypeID.AddEnumValue(schema.NewEnumValue("business", ""))
	s.AddType(memberTypeID)

	memberType := schema.NewType("MemberType", schema.TypeKindObject, "Immutable membership tier reference data.")
	memberType.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("MemberTypeId"))))
	memberType.AddField(schema.NewField("discount", "", schema.NonNullType(schema.NamedType("Float"))))
	memberType.AddField(schema.NewField("postsLimitPerMonth", "", schema.NonNullType(schema.NamedType("Int"))))
	s.AddType(memberType)

	post := schema.NewType("Post", schema.TypeKindObject, "")
	post.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("UUID"))))
	post.AddField(schema.NewField("title", "", schema.NonNullType(schema.NamedType("String"))))
	post.AddField(schema.NewField("content", "", schema.NonNullType(schema.NamedType("String"))))
	post.AddField(schema.NewField("authorId", "", schema.NonNullType(schema.NamedType("UUID"))))
	s.AddType(post)

	profile := schema.NewType("Profile", schema.TypeKindObject, "")
	profile.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("UUID"))))
	profile.AddField(schema.NewField("isMale", "", schema.NonNullType(schema.NamedType("Boolean"))))
	profile.AddField(schema.NewField("yearOfBirth", "", schema.NonNullType(schema.NamedType("Int"))))
	profile.AddField(schema.NewField("userId", "", schema.NonNullType(schema.NamedType("UUID"))))
	profile.AddField(schema.NewField("memberTypeId", "", schema.NonNullType(schema.NamedType("MemberTypeId"))))
	profile.AddField(schema.NewField("memberType", "A dangling tier reference is a data-integrity failure, not a null.", schema.NonNullType(schema.NamedType("MemberType"))).SetAsync(true))
	s.AddType(profile)

	user := schema.NewType("User", schema.TypeKindObject, "")
	user.AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("UUID"))))
	user.AddField(schema.NewField("name", "", schema.NonNullType(schema.NamedType("String"))))
	user.AddField(schema.NewField("balance", "", schema.NonNullType(schema.NamedType("Float"))))
	// Relation fields refer back to User, so they are registered lazily.
	user.AddFieldsFunc(func() []*schema.Field {
		return []*schema.Field{
			schema.NewField("profile", "Null when the user has not created a profile.", schema.NamedType("Profile")).SetAsync(true),
			schema.NewField("posts", "", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("Post"))))).SetAsync(true),
			schema.NewField("userSubscribedTo", "Authors this user follows.", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("User"))))).SetAsync(true),
			schema.NewField("subscribedToUser", "Users following this user.", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("User"))))).SetAsync(true),
		}
	})
	s.AddType(user)

	query := schema.NewType("Query", schema.TypeKindObject, "")
	query.AddField(schema.NewField("memberTypes", "", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("MemberType"))))).SetAsync(true))
	query.AddField(schema.NewField("memberType", "", schema.NamedType("MemberType")).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("MemberTypeId")))).
		SetAsync(true))
	query.AddField(schema.NewField("users", "", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("User"))))).SetAsync(true))
	query.AddField(schema.NewField("user", "", schema.NamedType("User")).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	query.AddField(schema.NewField("posts", "", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("Post"))))).SetAsync(true))
	query.AddField(schema.NewField("post", "", schema.NamedType("Post")).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	query.AddField(schema.NewField("profiles", "", schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType("Profile"))))).SetAsync(true))
	query.AddField(schema.NewField("profile", "", schema.NamedType("Profile")).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	s.AddType(query)

	createUserInput := schema.NewType("CreateUserInput", schema.TypeKindInputObject, "")
	createUserInput.AddInputField(schema.NewInputValue("name", "", schema.NonNullType(schema.NamedType("String"))))
	createUserInput.AddInputField(schema.NewInputValue("balance", "", schema.NonNullType(schema.NamedType("Float"))))
	s.AddType(createUserInput)

	changeUserInput := schema.NewType("ChangeUserInput", schema.TypeKindInputObject, "")
	changeUserInput.AddInputField(schema.NewInputValue("name", "", schema.NamedType("String")))
	changeUserInput.AddInputField(schema.NewInputValue("balance", "", schema.NamedType("Float")))
	s.AddType(changeUserInput)

	createPostInput := schema.NewType("CreatePostInput", schema.TypeKindInputObject, "")
	createPostInput.AddInputField(schema.NewInputValue("title", "", schema.NonNullType(schema.NamedType("String"))))
	createPostInput.AddInputField(schema.NewInputValue("content", "", schema.NonNullType(schema.NamedType("String"))))
	createPostInput.AddInputField(schema.NewInputValue("authorId", "", schema.NonNullType(schema.NamedType("UUID"))))
	s.AddType(createPostInput)

	changePostInput := schema.NewType("ChangePostInput", schema.TypeKindInputObject, "")
	changePostInput.AddInputField(schema.NewInputValue("title", "", schema.NamedType("String")))
	changePostInput.AddInputField(schema.NewInputValue("content", "", schema.NamedType("String")))
	s.AddType(changePostInput)

	createProfileInput := schema.NewType("CreateProfileInput", schema.TypeKindInputObject, "")
	createProfileInput.AddInputField(schema.NewInputValue("isMale", "", schema.NonNullType(schema.NamedType("Boolean"))))
	createProfileInput.AddInputField(schema.NewInputValue("yearOfBirth", "", schema.NonNullType(schema.NamedType("Int"))))
	createProfileInput.AddInputField(schema.NewInputValue("userId", "", schema.NonNullType(schema.NamedType("UUID"))))
	createProfileInput.AddInputField(schema.NewInputValue("memberTypeId", "", schema.NonNullType(schema.NamedType("MemberTypeId"))))
	s.AddType(createProfileInput)

	changeProfileInput := schema.NewType("ChangeProfileInput", schema.TypeKindInputObject, "")
	changeProfileInput.AddInputField(schema.NewInputValue("isMale", "", schema.NamedType("Boolean")))
	changeProfileInput.AddInputField(schema.NewInputValue("yearOfBirth", "", schema.NamedType("Int")))
	changeProfileInput.AddInputField(schema.NewInputValue("memberTypeId", "", schema.NamedType("MemberTypeId")))
	s.AddType(changeProfileInput)

	mutation := schema.NewType("Mutation", schema.TypeKindObject, "")
	mutation.AddField(schema.NewField("createUser", "", schema.NonNullType(schema.NamedType("User"))).
		AddArgument(schema.NewInputValue("dto", "", schema.NonNullType(schema.NamedType("CreateUserInput")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("changeUser", "", schema.NonNullType(schema.NamedType("User"))).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		AddArgument(schema.NewInputValue("dto", "", schema.NonNullType(schema.NamedType("ChangeUserInput")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("deleteUser", "Cascades the user's posts, profile and subscriptions.", schema.NonNullType(schema.NamedType("Boolean"))).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("createPost", "", schema.NonNullType(schema.NamedType("Post"))).
		AddArgument(schema.NewInputValue("dto", "", schema.NonNullType(schema.NamedType("CreatePostInput")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("changePost", "", schema.NonNullType(schema.NamedType("Post"))).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		AddArgument(schema.NewInputValue("dto", "", schema.NonNullType(schema.NamedType("ChangePostInput")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("deletePost", "", schema.NonNullType(schema.NamedType("Boolean"))).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("createProfile", "", schema.NonNullType(schema.NamedType("Profile"))).
		AddArgument(schema.NewInputValue("dto", "", schema.NonNullType(schema.NamedType("CreateProfileInput")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("changeProfile", "", schema.NonNullType(schema.NamedType("Profile"))).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		AddArgument(schema.NewInputValue("dto", "", schema.NonNullType(schema.NamedType("ChangeProfileInput")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("deleteProfile", "", schema.NonNullType(schema.NamedType("Boolean"))).
		AddArgument(schema.NewInputValue("id", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("subscribeTo", "", schema.NonNullType(schema.NamedType("User"))).
		AddArgument(schema.NewInputValue("userId", "", schema.NonNullType(schema.NamedType("UUID")))).
		AddArgument(schema.NewInputValue("authorId", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	mutation.AddField(schema.NewField("unsubscribeFrom", "", schema.NonNullType(schema.NamedType("Boolean"))).
		AddArgument(schema.NewInputValue("userId", "", schema.NonNullType(schema.NamedType("UUID")))).
		AddArgument(schema.NewInputValue("authorId", "", schema.NonNullType(schema.NamedType("UUID")))).
		SetAsync(true))
	s.AddType(mutation)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
