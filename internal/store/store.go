package store

import (
	"context"
	"errors"
)

// Failure kinds. Implementations wrap these so callers can classify
// failures with errors.Is without depending on a concrete store.
var (
	// ErrNotFound reports a point lookup, update, or delete that matched
	// no record.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a write rejected by a data constraint: a
	// duplicate unique key or a reference to a missing record.
	ErrConflict = errors.New("constraint violation")
)

// Store is the data-access capability consumed by the resolver graph. It
// provides point lookups, filtered scans, and writes over the five entity
// collections. All operations may suspend and are safe for concurrent
// independent calls; none of the read operations mutate state.
type Store interface {
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	CreateUser(ctx context.Context, dto CreateUser) (*User, error)
	UpdateUser(ctx context.Context, id string, dto ChangeUser) (*User, error)
	DeleteUser(ctx context.Context, id string) error

	GetPost(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context) ([]*Post, error)
	PostsByAuthor(ctx context.Context, authorID string) ([]*Post, error)
	CreatePost(ctx context.Context, dto CreatePost) (*Post, error)
	UpdatePost(ctx context.Context, id string, dto ChangePost) (*Post, error)
	DeletePost(ctx context.Context, id string) error

	GetProfile(ctx context.Context, id string) (*Profile, error)
	ListProfiles(ctx context.Context) ([]*Profile, error)
	ProfileByUser(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, dto CreateProfile) (*Profile, error)
	UpdateProfile(ctx context.Context, id string, dto ChangeProfile) (*Profile, error)
	DeleteProfile(ctx context.Context, id string) error

	GetMemberType(ctx context.Context, id MemberTypeID) (*MemberType, error)
	ListMemberTypes(ctx context.Context) ([]*MemberType, error)

	CreateSubscription(ctx context.Context, subscriberID, authorID string) error
	DeleteSubscription(ctx context.Context, subscriberID, authorID string) error
	// Subscribers returns the users who subscribe to the given author.
	Subscribers(ctx context.Context, authorID string) ([]*User, error)
	// SubscribedAuthors returns the users the given subscriber follows.
	SubscribedAuthors(ctx context.Context, subscriberID string) ([]*User, error)
}
