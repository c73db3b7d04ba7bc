package store

import (
	"context"
	"time"

	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/eventbus"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/events"
)

// WithEvents wraps next so that every operation publishes an
// events.StoreCall on the global event bus.
func WithEvents(next Store) Store {
	return &eventStore{next: next}
}

type eventStore struct {
	next Store
}

func (s *eventStore) emit(ctx context.Context, collection, op string, start time.Time, err error) {
	eventbus.Publish(ctx, events.StoreCall{
		Collection: collection,
		Op:         op,
		Err:        err,
		Start:      start,
		Duration:   time.Since(start),
	})
}

func (s *eventStore) GetUser(ctx context.Context, id string) (*User, error) {
	start := time.Now()
	u, err := s.next.GetUser(ctx, id)
	s.emit(ctx, "users", "get", start, err)
	return u, err
}

func (s *eventStore) ListUsers(ctx context.Context) ([]*User, error) {
	start := time.Now()
	us, err := s.next.ListUsers(ctx)
	s.emit(ctx, "users", "list", start, err)
	return us, err
}

func (s *eventStore) CreateUser(ctx context.Context, dto CreateUser) (*User, error) {
	start := time.Now()
	u, err := s.next.CreateUser(ctx, dto)
	s.emit(ctx, "users", "create", start, err)
	return u, err
}

func (s *eventStore) UpdateUser(ctx context.Context, id string, dto ChangeUser) (*User, error) {
	start := time.Now()
	u, err := s.next.UpdateUser(ctx, id, dto)
	s.emit(ctx, "users", "update", start, err)
	return u, err
}

func (s *eventStore) DeleteUser(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.DeleteUser(ctx, id)
	s.emit(ctx, "users", "delete", start, err)
	return err
}

func (s *eventStore) GetPost(ctx context.Context, id string) (*Post, error) {
	start := time.Now()
	p, err := s.next.GetPost(ctx, id)
	s.emit(ctx, "posts", "get", start, err)
	return p, err
}

func (s *eventStore) ListPosts(ctx context.Context) ([]*Post, error) {
	start := time.Now()
	ps, err := s.next.ListPosts(ctx)
	s.emit(ctx, "posts", "list", start, err)
	return ps, err
}

func (s *eventStore) PostsByAuthor(ctx context.Context, authorID string) ([]*Post, error) {
	start := time.Now()
	ps, err := s.next.PostsByAuthor(ctx, authorID)
	s.emit(ctx, "posts", "scan", start, err)
	return ps, err
}

func (s *eventStore) CreatePost(ctx context.Context, dto CreatePost) (*Post, error) {
	start := time.Now()
	p, err := s.next.CreatePost(ctx, dto)
	s.emit(ctx, "posts", "create", start, err)
	return p, err
}

func (s *eventStore) UpdatePost(ctx context.Context, id string, dto ChangePost) (*Post, error) {
	start := time.Now()
	p, err := s.next.UpdatePost(ctx, id, dto)
	s.emit(ctx, "posts", "update", start, err)
	return p, err
}

func (s *eventStore) DeletePost(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.DeletePost(ctx, id)
	s.emit(ctx, "posts", "delete", start, err)
	return err
}

func (s *eventStore) GetProfile(ctx context.Context, id string) (*Profile, error) {
	start := time.Now()
	p, err := s.next.GetProfile(ctx, id)
	s.emit(ctx, "profiles", "get", start, err)
	return p, err
}

func (s *eventStore) ListProfiles(ctx context.Context) ([]*Profile, error) {
	start := time.Now()
	ps, err := s.next.ListProfiles(ctx)
	s.emit(ctx, "profiles", "list", start, err)
	return ps, err
}

func (s *eventStore) ProfileByUser(ctx context.Context, userID string) (*Profile, error) {
	start := time.Now()
	p, err := s.next.ProfileByUser(ctx, userID)
	s.emit(ctx, "profiles", "scan", start, err)
	return p, err
}

func (s *eventStore) CreateProfile(ctx context.Context, dto CreateProfile) (*Profile, error) {
	start := time.Now()
	p, err := s.next.CreateProfile(ctx, dto)
	s.emit(ctx, "profiles", "create", start, err)
	return p, err
}

func (s *eventStore) UpdateProfile(ctx context.Context, id string, dto ChangeProfile) (*Profile, error) {
	start := time.Now()
	p, err := s.next.UpdateProfile(ctx, id, dto)
	s.emit(ctx, "profiles", "update", start, err)
	return p, err
}

func (s *eventStore) DeleteProfile(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.DeleteProfile(ctx, id)
	s.emit(ctx, "profiles", "delete", start, err)
	return err
}

func (s *eventStore) GetMemberType(ctx context.Context, id MemberTypeID) (*MemberType, error) {
	start := time.Now()
	mt, err := s.next.GetMemberType(ctx, id)
	s.emit(ctx, "memberTypes", "get", start, err)
	return mt, err
}

func (s *eventStore) ListMemberTypes(ctx context.Context) ([]*MemberType, error) {
	start := time.Now()
	mts, err := s.next.ListMemberTypes(ctx)
	s.emit(ctx, "memberTypes", "list", start, err)
	return mts, err
}

func (s *eventStore) CreateSubscription(ctx context.Context, subscriberID, authorID string) error {
	start := time.Now()
	err := s.next.CreateSubscription(ctx, subscriberID, authorID)
	s.emit(ctx, "subscriptions", "create", start, err)
	return err
}

func (s *eventStore) DeleteSubscription(ctx context.Context, subscriberID, authorID string) error {
	start := time.Now()
	err := s.next.DeleteSubscription(ctx, subscriberID, authorID)
	s.emit(ctx, "subscriptions", "delete", start, err)
	return err
}

func (s *eventStore) Subscribers(ctx context.Context, authorID string) ([]*User, error) {
	start := time.Now()
	us, err := s.next.Subscribers(ctx, authorID)
	s.emit(ctx, "subscriptions", "scan", start, err)
	return us, err
}

func (s *eventStore) SubscribedAuthors(ctx context.Context, subscriberID string) ([]*User, error) {
	start := time.Now()
	us, err := s.next.SubscribedAuthors(ctx, subscriberID)
	s.emit(ctx, "subscriptions", "scan", start, err)
	return us, err
}
