package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store keeping every collection in maps guarded by
// a single RWMutex. It enforces the data-model invariants (profile-per-user
// uniqueness, member-type and author references, unique subscription pairs)
// and cascades dependent records when a user is deleted.
type Memory struct {
	mu            sync.RWMutex
	users         map[string]User
	posts         map[string]Post
	profiles      map[string]Profile
	profileByUser map[string]string // userID -> profile ID
	memberTypes   map[MemberTypeID]MemberType
	subs          map[subKey]Subscription
}

type subKey struct {
	subscriberID string
	authorID     string
}

// NewMemory creates an empty store seeded with the two membership tiers.
// Member types are reference data and cannot be written through the Store
// interface.
func NewMemory() *Memory {
	return &Memory{
		users:         make(map[string]User),
		posts:         make(map[string]Post),
		profiles:      make(map[string]Profile),
		profileByUser: make(map[string]string),
		memberTypes: map[MemberTypeID]MemberType{
			MemberTypeBasic:    {ID: MemberTypeBasic, Discount: 2.5, PostsLimitPerMonth: 20},
			MemberTypeBusiness: {ID: MemberTypeBusiness, Discount: 7.5, PostsLimitPerMonth: 100},
		},
		subs: make(map[subKey]Subscription),
	}
}

// ----- users -----

func (m *Memory) GetUser(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &u, nil
}

func (m *Memory) ListUsers(ctx context.Context) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (m *Memory) CreateUser(ctx context.Context, dto CreateUser) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := User{ID: uuid.NewString(), Name: dto.Name, Balance: dto.Balance}
	m.users[u.ID] = u
	return &u, nil
}

func (m *Memory) UpdateUser(ctx context.Context, id string, dto ChangeUser) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Balance != nil {
		u.Balance = *dto.Balance
	}
	m.users[id] = u
	return &u, nil
}

// DeleteUser removes the user and cascades to dependent posts, the
// profile, and subscriptions in both directions.
func (m *Memory) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	delete(m.users, id)
	for pid, p := range m.posts {
		if p.AuthorID == id {
			delete(m.posts, pid)
		}
	}
	if profID, ok := m.profileByUser[id]; ok {
		delete(m.profiles, profID)
		delete(m.profileByUser, id)
	}
	for k := range m.subs {
		if k.subscriberID == id || k.authorID == id {
			delete(m.subs, k)
		}
	}
	return nil
}

// ----- posts -----

func (m *Memory) GetPost(ctx context.Context, id string) (*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (m *Memory) ListPosts(ctx context.Context) ([]*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Post, 0, len(m.posts))
	for _, p := range m.posts {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (m *Memory) PostsByAuthor(ctx context.Context, authorID string) ([]*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*Post{}
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

func (m *Memory) CreatePost(ctx context.Context, dto CreatePost) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[dto.AuthorID]; !ok {
		return nil, fmt.Errorf("post author %s does not exist: %w", dto.AuthorID, ErrConflict)
	}
	p := Post{ID: uuid.NewString(), Title: dto.Title, Content: dto.Content, AuthorID: dto.AuthorID}
	m.posts[p.ID] = p
	return &p, nil
}

func (m *Memory) UpdatePost(ctx context.Context, id string, dto ChangePost) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Content != nil {
		p.Content = *dto.Content
	}
	m.posts[id] = p
	return &p, nil
}

func (m *Memory) DeletePost(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	delete(m.posts, id)
	return nil
}

// ----- profiles -----

func (m *Memory) GetProfile(ctx context.Context, id string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (m *Memory) ListProfiles(ctx context.Context) ([]*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (m *Memory) ProfileByUser(ctx context.Context, userID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.profileByUser[userID]
	if !ok {
		return nil, fmt.Errorf("profile of user %s: %w", userID, ErrNotFound)
	}
	p := m.profiles[id]
	return &p, nil
}

func (m *Memory) CreateProfile(ctx context.Context, dto CreateProfile) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[dto.UserID]; !ok {
		return nil, fmt.Errorf("profile user %s does not exist: %w", dto.UserID, ErrConflict)
	}
	if _, ok := m.profileByUser[dto.UserID]; ok {
		return nil, fmt.Errorf("user %s already has a profile: %w", dto.UserID, ErrConflict)
	}
	if _, ok := m.memberTypes[dto.MemberTypeID]; !ok {
		return nil, fmt.Errorf("member type %s does not exist: %w", dto.MemberTypeID, ErrConflict)
	}
	p := Profile{
		ID:           uuid.NewString(),
		IsMale:       dto.IsMale,
		YearOfBirth:  dto.YearOfBirth,
		UserID:       dto.UserID,
		MemberTypeID: dto.MemberTypeID,
	}
	m.profiles[p.ID] = p
	m.profileByUser[p.UserID] = p.ID
	return &p, nil
}

func (m *Memory) UpdateProfile(ctx context.Context, id string, dto ChangeProfile) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	if dto.MemberTypeID != nil {
		if _, ok := m.memberTypes[*dto.MemberTypeID]; !ok {
			return nil, fmt.Errorf("member type %s does not exist: %w", *dto.MemberTypeID, ErrConflict)
		}
		p.MemberTypeID = *dto.MemberTypeID
	}
	if dto.IsMale != nil {
		p.IsMale = *dto.IsMale
	}
	if dto.YearOfBirth != nil {
		p.YearOfBirth = *dto.YearOfBirth
	}
	m.profiles[id] = p
	return &p, nil
}

func (m *Memory) DeleteProfile(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	delete(m.profiles, id)
	delete(m.profileByUser, p.UserID)
	return nil
}

// ----- member types -----

func (m *Memory) GetMemberType(ctx context.Context, id MemberTypeID) (*MemberType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mt, ok := m.memberTypes[id]
	if !ok {
		return nil, fmt.Errorf("member type %s: %w", id, ErrNotFound)
	}
	return &mt, nil
}

func (m *Memory) ListMemberTypes(ctx context.Context) ([]*MemberType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*MemberType, 0, len(m.memberTypes))
	for _, mt := range m.memberTypes {
		mt := mt
		out = append(out, &mt)
	}
	return out, nil
}

// ----- subscriptions -----

func (m *Memory) CreateSubscription(ctx context.Context, subscriberID, authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[subscriberID]; !ok {
		return fmt.Errorf("subscriber %s does not exist: %w", subscriberID, ErrConflict)
	}
	if _, ok := m.users[authorID]; !ok {
		return fmt.Errorf("author %s does not exist: %w", authorID, ErrConflict)
	}
	k := subKey{subscriberID: subscriberID, authorID: authorID}
	if _, ok := m.subs[k]; ok {
		return fmt.Errorf("subscription %s -> %s already exists: %w", subscriberID, authorID, ErrConflict)
	}
	m.subs[k] = Subscription{SubscriberID: subscriberID, AuthorID: authorID}
	return nil
}

func (m *Memory) DeleteSubscription(ctx context.Context, subscriberID, authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := subKey{subscriberID: subscriberID, authorID: authorID}
	if _, ok := m.subs[k]; !ok {
		return fmt.Errorf("subscription %s -> %s: %w", subscriberID, authorID, ErrNotFound)
	}
	delete(m.subs, k)
	return nil
}

func (m *Memory) Subscribers(ctx context.Context, authorID string) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*User{}
	for k := range m.subs {
		if k.authorID != authorID {
			continue
		}
		if u, ok := m.users[k.subscriberID]; ok {
			u := u
			out = append(out, &u)
		}
	}
	return out, nil
}

func (m *Memory) SubscribedAuthors(ctx context.Context, subscriberID string) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*User{}
	for k := range m.subs {
		if k.subscriberID != subscriberID {
			continue
		}
		if u, ok := m.users[k.authorID]; ok {
			u := u
			out = append(out, &u)
		}
	}
	return out, nil
}

var _ Store = (*Memory)(nil)
