package social

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	executor "github.com/webbomj/rsschool-nodejs-task-graphql/internal/executor"
	store "github.com/webbomj/rsschool-nodejs-task-graphql/internal/store"
)

// Extension codes attached to resolver errors.
const (
	CodeNotFound = "NOT_FOUND"
	CodeConflict = "CONFLICT"
	CodeBadInput = "BAD_USER_INPUT"
)

// Runtime resolves the social schema against a Store. It implements
// executor.Runtime: attribute projections run synchronously, everything
// that touches the store runs in per-depth batches.
type Runtime struct {
	store store.Store

	async map[string]asyncResolver
}

type asyncResolver func(ctx context.Context, source any, args map[string]any) (any, error)

var _ executor.Runtime = (*Runtime)(nil)

// NewRuntime builds a Runtime over st.
func NewRuntime(st store.Store) *Runtime {
	r := &Runtime{store: st}
	r.async = map[string]asyncResolver{
		"Query.memberTypes": r.queryMemberTypes,
		"Query.memberType":  r.queryMemberType,
		"Query.users":       r.queryUsers,
		"Query.user":        r.queryUser,
		"Query.posts":       r.queryPosts,
		"Query.post":        r.queryPost,
		"Query.profiles":    r.queryProfiles,
		"Query.profile":     r.queryProfile,

		"Profile.memberType":    r.profileMemberType,
		"User.profile":          r.userProfile,
		"User.posts":            r.userPosts,
		"User.userSubscribedTo": r.userSubscribedTo,
		"User.subscribedToUser": r.userSubscribers,

		"Mutation.createUser":      r.createUser,
		"Mutation.changeUser":      r.changeUser,
		"Mutation.deleteUser":      r.deleteUser,
		"Mutation.createPost":      r.createPost,
		"Mutation.changePost":      r.changePost,
		"Mutation.deletePost":      r.deletePost,
		"Mutation.createProfile":   r.createProfile,
		"Mutation.changeProfile":   r.changeProfile,
		"Mutation.deleteProfile":   r.deleteProfile,
		"Mutation.subscribeTo":     r.subscribeTo,
		"Mutation.unsubscribeFrom": r.unsubscribeFrom,
	}
	return r
}

// ResolveSync projects an attribute of an already-loaded entity.
func (r *Runtime) ResolveSync(ctx context.Context, objectType string, field string, source any, args map[string]any) (any, error) {
	switch src := source.(type) {
	case *store.User:
		switch field {
		case "id":
			return src.ID, nil
		case "name":
			return src.Name, nil
		case "balance":
			return src.Balance, nil
		}
	case *store.Post:
		switch field {
		case "id":
			return src.ID, nil
		case "title":
			return src.Title, nil
		case "content":
			return src.Content, nil
		case "authorId":
			return src.AuthorID, nil
		}
	case *store.Profile:
		switch field {
		case "id":
			return src.ID, nil
		case "isMale":
			return src.IsMale, nil
		case "yearOfBirth":
			return src.YearOfBirth, nil
		case "userId":
			return src.UserID, nil
		case "memberTypeId":
			return string(src.MemberTypeID), nil
		}
	case *store.MemberType:
		switch field {
		case "id":
			return string(src.ID), nil
		case "discount":
			return src.Discount, nil
		case "postsLimitPerMonth":
			return src.PostsLimitPerMonth, nil
		}
	}
	return nil, fmt.Errorf("no projection for %s.%s", objectType, field)
}

// BatchResolveAsync resolves one depth of store-backed fields. Read tasks
// are independent and fan out concurrently; mutation roots keep the
// serial, top-to-bottom evaluation order the language requires. Results
// keep task order either way.
func (r *Runtime) BatchResolveAsync(ctx context.Context, tasks []executor.AsyncResolveTask) []executor.AsyncResolveResult {
	results := make([]executor.AsyncResolveResult, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		key := task.ObjectType + "." + task.Field
		resolve, ok := r.async[key]
		if !ok {
			results[i] = executor.AsyncResolveResult{Error: fmt.Errorf("no resolver for %s", key)}
			continue
		}
		if task.ObjectType == "Mutation" {
			v, err := resolve(ctx, task.Source, task.Args)
			results[i] = executor.AsyncResolveResult{Value: v, Error: err}
			continue
		}
		wg.Add(1)
		go func(i int, task executor.AsyncResolveTask) {
			defer wg.Done()
			v, err := resolve(ctx, task.Source, task.Args)
			results[i] = executor.AsyncResolveResult{Value: v, Error: err}
		}(i, task)
	}
	wg.Wait()

	return results
}

// SerializeLeafValue validates and renders scalar and enum leaves.
func (r *Runtime) SerializeLeafValue(ctx context.Context, scalarOrEnumTypeName string, value any) (any, error) {
	switch scalarOrEnumTypeName {
	case "UUID":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("UUID must be a string, got %T", value)
		}
		if _, err := uuid.Parse(s); err != nil {
			return nil, fmt.Errorf("invalid UUID %q", s)
		}
		return s, nil
	case "MemberTypeId":
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case store.MemberTypeID:
			s = string(v)
		default:
			return nil, fmt.Errorf("MemberTypeId must be a string, got %T", value)
		}
		if s != string(store.MemberTypeBasic) && s != string(store.MemberTypeBusiness) {
			return nil, fmt.Errorf("value %q is not a MemberTypeId", s)
		}
		return s, nil
	default:
		return value, nil
	}
}

// --- Query roots ---

func (r *Runtime) queryMemberTypes(ctx context.Context, _ any, _ map[string]any) (any, error) {
	return r.store.ListMemberTypes(ctx)
}

// By-id roots answer "is there such a record" — a miss is null, not an error.
func (r *Runtime) queryMemberType(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := stringArg(args, "id")
	if err != nil {
		return nil, err
	}
	mt, err := r.store.GetMemberType(ctx, store.MemberTypeID(id))
	return nullOnNotFound(mt, err)
}

func (r *Runtime) queryUsers(ctx context.Context, _ any, _ map[string]any) (any, error) {
	return r.store.ListUsers(ctx)
}

func (r *Runtime) queryUser(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	u, err := r.store.GetUser(ctx, id)
	return nullOnNotFound(u, err)
}

func (r *Runtime) queryPosts(ctx context.Context, _ any, _ map[string]any) (any, error) {
	return r.store.ListPosts(ctx)
}

func (r *Runtime) queryPost(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	p, err := r.store.GetPost(ctx, id)
	return nullOnNotFound(p, err)
}

func (r *Runtime) queryProfiles(ctx context.Context, _ any, _ map[string]any) (any, error) {
	return r.store.ListProfiles(ctx)
}

func (r *Runtime) queryProfile(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	p, err := r.store.GetProfile(ctx, id)
	return nullOnNotFound(p, err)
}

// --- Relations ---

func (r *Runtime) profileMemberType(ctx context.Context, source any, _ map[string]any) (any, error) {
	p, err := profileSource(source)
	if err != nil {
		return nil, err
	}
	mt, err := r.store.GetMemberType(ctx, p.MemberTypeID)
	if err != nil {
		// A profile always references a tier; a dangling reference is a
		// data-integrity failure surfaced as a field error.
		return nil, codedStoreError(err)
	}
	return mt, nil
}

func (r *Runtime) userProfile(ctx context.Context, source any, _ map[string]any) (any, error) {
	u, err := userSource(source)
	if err != nil {
		return nil, err
	}
	p, err := r.store.ProfileByUser(ctx, u.ID)
	return nullOnNotFound(p, err)
}

func (r *Runtime) userPosts(ctx context.Context, source any, _ map[string]any) (any, error) {
	u, err := userSource(source)
	if err != nil {
		return nil, err
	}
	return r.store.PostsByAuthor(ctx, u.ID)
}

func (r *Runtime) userSubscribedTo(ctx context.Context, source any, _ map[string]any) (any, error) {
	u, err := userSource(source)
	if err != nil {
		return nil, err
	}
	return r.store.SubscribedAuthors(ctx, u.ID)
}

func (r *Runtime) userSubscribers(ctx context.Context, source any, _ map[string]any) (any, error) {
	u, err := userSource(source)
	if err != nil {
		return nil, err
	}
	return r.store.Subscribers(ctx, u.ID)
}

// --- Mutations ---

func (r *Runtime) createUser(ctx context.Context, _ any, args map[string]any) (any, error) {
	dto, err := dtoArg(args)
	if err != nil {
		return nil, err
	}
	name, err := stringField(dto, "name")
	if err != nil {
		return nil, err
	}
	balance, err := floatField(dto, "balance")
	if err != nil {
		return nil, err
	}
	u, err := r.store.CreateUser(ctx, store.CreateUser{Name: name, Balance: balance})
	if err != nil {
		return nil, codedStoreError(err)
	}
	return u, nil
}

func (r *Runtime) changeUser(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	dto, err := dtoArg(args)
	if err != nil {
		return nil, err
	}
	change := store.ChangeUser{}
	if v, ok := dto["name"]; ok && v != nil {
		s, err := asString(v, "name")
		if err != nil {
			return nil, err
		}
		change.Name = &s
	}
	if v, ok := dto["balance"]; ok && v != nil {
		f, err := asFloat(v, "balance")
		if err != nil {
			return nil, err
		}
		change.Balance = &f
	}
	u, err := r.store.UpdateUser(ctx, id, change)
	if err != nil {
		return nil, codedStoreError(err)
	}
	return u, nil
}

func (r *Runtime) deleteUser(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	if err := r.store.DeleteUser(ctx, id); err != nil {
		return nil, codedStoreError(err)
	}
	return true, nil
}

func (r *Runtime) createPost(ctx context.Context, _ any, args map[string]any) (any, error) {
	dto, err := dtoArg(args)
	if err != nil {
		return nil, err
	}
	title, err := stringField(dto, "title")
	if err != nil {
		return nil, err
	}
	content, err := stringField(dto, "content")
	if err != nil {
		return nil, err
	}
	authorID, err := uuidField(dto, "authorId")
	if err != nil {
		return nil, err
	}
	p, err := r.store.CreatePost(ctx, store.CreatePost{Title: title, Content: content, AuthorID: authorID})
	if err != nil {
		return nil, codedStoreError(err)
	}
	return p, nil
}

func (r *Runtime) changePost(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	dto, err := dtoArg(args)
	if err != nil {
		return nil, err
	}
	change := store.ChangePost{}
	if v, ok := dto["title"]; ok && v != nil {
		s, err := asString(v, "title")
		if err != nil {
			return nil, err
		}
		change.Title = &s
	}
	if v, ok := dto["content"]; ok && v != nil {
		s, err := asString(v, "content")
		if err != nil {
			return nil, err
		}
		change.Content = &s
	}
	p, err := r.store.UpdatePost(ctx, id, change)
	if err != nil {
		return nil, codedStoreError(err)
	}
	return p, nil
}

func (r *Runtime) deletePost(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	if err := r.store.DeletePost(ctx, id); err != nil {
		return nil, codedStoreError(err)
	}
	return true, nil
}

func (r *Runtime) createProfile(ctx context.Context, _ any, args map[string]any) (any, error) {
	dto, err := dtoArg(args)
	if err != nil {
		return nil, err
	}
	isMale, err := boolField(dto, "isMale")
	if err != nil {
		return nil, err
	}
	year, err := intField(dto, "yearOfBirth")
	if err != nil {
		return nil, err
	}
	userID, err := uuidField(dto, "userId")
	if err != nil {
		return nil, err
	}
	tier, err := memberTypeIDField(dto, "memberTypeId")
	if err != nil {
		return nil, err
	}
	p, err := r.store.CreateProfile(ctx, store.CreateProfile{
		IsMale:       isMale,
		YearOfBirth:  year,
		UserID:       userID,
		MemberTypeID: tier,
	})
	if err != nil {
		return nil, codedStoreError(err)
	}
	return p, nil
}

func (r *Runtime) changeProfile(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	dto, err := dtoArg(args)
	if err != nil {
		return nil, err
	}
	change := store.ChangeProfile{}
	if v, ok := dto["isMale"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return nil, badInput("isMale must be a boolean")
		}
		change.IsMale = &b
	}
	if v, ok := dto["yearOfBirth"]; ok && v != nil {
		n, err := asInt(v, "yearOfBirth")
		if err != nil {
			return nil, err
		}
		change.YearOfBirth = &n
	}
	if v, ok := dto["memberTypeId"]; ok && v != nil {
		tier, err := asMemberTypeID(v)
		if err != nil {
			return nil, err
		}
		change.MemberTypeID = &tier
	}
	p, err := r.store.UpdateProfile(ctx, id, change)
	if err != nil {
		return nil, codedStoreError(err)
	}
	return p, nil
}

func (r *Runtime) deleteProfile(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	if err := r.store.DeleteProfile(ctx, id); err != nil {
		return nil, codedStoreError(err)
	}
	return true, nil
}

func (r *Runtime) subscribeTo(ctx context.Context, _ any, args map[string]any) (any, error) {
	userID, err := uuidArg(args, "userId")
	if err != nil {
		return nil, err
	}
	authorID, err := uuidArg(args, "authorId")
	if err != nil {
		return nil, err
	}
	if err := r.store.CreateSubscription(ctx, userID, authorID); err != nil {
		return nil, codedStoreError(err)
	}
	u, err := r.store.GetUser(ctx, userID)
	if err != nil {
		return nil, codedStoreError(err)
	}
	return u, nil
}

func (r *Runtime) unsubscribeFrom(ctx context.Context, _ any, args map[string]any) (any, error) {
	userID, err := uuidArg(args, "userId")
	if err != nil {
		return nil, err
	}
	authorID, err := uuidArg(args, "authorId")
	if err != nil {
		return nil, err
	}
	if err := r.store.DeleteSubscription(ctx, userID, authorID); err != nil {
		return nil, codedStoreError(err)
	}
	return true, nil
}

// --- helpers ---

func userSource(source any) (*store.User, error) {
	u, ok := source.(*store.User)
	if !ok {
		return nil, fmt.Errorf("expected *store.User source, got %T", source)
	}
	return u, nil
}

func profileSource(source any) (*store.Profile, error) {
	p, ok := source.(*store.Profile)
	if !ok {
		return nil, fmt.Errorf("expected *store.Profile source, got %T", source)
	}
	return p, nil
}

// nullOnNotFound converts a store miss into a GraphQL null. The typed-nil
// check matters: the caller returns `any`, so a nil *store.User must not
// leak as a non-nil interface.
func nullOnNotFound[T any](v *T, err error) (any, error) {
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, codedStoreError(err)
	}
	return v, nil
}

// codedStoreError tags store failures with a machine-readable code.
func codedStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return executor.WithCode(err, CodeNotFound)
	case errors.Is(err, store.ErrConflict):
		return executor.WithCode(err, CodeConflict)
	default:
		return err
	}
}

func badInput(msg string) error {
	return executor.WithCode(errors.New(msg), CodeBadInput)
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", badInput(fmt.Sprintf("argument '%s' is required", name))
	}
	return asString(v, name)
}

func uuidArg(args map[string]any, name string) (string, error) {
	s, err := stringArg(args, name)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", badInput(fmt.Sprintf("argument '%s' is not a valid UUID", name))
	}
	return s, nil
}

func dtoArg(args map[string]any) (map[string]any, error) {
	v, ok := args["dto"]
	if !ok {
		return nil, badInput("argument 'dto' is required")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, badInput("argument 'dto' must be an input object")
	}
	return m, nil
}

func stringField(dto map[string]any, name string) (string, error) {
	v, ok := dto[name]
	if !ok {
		return "", badInput(fmt.Sprintf("field '%s' is required", name))
	}
	return asString(v, name)
}

func uuidField(dto map[string]any, name string) (string, error) {
	s, err := stringField(dto, name)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", badInput(fmt.Sprintf("field '%s' is not a valid UUID", name))
	}
	return s, nil
}

func floatField(dto map[string]any, name string) (float64, error) {
	v, ok := dto[name]
	if !ok {
		return 0, badInput(fmt.Sprintf("field '%s' is required", name))
	}
	return asFloat(v, name)
}

func intField(dto map[string]any, name string) (int, error) {
	v, ok := dto[name]
	if !ok {
		return 0, badInput(fmt.Sprintf("field '%s' is required", name))
	}
	return asInt(v, name)
}

func boolField(dto map[string]any, name string) (bool, error) {
	v, ok := dto[name]
	if !ok {
		return false, badInput(fmt.Sprintf("field '%s' is required", name))
	}
	b, ok := v.(bool)
	if !ok {
		return false, badInput(fmt.Sprintf("field '%s' must be a boolean", name))
	}
	return b, nil
}

func memberTypeIDField(dto map[string]any, name string) (store.MemberTypeID, error) {
	v, ok := dto[name]
	if !ok {
		return "", badInput(fmt.Sprintf("field '%s' is required", name))
	}
	return asMemberTypeID(v)
}

func asString(v any, name string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", badInput(fmt.Sprintf("'%s' must be a string, got %T", name, v))
	}
	return s, nil
}

func asFloat(v any, name string) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, badInput(fmt.Sprintf("'%s' must be a number, got %T", name, v))
	}
}

func asInt(v any, name string) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, badInput(fmt.Sprintf("'%s' must be an integer, got %T", name, v))
	}
}

func asMemberTypeID(v any) (store.MemberTypeID, error) {
	s, ok := v.(string)
	if !ok {
		return "", badInput(fmt.Sprintf("memberTypeId must be a string, got %T", v))
	}
	id := store.MemberTypeID(s)
	if id != store.MemberTypeBasic && id != store.MemberTypeBusiness {
		return "", badInput(fmt.Sprintf("memberTypeId %q is not a known tier", s))
	}
	return id, nil
}
