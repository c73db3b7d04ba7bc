package store

// MemberTypeID is one of the fixed membership tiers.
type MemberTypeID string

const (
	MemberTypeBasic    MemberTypeID = "basic"
	MemberTypeBusiness MemberTypeID = "business"
)

// User is an account holder. Users own posts, at most one profile, and
// participate in subscriptions on both sides.
type User struct {
	ID      string
	Name    string
	Balance float64
}

// Profile holds per-user demographic data. UserID is unique across all
// profiles; MemberTypeID always references an existing member type.
type Profile struct {
	ID           string
	IsMale       bool
	YearOfBirth  int
	UserID       string
	MemberTypeID MemberTypeID
}

// MemberType is immutable reference data describing a membership tier.
type MemberType struct {
	ID                 MemberTypeID
	Discount           float64
	PostsLimitPerMonth int
}

// Post is authored content belonging to exactly one user.
type Post struct {
	ID       string
	Title    string
	Content  string
	AuthorID string
}

// Subscription records "subscriber follows author". Its identity is the
// (SubscriberID, AuthorID) pair; there are no independent attributes.
type Subscription struct {
	SubscriberID string
	AuthorID     string
}

// CreateUser is the insert payload for users.
type CreateUser struct {
	Name    string
	Balance float64
}

// ChangeUser is a partial update; nil fields are left untouched.
type ChangeUser struct {
	Name    *string
	Balance *float64
}

type CreatePost struct {
	Title    string
	Content  string
	AuthorID string
}

type ChangePost struct {
	Title   *string
	Content *string
}

type CreateProfile struct {
	IsMale       bool
	YearOfBirth  int
	UserID       string
	MemberTypeID MemberTypeID
}

type ChangeProfile struct {
	IsMale       *bool
	YearOfBirth  *int
	MemberTypeID *MemberTypeID
}
