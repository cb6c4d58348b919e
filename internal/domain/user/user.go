package user

import (
	"fmt"

	"github.com/lllypuk/userdeck/internal/domain/errs"
)

// Status is the account status of a user. The set is closed.
type Status string

// Account statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	default:
		return false
	}
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", errs.ErrInvalidInput, raw)
	}
	return s, nil
}

// User represents a managed user record.
//
// Role is an open string tag rather than a closed enum; the seed data uses
// admin, user, moderator and editor, but new roles may appear without a code
// change. LastLogin and DateJoined are display strings maintained by the
// admin UI, not timestamps.
type User struct {
	id         int
	name       string
	email      string
	role       string
	status     Status
	lastLogin  *string
	dateJoined string
}

// NewUser creates a user without an identifier. The store assigns the
// identifier on insert via WithID.
func NewUser(name, email, role string, status Status, lastLogin *string, dateJoined string) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrInvalidInput)
	}
	if role == "" {
		return nil, fmt.Errorf("%w: role is required", errs.ErrInvalidInput)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidInput, status)
	}
	if dateJoined == "" {
		return nil, fmt.Errorf("%w: dateJoined is required", errs.ErrInvalidInput)
	}

	return &User{
		name:       name,
		email:      email,
		role:       role,
		status:     status,
		lastLogin:  lastLogin,
		dateJoined: dateJoined,
	}, nil
}

// Reconstruct restores a user from storage.
func Reconstruct(id int, name, email, role string, status Status, lastLogin *string, dateJoined string) *User {
	return &User{
		id:         id,
		name:       name,
		email:      email,
		role:       role,
		status:     status,
		lastLogin:  lastLogin,
		dateJoined: dateJoined,
	}
}

// WithID returns a copy of the user carrying the store-assigned identifier.
// The identifier is immutable once assigned.
func (u *User) WithID(id int) *User {
	c := *u
	c.id = id
	return &c
}

// ID returns the store-assigned identifier (zero before insert).
func (u *User) ID() int { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the email address.
func (u *User) Email() string { return u.email }

// Role returns the role tag.
func (u *User) Role() string { return u.role }

// Status returns the account status.
func (u *User) Status() Status { return u.status }

// LastLogin returns the last-login display string, nil when never logged in.
func (u *User) LastLogin() *string { return u.lastLogin }

// DateJoined returns the join-date display string.
func (u *User) DateJoined() string { return u.dateJoined }

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name       *string
	Email      *string
	Role       *string
	Status     *Status
	LastLogin  *string
	DateJoined *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil &&
		p.Status == nil && p.LastLogin == nil && p.DateJoined == nil
}

// Apply merges the patch onto a copy of the user and returns it.
// Set fields must still satisfy the record invariants.
func (u *User) Apply(p Patch) (*User, error) {
	c := *u

	if p.Name != nil {
		if *p.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", errs.ErrInvalidInput)
		}
		c.name = *p.Name
	}
	if p.Email != nil {
		if *p.Email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", errs.ErrInvalidInput)
		}
		c.email = *p.Email
	}
	if p.Role != nil {
		if *p.Role == "" {
			return nil, fmt.Errorf("%w: role cannot be empty", errs.ErrInvalidInput)
		}
		c.role = *p.Role
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidInput, *p.Status)
		}
		c.status = *p.Status
	}
	if p.LastLogin != nil {
		c.lastLogin = p.LastLogin
	}
	if p.DateJoined != nil {
		if *p.DateJoined == "" {
			return nil, fmt.Errorf("%w: dateJoined cannot be empty", errs.ErrInvalidInput)
		}
		c.dateJoined = *p.DateJoined
	}

	return &c, nil
}
