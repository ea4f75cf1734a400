package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is unset.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// Role is the resolved role of an account. Roles arrive from the identity
// provider as untyped strings and are resolved with ParseRole.
type Role string

const (
	// RoleNone is the role of a context without a session.
	RoleNone Role = "none"
	// RoleUser is a property owner listing their own properties.
	RoleUser Role = "user"
	// RoleAgent is a real estate professional.
	RoleAgent Role = "agent"
	// RoleAdmin has access to the back-office.
	RoleAdmin Role = "admin"
	// RoleUnknown is the fallback for any role string that could not be resolved.
	RoleUnknown Role = "unknown"
)

// ParseRole resolves a raw role string. Empty input resolves to RoleNone and
// anything unrecognized to RoleUnknown.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RoleNone:
		return RoleNone
	case RoleUser:
		return RoleUser
	case RoleAgent:
		return RoleAgent
	case RoleAdmin:
		return RoleAdmin
	case RoleUnknown:
		return RoleUnknown
	default:
		return RoleUnknown
	}
}

// SelfRegistrable reports whether an account may sign up with this role.
func (r Role) SelfRegistrable() bool {
	return r == RoleUser || r == RoleAgent
}

// UserStatus is the moderation state of an account.
type UserStatus string

const (
	// UserStatusActive accounts can sign in.
	UserStatusActive UserStatus = "active"
	// UserStatusBlocked accounts are rejected at sign-in and lose their sessions.
	UserStatusBlocked UserStatus = "blocked"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Email is the sign-in identifier; unique across users.
	Email string `json:"email"`
	// Name is the display name.
	Name string `json:"name"`
	// Role is the role stored for the account.
	Role Role `json:"role"`
	// Status is the moderation state.
	Status UserStatus `json:"status"`
	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the account was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsBlocked reports whether the account has been blocked by an admin.
func (u User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}
