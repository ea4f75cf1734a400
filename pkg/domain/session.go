package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a sign-in session.
type SessionID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id SessionID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is unset.
func (id SessionID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// Session is the authenticated-user context tracked between sign-in and
// sign-out. Authenticated, Role and Premium form the session header that is
// overwritten as a whole on identity changes; ListingCount is the number of
// listings created during the session.
type Session struct {
	ID     SessionID `json:"id"`
	UserID UserID    `json:"userId"`

	Authenticated bool `json:"authenticated"`
	Role          Role `json:"role"`
	Premium       bool `json:"premium"`

	ListingCount int `json:"listingCount"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewSession returns a fresh session for a user who just signed in.
func NewSession(userID UserID, role Role, now time.Time) Session {
	return Session{
		ID:            SessionID(uuid.New()),
		UserID:        userID,
		Authenticated: true,
		Role:          role,
		CreatedAt:     now,
	}
}
