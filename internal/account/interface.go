package account

import (
	"context"
	"time"

	"estate/internal/entitlement"
	"estate/pkg/domain"
	"estate/pkg/identity"
)

// SignedIn is the result of opening a session.
type SignedIn struct {
	User        domain.User
	Session     domain.Session
	Token       string
	ExpiresAt   time.Time
	Entitlement entitlement.Snapshot
}

// TokenSigner issues bearer tokens for sessions.
type TokenSigner interface {
	Sign(session domain.Session) (string, time.Time, error)
}

//go:generate mockgen -package mockaccount -destination=mock/mockaccount.go estate/internal/account Accounts
type Accounts interface {
	// SignUp registers an account and signs it in.
	SignUp(ctx context.Context, registration identity.Registration) (*SignedIn, error)
	// SignIn checks credentials and opens a fresh session.
	SignIn(ctx context.Context, email, password string) (*SignedIn, error)
	// OpenSession starts a session for a user that has already been
	// authenticated.
	OpenSession(ctx context.Context, user domain.User) (*SignedIn, error)
	// SignOut ends a session and schedules removal of its listings.
	SignOut(ctx context.Context, sessionID domain.SessionID) error
	// Session returns a live session or UNAUTHORIZED.
	Session(ctx context.Context, sessionID domain.SessionID) (*domain.Session, error)
	// Entitlement describes what the session may still do. A zero or
	// unknown session ID yields the anonymous view.
	Entitlement(ctx context.Context, sessionID domain.SessionID) (entitlement.Snapshot, error)
	// Upgrade moves the session to premium. Upgrading twice is a no-op.
	Upgrade(ctx context.Context, sessionID domain.SessionID) (entitlement.Snapshot, error)
	// Apply reacts to an identity change on every session of the user.
	Apply(ctx context.Context, change identity.Change) error
}
