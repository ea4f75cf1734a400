// Package sessionstore defines where sessions live between requests.
//
//go:generate mockgen -package mocksessionstore -destination=mock/mocksessionstore.go estate/pkg/sessionstore Store
package sessionstore

import (
	"context"
	"errors"

	"estate/pkg/domain"
)

var (
	// ErrSessionNotFound is returned by Update when the session does not exist
	// or has expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManyConflicts is returned by Update when concurrent writers kept
	// invalidating the optimistic transaction.
	ErrTooManyConflicts = errors.New("too many concurrent session updates")
)

// UpdateFunc mutates a session inside Update. Returning an error aborts the
// update and nothing is written.
type UpdateFunc func(session *domain.Session) error

// Store keeps sessions with an expiry. Implementations serialize Update calls
// on the same session.
type Store interface {
	// Create persists a new session.
	Create(ctx context.Context, session domain.Session) error
	// Get returns nil when the session does not exist or has expired.
	Get(ctx context.Context, ID domain.SessionID) (*domain.Session, error)
	// Update loads the session, applies fn and writes it back atomically
	// without extending its expiry. It returns the session as written.
	Update(ctx context.Context, ID domain.SessionID, fn UpdateFunc) (*domain.Session, error)
	// Delete removes a session and reports whether it existed.
	Delete(ctx context.Context, ID domain.SessionID) (bool, error)
	// UserSessions lists the live sessions of a user.
	UserSessions(ctx context.Context, userID domain.UserID) ([]domain.SessionID, error)
}
