// Package identity is the seam between the service and whoever owns user
// accounts. Sessions react to account changes by subscribing to a Provider.
//
//go:generate mockgen -package mockidentity -destination=mock/mockidentity.go estate/pkg/identity Provider
package identity

import (
	"context"

	"estate/pkg/domain"
)

// MinPasswordLength is the shortest password accepted on sign-up.
const MinPasswordLength = 6

// Change is published whenever the provider's view of a user changes.
// Authenticated false means the user may no longer hold sessions.
type Change struct {
	UserID        domain.UserID
	Role          domain.Role
	Authenticated bool
}

// Listener receives changes. It runs synchronously on the publishing
// goroutine.
type Listener func(ctx context.Context, change Change)

// Registration is a sign-up request.
type Registration struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// Provider authenticates users and publishes account changes.
type Provider interface {
	// SignUp creates an account. Only self-registrable roles are accepted.
	SignUp(ctx context.Context, registration Registration) (*domain.User, error)
	// SignIn checks credentials and returns the user with its effective role.
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	// User returns the user with its effective role.
	User(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// SetStatus blocks or unblocks a user and publishes the resulting Change.
	SetStatus(ctx context.Context, ID domain.UserID, status domain.UserStatus) (*domain.User, error)
	// Subscribe registers fn for every future Change and returns a function
	// that removes it.
	Subscribe(fn Listener) (unsubscribe func())
}
