package storage

import (
	"context"

	"estate/pkg/domain"
)

// UserStorage persists accounts of the local identity provider.
type UserStorage interface {
	// CreateUser inserts a user and returns the stored row. A duplicate email
	// yields ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail looks a user up by email, case-insensitively. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID returns nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// SearchUsers matches query against name and email. An empty query lists
	// everyone, newest first.
	SearchUsers(ctx context.Context, query string, limit uint) ([]domain.User, error)
	// UpdateUserStatus returns the updated user, or nil when not found.
	UpdateUserStatus(ctx context.Context, ID domain.UserID, status domain.UserStatus) (*domain.User, error)
}
