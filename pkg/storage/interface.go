// Package storage is the persistence boundary of the listing service. The
// services depend on these interfaces only; pkg/storage/postgres implements
// them.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go estate/pkg/storage Storage
package storage

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a
	// transaction. Transactions do not nest.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when an insert hits a unique constraint, such
	// as a second account with the same email.
	ErrDuplicate = errors.New("duplicate record")
)

// AllStorage is everything that can be done both inside and outside a
// transaction.
type AllStorage interface {
	UserStorage
	PropertyStorage
	AgentStorage
	PaymentGatewayStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long lived handle created at start-up.
type Storage interface {
	AllStorage

	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that is committed when cb returns nil
	// and rolled back otherwise. A job added through cb is enqueued only if
	// the transaction commits.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
