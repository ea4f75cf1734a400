package storage

import (
	"context"
	"time"

	"estate/pkg/domain"
)

// PropertyCursor is a keyset position in the browse order
// (created_at DESC, id DESC).
type PropertyCursor struct {
	CreatedAt time.Time
	ID        domain.PropertyID
}

// PropertyPage groups a page of properties with the cursor of the next page.
type PropertyPage struct {
	Properties []domain.Property
	// NextCursor is nil on the last page.
	NextCursor *PropertyCursor
}

// PropertyStorage defines listing persistence.
type PropertyStorage interface {
	// StoreProperties inserts one or more properties and returns them with
	// generated fields filled.
	StoreProperties(ctx context.Context, properties ...domain.Property) ([]domain.Property, error)
	// Properties returns a page of active properties matching filter, starting
	// after cursor when it is non-nil.
	Properties(ctx context.Context,
		filter domain.PropertyFilter,
		cursor *PropertyCursor,
		limit uint) (PropertyPage, error)
	// PropertyByID returns nil when not found. Pending properties are included.
	PropertyByID(ctx context.Context, ID domain.PropertyID) (*domain.Property, error)
	// PropertiesByOwner lists everything the user submitted, newest first.
	PropertiesByOwner(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Property, error)
	// SearchProperties matches query against the title or the owner's email,
	// in any status.
	SearchProperties(ctx context.Context, query string, limit uint) ([]domain.Property, error)
	// UpdatePropertyStatus returns the updated property, or nil when not found.
	UpdatePropertyStatus(ctx context.Context,
		ID domain.PropertyID,
		status domain.PropertyStatus) (*domain.Property, error)
	// DeleteProperty removes a property and reports whether it existed.
	DeleteProperty(ctx context.Context, ID domain.PropertyID) (bool, error)
	// DeleteSessionProperty removes a property only if it was submitted in the
	// given session, and reports whether a row was removed.
	DeleteSessionProperty(ctx context.Context, sessionID domain.SessionID, ID domain.PropertyID) (bool, error)
	// DeleteSessionProperties removes every property submitted in the session
	// and returns how many rows were removed.
	DeleteSessionProperties(ctx context.Context, sessionID domain.SessionID) (int64, error)
}
