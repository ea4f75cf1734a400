package listing

import (
	"context"

	"estate/internal/entitlement"
	"estate/pkg/domain"
)

// Draft is a listing submitted by a signed-in visitor.
type Draft struct {
	Title       string              `validate:"required,min=3,max=200"`
	Address     string              `validate:"required,min=3"`
	City        string              `validate:"required,min=2"`
	State       string              `validate:"required,min=2"`
	ZipCode     string              `validate:"required,min=3,max=12"`
	Price       int64               `validate:"gt=0"`
	Bedrooms    int                 `validate:"gte=0,lte=100"`
	Bathrooms   float64             `validate:"gte=0,lte=100"`
	SquareFeet  int                 `validate:"gte=0"`
	Description string              `validate:"max=5000"`
	Features    []string            `validate:"max=50,dive,min=1,max=100"`
	Images      []string            `validate:"max=20,dive,required"`
	Coordinates domain.Coordinates  `validate:"-"`
	Type        domain.PropertyType `validate:"required"`
	ListingType domain.ListingType  `validate:"required"`
	YearBuilt   int                 `validate:"gte=0,lte=3000"`
}

// Page is one page of browse results.
type Page struct {
	Properties []domain.Property
	// NextCursor is empty on the last page.
	NextCursor string
}

// Pin is a property placed on the map.
type Pin struct {
	ID          domain.PropertyID
	Title       string
	Price       int64
	PriceLabel  string
	ListingType domain.ListingType
	Coordinates domain.Coordinates
}

// MapView is the set of pins plus a viewport that frames them.
type MapView struct {
	Pins   []Pin
	Center domain.Coordinates
	Zoom   int
}

// Created is the result of a successful create.
type Created struct {
	Property    domain.Property
	Entitlement entitlement.Snapshot
}

//go:generate mockgen -package mocklisting -destination=mock/mocklisting.go estate/internal/listing Listings
type Listings interface {
	// Browse returns active listings matching filter, newest first.
	Browse(ctx context.Context, filter domain.PropertyFilter, cursor string, limit uint) (Page, error)
	// Property returns an active listing.
	Property(ctx context.Context, ID domain.PropertyID) (*domain.Property, error)
	// Map returns pins for the active listings matching filter.
	Map(ctx context.Context, filter domain.PropertyFilter) (MapView, error)
	// Create stores a listing if the session's quota allows it.
	Create(ctx context.Context, sessionID domain.SessionID, draft Draft) (*Created, error)
	// Delete removes a listing submitted in this session and gives the quota
	// slot back.
	Delete(ctx context.Context, sessionID domain.SessionID, ID domain.PropertyID) (entitlement.Snapshot, error)
	// MyListings lists everything the session's user submitted.
	MyListings(ctx context.Context, sessionID domain.SessionID) ([]domain.Property, error)
	// PurgeSession removes the listings submitted in an ended session.
	PurgeSession(ctx context.Context, sessionID domain.SessionID) (int64, error)
}
