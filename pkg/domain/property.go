package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyID uniquely identifies a property listing.
type PropertyID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id PropertyID) String() string { return uuid.UUID(id).String() }

// PropertyType is the kind of real estate being listed.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeLand      PropertyType = "land"
)

// Valid reports whether t is one of the known property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo, PropertyTypeTownhouse, PropertyTypeLand:
		return true
	default:
		return false
	}
}

// ListingType tells whether a property is offered for sale or for rent.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// Valid reports whether t is a known listing type.
func (t ListingType) Valid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// PropertyStatus is the moderation state of a listing.
type PropertyStatus string

const (
	// PropertyStatusActive listings are visible to everyone.
	PropertyStatusActive PropertyStatus = "active"
	// PropertyStatusPending listings wait for an admin approval.
	PropertyStatusPending PropertyStatus = "pending"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property is a single listing. Catalog entries have no owner and no session;
// user-submitted entries carry both.
type Property struct {
	ID PropertyID `json:"id"`
	// OwnerID is the user who submitted the listing; zero for catalog entries.
	OwnerID UserID `json:"ownerId"`
	// SessionID is the session the listing was submitted in; zero for catalog entries.
	SessionID SessionID `json:"-"`

	Title       string       `json:"title"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Price       int64        `json:"price"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   float64      `json:"bathrooms"`
	SquareFeet  int          `json:"squareFeet"`
	Description string       `json:"description"`
	Features    []string     `json:"features"`
	Images      []string     `json:"images"`
	Coordinates Coordinates  `json:"coordinates"`
	Type        PropertyType `json:"propertyType"`
	ListingType ListingType  `json:"listingType"`
	YearBuilt   int          `json:"yearBuilt"`
	Featured    bool         `json:"isFeatured"`

	Status PropertyStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsRental reports whether the listing is offered for rent.
func (p Property) IsRental() bool {
	return p.ListingType == ListingTypeRent
}

// PropertyFilter narrows down browsing results. Zero values mean "unset".
type PropertyFilter struct {
	MinPrice      int64
	MaxPrice      int64
	MinBedrooms   int
	MinBathrooms  float64
	PropertyTypes []PropertyType
	ListingType   ListingType
	City          string
	FeaturedOnly  bool
}
