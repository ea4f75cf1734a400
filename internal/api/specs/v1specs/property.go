package v1specs

import (
	"estate/internal/listing"
	"estate/pkg/domain"
	"estate/pkg/money"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func encodeCoordinates(e *jx.Encoder, c domain.Coordinates) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("lat", func(e *jx.Encoder) { e.Float64(c.Lat) })
		e.Field("lng", func(e *jx.Encoder) { e.Float64(c.Lng) })
	})
}

func decodeCoordinates(d *jx.Decoder) (domain.Coordinates, error) {
	var c domain.Coordinates
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "lat":
			c.Lat, err = d.Float64()
		case "lng":
			c.Lng, err = d.Float64()
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return field(key, err)
	})

	return c, err //nolint: wrapcheck
}

// EncodeProperty writes a listing together with its display price.
func EncodeProperty(e *jx.Encoder, p domain.Property) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID.String()) })
		if !p.OwnerID.IsZero() {
			e.Field("ownerId", func(e *jx.Encoder) { e.Str(p.OwnerID.String()) })
		}
		e.Field("title", func(e *jx.Encoder) { e.Str(p.Title) })
		e.Field("address", func(e *jx.Encoder) { e.Str(p.Address) })
		e.Field("city", func(e *jx.Encoder) { e.Str(p.City) })
		e.Field("state", func(e *jx.Encoder) { e.Str(p.State) })
		e.Field("zipCode", func(e *jx.Encoder) { e.Str(p.ZipCode) })
		e.Field("price", func(e *jx.Encoder) { e.Int64(p.Price) })
		e.Field("priceLabel", func(e *jx.Encoder) { e.Str(money.Format(p.Price, p.IsRental())) })
		e.Field("bedrooms", func(e *jx.Encoder) { e.Int(p.Bedrooms) })
		e.Field("bathrooms", func(e *jx.Encoder) { e.Float64(p.Bathrooms) })
		e.Field("squareFeet", func(e *jx.Encoder) { e.Int(p.SquareFeet) })
		e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
		e.Field("features", func(e *jx.Encoder) { encodeStrings(e, p.Features) })
		e.Field("images", func(e *jx.Encoder) { encodeStrings(e, p.Images) })
		e.Field("coordinates", func(e *jx.Encoder) { encodeCoordinates(e, p.Coordinates) })
		e.Field("propertyType", func(e *jx.Encoder) { e.Str(string(p.Type)) })
		e.Field("listingType", func(e *jx.Encoder) { e.Str(string(p.ListingType)) })
		e.Field("yearBuilt", func(e *jx.Encoder) { e.Int(p.YearBuilt) })
		e.Field("isFeatured", func(e *jx.Encoder) { e.Bool(p.Featured) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(p.Status)) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, p.CreatedAt) })
	})
}

// EncodeProperties writes a JSON array of listings.
func EncodeProperties(e *jx.Encoder, properties []domain.Property) {
	e.Arr(func(e *jx.Encoder) {
		for _, p := range properties {
			EncodeProperty(e, p)
		}
	})
}

// EncodePropertyPage writes one browse page.
func EncodePropertyPage(e *jx.Encoder, page listing.Page) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("properties", func(e *jx.Encoder) { EncodeProperties(e, page.Properties) })
		e.Field("nextCursor", func(e *jx.Encoder) {
			if page.NextCursor == "" {
				e.Null()

				return
			}
			e.Str(page.NextCursor)
		})
	})
}

// EncodeMapView writes the pins and the viewport.
func EncodeMapView(e *jx.Encoder, view listing.MapView) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("center", func(e *jx.Encoder) { encodeCoordinates(e, view.Center) })
		e.Field("zoom", func(e *jx.Encoder) { e.Int(view.Zoom) })
		e.Field("pins", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, pin := range view.Pins {
					e.Obj(func(e *jx.Encoder) {
						e.Field("id", func(e *jx.Encoder) { e.Str(pin.ID.String()) })
						e.Field("title", func(e *jx.Encoder) { e.Str(pin.Title) })
						e.Field("price", func(e *jx.Encoder) { e.Int64(pin.Price) })
						e.Field("priceLabel", func(e *jx.Encoder) { e.Str(pin.PriceLabel) })
						e.Field("listingType", func(e *jx.Encoder) { e.Str(string(pin.ListingType)) })
						e.Field("coordinates", func(e *jx.Encoder) { encodeCoordinates(e, pin.Coordinates) })
					})
				}
			})
		})
	})
}

// propertyFields decodes the fields shared by catalog entries and new
// listings into p. Identifiers are assigned on insert and are skipped.
func propertyFields(d *jx.Decoder, key string, p *domain.Property) error {
	var err error
	switch key {
	case "title":
		p.Title, err = d.Str()
	case "address":
		p.Address, err = d.Str()
	case "city":
		p.City, err = d.Str()
	case "state":
		p.State, err = d.Str()
	case "zipCode":
		p.ZipCode, err = d.Str()
	case "price":
		p.Price, err = d.Int64()
	case "bedrooms":
		p.Bedrooms, err = d.Int()
	case "bathrooms":
		p.Bathrooms, err = d.Float64()
	case "squareFeet":
		p.SquareFeet, err = d.Int()
	case "description":
		p.Description, err = optStr(d)
	case "features":
		p.Features, err = decodeStrings(d)
	case "images":
		p.Images, err = decodeStrings(d)
	case "coordinates":
		p.Coordinates, err = decodeCoordinates(d)
	case "propertyType":
		var v string
		v, err = d.Str()
		p.Type = domain.PropertyType(v)
	case "listingType":
		var v string
		v, err = d.Str()
		p.ListingType = domain.ListingType(v)
	case "yearBuilt":
		p.YearBuilt, err = d.Int()
	case "isFeatured":
		p.Featured, err = d.Bool()
	default:
		return d.Skip() //nolint: wrapcheck
	}

	return field(key, err)
}

// DecodeProperty reads a catalog entry.
func DecodeProperty(d *jx.Decoder) (domain.Property, error) {
	p := domain.Property{Status: domain.PropertyStatusActive}
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		return propertyFields(d, key, &p)
	}); err != nil {
		return domain.Property{}, errors.Wrap(err, "decode property")
	}

	return p, nil
}

// DecodeListing reads the body of a create-listing request.
func DecodeListing(data []byte) (listing.Draft, error) {
	var p domain.Property
	if err := DecodeObject(data, func(d *jx.Decoder, key string) error {
		return propertyFields(d, key, &p)
	}); err != nil {
		return listing.Draft{}, errors.Wrap(err, "decode listing")
	}

	return listing.Draft{
		Title:       p.Title,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		SquareFeet:  p.SquareFeet,
		Description: p.Description,
		Features:    p.Features,
		Images:      p.Images,
		Coordinates: p.Coordinates,
		Type:        p.Type,
		ListingType: p.ListingType,
		YearBuilt:   p.YearBuilt,
	}, nil
}
