package listing

import (
	"math"

	"estate/pkg/domain"
	"estate/pkg/money"
)

// DefaultCenter frames the whole country when there is nothing to show.
var DefaultCenter = domain.Coordinates{Lat: 39.8283, Lng: -98.5795} //nolint: gochecknoglobals

const (
	DefaultZoom = 4
	maxZoom     = 15
)

// MapViewOf places properties on a map. The viewport is centred on the
// bounding box of the pins, and zoomed so the box fits roughly.
func MapViewOf(properties []domain.Property) MapView {
	view := MapView{
		Pins:   make([]Pin, 0, len(properties)),
		Center: DefaultCenter,
		Zoom:   DefaultZoom,
	}
	if len(properties) == 0 {
		return view
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	for _, p := range properties {
		view.Pins = append(view.Pins, Pin{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			PriceLabel:  money.Compact(p.Price, p.IsRental()),
			ListingType: p.ListingType,
			Coordinates: p.Coordinates,
		})
		minLat, maxLat = math.Min(minLat, p.Coordinates.Lat), math.Max(maxLat, p.Coordinates.Lat)
		minLng, maxLng = math.Min(minLng, p.Coordinates.Lng), math.Max(maxLng, p.Coordinates.Lng)
	}

	view.Center = domain.Coordinates{Lat: (minLat + maxLat) / 2, Lng: (minLng + maxLng) / 2}
	view.Zoom = zoomFor(math.Max(maxLat-minLat, maxLng-minLng))

	return view
}

// zoomFor picks the web-mercator zoom at which span degrees fit in a tile.
func zoomFor(span float64) int {
	if span <= 0 {
		return maxZoom
	}
	z := int(math.Floor(math.Log2(360 / span)))

	return max(1, min(maxZoom, z))
}
