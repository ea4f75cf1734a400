package listing_test

import (
	"testing"

	"estate/internal/listing"
	"estate/pkg/domain"
	"estate/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMapViewOf_Empty(t *testing.T) {
	view := listing.MapViewOf(nil)
	require.Empty(t, view.Pins)
	require.Equal(t, listing.DefaultCenter, view.Center)
	require.Equal(t, listing.DefaultZoom, view.Zoom)
}

func TestMapViewOf_CentersOnPins(t *testing.T) {
	view := listing.MapViewOf([]domain.Property{
		{ID: domain.PropertyID(uuid.New()), Title: "A", Price: 100, Coordinates: domain.Coordinates{Lat: 10, Lng: 70}},
		{
			ID: domain.PropertyID(uuid.New()), Title: "B", Price: 25000, ListingType: domain.ListingTypeRent,
			Coordinates: domain.Coordinates{Lat: 20, Lng: 80},
		},
	})

	require.Len(t, view.Pins, 2)
	require.InDelta(t, 15, view.Center.Lat, 1e-9)
	require.InDelta(t, 75, view.Center.Lng, 1e-9)
	require.Equal(t, 5, view.Zoom)
	require.Equal(t, "₹100", view.Pins[0].PriceLabel)
	require.Equal(t, "₹25K/month", view.Pins[1].PriceLabel)
}

func TestMapViewOf_SinglePin(t *testing.T) {
	view := listing.MapViewOf([]domain.Property{
		{Coordinates: domain.Coordinates{Lat: 19.07, Lng: 72.87}},
	})
	require.InDelta(t, 19.07, view.Center.Lat, 1e-9)
	require.Equal(t, 15, view.Zoom)
}

func TestCursor(t *testing.T) {
	token := listing.EncodeCursor(nil)
	require.Empty(t, token)

	c, err := listing.DecodeCursor("")
	require.NoError(t, err)
	require.Nil(t, c)

	_, err = listing.DecodeCursor("%%%")
	require.Error(t, err)
	_, err = listing.DecodeCursor("bm9waXBl") // "nopipe"
	require.Error(t, err)

	page, err := listing.DecodeCursor(listing.EncodeCursor(&storage.PropertyCursor{
		ID: domain.PropertyID(uuid.MustParse("0b6f1a43-5a8e-4f43-9d4f-7b1cfa3f6a10")),
	}))
	require.NoError(t, err)
	require.Equal(t, "0b6f1a43-5a8e-4f43-9d4f-7b1cfa3f6a10", page.ID.String())
}
