package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"estate/internal/catalog"
	"estate/pkg/domain"
	"estate/pkg/storage"
	mockstorage "estate/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sample = `{
  "version": 1,
  "properties": [
    {
      "id": "prop-1",
      "title": "Modern Oceanview Villa",
      "address": "123 Coastal Drive",
      "city": "Malibu",
      "state": "CA",
      "zipCode": "90265",
      "price": 3250000,
      "bedrooms": 5,
      "bathrooms": 4.5,
      "squareFeet": 4200,
      "description": "Oceanfront villa.",
      "features": ["Ocean View", "Swimming Pool"],
      "images": ["https://images.example.com/1.jpg?w=1200"],
      "coordinates": {"lat": 34.0259, "lng": -118.7798},
      "propertyType": "house",
      "listingType": "sale",
      "yearBuilt": 2018,
      "isFeatured": true
    }
  ],
  "agents": [
    {
      "id": "agent-1",
      "name": "Sarah Johnson",
      "title": "Luxury Property Specialist",
      "location": "Malibu, CA",
      "phone": "(310) 555-1234",
      "email": "sarah@example.com",
      "social": {"instagram": "https://instagram.com/sarah"},
      "listingCount": 24,
      "isPremium": true
    }
  ]
}`

func TestLoad(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, c.Properties, 1)
	require.Len(t, c.Agents, 1)

	p := c.Properties[0]
	require.Equal(t, "Modern Oceanview Villa", p.Title)
	require.True(t, p.Featured)
	require.Equal(t, domain.PropertyStatusActive, p.Status)
	require.True(t, p.OwnerID.IsZero())

	a := c.Agents[0]
	require.True(t, a.Premium)
	require.Equal(t, 24, a.ListingCount)
	require.Equal(t, "https://instagram.com/sarah", a.Social.Instagram)
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"not json":       `nope`,
		"unknown type":   `{"properties":[{"title":"x","price":1,"propertyType":"castle","listingType":"sale"}]}`,
		"no price":       `{"properties":[{"title":"x","propertyType":"house","listingType":"sale"}]}`,
		"bad image":      `{"properties":[{"title":"x","price":1,"propertyType":"house","listingType":"sale","images":["ftp://x/y"]}]}`,
		"nameless agent": `{"agents":[{"title":"Agent"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(body))
			require.Error(t, err)
		})
	}
}

func TestStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	c, err := catalog.Load(strings.NewReader(sample))
	require.NoError(t, err)

	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error { return cb(strg) })
	strg.EXPECT().StoreProperties(gomock.Any(), c.Properties[0]).Return(c.Properties, nil)
	strg.EXPECT().StoreAgents(gomock.Any(), c.Agents[0]).Return(nil, errors.New("duplicate"))

	require.Error(t, catalog.Store(context.Background(), strg, c))
}
