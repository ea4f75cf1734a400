package v1specs_test

import (
	"strings"
	"testing"
	"time"

	"estate/internal/api/specs/v1specs"
	"estate/internal/entitlement"
	"estate/internal/listing"
	"estate/pkg/domain"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDecodeListing(t *testing.T) {
	draft, err := v1specs.DecodeListing([]byte(`{
		"id": "ignored",
		"title": "Lake House",
		"address": "1 Shore Rd",
		"city": "Udaipur",
		"state": "RJ",
		"zipCode": "313001",
		"price": 25000,
		"bedrooms": 3,
		"bathrooms": 2.5,
		"squareFeet": 1800,
		"description": null,
		"features": ["Lake View"],
		"images": ["https://example.com/1.jpg"],
		"coordinates": {"lat": 24.58, "lng": 73.68},
		"propertyType": "house",
		"listingType": "rent",
		"yearBuilt": 2001,
		"somethingElse": {"nested": [1, 2]}
	}`))
	require.NoError(t, err)
	require.Equal(t, "Lake House", draft.Title)
	require.Equal(t, int64(25000), draft.Price)
	require.InDelta(t, 2.5, draft.Bathrooms, 1e-9)
	require.Equal(t, []string{"Lake View"}, draft.Features)
	require.Equal(t, domain.PropertyTypeHouse, draft.Type)
	require.Equal(t, domain.ListingTypeRent, draft.ListingType)
	require.InDelta(t, 73.68, draft.Coordinates.Lng, 1e-9)
}

func TestDecodeListing_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"empty":       ``,
		"not object":  `[1]`,
		"wrong type":  `{"price": "lots"}`,
		"truncated":   `{"title": "x"`,
		"bad feature": `{"features": [1]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v1specs.DecodeListing([]byte(body))
			require.Error(t, err)
		})
	}
}

func TestDecodeSignUp(t *testing.T) {
	r, err := v1specs.DecodeSignUp([]byte(`{"email":"a@b.co","password":"secret1"}`))
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, r.Role)

	r, err = v1specs.DecodeSignUp([]byte(`{"email":"a@b.co","password":"secret1","role":"Agent","name":"A"}`))
	require.NoError(t, err)
	require.Equal(t, domain.RoleAgent, r.Role)
	require.Equal(t, "A", r.Name)

	r, err = v1specs.DecodeSignUp([]byte(`{"role":"superuser"}`))
	require.NoError(t, err)
	require.Equal(t, domain.RoleUnknown, r.Role)
}

func TestDecodeSignIn(t *testing.T) {
	r, err := v1specs.DecodeSignIn([]byte(`{"email":"a@b.co","password":"pw"}`))
	require.NoError(t, err)
	require.Equal(t, v1specs.SignInRequest{Email: "a@b.co", Password: "pw"}, r)
}

func TestEncodeEntitlement(t *testing.T) {
	anonymous := v1specs.Encode(func(e *jx.Encoder) {
		v1specs.EncodeEntitlement(e, entitlement.Snapshot{Role: domain.RoleNone, Tier: entitlement.TierFree})
	})
	require.JSONEq(t, `{"authenticated":false,"role":"none","tier":"free","isPremium":false,
		"listingCount":0,"quota":0,"remaining":null}`, string(anonymous))

	remaining := 10
	premium := v1specs.Encode(func(e *jx.Encoder) {
		v1specs.EncodeEntitlement(e, entitlement.Snapshot{
			Authenticated: true, Role: domain.RoleUser, Tier: entitlement.TierPremium, Premium: true,
			ListingCount: 3, Quota: 13, Remaining: &remaining,
		})
	})
	require.JSONEq(t, `{"authenticated":true,"role":"user","tier":"premium","isPremium":true,
		"listingCount":3,"quota":13,"remaining":10}`, string(premium))
}

func TestEncodePropertyPage(t *testing.T) {
	id := uuid.MustParse("4f1b1f6e-31a3-4c61-a4a2-1b4c1f0a9e11")
	body := v1specs.Encode(func(e *jx.Encoder) {
		v1specs.EncodePropertyPage(e, listing.Page{Properties: []domain.Property{{
			ID:          domain.PropertyID(id),
			Title:       "Flat",
			Price:       1500000,
			Features:    []string{},
			Images:      []string{},
			Type:        domain.PropertyTypeApartment,
			ListingType: domain.ListingTypeSale,
			Status:      domain.PropertyStatusActive,
			CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}}})
	})

	d := jx.DecodeBytes(body)
	var cursorIsNull bool
	var props int
	require.NoError(t, d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "nextCursor":
			cursorIsNull = d.Next() == jx.Null

			return d.Skip()
		case "properties":
			return d.Arr(func(d *jx.Decoder) error {
				props++

				return d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "id":
						v, err := d.Str()
						require.Equal(t, id.String(), v)

						return err
					case "priceLabel":
						v, err := d.Str()
						require.Contains(t, strings.ReplaceAll(v, ",", ""), "1500000")

						return err
					case "ownerId":
						t.Fatal("catalog entries have no owner")
					case "createdAt":
						v, err := d.Str()
						require.Equal(t, "2024-01-02T03:04:05Z", v)

						return err
					}

					return d.Skip()
				})
			})
		}

		return d.Skip()
	}))
	require.True(t, cursorIsNull)
	require.Equal(t, 1, props)
}

func TestDecodeAgentProfile(t *testing.T) {
	form, err := v1specs.DecodeAgentProfile([]byte(`{
		"name":"Priya","title":"Agent","location":"Pune","phone":"12345","email":"p@b.co",
		"isPremium": true, "listingCount": 40,
		"social":{"facebook":"facebook.com/p","whatsapp":null}
	}`))
	require.NoError(t, err)
	require.Equal(t, "facebook.com/p", form.Facebook)
	require.Empty(t, form.WhatsApp)
	require.Equal(t, "Pune", form.Location)
}

func TestDecodePaymentGatewayUpdate(t *testing.T) {
	g, err := v1specs.DecodePaymentGatewayUpdate([]byte(`{"enabled":true,"config":{"upiId":"shop@upi"}}`), domain.GatewayQRCode)
	require.NoError(t, err)
	require.Equal(t, domain.GatewayQRCode, g.Name)
	require.True(t, g.Enabled)
	require.Equal(t, map[string]string{"upiId": "shop@upi"}, g.Config)

	_, err = v1specs.DecodePaymentGatewayUpdate([]byte(`{"config":{}}`), domain.GatewayQRCode)
	require.Error(t, err)
}

func TestEncodeError(t *testing.T) {
	body := v1specs.Encode(func(e *jx.Encoder) { v1specs.EncodeError(e, "NOT_FOUND", "property not found") })
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"property not found"}`, string(body))
}
