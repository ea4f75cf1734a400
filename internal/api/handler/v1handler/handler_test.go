package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estate/internal/account"
	mockaccount "estate/internal/account/mock"
	mockadmin "estate/internal/admin/mock"
	mockagent "estate/internal/agent/mock"
	"estate/internal/api/handler/v1handler"
	"estate/internal/entitlement"
	"estate/internal/listing"
	mocklisting "estate/internal/listing/mock"
	"estate/pkg/domain"
	"estate/pkg/identity"
	"estate/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	accounts *mockaccount.MockAccounts
	listings *mocklisting.MockListings
	agents   *mockagent.MockAgents
	admin    *mockadmin.MockAdmin
	keys     keys
	handler  *v1handler.Handler
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		accounts: mockaccount.NewMockAccounts(ctrl),
		listings: mocklisting.NewMockListings(ctrl),
		agents:   mockagent.NewMockAgents(ctrl),
		admin:    mockadmin.NewMockAdmin(ctrl),
		keys:     newKeys(t),
	}
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: f.keys.pubPEM, Issuer: "estate"}, f.accounts)
	require.NoError(t, err)

	f.handler = v1handler.New(v1handler.Deps{
		Accounts: f.accounts,
		Listings: f.listings,
		Agents:   f.agents,
		Admin:    f.admin,
	}, sec)
	r := chi.NewRouter()
	r.Route("/v1", f.handler.Routes)
	f.router = r

	return f
}

// signedIn makes the session live and returns a bearer token for it.
func (f *fixture) signedIn(t *testing.T, role domain.Role) (domain.Session, string) {
	t.Helper()
	session := domain.NewSession(domain.UserID(uuid.New()), role, time.Now())
	f.accounts.EXPECT().Session(gomock.Any(), session.ID).Return(&session, nil).AnyTimes()

	return session, f.keys.token(t, session)
}

func (f *fixture) do(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var res map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}

	return rec, res
}

func remaining(n int) *int { return &n }

const listingBody = `{
	"title": "Lake House",
	"address": "1 Shore Rd",
	"city": "Udaipur",
	"state": "RJ",
	"zipCode": "313001",
	"price": 25000,
	"bedrooms": 3,
	"bathrooms": 2,
	"images": ["https://example.com/1.jpg"],
	"propertyType": "house",
	"listingType": "rent"
}`

func TestNewError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.handler.NewError(ctx, errors.New("db exploded"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "INTERNAL", res.Code)
	require.Equal(t, "internal error", res.Message)

	res = f.handler.NewError(ctx, serrors.KindOnly(serrors.ErrNotFound))
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "resource not found", res.Message)

	res = f.handler.NewError(ctx, serrors.Wrap(serrors.ErrQuotaExceeded, errors.New("cause"), "listing quota reached"))
	require.Equal(t, http.StatusPaymentRequired, res.StatusCode)
	require.Equal(t, "QUOTA_EXCEEDED", res.Code)
	require.Equal(t, "listing quota reached", res.Message)
}

func TestSignUp(t *testing.T) {
	f := newFixture(t)
	user := domain.User{ID: domain.UserID(uuid.New()), Email: "a@b.co", Name: "Ann", Role: domain.RoleAgent}
	f.accounts.EXPECT().SignUp(gomock.Any(), identity.Registration{
		Email: "a@b.co", Password: "secret123", Name: "Ann", Role: domain.RoleAgent,
	}).Return(&account.SignedIn{
		User:        user,
		Token:       "tkn",
		ExpiresAt:   time.Now().Add(time.Hour),
		Entitlement: entitlement.Snapshot{Authenticated: true, Role: domain.RoleAgent, Quota: 13, Remaining: remaining(13)},
	}, nil)

	rec, res := f.do(t, http.MethodPost, "/v1/auth/sign-up", "",
		`{"email":"a@b.co","password":"secret123","name":"Ann","role":"agent"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "tkn", res["token"])
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestSignIn_BadBody(t *testing.T) {
	f := newFixture(t)

	rec, res := f.do(t, http.MethodPost, "/v1/auth/sign-in", "", `{"email":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", res["code"])
}

func TestSignIn_WrongPassword(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().SignIn(gomock.Any(), "a@b.co", "nope").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password"))

	rec, res := f.do(t, http.MethodPost, "/v1/auth/sign-in", "", `{"email":"a@b.co","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid email or password", res["message"])
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleUser)
	f.accounts.EXPECT().SignOut(gomock.Any(), session.ID).Return(nil)

	rec, _ := f.do(t, http.MethodPost, "/v1/auth/sign-out", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequire_MissingToken(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/v1/auth/sign-out", "/v1/me/upgrade", "/v1/listings"} {
		rec, res := f.do(t, http.MethodPost, target, "", listingBody)
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		require.Equal(t, "UNAUTHORIZED", res["code"], target)
	}
}

func TestEntitlement_Anonymous(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().Entitlement(gomock.Any(), domain.SessionID{}).
		Return(entitlement.Snapshot{Role: domain.RoleNone}, nil).Times(2)

	rec, res := f.do(t, http.MethodGet, "/v1/me/entitlement", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, res["authenticated"])
	require.Nil(t, res["remaining"])

	// an invalid token is served as anonymous
	rec, _ = f.do(t, http.MethodGet, "/v1/me/entitlement", "garbage", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEntitlement_SignedIn(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleUser)
	f.accounts.EXPECT().Entitlement(gomock.Any(), session.ID).Return(entitlement.Snapshot{
		Authenticated: true, Role: domain.RoleUser, Tier: entitlement.TierFree, ListingCount: 1, Quota: 3, Remaining: remaining(2),
	}, nil)

	rec, res := f.do(t, http.MethodGet, "/v1/me/entitlement", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "free", res["tier"])
	require.EqualValues(t, 2, res["remaining"])
}

func TestUpgrade(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleUser)
	f.accounts.EXPECT().Upgrade(gomock.Any(), session.ID).Return(entitlement.Snapshot{
		Authenticated: true, Role: domain.RoleUser, Tier: entitlement.TierPremium, Premium: true, Quota: 13, Remaining: remaining(13),
	}, nil)

	rec, res := f.do(t, http.MethodPost, "/v1/me/upgrade", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "premium", res["tier"])
	require.Equal(t, true, res["isPremium"])
}

func TestCreateListing(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleUser)
	f.listings.EXPECT().Create(gomock.Any(), session.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.SessionID, draft listing.Draft) (*listing.Created, error) {
			require.Equal(t, "Lake House", draft.Title)
			require.Equal(t, domain.ListingTypeRent, draft.ListingType)

			return &listing.Created{
				Property: domain.Property{ID: domain.PropertyID(uuid.New()), Title: draft.Title, Price: draft.Price},
				Entitlement: entitlement.Snapshot{
					Authenticated: true, Role: domain.RoleUser, ListingCount: 1, Quota: 3, Remaining: remaining(2),
				},
			}, nil
		})

	rec, res := f.do(t, http.MethodPost, "/v1/listings", token, listingBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Lake House", res["property"].(map[string]any)["title"])
	require.EqualValues(t, 2, res["entitlement"].(map[string]any)["remaining"])
}

func TestCreateListing_QuotaExceeded(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleUser)
	f.listings.EXPECT().Create(gomock.Any(), session.ID, gomock.Any()).
		Return(nil, fmt.Errorf("could not create listing: %w", listing.NewQuotaExceededError(entitlement.Snapshot{
			Authenticated: true, Role: domain.RoleUser, Tier: entitlement.TierFree,
			ListingCount: 3, Quota: 3, Remaining: remaining(0),
		})))

	rec, res := f.do(t, http.MethodPost, "/v1/listings", token, listingBody)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	require.Equal(t, "QUOTA_EXCEEDED", res["code"])
	require.Equal(t, "listing quota reached, upgrade to premium to add more", res["message"])

	snap, ok := res["entitlement"].(map[string]any)
	require.True(t, ok, "a rejected listing carries the entitlement")
	require.Equal(t, "free", snap["tier"])
	require.EqualValues(t, 3, snap["quota"])
	require.EqualValues(t, 3, snap["listingCount"])
	require.EqualValues(t, 0, snap["remaining"])
}

func TestDeleteListing(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleUser)
	id := domain.PropertyID(uuid.New())
	f.listings.EXPECT().Delete(gomock.Any(), session.ID, id).
		Return(entitlement.Snapshot{Authenticated: true, Role: domain.RoleUser, Quota: 3, Remaining: remaining(3)}, nil)

	rec, res := f.do(t, http.MethodDelete, "/v1/listings/"+id.String(), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 3, res["remaining"])

	rec, _ = f.do(t, http.MethodDelete, "/v1/listings/not-a-uuid", token, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrowse_Filter(t *testing.T) {
	f := newFixture(t)
	want := domain.PropertyFilter{
		MinPrice:      1000,
		MaxPrice:      5000,
		MinBedrooms:   2,
		MinBathrooms:  1.5,
		PropertyTypes: []domain.PropertyType{domain.PropertyTypeHouse, domain.PropertyTypeCondo, domain.PropertyTypeLand},
		ListingType:   domain.ListingTypeSale,
		City:          "Pune",
		FeaturedOnly:  true,
	}
	f.listings.EXPECT().Browse(gomock.Any(), want, "abc", uint(10)).
		Return(listing.Page{NextCursor: "next"}, nil)

	rec, res := f.do(t, http.MethodGet, "/v1/properties?minPrice=1000&maxPrice=5000&bedrooms=2&bathrooms=1.5"+
		"&propertyType=house,condo&propertyType=LAND&listingType=sale&city=Pune&featured=true&cursor=abc&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "next", res["nextCursor"])
}

func TestBrowse_InvalidFilter(t *testing.T) {
	f := newFixture(t)

	for _, query := range []string{
		"minPrice=cheap",
		"minPrice=-1",
		"minPrice=10&maxPrice=5",
		"propertyType=castle",
		"listingType=lease",
		"featured=maybe",
		"limit=-3",
	} {
		rec, res := f.do(t, http.MethodGet, "/v1/properties?"+query, "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code, query)
		require.Equal(t, "BAD_REQUEST", res["code"], query)
	}
}

func TestProperty_NotFound(t *testing.T) {
	f := newFixture(t)
	id := domain.PropertyID(uuid.New())
	f.listings.EXPECT().Property(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "property not found"))

	rec, res := f.do(t, http.MethodGet, "/v1/properties/"+id.String(), "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "property not found", res["message"])
}

func TestMap(t *testing.T) {
	f := newFixture(t)
	f.listings.EXPECT().Map(gomock.Any(), domain.PropertyFilter{City: "Goa"}).
		Return(listing.MapView{Center: listing.DefaultCenter, Zoom: listing.DefaultZoom}, nil)

	rec, res := f.do(t, http.MethodGet, "/v1/map?city=Goa", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, listing.DefaultZoom, res["zoom"])
}

func TestAgentProfile_RequiresAgent(t *testing.T) {
	f := newFixture(t)
	_, token := f.signedIn(t, domain.RoleUser)

	rec, res := f.do(t, http.MethodGet, "/v1/me/agent-profile", token, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "FORBIDDEN", res["code"])
}

func TestAgentProfile(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleAgent)
	profile := &domain.AgentProfile{ID: domain.AgentID(uuid.New()), UserID: session.UserID, Name: "Ann"}
	f.agents.EXPECT().Profile(gomock.Any(), session.ID).Return(profile, nil)

	rec, res := f.do(t, http.MethodGet, "/v1/me/agent-profile", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Ann", res["name"])
}

func TestAdmin_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	_, token := f.signedIn(t, domain.RoleAgent)

	rec, _ := f.do(t, http.MethodGet, "/v1/admin/users", token, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/v1/admin/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_Block(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleAdmin)
	target := domain.User{ID: domain.UserID(uuid.New()), Email: "x@y.co", Status: domain.UserStatusBlocked}
	f.admin.EXPECT().Block(gomock.Any(), session, target.ID).Return(&target, nil)

	rec, res := f.do(t, http.MethodPost, "/v1/admin/users/"+target.ID.String()+"/block", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "x@y.co", res["email"])
}

func TestAdmin_Remove(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleAdmin)
	id := domain.PropertyID(uuid.New())
	f.admin.EXPECT().Remove(gomock.Any(), session, id).Return(nil)

	rec, _ := f.do(t, http.MethodDelete, "/v1/admin/properties/"+id.String(), token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdmin_UpdatePaymentGateway(t *testing.T) {
	f := newFixture(t)
	session, token := f.signedIn(t, domain.RoleAdmin)
	f.admin.EXPECT().UpdatePaymentGateway(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Session, g domain.PaymentGateway) (*domain.PaymentGateway, error) {
			require.Equal(t, domain.GatewayName("stripe"), g.Name)
			require.True(t, g.Enabled)

			return &g, nil
		})

	rec, res := f.do(t, http.MethodPut, "/v1/admin/payment-gateways/stripe", token, `{"enabled":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, res["enabled"])
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec, res := f.do(t, http.MethodGet, "/v1/nowhere", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", res["code"])
}
