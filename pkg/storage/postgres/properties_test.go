package postgres_test

import (
	"context"
	"testing"
	"time"

	"estate/pkg/domain"
	"estate/pkg/storage"
	"estate/pkg/storage/postgres"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPropertyFilterExpressions(t *testing.T) {
	sqlFor := func(filter domain.PropertyFilter) string {
		query, _, err := goqu.Dialect("postgres").
			From("properties").
			Where(postgres.PropertyFilterExpressions(filter)...).
			ToSQL()
		require.NoError(t, err)

		return query
	}

	require.Empty(t, postgres.PropertyFilterExpressions(domain.PropertyFilter{}))
	require.Equal(t, `SELECT * FROM "properties"`, sqlFor(domain.PropertyFilter{}))

	query := sqlFor(domain.PropertyFilter{
		MinPrice:      100,
		MaxPrice:      500,
		MinBedrooms:   2,
		MinBathrooms:  1.5,
		PropertyTypes: []domain.PropertyType{domain.PropertyTypeHouse, domain.PropertyTypeCondo},
		ListingType:   domain.ListingTypeRent,
		City:          " Pune ",
		FeaturedOnly:  true,
	})
	require.Contains(t, query, `("price" >= 100)`)
	require.Contains(t, query, `("price" <= 500)`)
	require.Contains(t, query, `("bedrooms" >= 2)`)
	require.Contains(t, query, `("bathrooms" >= 1.5)`)
	require.Contains(t, query, `("type" IN ('house', 'condo'))`)
	require.Contains(t, query, `("listing_type" = 'rent')`)
	require.Contains(t, query, `(lower("city") = 'pune')`)
	require.Contains(t, query, `("featured" IS TRUE)`)
}

func sampleProperty(title string, price int64) domain.Property {
	return domain.Property{
		Title:       title,
		Address:     "1 MG Road",
		City:        "Bengaluru",
		State:       "KA",
		ZipCode:     "560001",
		Price:       price,
		Bedrooms:    3,
		Bathrooms:   2,
		SquareFeet:  1500,
		Features:    []string{"Garden"},
		Images:      []string{"https://img.example.com/1.jpg"},
		Coordinates: domain.Coordinates{Lat: 12.97, Lng: 77.59},
		Type:        domain.PropertyTypeHouse,
		ListingType: domain.ListingTypeSale,
		YearBuilt:   2010,
	}
}

func TestPgSQL_Properties(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	owner, err := pg.CreateUser(ctx, newUser("owner@example.com", domain.RoleUser))
	require.NoError(t, err)
	sessionID := domain.SessionID(uuid.New())

	t.Run("store and fetch", func(t *testing.T) {
		res, err := pg.StoreProperties(ctx)
		require.NoError(t, err)
		require.Empty(t, res)

		p := sampleProperty("Lake view villa", 9_000_000)
		p.OwnerID = owner.ID
		p.SessionID = sessionID
		p.Features = nil

		stored, err := pg.StoreProperties(ctx, p)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		require.Equal(t, domain.PropertyStatusActive, stored[0].Status)
		require.Empty(t, stored[0].Features)
		require.Equal(t, sessionID, stored[0].SessionID)

		got, err := pg.PropertyByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.Equal(t, "Lake view villa", got.Title)
		require.Equal(t, p.Images, got.Images)
		require.InDelta(t, 12.97, got.Coordinates.Lat, 1e-9)

		got, err = pg.PropertyByID(ctx, domain.PropertyID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)

		mine, err := pg.PropertiesByOwner(ctx, owner.ID, 10)
		require.NoError(t, err)
		require.Len(t, mine, 1)
	})

	t.Run("search by title and owner email", func(t *testing.T) {
		found, err := pg.SearchProperties(ctx, "lake", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = pg.SearchProperties(ctx, "owner@", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = pg.SearchProperties(ctx, "nothing-matches", 10)
		require.NoError(t, err)
		require.Empty(t, found)
	})

	t.Run("status and session deletes", func(t *testing.T) {
		p := sampleProperty("Pending flat", 1_000_000)
		p.Status = domain.PropertyStatusPending
		p.SessionID = sessionID
		stored, err := pg.StoreProperties(ctx, p)
		require.NoError(t, err)
		id := stored[0].ID

		page, err := pg.Properties(ctx, domain.PropertyFilter{}, nil, 50)
		require.NoError(t, err)
		for _, prop := range page.Properties {
			require.NotEqual(t, id, prop.ID, "pending listings are not browsable")
		}

		updated, err := pg.UpdatePropertyStatus(ctx, id, domain.PropertyStatusActive)
		require.NoError(t, err)
		require.Equal(t, domain.PropertyStatusActive, updated.Status)

		removed, err := pg.DeleteSessionProperty(ctx, domain.SessionID(uuid.New()), id)
		require.NoError(t, err)
		require.False(t, removed)

		removed, err = pg.DeleteSessionProperty(ctx, sessionID, id)
		require.NoError(t, err)
		require.True(t, removed)

		n, err := pg.DeleteSessionProperties(ctx, sessionID)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		removed, err = pg.DeleteProperty(ctx, id)
		require.NoError(t, err)
		require.False(t, removed)
	})
}

func TestPgSQL_Properties_Pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var batch []domain.Property
	for i := range 5 {
		p := sampleProperty("House", int64(100+i))
		if i%2 == 0 {
			p.ListingType = domain.ListingTypeRent
		}
		batch = append(batch, p)
	}
	_, err := pg.StoreProperties(ctx, batch...)
	require.NoError(t, err)

	seen := map[domain.PropertyID]bool{}
	var cursor *storage.PropertyCursor
	pages := 0
	for {
		page, err := pg.Properties(ctx, domain.PropertyFilter{}, cursor, 2)
		require.NoError(t, err)
		pages++
		for _, p := range page.Properties {
			require.False(t, seen[p.ID], "duplicate across pages")
			seen[p.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}
	require.Len(t, seen, 5)
	require.Equal(t, 3, pages)

	page, err := pg.Properties(ctx, domain.PropertyFilter{ListingType: domain.ListingTypeRent, MinPrice: 101}, nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Properties, 2)
	require.Nil(t, page.NextCursor)

	page, err = pg.Properties(ctx, domain.PropertyFilter{}, &storage.PropertyCursor{
		CreatedAt: time.Now().Add(-time.Hour),
		ID:        domain.PropertyID(uuid.New()),
	}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Properties)
}

func TestPgSQL_AgentsAndGateways(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user, err := pg.CreateUser(ctx, newUser("agent@example.com", domain.RoleAgent))
	require.NoError(t, err)

	t.Run("agents", func(t *testing.T) {
		stored, err := pg.StoreAgents(ctx,
			domain.AgentProfile{Name: "Catalog Agent", Title: "Broker", ListingCount: 4},
			domain.AgentProfile{Name: "Star Agent", Title: "Broker", Premium: true},
		)
		require.NoError(t, err)
		require.Len(t, stored, 2)

		created, err := pg.UpsertAgentProfile(ctx, domain.AgentProfile{
			UserID: user.ID, Name: "agent", Title: "Real Estate Agent",
		})
		require.NoError(t, err)
		require.Equal(t, user.ID, created.UserID)

		updated, err := pg.UpsertAgentProfile(ctx, domain.AgentProfile{
			UserID: user.ID, Name: "Agent Smith", Title: "Senior Agent", Location: "Mumbai",
			Social: domain.SocialLinks{WhatsApp: "+91 98765"},
		})
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "Agent Smith", updated.Name)
		require.Equal(t, "+91 98765", updated.Social.WhatsApp)

		byUser, err := pg.AgentByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, byUser.ID)

		byID, err := pg.AgentByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.Equal(t, "Catalog Agent", byID.Name)

		missing, err := pg.AgentByID(ctx, domain.AgentID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)

		all, err := pg.Agents(ctx, 10)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "Star Agent", all[0].Name)
		require.Equal(t, "Catalog Agent", all[1].Name)
	})

	t.Run("payment gateways", func(t *testing.T) {
		gateways, err := pg.PaymentGateways(ctx)
		require.NoError(t, err)
		require.Len(t, gateways, 5)

		enabled := map[domain.GatewayName]bool{}
		for _, g := range gateways {
			enabled[g.Name] = g.Enabled
		}
		require.True(t, enabled[domain.GatewayQRCode])
		require.True(t, enabled[domain.GatewayStripe])
		require.False(t, enabled[domain.GatewayRazorpay])

		updated, err := pg.UpdatePaymentGateway(ctx, domain.PaymentGateway{
			Name: domain.GatewayRazorpay, Enabled: true, Config: map[string]string{"keyId": "rzp_test"},
		})
		require.NoError(t, err)
		require.True(t, updated.Enabled)
		require.Equal(t, "rzp_test", updated.Config["keyId"])
		require.Equal(t, "Razorpay", updated.DisplayName)

		missing, err := pg.UpdatePaymentGateway(ctx, domain.PaymentGateway{Name: "bitcoin"})
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}
