package postgres

import (
	"context"
	"fmt"
	"strings"

	"estate/pkg/domain"
	"estate/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	propertiesTable = "properties"
)

// PropertyFilterExpressions converts a browse filter into WHERE expressions.
// Zero valued fields add no condition.
func PropertyFilterExpressions(filter domain.PropertyFilter) []goqu.Expression {
	var w []goqu.Expression
	if filter.MinPrice > 0 {
		w = append(w, goqu.I("price").Gte(filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		w = append(w, goqu.I("price").Lte(filter.MaxPrice))
	}
	if filter.MinBedrooms > 0 {
		w = append(w, goqu.I("bedrooms").Gte(filter.MinBedrooms))
	}
	if filter.MinBathrooms > 0 {
		w = append(w, goqu.I("bathrooms").Gte(filter.MinBathrooms))
	}
	if len(filter.PropertyTypes) > 0 {
		types := make([]string, 0, len(filter.PropertyTypes))
		for _, t := range filter.PropertyTypes {
			types = append(types, string(t))
		}
		w = append(w, goqu.I("type").In(types))
	}
	if filter.ListingType != "" {
		w = append(w, goqu.I("listing_type").Eq(string(filter.ListingType)))
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		w = append(w, goqu.Func("lower", goqu.I("city")).Eq(strings.ToLower(city)))
	}
	if filter.FeaturedOnly {
		w = append(w, goqu.I("featured").IsTrue())
	}

	return w
}

func (p *PgSQL) StoreProperties(ctx context.Context, properties ...domain.Property) ([]domain.Property, error) {
	if len(properties) == 0 {
		return nil, nil
	}

	rows, err := domainPropertiesToPg(properties)
	if err != nil {
		return nil, err
	}

	var result []PgProperty
	if err := p.Builder.Insert(propertiesTable).
		Rows(rows).
		Returning(&PgProperty{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store properties into pg: %w", err)
	}

	return pgPropertiesToDomain(result)
}

// Properties returns active properties ordered by created_at DESC, id DESC.
// One extra row is fetched to decide whether a next page exists.
func (p *PgSQL) Properties(ctx context.Context,
	filter domain.PropertyFilter,
	cursor *storage.PropertyCursor,
	limit uint) (storage.PropertyPage, error) {
	w := append([]goqu.Expression{
		goqu.I("status").Eq(string(domain.PropertyStatusActive)),
	}, PropertyFilterExpressions(filter)...)
	if cursor != nil {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	ds := p.Builder.From(propertiesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgProperty
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.PropertyPage{}, fmt.Errorf("could not fetch properties from pg: %w", err)
	}

	var next *storage.PropertyCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			next = &storage.PropertyCursor{CreatedAt: last.CreatedAt, ID: domain.PropertyID(last.ID)}
		}
	}

	properties, err := pgPropertiesToDomain(rows)
	if err != nil {
		return storage.PropertyPage{}, err
	}

	return storage.PropertyPage{
		Properties: properties,
		NextCursor: next,
	}, nil
}

func (p *PgSQL) PropertyByID(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	var row PgProperty
	found, err := p.Builder.From(propertiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch property by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PropertiesByOwner(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Property, error) {
	var rows []PgProperty
	if err := p.Builder.From(propertiesTable).
		Where(goqu.I("owner_id").Eq(uuid.UUID(ownerID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch owner properties from pg: %w", err)
	}

	return pgPropertiesToDomain(rows)
}

// SearchProperties matches the title, or the owner's email through a
// subquery on users.
func (p *PgSQL) SearchProperties(ctx context.Context, query string, limit uint) ([]domain.Property, error) {
	ds := p.Builder.From(propertiesTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit)
	if strings.TrimSpace(query) != "" {
		pattern := likePattern(query)
		owners := p.Builder.From(usersTable).
			Select("id").
			Where(goqu.I("email").ILike(pattern))
		ds = ds.Where(goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.I("owner_id").In(owners),
		))
	}

	var rows []PgProperty
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search properties in pg: %w", err)
	}

	return pgPropertiesToDomain(rows)
}

func (p *PgSQL) UpdatePropertyStatus(ctx context.Context,
	id domain.PropertyID,
	status domain.PropertyStatus) (*domain.Property, error) {
	var row PgProperty
	found, err := p.Builder.Update(propertiesTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgProperty{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update property status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteProperty(ctx context.Context, id domain.PropertyID) (bool, error) {
	n, err := p.deleteProperties(ctx, goqu.I("id").Eq(uuid.UUID(id)))

	return n > 0, err
}

func (p *PgSQL) DeleteSessionProperty(ctx context.Context,
	sessionID domain.SessionID,
	id domain.PropertyID) (bool, error) {
	n, err := p.deleteProperties(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("session_id").Eq(uuid.UUID(sessionID)),
	)

	return n > 0, err
}

func (p *PgSQL) DeleteSessionProperties(ctx context.Context, sessionID domain.SessionID) (int64, error) {
	return p.deleteProperties(ctx, goqu.I("session_id").Eq(uuid.UUID(sessionID)))
}

func (p *PgSQL) deleteProperties(ctx context.Context, where ...goqu.Expression) (int64, error) {
	res, err := p.Builder.Delete(propertiesTable).
		Where(where...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete properties in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read deleted properties count: %w", err)
	}

	return n, nil
}
