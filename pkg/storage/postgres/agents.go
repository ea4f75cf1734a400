package postgres

import (
	"context"
	"fmt"

	"estate/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	agentsTable = "agents"
)

func (p *PgSQL) StoreAgents(ctx context.Context, agents ...domain.AgentProfile) ([]domain.AgentProfile, error) {
	if len(agents) == 0 {
		return nil, nil
	}

	rows := make([]PgAgent, len(agents))
	for i := range rows {
		rows[i].FromDomain(agents[i])
	}

	var result []PgAgent
	if err := p.Builder.Insert(agentsTable).
		Rows(rows).
		Returning(&PgAgent{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store agents into pg: %w", err)
	}

	return pgAgentsToDomain(result), nil
}

// Agents lists premium agents first, then by listing count.
func (p *PgSQL) Agents(ctx context.Context, limit uint) ([]domain.AgentProfile, error) {
	var rows []PgAgent
	if err := p.Builder.From(agentsTable).
		Order(
			goqu.I("premium").Desc(),
			goqu.I("listing_count").Desc(),
			goqu.I("created_at").Asc(),
			goqu.I("id").Asc(),
		).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch agents from pg: %w", err)
	}

	return pgAgentsToDomain(rows), nil
}

func (p *PgSQL) AgentByID(ctx context.Context, id domain.AgentID) (*domain.AgentProfile, error) {
	return p.agentWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) AgentByUserID(ctx context.Context, userID domain.UserID) (*domain.AgentProfile, error) {
	return p.agentWhere(ctx, goqu.I("user_id").Eq(uuid.UUID(userID)))
}

func (p *PgSQL) agentWhere(ctx context.Context, where goqu.Expression) (*domain.AgentProfile, error) {
	var row PgAgent
	found, err := p.Builder.From(agentsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch agent: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpsertAgentProfile inserts the profile or, when the user already owns one,
// replaces its editable fields. Listing count and premium flag are kept.
func (p *PgSQL) UpsertAgentProfile(ctx context.Context, profile domain.AgentProfile) (*domain.AgentProfile, error) {
	var row PgAgent
	row.FromDomain(profile)

	editable := []string{
		"name", "title", "location", "phone", "email", "about",
		"avatar_url", "facebook", "instagram", "twitter", "whatsapp",
	}
	set := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	for _, col := range editable {
		set[col] = goqu.L("EXCLUDED." + col)
	}

	var result PgAgent
	if _, err := p.Builder.Insert(agentsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", set)).
		Returning(&PgAgent{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert agent profile in pg: %w", err)
	}

	return result.ToDomain(), nil
}
