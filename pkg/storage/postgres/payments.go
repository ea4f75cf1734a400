package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"estate/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	paymentGatewaysTable = "payment_gateways"
)

func (p *PgSQL) PaymentGateways(ctx context.Context) ([]domain.PaymentGateway, error) {
	var rows []PgPaymentGateway
	if err := p.Builder.From(paymentGatewaysTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch payment gateways from pg: %w", err)
	}

	out := make([]domain.PaymentGateway, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) UpdatePaymentGateway(ctx context.Context,
	gateway domain.PaymentGateway) (*domain.PaymentGateway, error) {
	cfg := gateway.Config
	if cfg == nil {
		cfg = map[string]string{}
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not marshal payment gateway config: %w", err)
	}

	var row PgPaymentGateway
	found, err := p.Builder.Update(paymentGatewaysTable).
		Set(goqu.Record{
			"enabled":    gateway.Enabled,
			"config":     string(b),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("name").Eq(string(gateway.Name))).
		Returning(&PgPaymentGateway{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update payment gateway in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
