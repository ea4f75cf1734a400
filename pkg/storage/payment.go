package storage

import (
	"context"

	"estate/pkg/domain"
)

// PaymentGatewayStorage persists the admin-managed payment gateway settings.
type PaymentGatewayStorage interface {
	PaymentGateways(ctx context.Context) ([]domain.PaymentGateway, error)
	// UpdatePaymentGateway sets enabled and config of an existing gateway.
	// Returns nil when the gateway does not exist.
	UpdatePaymentGateway(ctx context.Context, gateway domain.PaymentGateway) (*domain.PaymentGateway, error)
}
