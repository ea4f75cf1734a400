// Package admin is the back-office: user moderation, listing moderation and
// payment gateway settings. Every operation requires an admin session.
//
//go:generate mockgen -package mockadmin -destination=mock/mockadmin.go estate/internal/admin Admin
package admin

import (
	"context"
	"fmt"
	"strings"

	"estate/pkg/domain"
	"estate/pkg/identity"
	"estate/pkg/logger"
	"estate/pkg/serrors"
	"estate/pkg/storage"

	"go.uber.org/zap"
)

// MaxResults caps search results.
const MaxResults = 100

// Admin is the back-office. Every operation takes the session of the caller
// and refuses anyone but an admin, independently of the HTTP route guards.
type Admin interface {
	// Users searches accounts by name or email.
	Users(ctx context.Context, actor domain.Session, query string) ([]domain.User, error)
	// Block stops a user from signing in and ends their sessions.
	Block(ctx context.Context, actor domain.Session, ID domain.UserID) (*domain.User, error)
	// Unblock lets a blocked user sign in again.
	Unblock(ctx context.Context, actor domain.Session, ID domain.UserID) (*domain.User, error)
	// Properties searches listings in any status by title or owner email.
	Properties(ctx context.Context, actor domain.Session, query string) ([]domain.Property, error)
	// Approve makes a pending listing visible.
	Approve(ctx context.Context, actor domain.Session, ID domain.PropertyID) (*domain.Property, error)
	// Remove deletes a listing.
	Remove(ctx context.Context, actor domain.Session, ID domain.PropertyID) error
	// PaymentGateways lists all gateways.
	PaymentGateways(ctx context.Context, actor domain.Session) ([]domain.PaymentGateway, error)
	// UpdatePaymentGateway switches a gateway on or off and replaces its settings.
	UpdatePaymentGateway(ctx context.Context,
		actor domain.Session,
		gateway domain.PaymentGateway) (*domain.PaymentGateway, error)
}

type admin struct {
	storage  storage.Storage
	provider identity.Provider
}

// New returns the admin service. Blocking and unblocking go through provider
// so that live sessions hear about it; everything else reads and writes strg
// directly.
func New(strg storage.Storage, provider identity.Provider) Admin {
	return &admin{storage: strg, provider: provider}
}

func authorize(actor domain.Session) error {
	if !actor.Authenticated {
		return serrors.With(serrors.ErrUnauthorized, "sign in required")
	}
	if actor.Role != domain.RoleAdmin {
		return serrors.With(serrors.ErrForbidden, "admin access required")
	}

	return nil
}

func (a *admin) Users(ctx context.Context, actor domain.Session, query string) ([]domain.User, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	res, err := a.storage.SearchUsers(ctx, strings.TrimSpace(query), MaxResults)
	if err != nil {
		return nil, fmt.Errorf("could not search users: %w", err)
	}

	return res, nil
}

func (a *admin) Block(ctx context.Context, actor domain.Session, ID domain.UserID) (*domain.User, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if actor.UserID == ID {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot block yourself")
	}

	return a.setStatus(ctx, actor, ID, domain.UserStatusBlocked)
}

func (a *admin) Unblock(ctx context.Context, actor domain.Session, ID domain.UserID) (*domain.User, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	return a.setStatus(ctx, actor, ID, domain.UserStatusActive)
}

func (a *admin) setStatus(ctx context.Context,
	actor domain.Session,
	ID domain.UserID,
	status domain.UserStatus) (*domain.User, error) {
	user, err := a.provider.SetStatus(ctx, ID, status)
	if err != nil {
		return nil, fmt.Errorf("could not set user status: %w", err)
	}

	logger.Info(ctx, "user status changed",
		zap.Stringer("adminId", actor.UserID),
		zap.Stringer("userId", ID),
		zap.String("status", string(status)))

	return user, nil
}

func (a *admin) Properties(ctx context.Context, actor domain.Session, query string) ([]domain.Property, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	res, err := a.storage.SearchProperties(ctx, strings.TrimSpace(query), MaxResults)
	if err != nil {
		return nil, fmt.Errorf("could not search properties: %w", err)
	}

	return res, nil
}

func (a *admin) Approve(ctx context.Context, actor domain.Session, ID domain.PropertyID) (*domain.Property, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	res, err := a.storage.UpdatePropertyStatus(ctx, ID, domain.PropertyStatusActive)
	if err != nil {
		return nil, fmt.Errorf("could not approve property: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}

	return res, nil
}

func (a *admin) Remove(ctx context.Context, actor domain.Session, ID domain.PropertyID) error {
	if err := authorize(actor); err != nil {
		return err
	}

	removed, err := a.storage.DeleteProperty(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not remove property: %w", err)
	}
	if !removed {
		return serrors.With(serrors.ErrNotFound, "property not found")
	}

	logger.Info(ctx, "property removed", zap.Stringer("adminId", actor.UserID), zap.Stringer("propertyId", ID))

	return nil
}

func (a *admin) PaymentGateways(ctx context.Context, actor domain.Session) ([]domain.PaymentGateway, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	res, err := a.storage.PaymentGateways(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get payment gateways: %w", err)
	}

	return res, nil
}

func (a *admin) UpdatePaymentGateway(ctx context.Context,
	actor domain.Session,
	gateway domain.PaymentGateway) (*domain.PaymentGateway, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if gateway.Config == nil {
		gateway.Config = map[string]string{}
	}

	res, err := a.storage.UpdatePaymentGateway(ctx, gateway)
	if err != nil {
		return nil, fmt.Errorf("could not update payment gateway: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "unknown payment gateway %q", gateway.Name)
	}

	return res, nil
}
