package listing

import (
	"context"
	"errors"
	"fmt"

	"estate/internal/config"
	"estate/internal/entitlement"
	"estate/pkg/domain"
	"estate/pkg/logger"
	"estate/pkg/metrics"
	"estate/pkg/serrors"
	"estate/pkg/sessionstore"
	"estate/pkg/storage"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "estate/internal/listing"

// Options configure moderation and paging.
type Options struct {
	// RequireApproval stores new listings as pending until an admin approves them.
	RequireApproval bool
	// DefaultLimit is used when a browse request does not name a page size.
	DefaultLimit uint
	// MaxLimit caps browse page sizes and "my listings".
	MaxLimit uint
	// MapLimit caps the number of pins on the map.
	MapLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RequireApproval: cfg.Listing.RequireApproval,
		DefaultLimit:    cfg.Listing.DefaultLimit,
		MaxLimit:        cfg.Listing.MaxLimit,
		MapLimit:        cfg.Listing.MapLimit,
	}
}

// errQuotaReached aborts the session transaction without writing.
var errQuotaReached = errors.New("quota reached")

// QuotaExceededError rejects a listing that would take the session over its
// quota. It is a QUOTA_EXCEEDED serrors error and carries the entitlement the
// session had when the check failed, so callers can show what upgrading buys.
type QuotaExceededError struct {
	Entitlement entitlement.Snapshot

	err error
}

// NewQuotaExceededError rejects a listing for a session whose entitlement is s.
func NewQuotaExceededError(s entitlement.Snapshot) *QuotaExceededError {
	return &QuotaExceededError{
		Entitlement: s,
		err:         serrors.With(serrors.ErrQuotaExceeded, "listing quota reached, upgrade to premium to add more"),
	}
}

func (e *QuotaExceededError) Error() string { return e.err.Error() }

func (e *QuotaExceededError) Unwrap() error { return e.err }

// errSignedOut aborts the session transaction for sessions that are no longer
// authenticated.
var errSignedOut = errors.New("session is not authenticated")

type listings struct {
	options  Options
	storage  storage.Storage
	sessions sessionstore.Store
	quotas   entitlement.QuotaTable
	metrics  *metrics.Instruments
	validate *validator.Validate
	tracer   trace.Tracer
}

var _ Listings = (*listings)(nil)

// New returns the listings service.
func New(strg storage.Storage,
	sessions sessionstore.Store,
	quotas entitlement.QuotaTable,
	ins *metrics.Instruments,
	options Options) Listings {
	if ins == nil {
		ins = metrics.NoopInstruments()
	}
	if options.MaxLimit == 0 {
		options.MaxLimit = 100
	}
	if options.DefaultLimit == 0 || options.DefaultLimit > options.MaxLimit {
		options.DefaultLimit = min(20, options.MaxLimit)
	}
	if options.MapLimit == 0 {
		options.MapLimit = 500
	}

	return &listings{
		options:  options,
		storage:  strg,
		sessions: sessions,
		quotas:   quotas,
		metrics:  ins,
		validate: validator.New(),
		tracer:   otel.Tracer(tracerName),
	}
}

func (l *listings) pageSize(limit uint) uint {
	if limit == 0 {
		return l.options.DefaultLimit
	}

	return min(limit, l.options.MaxLimit)
}

func (l *listings) Browse(ctx context.Context,
	filter domain.PropertyFilter,
	cursor string,
	limit uint) (Page, error) {
	after, err := DecodeCursor(cursor)
	if err != nil {
		return Page{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := l.storage.Properties(ctx, filter, after, l.pageSize(limit))
	if err != nil {
		return Page{}, fmt.Errorf("could not get properties: %w", err)
	}

	return Page{Properties: page.Properties, NextCursor: EncodeCursor(page.NextCursor)}, nil
}

func (l *listings) Property(ctx context.Context, ID domain.PropertyID) (*domain.Property, error) {
	property, err := l.storage.PropertyByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if property == nil || property.Status != domain.PropertyStatusActive {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}

	return property, nil
}

func (l *listings) Map(ctx context.Context, filter domain.PropertyFilter) (MapView, error) {
	page, err := l.storage.Properties(ctx, filter, nil, l.options.MapLimit)
	if err != nil {
		return MapView{}, fmt.Errorf("could not get properties: %w", err)
	}

	return MapViewOf(page.Properties), nil
}

func (l *listings) checkDraft(draft *Draft) error {
	if err := l.validate.Struct(draft); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid listing")
	}
	if !draft.Type.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown property type %q", draft.Type)
	}
	if !draft.ListingType.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown listing type %q", draft.ListingType)
	}

	images, err := NormalizeURLs(draft.Images)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid image URL")
	}
	draft.Images = images

	return nil
}

// Create runs the quota check inside the session transaction, then stores
// the listing. A failed insert gives the slot back.
func (l *listings) Create(ctx context.Context, sessionID domain.SessionID, draft Draft) (*Created, error) {
	ctx, span := l.tracer.Start(ctx, "listing.Create",
		trace.WithAttributes(attribute.String("session.id", sessionID.String())))
	defer span.End()

	if err := l.checkDraft(&draft); err != nil {
		return nil, err
	}

	var rejected entitlement.Snapshot
	session, err := l.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		if !s.Authenticated {
			return errSignedOut
		}
		tracker := entitlement.New(l.quotas, s)
		if tracker.CreateListing() == entitlement.QuotaExceeded {
			rejected = tracker.Snapshot()

			return errQuotaReached
		}

		return nil
	})
	switch {
	case errors.Is(err, errQuotaReached):
		metrics.Inc(ctx, l.metrics.QuotaRejections)
		span.SetAttributes(attribute.String("entitlement.outcome", entitlement.QuotaExceeded.String()))

		return nil, NewQuotaExceededError(rejected)
	case errors.Is(err, errSignedOut), errors.Is(err, sessionstore.ErrSessionNotFound):
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "session has ended")
	case err != nil:
		return nil, fmt.Errorf("could not update session: %w", err)
	}

	status := domain.PropertyStatusActive
	if l.options.RequireApproval {
		status = domain.PropertyStatusPending
	}

	stored, err := l.storage.StoreProperties(ctx, domain.Property{
		OwnerID:     session.UserID,
		SessionID:   session.ID,
		Title:       draft.Title,
		Address:     draft.Address,
		City:        draft.City,
		State:       draft.State,
		ZipCode:     draft.ZipCode,
		Price:       draft.Price,
		Bedrooms:    draft.Bedrooms,
		Bathrooms:   draft.Bathrooms,
		SquareFeet:  draft.SquareFeet,
		Description: draft.Description,
		Features:    draft.Features,
		Images:      draft.Images,
		Coordinates: draft.Coordinates,
		Type:        draft.Type,
		ListingType: draft.ListingType,
		YearBuilt:   draft.YearBuilt,
		Status:      status,
	})
	if err != nil {
		if _, cerr := l.release(ctx, sessionID); cerr != nil {
			logger.Error(ctx, "could not give back listing slot", zap.Error(cerr))
		}

		return nil, fmt.Errorf("could not store property: %w", err)
	}

	metrics.Inc(ctx, l.metrics.ListingsCreated, metric.WithAttributes(attribute.String("role", string(session.Role))))
	span.SetAttributes(attribute.String("entitlement.outcome", entitlement.Created.String()))

	return &Created{
		Property:    stored[0],
		Entitlement: entitlement.New(l.quotas, session).Snapshot(),
	}, nil
}

// release decrements the session's listing count.
func (l *listings) release(ctx context.Context, sessionID domain.SessionID) (*domain.Session, error) {
	return l.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		entitlement.New(l.quotas, s).DeleteListing(domain.PropertyID{})

		return nil
	})
}

// Delete gives the quota slot back whether or not the listing still exists,
// and removes the row only when it was submitted in this session.
func (l *listings) Delete(ctx context.Context,
	sessionID domain.SessionID,
	ID domain.PropertyID) (entitlement.Snapshot, error) {
	ctx, span := l.tracer.Start(ctx, "listing.Delete", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
		attribute.String("property.id", ID.String()),
	))
	defer span.End()

	session, err := l.release(ctx, sessionID)
	if errors.Is(err, sessionstore.ErrSessionNotFound) {
		return entitlement.Snapshot{}, serrors.Wrap(serrors.ErrUnauthorized, err, "session has ended")
	}
	if err != nil {
		return entitlement.Snapshot{}, fmt.Errorf("could not update session: %w", err)
	}

	removed, err := l.storage.DeleteSessionProperty(ctx, sessionID, ID)
	if err != nil {
		return entitlement.Snapshot{}, fmt.Errorf("could not delete property: %w", err)
	}
	span.SetAttributes(attribute.Bool("property.removed", removed))
	if removed {
		metrics.Inc(ctx, l.metrics.ListingsDeleted)
	}

	return entitlement.New(l.quotas, session).Snapshot(), nil
}

func (l *listings) MyListings(ctx context.Context, sessionID domain.SessionID) ([]domain.Property, error) {
	session, err := l.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil || !session.Authenticated {
		return nil, serrors.With(serrors.ErrUnauthorized, "session has ended")
	}

	properties, err := l.storage.PropertiesByOwner(ctx, session.UserID, l.options.MaxLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get own properties: %w", err)
	}

	return properties, nil
}

func (l *listings) PurgeSession(ctx context.Context, sessionID domain.SessionID) (int64, error) {
	ctx, span := l.tracer.Start(ctx, "listing.PurgeSession",
		trace.WithAttributes(attribute.String("session.id", sessionID.String())))
	defer span.End()

	n, err := l.storage.DeleteSessionProperties(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("could not purge session properties: %w", err)
	}
	if n > 0 && l.metrics.ListingsPurged != nil {
		l.metrics.ListingsPurged.Add(ctx, n)
	}
	span.SetAttributes(attribute.Int64("properties.purged", n))

	return n, nil
}
