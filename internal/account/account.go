// Package account opens and closes sessions and keeps them in step with the
// identity provider.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estate/internal/entitlement"
	"estate/internal/listing"
	"estate/pkg/domain"
	"estate/pkg/identity"
	"estate/pkg/logger"
	"estate/pkg/metrics"
	"estate/pkg/serrors"
	"estate/pkg/sessionstore"
	"estate/pkg/storage"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var errSignedOut = errors.New("session is not authenticated")

type accounts struct {
	provider identity.Provider
	sessions sessionstore.Store
	storage  storage.Storage
	signer   TokenSigner
	quotas   entitlement.QuotaTable
	metrics  *metrics.Instruments
	tracer   trace.Tracer
	now      func() time.Time
}

var _ Accounts = (*accounts)(nil)

// New returns the accounts service. Jobs are enqueued through strg.
func New(provider identity.Provider,
	sessions sessionstore.Store,
	strg storage.Storage,
	signer TokenSigner,
	quotas entitlement.QuotaTable,
	ins *metrics.Instruments) Accounts {
	if ins == nil {
		ins = metrics.NoopInstruments()
	}

	return &accounts{
		provider: provider,
		sessions: sessions,
		storage:  strg,
		signer:   signer,
		quotas:   quotas,
		metrics:  ins,
		tracer:   otel.Tracer("estate/internal/account"),
		now:      time.Now,
	}
}

func (a *accounts) SignUp(ctx context.Context, registration identity.Registration) (*SignedIn, error) {
	ctx, span := a.tracer.Start(ctx, "account.SignUp")
	defer span.End()

	user, err := a.provider.SignUp(ctx, registration)
	if err != nil {
		return nil, fmt.Errorf("could not sign up: %w", err)
	}

	return a.OpenSession(ctx, *user)
}

func (a *accounts) SignIn(ctx context.Context, email, password string) (*SignedIn, error) {
	ctx, span := a.tracer.Start(ctx, "account.SignIn")
	defer span.End()

	user, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("could not sign in: %w", err)
	}

	return a.OpenSession(ctx, *user)
}

// OpenSession always starts from a zero listing count on the free tier. The
// purge of whatever the session submits is queued up front for the moment the
// session expires, so listings of sessions nobody signs out still go away.
func (a *accounts) OpenSession(ctx context.Context, user domain.User) (*SignedIn, error) {
	if user.IsBlocked() {
		return nil, serrors.With(serrors.ErrForbidden, "account is blocked")
	}

	session := domain.NewSession(user.ID, domain.ParseRole(string(user.Role)), a.now().UTC())
	token, expiresAt, err := a.signer.Sign(session)
	if err != nil {
		return nil, fmt.Errorf("could not sign token: %w", err)
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	expiry := listing.PurgeJobArgs{SessionID: session.ID, Reason: listing.PurgeExpired}
	if _, err := a.storage.AddJob(ctx, expiry, &river.InsertOpts{ScheduledAt: expiresAt}); err != nil {
		if _, delErr := a.sessions.Delete(ctx, session.ID); delErr != nil {
			logger.Warn(ctx, "could not drop session after failed purge schedule",
				zap.Stringer("sessionId", session.ID), zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not schedule listing purge: %w", err)
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("session.id", session.ID.String()),
		attribute.String("user.role", string(session.Role)),
	)
	metrics.Inc(ctx, a.metrics.SignIns, metric.WithAttributes(attribute.String("role", string(session.Role))))
	logger.Info(ctx, "session opened",
		zap.Stringer("userId", user.ID),
		zap.Stringer("sessionId", session.ID),
		zap.String("role", string(session.Role)))

	return &SignedIn{
		User:        user,
		Session:     session,
		Token:       token,
		ExpiresAt:   expiresAt,
		Entitlement: entitlement.New(a.quotas, &session).Snapshot(),
	}, nil
}

func (a *accounts) SignOut(ctx context.Context, sessionID domain.SessionID) error {
	ctx, span := a.tracer.Start(ctx, "account.SignOut",
		trace.WithAttributes(attribute.String("session.id", sessionID.String())))
	defer span.End()

	return a.end(ctx, sessionID)
}

// end destroys a session and queues the purge of what it submitted right away.
// The expiry purge queued by OpenSession stays scheduled and finds nothing.
func (a *accounts) end(ctx context.Context, sessionID domain.SessionID) error {
	existed, err := a.sessions.Delete(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}
	if existed {
		metrics.Inc(ctx, a.metrics.SessionsRevoked)
	}

	if _, err := a.storage.AddJob(ctx, listing.PurgeJobArgs{SessionID: sessionID, Reason: listing.PurgeEnded}, nil); err != nil {
		return fmt.Errorf("could not schedule listing purge: %w", err)
	}

	return nil
}

func (a *accounts) Session(ctx context.Context, sessionID domain.SessionID) (*domain.Session, error) {
	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil || !session.Authenticated {
		return nil, serrors.With(serrors.ErrUnauthorized, "session has ended")
	}

	return session, nil
}

func (a *accounts) Entitlement(ctx context.Context, sessionID domain.SessionID) (entitlement.Snapshot, error) {
	if sessionID.IsZero() {
		return entitlement.New(a.quotas, nil).Snapshot(), nil
	}

	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return entitlement.Snapshot{}, fmt.Errorf("could not get session: %w", err)
	}

	return entitlement.New(a.quotas, session).Snapshot(), nil
}

// Upgrade performs no payment verification.
func (a *accounts) Upgrade(ctx context.Context, sessionID domain.SessionID) (entitlement.Snapshot, error) {
	ctx, span := a.tracer.Start(ctx, "account.Upgrade",
		trace.WithAttributes(attribute.String("session.id", sessionID.String())))
	defer span.End()

	var upgraded bool
	session, err := a.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		if !s.Authenticated {
			return errSignedOut
		}
		upgraded = entitlement.New(a.quotas, s).Upgrade()

		return nil
	})
	if errors.Is(err, errSignedOut) || errors.Is(err, sessionstore.ErrSessionNotFound) {
		return entitlement.Snapshot{}, serrors.Wrap(serrors.ErrUnauthorized, err, "session has ended")
	}
	if err != nil {
		return entitlement.Snapshot{}, fmt.Errorf("could not upgrade session: %w", err)
	}

	span.SetAttributes(attribute.Bool("entitlement.upgraded", upgraded))
	if upgraded {
		metrics.Inc(ctx, a.metrics.Upgrades, metric.WithAttributes(attribute.String("role", string(session.Role))))
	}

	return entitlement.New(a.quotas, session).Snapshot(), nil
}

// Apply overwrites the header of every session of the user as a whole. The
// listing count is kept and the premium flag is reset. A change that signs
// the user out ends all of their sessions.
func (a *accounts) Apply(ctx context.Context, change identity.Change) error {
	ctx, span := a.tracer.Start(ctx, "account.Apply", trace.WithAttributes(
		attribute.String("user.id", change.UserID.String()),
		attribute.Bool("user.authenticated", change.Authenticated),
	))
	defer span.End()

	ids, err := a.sessions.UserSessions(ctx, change.UserID)
	if err != nil {
		return fmt.Errorf("could not list user sessions: %w", err)
	}

	var errs []error
	for _, id := range ids {
		if !change.Authenticated {
			if err := a.end(ctx, id); err != nil {
				errs = append(errs, err)
			}

			continue
		}

		_, err := a.sessions.Update(ctx, id, func(s *domain.Session) error {
			s.Authenticated = true
			s.Role = change.Role
			s.Premium = false

			return nil
		})
		if err != nil && !errors.Is(err, sessionstore.ErrSessionNotFound) {
			errs = append(errs, fmt.Errorf("could not update session %s: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
