package v1handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"estate/internal/config"
	"estate/pkg/authtoken"
	"estate/pkg/domain"
	"estate/pkg/logger"
	"estate/pkg/serrors"

	"go.uber.org/zap"
)

type ctxKey string

const (
	// UserIDKey holds the domain.UserID of the authenticated caller.
	UserIDKey ctxKey = "userID"
	// SessionKey holds the *domain.Session of the authenticated caller.
	SessionKey ctxKey = "session"
)

// SessionSource resolves a live session. account.Accounts satisfies it.
type SessionSource interface {
	Session(ctx context.Context, sessionID domain.SessionID) (*domain.Session, error)
}

// SecHandlerOptions configure token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
	// Issuer is the expected "iss" claim.
	Issuer string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey, Issuer: cfg.JWT.Issuer}
}

// SecHandler authenticates bearer tokens against live sessions.
type SecHandler struct {
	verifier *authtoken.Verifier
	sessions SessionSource
}

func NewSecHandler(opts *SecHandlerOptions, sessions SessionSource) (*SecHandler, error) {
	verifier, err := authtoken.NewVerifier(opts.PublicKey, opts.Issuer)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &SecHandler{verifier: verifier, sessions: sessions}, nil
}

// HandleBearerAuth verifies a token and stores the caller in the returned
// context. A token whose session has ended is rejected even if it has not
// expired yet.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	session, err := s.sessions.Session(ctx, claims.SessionID)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}
	if session.UserID != claims.UserID {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token does not match its session")
	}

	ctx = context.WithValue(ctx, UserIDKey, session.UserID)
	ctx = context.WithValue(ctx, SessionKey, session)
	ctx = logger.WithFields(ctx, zap.Stringer("userId", session.UserID), zap.Stringer("sessionId", session.ID))

	return ctx, nil
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// Require rejects requests without a valid bearer token.
func (h *Handler) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := h.sec.HandleBearerAuth(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional authenticates the caller when it can and serves anonymous callers
// otherwise. Only storage failures abort the request.
func (h *Handler) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)

			return
		}

		ctx, err := h.sec.HandleBearerAuth(r.Context(), token)
		if err != nil && serrors.KindOf(err) == serrors.ErrInternal {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated callers whose session role is not one
// of roles. It must run after Require.
func (h *Handler) RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFrom(r.Context())
			if !ok {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "sign in required"))

				return
			}
			if !slices.Contains(roles, session.Role) {
				h.writeError(w, r, serrors.With(serrors.ErrForbidden, "%s access required", roles[0]))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionFrom returns the session stored by HandleBearerAuth.
func SessionFrom(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*domain.Session)

	return session, ok && session != nil
}
