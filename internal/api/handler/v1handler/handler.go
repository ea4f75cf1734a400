// Package v1handler serves the v1 HTTP API on top of the account, listing,
// agent and admin services.
package v1handler

import (
	"net/http"

	"estate/internal/account"
	"estate/internal/admin"
	"estate/internal/agent"
	"estate/internal/listing"
	"estate/pkg/domain"
	"estate/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// Deps are the services behind the API.
type Deps struct {
	Accounts account.Accounts
	Listings listing.Listings
	Agents   agent.Agents
	Admin    admin.Admin
}

// Handler serves the v1 API. It decodes requests with v1specs, calls the
// services in Deps and encodes their results; it holds no state of its own.
// Authentication is delegated to the SecHandler middlewares, which put the
// caller's session on the request context before a handler runs.
type Handler struct {
	deps Deps
	sec  *SecHandler
}

// New returns a Handler. Mount it with Routes.
func New(deps Deps, sec *SecHandler) *Handler {
	return &Handler{deps: deps, sec: sec}
}

// Routes registers every v1 route on r.
func (h *Handler) Routes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "method not allowed"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", h.signUp)
		r.Post("/sign-in", h.signIn)
		r.With(h.Require).Post("/sign-out", h.signOut)
	})

	r.Get("/properties", h.browse)
	r.Get("/properties/{id}", h.property)
	r.Get("/map", h.mapView)
	r.Get("/agents", h.agents)
	r.Get("/agents/{id}", h.agent)

	r.With(h.Optional).Get("/me/entitlement", h.entitlement)
	r.Group(func(r chi.Router) {
		r.Use(h.Require)
		r.Post("/me/upgrade", h.upgrade)
		r.Get("/me/listings", h.myListings)
		r.Post("/listings", h.createListing)
		r.Delete("/listings/{id}", h.deleteListing)

		r.With(h.RequireRole(domain.RoleAgent)).Get("/me/agent-profile", h.agentProfile)
		r.With(h.RequireRole(domain.RoleAgent)).Put("/me/agent-profile", h.updateAgentProfile)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.Require, h.RequireRole(domain.RoleAdmin))
		r.Get("/users", h.adminUsers)
		r.Post("/users/{id}/block", h.adminBlock)
		r.Post("/users/{id}/unblock", h.adminUnblock)
		r.Get("/properties", h.adminProperties)
		r.Post("/properties/{id}/approve", h.adminApprove)
		r.Delete("/properties/{id}", h.adminRemove)
		r.Get("/payment-gateways", h.adminGateways)
		r.Put("/payment-gateways/{name}", h.adminUpdateGateway)
	})
}

// caller returns the session of an authenticated request.
func caller(r *http.Request) (*domain.Session, error) {
	session, ok := SessionFrom(r.Context())
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "sign in required")
	}

	return session, nil
}
