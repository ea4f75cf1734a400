package v1handler

import (
	"context"
	"net/http"

	"estate/internal/api/specs/v1specs"
	"estate/pkg/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Admin.Users(r.Context(), *actor, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeUsers(e, res) })
}

type userAction func(ctx context.Context, actor domain.Session, ID domain.UserID) (*domain.User, error)

func (h *Handler) adminUserAction(action userAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := caller(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		id, err := pathID(r, domain.ParseUserID)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		res, err := action(r.Context(), *actor, id)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeUser(e, *res) })
	}
}

func (h *Handler) adminBlock(w http.ResponseWriter, r *http.Request) {
	h.adminUserAction(h.deps.Admin.Block)(w, r)
}

func (h *Handler) adminUnblock(w http.ResponseWriter, r *http.Request) {
	h.adminUserAction(h.deps.Admin.Unblock)(w, r)
}

func (h *Handler) adminProperties(w http.ResponseWriter, r *http.Request) {
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Admin.Properties(r.Context(), *actor, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeProperties(e, res) })
}

func (h *Handler) adminApprove(w http.ResponseWriter, r *http.Request) {
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	id, err := pathID(r, domain.ParsePropertyID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Admin.Approve(r.Context(), *actor, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeProperty(e, *res) })
}

func (h *Handler) adminRemove(w http.ResponseWriter, r *http.Request) {
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	id, err := pathID(r, domain.ParsePropertyID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Admin.Remove(r.Context(), *actor, id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminGateways(w http.ResponseWriter, r *http.Request) {
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Admin.PaymentGateways(r.Context(), *actor)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodePaymentGateways(e, res) })
}

func (h *Handler) adminUpdateGateway(w http.ResponseWriter, r *http.Request) {
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	data, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	gateway, err := v1specs.DecodePaymentGatewayUpdate(data, domain.GatewayName(chi.URLParam(r, "name")))
	if err != nil {
		h.writeError(w, r, badBody(err))

		return
	}

	res, err := h.deps.Admin.UpdatePaymentGateway(r.Context(), *actor, gateway)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodePaymentGateway(e, *res) })
}
