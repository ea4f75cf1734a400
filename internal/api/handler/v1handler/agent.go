package v1handler

import (
	"net/http"

	"estate/internal/api/specs/v1specs"
	"estate/pkg/domain"

	"github.com/go-faster/jx"
)

func (h *Handler) agents(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Agents.List(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeAgents(e, res) })
}

func (h *Handler) agent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, domain.ParseAgentID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Agents.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeAgent(e, *res) })
}

func (h *Handler) agentProfile(w http.ResponseWriter, r *http.Request) {
	session, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Agents.Profile(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeAgent(e, *res) })
}

func (h *Handler) updateAgentProfile(w http.ResponseWriter, r *http.Request) {
	session, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	data, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	form, err := v1specs.DecodeAgentProfile(data)
	if err != nil {
		h.writeError(w, r, badBody(err))

		return
	}

	res, err := h.deps.Agents.UpdateProfile(r.Context(), session.ID, form)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeAgent(e, *res) })
}
