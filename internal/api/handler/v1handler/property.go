package v1handler

import (
	"net/http"

	"estate/internal/api/specs/v1specs"
	"estate/pkg/domain"

	"github.com/go-faster/jx"
)

func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := parseFilter(query)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := parseLimit(query)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.deps.Listings.Browse(r.Context(), filter, query.Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodePropertyPage(e, page) })
}

func (h *Handler) property(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, domain.ParsePropertyID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Listings.Property(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeProperty(e, *p) })
}

func (h *Handler) mapView(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	view, err := h.deps.Listings.Map(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeMapView(e, view) })
}

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
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
	draft, err := v1specs.DecodeListing(data)
	if err != nil {
		h.writeError(w, r, badBody(err))

		return
	}

	res, err := h.deps.Listings.Create(r.Context(), session.ID, draft)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		v1specs.EncodeCreatedListing(e, res.Property, res.Entitlement)
	})
}

func (h *Handler) deleteListing(w http.ResponseWriter, r *http.Request) {
	session, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	id, err := pathID(r, domain.ParsePropertyID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	snapshot, err := h.deps.Listings.Delete(r.Context(), session.ID, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeEntitlement(e, snapshot) })
}

func (h *Handler) myListings(w http.ResponseWriter, r *http.Request) {
	session, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Listings.MyListings(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeProperties(e, res) })
}
