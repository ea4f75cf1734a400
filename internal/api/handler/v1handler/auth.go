package v1handler

import (
	"net/http"

	"estate/internal/account"
	"estate/internal/api/specs/v1specs"
	"estate/pkg/domain"

	"github.com/go-faster/jx"
)

func (h *Handler) writeSignedIn(w http.ResponseWriter, status int, res *account.SignedIn) {
	writeJSON(w, status, func(e *jx.Encoder) {
		v1specs.EncodeSession(e, res.Token, res.ExpiresAt, res.User, res.Entitlement)
	})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	registration, err := v1specs.DecodeSignUp(data)
	if err != nil {
		h.writeError(w, r, badBody(err))

		return
	}

	res, err := h.deps.Accounts.SignUp(r.Context(), registration)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeSignedIn(w, http.StatusCreated, res)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := v1specs.DecodeSignIn(data)
	if err != nil {
		h.writeError(w, r, badBody(err))

		return
	}

	res, err := h.deps.Accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeSignedIn(w, http.StatusOK, res)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	session, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Accounts.SignOut(r.Context(), session.ID); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) entitlement(w http.ResponseWriter, r *http.Request) {
	var sessionID domain.SessionID
	if session, ok := SessionFrom(r.Context()); ok {
		sessionID = session.ID
	}

	snapshot, err := h.deps.Accounts.Entitlement(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeEntitlement(e, snapshot) })
}

func (h *Handler) upgrade(w http.ResponseWriter, r *http.Request) {
	session, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	snapshot, err := h.deps.Accounts.Upgrade(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { v1specs.EncodeEntitlement(e, snapshot) })
}
