package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"estate/internal/api/specs/v1specs"
	"estate/internal/listing"
	"estate/pkg/logger"
	"estate/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse is what NewError produces for a failed operation.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// NewError converts err into the response sent to the client. Errors
// without a kind are logged and reported as INTERNAL.
func (h *Handler) NewError(ctx context.Context, err error) ErrorResponse {
	kind := serrors.KindOf(err)
	status := kind.Status()
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return ErrorResponse{StatusCode: status, Code: kind.Error(), Message: serrors.PublicMessage(err)}
}

func writeJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(v1specs.Encode(fn))
}

// writeError sends err as an error body. A rejected listing also carries the
// caller's entitlement.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var quota *listing.QuotaExceededError
	if errors.As(err, &quota) {
		writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
			v1specs.EncodeQuotaError(e, res.Code, res.Message, quota.Entitlement)
		})

		return
	}

	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { v1specs.EncodeError(e, res.Code, res.Message) })
}

// readBody reads at most maxBodyBytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "request body is too large")
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return data, nil
}

// badBody marks a decoding failure as the client's fault.
func badBody(err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body: %s", err.Error())
}
