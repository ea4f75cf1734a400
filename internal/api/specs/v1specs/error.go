package v1specs

import (
	"estate/internal/entitlement"

	"github.com/go-faster/jx"
)

// EncodeError writes the body of every non-2xx response.
func EncodeError(e *jx.Encoder, code, message string) {
	e.Obj(func(e *jx.Encoder) {
		encodeErrorFields(e, code, message)
	})
}

// EncodeQuotaError is EncodeError plus the entitlement of the session that
// ran out of quota.
func EncodeQuotaError(e *jx.Encoder, code, message string, s entitlement.Snapshot) {
	e.Obj(func(e *jx.Encoder) {
		encodeErrorFields(e, code, message)
		e.Field("entitlement", func(e *jx.Encoder) { EncodeEntitlement(e, s) })
	})
}

func encodeErrorFields(e *jx.Encoder, code, message string) {
	e.Field("code", func(e *jx.Encoder) { e.Str(code) })
	e.Field("message", func(e *jx.Encoder) { e.Str(message) })
}
