// Package serrors attaches a semantic kind to errors. A kind decides how an
// error is reported to API clients: its HTTP status and the message shown
// when nothing more specific was attached.
package serrors

import (
	"errors"
	"net/http"
)

// Kind is a sentinel naming a category of failure. Only NewKind creates
// kinds.
type Kind interface {
	error
	// Status is the HTTP status the kind is reported with.
	Status() int
	// Public is the client facing message used when an error carries none.
	Public() string
	isKind()
}

type kind struct {
	name   string
	status int
	public string
}

func (k kind) Error() string  { return k.name }
func (k kind) Status() int    { return k.status }
func (k kind) Public() string { return k.public }
func (k kind) isKind()        {}

// NewKind returns a kind reported with status. Kinds are compared by value,
// so two calls with the same arguments yield the same kind.
func NewKind(name string, status int, public string) Kind {
	return kind{name: name, status: status, public: public}
}

var (
	ErrNotFound     = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	// ErrForbidden is for a known caller that lacks the role or owns a
	// blocked account.
	ErrForbidden  = NewKind("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest, "bad request")
	ErrConflict   = NewKind("CONFLICT", http.StatusConflict, "conflict")
	// ErrInternal never exposes its message to clients.
	ErrInternal    = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	ErrTimeout     = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
	// ErrQuotaExceeded means the session used up its listing allowance and
	// has to upgrade before creating more.
	ErrQuotaExceeded = NewKind("QUOTA_EXCEEDED", http.StatusPaymentRequired, "quota exceeded")
)

// Error is an error with a kind, an optional cause and an optional message
// meant for clients.
//
// errors.Is and errors.As see both the kind and the cause. Error() prints
// "<msg>: <cause>", or whichever of the two is set, or the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k whose client message is the formatted
// msgFmt.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: format(msgFmt, args)}
}

// Wrap is With plus a cause. The cause is kept for logs and errors.Is, and
// is never part of the client message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: format(msgFmt, args)}
}

// KindOnly returns an error that carries nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.err }

// KindOf returns the first kind in err's chain. Bare kind sentinels count.
// Errors without a kind are ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// PublicMessage is what a client may read about err: the message attached
// with With or Wrap, else the kind's public message. Internal errors always
// read "internal error".
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return ErrInternal.Public()
	}

	var e *Error
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}

	return k.Public()
}
