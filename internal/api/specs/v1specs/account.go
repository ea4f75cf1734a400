package v1specs

import (
	"time"

	"estate/internal/entitlement"
	"estate/pkg/domain"
	"estate/pkg/identity"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string
	Password string
}

// DecodeSignUp reads the body of POST /auth/sign-up. The role defaults to
// "user".
func DecodeSignUp(data []byte) (identity.Registration, error) {
	r := identity.Registration{Role: domain.RoleUser}
	err := DecodeObject(data, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "email":
			r.Email, err = d.Str()
		case "password":
			r.Password, err = d.Str()
		case "name":
			r.Name, err = optStr(d)
		case "role":
			var v string
			v, err = d.Str()
			r.Role = domain.ParseRole(v)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return field(key, err)
	})
	if err != nil {
		return identity.Registration{}, errors.Wrap(err, "decode sign-up")
	}

	return r, nil
}

// DecodeSignIn reads the body of POST /auth/sign-in.
func DecodeSignIn(data []byte) (SignInRequest, error) {
	var r SignInRequest
	err := DecodeObject(data, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "email":
			r.Email, err = d.Str()
		case "password":
			r.Password, err = d.Str()
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return field(key, err)
	})
	if err != nil {
		return SignInRequest{}, errors.Wrap(err, "decode sign-in")
	}

	return r, nil
}

// EncodeUser writes an account without its credentials.
func EncodeUser(e *jx.Encoder, u domain.User) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(u.ID.String()) })
		e.Field("email", func(e *jx.Encoder) { e.Str(u.Email) })
		e.Field("name", func(e *jx.Encoder) { e.Str(u.Name) })
		e.Field("role", func(e *jx.Encoder) { e.Str(string(u.Role)) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(u.Status)) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, u.CreatedAt) })
	})
}

// EncodeUsers writes a JSON array of accounts.
func EncodeUsers(e *jx.Encoder, users []domain.User) {
	e.Arr(func(e *jx.Encoder) {
		for _, u := range users {
			EncodeUser(e, u)
		}
	})
}

// EncodeEntitlement writes a snapshot. remaining is null without a session.
func EncodeEntitlement(e *jx.Encoder, s entitlement.Snapshot) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("authenticated", func(e *jx.Encoder) { e.Bool(s.Authenticated) })
		e.Field("role", func(e *jx.Encoder) { e.Str(string(s.Role)) })
		e.Field("tier", func(e *jx.Encoder) { e.Str(string(s.Tier)) })
		e.Field("isPremium", func(e *jx.Encoder) { e.Bool(s.Premium) })
		e.Field("listingCount", func(e *jx.Encoder) { e.Int(s.ListingCount) })
		e.Field("quota", func(e *jx.Encoder) { e.Int(s.Quota) })
		e.Field("remaining", func(e *jx.Encoder) {
			if s.Remaining == nil {
				e.Null()

				return
			}
			e.Int(*s.Remaining)
		})
	})
}

// EncodeSession writes the response of sign-up and sign-in.
func EncodeSession(e *jx.Encoder, token string, expiresAt time.Time, u domain.User, s entitlement.Snapshot) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("token", func(e *jx.Encoder) { e.Str(token) })
		e.Field("expiresAt", func(e *jx.Encoder) { encodeTime(e, expiresAt) })
		e.Field("user", func(e *jx.Encoder) { EncodeUser(e, u) })
		e.Field("entitlement", func(e *jx.Encoder) { EncodeEntitlement(e, s) })
	})
}

// EncodeCreatedListing writes the response of a successful create.
func EncodeCreatedListing(e *jx.Encoder, p domain.Property, s entitlement.Snapshot) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("property", func(e *jx.Encoder) { EncodeProperty(e, p) })
		e.Field("entitlement", func(e *jx.Encoder) { EncodeEntitlement(e, s) })
	})
}
