package sessionstore

import (
	"time"

	"estate/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// Encode serializes a session to JSON.
func Encode(s domain.Session) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("userId", func(e *jx.Encoder) { e.Str(s.UserID.String()) })
		e.Field("authenticated", func(e *jx.Encoder) { e.Bool(s.Authenticated) })
		e.Field("role", func(e *jx.Encoder) { e.Str(string(s.Role)) })
		e.Field("premium", func(e *jx.Encoder) { e.Bool(s.Premium) })
		e.Field("listingCount", func(e *jx.Encoder) { e.Int(s.ListingCount) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(s.CreatedAt.UTC().Format(time.RFC3339Nano)) })
	})

	return e.Bytes()
}

// Decode parses a session written by Encode. Unknown fields are ignored.
func Decode(data []byte) (domain.Session, error) {
	var s domain.Session
	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			id, err := decodeUUID(d)
			if err != nil {
				return errors.Wrap(err, "id")
			}
			s.ID = domain.SessionID(id)
		case "userId":
			id, err := decodeUUID(d)
			if err != nil {
				return errors.Wrap(err, "userId")
			}
			s.UserID = domain.UserID(id)
		case "authenticated":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "authenticated")
			}
			s.Authenticated = v
		case "role":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "role")
			}
			s.Role = domain.ParseRole(v)
		case "premium":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "premium")
			}
			s.Premium = v
		case "listingCount":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "listingCount")
			}
			s.ListingCount = v
		case "createdAt":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "createdAt")
			}
			t, err := time.Parse(time.RFC3339Nano, v)
			if err != nil {
				return errors.Wrap(err, "createdAt")
			}
			s.CreatedAt = t
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return domain.Session{}, errors.Wrap(err, "decode session")
	}
	if s.ID.IsZero() {
		return domain.Session{}, errors.New("decode session: missing id")
	}

	return s, nil
}

func decodeUUID(d *jx.Decoder) (uuid.UUID, error) {
	v, err := d.Str()
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(v) //nolint: wrapcheck
}
