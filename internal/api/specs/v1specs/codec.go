// Package v1specs holds the wire format of the v1 API: JSON codecs for every
// request and response body, written against go-faster/jx.
package v1specs

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ErrEmptyBody is returned when a request body has no JSON value.
var ErrEmptyBody = errors.New("empty request body")

// Encode runs fn on a fresh encoder and returns the bytes written.
func Encode(fn func(e *jx.Encoder)) []byte {
	var e jx.Encoder
	fn(&e)

	return e.Bytes()
}

// DecodeObject decodes a JSON object, calling fn for every key.
func DecodeObject(data []byte, fn func(d *jx.Decoder, key string) error) error {
	d := jx.DecodeBytes(data)
	if d.Next() == jx.Invalid {
		return ErrEmptyBody
	}

	return d.Obj(fn) //nolint: wrapcheck
}

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, v := range values {
			e.Str(v)
		}
	})
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	values := []string{}
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Str()
		if err != nil {
			return err //nolint: wrapcheck
		}
		values = append(values, v)

		return nil
	})

	return values, err //nolint: wrapcheck
}

func decodeStringMap(d *jx.Decoder) (map[string]string, error) {
	values := map[string]string{}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		v, err := d.Str()
		if err != nil {
			return err //nolint: wrapcheck
		}
		values[key] = v

		return nil
	})

	return values, err //nolint: wrapcheck
}

// optStr reads a string that may be null.
func optStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null() //nolint: wrapcheck
	}

	return d.Str() //nolint: wrapcheck
}

func decodeUUID(d *jx.Decoder) (uuid.UUID, error) {
	v, err := d.Str()
	if err != nil {
		return uuid.Nil, err //nolint: wrapcheck
	}

	return uuid.Parse(v) //nolint: wrapcheck
}

// field wraps err with the name of the field being decoded.
func field(name string, err error) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, name)
}
