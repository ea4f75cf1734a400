package listing

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"estate/pkg/domain"
	"estate/pkg/storage"
)

var errBadCursor = errors.New("malformed cursor")

// EncodeCursor turns a keyset position into an opaque token.
func EncodeCursor(c *storage.PropertyCursor) string {
	if c == nil {
		return ""
	}
	raw := strconv.FormatInt(c.CreatedAt.UnixMicro(), 10) + "|" + c.ID.String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor. An empty token means
// the first page.
func DecodeCursor(token string) (*storage.PropertyCursor, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errBadCursor
	}
	micros, rawID, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, errBadCursor
	}
	us, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return nil, errBadCursor
	}
	id, err := domain.ParsePropertyID(rawID)
	if err != nil {
		return nil, errBadCursor
	}

	return &storage.PropertyCursor{CreatedAt: time.UnixMicro(us).UTC(), ID: id}, nil
}
