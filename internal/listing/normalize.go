package listing

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

var errNotWebURL = errors.New("only absolute http(s) URLs are accepted")

// NormalizeURL returns the canonical form of an image or profile link:
//   - surrounding whitespace is trimmed and a missing scheme becomes https
//   - only http and https with a host are accepted
//   - scheme and host are lower-cased and default ports dropped
//   - the path is cleaned and loses its trailing slash, except for "/"
//   - query parameters are sorted, the fragment is dropped
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	} else if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.User != nil {
		return "", errNotWebURL
	}

	if u.Path == "" {
		u.Path = "/"
	}
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
		}
	}
	if host == "" || strings.HasPrefix(host, ":") {
		return "", errNotWebURL
	}
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		u.RawQuery = q.Encode()
	}
	u.Fragment = ""

	return u.String(), nil
}

// NormalizeURLs normalizes every entry, dropping blanks and duplicates while
// keeping the original order.
func NormalizeURLs(raws []string) ([]string, error) {
	out := make([]string, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for i, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		u, err := NormalizeURL(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	return out, nil
}
