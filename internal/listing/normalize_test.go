package listing_test

import (
	"testing"

	"estate/internal/listing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{"lowercase scheme and host, add root path", "HTTPS://Img.Example.COM", "https://img.example.com/", true},
		{"missing scheme becomes https", "cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg", true},
		{"protocol relative", "//cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg", true},
		{"drop default port", "http://example.com:80/a.png", "http://example.com/a.png", true},
		{"keep other ports", "https://example.com:8443/a.png", "https://example.com:8443/a.png", true},
		{"clean path", "https://example.com//a/./b/../c/", "https://example.com/a/c", true},
		{"sort query", "https://example.com/i?w=2&h=1&h=0", "https://example.com/i?h=0&h=1&w=2", true},
		{"drop fragment", "https://example.com/i#top", "https://example.com/i", true},
		{"trim spaces", "  https://example.com/x  ", "https://example.com/x", true},
		{"reject other schemes", "ftp://example.com/file", "", false},
		{"reject javascript", "javascript:alert(1)", "", false},
		{"reject credentials", "https://user:pw@example.com/", "", false},
		{"reject empty host", "https:///path", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := listing.NormalizeURL(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestNormalizeURLs(t *testing.T) {
	got, err := listing.NormalizeURLs([]string{
		"https://example.com/a.jpg",
		"",
		"HTTPS://EXAMPLE.COM/a.jpg",
		"example.com/b.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}, got)

	_, err = listing.NormalizeURLs([]string{"ftp://x.y/z"})
	require.Error(t, err)
}
