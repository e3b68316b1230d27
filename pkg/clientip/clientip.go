package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders is the lookup order used by GetIP: Cloudflare, DigitalOcean
// App Platform, the first valid X-Forwarded-For entry, then X-Real-IP.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client address from a request. Only the configured
// headers are trusted; RemoteAddr is the fallback.
type Resolver struct {
	headers []string
}

// NewResolver trusts headers in the given order. With no headers only
// RemoteAddr is used, which is the right choice when the server is not behind
// a proxy that overwrites them.
func NewResolver(headers ...string) *Resolver {
	hs := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			hs = append(hs, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: hs}
}

// IP returns the normalized client IP, or "" if none could be parsed.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For can carry a chain; take the first valid entry.
		for candidate := range strings.SplitSeq(v, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP resolves the client IP using DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
