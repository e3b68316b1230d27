// Package clientip resolves the originating client address of an HTTP request.
//
// A Resolver checks a trusted list of proxy headers in order and falls back to
// RemoteAddr. GetIP and Middleware use DefaultHeaders; deployments that are
// not behind a header-rewriting proxy should build a Resolver with no headers
// so clients cannot spoof their address:
//
//	r.Use(clientip.MiddlewareWith(clientip.NewResolver()))
//
//	ip := clientip.GetIPFromContext(req.Context())
//
// The rate limiter keys booking submissions by this address.
package clientip
