// Package controller holds the HTTP middlewares shared by every API version.
//
//   - WithTracing opens a server span per request.
//   - WithLogger assigns the request ID, scopes the logger and writes the access log.
//   - WithCORS answers preflight requests for the configured origins.
//   - HTTPMetrics.Middleware observes latency per chi route pattern.
//
// PprofRouter exposes net/http/pprof for mounting under /debug/pprof.
package controller
