// Package http implements the daemon API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the status event stream. Request tracing, access logging,
// compression and actor attribution are handled in this package before
// requests are delegated to the service layer.
package http
