// Package common contains shared constants and small helpers used across
// shopkeep components.
package common

const (
	// TokenHeaderName is the HTTP header that carries the session token
	// on outbound requests. The backend expects exactly this name.
	TokenHeaderName = "x-token"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
