// Package common contains constants and helpers shared by the DevFeed client
// packages.
package common

const (
	// AuthorizationHeaderName carries the bearer access token.
	AuthorizationHeaderName = "Authorization"
	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// Metadata keys the session persists its credential pair under.
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)
