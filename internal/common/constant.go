// Package common contains shared constants and helpers used across
// netflex client components.
package common

// TokenMetadataKey is the fixed key of the persistent slot holding the
// session credential.
const TokenMetadataKey = "token"

// HTTP header names attached to outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
