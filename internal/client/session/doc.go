// Package session owns the client's authentication state.
//
// Three pieces compose into one authority:
//
//   - CredentialStore persists the raw bearer token in the local key/value
//     slot under common.TokenMetadataKey.
//   - Decode turns a token into Claims locally, without a network call and
//     without verifying the signature; the issuer is trusted.
//   - Manager answers "is there a valid session, and for whom" and performs
//     logout.
//
// Only the raw token string is persisted. A stored value that does not decode
// is treated exactly like a missing one and is cleared on the next check.
package session
