// Package client provides a Go client for the Homebox inventory API.
//
// The client holds a single bearer token obtained either from a static
// configuration value or a credentials login, attaches it to every
// request, and transparently re-authenticates once when the remote
// reports the token expired. It exposes one method per remote resource
// action: locations, items, and labels CRUD plus aggregate statistics.
//
// Identifiers are opaque strings minted by the remote service; the
// client never generates IDs, caches records, or retries beyond the
// single 401-triggered re-login.
package client
