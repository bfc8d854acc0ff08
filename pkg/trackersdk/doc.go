// Package trackersdk is a Go client for the FitTrack API.
//
// Unauthenticated callers use SDKClient directly (login, health probes).
// Login returns a Session that attaches the bearer token to every request
// and exposes the role-gated endpoints.
package trackersdk
