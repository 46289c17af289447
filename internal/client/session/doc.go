// Package session owns the client's stored credential and derives the
// authentication state from it.
//
// A Store keeps cookie-like credentials (name, value, path, expiry) and
// never returns expired ones. Two implementations exist: MemoryStore for a
// single run and SQLiteStore, which persists across runs.
//
// Gateway is the single owner of the bearer token. It answers whether the
// session is authenticated (by decoding the token's exp claim), decorates
// outgoing requests with headers, persists a fresh token after login and
// clears it on logout or on an HTTP 401 reported by a fetcher.
//
// State machine:
//
//	Unauthenticated --(valid token stored)--> Authenticated
//	Authenticated --(Logout | 401 | exp passed)--> Unauthenticated
package session
