// Package credentials persists session credentials (cookie-like
// name/value pairs with a path scope and an expiry) in SQLite.
//
// Rows are keyed by (name, path). Expiry is stored as Unix seconds; the
// repository does not filter expired rows on read, callers decide what
// "expired" means via DeleteExpired or models.Credential.Expired.
//
// Errors are wrapped with an operation prefix, e.g.
// "failed to get credential[token]: ...". A missing row is reported as
// common.ErrorNotFound.
package credentials
