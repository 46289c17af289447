package models

import "time"

// Credential is a persisted name/value pair with an expiry and a path scope,
// the terminal equivalent of a browser cookie.
type Credential struct {
	Name      string
	Value     string
	Path      string
	ExpiresAt time.Time
}

// Expired reports whether the credential is no longer usable at now.
func (c Credential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
