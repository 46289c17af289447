// Package common contains constants and sentinel errors shared by the
// client packages.
package common

const (
	// TokenCookieName is the name under which the bearer token is stored.
	TokenCookieName = "token"

	// CookieRootPath scopes the stored token to the whole site.
	CookieRootPath = "/"

	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "
)
