package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Token errors (malformed or undecodable credential).
	ErrInvalidToken = errors.New("invalid token")
)
