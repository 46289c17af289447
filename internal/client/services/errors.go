package services

import (
	"errors"
	"fmt"
)

// User-facing messages.
const (
	MsgMissingCredentials = "Please enter both email and password."
	MsgLoginFailed        = "Login failed"
	MsgNetworkError       = "Network error. Please try again."
	MsgUnexpected         = "An unexpected error occurred. Please try again."
	MsgSessionExpired     = "Your session has expired. Please log in again."

	MsgPlacesUnavailable = "Failed to load places. Please try again later."
	MsgPlaceFailed       = "Failed to load place details. Please try again."
	MsgPlaceUnavailable  = "Failed to load place details. Please try again later."

	MsgInvalidRating   = "Please select a rating between 1 and 5 stars."
	MsgReviewTooShort  = "Please write a review with at least 10 characters."
	MsgReviewFailed    = "Failed to submit review"
	MsgReviewSubmitted = "Thank you! Your review has been submitted successfully."
)

// ErrSessionExpired is wrapped by every error produced after the API
// answered 401 and the stored credential was cleared.
var ErrSessionExpired = errors.New("session expired")

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAPI
	KindNetwork
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error carries the message shown to the user next to the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// MessageOf returns the user-facing text of err. Errors that did not come
// from this package get MsgUnexpected.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return MsgUnexpected
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
