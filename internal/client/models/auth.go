package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the body the API sends with non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
