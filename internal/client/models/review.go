package models

// Review is an entry of GET /places/{id}/reviews/.
type Review struct {
	ID     string      `json:"id"`
	Rating int         `json:"rating"`
	Text   string      `json:"text"`
	UserID string      `json:"user_id,omitempty"`
	User   *ReviewUser `json:"user,omitempty"`
}

type ReviewUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ReviewRequest is the body of POST /reviews/.
type ReviewRequest struct {
	PlaceID string `json:"place_id"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// ReviewCreated is the 201 response of POST /reviews/.
type ReviewCreated struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}
