// Package models defines the records exchanged with the HBnB API and the
// locally stored credential.
package models

// Place is a rentable listing as returned by GET /places/ and
// GET /places/{id}. Records are passed through to rendering unmodified.
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Owner       *Owner    `json:"owner,omitempty"`
	Amenities   []Amenity `json:"amenities,omitempty"`
}

type Owner struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Amenity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
