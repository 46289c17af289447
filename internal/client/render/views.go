package render

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
)

// FormatPrice prints a price the way the API sent it: 100, not 100.00.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

type PlaceCard struct {
	ID          string
	Title       string
	Price       float64
	Description string
}

func NewPlaceCard(p models.Place) PlaceCard {
	return PlaceCard{ID: p.ID, Title: p.Title, Price: p.Price, Description: p.Description}
}

func NewPlaceCards(places []models.Place) []PlaceCard {
	cards := make([]PlaceCard, 0, len(places))
	for _, p := range places {
		cards = append(cards, NewPlaceCard(p))
	}
	return cards
}

type AmenityView struct {
	Icon string
	Name string
}

type PlaceDetail struct {
	ID          string
	Title       string
	Host        string
	Price       string
	Description string
	Latitude    float64
	Longitude   float64
	Amenities   []AmenityView
}

// NewPlaceDetail builds the detail view. A zero price is shown as "0" and a
// missing owner leaves Host empty.
func NewPlaceDetail(p models.Place) PlaceDetail {
	d := PlaceDetail{
		ID:          p.ID,
		Title:       p.Title,
		Price:       "0",
		Description: p.Description,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}
	if p.Price != 0 {
		d.Price = FormatPrice(p.Price)
	}
	if p.Owner != nil {
		d.Host = strings.TrimSpace(p.Owner.FirstName + " " + p.Owner.LastName)
	}
	for _, a := range p.Amenities {
		d.Amenities = append(d.Amenities, AmenityView{Icon: AmenityIcon(a.Name), Name: a.Name})
	}
	return d
}

type ReviewCard struct {
	ID     string
	Author string
	Stars  string
	Text   string
}

func NewReviewCard(r models.Review) ReviewCard {
	return ReviewCard{ID: r.ID, Author: AuthorName(r), Stars: Stars(r.Rating), Text: r.Text}
}

func NewReviewCards(reviews []models.Review) []ReviewCard {
	cards := make([]ReviewCard, 0, len(reviews))
	for _, r := range reviews {
		cards = append(cards, NewReviewCard(r))
	}
	return cards
}

// AuthorName prefers the embedded user's full name, then the first eight
// characters of user_id, then "Unknown".
func AuthorName(r models.Review) string {
	if r.User != nil {
		if name := strings.TrimSpace(r.User.FirstName + " " + r.User.LastName); name != "" {
			return name
		}
	}
	if r.UserID == "" {
		return "User Unknown"
	}
	id := []rune(r.UserID)
	if len(id) > 8 {
		id = id[:8]
	}
	return "User " + string(id)
}
