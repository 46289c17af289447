package render

import (
	"fmt"
	"io"
	"strings"
)

const rule = "----------------------------------------"

// Navigation prints the header bar. Logged-in users see logout instead of
// login.
func Navigation(w io.Writer, authenticated bool) {
	if authenticated {
		fmt.Fprintln(w, "HBnB | places | logout")
	} else {
		fmt.Fprintln(w, "HBnB | places | login")
	}
	fmt.Fprintln(w, rule)
}

// PlaceCards prints the visible cards, or a notice when there are none.
func PlaceCards(w io.Writer, cards []PlaceCard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No places available at the moment.")
		return
	}
	for _, c := range cards {
		fmt.Fprintf(w, "%s\n  $%s per night\n", c.Title, FormatPrice(c.Price))
		if c.Description != "" {
			fmt.Fprintf(w, "  %s\n", c.Description)
		}
		fmt.Fprintf(w, "  View Details: place %s\n\n", c.ID)
	}
}

// PriceFilter prints the selector with the current value marked.
func PriceFilter(w io.Writer, current string) {
	labels := make([]string, 0, len(PriceOptions))
	for _, o := range PriceOptions {
		l := o.Label
		if o.Value == strings.TrimSpace(current) {
			l = "[" + l + "]"
		}
		labels = append(labels, l)
	}
	fmt.Fprintf(w, "Max price: %s\n", strings.Join(labels, "  "))
}

func PlaceDetailView(w io.Writer, d PlaceDetail) {
	fmt.Fprintln(w, d.Title)
	if d.Host != "" {
		fmt.Fprintf(w, "Host: %s\n", d.Host)
	}
	fmt.Fprintf(w, "Price: $%s per night\n", d.Price)
	if d.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", d.Description)
	}
	fmt.Fprintf(w, "Location: %g, %g\n", d.Latitude, d.Longitude)
	if len(d.Amenities) > 0 {
		fmt.Fprintln(w, "Amenities:")
		for _, a := range d.Amenities {
			fmt.Fprintf(w, "  %s %s\n", a.Icon, a.Name)
		}
	}
}

// Reviews prints the rating summary followed by one block per review.
func Reviews(w io.Writer, s RatingSummary, cards []ReviewCard) {
	fmt.Fprintf(w, "Rating: %s %s\n", s.Stars, s.CountText)
	if len(cards) == 0 {
		fmt.Fprintln(w, "No reviews yet. Be the first to review this place!")
		return
	}
	for _, c := range cards {
		fmt.Fprintf(w, "\n%s  %s\n  %s\n  Review ID: %s\n", c.Author, c.Stars, c.Text, c.ID)
	}
}

func Error(w io.Writer, msg string) {
	fmt.Fprintf(w, "Error: %s\n", msg)
}

func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// RatingPreview shows the stars for a chosen rating. Out-of-range values
// print nothing.
func RatingPreview(w io.Writer, rating int) {
	if rating < 1 || rating > MaxStars {
		return
	}
	fmt.Fprintf(w, "Your rating: %s\n", Stars(rating))
}
