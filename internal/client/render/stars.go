package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
)

const (
	FilledStar = "★"
	EmptyStar  = "☆"
	MaxStars   = 5
)

func clampStars(n int) int {
	return min(max(n, 0), MaxStars)
}

// Stars returns n filled stars followed by empty ones, five in total.
// n is clamped to [0, MaxStars].
func Stars(n int) string {
	n = clampStars(n)
	return strings.Repeat(FilledStar, n) + strings.Repeat(EmptyStar, MaxStars-n)
}

// RatingSummary is the aggregate shown above a place's reviews.
type RatingSummary struct {
	Count     int
	Average   float64
	Filled    int
	Empty     int
	Stars     string
	CountText string
}

// Summarize averages the ratings and rounds half up. An empty slice gives
// five empty stars and "(No reviews yet)".
func Summarize(reviews []models.Review) RatingSummary {
	s := RatingSummary{Count: len(reviews), CountText: CountText(len(reviews))}
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		s.Average = float64(total) / float64(len(reviews))
		s.Filled = clampStars(int(math.Floor(s.Average + 0.5)))
	}
	s.Empty = MaxStars - s.Filled
	s.Stars = Stars(s.Filled)
	return s
}

func CountText(n int) string {
	switch n {
	case 0:
		return "(No reviews yet)"
	case 1:
		return "(1 review)"
	default:
		return fmt.Sprintf("(%d reviews)", n)
	}
}
