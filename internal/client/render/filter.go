package render

import (
	"fmt"
	"strconv"
	"strings"
)

// PriceOption is one entry of the price selector.
type PriceOption struct {
	Value string
	Label string
}

// PriceOptions are the selector values offered on the listings page. The
// empty value means no filter.
var PriceOptions = []PriceOption{
	{Value: "", Label: "All"},
	{Value: "10", Label: "Under $10"},
	{Value: "50", Label: "Under $50"},
	{Value: "100", Label: "Under $100"},
}

// ParseMaxPrice parses a selector value. ok is false for the empty value.
func ParseMaxPrice(v string) (limit float64, ok bool, err error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false, nil
	}
	limit, err = strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid price filter %q", v)
	}
	return limit, true, nil
}

// FilterByPrice keeps the cards whose price is <= maxPrice, in their
// original order. An empty maxPrice keeps every card.
func FilterByPrice(cards []PlaceCard, maxPrice string) ([]PlaceCard, error) {
	limit, ok, err := ParseMaxPrice(maxPrice)
	if err != nil {
		return nil, err
	}
	visible := make([]PlaceCard, 0, len(cards))
	for _, c := range cards {
		if !ok || c.Price <= limit {
			visible = append(visible, c)
		}
	}
	return visible, nil
}
