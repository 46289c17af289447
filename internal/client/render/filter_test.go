package render

import (
	"testing"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(cards []PlaceCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func TestFilterByPrice(t *testing.T) {
	cards := NewPlaceCards([]models.Place{
		{Title: "a", Price: 10},
		{Title: "b", Price: 50},
		{Title: "c", Price: 100},
	})

	tests := []struct {
		max  string
		want []string
	}{
		{"", []string{"a", "b", "c"}},
		{"10", []string{"a"}},
		{"50", []string{"a", "b"}},
		{"100", []string{"a", "b", "c"}},
		{"5", []string{}},
		{" 50 ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.max, func(t *testing.T) {
			got, err := FilterByPrice(cards, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterByPrice_Invalid(t *testing.T) {
	_, err := FilterByPrice(nil, "cheap")
	require.Error(t, err)
}

func TestPriceOptions(t *testing.T) {
	values := make([]string, 0, len(PriceOptions))
	for _, o := range PriceOptions {
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{"", "10", "50", "100"}, values)
}
