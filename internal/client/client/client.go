package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListPlaces(ctx context.Context, h http.Header) ([]models.Place, error)
	GetPlace(ctx context.Context, h http.Header, placeID string) (*models.Place, error)
	ListPlaceReviews(ctx context.Context, h http.Header, placeID string) ([]models.Review, error)
	CreateReview(ctx context.Context, h http.Header, req models.ReviewRequest) (*models.ReviewCreated, error)
}
