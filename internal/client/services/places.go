package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hbnbclient/internal/client/client"
	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/client/session"
	"github.com/dmitrijs2005/hbnbclient/internal/logging"
)

// PlaceService loads listings and the reviews attached to them.
type PlaceService interface {
	// List fetches all listings sending AuthHeaders.
	List(ctx context.Context) ([]models.Place, error)
	// Get fetches one listing, authenticated only while the session is valid.
	Get(ctx context.Context, placeID string) (*models.Place, error)
	// Reviews fetches anonymously. On failure it returns an empty slice
	// together with the error.
	Reviews(ctx context.Context, placeID string) ([]models.Review, error)
}

type placeService struct {
	client  client.Client
	gateway *session.Gateway
	log     logging.Logger
}

func NewPlaceService(c client.Client, gw *session.Gateway, log logging.Logger) PlaceService {
	if log == nil {
		log = logging.Nop()
	}
	return &placeService{client: c, gateway: gw, log: log}
}

// expire clears the credential after a 401 and returns the error callers
// redirect on.
func expire(ctx context.Context, gw *session.Gateway, log logging.Logger, err error) error {
	if lerr := gw.Logout(ctx); lerr != nil {
		log.Error(ctx, "failed to clear credential after 401", "error", lerr)
	}
	return &Error{
		Kind:    KindUnauthorized,
		Message: MsgSessionExpired,
		Err:     fmt.Errorf("%w: %w", ErrSessionExpired, err),
	}
}

func (s *placeService) List(ctx context.Context) ([]models.Place, error) {
	places, err := s.client.ListPlaces(ctx, s.gateway.AuthHeaders(ctx))
	if err != nil {
		s.log.Error(ctx, "failed to fetch places", "status", client.StatusCode(err), "error", err)
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, expire(ctx, s.gateway, s.log, err)
		}
		kind := KindAPI
		if errors.Is(err, client.ErrUnavailable) {
			kind = KindNetwork
		}
		return nil, &Error{Kind: kind, Message: MsgPlacesUnavailable, Err: err}
	}

	s.log.Debug(ctx, "fetched places", "count", len(places))
	return places, nil
}

func (s *placeService) Get(ctx context.Context, placeID string) (*models.Place, error) {
	place, err := s.client.GetPlace(ctx, s.gateway.HeadersForSession(ctx), placeID)
	if err != nil {
		s.log.Error(ctx, "failed to fetch place details", "place_id", placeID, "status", client.StatusCode(err), "error", err)
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			return nil, expire(ctx, s.gateway, s.log, err)
		case errors.Is(err, client.ErrUnavailable):
			return nil, &Error{Kind: KindNetwork, Message: MsgPlaceUnavailable, Err: err}
		default:
			return nil, &Error{Kind: KindAPI, Message: MsgPlaceFailed, Err: err}
		}
	}
	return place, nil
}

func (s *placeService) Reviews(ctx context.Context, placeID string) ([]models.Review, error) {
	reviews, err := s.client.ListPlaceReviews(ctx, s.gateway.JSONHeaders(), placeID)
	if err != nil {
		s.log.Error(ctx, "failed to fetch reviews", "place_id", placeID, "status", client.StatusCode(err), "error", err)
		return []models.Review{}, err
	}

	s.log.Debug(ctx, "fetched reviews", "place_id", placeID, "count", len(reviews))
	return reviews, nil
}
