package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/hbnbclient/internal/client/client"
	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/client/session"
	"github.com/dmitrijs2005/hbnbclient/internal/logging"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MinReviewTextLen = 10
)

type ReviewService interface {
	// Submit validates the form and posts it with AuthHeaders.
	Submit(ctx context.Context, placeID string, rating int, text string) (*models.ReviewCreated, error)
}

type reviewService struct {
	client  client.Client
	gateway *session.Gateway
	log     logging.Logger
}

func NewReviewService(c client.Client, gw *session.Gateway, log logging.Logger) ReviewService {
	if log == nil {
		log = logging.Nop()
	}
	return &reviewService{client: c, gateway: gw, log: log}
}

// ValidateReview checks a review form without touching the network. It
// returns the trimmed text.
func ValidateReview(rating int, text string) (string, error) {
	if rating < MinRating || rating > MaxRating {
		return "", validationError(MsgInvalidRating)
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinReviewTextLen {
		return "", validationError(MsgReviewTooShort)
	}
	return text, nil
}

func (s *reviewService) Submit(ctx context.Context, placeID string, rating int, text string) (*models.ReviewCreated, error) {
	text, err := ValidateReview(rating, text)
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateReview(ctx, s.gateway.AuthHeaders(ctx), models.ReviewRequest{
		PlaceID: placeID,
		Rating:  rating,
		Text:    text,
	})
	if err != nil {
		s.log.Error(ctx, "review submission failed", "place_id", placeID, "status", client.StatusCode(err), "error", err)
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			return nil, expire(ctx, s.gateway, s.log, err)
		case errors.Is(err, client.ErrUnavailable):
			return nil, &Error{Kind: KindNetwork, Message: MsgNetworkError, Err: err}
		}
		msg := client.ServerMessage(err)
		if msg == "" {
			msg = MsgReviewFailed
		}
		return nil, &Error{Kind: KindAPI, Message: msg, Err: err}
	}

	s.log.Info(ctx, "review submitted", "place_id", placeID, "review_id", created.ID)
	return created, nil
}
