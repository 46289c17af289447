package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func newGateway() *session.Gateway {
	return session.NewGateway(session.NewMemoryStore(clock), session.WithClock(clock))
}

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	LoginRet string
	LoginErr error

	PlacesRet []models.Place
	PlacesErr error

	PlaceRet *models.Place
	PlaceErr error

	ReviewsRet []models.Review
	ReviewsErr error

	CreateRet *models.ReviewCreated
	CreateErr error

	Calls         []string
	LastHeaders   http.Header
	LastEmail     string
	LastPassword  string
	LastReviewReq models.ReviewRequest
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.Calls = append(f.Calls, "Login")
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListPlaces(_ context.Context, h http.Header) ([]models.Place, error) {
	f.Calls = append(f.Calls, "ListPlaces")
	f.LastHeaders = h
	return f.PlacesRet, f.PlacesErr
}

func (f *fakeClient) GetPlace(_ context.Context, h http.Header, _ string) (*models.Place, error) {
	f.Calls = append(f.Calls, "GetPlace")
	f.LastHeaders = h
	return f.PlaceRet, f.PlaceErr
}

func (f *fakeClient) ListPlaceReviews(_ context.Context, h http.Header, _ string) ([]models.Review, error) {
	f.Calls = append(f.Calls, "ListPlaceReviews")
	f.LastHeaders = h
	return f.ReviewsRet, f.ReviewsErr
}

func (f *fakeClient) CreateReview(_ context.Context, h http.Header, req models.ReviewRequest) (*models.ReviewCreated, error) {
	f.Calls = append(f.Calls, "CreateReview")
	f.LastHeaders = h
	f.LastReviewReq = req
	return f.CreateRet, f.CreateErr
}
