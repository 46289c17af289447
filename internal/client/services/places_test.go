package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/apitest"
	"github.com/dmitrijs2005/hbnbclient/internal/client/client"
	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceList_SendsAuthHeaders(t *testing.T) {
	ctx := context.Background()
	gw := newGateway()
	token := mintToken(t, fixedNow.Add(time.Hour))
	require.NoError(t, gw.Persist(ctx, token))

	fc := &fakeClient{PlacesRet: []models.Place{{ID: "p1"}}}
	places, err := NewPlaceService(fc, gw, nil).List(ctx)

	require.NoError(t, err)
	assert.Len(t, places, 1)
	assert.Equal(t, "Bearer "+token, fc.LastHeaders.Get("Authorization"))
	assert.Equal(t, "application/json", fc.LastHeaders.Get("Content-Type"))
}

func TestPlaceList_UnauthorizedClearsCredential(t *testing.T) {
	ctx := context.Background()
	gw := newGateway()
	require.NoError(t, gw.Persist(ctx, mintToken(t, fixedNow.Add(time.Hour))))

	fc := &fakeClient{PlacesErr: &client.APIError{Op: "ListPlaces", Status: http.StatusUnauthorized}}
	_, err := NewPlaceService(fc, gw, nil).List(ctx)

	require.ErrorIs(t, err, ErrSessionExpired)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Empty(t, gw.Token(ctx))
	assert.Equal(t, session.StateUnauthenticated, gw.State(ctx))
}

func TestPlaceList_OtherFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
	}{
		{"transport", fmt.Errorf("x: %w", client.ErrUnavailable), KindNetwork},
		{"server", &client.APIError{Status: 500}, KindAPI},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			gw := newGateway()
			token := mintToken(t, fixedNow.Add(time.Hour))
			require.NoError(t, gw.Persist(ctx, token))

			_, err := NewPlaceService(&fakeClient{PlacesErr: tc.err}, gw, nil).List(ctx)
			assert.Equal(t, tc.kind, KindOf(err))
			assert.Equal(t, MsgPlacesUnavailable, MessageOf(err))
			assert.Equal(t, token, gw.Token(ctx), "credential survives non-401 failures")
		})
	}
}

func TestPlaceGet_HeadersFollowSessionValidity(t *testing.T) {
	ctx := context.Background()

	t.Run("valid session", func(t *testing.T) {
		gw := newGateway()
		require.NoError(t, gw.Persist(ctx, mintToken(t, fixedNow.Add(time.Hour))))
		fc := &fakeClient{PlaceRet: &models.Place{ID: "p1"}}

		_, err := NewPlaceService(fc, gw, nil).Get(ctx, "p1")
		require.NoError(t, err)
		assert.NotEmpty(t, fc.LastHeaders.Get("Authorization"))
	})

	t.Run("expired token stored", func(t *testing.T) {
		gw := newGateway()
		require.NoError(t, gw.Persist(ctx, mintToken(t, fixedNow.Add(-time.Minute))))
		fc := &fakeClient{PlaceRet: &models.Place{ID: "p1"}}

		_, err := NewPlaceService(fc, gw, nil).Get(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, fc.LastHeaders.Get("Authorization"))
		assert.Equal(t, "application/json", fc.LastHeaders.Get("Content-Type"))
	})
}

func TestPlaceGet_Failures(t *testing.T) {
	ctx := context.Background()

	notFound := &client.APIError{Op: "GetPlace", Status: http.StatusNotFound, Message: "Place not found"}
	_, err := NewPlaceService(&fakeClient{PlaceErr: notFound}, newGateway(), nil).Get(ctx, "x")
	assert.Equal(t, MsgPlaceFailed, MessageOf(err))
	assert.ErrorIs(t, err, client.ErrNotFound)

	_, err = NewPlaceService(&fakeClient{PlaceErr: client.ErrUnavailable}, newGateway(), nil).Get(ctx, "x")
	assert.Equal(t, MsgPlaceUnavailable, MessageOf(err))
	assert.Equal(t, KindNetwork, KindOf(err))

	gw := newGateway()
	require.NoError(t, gw.Persist(ctx, mintToken(t, fixedNow.Add(time.Hour))))
	_, err = NewPlaceService(&fakeClient{PlaceErr: &client.APIError{Status: 401}}, gw, nil).Get(ctx, "x")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, gw.Token(ctx))
}

func TestPlaceReviews(t *testing.T) {
	ctx := context.Background()
	gw := newGateway()
	require.NoError(t, gw.Persist(ctx, mintToken(t, fixedNow.Add(time.Hour))))

	fc := &fakeClient{ReviewsRet: []models.Review{{Rating: 5}}}
	reviews, err := NewPlaceService(fc, gw, nil).Reviews(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Empty(t, fc.LastHeaders.Get("Authorization"), "reviews are fetched anonymously")

	fc = &fakeClient{ReviewsErr: errors.New("boom")}
	reviews, err = NewPlaceService(fc, gw, nil).Reviews(ctx, "p1")
	require.Error(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestPlaceList_ExpiredTokenAgainstAPI(t *testing.T) {
	api := apitest.New(t)
	api.AddPlace(models.Place{Title: "Loft"})
	c, err := client.NewHTTPClient(api.BaseURL(), nil, nil)
	require.NoError(t, err)

	ctx := context.Background()
	gw := session.NewGateway(session.NewMemoryStore(nil))
	require.NoError(t, gw.Persist(ctx, api.IssueToken("u1", time.Now().Add(-time.Minute))))

	_, err = NewPlaceService(c, gw, nil).List(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, gw.Token(ctx))

	places, err := NewPlaceService(c, gw, nil).List(ctx)
	require.NoError(t, err)
	assert.Len(t, places, 1)
}
