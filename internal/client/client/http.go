package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/common"
	"github.com/dmitrijs2005/hbnbclient/internal/logging"
	"github.com/dmitrijs2005/hbnbclient/internal/netx"
)

// DefaultBaseURL is where the HBnB API listens in development.
const DefaultBaseURL = "http://127.0.0.1:5001/api/v1"

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient validates baseURL and returns a client for it. A nil
// httpClient means a plain &http.Client{} with no timeout.
func NewHTTPClient(baseURL string, httpClient *http.Client, log logging.Logger) (*HTTPClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("base URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base URL scheme %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}, nil
}

func (c *HTTPClient) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// do sends the request and returns the response for 2xx statuses. Other
// statuses are drained into an *APIError.
func (c *HTTPClient) do(ctx context.Context, op, method, endpoint string, h http.Header, payload any) (*http.Response, error) {
	req, err := netx.NewJSONRequest(ctx, method, endpoint, h, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "op", op, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	if netx.IsSuccess(resp.StatusCode) {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{Op: op, Status: resp.StatusCode}
	var body models.ErrorResponse
	if err := netx.DecodeJSON(io.LimitReader(resp.Body, 1<<20), &body); err == nil {
		apiErr.Message = body.Error
	}

	c.log.Warn(ctx, "unexpected response status", "op", op, "status", resp.StatusCode, "message", apiErr.Message)
	return nil, apiErr
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	const op = "Login"

	h := http.Header{}
	h.Set(common.HeaderContentType, common.ContentTypeJSON)

	resp, err := c.do(ctx, op, http.MethodPost, c.endpoint("auth", "login"), h,
		models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body models.LoginResponse
	if err := netx.DecodeJSON(resp.Body, &body); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if body.AccessToken == "" {
		return "", &APIError{Op: op, Status: resp.StatusCode}
	}
	return body.AccessToken, nil
}

func (c *HTTPClient) ListPlaces(ctx context.Context, h http.Header) ([]models.Place, error) {
	const op = "ListPlaces"

	resp, err := c.do(ctx, op, http.MethodGet, c.endpoint("places")+"/", h, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	places := make([]models.Place, 0)
	if err := netx.DecodeJSON(resp.Body, &places); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return places, nil
}

func (c *HTTPClient) GetPlace(ctx context.Context, h http.Header, placeID string) (*models.Place, error) {
	const op = "GetPlace"

	resp, err := c.do(ctx, op, http.MethodGet, c.endpoint("places", placeID), h, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var place models.Place
	if err := netx.DecodeJSON(resp.Body, &place); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &place, nil
}

func (c *HTTPClient) ListPlaceReviews(ctx context.Context, h http.Header, placeID string) ([]models.Review, error) {
	const op = "ListPlaceReviews"

	resp, err := c.do(ctx, op, http.MethodGet, c.endpoint("places", placeID, "reviews")+"/", h, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	reviews := make([]models.Review, 0)
	if err := netx.DecodeJSON(resp.Body, &reviews); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, h http.Header, req models.ReviewRequest) (*models.ReviewCreated, error) {
	const op = "CreateReview"

	resp, err := c.do(ctx, op, http.MethodPost, c.endpoint("reviews")+"/", h, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created models.ReviewCreated
	if err := netx.DecodeJSON(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}
