// Package apitest runs an in-process fake of the HBnB REST API for tests.
//
// The fake keeps users, places and reviews in memory, issues real HS256
// JWTs on login and checks bearer tokens on protected routes. Any route can
// be forced to answer with a fixed status through Fail.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const secret = "apitest-secret"

// Request is what the fake saw for one call.
type Request struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
}

type user struct {
	id        string
	password  string
	firstName string
	lastName  string
}

type failure struct {
	status int
	body   string
}

type Server struct {
	*httptest.Server

	// TokenTTL is the lifetime of tokens issued by /auth/login.
	TokenTTL time.Duration

	mu       sync.Mutex
	users    map[string]user
	places   []models.Place
	reviews  map[string][]models.Review
	failures map[string]failure
	requests []Request
}

// New starts the fake and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		TokenTTL: time.Hour,
		users:    make(map[string]user),
		reviews:  make(map[string][]models.Review),
		failures: make(map[string]failure),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root, the equivalent of .../api/v1.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v1"
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record, s.injectFailures)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Get("/places/", s.handleListPlaces)
		r.Get("/places/{placeID}", s.handleGetPlace)
		r.Get("/places/{placeID}/reviews/", s.handleListReviews)
		r.Post("/reviews/", s.handleCreateReview)
	})
	return r
}

// AddUser registers credentials accepted by /auth/login.
func (s *Server) AddUser(email, password, firstName, lastName string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.users[email] = user{id: id, password: password, firstName: firstName, lastName: lastName}
	return id
}

// AddPlace stores p, assigning an id when it has none, and returns the id.
func (s *Server) AddPlace(p models.Place) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.places = append(s.places, p)
	return p.ID
}

// AddReview attaches r to a place.
func (s *Server) AddReview(placeID string, r models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.reviews[placeID] = append(s.reviews[placeID], r)
}

// Reviews returns the reviews currently stored for placeID.
func (s *Server) Reviews(placeID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Review(nil), s.reviews[placeID]...)
}

// Fail forces "METHOD /path" (path relative to the API root, e.g.
// "GET /places/") to answer with status and body.
func (s *Server) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[route] = failure{status: status, body: body}
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// IssueToken mints a token the fake accepts, expiring at exp.
func (s *Server) IssueToken(userID string, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return signed
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api/v1")

		s.mu.Lock()
		f, ok := s.failures[key]
		s.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// subject validates the bearer token and returns its subject.
func (s *Server) subject(r *http.Request) (string, bool) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}
	return claims.Subject, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
