package apitest

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	s.mu.Lock()
	u, ok := s.users[req.Email]
	ttl := s.TokenTTL
	s.mu.Unlock()

	if !ok || u.password != req.Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: s.IssueToken(u.id, time.Now().Add(ttl))})
}

func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "" {
		if _, ok := s.subject(r); !ok {
			writeError(w, http.StatusUnauthorized, "Token has expired")
			return
		}
	}

	s.mu.Lock()
	places := append([]models.Place{}, s.places...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, places)
}

func (s *Server) findPlace(id string) (models.Place, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.places {
		if p.ID == id {
			return p, true
		}
	}
	return models.Place{}, false
}

func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	p, ok := s.findPlace(chi.URLParam(r, "placeID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Place not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeID")
	if _, ok := s.findPlace(placeID); !ok {
		writeError(w, http.StatusNotFound, "Place not found")
		return
	}
	writeJSON(w, http.StatusOK, append([]models.Review{}, s.Reviews(placeID)...))
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.subject(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlaceID == "" || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Invalid input data - required attributes missing")
		return
	}
	if _, ok := s.findPlace(req.PlaceID); !ok {
		writeError(w, http.StatusBadRequest, "Invalid input data - place does not exist")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Setter validation failure: rating must be between 1 and 5")
		return
	}

	for _, existing := range s.Reviews(req.PlaceID) {
		if existing.UserID == userID {
			writeError(w, http.StatusBadRequest, "You have already reviewed this place.")
			return
		}
	}

	review := models.Review{ID: uuid.NewString(), Rating: req.Rating, Text: req.Text, UserID: userID}
	s.mu.Lock()
	for _, u := range s.users {
		if u.id == userID {
			review.User = &models.ReviewUser{FirstName: u.firstName, LastName: u.lastName}
		}
	}
	s.mu.Unlock()
	s.AddReview(req.PlaceID, review)

	writeJSON(w, http.StatusCreated, models.ReviewCreated{ID: review.ID, Message: "Review created successfully"})
}
