package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventhorizon/internal/directory"
	"eventhorizon/internal/store"
)

func (s *Server) handleArtistDirectory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := directory.ArtistFilter{Search: query.Get("q")}
	if label := query.Get("type"); label != "" {
		filter = filter.WithType(label)
	}
	if genre := query.Get("genre"); genre != "" {
		filter.Genre = genre
	}

	page, err := s.artists.Directory(r.Context(), filter, s.now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	artist, err := s.artists.BySlug(r.Context(), slug, s.now())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrArtistNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleArtistReviews(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	artistID, err := s.artists.IDBySlug(r.Context(), slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrArtistNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	reviews, err := s.reviews.ByArtist(r.Context(), artistID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

type createReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	slug := r.PathValue("slug")

	artistID, err := s.artists.IDBySlug(r.Context(), slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrArtistNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	review, err := s.reviews.Create(r.Context(), claims.UserID, claims.DisplayName, artistID, req.Rating, req.Review)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrInvalidReview) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
