package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"eventhorizon/internal/store"
	"eventhorizon/internal/toggle"
)

type engagementState struct {
	Active bool `json:"active"`
}

func (s *Server) handleToggleFollow(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	artistID, err := strconv.ParseInt(r.PathValue("artistID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	following, err := s.follows.Toggle(r.Context(), claims.UserID, artistID)
	if err != nil {
		switch {
		case errors.Is(err, toggle.ErrInFlight):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "follow change already in progress"})
		case errors.Is(err, store.ErrArtistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, engagementState{Active: following})
}

func (s *Server) handleFollowStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	artistID, err := strconv.ParseInt(r.PathValue("artistID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	following, err := s.follows.Status(r.Context(), claims.UserID, artistID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, engagementState{Active: following})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event ID"})
		return
	}

	favorited, err := s.favorites.Toggle(r.Context(), claims.UserID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, toggle.ErrInFlight):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "favorite change already in progress"})
		case errors.Is(err, store.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, engagementState{Active: favorited})
}

func (s *Server) handleFavoriteStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event ID"})
		return
	}

	favorited, err := s.favorites.Status(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, engagementState{Active: favorited})
}
