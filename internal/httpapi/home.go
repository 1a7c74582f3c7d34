package httpapi

import (
	"net/http"

	"eventhorizon/shared/go/models"
)

const (
	featuredEventLimit = 6
	spotlightLimit     = 4
	latestReviewLimit  = 5
)

type homeResponse struct {
	FeaturedEvents []models.Event  `json:"featured_events"`
	Spotlight      []models.Artist `json:"spotlight"`
	LatestReviews  []models.Review `json:"latest_reviews"`
}

// handleHome assembles the landing page payload: starred events, a random
// artist spotlight, and the most recent reviews.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	featured, err := s.events.Featured(r.Context(), featuredEventLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	spotlight, err := s.artists.Random(r.Context(), spotlightLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	latest, err := s.reviews.Latest(r.Context(), latestReviewLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, homeResponse{
		FeaturedEvents: featured,
		Spotlight:      spotlight,
		LatestReviews:  latest,
	})
}
