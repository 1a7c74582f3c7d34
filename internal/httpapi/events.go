package httpapi

import (
	"errors"
	"net/http"

	"eventhorizon/internal/directory"
	"eventhorizon/internal/store"
)

func (s *Server) handleEventDirectory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := directory.EventFilter{
		Search: query.Get("q"),
		Type:   query.Get("type"),
	}
	if tags, ok := query["tag"]; ok {
		filter.ActiveTags = tags
	}

	events, err := s.events.Directory(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	event, err := s.events.BySlug(r.Context(), slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrEventNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, event)
}
