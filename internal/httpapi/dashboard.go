package httpapi

import "net/http"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	overview, err := s.dashboard.Overview(r.Context(), claims.UserID, s.now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
