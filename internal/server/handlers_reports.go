package server

import (
	"net/http"
)

// handleGetResumeReport returns the user's latest stored resume report.
func (s *Server) handleGetResumeReport(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if err := s.authorize(r, userID); err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.reports.GetResumeReport(r.Context(), userID)
	s.metrics.IncStoreOperation("get", outcomeOf(err))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleGetInterviewReport returns one stored interview session report.
func (s *Server) handleGetInterviewReport(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if err := s.authorize(r, userID); err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.reports.GetInterviewReport(r.Context(), userID, r.PathValue("session_id"))
	s.metrics.IncStoreOperation("get", outcomeOf(err))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
