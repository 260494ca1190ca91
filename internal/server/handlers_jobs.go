package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/career-insights/internal/jobsearch"
	"github.com/jonathan/career-insights/internal/metrics"
	"github.com/jonathan/career-insights/internal/types"
)

// JobSearchResponse is the body of GET /jobs/search.
type JobSearchResponse struct {
	Query    string              `json:"query"`
	Location string              `json:"location,omitempty"`
	Page     int                 `json:"page"`
	Count    int                 `json:"count"`
	Postings []jobsearch.Posting `json:"postings"`
}

// handleSearchJobs proxies a query to the job postings API.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	if s.jobs == nil {
		s.writeError(w, &ErrUnavailable{Feature: "job search"})
		return
	}

	q := r.URL.Query()
	req := types.JobSearchRequest{
		Query:    strings.TrimSpace(q.Get("query")),
		Location: strings.TrimSpace(q.Get("location")),
		Page:     1,
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, &ErrValidation{Field: "page", Message: "must be an integer"})
			return
		}
		req.Page = page
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	postings, err := s.jobs.Search(r.Context(), req.Query, req.Location, req.Page)
	if err != nil {
		s.metrics.IncJobSearch(metrics.OutcomeError)
		s.writeError(w, err)
		return
	}
	s.metrics.IncJobSearch(metrics.OutcomeOK)

	s.jsonResponse(w, http.StatusOK, JobSearchResponse{
		Query:    req.Query,
		Location: req.Location,
		Page:     max(req.Page, 1),
		Count:    len(postings),
		Postings: postings,
	})
}
