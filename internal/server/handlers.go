package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-insights/internal/ingestion"
	"github.com/jonathan/career-insights/internal/interview"
	"github.com/jonathan/career-insights/internal/metrics"
	"github.com/jonathan/career-insights/internal/store"
	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// decodeJSON decodes the request body into v. Oversized bodies keep their
// *http.MaxBytesError; anything else becomes an *ErrValidation.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return nil
}

// extractValidationErrors renders the first validator failure.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

// handleAnalyzeResume scores resume text from a JSON body.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.analyzeResume(w, r, &req)
}

// handleAnalyzeResumeUpload extracts text from an uploaded file and scores it.
func (s *Server) handleAnalyzeResumeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxInputBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, err)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "file", Message: "required"})
		return
	}
	defer file.Close() //nolint:errcheck // read-only

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	doc, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	log.Printf("[server] Extracted %d words from %s (%s)", doc.Metadata.WordCount, header.Filename, doc.Metadata.Format)

	req := types.AnalyzeResumeRequest{
		Text:   doc.Text,
		UserID: r.FormValue("user_id"),
	}
	if raw := r.FormValue("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, &ErrValidation{Field: "seed", Message: "must be an integer"})
			return
		}
		req.Seed = &seed
	}
	s.analyzeResume(w, r, &req)
}

// analyzeResume validates, scores, persists and writes a resume report.
func (s *Server) analyzeResume(w http.ResponseWriter, r *http.Request, req *types.AnalyzeResumeRequest) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if err := s.authorize(r, req.UserID); err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.resume.WithSeed(req.Seed).ScoreResume(req.Text)
	if err != nil {
		outcome := metrics.OutcomeError
		var empty *textanalysis.EmptyInputError
		if errors.As(err, &empty) {
			outcome = metrics.OutcomeEmpty
		}
		s.metrics.ObserveAnalysis(metrics.ModeResume, outcome, time.Since(start))
		s.writeError(w, err)
		return
	}

	if req.UserID != "" {
		err := s.reports.SaveResumeReport(r.Context(), req.UserID, report)
		s.metrics.IncStoreOperation("set", outcomeOf(err))
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	s.metrics.ObserveAnalysis(metrics.ModeResume, metrics.OutcomeOK, time.Since(start))
	s.metrics.ObserveScores(metrics.ModeResume, map[string]int{
		"ats":     report.ATSScore,
		"format":  report.FormatScore,
		"content": report.ContentScore,
		"keyword": report.KeywordScore,
	})
	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeInterview scores a mock-interview transcript. Blank
// transcripts still succeed with a zero report; malformed prompt lists are
// logged and ignored.
func (s *Server) handleAnalyzeInterview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req types.AnalyzeInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if err := s.authorize(r, req.UserID); err != nil {
		s.writeError(w, err)
		return
	}

	prompts, err := textanalysis.DecodePrompts(req.Prompts)
	if err != nil {
		log.Printf("[server] Warning: %v; scoring without prompts", err)
		prompts = nil
	}

	report := s.interview.ScoreInterview(req.Transcript, prompts)
	report.SessionID = req.SessionID

	if req.UserID != "" {
		err := s.reports.SaveInterviewReport(r.Context(), req.UserID, report)
		s.metrics.IncStoreOperation("set", outcomeOf(err))
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	outcome := metrics.OutcomeOK
	if report.Feedback == interview.NoSpeechMessage {
		outcome = metrics.OutcomeEmpty
	} else {
		s.metrics.ObserveScores(metrics.ModeInterview, map[string]int{
			"communication": report.Communication,
			"confidence":    report.Confidence,
			"content":       report.Content,
			"delivery":      report.Delivery,
			"overall":       report.OverallScore,
		})
	}
	s.metrics.ObserveAnalysis(metrics.ModeInterview, outcome, time.Since(start))
	s.jsonResponse(w, http.StatusOK, report)
}

// outcomeOf labels a store call result.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, store.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
