// Package reports stores and loads analysis reports per user.
package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/career-insights/internal/store"
	"github.com/jonathan/career-insights/internal/types"
)

// Document kinds.
const (
	KindResumeReport    = "resume_report"
	KindInterviewReport = "interview_report"
)

// NotFoundError indicates no report is stored for the requested user or
// session.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("report not found: %s", e.Key)
}

// Unwrap lets errors.Is match store.ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return store.ErrNotFound
}

// InvalidIDError indicates a user or session identifier that cannot form a
// store key.
type InvalidIDError struct {
	Field  string
	Reason string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Repository reads and writes typed reports through a store.Store.
type Repository struct {
	store store.Store
}

// NewRepository creates a repository backed by s.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// ResumeKey is the store key of a user's latest resume report.
func ResumeKey(userID string) string {
	return "users/" + userID + "/resume"
}

// InterviewKey is the store key of one interview session report.
func InterviewKey(userID, sessionID string) string {
	return "users/" + userID + "/interviews/" + sessionID
}

func checkID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return &InvalidIDError{Field: field, Reason: "is required"}
	}
	if strings.Contains(id, "/") {
		return &InvalidIDError{Field: field, Reason: "must not contain '/'"}
	}
	return nil
}

// SaveResumeReport replaces the user's stored resume report.
func (r *Repository) SaveResumeReport(ctx context.Context, userID string, report *types.ResumeReport) error {
	if err := checkID("user id", userID); err != nil {
		return err
	}
	return r.put(ctx, ResumeKey(userID), KindResumeReport, report)
}

// GetResumeReport loads the user's latest resume report.
func (r *Repository) GetResumeReport(ctx context.Context, userID string) (*types.ResumeReport, error) {
	if err := checkID("user id", userID); err != nil {
		return nil, err
	}
	var report types.ResumeReport
	if err := r.get(ctx, ResumeKey(userID), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SaveInterviewReport stores a session report. A report without a session
// id is assigned a new one.
func (r *Repository) SaveInterviewReport(ctx context.Context, userID string, report *types.InterviewReport) error {
	if err := checkID("user id", userID); err != nil {
		return err
	}
	if report.SessionID == "" {
		report.SessionID = uuid.NewString()
	}
	if err := checkID("session id", report.SessionID); err != nil {
		return err
	}
	return r.put(ctx, InterviewKey(userID, report.SessionID), KindInterviewReport, report)
}

// GetInterviewReport loads one session report.
func (r *Repository) GetInterviewReport(ctx context.Context, userID, sessionID string) (*types.InterviewReport, error) {
	if err := checkID("user id", userID); err != nil {
		return nil, err
	}
	if err := checkID("session id", sessionID); err != nil {
		return nil, err
	}
	var report types.InterviewReport
	if err := r.get(ctx, InterviewKey(userID, sessionID), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *Repository) put(ctx context.Context, key, kind string, report any) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if err := r.store.Set(ctx, key, store.Document{Kind: kind, Payload: payload}); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

func (r *Repository) get(ctx context.Context, key string, out any) error {
	doc, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &NotFoundError{Key: key}
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(doc.Payload, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}
