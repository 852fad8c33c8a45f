// Package store abstracts persistence for the analytics & matching core so
// handlers and services never touch storage directly. The production
// implementation sits on GORM/Postgres; tests use the in-memory one.
package store

import (
	"context"
	"errors"
	"time"

	"mentorpath/backend/models"
)

// ErrUnavailable wraps failures of the backing store. Callers treat it as
// retryable.
var ErrUnavailable = errors.New("storage unavailable")

// ProgressStore owns user progress records and their visit events.
//
// AppendVisit must be atomic per user: concurrent appends for the same
// userId may not lose updates on the running totals.
type ProgressStore interface {
	// AppendVisit creates the record on first visit, appends the event and
	// folds its deltas into the cached totals.
	AppendVisit(ctx context.Context, userID, username string, event models.VisitEvent) error

	// GetRecord returns the user's record, or a synthesized zero-valued
	// record when none exists. Missing users are not an error.
	GetRecord(ctx context.Context, userID string) (models.UserProgressRecord, error)

	// VisitsSince returns the user's visit events with Timestamp >= since,
	// in recording order.
	VisitsSince(ctx context.Context, userID string, since time.Time) ([]models.VisitEvent, error)
}

// CatalogStore reads the immutable course catalog.
type CatalogStore interface {
	// ListCourses returns the full catalog in stable catalog order.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// CoursesByID resolves ids to courses, preserving the order of ids.
	// Unknown ids are skipped, not an error.
	CoursesByID(ctx context.Context, ids []string) ([]models.Course, error)
}

// BookmarkStore owns the per-user saved and completed id-sets. All writes
// are idempotent toggles.
type BookmarkStore interface {
	SetSaved(ctx context.Context, userID, courseID string, saved bool) error
	SavedCourseIDs(ctx context.Context, userID string) ([]string, error)

	SetCompleted(ctx context.Context, userID, courseID string, completed bool) error
	CompletedCourseIDs(ctx context.Context, userID string) ([]string, error)
}

// Store is the full persistence surface the services are wired with.
type Store interface {
	ProgressStore
	CatalogStore
	BookmarkStore
}
