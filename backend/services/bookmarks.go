package services

import (
	"context"
	"fmt"

	"mentorpath/backend/models"
	"mentorpath/backend/store"
)

// Bookmarks toggles per-user saved and completed course sets. Every toggle
// is idempotent: repeating a call changes nothing.
type Bookmarks struct {
	Store store.Store
}

func NewBookmarks(st store.Store) *Bookmarks {
	return &Bookmarks{Store: st}
}

func (b *Bookmarks) SaveCourse(ctx context.Context, userID, courseID string, save bool) error {
	if userID == "" || courseID == "" {
		return fmt.Errorf("%w: userId and courseId are required", ErrValidation)
	}
	return b.Store.SetSaved(ctx, userID, courseID, save)
}

// SavedCourses resolves the saved set to full catalog entries, in the order
// the bookmarks were added.
func (b *Bookmarks) SavedCourses(ctx context.Context, userID string) ([]models.Course, error) {
	ids, err := b.Store.SavedCourseIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return b.Store.CoursesByID(ctx, ids)
}

func (b *Bookmarks) UpdateCourseProgress(ctx context.Context, userID, courseID string, completed bool) error {
	if userID == "" || courseID == "" {
		return fmt.Errorf("%w: userId and courseId are required", ErrValidation)
	}
	return b.Store.SetCompleted(ctx, userID, courseID, completed)
}

func (b *Bookmarks) CompletedCourses(ctx context.Context, userID string) ([]string, error) {
	return b.Store.CompletedCourseIDs(ctx, userID)
}
