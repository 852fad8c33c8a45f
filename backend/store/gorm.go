package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mentorpath/backend/models"
)

// GormStore implements Store on a GORM-managed Postgres database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) AppendVisit(ctx context.Context, userID, username string, event models.VisitEvent) error {
	event.UserID = userID

	// Read-modify-write on the cached totals under a row lock so
	// concurrent requests for the same user cannot lose updates.
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.UserProgressRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&record).Error
		isNew := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !isNew {
			return err
		}
		if isNew {
			record = models.UserProgressRecord{UserID: userID, Username: username}
		}

		if username != "" {
			record.Username = username
		}
		record.TotalTasksCompleted += event.TasksCompleted
		record.TotalCoursesCompleted += event.CoursesCompleted
		record.TotalVisits++
		ts := event.Timestamp
		record.LastVisit = &ts

		if isNew {
			err = tx.Create(&record).Error
		} else {
			err = tx.Save(&record).Error
		}
		if err != nil {
			return err
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return fmt.Errorf("%w: append visit: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *GormStore) GetRecord(ctx context.Context, userID string) (models.UserProgressRecord, error) {
	var record models.UserProgressRecord
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserProgressRecord{UserID: userID}, nil
	}
	if err != nil {
		return models.UserProgressRecord{}, fmt.Errorf("%w: get record: %v", ErrUnavailable, err)
	}
	return record, nil
}

func (s *GormStore) VisitsSince(ctx context.Context, userID string, since time.Time) ([]models.VisitEvent, error) {
	var visits []models.VisitEvent
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("id ASC").
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list visits: %v", ErrUnavailable, err)
	}
	return visits, nil
}

func (s *GormStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list courses: %v", ErrUnavailable, err)
	}
	return courses, nil
}

func (s *GormStore) CoursesByID(ctx context.Context, ids []string) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}

	var courses []models.Course
	err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("%w: resolve courses: %v", ErrUnavailable, err)
	}

	byID := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	ordered := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := byID[id]; ok {
			ordered = append(ordered, course)
		}
	}
	return ordered, nil
}

func (s *GormStore) SetSaved(ctx context.Context, userID, courseID string, saved bool) error {
	return s.toggle(ctx, &models.SavedCourse{UserID: userID, CourseID: courseID}, saved)
}

func (s *GormStore) SavedCourseIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.DB.WithContext(ctx).Model(&models.SavedCourse{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list saved: %v", ErrUnavailable, err)
	}
	return ids, nil
}

func (s *GormStore) SetCompleted(ctx context.Context, userID, courseID string, completed bool) error {
	return s.toggle(ctx, &models.CompletedCourse{UserID: userID, CourseID: courseID}, completed)
}

func (s *GormStore) CompletedCourseIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.DB.WithContext(ctx).Model(&models.CompletedCourse{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list completed: %v", ErrUnavailable, err)
	}
	return ids, nil
}

// toggle inserts or deletes a membership row. ON CONFLICT DO NOTHING makes
// repeated saves idempotent; deleting an absent row is a no-op already.
func (s *GormStore) toggle(ctx context.Context, row interface{}, member bool) error {
	var err error
	if member {
		err = s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
	} else {
		switch r := row.(type) {
		case *models.SavedCourse:
			err = s.DB.WithContext(ctx).
				Where("user_id = ? AND course_id = ?", r.UserID, r.CourseID).
				Delete(&models.SavedCourse{}).Error
		case *models.CompletedCourse:
			err = s.DB.WithContext(ctx).
				Where("user_id = ? AND course_id = ?", r.UserID, r.CourseID).
				Delete(&models.CompletedCourse{}).Error
		}
	}
	if err != nil {
		return fmt.Errorf("%w: toggle membership: %v", ErrUnavailable, err)
	}
	return nil
}

// SeedCatalog loads the default catalog on a fresh install so the matcher
// has data before any admin import runs.
func (s *GormStore) SeedCatalog(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Course{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: count courses: %v", ErrUnavailable, err)
	}
	if count > 0 {
		return nil
	}
	catalog := DefaultCatalog()
	if err := s.DB.WithContext(ctx).Create(&catalog).Error; err != nil {
		return fmt.Errorf("%w: seed catalog: %v", ErrUnavailable, err)
	}
	return nil
}
