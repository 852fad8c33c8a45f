package store

import (
	"context"
	"sync"
	"time"

	"mentorpath/backend/models"
)

// MemoryStore is the in-process Store used by tests and by local runs
// without a database. Per-user locking mirrors the row lock the Postgres
// implementation takes, so totals stay exact under concurrent appends.
type MemoryStore struct {
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex

	recordsMu sync.RWMutex
	records   map[string]*models.UserProgressRecord
	visits    map[string][]models.VisitEvent

	catalogMu sync.RWMutex
	catalog   []models.Course

	setsMu    sync.Mutex
	saved     map[string][]string
	completed map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		userLocks: make(map[string]*sync.Mutex),
		records:   make(map[string]*models.UserProgressRecord),
		visits:    make(map[string][]models.VisitEvent),
		saved:     make(map[string][]string),
		completed: make(map[string][]string),
	}
}

// NewMemoryStoreWithCatalog seeds the catalog up front.
func NewMemoryStoreWithCatalog(catalog []models.Course) *MemoryStore {
	s := NewMemoryStore()
	s.catalog = append(s.catalog, catalog...)
	return s
}

func (s *MemoryStore) lockUser(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

func (s *MemoryStore) AppendVisit(ctx context.Context, userID, username string, event models.VisitEvent) error {
	l := s.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()

	record, ok := s.records[userID]
	if !ok {
		record = &models.UserProgressRecord{UserID: userID, Username: username}
		s.records[userID] = record
	}
	if username != "" {
		record.Username = username
	}
	record.TotalTasksCompleted += event.TasksCompleted
	record.TotalCoursesCompleted += event.CoursesCompleted
	record.TotalVisits++
	ts := event.Timestamp
	record.LastVisit = &ts

	event.UserID = userID
	s.visits[userID] = append(s.visits[userID], event)
	return nil
}

func (s *MemoryStore) GetRecord(ctx context.Context, userID string) (models.UserProgressRecord, error) {
	s.recordsMu.RLock()
	defer s.recordsMu.RUnlock()

	if record, ok := s.records[userID]; ok {
		return *record, nil
	}
	return models.UserProgressRecord{UserID: userID}, nil
}

func (s *MemoryStore) VisitsSince(ctx context.Context, userID string, since time.Time) ([]models.VisitEvent, error) {
	s.recordsMu.RLock()
	defer s.recordsMu.RUnlock()

	var out []models.VisitEvent
	for _, visit := range s.visits[userID] {
		if !visit.Timestamp.Before(since) {
			out = append(out, visit)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()

	out := make([]models.Course, len(s.catalog))
	copy(out, s.catalog)
	return out, nil
}

func (s *MemoryStore) CoursesByID(ctx context.Context, ids []string) ([]models.Course, error) {
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()

	byID := make(map[string]models.Course, len(s.catalog))
	for _, course := range s.catalog {
		byID[course.ID] = course
	}

	out := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := byID[id]; ok {
			out = append(out, course)
		}
	}
	return out, nil
}

func (s *MemoryStore) SetSaved(ctx context.Context, userID, courseID string, saved bool) error {
	s.setsMu.Lock()
	defer s.setsMu.Unlock()
	s.saved[userID] = toggleMembership(s.saved[userID], courseID, saved)
	return nil
}

func (s *MemoryStore) SavedCourseIDs(ctx context.Context, userID string) ([]string, error) {
	s.setsMu.Lock()
	defer s.setsMu.Unlock()
	return append([]string(nil), s.saved[userID]...), nil
}

func (s *MemoryStore) SetCompleted(ctx context.Context, userID, courseID string, completed bool) error {
	s.setsMu.Lock()
	defer s.setsMu.Unlock()
	s.completed[userID] = toggleMembership(s.completed[userID], courseID, completed)
	return nil
}

func (s *MemoryStore) CompletedCourseIDs(ctx context.Context, userID string) ([]string, error) {
	s.setsMu.Lock()
	defer s.setsMu.Unlock()
	return append([]string(nil), s.completed[userID]...), nil
}

// toggleMembership keeps insertion order and is idempotent in both
// directions.
func toggleMembership(ids []string, id string, member bool) []string {
	idx := -1
	for i, existing := range ids {
		if existing == id {
			idx = i
			break
		}
	}
	if member {
		if idx >= 0 {
			return ids
		}
		return append(ids, id)
	}
	if idx < 0 {
		return ids
	}
	return append(ids[:idx], ids[idx+1:]...)
}
