package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorpath/backend/models"
)

func TestAppendVisitConcurrentTotalsAreExact(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				event := models.VisitEvent{Timestamp: time.Now(), TasksCompleted: 1, CoursesCompleted: 2}
				_ = s.AppendVisit(ctx, "u1", "Ann", event)
			}
		}()
	}
	wg.Wait()

	record, err := s.GetRecord(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, record.TotalTasksCompleted)
	assert.Equal(t, 2*workers*perWorker, record.TotalCoursesCompleted)
	assert.Equal(t, workers*perWorker, record.TotalVisits)
}

func TestGetRecordSynthesizesZeroRecord(t *testing.T) {
	s := NewMemoryStore()

	record, err := s.GetRecord(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", record.UserID)
	assert.Equal(t, 0, record.TotalVisits)
	assert.Nil(t, record.LastVisit)
}

func TestVisitsSinceFiltersByTimestamp(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		event := models.VisitEvent{Timestamp: base.AddDate(0, 0, i), TasksCompleted: i}
		require.NoError(t, s.AppendVisit(ctx, "u1", "Ann", event))
	}

	visits, err := s.VisitsSince(ctx, "u1", base.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, 3, visits[0].TasksCompleted)
	assert.Equal(t, 4, visits[1].TasksCompleted)
}

func TestCoursesByIDPreservesRequestOrder(t *testing.T) {
	s := NewMemoryStoreWithCatalog(DefaultCatalog())

	courses, err := s.CoursesByID(context.Background(), []string{"cs50x", "no-such-course", "python-for-everybody"})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "cs50x", courses[0].ID)
	assert.Equal(t, "python-for-everybody", courses[1].ID)
}

func TestToggleMembership(t *testing.T) {
	ids := toggleMembership(nil, "a", true)
	ids = toggleMembership(ids, "b", true)
	ids = toggleMembership(ids, "a", true) // duplicate add
	assert.Equal(t, []string{"a", "b"}, ids)

	ids = toggleMembership(ids, "missing", false) // absent remove
	assert.Equal(t, []string{"a", "b"}, ids)

	ids = toggleMembership(ids, "a", false)
	assert.Equal(t, []string{"b"}, ids)
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	catalog := DefaultCatalog()
	require.NotEmpty(t, catalog)

	seen := make(map[string]bool)
	for _, course := range catalog {
		assert.False(t, seen[course.ID], "duplicate id %s", course.ID)
		seen[course.ID] = true
		assert.NotEmpty(t, course.Title)
		assert.NotEmpty(t, course.Platform)
		assert.NotEmpty(t, course.Topics)
		assert.Contains(t, []string{
			models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced, models.LevelAllLevels,
		}, course.Level)
	}
}
