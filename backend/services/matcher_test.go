package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorpath/backend/models"
	"mentorpath/backend/store"
)

func testCatalog() []models.Course {
	return []models.Course{
		{ID: "py-basics", Title: "Python Basics", Platform: "Coursera", IsPaid: false, Rating: 4.5,
			Level: models.LevelBeginner, Topics: []string{"Python", "Programming"}},
		{ID: "py-advanced", Title: "Advanced Python", Platform: "Udemy", IsPaid: true, Rating: 4.7,
			Level: models.LevelAdvanced, Topics: []string{"Python", "Concurrency"}},
		{ID: "web-all", Title: "Web Dev for Everyone", Platform: "Udemy", IsPaid: true, Rating: 4.2,
			Level: models.LevelAllLevels, Topics: []string{"HTML", "JavaScript"}},
		{ID: "sql-mid", Title: "Practical SQL", Platform: "edX", IsPaid: false, Rating: 4.5,
			Level: models.LevelIntermediate, Topics: []string{"SQL", "Databases"}},
		{ID: "design-101", Title: "Design Foundations", Platform: "Coursera", IsPaid: true, Rating: 3.9,
			Level: models.LevelBeginner, Topics: []string{"UX Design", "Figma"}},
	}
}

func newTestMatcher() *Matcher {
	return NewMatcher(store.NewMemoryStoreWithCatalog(testCatalog()), nil)
}

func basePrefs() models.UserPreferences {
	return models.UserPreferences{
		SkillLevel:      models.LevelAdvanced,
		PricePreference: models.PriceBoth,
	}
}

func TestSearchFiltersByPrice(t *testing.T) {
	m := newTestMatcher()
	ctx := context.Background()

	prefs := basePrefs()
	prefs.PricePreference = models.PriceFree
	courses, err := m.SearchCourses(ctx, prefs)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	for _, course := range courses {
		assert.False(t, course.IsPaid, course.ID)
	}

	prefs.PricePreference = models.PricePaid
	courses, err = m.SearchCourses(ctx, prefs)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	for _, course := range courses {
		assert.True(t, course.IsPaid, course.ID)
	}
}

func TestSearchSkillLevelWidensMonotonically(t *testing.T) {
	m := newTestMatcher()
	ctx := context.Background()

	prefs := basePrefs()
	prefs.SkillLevel = models.LevelBeginner
	courses, err := m.SearchCourses(ctx, prefs)
	require.NoError(t, err)
	for _, course := range courses {
		assert.NotEqual(t, models.LevelAdvanced, course.Level, course.ID)
		assert.NotEqual(t, models.LevelIntermediate, course.Level, course.ID)
	}
	// All-levels courses always pass.
	assert.Contains(t, courseIDs(courses), "web-all")

	prefs.SkillLevel = models.LevelIntermediate
	courses, err = m.SearchCourses(ctx, prefs)
	require.NoError(t, err)
	ids := courseIDs(courses)
	assert.Contains(t, ids, "py-basics")
	assert.Contains(t, ids, "sql-mid")
	assert.NotContains(t, ids, "py-advanced")

	// Advanced learners are never excluded for "too easy".
	prefs.SkillLevel = models.LevelAdvanced
	courses, err = m.SearchCourses(ctx, prefs)
	require.NoError(t, err)
	assert.Len(t, courses, len(testCatalog()))
}

func TestSearchMatchesInterestsCaseInsensitive(t *testing.T) {
	m := newTestMatcher()

	prefs := basePrefs()
	prefs.Interests = []string{"python"}
	courses, err := m.SearchCourses(context.Background(), prefs)
	require.NoError(t, err)

	ids := courseIDs(courses)
	assert.Contains(t, ids, "py-basics")
	assert.Contains(t, ids, "py-advanced")
	assert.NotContains(t, ids, "design-101")
	assert.NotContains(t, ids, "web-all")
}

func TestSearchFiltersByPlatform(t *testing.T) {
	m := newTestMatcher()

	prefs := basePrefs()
	prefs.PreferredPlatforms = []string{"Coursera"}
	courses, err := m.SearchCourses(context.Background(), prefs)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	for _, course := range courses {
		assert.Equal(t, "Coursera", course.Platform)
	}
}

func TestSearchSortsByRatingStable(t *testing.T) {
	m := newTestMatcher()

	courses, err := m.SearchCourses(context.Background(), basePrefs())
	require.NoError(t, err)
	require.Len(t, courses, 5)

	for i := 1; i < len(courses); i++ {
		assert.GreaterOrEqual(t, courses[i-1].Rating, courses[i].Rating)
	}
	// py-basics and sql-mid tie at 4.5; catalog order breaks the tie.
	assert.Equal(t, []string{"py-advanced", "py-basics", "sql-mid", "web-all", "design-101"}, courseIDs(courses))
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	m := newTestMatcher()

	prefs := basePrefs()
	prefs.Interests = []string{"quantum basket weaving"}
	courses, err := m.SearchCourses(context.Background(), prefs)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

type countingCache struct {
	stored map[string][]models.Course
	gets   int
	hits   int
}

func (c *countingCache) Get(ctx context.Context, prefs models.UserPreferences) ([]models.Course, bool) {
	c.gets++
	courses, ok := c.stored[prefs.SkillLevel+prefs.PricePreference]
	if ok {
		c.hits++
	}
	return courses, ok
}

func (c *countingCache) Set(ctx context.Context, prefs models.UserPreferences, courses []models.Course) {
	c.stored[prefs.SkillLevel+prefs.PricePreference] = courses
}

func TestSearchUsesCache(t *testing.T) {
	cache := &countingCache{stored: make(map[string][]models.Course)}
	m := NewMatcher(store.NewMemoryStoreWithCatalog(testCatalog()), cache)

	_, err := m.SearchCourses(context.Background(), basePrefs())
	require.NoError(t, err)
	second, err := m.SearchCourses(context.Background(), basePrefs())
	require.NoError(t, err)

	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.hits)
	assert.Len(t, second, 5)
}

func courseIDs(courses []models.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}
	return ids
}
