package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorpath/backend/config"
	"mentorpath/backend/store"
)

func testConfig() *config.Config {
	return &config.Config{
		WeeklyTaskGoal:   10,
		WeeklyCourseGoal: 3,
		WeekStartDay:     time.Sunday,
	}
}

func newTestProgress(now time.Time) *Progress {
	svc := NewProgress(store.NewMemoryStore(), testConfig())
	svc.Now = func() time.Time { return now }
	return svc
}

func TestRecordVisitAccumulatesTotals(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local) // Wednesday
	svc := newTestProgress(now)
	ctx := context.Background()

	deltas := [][2]int{{3, 1}, {0, 0}, {5, 2}, {1, 0}}
	wantTasks, wantCourses := 0, 0
	for _, d := range deltas {
		require.NoError(t, svc.RecordVisit(ctx, "u1", "Ann", d[0], d[1]))
		wantTasks += d[0]
		wantCourses += d[1]
	}

	record, err := svc.Store.GetRecord(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, wantTasks, record.TotalTasksCompleted)
	assert.Equal(t, wantCourses, record.TotalCoursesCompleted)
	assert.Equal(t, len(deltas), record.TotalVisits)
	require.NotNil(t, record.LastVisit)
	assert.Equal(t, now, *record.LastVisit)
}

func TestRecordVisitRejectsNegativeDeltas(t *testing.T) {
	svc := newTestProgress(time.Now())
	ctx := context.Background()

	err := svc.RecordVisit(ctx, "u1", "Ann", -1, 0)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.RecordVisit(ctx, "u1", "Ann", 0, -2)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.RecordVisit(ctx, "", "Ann", 1, 0)
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing recorded
	record, err := svc.Store.GetRecord(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, record.TotalVisits)
}

func TestDashboardChartAlwaysHasSevenDays(t *testing.T) {
	now := time.Date(2026, 8, 26, 14, 30, 0, 0, time.Local)
	svc := newTestProgress(now)

	snapshot, err := svc.Dashboard(context.Background(), "u1", "Ann")
	require.NoError(t, err)
	require.Len(t, snapshot.ChartData, 7)

	// Oldest first, strictly one day apart, ending today.
	for i, point := range snapshot.ChartData {
		wantDay := now.AddDate(0, 0, i-6)
		assert.Equal(t, wantDay.Format("2006-01-02"), point.Date)
		assert.Equal(t, wantDay.Format("Mon"), point.Name)
	}
}

func TestDashboardBucketsTodayAndWeek(t *testing.T) {
	// Wednesday afternoon; week started Sunday Aug 23.
	now := time.Date(2026, 8, 26, 14, 0, 0, 0, time.Local)
	svc := newTestProgress(now)
	ctx := context.Background()

	// Monday of the same week
	svc.Now = func() time.Time { return time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local) }
	require.NoError(t, svc.RecordVisit(ctx, "u1", "Ann", 4, 1))

	// Today
	svc.Now = func() time.Time { return now.Add(-2 * time.Hour) }
	require.NoError(t, svc.RecordVisit(ctx, "u1", "Ann", 2, 1))

	svc.Now = func() time.Time { return now }
	snapshot, err := svc.Dashboard(ctx, "u1", "Ann")
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.TasksCompletedToday)
	assert.Equal(t, 1, snapshot.CoursesCompletedToday)
	assert.Equal(t, 6, snapshot.WeeklyProgress.Tasks.Completed)
	assert.Equal(t, 2, snapshot.WeeklyProgress.Courses.Completed)
	assert.Equal(t, 10, snapshot.WeeklyProgress.Tasks.Total)
	assert.Equal(t, 3, snapshot.WeeklyProgress.Courses.Total)

	// Chart: Monday visit sits at index 4 (today is index 6).
	assert.Equal(t, 4, snapshot.ChartData[4].Tasks)
	assert.Equal(t, 2, snapshot.ChartData[6].Tasks)
	assert.Equal(t, 0, snapshot.ChartData[5].Tasks)
}

func TestWeekBoundaryIsSundayMidnight(t *testing.T) {
	// Now: Sunday Aug 30, afternoon. The weekly bucket opened at Sunday
	// midnight, so a visit from the previous Monday is out.
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	svc := newTestProgress(now)
	ctx := context.Background()

	svc.Now = func() time.Time { return time.Date(2026, 8, 24, 11, 0, 0, 0, time.Local) } // Monday
	require.NoError(t, svc.RecordVisit(ctx, "u1", "Ann", 7, 2))

	svc.Now = func() time.Time { return now.Add(-time.Hour) } // this Sunday
	require.NoError(t, svc.RecordVisit(ctx, "u1", "Ann", 1, 1))

	svc.Now = func() time.Time { return now }
	snapshot, err := svc.Dashboard(ctx, "u1", "Ann")
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.WeeklyProgress.Tasks.Completed)
	assert.Equal(t, 1, snapshot.WeeklyProgress.Courses.Completed)
	// The Monday visit still shows in the 7-day chart.
	assert.Equal(t, 7, snapshot.ChartData[0].Tasks)
}

func TestDashboardFirstTimeUser(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local)
	svc := newTestProgress(now)

	snapshot, err := svc.Dashboard(context.Background(), "u1", "Ann")
	require.NoError(t, err)

	// The read itself recorded the first (zero-delta) visit.
	assert.Equal(t, 1, snapshot.TotalVisits)
	assert.Equal(t, 0, snapshot.TasksCompletedToday)
	assert.Equal(t, 0, snapshot.CoursesCompletedToday)
	assert.Equal(t, "Good Morning, Ann", snapshot.Greeting)
	require.Len(t, snapshot.ChartData, 7)
	for _, point := range snapshot.ChartData {
		assert.Equal(t, 0, point.Tasks)
		assert.Equal(t, 0, point.Courses)
	}
}

func TestDashboardReadCountsAsVisit(t *testing.T) {
	svc := newTestProgress(time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local))
	ctx := context.Background()

	first, err := svc.Dashboard(ctx, "u1", "Ann")
	require.NoError(t, err)
	second, err := svc.Dashboard(ctx, "u1", "Ann")
	require.NoError(t, err)

	assert.Equal(t, 1, first.TotalVisits)
	assert.Equal(t, 2, second.TotalVisits)
}

func TestGreetingBuckets(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good Morning, Ann"},
		{11, "Good Morning, Ann"},
		{12, "Good Afternoon, Ann"},
		{17, "Good Afternoon, Ann"},
		{18, "Good Evening, Ann"},
		{23, "Good Evening, Ann"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, greeting("Ann", tc.hour))
	}
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday Aug 26 → Sunday Aug 23 under the Sunday-first convention.
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)
	got := startOfWeek(wednesday, time.Sunday)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local), got)

	// A Sunday is its own week start.
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local)
	assert.Equal(t, sunday, startOfWeek(sunday, time.Sunday))

	// Monday-first weeks work too.
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local), startOfWeek(wednesday, time.Monday))
}
