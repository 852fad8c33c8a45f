package services

import (
	"context"
	"fmt"
	"time"

	"mentorpath/backend/config"
	"mentorpath/backend/models"
	"mentorpath/backend/store"
)

// Progress records visit events and aggregates them into the dashboard
// snapshot.
type Progress struct {
	Store store.ProgressStore
	Cfg   *config.Config

	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewProgress(st store.ProgressStore, cfg *config.Config) *Progress {
	return &Progress{Store: st, Cfg: cfg, Now: time.Now}
}

// RecordVisit appends one visit event stamped with the current wall-clock
// instant. Negative deltas are rejected; the original UI accepted them
// silently, which let the running totals drift below the event sum.
func (p *Progress) RecordVisit(ctx context.Context, userID, username string, tasksCompleted, coursesCompleted int) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if tasksCompleted < 0 || coursesCompleted < 0 {
		return fmt.Errorf("%w: completion deltas must be non-negative", ErrValidation)
	}

	event := models.VisitEvent{
		Timestamp:        p.Now(),
		TasksCompleted:   tasksCompleted,
		CoursesCompleted: coursesCompleted,
	}
	return p.Store.AppendVisit(ctx, userID, username, event)
}

// Dashboard returns the aggregated snapshot for a user. Reading the
// dashboard counts as a visit: a zero-delta event is recorded first, which
// is how total visit counts track page views. First-time users get a
// coherent zero state, never an error.
func (p *Progress) Dashboard(ctx context.Context, userID, username string) (models.DashboardSnapshot, error) {
	if err := p.RecordVisit(ctx, userID, username, 0, 0); err != nil {
		return models.DashboardSnapshot{}, err
	}
	return p.readDashboard(ctx, userID, username)
}

// readDashboard is the pure aggregation half: no writes.
func (p *Progress) readDashboard(ctx context.Context, userID, username string) (models.DashboardSnapshot, error) {
	now := p.Now()

	record, err := p.Store.GetRecord(ctx, userID)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)
	weekStart := startOfWeek(startOfToday, p.Cfg.WeekStartDay)
	chartStart := startOfToday.AddDate(0, 0, -6)

	since := weekStart
	if chartStart.Before(since) {
		since = chartStart
	}
	visits, err := p.Store.VisitsSince(ctx, userID, since)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}

	var tasksToday, coursesToday, weeklyTasks, weeklyCourses int
	for _, visit := range visits {
		if inWindow(visit.Timestamp, startOfToday, startOfTomorrow) {
			tasksToday += visit.TasksCompleted
			coursesToday += visit.CoursesCompleted
		}
		if inWindow(visit.Timestamp, weekStart, startOfTomorrow) {
			weeklyTasks += visit.TasksCompleted
			weeklyCourses += visit.CoursesCompleted
		}
	}

	// Exactly 7 entries, oldest first, zero-filled for quiet days.
	chart := make([]models.ChartPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := startOfToday.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		var tasks, courses int
		for _, visit := range visits {
			if inWindow(visit.Timestamp, day, next) {
				tasks += visit.TasksCompleted
				courses += visit.CoursesCompleted
			}
		}
		chart = append(chart, models.ChartPoint{
			Name:    day.Format("Mon"),
			Tasks:   tasks,
			Courses: courses,
			Date:    day.Format("2006-01-02"),
		})
	}

	return models.DashboardSnapshot{
		Greeting:              greeting(username, now.Hour()),
		TotalVisits:           record.TotalVisits,
		TasksCompletedToday:   tasksToday,
		CoursesCompletedToday: coursesToday,
		WeeklyProgress: models.WeeklyProgress{
			Tasks:   models.GoalProgress{Completed: weeklyTasks, Total: p.Cfg.WeeklyTaskGoal},
			Courses: models.GoalProgress{Completed: weeklyCourses, Total: p.Cfg.WeeklyCourseGoal},
		},
		ChartData: chart,
	}, nil
}

func greeting(username string, hour int) string {
	switch {
	case hour < 12:
		return "Good Morning, " + username
	case hour < 18:
		return "Good Afternoon, " + username
	default:
		return "Good Evening, " + username
	}
}

// startOfWeek walks back from local midnight of today to the most recent
// week-start weekday (Sunday by default).
func startOfWeek(startOfToday time.Time, weekStart time.Weekday) time.Time {
	days := int(startOfToday.Weekday() - weekStart)
	if days < 0 {
		days += 7
	}
	return startOfToday.AddDate(0, 0, -days)
}

// inWindow reports whether ts falls in [from, to).
func inWindow(ts, from, to time.Time) bool {
	return !ts.Before(from) && ts.Before(to)
}
