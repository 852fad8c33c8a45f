package models

import "time"

// VisitEvent is one recorded unit of daily activity. Events are append-only:
// once stored they are never edited or deleted.
type VisitEvent struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	UserID           string    `gorm:"index;not null" json:"user_id"`
	Timestamp        time.Time `gorm:"index" json:"timestamp"`
	TasksCompleted   int       `json:"tasks_completed"`
	CoursesCompleted int       `json:"courses_completed"`
}

// UserProgressRecord keeps the running totals for a user. The totals are a
// cached reduction over the user's visit events, maintained only by the
// visit recorder.
type UserProgressRecord struct {
	UserID                string     `gorm:"primaryKey" json:"user_id"`
	Username              string     `json:"username"`
	TotalTasksCompleted   int        `gorm:"default:0" json:"total_tasks_completed"`
	TotalCoursesCompleted int        `gorm:"default:0" json:"total_courses_completed"`
	TotalVisits           int        `gorm:"default:0" json:"total_visits"`
	LastVisit             *time.Time `json:"last_visit,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// GoalProgress pairs a completed count with its weekly target.
type GoalProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type WeeklyProgress struct {
	Tasks   GoalProgress `json:"tasks"`
	Courses GoalProgress `json:"courses"`
}

// ChartPoint is one day of the 7-day activity series.
type ChartPoint struct {
	Name    string `json:"name"` // short weekday name, e.g. "Mon"
	Tasks   int    `json:"tasks"`
	Courses int    `json:"courses"`
	Date    string `json:"date"` // ISO date, e.g. "2026-08-31"
}

// DashboardSnapshot is the aggregated view-model returned to the UI.
type DashboardSnapshot struct {
	Greeting              string         `json:"greeting"`
	TotalVisits           int            `json:"total_visits"`
	TasksCompletedToday   int            `json:"tasks_completed_today"`
	CoursesCompletedToday int            `json:"courses_completed_today"`
	WeeklyProgress        WeeklyProgress `json:"weekly_progress"`
	ChartData             []ChartPoint   `json:"chart_data"`
}

// SchemaMeta carries the persisted schema version so future migrations have
// something to key off.
type SchemaMeta struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

const SchemaVersion = 1
