package models

import "time"

// Course difficulty levels. "all-levels" courses match every learner.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelAllLevels    = "all-levels"
)

// Price preference values accepted by the matcher.
const (
	PriceFree = "free"
	PricePaid = "paid"
	PriceBoth = "both"
)

// Course is an immutable catalog entry. The core only reads it.
type Course struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Platform    string   `json:"platform"`
	Duration    string   `json:"duration"` // free text, e.g. "6 weeks"
	Price       string   `json:"price"`    // free text, e.g. "$49.99" or "Free"
	IsPaid      bool     `json:"is_paid"`
	Rating      float64  `json:"rating"`
	URL         string   `json:"url"`
	Level       string   `json:"level"`
	Topics      []string `gorm:"serializer:json" json:"topics"`
}

// UserPreferences is the per-query matching input. It is validated at the
// HTTP boundary and never persisted by the core.
type UserPreferences struct {
	CareerGoal         string   `json:"career_goal" validate:"omitempty,max=200"`
	Interests          []string `json:"interests" validate:"omitempty,dive,min=1"`
	SkillLevel         string   `json:"skill_level" validate:"required,oneof=beginner intermediate advanced"`
	PreferredPlatforms []string `json:"preferred_platforms" validate:"omitempty,dive,min=1"`
	LearningStyle      string   `json:"learning_style" validate:"omitempty,oneof=video reading interactive mixed"`
	TimeCommitment     int      `json:"time_commitment" validate:"omitempty,gte=0,lte=168"`
	PricePreference    string   `json:"price_preference" validate:"required,oneof=free paid both"`
}

// SavedCourse is one bookmark, keyed per user. Insertion order is the
// enumeration order of the saved list.
type SavedCourse struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex:idx_saved_user_course;not null" json:"user_id"`
	CourseID  string    `gorm:"uniqueIndex:idx_saved_user_course;not null" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CompletedCourse marks a course id as finished for a user.
type CompletedCourse struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex:idx_completed_user_course;not null" json:"user_id"`
	CourseID  string    `gorm:"uniqueIndex:idx_completed_user_course;not null" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}
