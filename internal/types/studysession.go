package types

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is one persisted generated session of a daily plan. The
// plan for a (user, date) pair is replaced wholesale on regeneration.
type StudySession struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_study_session_user_date;not null;column:user_id" json:"user_id"`
	LearningGoalID uuid.UUID `gorm:"type:uuid;index;not null;column:learning_goal_id" json:"learning_goal_id"`
	Date           string    `gorm:"index:idx_study_session_user_date;not null;column:date" json:"date"`
	Subject        string    `gorm:"column:subject" json:"subject"`
	Topic          string    `gorm:"not null;column:topic" json:"topic"`
	SessionOrder   int       `gorm:"not null;column:session_order" json:"session_order"`
	StartMinute    int       `gorm:"not null;column:start_minute" json:"start_minute"`
	EndMinute      int       `gorm:"not null;column:end_minute" json:"end_minute"`
	DurationMin    int       `gorm:"not null;column:duration_min" json:"duration_min"`
	ContextBefore  string    `gorm:"column:context_before" json:"context_before"`
	ContextAfter   string    `gorm:"column:context_after" json:"context_after"`
	SuggestedBreak int       `gorm:"column:suggested_break" json:"suggested_break"`
	Color          string    `gorm:"column:color" json:"color"`
	Icon           string    `gorm:"column:icon" json:"icon"`
	Category       string    `gorm:"column:category" json:"category"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (StudySession) TableName() string {
	return "study_session"
}
