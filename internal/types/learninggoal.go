package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LearningGoal is a user's prioritized study objective. Target and
// session bounds are validated at this acceptance boundary, not inside
// the scheduling engine.
type LearningGoal struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                  uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Subject                 string         `gorm:"not null;column:subject" json:"subject"`
	TargetMinutesPerDay     int            `gorm:"not null;column:target_minutes_per_day" json:"target_minutes_per_day"`
	Priority                string         `gorm:"not null;default:'medium';column:priority" json:"priority"`
	MinSessionMinutes       int            `gorm:"not null;default:30;column:min_session_minutes" json:"min_session_minutes"`
	MaxSessionMinutes       int            `gorm:"not null;default:90;column:max_session_minutes" json:"max_session_minutes"`
	PreferredSessionMinutes int            `gorm:"not null;default:60;column:preferred_session_minutes" json:"preferred_session_minutes"`
	PreferredTimeSlots      datatypes.JSON `gorm:"column:preferred_time_slots" json:"preferred_time_slots"`
	Color                   string         `gorm:"column:color" json:"color"`
	Icon                    string         `gorm:"column:icon" json:"icon"`
	Category                string         `gorm:"column:category" json:"category"`
	IsActive                bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt               time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"not null" json:"updated_at"`
}

func (LearningGoal) TableName() string {
	return "learning_goal"
}
