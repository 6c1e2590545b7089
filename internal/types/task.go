package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Task is a recurring weekly task. Auto-generated study tasks carry the
// originating learning goal; manual tasks feed the generator as busy
// time. Time range values are zero-padded "HH:MM" strings.
type Task struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Title           string         `gorm:"not null;column:title" json:"title"`
	Note            string         `gorm:"column:note" json:"note"`
	Weekdays        datatypes.JSON `gorm:"not null;column:weekdays" json:"weekdays"`
	StartTime       string         `gorm:"not null;column:start_time" json:"start_time"`
	EndTime         string         `gorm:"not null;column:end_time" json:"end_time"`
	Color           string         `gorm:"column:color" json:"color"`
	IsActive        bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	IsAutoGenerated bool           `gorm:"not null;default:false;column:is_auto_generated" json:"is_auto_generated"`
	LearningGoalID  *uuid.UUID     `gorm:"type:uuid;index;column:learning_goal_id" json:"learning_goal_id,omitempty"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

func (Task) TableName() string {
	return "task"
}
