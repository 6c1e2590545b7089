package types

import (
	"time"

	"github.com/google/uuid"
)

// PlanBreak is a persisted recovery interval of a daily plan.
type PlanBreak struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index:idx_plan_break_user_date;not null;column:user_id" json:"user_id"`
	Date        string    `gorm:"index:idx_plan_break_user_date;not null;column:date" json:"date"`
	Kind        string    `gorm:"not null;column:kind" json:"kind"`
	StartMinute int       `gorm:"not null;column:start_minute" json:"start_minute"`
	EndMinute   int       `gorm:"not null;column:end_minute" json:"end_minute"`
	Reason      string    `gorm:"column:reason" json:"reason"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (PlanBreak) TableName() string {
	return "plan_break"
}
