package types

import (
	"time"

	"github.com/google/uuid"
)

// FixedCommitment is a recurring weekly calendar entry. Times are
// user-local minutes-of-day; weekday follows time.Weekday (0=Sunday).
type FixedCommitment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Title        string    `gorm:"not null;column:title" json:"title"`
	ActivityKind string    `gorm:"not null;default:'default';column:activity_kind" json:"activity_kind"`
	Weekday      int       `gorm:"not null;column:weekday" json:"weekday"`
	StartMinute  int       `gorm:"not null;column:start_minute" json:"start_minute"`
	EndMinute    int       `gorm:"not null;column:end_minute" json:"end_minute"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (FixedCommitment) TableName() string {
	return "fixed_commitment"
}
