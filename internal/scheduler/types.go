package scheduler

import (
	"github.com/google/uuid"
)

const minutesPerDay = 1440

// Interval is a half-open [Start, End) range in minutes-of-day.
type Interval struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// ActivityKind classifies what a busy block is for. Buffer sizes and
// scoring bonuses key off it.
type ActivityKind string

const (
	KindMeal     ActivityKind = "meal"
	KindWork     ActivityKind = "work"
	KindStudy    ActivityKind = "study"
	KindPersonal ActivityKind = "personal"
	KindDefault  ActivityKind = "default"
)

// Priority bands for learning goals. Goals arrive from the goal source
// already sorted high to low; the engine never re-sorts them.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Weight() float64 {
	switch p {
	case PriorityHigh:
		return 30
	case PriorityMedium:
		return 20
	case PriorityLow:
		return 10
	}
	return 0
}

// TimeOfDay buckets a start hour into one of five named day phases.
type TimeOfDay string

const (
	EarlyMorning TimeOfDay = "early-morning"
	Morning      TimeOfDay = "morning"
	Afternoon    TimeOfDay = "afternoon"
	Evening      TimeOfDay = "evening"
	Night        TimeOfDay = "night"
)

// TimeOfDayAt buckets a minute-of-day by its hour: 5-8 early-morning,
// 8-12 morning, 12-17 afternoon, 17-21 evening, night otherwise.
func TimeOfDayAt(minute int) TimeOfDay {
	hour := minute / 60
	switch {
	case hour >= 5 && hour < 8:
		return EarlyMorning
	case hour >= 8 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// Commitment is a raw fixed calendar entry for one weekday, before any
// buffering.
type Commitment struct {
	Title string
	Kind  ActivityKind
	Start int
	End   int
}

// BusyBlock is a buffered interval treated as unavailable for study.
type BusyBlock struct {
	Interval
	Title         string
	Kind          ActivityKind
	AutoGenerated bool
}

// FreeSlot is a schedulable gap between busy blocks. During allocation
// slots live in an index-addressed working list: consuming a slot writes
// a shrunk value back to its index, it is never aliased or shared.
type FreeSlot struct {
	Start          int
	End            int
	Duration       int
	PrecedingTitle string
	FollowingTitle string
}

// SessionBounds constrain how long a single study session may run.
type SessionBounds struct {
	Min       int
	Max       int
	Preferred int
}

// Goal is the engine's read-only view of an active learning goal.
type Goal struct {
	ID             uuid.UUID
	Subject        string
	TargetMinutes  int
	Priority       Priority
	Session        SessionBounds
	PreferredSlots []TimeOfDay
	Color          string
	Icon           string
	Category       string
}

func (g Goal) prefersTimeOfDay(tod TimeOfDay) bool {
	for _, p := range g.PreferredSlots {
		if p == tod {
			return true
		}
	}
	return false
}

// Session is one placed study block.
type Session struct {
	GoalID         uuid.UUID `json:"goal_id"`
	Subject        string    `json:"subject"`
	Topic          string    `json:"topic"`
	Order          int       `json:"order"`
	Start          int       `json:"start"`
	End            int       `json:"end"`
	Duration       int       `json:"duration"`
	ContextBefore  string    `json:"context_before,omitempty"`
	ContextAfter   string    `json:"context_after,omitempty"`
	SuggestedBreak int       `json:"suggested_break,omitempty"`
	Color          string    `json:"color,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	Category       string    `json:"category,omitempty"`
}

type BreakKind string

const (
	BreakMicro BreakKind = "micro"
	BreakMacro BreakKind = "macro"
)

// Break is a recovery interval inserted between study blocks.
type Break struct {
	Kind   BreakKind `json:"kind"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
	Reason string    `json:"reason,omitempty"`
}

// DayPlan is the ordered, non-overlapping output for one user-date pair.
type DayPlan struct {
	Date     string    `json:"date"`
	Sessions []Session `json:"sessions"`
	Breaks   []Break   `json:"breaks"`
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
