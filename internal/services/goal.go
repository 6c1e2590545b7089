package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/repos"
	"github.com/lumistudy/lumistudy-backend/internal/requestdata"
	"github.com/lumistudy/lumistudy-backend/internal/scheduler"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

// Goal targets are bounded here, at the acceptance boundary: 15 minutes
// to 8 hours per day. The engine assumes it only ever sees valid goals.
const (
	minTargetMinutesPerDay = 15
	maxTargetMinutesPerDay = 480
)

type GoalInput struct {
	Subject                 string   `json:"subject"`
	TargetMinutesPerDay     int      `json:"target_minutes_per_day"`
	Priority                string   `json:"priority"`
	MinSessionMinutes       int      `json:"min_session_minutes"`
	MaxSessionMinutes       int      `json:"max_session_minutes"`
	PreferredSessionMinutes int      `json:"preferred_session_minutes"`
	PreferredTimeSlots      []string `json:"preferred_time_slots"`
	Color                   string   `json:"color"`
	Icon                    string   `json:"icon"`
	Category                string   `json:"category"`
	IsActive                *bool    `json:"is_active"`
}

type GoalService interface {
	CreateGoal(ctx context.Context, input GoalInput) (*types.LearningGoal, error)
	UpdateGoal(ctx context.Context, goalID uuid.UUID, input GoalInput) (*types.LearningGoal, error)
	DeleteGoal(ctx context.Context, goalID uuid.UUID) error
	ListGoals(ctx context.Context) ([]*types.LearningGoal, error)
}

type goalService struct {
	db       *gorm.DB
	log      *logger.Logger
	goalRepo repos.LearningGoalRepo
}

func NewGoalService(db *gorm.DB, log *logger.Logger, goalRepo repos.LearningGoalRepo) GoalService {
	return &goalService{db: db, log: log.With("service", "GoalService"), goalRepo: goalRepo}
}

var validPriorities = map[string]struct{}{
	string(scheduler.PriorityHigh):   {},
	string(scheduler.PriorityMedium): {},
	string(scheduler.PriorityLow):    {},
}

var validTimeSlots = map[string]struct{}{
	string(scheduler.EarlyMorning): {},
	string(scheduler.Morning):      {},
	string(scheduler.Afternoon):    {},
	string(scheduler.Evening):      {},
	string(scheduler.Night):        {},
}

// normalizeGoalInput applies defaults and validates in place.
func normalizeGoalInput(input *GoalInput) error {
	input.Subject = strings.TrimSpace(input.Subject)
	if input.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if input.TargetMinutesPerDay < minTargetMinutesPerDay || input.TargetMinutesPerDay > maxTargetMinutesPerDay {
		return fmt.Errorf("target_minutes_per_day must be between %d and %d", minTargetMinutesPerDay, maxTargetMinutesPerDay)
	}
	if input.Priority == "" {
		input.Priority = string(scheduler.PriorityMedium)
	}
	input.Priority = strings.ToLower(strings.TrimSpace(input.Priority))
	if _, ok := validPriorities[input.Priority]; !ok {
		return fmt.Errorf("priority must be high, medium or low")
	}
	if input.MinSessionMinutes <= 0 {
		input.MinSessionMinutes = 30
	}
	if input.MaxSessionMinutes <= 0 {
		input.MaxSessionMinutes = 90
	}
	if input.PreferredSessionMinutes <= 0 {
		input.PreferredSessionMinutes = 60
	}
	if input.MinSessionMinutes > input.MaxSessionMinutes {
		return fmt.Errorf("min_session_minutes must not exceed max_session_minutes")
	}
	if input.PreferredSessionMinutes < input.MinSessionMinutes || input.PreferredSessionMinutes > input.MaxSessionMinutes {
		return fmt.Errorf("preferred_session_minutes must lie within the session bounds")
	}
	for i, slot := range input.PreferredTimeSlots {
		slot = strings.ToLower(strings.TrimSpace(slot))
		if _, ok := validTimeSlots[slot]; !ok {
			return fmt.Errorf("unknown preferred time slot %q", slot)
		}
		input.PreferredTimeSlots[i] = slot
	}
	return nil
}

func (gs *goalService) CreateGoal(ctx context.Context, input GoalInput) (*types.LearningGoal, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	if err := normalizeGoalInput(&input); err != nil {
		return nil, err
	}
	slots, err := json.Marshal(input.PreferredTimeSlots)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferred time slots: %w", err)
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	goal := &types.LearningGoal{
		ID:                      uuid.New(),
		UserID:                  rd.UserID,
		Subject:                 input.Subject,
		TargetMinutesPerDay:     input.TargetMinutesPerDay,
		Priority:                input.Priority,
		MinSessionMinutes:       input.MinSessionMinutes,
		MaxSessionMinutes:       input.MaxSessionMinutes,
		PreferredSessionMinutes: input.PreferredSessionMinutes,
		PreferredTimeSlots:      datatypes.JSON(slots),
		Color:                   input.Color,
		Icon:                    input.Icon,
		Category:                input.Category,
		IsActive:                active,
	}
	if _, err := gs.goalRepo.Create(ctx, nil, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

func (gs *goalService) UpdateGoal(ctx context.Context, goalID uuid.UUID, input GoalInput) (*types.LearningGoal, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	goal, err := gs.goalRepo.GetByID(ctx, nil, rd.UserID, goalID)
	if err != nil {
		return nil, fmt.Errorf("goal not found: %w", err)
	}
	if err := normalizeGoalInput(&input); err != nil {
		return nil, err
	}
	slots, err := json.Marshal(input.PreferredTimeSlots)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferred time slots: %w", err)
	}
	goal.Subject = input.Subject
	goal.TargetMinutesPerDay = input.TargetMinutesPerDay
	goal.Priority = input.Priority
	goal.MinSessionMinutes = input.MinSessionMinutes
	goal.MaxSessionMinutes = input.MaxSessionMinutes
	goal.PreferredSessionMinutes = input.PreferredSessionMinutes
	goal.PreferredTimeSlots = datatypes.JSON(slots)
	goal.Color = input.Color
	goal.Icon = input.Icon
	goal.Category = input.Category
	if input.IsActive != nil {
		goal.IsActive = *input.IsActive
	}
	if _, err := gs.goalRepo.Update(ctx, nil, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (gs *goalService) DeleteGoal(ctx context.Context, goalID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return fmt.Errorf("not authenticated")
	}
	return gs.goalRepo.Delete(ctx, nil, rd.UserID, goalID)
}

func (gs *goalService) ListGoals(ctx context.Context) ([]*types.LearningGoal, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	return gs.goalRepo.ListByUser(ctx, nil, rd.UserID)
}
