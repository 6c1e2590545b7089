package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/repos"
	"github.com/lumistudy/lumistudy-backend/internal/requestdata"
	"github.com/lumistudy/lumistudy-backend/internal/scheduler"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type CommitmentInput struct {
	Title        string `json:"title"`
	ActivityKind string `json:"activity_kind"`
	Weekday      int    `json:"weekday"`
	StartMinute  int    `json:"start_minute"`
	EndMinute    int    `json:"end_minute"`
}

type CommitmentService interface {
	CreateCommitment(ctx context.Context, input CommitmentInput) (*types.FixedCommitment, error)
	DeleteCommitment(ctx context.Context, commitmentID uuid.UUID) error
	ListCommitments(ctx context.Context) ([]*types.FixedCommitment, error)
}

type commitmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	commitmentRepo repos.FixedCommitmentRepo
}

func NewCommitmentService(db *gorm.DB, log *logger.Logger, commitmentRepo repos.FixedCommitmentRepo) CommitmentService {
	return &commitmentService{
		db:             db,
		log:            log.With("service", "CommitmentService"),
		commitmentRepo: commitmentRepo,
	}
}

func validateCommitmentInput(input *CommitmentInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return fmt.Errorf("title is required")
	}
	if input.Weekday < 0 || input.Weekday > 6 {
		return fmt.Errorf("weekday must be in 0..6")
	}
	if input.StartMinute < 0 || input.EndMinute > 1439 || input.StartMinute >= input.EndMinute {
		return fmt.Errorf("time range must satisfy 0 <= start < end <= 1439")
	}
	kind := scheduler.ActivityKind(strings.ToLower(strings.TrimSpace(input.ActivityKind)))
	switch kind {
	case scheduler.KindMeal, scheduler.KindWork, scheduler.KindStudy, scheduler.KindPersonal, scheduler.KindDefault:
	case "":
		kind = scheduler.ClassifyActivity(input.Title)
	default:
		return fmt.Errorf("unknown activity kind %q", input.ActivityKind)
	}
	input.ActivityKind = string(kind)
	return nil
}

func (cs *commitmentService) CreateCommitment(ctx context.Context, input CommitmentInput) (*types.FixedCommitment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	if err := validateCommitmentInput(&input); err != nil {
		return nil, err
	}
	commitment := &types.FixedCommitment{
		ID:           uuid.New(),
		UserID:       rd.UserID,
		Title:        input.Title,
		ActivityKind: input.ActivityKind,
		Weekday:      input.Weekday,
		StartMinute:  input.StartMinute,
		EndMinute:    input.EndMinute,
	}
	if _, err := cs.commitmentRepo.Create(ctx, nil, commitment); err != nil {
		return nil, fmt.Errorf("failed to create commitment: %w", err)
	}
	return commitment, nil
}

func (cs *commitmentService) DeleteCommitment(ctx context.Context, commitmentID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return fmt.Errorf("not authenticated")
	}
	return cs.commitmentRepo.Delete(ctx, nil, rd.UserID, commitmentID)
}

func (cs *commitmentService) ListCommitments(ctx context.Context) ([]*types.FixedCommitment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	return cs.commitmentRepo.ListByUser(ctx, nil, rd.UserID)
}
