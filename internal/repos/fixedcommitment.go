package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type FixedCommitmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, commitment *types.FixedCommitment) (*types.FixedCommitment, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, commitmentID uuid.UUID) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.FixedCommitment, error)
	ListByWeekday(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekday int) ([]*types.FixedCommitment, error)
}

type fixedCommitmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFixedCommitmentRepo(db *gorm.DB, baseLog *logger.Logger) FixedCommitmentRepo {
	return &fixedCommitmentRepo{db: db, log: baseLog.With("repo", "FixedCommitmentRepo")}
}

func (fcr *fixedCommitmentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fcr.db
}

func (fcr *fixedCommitmentRepo) Create(ctx context.Context, tx *gorm.DB, commitment *types.FixedCommitment) (*types.FixedCommitment, error) {
	if err := fcr.handle(tx).WithContext(ctx).Create(commitment).Error; err != nil {
		return nil, err
	}
	return commitment, nil
}

func (fcr *fixedCommitmentRepo) Delete(ctx context.Context, tx *gorm.DB, userID, commitmentID uuid.UUID) error {
	return fcr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, commitmentID).
		Delete(&types.FixedCommitment{}).Error
}

func (fcr *fixedCommitmentRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.FixedCommitment, error) {
	var commitments []*types.FixedCommitment
	if err := fcr.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday ASC, start_minute ASC").
		Find(&commitments).Error; err != nil {
		return nil, err
	}
	return commitments, nil
}

func (fcr *fixedCommitmentRepo) ListByWeekday(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekday int) ([]*types.FixedCommitment, error) {
	var commitments []*types.FixedCommitment
	if err := fcr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND weekday = ?", userID, weekday).
		Order("start_minute ASC").
		Find(&commitments).Error; err != nil {
		return nil, err
	}
	return commitments, nil
}
