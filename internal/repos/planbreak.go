package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type PlanBreakRepo interface {
	CreateMany(ctx context.Context, tx *gorm.DB, breaks []*types.PlanBreak) ([]*types.PlanBreak, error)
	DeleteByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) error
	ListByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) ([]*types.PlanBreak, error)
}

type planBreakRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanBreakRepo(db *gorm.DB, baseLog *logger.Logger) PlanBreakRepo {
	return &planBreakRepo{db: db, log: baseLog.With("repo", "PlanBreakRepo")}
}

func (pbr *planBreakRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pbr.db
}

func (pbr *planBreakRepo) CreateMany(ctx context.Context, tx *gorm.DB, breaks []*types.PlanBreak) ([]*types.PlanBreak, error) {
	if len(breaks) == 0 {
		return []*types.PlanBreak{}, nil
	}
	if err := pbr.handle(tx).WithContext(ctx).Create(&breaks).Error; err != nil {
		return nil, err
	}
	return breaks, nil
}

func (pbr *planBreakRepo) DeleteByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) error {
	return pbr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&types.PlanBreak{}).Error
}

func (pbr *planBreakRepo) ListByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) ([]*types.PlanBreak, error) {
	var breaks []*types.PlanBreak
	if err := pbr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("start_minute ASC").
		Find(&breaks).Error; err != nil {
		return nil, err
	}
	return breaks, nil
}
