package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type LearningGoalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, goal *types.LearningGoal) (*types.LearningGoal, error)
	Update(ctx context.Context, tx *gorm.DB, goal *types.LearningGoal) (*types.LearningGoal, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, goalID uuid.UUID) error
	GetByID(ctx context.Context, tx *gorm.DB, userID, goalID uuid.UUID) (*types.LearningGoal, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningGoal, error)
	ListActiveByPriority(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningGoal, error)
}

type learningGoalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningGoalRepo(db *gorm.DB, baseLog *logger.Logger) LearningGoalRepo {
	return &learningGoalRepo{db: db, log: baseLog.With("repo", "LearningGoalRepo")}
}

func (lgr *learningGoalRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return lgr.db
}

func (lgr *learningGoalRepo) Create(ctx context.Context, tx *gorm.DB, goal *types.LearningGoal) (*types.LearningGoal, error) {
	if err := lgr.handle(tx).WithContext(ctx).Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (lgr *learningGoalRepo) Update(ctx context.Context, tx *gorm.DB, goal *types.LearningGoal) (*types.LearningGoal, error) {
	if err := lgr.handle(tx).WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (lgr *learningGoalRepo) Delete(ctx context.Context, tx *gorm.DB, userID, goalID uuid.UUID) error {
	return lgr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, goalID).
		Delete(&types.LearningGoal{}).Error
}

func (lgr *learningGoalRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, goalID uuid.UUID) (*types.LearningGoal, error) {
	var goal types.LearningGoal
	if err := lgr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, goalID).
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (lgr *learningGoalRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningGoal, error) {
	var goals []*types.LearningGoal
	if err := lgr.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// ListActiveByPriority is the goal source's ordering contract: active
// goals high to low priority, oldest first within a band. The engine
// relies on this order and never re-sorts.
func (lgr *learningGoalRepo) ListActiveByPriority(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningGoal, error) {
	var goals []*types.LearningGoal
	if err := lgr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
