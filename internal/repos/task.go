package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type TaskRepo interface {
	Create(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error)
	CreateMany(ctx context.Context, tx *gorm.DB, tasks []*types.Task) ([]*types.Task, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, taskID uuid.UUID) error
	DeleteAutoGenerated(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Task, error)
	ListActiveManual(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Task, error)
}

type taskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
	return &taskRepo{db: db, log: baseLog.With("repo", "TaskRepo")}
}

func (tr *taskRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return tr.db
}

func (tr *taskRepo) Create(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error) {
	if err := tr.handle(tx).WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (tr *taskRepo) CreateMany(ctx context.Context, tx *gorm.DB, tasks []*types.Task) ([]*types.Task, error) {
	if len(tasks) == 0 {
		return []*types.Task{}, nil
	}
	if err := tr.handle(tx).WithContext(ctx).Create(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (tr *taskRepo) Delete(ctx context.Context, tx *gorm.DB, userID, taskID uuid.UUID) error {
	return tr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&types.Task{}).Error
}

func (tr *taskRepo) DeleteAutoGenerated(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return tr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND is_auto_generated = ?", userID, true).
		Delete(&types.Task{}).Error
}

func (tr *taskRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Task, error) {
	var tasks []*types.Task
	if err := tr.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListActiveManual returns the user's active, hand-created tasks. These
// are the busy time the task generator plans around; auto-generated
// study tasks are excluded so regeneration does not feed on its own
// output.
func (tr *taskRepo) ListActiveManual(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Task, error) {
	var tasks []*types.Task
	if err := tr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND is_auto_generated = ?", userID, true, false).
		Order("start_time ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
