package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type StudySessionRepo interface {
	CreateMany(ctx context.Context, tx *gorm.DB, sessions []*types.StudySession) ([]*types.StudySession, error)
	DeleteByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) error
	ListByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) ([]*types.StudySession, error)
}

type studySessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudySessionRepo(db *gorm.DB, baseLog *logger.Logger) StudySessionRepo {
	return &studySessionRepo{db: db, log: baseLog.With("repo", "StudySessionRepo")}
}

func (ssr *studySessionRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ssr.db
}

func (ssr *studySessionRepo) CreateMany(ctx context.Context, tx *gorm.DB, sessions []*types.StudySession) ([]*types.StudySession, error) {
	if len(sessions) == 0 {
		return []*types.StudySession{}, nil
	}
	if err := ssr.handle(tx).WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (ssr *studySessionRepo) DeleteByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) error {
	return ssr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&types.StudySession{}).Error
}

func (ssr *studySessionRepo) ListByUserDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date string) ([]*types.StudySession, error) {
	var sessions []*types.StudySession
	if err := ssr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("start_minute ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
