package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/types"
	"github.com/lumistudy/lumistudy-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewService connects to Postgres by default, or to a local sqlite file
// when DB_DRIVER=sqlite (dev and test convenience; entity ids are
// generated client-side so both drivers behave the same).
func NewService(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")
	driver := utils.GetEnv("DB_DRIVER", "postgres", log)

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "lumistudy.db", log)
		dialector = sqlite.Open(path)
	default:
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "lumistudy", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dialector = postgres.Open(dsn)
	}

	serviceLog.Info("Connecting to database...", "driver", driver)
	conn, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Service{db: conn, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.LearningGoal{},
		&types.FixedCommitment{},
		&types.StudySession{},
		&types.PlanBreak{},
		&types.Task{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
