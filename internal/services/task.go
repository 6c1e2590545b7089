package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/repos"
	"github.com/lumistudy/lumistudy-backend/internal/requestdata"
	"github.com/lumistudy/lumistudy-backend/internal/scheduler"
	"github.com/lumistudy/lumistudy-backend/internal/types"
	"github.com/lumistudy/lumistudy-backend/internal/utils"
)

type TaskInput struct {
	Title     string `json:"title"`
	Note      string `json:"note"`
	Weekdays  []int  `json:"weekdays"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
}

type TaskService interface {
	CreateTask(ctx context.Context, input TaskInput) (*types.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	ListTasks(ctx context.Context) ([]*types.Task, error)
	GenerateWeek(ctx context.Context) ([]*types.Task, error)
}

type taskService struct {
	db        *gorm.DB
	log       *logger.Logger
	taskRepo  repos.TaskRepo
	generator *scheduler.TaskGenerator
}

func NewTaskService(
	db *gorm.DB,
	log *logger.Logger,
	taskRepo repos.TaskRepo,
	goalRepo repos.LearningGoalRepo,
	cfg scheduler.Config,
) TaskService {
	generator := scheduler.NewTaskGenerator(
		&existingTaskSource{repo: taskRepo},
		&goalSource{repo: goalRepo},
		&taskSink{repo: taskRepo},
		cfg,
		log,
	)
	return &taskService{
		db:        db,
		log:       log.With("service", "TaskService"),
		taskRepo:  taskRepo,
		generator: generator,
	}
}

func validateTaskInput(input *TaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(input.Weekdays) == 0 {
		return fmt.Errorf("at least one weekday is required")
	}
	for _, w := range input.Weekdays {
		if w < 0 || w > 6 {
			return fmt.Errorf("weekday %d out of range 0..6", w)
		}
	}
	start, err := utils.TimeToMinutes(input.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start_time: %w", err)
	}
	end, err := utils.TimeToMinutes(input.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end_time: %w", err)
	}
	if start >= end {
		return fmt.Errorf("start_time must be before end_time")
	}
	return nil
}

func (ts *taskService) CreateTask(ctx context.Context, input TaskInput) (*types.Task, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	if err := validateTaskInput(&input); err != nil {
		return nil, err
	}
	weekdays, err := json.Marshal(input.Weekdays)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weekdays: %w", err)
	}
	task := &types.Task{
		ID:              uuid.New(),
		UserID:          rd.UserID,
		Title:           input.Title,
		Note:            input.Note,
		Weekdays:        datatypes.JSON(weekdays),
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Color:           input.Color,
		IsActive:        true,
		IsAutoGenerated: false,
	}
	if _, err := ts.taskRepo.Create(ctx, nil, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (ts *taskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return fmt.Errorf("not authenticated")
	}
	return ts.taskRepo.Delete(ctx, nil, rd.UserID, taskID)
}

func (ts *taskService) ListTasks(ctx context.Context) ([]*types.Task, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	return ts.taskRepo.ListByUser(ctx, nil, rd.UserID)
}

// GenerateWeek drops the previous auto-generated batch and plans the rest
// of the current week, today onward, around the user's manual tasks.
func (ts *taskService) GenerateWeek(ctx context.Context) ([]*types.Task, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	if err := ts.taskRepo.DeleteAutoGenerated(ctx, nil, rd.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear generated tasks: %w", err)
	}
	fromWeekday := int(time.Now().Weekday())
	if _, err := ts.generator.GenerateWeek(ctx, rd.UserID, fromWeekday); err != nil {
		return nil, err
	}
	return ts.taskRepo.ListByUser(ctx, nil, rd.UserID)
}

// existingTaskSource feeds the generator the user's active manual tasks
// as busy time.
type existingTaskSource struct {
	repo repos.TaskRepo
}

func (es *existingTaskSource) ForUser(ctx context.Context, userID uuid.UUID) ([]scheduler.ExistingTask, error) {
	rows, err := es.repo.ListActiveManual(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	tasks := make([]scheduler.ExistingTask, 0, len(rows))
	for _, row := range rows {
		start, err := utils.TimeToMinutes(row.StartTime)
		if err != nil {
			return nil, fmt.Errorf("task %s has malformed start_time %q: %w", row.ID, row.StartTime, err)
		}
		end, err := utils.TimeToMinutes(row.EndTime)
		if err != nil {
			return nil, fmt.Errorf("task %s has malformed end_time %q: %w", row.ID, row.EndTime, err)
		}
		var weekdays []int
		if len(row.Weekdays) > 0 {
			if err := json.Unmarshal(row.Weekdays, &weekdays); err != nil {
				return nil, fmt.Errorf("task %s has malformed weekdays: %w", row.ID, err)
			}
		}
		tasks = append(tasks, scheduler.ExistingTask{
			Title:    row.Title,
			Weekdays: weekdays,
			Start:    start,
			End:      end,
		})
	}
	return tasks, nil
}

// taskSink turns generated records into task rows and bulk-inserts them.
type taskSink struct {
	repo repos.TaskRepo
}

func (sk *taskSink) InsertMany(ctx context.Context, records []scheduler.TaskRecord) error {
	tasks := make([]*types.Task, 0, len(records))
	for _, rec := range records {
		weekdays, err := json.Marshal(rec.Weekdays)
		if err != nil {
			return fmt.Errorf("failed to encode weekdays: %w", err)
		}
		tasks = append(tasks, &types.Task{
			ID:              uuid.New(),
			UserID:          rec.UserID,
			Title:           rec.Title,
			Note:            rec.Note,
			Weekdays:        datatypes.JSON(weekdays),
			StartTime:       rec.StartTime,
			EndTime:         rec.EndTime,
			Color:           rec.Color,
			IsActive:        rec.IsActive,
			IsAutoGenerated: rec.IsAutoGenerated,
			LearningGoalID:  rec.LearningGoalID,
		})
	}
	_, err := sk.repo.CreateMany(ctx, nil, tasks)
	return err
}
