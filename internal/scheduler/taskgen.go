package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/utils"
)

// ExistingTask is the engine's view of an already-scheduled task: which
// weekdays it occupies and its time range in minutes-of-day.
type ExistingTask struct {
	Title    string
	Weekdays []int
	Start    int
	End      int
}

// ExistingTaskSource supplies a user's current tasks for the
// task-generation pipeline.
type ExistingTaskSource interface {
	ForUser(ctx context.Context, userID uuid.UUID) ([]ExistingTask, error)
}

// TaskRecord is a generated task row ready for bulk insert. Time values
// cross this boundary as zero-padded "HH:MM" strings.
type TaskRecord struct {
	UserID          uuid.UUID
	Title           string
	Note            string
	Weekdays        []int
	StartTime       string
	EndTime         string
	Color           string
	IsActive        bool
	IsAutoGenerated bool
	LearningGoalID  *uuid.UUID
}

// TaskSink bulk-inserts generated task records.
type TaskSink interface {
	InsertMany(ctx context.Context, records []TaskRecord) error
}

// TaskGenerator runs the focus/break variant of the pipeline: per
// weekday, existing tasks plus protected meal windows become busy blocks,
// and each goal's partitioned session stream is placed into the remaining
// slots under the continuous-focus policy.
type TaskGenerator struct {
	tasks ExistingTaskSource
	goals GoalSource
	sink  TaskSink
	cfg   Config
	log   *logger.Logger
}

func NewTaskGenerator(tasks ExistingTaskSource, goals GoalSource, sink TaskSink, cfg Config, log *logger.Logger) *TaskGenerator {
	return &TaskGenerator{
		tasks: tasks,
		goals: goals,
		sink:  sink,
		cfg:   cfg,
		log:   log.With("component", "TaskGenerator"),
	}
}

// GenerateWeek plans weekdays fromWeekday..Saturday (a rolling "from now
// on" plan, never rewriting days already behind the user), inserts the
// resulting records through the sink in one call, and returns them.
func (tg *TaskGenerator) GenerateWeek(ctx context.Context, userID uuid.UUID, fromWeekday int) ([]TaskRecord, error) {
	existing, err := tg.tasks.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load existing tasks: %w", err)
	}
	goals, err := tg.goals.ByPriorityDesc(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if fromWeekday < 0 {
		fromWeekday = 0
	}

	var records []TaskRecord
	for weekday := fromWeekday; weekday <= 6; weekday++ {
		records = append(records, tg.planWeekday(userID, weekday, existing, goals)...)
	}
	if len(records) > 0 {
		if err := tg.sink.InsertMany(ctx, records); err != nil {
			return nil, fmt.Errorf("insert generated tasks: %w", err)
		}
	}
	tg.log.Debug("Generated weekly tasks", "from_weekday", fromWeekday, "records", len(records))
	return records, nil
}

func (tg *TaskGenerator) planWeekday(userID uuid.UUID, weekday int, existing []ExistingTask, goals []Goal) []TaskRecord {
	var commitments []Commitment
	for _, task := range existing {
		if !containsWeekday(task.Weekdays, weekday) {
			continue
		}
		commitments = append(commitments, Commitment{
			Title: task.Title,
			Kind:  ClassifyActivity(task.Title),
			Start: task.Start,
			End:   task.End,
		})
	}

	blocks := MergeBusyBlocks(append(bufferedBlocks(commitments, tg.cfg), protectedBlocks(tg.cfg)...))
	pool := FindFreeSlots(blocks, tg.cfg.TaskGen)

	var records []TaskRecord
	for _, goal := range goals {
		durations := sessionDurations(goal, tg.cfg)
		if len(durations) == 0 {
			continue
		}
		var sessions []Session
		var breaks []Break
		sessions, breaks, pool = placeGoalSessions(goal, durations, pool, tg.cfg)

		goalID := goal.ID
		for _, s := range sessions {
			records = append(records, TaskRecord{
				UserID:          userID,
				Title:           fmt.Sprintf("%s: %s", s.Subject, s.Topic),
				Note:            fmt.Sprintf("Planned study session (%d min)", s.Duration),
				Weekdays:        []int{weekday},
				StartTime:       utils.MinutesToTime(s.Start),
				EndTime:         utils.MinutesToTime(s.End),
				Color:           goal.Color,
				IsActive:        true,
				IsAutoGenerated: true,
				LearningGoalID:  &goalID,
			})
		}
		for _, b := range breaks {
			title := "Break"
			if b.Kind == BreakMacro {
				title = "Long break"
			}
			records = append(records, TaskRecord{
				UserID:          userID,
				Title:           title,
				Note:            b.Reason,
				Weekdays:        []int{weekday},
				StartTime:       utils.MinutesToTime(b.Start),
				EndTime:         utils.MinutesToTime(b.End),
				IsActive:        true,
				IsAutoGenerated: true,
			})
		}
	}
	return records
}

func containsWeekday(weekdays []int, weekday int) bool {
	for _, w := range weekdays {
		if w == weekday {
			return true
		}
	}
	return false
}
