package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/repos"
	"github.com/lumistudy/lumistudy-backend/internal/requestdata"
	"github.com/lumistudy/lumistudy-backend/internal/scheduler"
	"github.com/lumistudy/lumistudy-backend/internal/types"
)

type ScheduleService interface {
	GenerateRange(ctx context.Context, startDate string, days int) (map[string]scheduler.DayPlan, error)
	GetPlan(ctx context.Context, date string) (*scheduler.DayPlan, error)
}

type scheduleService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo repos.StudySessionRepo
	breakRepo   repos.PlanBreakRepo
	cache       PlanCache
	planner     *scheduler.Planner
}

func NewScheduleService(
	db *gorm.DB,
	log *logger.Logger,
	goalRepo repos.LearningGoalRepo,
	commitmentRepo repos.FixedCommitmentRepo,
	sessionRepo repos.StudySessionRepo,
	breakRepo repos.PlanBreakRepo,
	cache PlanCache,
	cfg scheduler.Config,
) ScheduleService {
	serviceLog := log.With("service", "ScheduleService")
	sink := &planSink{
		db:          db,
		log:         serviceLog,
		sessionRepo: sessionRepo,
		breakRepo:   breakRepo,
		cache:       cache,
		locks:       newKeyedMutex(),
	}
	planner := scheduler.NewPlanner(
		&commitmentSource{repo: commitmentRepo},
		&goalSource{repo: goalRepo},
		sink,
		cfg,
		log,
	)
	return &scheduleService{
		db:          db,
		log:         serviceLog,
		sessionRepo: sessionRepo,
		breakRepo:   breakRepo,
		cache:       cache,
		planner:     planner,
	}
}

func (ss *scheduleService) GenerateRange(ctx context.Context, startDate string, days int) (map[string]scheduler.DayPlan, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	start := time.Now()
	if startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date %q: %w", startDate, err)
		}
		start = parsed
	}
	if days < 1 {
		days = 7
	}
	if days > 31 {
		return nil, fmt.Errorf("days must not exceed 31")
	}
	return ss.planner.PlanRange(ctx, rd.UserID, start, days)
}

func (ss *scheduleService) GetPlan(ctx context.Context, date string) (*scheduler.DayPlan, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("not authenticated")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if ss.cache != nil {
		cached, err := ss.cache.Get(ctx, rd.UserID, date)
		if err != nil {
			ss.log.Warn("Plan cache read failed, falling back to store", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	sessions, err := ss.sessionRepo.ListByUserDate(ctx, nil, rd.UserID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	breaks, err := ss.breakRepo.ListByUserDate(ctx, nil, rd.UserID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load breaks: %w", err)
	}

	plan := &scheduler.DayPlan{Date: date}
	for _, s := range sessions {
		plan.Sessions = append(plan.Sessions, scheduler.Session{
			GoalID:         s.LearningGoalID,
			Subject:        s.Subject,
			Topic:          s.Topic,
			Order:          s.SessionOrder,
			Start:          s.StartMinute,
			End:            s.EndMinute,
			Duration:       s.DurationMin,
			ContextBefore:  s.ContextBefore,
			ContextAfter:   s.ContextAfter,
			SuggestedBreak: s.SuggestedBreak,
			Color:          s.Color,
			Icon:           s.Icon,
			Category:       s.Category,
		})
	}
	for _, b := range breaks {
		plan.Breaks = append(plan.Breaks, scheduler.Break{
			Kind:   scheduler.BreakKind(b.Kind),
			Start:  b.StartMinute,
			End:    b.EndMinute,
			Reason: b.Reason,
		})
	}
	return plan, nil
}

// commitmentSource adapts the fixed-commitment repo to the engine's
// weekday read contract.
type commitmentSource struct {
	repo repos.FixedCommitmentRepo
}

func (cs *commitmentSource) ForWeekday(ctx context.Context, userID uuid.UUID, weekday time.Weekday) ([]scheduler.Commitment, error) {
	rows, err := cs.repo.ListByWeekday(ctx, nil, userID, int(weekday))
	if err != nil {
		return nil, err
	}
	commitments := make([]scheduler.Commitment, 0, len(rows))
	for _, row := range rows {
		commitments = append(commitments, scheduler.Commitment{
			Title: row.Title,
			Kind:  scheduler.ActivityKind(row.ActivityKind),
			Start: row.StartMinute,
			End:   row.EndMinute,
		})
	}
	return commitments, nil
}

// goalSource adapts the goal repo; ListActiveByPriority already returns
// the high-to-low order the engine requires.
type goalSource struct {
	repo repos.LearningGoalRepo
}

func (gs *goalSource) ByPriorityDesc(ctx context.Context, userID uuid.UUID) ([]scheduler.Goal, error) {
	rows, err := gs.repo.ListActiveByPriority(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	goals := make([]scheduler.Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, goalToEngine(row))
	}
	return goals, nil
}

func goalToEngine(row *types.LearningGoal) scheduler.Goal {
	var slotNames []string
	if len(row.PreferredTimeSlots) > 0 {
		_ = json.Unmarshal(row.PreferredTimeSlots, &slotNames)
	}
	slots := make([]scheduler.TimeOfDay, 0, len(slotNames))
	for _, name := range slotNames {
		slots = append(slots, scheduler.TimeOfDay(name))
	}
	return scheduler.Goal{
		ID:            row.ID,
		Subject:       row.Subject,
		TargetMinutes: row.TargetMinutesPerDay,
		Priority:      scheduler.Priority(row.Priority),
		Session: scheduler.SessionBounds{
			Min:       row.MinSessionMinutes,
			Max:       row.MaxSessionMinutes,
			Preferred: row.PreferredSessionMinutes,
		},
		PreferredSlots: slots,
		Color:          row.Color,
		Icon:           row.Icon,
		Category:       row.Category,
	}
}

// planSink persists a day plan as delete-then-insert inside one
// transaction, serialized per (user, date) so concurrent generations for
// the same day cannot interleave. The delete+insert pair is still not
// atomic from the caller's point of view: a failed write leaves the plan
// state for that date undefined and the whole generation must be
// retried.
type planSink struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo repos.StudySessionRepo
	breakRepo   repos.PlanBreakRepo
	cache       PlanCache
	locks       *keyedMutex
}

func (ps *planSink) Replace(ctx context.Context, userID uuid.UUID, date string, plan scheduler.DayPlan) error {
	unlock := ps.locks.lock(fmt.Sprintf("%s:%s", userID, date))
	defer unlock()

	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ps.sessionRepo.DeleteByUserDate(ctx, tx, userID, date); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if err := ps.breakRepo.DeleteByUserDate(ctx, tx, userID, date); err != nil {
			return fmt.Errorf("delete breaks: %w", err)
		}

		sessions := make([]*types.StudySession, 0, len(plan.Sessions))
		for _, s := range plan.Sessions {
			sessions = append(sessions, &types.StudySession{
				ID:             uuid.New(),
				UserID:         userID,
				LearningGoalID: s.GoalID,
				Date:           date,
				Subject:        s.Subject,
				Topic:          s.Topic,
				SessionOrder:   s.Order,
				StartMinute:    s.Start,
				EndMinute:      s.End,
				DurationMin:    s.Duration,
				ContextBefore:  s.ContextBefore,
				ContextAfter:   s.ContextAfter,
				SuggestedBreak: s.SuggestedBreak,
				Color:          s.Color,
				Icon:           s.Icon,
				Category:       s.Category,
			})
		}
		if _, err := ps.sessionRepo.CreateMany(ctx, tx, sessions); err != nil {
			return fmt.Errorf("insert sessions: %w", err)
		}

		breaks := make([]*types.PlanBreak, 0, len(plan.Breaks))
		for _, b := range plan.Breaks {
			breaks = append(breaks, &types.PlanBreak{
				ID:          uuid.New(),
				UserID:      userID,
				Date:        date,
				Kind:        string(b.Kind),
				StartMinute: b.Start,
				EndMinute:   b.End,
				Reason:      b.Reason,
			})
		}
		if _, err := ps.breakRepo.CreateMany(ctx, tx, breaks); err != nil {
			return fmt.Errorf("insert breaks: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if ps.cache != nil {
		if err := ps.cache.Set(ctx, userID, date, plan); err != nil {
			ps.log.Warn("Plan cache write failed", "date", date, "error", err)
		}
	}
	return nil
}

// keyedMutex hands out one mutex per string key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (km *keyedMutex) lock(key string) func() {
	km.mu.Lock()
	lock, ok := km.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		km.locks[key] = lock
	}
	km.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}
