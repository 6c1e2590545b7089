package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
)

// CommitmentSource supplies a user's fixed commitments for one weekday
// (0=Sunday). Read once per daily computation, never mid-algorithm.
type CommitmentSource interface {
	ForWeekday(ctx context.Context, userID uuid.UUID, weekday time.Weekday) ([]Commitment, error)
}

// GoalSource supplies active goals already sorted high-to-low priority.
// The ordering is a precondition of this contract: the engine does not
// re-sort or re-filter what it receives.
type GoalSource interface {
	ByPriorityDesc(ctx context.Context, userID uuid.UUID) ([]Goal, error)
}

// PlanSink replaces the stored plan for one user-date pair. The replace
// is logically delete-then-insert and is not atomic; on a write error the
// plan state for that date is undefined and callers must regenerate.
// The engine calls it at most once per (user, date) per invocation.
type PlanSink interface {
	Replace(ctx context.Context, userID uuid.UUID, date string, plan DayPlan) error
}

// Planner drives the daily pipeline across a date range.
type Planner struct {
	commitments CommitmentSource
	goals       GoalSource
	sink        PlanSink
	cfg         Config
	log         *logger.Logger
}

func NewPlanner(commitments CommitmentSource, goals GoalSource, sink PlanSink, cfg Config, log *logger.Logger) *Planner {
	return &Planner{
		commitments: commitments,
		goals:       goals,
		sink:        sink,
		cfg:         cfg,
		log:         log.With("component", "Planner"),
	}
}

const isoDate = "2006-01-02"

// PlanDate computes and persists the plan for a single date. Source and
// sink errors propagate untransformed apart from wrapping; there is no
// partial commit on the engine side.
func (p *Planner) PlanDate(ctx context.Context, userID uuid.UUID, date time.Time) (DayPlan, error) {
	goals, err := p.goals.ByPriorityDesc(ctx, userID)
	if err != nil {
		return DayPlan{}, fmt.Errorf("load goals: %w", err)
	}
	commitments, err := p.commitments.ForWeekday(ctx, userID, date.Weekday())
	if err != nil {
		return DayPlan{}, fmt.Errorf("load commitments: %w", err)
	}

	plan := PlanDay(commitments, goals, p.cfg)
	plan.Date = date.Format(isoDate)
	if err := p.sink.Replace(ctx, userID, plan.Date, plan); err != nil {
		return DayPlan{}, fmt.Errorf("replace plan for %s: %w", plan.Date, err)
	}
	p.log.Debug("Planned day", "date", plan.Date, "sessions", len(plan.Sessions), "breaks", len(plan.Breaks))
	return plan, nil
}

// PlanRange runs PlanDate once per date in [start, start+days). Days are
// independent, so they run concurrently; each date is written exactly
// once, so writes never race on the same (user, date).
func (p *Planner) PlanRange(ctx context.Context, userID uuid.UUID, start time.Time, days int) (map[string]DayPlan, error) {
	plans := make(map[string]DayPlan, days)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		g.Go(func() error {
			plan, err := p.PlanDate(gctx, userID, date)
			if err != nil {
				return err
			}
			mu.Lock()
			plans[plan.Date] = plan
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}
