package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
)

type fakeCommitmentSource struct {
	byWeekday map[time.Weekday][]Commitment
	err       error
}

func (f *fakeCommitmentSource) ForWeekday(ctx context.Context, userID uuid.UUID, weekday time.Weekday) ([]Commitment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byWeekday[weekday], nil
}

type fakeGoalSource struct {
	goals []Goal
}

func (f *fakeGoalSource) ByPriorityDesc(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	return f.goals, nil
}

type fakePlanSink struct {
	mu    sync.Mutex
	plans map[string]DayPlan
	err   error
}

func (f *fakePlanSink) Replace(ctx context.Context, userID uuid.UUID, date string, plan DayPlan) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.plans == nil {
		f.plans = make(map[string]DayPlan)
	}
	f.plans[date] = plan
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestPlanner_PlanDateWritesISODate(t *testing.T) {
	commitments := &fakeCommitmentSource{byWeekday: map[time.Weekday][]Commitment{
		time.Monday: {{Title: "Work", Kind: KindWork, Start: 9 * 60, End: 17 * 60}},
	}}
	sink := &fakePlanSink{}
	planner := NewPlanner(commitments, &fakeGoalSource{goals: []Goal{reactGoal()}}, sink, DefaultConfig(), testLogger(t))

	// 2026-01-05 is a Monday.
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	plan, err := planner.PlanDate(context.Background(), uuid.New(), date)
	if err != nil {
		t.Fatalf("PlanDate: %v", err)
	}
	if plan.Date != "2026-01-05" {
		t.Fatalf("plan date %q, want 2026-01-05", plan.Date)
	}
	if len(plan.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(plan.Sessions))
	}
	if _, ok := sink.plans["2026-01-05"]; !ok {
		t.Fatalf("sink never received the plan: %v", sink.plans)
	}
}

func TestPlanner_PlanRangeCoversEveryDate(t *testing.T) {
	commitments := &fakeCommitmentSource{byWeekday: map[time.Weekday][]Commitment{}}
	sink := &fakePlanSink{}
	planner := NewPlanner(commitments, &fakeGoalSource{goals: []Goal{reactGoal()}}, sink, DefaultConfig(), testLogger(t))

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	plans, err := planner.PlanRange(context.Background(), uuid.New(), start, 7)
	if err != nil {
		t.Fatalf("PlanRange: %v", err)
	}
	if len(plans) != 7 {
		t.Fatalf("expected 7 plans, got %d", len(plans))
	}
	for _, want := range []string{"2026-01-05", "2026-01-08", "2026-01-11"} {
		if _, ok := plans[want]; !ok {
			t.Fatalf("missing plan for %s", want)
		}
	}
	if len(sink.plans) != 7 {
		t.Fatalf("sink received %d plans, want 7", len(sink.plans))
	}
}

func TestPlanner_PlanRangePropagatesSourceErrors(t *testing.T) {
	wantErr := errors.New("db down")
	commitments := &fakeCommitmentSource{err: wantErr}
	planner := NewPlanner(commitments, &fakeGoalSource{goals: []Goal{reactGoal()}}, &fakePlanSink{}, DefaultConfig(), testLogger(t))

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if _, err := planner.PlanRange(context.Background(), uuid.New(), start, 3); !errors.Is(err, wantErr) {
		t.Fatalf("PlanRange error %v, want wrapped %v", err, wantErr)
	}
}

func TestPlanner_PlanRangePropagatesSinkErrors(t *testing.T) {
	wantErr := errors.New("write failed")
	sink := &fakePlanSink{err: wantErr}
	planner := NewPlanner(&fakeCommitmentSource{}, &fakeGoalSource{goals: []Goal{reactGoal()}}, sink, DefaultConfig(), testLogger(t))

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if _, err := planner.PlanRange(context.Background(), uuid.New(), start, 2); !errors.Is(err, wantErr) {
		t.Fatalf("PlanRange error %v, want wrapped %v", err, wantErr)
	}
}
