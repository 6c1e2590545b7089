package scheduler

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func focusGoal(target, preferred int) Goal {
	return Goal{
		ID:            uuid.New(),
		Subject:       "Python",
		TargetMinutes: target,
		Priority:      PriorityHigh,
		Session:       SessionBounds{Min: 30, Max: 120, Preferred: preferred},
	}
}

func TestSessionDurations_CountFromPreferredLength(t *testing.T) {
	cfg := DefaultConfig()
	if got := sessionDurations(focusGoal(120, 60), cfg); !reflect.DeepEqual(got, []int{60, 60}) {
		t.Fatalf("sessionDurations(120/60) = %v, want [60 60]", got)
	}
	if got := sessionDurations(focusGoal(0, 60), cfg); got != nil {
		t.Fatalf("zero target should yield no durations, got %v", got)
	}
}

func TestPlaceGoalSessions_PrepAndWrapBuffersInsideSlot(t *testing.T) {
	cfg := DefaultConfig()
	goal := focusGoal(60, 60)
	pool := []FreeSlot{{Start: 600, End: 700, Duration: 100, PrecedingTitle: "Breakfast"}}

	sessions, breaks, remaining := placeGoalSessions(goal, []int{60}, pool, cfg)
	if len(sessions) != 1 || len(breaks) != 0 {
		t.Fatalf("got %d sessions, %d breaks; want 1, 0", len(sessions), len(breaks))
	}
	// 5-minute prep before, 5-minute wrap after.
	if sessions[0].Start != 605 || sessions[0].End != 665 {
		t.Fatalf("session [%d, %d), want [605, 665)", sessions[0].Start, sessions[0].End)
	}
	if sessions[0].ContextBefore != "Breakfast" {
		t.Fatalf("context before %q, want Breakfast", sessions[0].ContextBefore)
	}
	if len(remaining) != 1 || remaining[0].Start != 670 || remaining[0].Duration != 30 {
		t.Fatalf("leftover pool %+v, want one slot starting 670 with 30 left", remaining)
	}
}

func TestPlaceGoalSessions_MicroBreakBetweenSessions(t *testing.T) {
	cfg := DefaultConfig()
	goal := focusGoal(120, 60)
	pool := []FreeSlot{{Start: 360, End: 1380, Duration: 1020}}

	sessions, breaks, _ := placeGoalSessions(goal, []int{60, 60}, pool, cfg)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if len(breaks) != 1 || breaks[0].Kind != BreakMicro {
		t.Fatalf("expected one micro break, got %v", breaks)
	}
	// Session, wrap, micro break, then the next session's prep.
	if breaks[0].Start != 430 || breaks[0].End != 440 {
		t.Fatalf("micro break [%d, %d), want [430, 440)", breaks[0].Start, breaks[0].End)
	}
	if sessions[1].Start != 445 {
		t.Fatalf("second session starts %d, want 445", sessions[1].Start)
	}
}

func TestPlaceGoalSessions_MacroBreakAfterSessionRun(t *testing.T) {
	cfg := DefaultConfig()
	goal := focusGoal(240, 60)
	pool := []FreeSlot{{Start: 360, End: 1380, Duration: 1020}}

	sessions, breaks, _ := placeGoalSessions(goal, []int{60, 60, 60, 60}, pool, cfg)
	if len(sessions) != 4 {
		t.Fatalf("expected 4 sessions, got %d", len(sessions))
	}
	var macros []Break
	for _, b := range breaks {
		if b.Kind == BreakMacro {
			macros = append(macros, b)
		}
	}
	if len(macros) != 1 {
		t.Fatalf("expected exactly one macro break after three sessions, got %v", breaks)
	}
	// The macro break must precede the fourth session.
	if macros[0].End > sessions[3].Start {
		t.Fatalf("macro break [%d, %d) does not precede session 4 at %d", macros[0].Start, macros[0].End, sessions[3].Start)
	}
	if macros[0].End-macros[0].Start != cfg.MacroBreakMinutes {
		t.Fatalf("macro break length %d, want %d", macros[0].End-macros[0].Start, cfg.MacroBreakMinutes)
	}
}

func TestPlaceGoalSessions_FocusCeilingForcesMacroBreak(t *testing.T) {
	cfg := DefaultConfig()
	goal := focusGoal(180, 90)
	// First slot fits exactly one session with buffers, so no micro break
	// fits and focus carries over to the next slot.
	pool := []FreeSlot{
		{Start: 360, End: 460, Duration: 100},
		{Start: 600, End: 1000, Duration: 400},
	}
	sessions, breaks, _ := placeGoalSessions(goal, []int{90, 90}, pool, cfg)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if len(breaks) != 1 || breaks[0].Kind != BreakMacro {
		t.Fatalf("expected one macro break at the focus ceiling, got %v", breaks)
	}
	if breaks[0].Start != 600 || breaks[0].End != 620 {
		t.Fatalf("macro break [%d, %d), want [600, 620)", breaks[0].Start, breaks[0].End)
	}
	if sessions[1].Start != 625 {
		t.Fatalf("second session starts %d, want 625 after the macro break and prep", sessions[1].Start)
	}
}

func TestPlaceGoalSessions_SkipsSlotTooSmallForMacroWithoutDroppingSession(t *testing.T) {
	cfg := DefaultConfig()
	goal := focusGoal(180, 90)
	pool := []FreeSlot{
		{Start: 360, End: 460, Duration: 100},
		{Start: 600, End: 615, Duration: 15},
		{Start: 700, End: 900, Duration: 200},
	}
	sessions, breaks, _ := placeGoalSessions(goal, []int{90, 90}, pool, cfg)
	if len(sessions) != 2 {
		t.Fatalf("expected both sessions placed, got %d", len(sessions))
	}
	// The 15-minute slot cannot hold the required macro break; the second
	// session must land in the third slot instead.
	if sessions[1].Start != 725 {
		t.Fatalf("second session starts %d, want 725", sessions[1].Start)
	}
	if len(breaks) != 1 || breaks[0].Start != 700 {
		t.Fatalf("macro break should open the third slot, got %v", breaks)
	}
}

func TestPlaceGoalSessions_PoolSharedAcrossGoals(t *testing.T) {
	cfg := DefaultConfig()
	first := focusGoal(60, 60)
	second := focusGoal(60, 60)
	pool := []FreeSlot{{Start: 600, End: 1380, Duration: 780}}

	_, _, pool = placeGoalSessions(first, []int{60}, pool, cfg)
	sessions, _, _ := placeGoalSessions(second, []int{60}, pool, cfg)
	if len(sessions) != 1 {
		t.Fatalf("second goal should still place a session, got %d", len(sessions))
	}
	if sessions[0].Start <= 665 {
		t.Fatalf("second goal reused time consumed by the first goal: start %d", sessions[0].Start)
	}
}
