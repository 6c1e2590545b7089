package services

import "testing"

func validGoalInput() GoalInput {
	return GoalInput{
		Subject:             "React",
		TargetMinutesPerDay: 120,
	}
}

func TestNormalizeGoalInput_AppliesDefaults(t *testing.T) {
	input := validGoalInput()
	if err := normalizeGoalInput(&input); err != nil {
		t.Fatalf("normalizeGoalInput: %v", err)
	}
	if input.Priority != "medium" {
		t.Fatalf("default priority %q, want medium", input.Priority)
	}
	if input.MinSessionMinutes != 30 || input.MaxSessionMinutes != 90 || input.PreferredSessionMinutes != 60 {
		t.Fatalf("default session bounds %d/%d/%d, want 30/90/60",
			input.MinSessionMinutes, input.MaxSessionMinutes, input.PreferredSessionMinutes)
	}
}

func TestNormalizeGoalInput_RejectsMissingSubject(t *testing.T) {
	input := validGoalInput()
	input.Subject = "   "
	if err := normalizeGoalInput(&input); err == nil {
		t.Fatalf("expected error for blank subject")
	}
}

func TestNormalizeGoalInput_BoundsDailyTarget(t *testing.T) {
	for _, target := range []int{0, 14, 481, -5} {
		input := validGoalInput()
		input.TargetMinutesPerDay = target
		if err := normalizeGoalInput(&input); err == nil {
			t.Fatalf("target %d should be rejected", target)
		}
	}
	for _, target := range []int{15, 480} {
		input := validGoalInput()
		input.TargetMinutesPerDay = target
		if err := normalizeGoalInput(&input); err != nil {
			t.Fatalf("target %d should be accepted: %v", target, err)
		}
	}
}

func TestNormalizeGoalInput_ValidatesPriorityAndSlots(t *testing.T) {
	input := validGoalInput()
	input.Priority = "URGENT"
	if err := normalizeGoalInput(&input); err == nil {
		t.Fatalf("unknown priority should be rejected")
	}

	input = validGoalInput()
	input.Priority = " High "
	input.PreferredTimeSlots = []string{" Evening ", "morning"}
	if err := normalizeGoalInput(&input); err != nil {
		t.Fatalf("normalizeGoalInput: %v", err)
	}
	if input.Priority != "high" {
		t.Fatalf("priority %q, want high", input.Priority)
	}
	if input.PreferredTimeSlots[0] != "evening" || input.PreferredTimeSlots[1] != "morning" {
		t.Fatalf("slots not normalized: %v", input.PreferredTimeSlots)
	}

	input = validGoalInput()
	input.PreferredTimeSlots = []string{"midnightish"}
	if err := normalizeGoalInput(&input); err == nil {
		t.Fatalf("unknown time slot should be rejected")
	}
}

func TestNormalizeGoalInput_SessionBoundOrdering(t *testing.T) {
	input := validGoalInput()
	input.MinSessionMinutes = 90
	input.MaxSessionMinutes = 60
	if err := normalizeGoalInput(&input); err == nil {
		t.Fatalf("min above max should be rejected")
	}

	input = validGoalInput()
	input.MinSessionMinutes = 30
	input.MaxSessionMinutes = 60
	input.PreferredSessionMinutes = 90
	if err := normalizeGoalInput(&input); err == nil {
		t.Fatalf("preferred outside bounds should be rejected")
	}
}
