package services

import "testing"

func TestValidateCommitmentInput_DerivesKindFromTitle(t *testing.T) {
	input := CommitmentInput{Title: "Team standup", Weekday: 1, StartMinute: 540, EndMinute: 555}
	if err := validateCommitmentInput(&input); err != nil {
		t.Fatalf("validateCommitmentInput: %v", err)
	}
	if input.ActivityKind != "work" {
		t.Fatalf("derived kind %q, want work", input.ActivityKind)
	}
}

func TestValidateCommitmentInput_NormalizesExplicitKind(t *testing.T) {
	input := CommitmentInput{Title: "Block", ActivityKind: " Meal ", Weekday: 0, StartMinute: 700, EndMinute: 760}
	if err := validateCommitmentInput(&input); err != nil {
		t.Fatalf("validateCommitmentInput: %v", err)
	}
	if input.ActivityKind != "meal" {
		t.Fatalf("kind %q, want meal", input.ActivityKind)
	}

	input.ActivityKind = "vacation"
	if err := validateCommitmentInput(&input); err == nil {
		t.Fatalf("unknown kind should be rejected")
	}
}

func TestValidateCommitmentInput_RejectsBadRanges(t *testing.T) {
	cases := []CommitmentInput{
		{Title: "X", Weekday: 7, StartMinute: 100, EndMinute: 200},
		{Title: "X", Weekday: -1, StartMinute: 100, EndMinute: 200},
		{Title: "X", Weekday: 3, StartMinute: 200, EndMinute: 200},
		{Title: "X", Weekday: 3, StartMinute: 300, EndMinute: 100},
		{Title: "X", Weekday: 3, StartMinute: -1, EndMinute: 100},
		{Title: "X", Weekday: 3, StartMinute: 100, EndMinute: 1440},
		{Title: "  ", Weekday: 3, StartMinute: 100, EndMinute: 200},
	}
	for i, input := range cases {
		if err := validateCommitmentInput(&input); err == nil {
			t.Fatalf("case %d should be rejected: %+v", i, input)
		}
	}
}
