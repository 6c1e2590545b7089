package services

import "testing"

func TestValidateTaskInput_AcceptsWellFormedTask(t *testing.T) {
	input := TaskInput{
		Title:     "Gym",
		Weekdays:  []int{1, 3, 5},
		StartTime: "18:00",
		EndTime:   "19:00",
	}
	if err := validateTaskInput(&input); err != nil {
		t.Fatalf("validateTaskInput: %v", err)
	}
}

func TestValidateTaskInput_RejectsBadInput(t *testing.T) {
	cases := []TaskInput{
		{Title: "", Weekdays: []int{1}, StartTime: "18:00", EndTime: "19:00"},
		{Title: "X", Weekdays: nil, StartTime: "18:00", EndTime: "19:00"},
		{Title: "X", Weekdays: []int{7}, StartTime: "18:00", EndTime: "19:00"},
		{Title: "X", Weekdays: []int{1}, StartTime: "1800", EndTime: "19:00"},
		{Title: "X", Weekdays: []int{1}, StartTime: "18:00", EndTime: "25:00"},
		{Title: "X", Weekdays: []int{1}, StartTime: "19:00", EndTime: "18:00"},
		{Title: "X", Weekdays: []int{1}, StartTime: "18:00", EndTime: "18:00"},
	}
	for i, input := range cases {
		if err := validateTaskInput(&input); err == nil {
			t.Fatalf("case %d should be rejected: %+v", i, input)
		}
	}
}

func TestKeyedMutex_UnlocksCleanly(t *testing.T) {
	km := newKeyedMutex()
	unlock := km.lock("a")
	unlock()

	done := make(chan struct{})
	go func() {
		u := km.lock("a")
		u()
		close(done)
	}()
	<-done
}
