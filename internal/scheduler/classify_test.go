package scheduler

import "testing"

func TestClassifyActivity_KnownFragments(t *testing.T) {
	cases := map[string]ActivityKind{
		"Team standup":      KindWork,
		"Deep Work Block":   KindWork,
		"Lunch with Minh":   KindMeal,
		"ăn tối cùng nhà":   KindMeal,
		"Gym session":       KindPersonal,
		"Algorithms class":  KindStudy,
		"Homework review":   KindStudy,
		"Dentist":           KindDefault,
		"":                  KindDefault,
		"   ":               KindDefault,
	}
	for title, want := range cases {
		if got := ClassifyActivity(title); got != want {
			t.Fatalf("ClassifyActivity(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestClassifyActivity_SpecificFragmentsBeatGeneric(t *testing.T) {
	// "workout" and "homework" both contain "work"; the keyword table
	// must resolve them before the work fragment does.
	if got := ClassifyActivity("Morning workout"); got != KindPersonal {
		t.Fatalf("workout classified as %q, want %q", got, KindPersonal)
	}
	if got := ClassifyActivity("Math homework"); got != KindStudy {
		t.Fatalf("homework classified as %q, want %q", got, KindStudy)
	}
}

func TestIsMealTitle_EmptyNeverMatches(t *testing.T) {
	if isMealTitle("") {
		t.Fatalf("empty title must not count as a meal")
	}
	if !isMealTitle("Lunch") {
		t.Fatalf("Lunch should count as a meal")
	}
	if isMealTitle("Work") {
		t.Fatalf("Work should not count as a meal")
	}
}
