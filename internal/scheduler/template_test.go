package scheduler

import "testing"

func TestTemplateFor_ExactMatchIgnoresCaseAndSpacing(t *testing.T) {
	entries := TemplateFor("  React ")
	if len(entries) != 6 {
		t.Fatalf("expected 6 react entries, got %d", len(entries))
	}
	if entries[0].Topic != "Components & JSX" || entries[0].Minutes != 60 {
		t.Fatalf("first react entry %q/%d, want Components & JSX/60", entries[0].Topic, entries[0].Minutes)
	}
	if entries[1].Topic != "State & Props" || entries[1].Minutes != 60 {
		t.Fatalf("second react entry %q/%d, want State & Props/60", entries[1].Topic, entries[1].Minutes)
	}
}

func TestTemplateFor_SubstringMatchesEitherDirection(t *testing.T) {
	if got := TemplateFor("ReactJS"); got[0].Topic != "Components & JSX" {
		t.Fatalf("ReactJS resolved to %q, want the react template", got[0].Topic)
	}
	if got := TemplateFor("IELTS Preparation"); got[0].Topic != "Listening Section" {
		t.Fatalf("IELTS Preparation resolved to %q, want the ielts template", got[0].Topic)
	}
	// "py" is a substring of the "python" key.
	if got := TemplateFor("py"); got[0].Topic != "Syntax & Data Types" {
		t.Fatalf("py resolved to %q, want the python template", got[0].Topic)
	}
}

func TestTemplateFor_UnknownSubjectFallsBack(t *testing.T) {
	entries := TemplateFor("Quantum Basket Weaving")
	if len(entries) != 6 || entries[0].Topic != "Core Concepts" {
		t.Fatalf("unknown subject should use the default template, got %v", entries)
	}
	if got := TemplateFor(""); got[0].Topic != "Core Concepts" {
		t.Fatalf("empty subject should use the default template, got %q", got[0].Topic)
	}
}

func TestTemplateFor_OrdersAreSequential(t *testing.T) {
	for _, subject := range []string{"javascript", "react", "python", "english", "ielts", "anything else"} {
		entries := TemplateFor(subject)
		for i, e := range entries {
			if e.Order != i+1 {
				t.Fatalf("%s entry %d has order %d", subject, i, e.Order)
			}
			if e.Minutes <= 0 {
				t.Fatalf("%s entry %d has non-positive minutes", subject, i)
			}
		}
	}
}
