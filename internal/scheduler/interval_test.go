package scheduler

import (
	"reflect"
	"testing"
)

func TestNormalizeBusyBlocks_AppliesKindBuffers(t *testing.T) {
	cfg := DefaultConfig()
	blocks := NormalizeBusyBlocks([]Commitment{
		{Title: "Work", Kind: KindWork, Start: 9 * 60, End: 17 * 60},
	}, cfg)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Start != 525 || blocks[0].End != 1035 {
		t.Fatalf("work block buffered to [%d, %d), want [525, 1035)", blocks[0].Start, blocks[0].End)
	}
}

func TestNormalizeBusyBlocks_DropsEmptyCommitments(t *testing.T) {
	cfg := DefaultConfig()
	blocks := NormalizeBusyBlocks([]Commitment{
		{Title: "Zero", Kind: KindWork, Start: 600, End: 600},
		{Title: "Inverted", Kind: KindWork, Start: 700, End: 650},
	}, cfg)
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestNormalizeBusyBlocks_SynthesizesMealsWithoutConflict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SynthesizeMeals = true
	blocks := NormalizeBusyBlocks(nil, cfg)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 meal blocks, got %d", len(blocks))
	}
	// Lunch window 12:00-13:00 with the 15-minute meal buffer.
	if blocks[1].Start != 705 || blocks[1].End != 795 {
		t.Fatalf("lunch block [%d, %d), want [705, 795)", blocks[1].Start, blocks[1].End)
	}
	if !blocks[1].AutoGenerated {
		t.Fatalf("synthesized meal must be marked auto-generated")
	}
}

func TestNormalizeBusyBlocks_MealConflictChecksOriginalTimes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SynthesizeMeals = true
	// The commitment's original interval overlaps the lunch window, so no
	// lunch is synthesized even though other windows stay clear.
	blocks := NormalizeBusyBlocks([]Commitment{
		{Title: "Lunch with team", Kind: KindMeal, Start: 12 * 60, End: 13 * 60},
	}, cfg)
	for _, b := range blocks {
		if b.AutoGenerated && b.Title == "Lunch" {
			t.Fatalf("lunch should not be synthesized over an existing commitment")
		}
	}
}

func TestMergeBusyBlocks_MergesTouchingAndKeepsFirstTitle(t *testing.T) {
	merged := MergeBusyBlocks([]BusyBlock{
		{Interval: Interval{Start: 500, End: 600}, Title: "First", Kind: KindWork},
		{Interval: Interval{Start: 600, End: 700}, Title: "Second", Kind: KindMeal},
		{Interval: Interval{Start: 800, End: 900}, Title: "Third", Kind: KindStudy},
	})
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged blocks, got %d", len(merged))
	}
	if merged[0].Start != 500 || merged[0].End != 700 {
		t.Fatalf("merged block [%d, %d), want [500, 700)", merged[0].Start, merged[0].End)
	}
	if merged[0].Title != "First" || merged[0].Kind != KindWork {
		t.Fatalf("merged block should keep the first block's title and kind, got %q/%q", merged[0].Title, merged[0].Kind)
	}
}

func TestMergeBusyBlocks_Idempotent(t *testing.T) {
	input := []BusyBlock{
		{Interval: Interval{Start: 100, End: 300}, Title: "A"},
		{Interval: Interval{Start: 200, End: 400}, Title: "B"},
		{Interval: Interval{Start: 500, End: 600}, Title: "C"},
	}
	once := MergeBusyBlocks(input)
	twice := MergeBusyBlocks(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge not idempotent: %v vs %v", once, twice)
	}
}

func TestFindFreeSlots_WorkDayScenario(t *testing.T) {
	cfg := DefaultConfig()
	blocks := NormalizeBusyBlocks([]Commitment{
		{Title: "Work", Kind: KindWork, Start: 9 * 60, End: 17 * 60},
	}, cfg)
	slots := FindFreeSlots(blocks, cfg.Daily)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d: %v", len(slots), slots)
	}
	if slots[0].Start != 360 || slots[0].End != 525 || slots[0].Duration != 165 {
		t.Fatalf("morning slot [%d, %d) dur %d, want [360, 525) dur 165", slots[0].Start, slots[0].End, slots[0].Duration)
	}
	if slots[1].Start != 1035 || slots[1].End != 1380 || slots[1].Duration != 345 {
		t.Fatalf("evening slot [%d, %d) dur %d, want [1035, 1380) dur 345", slots[1].Start, slots[1].End, slots[1].Duration)
	}
	if slots[0].FollowingTitle != "Work" || slots[0].PrecedingTitle != "" {
		t.Fatalf("morning slot context %q/%q, want \"\"/\"Work\"", slots[0].PrecedingTitle, slots[0].FollowingTitle)
	}
	if slots[1].PrecedingTitle != "Work" || slots[1].FollowingTitle != "" {
		t.Fatalf("evening slot context %q/%q, want \"Work\"/\"\"", slots[1].PrecedingTitle, slots[1].FollowingTitle)
	}
}

func TestFindFreeSlots_DropsGapsBelowThreshold(t *testing.T) {
	win := Window{DayStart: 360, DayEnd: 1380, MinGap: 30}
	blocks := MergeBusyBlocks([]BusyBlock{
		{Interval: Interval{Start: 360, End: 600}, Title: "A"},
		{Interval: Interval{Start: 629, End: 1380}, Title: "B"},
	})
	slots := FindFreeSlots(blocks, win)
	if len(slots) != 0 {
		t.Fatalf("29-minute gap should be dropped, got %v", slots)
	}
}

func TestFindFreeSlots_EmptyDayIsOneSlot(t *testing.T) {
	cfg := DefaultConfig()
	slots := FindFreeSlots(nil, cfg.Daily)
	if len(slots) != 1 {
		t.Fatalf("expected a single full-window slot, got %d", len(slots))
	}
	if slots[0].Start != cfg.Daily.DayStart || slots[0].End != cfg.Daily.DayEnd {
		t.Fatalf("slot [%d, %d), want the full window", slots[0].Start, slots[0].End)
	}
}
