package scheduler

import "sort"

// bufferedBlocks applies per-kind buffers to raw commitments, clamped to
// the day.
func bufferedBlocks(commitments []Commitment, cfg Config) []BusyBlock {
	blocks := make([]BusyBlock, 0, len(commitments))
	for _, c := range commitments {
		if c.End <= c.Start {
			continue
		}
		b := cfg.bufferFor(c.Kind)
		blocks = append(blocks, BusyBlock{
			Interval: Interval{
				Start: clamp(c.Start-b.Before, 0, minutesPerDay-1),
				End:   clamp(c.End+b.After, 0, minutesPerDay-1),
			},
			Title: c.Title,
			Kind:  c.Kind,
		})
	}
	return blocks
}

// synthesizedMealBlocks emits a buffered block per configured meal window
// unless an existing commitment's original, unbuffered interval already
// overlaps that window.
func synthesizedMealBlocks(commitments []Commitment, cfg Config) []BusyBlock {
	var blocks []BusyBlock
	for _, w := range cfg.MealWindows {
		window := Interval{Start: w.Start, End: w.End}
		conflict := false
		for _, c := range commitments {
			if window.Overlaps(Interval{Start: c.Start, End: c.End}) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		blocks = append(blocks, BusyBlock{
			Interval: Interval{
				Start: clamp(w.Start-cfg.MealBuffer.Before, 0, minutesPerDay-1),
				End:   clamp(w.End+cfg.MealBuffer.After, 0, minutesPerDay-1),
			},
			Title:         w.Title,
			Kind:          KindMeal,
			AutoGenerated: true,
		})
	}
	return blocks
}

// protectedBlocks renders the configured meal windows as unconditionally
// busy. Used by the task-generation pipeline.
func protectedBlocks(cfg Config) []BusyBlock {
	blocks := make([]BusyBlock, 0, len(cfg.MealWindows))
	for _, w := range cfg.MealWindows {
		blocks = append(blocks, BusyBlock{
			Interval: Interval{
				Start: clamp(w.Start-cfg.MealBuffer.Before, 0, minutesPerDay-1),
				End:   clamp(w.End+cfg.MealBuffer.After, 0, minutesPerDay-1),
			},
			Title:         w.Title,
			Kind:          KindMeal,
			AutoGenerated: true,
		})
	}
	return blocks
}

// NormalizeBusyBlocks turns raw commitments into sorted, merged busy
// intervals, optionally synthesizing meal windows first.
func NormalizeBusyBlocks(commitments []Commitment, cfg Config) []BusyBlock {
	blocks := bufferedBlocks(commitments, cfg)
	if cfg.SynthesizeMeals {
		blocks = append(blocks, synthesizedMealBlocks(commitments, cfg)...)
	}
	return MergeBusyBlocks(blocks)
}

// MergeBusyBlocks sorts blocks by start and merges any whose intervals
// overlap or touch. The first block of a merged run keeps its title and
// kind for downstream context lookups. Merging is idempotent.
func MergeBusyBlocks(blocks []BusyBlock) []BusyBlock {
	if len(blocks) == 0 {
		return nil
	}
	sorted := make([]BusyBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []BusyBlock{sorted[0]}
	for _, b := range sorted[1:] {
		last := &merged[len(merged)-1]
		if b.Start <= last.End {
			last.End = maxInt(last.End, b.End)
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// FindFreeSlots walks sorted merged blocks and emits every gap inside the
// window that meets the minimum-gap threshold, annotated with the titles
// of the surrounding blocks.
func FindFreeSlots(blocks []BusyBlock, win Window) []FreeSlot {
	var slots []FreeSlot
	cursor := win.DayStart

	emit := func(start, end int, following string) {
		if end-start < win.MinGap {
			return
		}
		slots = append(slots, FreeSlot{
			Start:          start,
			End:            end,
			Duration:       end - start,
			PrecedingTitle: precedingTitle(blocks, start),
			FollowingTitle: following,
		})
	}

	for _, b := range blocks {
		if cursor >= win.DayEnd {
			break
		}
		gapEnd := minInt(b.Start, win.DayEnd)
		if gapEnd > cursor {
			emit(cursor, gapEnd, b.Title)
		}
		cursor = maxInt(cursor, b.End)
	}
	if cursor < win.DayEnd {
		emit(cursor, win.DayEnd, "")
	}
	return slots
}

// precedingTitle finds the nearest block that ends at or before the slot
// start. Blocks are sorted, so the last hit wins.
func precedingTitle(blocks []BusyBlock, slotStart int) string {
	title := ""
	for _, b := range blocks {
		if b.End <= slotStart {
			title = b.Title
		}
	}
	return title
}
