package scheduler

// ScoreSlot ranks a candidate slot for a goal: duration fit against the
// preferred session length dominates, then time-of-day preference,
// priority band, and meal adjacency. A slot right after a meal gets a
// bonus; one right before a meal gets docked for the hard stop.
func ScoreSlot(goal Goal, slot FreeSlot) float64 {
	preferred := goal.Session.Preferred
	if preferred <= 0 {
		preferred = goal.Session.Min
	}
	if preferred <= 0 {
		preferred = 1
	}

	score := 100 * float64(minInt(slot.Duration, preferred)) / float64(preferred)
	if goal.prefersTimeOfDay(TimeOfDayAt(slot.Start)) {
		score += 50
	}
	score += goal.Priority.Weight()
	if isMealTitle(slot.PrecedingTitle) {
		score += 20
	}
	if isMealTitle(slot.FollowingTitle) {
		score -= 10
	}
	return score
}

// bestSlotIndex returns the index of the highest-scoring slot whose
// duration can hold the goal's minimum session, or -1. Ties go to the
// first-encountered slot; selection is stable, never randomized.
func bestSlotIndex(goal Goal, slots []FreeSlot) int {
	best := -1
	bestScore := 0.0
	for i, slot := range slots {
		if slot.Duration < goal.Session.Min {
			continue
		}
		score := ScoreSlot(goal, slot)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}
