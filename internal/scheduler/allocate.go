package scheduler

import "sort"

// AllocateGoals walks goals in the order supplied (the goal source
// guarantees high-to-low priority; the engine must not re-sort, so
// allocation fairness stays predictable) and places template sessions
// into the best-scoring free slots until each goal's daily target is met
// or slots and template entries run out. Shortfall is a policy outcome,
// not an error: an under-served goal simply yields fewer sessions.
//
// The slot pool is an index-addressed working list: consuming part of a
// slot writes the shrunk slot back to its index, and a slot too small to
// schedule again is removed outright.
func AllocateGoals(goals []Goal, slots []FreeSlot, cfg Config) []Session {
	pool := make([]FreeSlot, len(slots))
	copy(pool, slots)

	var sessions []Session
	for _, goal := range goals {
		remaining := goal.TargetMinutes
		if remaining < 0 {
			remaining = 0
		}
		entries := TemplateFor(goal.Subject)
		entryIdx := 0

		for remaining > 0 && len(pool) > 0 && entryIdx < len(entries) {
			slotIdx := bestSlotIndex(goal, pool)
			if slotIdx < 0 {
				break
			}
			slot := pool[slotIdx]
			entry := entries[entryIdx]

			raw := minInt(entry.Minutes, minInt(remaining, slot.Duration))
			if raw < goal.Session.Min {
				break
			}
			duration := clamp(raw, goal.Session.Min, goal.Session.Max)

			remaining -= duration
			suggestedBreak := 0
			if remaining > 0 && entryIdx+1 < len(entries) {
				suggestedBreak = cfg.MicroBreakMinutes
			}
			sessions = append(sessions, Session{
				GoalID:         goal.ID,
				Subject:        goal.Subject,
				Topic:          entry.Topic,
				Order:          entry.Order,
				Start:          slot.Start,
				End:            slot.Start + duration,
				Duration:       duration,
				ContextBefore:  slot.PrecedingTitle,
				ContextAfter:   slot.FollowingTitle,
				SuggestedBreak: suggestedBreak,
				Color:          goal.Color,
				Icon:           goal.Icon,
				Category:       goal.Category,
			})

			if slot.Duration-duration >= cfg.Daily.MinGap {
				slot.Start += duration
				slot.Duration -= duration
				pool[slotIdx] = slot
			} else {
				pool = append(pool[:slotIdx], pool[slotIdx+1:]...)
			}
			entryIdx++
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Start < sessions[j].Start
	})
	return sessions
}
