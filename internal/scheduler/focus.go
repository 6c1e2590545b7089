package scheduler

// placeGoalSessions places one goal's partitioned session stream into the
// time-ordered slot pool under the continuous-focus policy. Each study
// block reserves prep and wrap buffers inside its slot; those count
// against the slot but not as focus time. Micro breaks go between
// consecutive sessions of the goal, macro breaks after a run of sessions
// or when the continuous-focus ceiling would be crossed. Focus counters
// are per goal; the pool is shared across goals, so consumed time stays
// consumed.
//
// A slot that cannot absorb a required macro break is skipped without
// advancing the session stream.
func placeGoalSessions(goal Goal, durations []int, pool []FreeSlot, cfg Config) ([]Session, []Break, []FreeSlot) {
	var sessions []Session
	var breaks []Break
	entries := TemplateFor(goal.Subject)

	focus := 0
	sinceMacro := 0
	di := 0

	consume := func(idx, minutes int) {
		slot := pool[idx]
		slot.Start += minutes
		slot.Duration -= minutes
		pool[idx] = slot
	}

	for slotIdx := 0; slotIdx < len(pool) && di < len(durations); {
		slot := pool[slotIdx]
		if slot.Duration <= 0 {
			slotIdx++
			continue
		}
		duration := durations[di]

		if sinceMacro >= cfg.MacroBreakAfterSessions {
			if slot.Duration >= cfg.MacroBreakMinutes {
				breaks = append(breaks, Break{
					Kind:   BreakMacro,
					Start:  slot.Start,
					End:    slot.Start + cfg.MacroBreakMinutes,
					Reason: "long recovery after session run",
				})
				consume(slotIdx, cfg.MacroBreakMinutes)
				focus = 0
				sinceMacro = 0
				continue
			}
			slotIdx++
			continue
		}

		if focus+duration > cfg.MaxContinuousFocusMinutes {
			if slot.Duration >= cfg.MacroBreakMinutes {
				breaks = append(breaks, Break{
					Kind:   BreakMacro,
					Start:  slot.Start,
					End:    slot.Start + cfg.MacroBreakMinutes,
					Reason: "continuous focus ceiling",
				})
				consume(slotIdx, cfg.MacroBreakMinutes)
				focus = 0
				sinceMacro = 0
				continue
			}
			slotIdx++
			continue
		}

		needed := cfg.PrepBufferMinutes + duration + cfg.WrapBufferMinutes
		if slot.Duration < needed {
			slotIdx++
			continue
		}

		entry := entries[minInt(di, len(entries)-1)]
		start := slot.Start + cfg.PrepBufferMinutes
		sessions = append(sessions, Session{
			GoalID:        goal.ID,
			Subject:       goal.Subject,
			Topic:         entry.Topic,
			Order:         entry.Order,
			Start:         start,
			End:           start + duration,
			Duration:      duration,
			ContextBefore: slot.PrecedingTitle,
			ContextAfter:  slot.FollowingTitle,
			Color:         goal.Color,
			Icon:          goal.Icon,
			Category:      goal.Category,
		})
		consume(slotIdx, needed)
		focus += duration
		sinceMacro++
		di++

		if di < len(durations) && pool[slotIdx].Duration >= cfg.MicroBreakMinutes {
			slot = pool[slotIdx]
			breaks = append(breaks, Break{
				Kind:   BreakMicro,
				Start:  slot.Start,
				End:    slot.Start + cfg.MicroBreakMinutes,
				Reason: "between sessions",
			})
			consume(slotIdx, cfg.MicroBreakMinutes)
			focus = 0
		}
	}

	remaining := pool[:0]
	for _, slot := range pool {
		if slot.Duration > 0 {
			remaining = append(remaining, slot)
		}
	}
	return sessions, breaks, remaining
}

// sessionDurations derives the partitioned session stream for a goal:
// the daily target split into roughly preferred-length pieces.
func sessionDurations(goal Goal, cfg Config) []int {
	target := goal.TargetMinutes
	if target <= 0 {
		return nil
	}
	preferred := goal.Session.Preferred
	if preferred <= 0 {
		preferred = cfg.DefaultSessionMinutes
	}
	count := (target + preferred - 1) / preferred
	return PartitionMinutes(target, count, cfg)
}
