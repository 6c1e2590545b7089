// Package scheduler is the day-schedule allocation engine: pure,
// single-threaded computation that turns fixed commitments and
// prioritized learning goals into a non-overlapping plan of study
// sessions and recovery breaks for one user-date pair. All I/O happens
// through the narrow source and sink interfaces declared in this package.
package scheduler

// PlanDay runs the full daily pipeline: buffer and merge commitments,
// find free slots inside the daily window, allocate template sessions,
// and materialize suggested breaks into the gaps that survived
// allocation. Zero free slots yield an empty plan.
func PlanDay(commitments []Commitment, goals []Goal, cfg Config) DayPlan {
	blocks := NormalizeBusyBlocks(commitments, cfg)
	slots := FindFreeSlots(blocks, cfg.Daily)
	sessions := AllocateGoals(goals, slots, cfg)
	return assembleDayPlan(sessions, cfg)
}

// assembleDayPlan turns a start-ordered session list into a DayPlan,
// inserting a micro break after a session only where an actual gap to
// the next session exists, so plan entries never overlap.
func assembleDayPlan(sessions []Session, cfg Config) DayPlan {
	plan := DayPlan{Sessions: sessions}
	for i := 0; i+1 < len(sessions); i++ {
		current := sessions[i]
		if current.SuggestedBreak <= 0 {
			continue
		}
		gap := sessions[i+1].Start - current.End
		if gap <= 0 {
			continue
		}
		length := minInt(gap, current.SuggestedBreak)
		plan.Breaks = append(plan.Breaks, Break{
			Kind:   BreakMicro,
			Start:  current.End,
			End:    current.End + length,
			Reason: "recovery",
		})
	}
	return plan
}
