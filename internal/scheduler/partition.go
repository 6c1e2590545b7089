package scheduler

// reconcileCap bounds the best-effort nudge loop. The loop is not proven
// to converge for every (min, max, count, target) combination, so after
// this many passes a bounded residual is accepted.
const reconcileCap = 64

func roundToFive(v int) int {
	if v <= 0 {
		return 0
	}
	return (v + 2) / 5 * 5
}

// PartitionMinutes splits a daily target into count session durations,
// each a multiple of five within the configured session bounds. The
// remainder goes to the earliest sessions; a final reconciliation pass
// nudges durations in five-minute steps toward the exact target where the
// bounds allow it.
func PartitionMinutes(target, count int, cfg Config) []int {
	if target <= 0 {
		if count < 1 {
			count = 1
		}
		out := make([]int, count)
		for i := range out {
			out[i] = cfg.DefaultSessionMinutes
		}
		return out
	}
	if count <= 1 {
		return []int{clamp(roundToFive(target), 15, cfg.MaxSessionMinutes)}
	}

	base := target / count / 5 * 5
	durations := make([]int, count)
	for i := range durations {
		durations[i] = base
	}
	remainder := target - base*count
	for i := 0; remainder >= 5 && i < count; i++ {
		durations[i] += 5
		remainder -= 5
	}
	for i := range durations {
		durations[i] = clamp(durations[i], cfg.MinSessionMinutes, cfg.MaxSessionMinutes)
	}

	sum := 0
	for _, d := range durations {
		sum += d
	}
	for pass := 0; pass < reconcileCap && sum != target; pass++ {
		moved := false
		for i := 0; i < count && sum != target; i++ {
			if sum < target && durations[i]+5 <= cfg.MaxSessionMinutes {
				durations[i] += 5
				sum += 5
				moved = true
			} else if sum > target && durations[i]-5 >= cfg.MinSessionMinutes {
				durations[i] -= 5
				sum -= 5
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return durations
}
