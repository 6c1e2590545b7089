package scheduler

import (
	"reflect"
	"testing"
)

func TestPartitionMinutes_EvenSplit(t *testing.T) {
	cfg := DefaultConfig()
	got := PartitionMinutes(120, 2, cfg)
	if !reflect.DeepEqual(got, []int{60, 60}) {
		t.Fatalf("PartitionMinutes(120, 2) = %v, want [60 60]", got)
	}
}

func TestPartitionMinutes_RemainderGoesToEarliestSessions(t *testing.T) {
	cfg := DefaultConfig()
	got := PartitionMinutes(100, 3, cfg)
	if !reflect.DeepEqual(got, []int{35, 35, 30}) {
		t.Fatalf("PartitionMinutes(100, 3) = %v, want [35 35 30]", got)
	}
	sum := 0
	for _, d := range got {
		sum += d
	}
	if sum != 100 {
		t.Fatalf("durations sum to %d, want 100", sum)
	}
}

func TestPartitionMinutes_NonPositiveTargetUsesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	got := PartitionMinutes(0, 3, cfg)
	want := []int{cfg.DefaultSessionMinutes, cfg.DefaultSessionMinutes, cfg.DefaultSessionMinutes}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PartitionMinutes(0, 3) = %v, want %v", got, want)
	}
	if got := PartitionMinutes(-10, 0, cfg); len(got) != 1 || got[0] != cfg.DefaultSessionMinutes {
		t.Fatalf("PartitionMinutes(-10, 0) = %v, want one default session", got)
	}
}

func TestPartitionMinutes_SingleSessionRoundsAndClamps(t *testing.T) {
	cfg := DefaultConfig()
	if got := PartitionMinutes(47, 1, cfg); !reflect.DeepEqual(got, []int{45}) {
		t.Fatalf("PartitionMinutes(47, 1) = %v, want [45]", got)
	}
	if got := PartitionMinutes(48, 1, cfg); !reflect.DeepEqual(got, []int{50}) {
		t.Fatalf("PartitionMinutes(48, 1) = %v, want [50]", got)
	}
	// Lower clamp for the single-session case sits below the general
	// session minimum.
	if got := PartitionMinutes(10, 1, cfg); !reflect.DeepEqual(got, []int{15}) {
		t.Fatalf("PartitionMinutes(10, 1) = %v, want [15]", got)
	}
	if got := PartitionMinutes(500, 1, cfg); !reflect.DeepEqual(got, []int{cfg.MaxSessionMinutes}) {
		t.Fatalf("PartitionMinutes(500, 1) = %v, want [%d]", got, cfg.MaxSessionMinutes)
	}
}

func TestPartitionMinutes_BoundsWinOverExactTarget(t *testing.T) {
	cfg := DefaultConfig()
	// 250 over two sessions cannot be met within the 120-minute ceiling;
	// the reconciliation loop stops at the bound instead of spinning.
	got := PartitionMinutes(250, 2, cfg)
	if !reflect.DeepEqual(got, []int{120, 120}) {
		t.Fatalf("PartitionMinutes(250, 2) = %v, want [120 120]", got)
	}
}

func TestPartitionMinutes_AllMultiplesOfFiveWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	for target := 15; target <= 480; target += 7 {
		for count := 1; count <= 6; count++ {
			for _, d := range PartitionMinutes(target, count, cfg) {
				if d%5 != 0 {
					t.Fatalf("target=%d count=%d produced non-multiple-of-five %d", target, count, d)
				}
				if count > 1 && (d < cfg.MinSessionMinutes || d > cfg.MaxSessionMinutes) {
					t.Fatalf("target=%d count=%d produced out-of-bounds %d", target, count, d)
				}
			}
		}
	}
}
