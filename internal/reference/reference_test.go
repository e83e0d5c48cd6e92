package reference

import "testing"

func TestScheduleIsContiguous(t *testing.T) {
	if len(DailySchedule) != 13 {
		t.Fatalf("events=%d, want 13", len(DailySchedule))
	}
	if DailySchedule[0].StartTime != "11:30" || DailySchedule[12].EndTime != "23:30" {
		t.Fatalf("schedule spans %s-%s", DailySchedule[0].StartTime, DailySchedule[12].EndTime)
	}
	for i := 1; i < len(DailySchedule); i++ {
		if DailySchedule[i].StartTime != DailySchedule[i-1].EndTime {
			t.Fatalf("gap before %q", DailySchedule[i].Title)
		}
	}
}

func TestCounts(t *testing.T) {
	if len(FixedRoutines) != 11 || len(SpecItems) != 12 || len(Roadmap) != 5 || len(Goals) != 5 {
		t.Fatalf("routines=%d specs=%d roadmap=%d goals=%d", len(FixedRoutines), len(SpecItems), len(Roadmap), len(Goals))
	}
	seen := map[string]bool{}
	for _, r := range FixedRoutines {
		if seen[r.ID] {
			t.Fatalf("duplicate routine id %s", r.ID)
		}
		seen[r.ID] = true
	}
	if _, ok := FindRoutine("r-12"); !ok {
		t.Fatalf("r-12 not found")
	}
	if _, ok := FindRoutine("r-1"); ok {
		t.Fatalf("r-1 found")
	}
}
