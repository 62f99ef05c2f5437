package schedule

import (
	"math/rand"
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd, bStart, bEnd Minutes
		want                   bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"partial", 540, 600, 570, 630, true},
		{"contained", 540, 660, 570, 600, true},
		{"touching end-to-start", 540, 600, 600, 660, false},
		{"touching start-to-end", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 720, 780, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%d, %d, %d, %d) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []Session{
		{Code: "COM SCI 188", Days: daySet(time.Monday, time.Wednesday, time.Friday), Start: 780, End: 840},
		{Code: "LING 20", Days: daySet(time.Tuesday, time.Thursday), Start: 900, End: 990},
	}

	tests := []struct {
		name       string
		days       DaySet
		start, end Minutes
		want       bool
	}{
		{"same days and time", daySet(time.Monday, time.Wednesday, time.Friday), 780, 840, true},
		{"one shared day", daySet(time.Monday), 800, 860, true},
		{"shared day, disjoint time", daySet(time.Monday), 540, 600, false},
		{"overlapping time, disjoint days", daySet(time.Tuesday), 780, 840, false},
		{"touching boundary", daySet(time.Monday), 840, 900, false},
		{"second session conflicts", daySet(time.Thursday), 930, 1020, true},
		{"empty days", 0, 780, 840, false},
		{"inverted range", daySet(time.Monday), 840, 780, false},
		{"zero-length range", daySet(time.Monday), 780, 780, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(existing, tt.days, tt.start, tt.end); got != tt.want {
				t.Errorf("HasConflict(%v, %d, %d) = %v, want %v",
					tt.days.Days(), tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestHasConflictNoSessions(t *testing.T) {
	if HasConflict(nil, daySet(time.Monday), 540, 600) {
		t.Error("empty schedule should never conflict")
	}
}

// Randomized check against a brute-force per-day, per-minute reference.
func TestHasConflictRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	randInterval := func() (Minutes, Minutes) {
		start := Minutes(rng.Intn(1380))
		end := start + Minutes(1+rng.Intn(180))
		return start, end
	}

	for i := 0; i < 500; i++ {
		existing := make([]Session, 1+rng.Intn(4))
		for j := range existing {
			start, end := randInterval()
			existing[j] = Session{
				Days:  DaySet(1 + rng.Intn(127)),
				Start: start,
				End:   end,
			}
		}
		days := DaySet(1 + rng.Intn(127))
		start, end := randInterval()

		want := false
		for _, s := range existing {
			for d := time.Sunday; d <= time.Saturday; d++ {
				if !s.Days.Has(d) || !days.Has(d) {
					continue
				}
				for m := start; m < end; m++ {
					if m >= s.Start && m < s.End {
						want = true
					}
				}
			}
		}

		if got := HasConflict(existing, days, start, end); got != want {
			t.Fatalf("HasConflict(%+v, %v, %d, %d) = %v, want %v",
				existing, days.Days(), start, end, got, want)
		}
	}
}

// Overlap is symmetric in its two intervals.
func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		aStart := Minutes(rng.Intn(1440))
		aEnd := aStart + Minutes(rng.Intn(120))
		bStart := Minutes(rng.Intn(1440))
		bEnd := bStart + Minutes(rng.Intn(120))

		if Overlaps(aStart, aEnd, bStart, bEnd) != Overlaps(bStart, bEnd, aStart, aEnd) {
			t.Fatalf("Overlaps not symmetric for [%d,%d) and [%d,%d)", aStart, aEnd, bStart, bEnd)
		}
	}
}
