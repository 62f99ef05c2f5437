package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/mopben/coursematch/internal/schedule"
)

func TestNormalize(t *testing.T) {
	c := Course{
		Code:        "LING 20",
		DaysRaw:     "TuTh",
		StartRaw:    "15:00",
		EndRaw:      "16:30",
		KeywordsRaw: "linguistics; language;  syntax ",
	}
	c.Normalize()

	wantDays := schedule.Day(time.Tuesday) | schedule.Day(time.Thursday)
	if c.Days != wantDays {
		t.Errorf("Days = %v, want %v", c.Days.Days(), wantDays.Days())
	}
	if c.Start != 900 || c.End != 990 {
		t.Errorf("times = %d-%d, want 900-990", c.Start, c.End)
	}
	if want := []string{"linguistics", "language", "syntax"}; !reflect.DeepEqual(c.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", c.Keywords, want)
	}
	if c.GEArea != "N/A" || c.Difficulty != "N/A" {
		t.Errorf("empty GE area/difficulty should default to N/A, got %q/%q", c.GEArea, c.Difficulty)
	}
}

func TestNormalizeFullDayNames(t *testing.T) {
	tests := []struct {
		in   string
		want schedule.DaySet
	}{
		{"Monday, Wednesday, Friday", schedule.Day(time.Monday) | schedule.Day(time.Wednesday) | schedule.Day(time.Friday)},
		{"['Tuesday', 'Thursday']", schedule.Day(time.Tuesday) | schedule.Day(time.Thursday)},
		{`["monday"]`, schedule.Day(time.Monday)},
		{"MWF", schedule.Day(time.Monday) | schedule.Day(time.Wednesday) | schedule.Day(time.Friday)},
	}

	for _, tt := range tests {
		c := Course{DaysRaw: tt.in}
		c.Normalize()
		if c.Days != tt.want {
			t.Errorf("DaysRaw %q: got %v, want %v", tt.in, c.Days.Days(), tt.want.Days())
		}
	}
}

// Dirty day/time fields leave the zero values so the course displays as TBA
// and never registers a conflict.
func TestNormalizeDirtyRow(t *testing.T) {
	c := Course{Code: "BAD 1", DaysRaw: "sometime", StartRaw: "noon", EndRaw: "later"}
	c.Normalize()

	if !c.Days.Empty() {
		t.Errorf("Days = %v, want empty", c.Days.Days())
	}
	if c.Start != 0 || c.End != 0 {
		t.Errorf("times = %d-%d, want 0-0", c.Start, c.End)
	}
	if got := c.TimeDisplay(); got != "TBA" {
		t.Errorf("TimeDisplay() = %q, want TBA", got)
	}
}

func TestTimeDisplay(t *testing.T) {
	c := Course{StartRaw: "13:00", EndRaw: "14:00"}
	c.Normalize()
	if got := c.TimeDisplay(); got != "1:00 PM - 2:00 PM" {
		t.Errorf("TimeDisplay() = %q", got)
	}
}

func TestGEAreas(t *testing.T) {
	courses := []Course{
		{GEArea: "Arts & Humanities"},
		{GEArea: "Social Sciences"},
		{GEArea: "Arts & Humanities"},
		{GEArea: "N/A"},
		{GEArea: ""},
	}
	want := []string{"Arts & Humanities", "Social Sciences"}
	if got := GEAreas(courses); !reflect.DeepEqual(got, want) {
		t.Errorf("GEAreas() = %v, want %v", got, want)
	}
}

func TestSample(t *testing.T) {
	courses := Sample()
	if len(courses) != 5 {
		t.Fatalf("got %d courses, want 5", len(courses))
	}
	for _, c := range courses {
		if c.Days.Empty() {
			t.Errorf("%s: empty day set", c.Code)
		}
		if c.End <= c.Start {
			t.Errorf("%s: bad time range %d-%d", c.Code, c.Start, c.End)
		}
		if len(c.Keywords) == 0 {
			t.Errorf("%s: no keywords", c.Code)
		}
	}
}
