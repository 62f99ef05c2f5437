package schedule

import (
	"strings"
	"time"
)

// DaySet is a set of weekdays packed into a bitmask, one bit per time.Weekday.
type DaySet uint8

const emptyDaySet DaySet = 0

// Day returns a set containing a single weekday.
func Day(d time.Weekday) DaySet {
	return 1 << uint(d)
}

func (s DaySet) With(d time.Weekday) DaySet { return s | Day(d) }

func (s DaySet) Has(d time.Weekday) bool { return s&Day(d) != 0 }

// Intersects reports whether the two sets share at least one day.
func (s DaySet) Intersects(other DaySet) bool { return s&other != 0 }

func (s DaySet) Empty() bool { return s == 0 }

// Days lists the members in Sunday-first order.
func (s DaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String renders the set as full day names, e.g. "Monday, Wednesday, Friday".
// Weeks start on Monday for display since that is how schedules are written.
func (s DaySet) String() string {
	if s.Empty() {
		return "TBA"
	}
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var names []string
	for _, d := range order {
		if s.Has(d) {
			names = append(names, d.String())
		}
	}
	return strings.Join(names, ", ")
}

// dayTokens maps abbreviations to weekdays, longest tokens first. The bare
// "T" and "R" entries cover registrar "TR" notation; they only apply after
// the two-letter tokens have had their chance, so "Th" never reads as
// Tuesday plus an unknown "h".
var dayTokens = []struct {
	abbr string
	day  time.Weekday
}{
	{"Tu", time.Tuesday},
	{"Th", time.Thursday},
	{"Sa", time.Saturday},
	{"Su", time.Sunday},
	{"M", time.Monday},
	{"T", time.Tuesday},
	{"W", time.Wednesday},
	{"R", time.Thursday},
	{"F", time.Friday},
}

// ParseDays normalizes a day-abbreviation string ("MWF", "TuTh", "MTWRF")
// into a DaySet. Common patterns are matched outright; anything else is
// scanned left to right, greedily matching two-letter tokens before
// single-letter ones. Unrecognized characters are dropped, so messy input
// degrades to a smaller set rather than an error. Empty input gives an
// empty set.
func ParseDays(raw string) DaySet {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return emptyDaySet
	}

	switch {
	case strings.Contains(raw, "MWF"):
		return Day(time.Monday) | Day(time.Wednesday) | Day(time.Friday)
	case strings.Contains(raw, "TuTh"), strings.Contains(raw, "TTh"):
		return Day(time.Tuesday) | Day(time.Thursday)
	case strings.Contains(raw, "MW"):
		return Day(time.Monday) | Day(time.Wednesday)
	case strings.Contains(raw, "WF"):
		return Day(time.Wednesday) | Day(time.Friday)
	}

	var set DaySet
	for i := 0; i < len(raw); {
		matched := false
		for _, tok := range dayTokens {
			if strings.HasPrefix(raw[i:], tok.abbr) {
				set = set.With(tok.day)
				i += len(tok.abbr)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return set
}
