package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Minutes is a time of day expressed as minutes since midnight, in [0, 1440).
type Minutes int

// ErrMalformedTime is returned when a time string cannot be normalized.
var ErrMalformedTime = errors.New("malformed time")

var timeRe = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*$`)

// ParseTime normalizes a human-entered clock time to minutes since midnight.
// Accepted forms: "9", "9:30", "1pm", "1:30pm", "13:00". Minutes default to
// :00 when absent. When no am/pm suffix is given, hours below 8 are read as
// afternoon times (class listings rarely start before 8am), hours 8 and up
// are taken as already unambiguous or 24-hour.
func ParseTime(raw string) (Minutes, error) {
	m := timeRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
		}
	}
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	switch strings.ToLower(m[3]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 8 {
			hour += 12
		}
	}

	if hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	return Minutes(hour*60 + minute), nil
}

// FormatTime renders minutes since midnight in 12-hour form, e.g. "1:30 PM".
func FormatTime(t Minutes) string {
	hour := int(t) / 60
	minute := int(t) % 60

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%02d AM", minute)
	case hour < 12:
		return fmt.Sprintf("%d:%02d AM", hour, minute)
	case hour == 12:
		return fmt.Sprintf("12:%02d PM", minute)
	default:
		return fmt.Sprintf("%d:%02d PM", hour-12, minute)
	}
}

// FormatRange renders a start/end pair, e.g. "1:00 PM - 2:00 PM".
func FormatRange(start, end Minutes) string {
	return FormatTime(start) + " - " + FormatTime(end)
}
