package schedule

import (
	"regexp"
	"strings"
	"time"

	naturaldate "github.com/tj/go-naturaldate"
)

// Session is one block of a student's existing commitment. Code may be
// empty; day and time alone are enough for conflict checking.
type Session struct {
	Code  string
	Days  DaySet
	Start Minutes
	End   Minutes
}

func (s Session) String() string {
	if s.Code == "" {
		return s.Days.String() + " " + FormatRange(s.Start, s.End)
	}
	return s.Code + " (" + s.Days.String() + " " + FormatRange(s.Start, s.End) + ")"
}

const (
	codePat = `([A-Z]+(?:\s+[A-Z]+)*\s*\d+[A-Z]*)`
	dayPat  = `((?:M|Tu|Th|W|F|Sa|Su|T|R)+)`
	timePat = `(\d{1,2}(?::\d{2})?\s*(?:[AaPp][Mm])?)`
)

// Structured patterns, in fixed priority order. The first that matches a
// segment wins.
var segmentPatterns = []*regexp.Regexp{
	// "COM SCI 188 (MWF 1:00-2:00)"
	regexp.MustCompile(codePat + `\s*\(\s*` + dayPat + `\s+` + timePat + `\s*-\s*` + timePat + `\s*\)`),
	// "MATH 31A MWF 9-10"
	regexp.MustCompile(codePat + `\s+` + dayPat + `\s+` + timePat + `\s*-\s*` + timePat),
	// "LING 20 - TuTh 3:00-4:30"
	regexp.MustCompile(codePat + `\s*-\s*` + dayPat + `\s+` + timePat + `\s*-\s*` + timePat),
}

// Codeless fallback: a day token and a time range anywhere in the segment,
// e.g. "something on TuTh 9am-10:30am".
var looseRe = regexp.MustCompile(dayPat + `\s+` + timePat + `\s*-\s*` + timePat)

// ParseSchedule extracts sessions from comma-separated free text describing
// a current schedule. Parsing is best effort: each segment is tried against
// the structured patterns first, then a permissive codeless form, then a
// natural-language reading. Segments that match nothing are dropped rather
// than reported, so the result may be shorter than the input.
func ParseSchedule(text string) []Session {
	var sessions []Session
	for _, segment := range strings.Split(text, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if s, ok := parseSegment(segment); ok {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

func parseSegment(segment string) (Session, bool) {
	for _, re := range segmentPatterns {
		if m := re.FindStringSubmatch(segment); m != nil {
			if s, ok := buildSession(m[1], m[2], m[3], m[4]); ok {
				return s, true
			}
		}
	}
	if m := looseRe.FindStringSubmatch(segment); m != nil {
		if s, ok := buildSession("", m[1], m[2], m[3]); ok {
			return s, true
		}
	}
	return parseNatural(segment)
}

func buildSession(code, days, start, end string) (Session, bool) {
	daySet := ParseDays(days)
	if daySet.Empty() {
		return Session{}, false
	}
	startMin, err := ParseTime(start)
	if err != nil {
		return Session{}, false
	}
	endMin, err := ParseTime(end)
	if err != nil {
		return Session{}, false
	}
	if endMin <= startMin {
		return Session{}, false
	}
	return Session{
		Code:  strings.TrimSpace(code),
		Days:  daySet,
		Start: startMin,
		End:   endMin,
	}, true
}

// naturalBase anchors relative phrases like "thursday at 2pm" to a fixed
// week so parsing is deterministic. 2024-01-01 is a Monday.
var naturalBase = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// parseNatural salvages segments written as prose, e.g.
// "chem lab thursday at 2pm until 5pm". The left side of the range must
// resolve to a weekday and clock time; the right side supplies the end time.
func parseNatural(segment string) (Session, bool) {
	left, right, ok := splitRange(segment)
	if !ok {
		return Session{}, false
	}

	startAt, err := naturaldate.Parse(left, naturalBase, naturaldate.WithDirection(naturaldate.Future))
	if err != nil || startAt.Equal(naturalBase) {
		return Session{}, false
	}
	endAt, err := naturaldate.Parse(right, naturalBase, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return Session{}, false
	}

	start := Minutes(startAt.Hour()*60 + startAt.Minute())
	end := Minutes(endAt.Hour()*60 + endAt.Minute())
	if end <= start {
		return Session{}, false
	}
	return Session{
		Days:  Day(startAt.Weekday()),
		Start: start,
		End:   end,
	}, true
}

func splitRange(segment string) (left, right string, ok bool) {
	for _, sep := range []string{" until ", " to ", "-"} {
		if l, r, found := strings.Cut(segment, sep); found {
			l, r = strings.TrimSpace(l), strings.TrimSpace(r)
			if l != "" && r != "" {
				return l, r, true
			}
		}
	}
	return "", "", false
}
