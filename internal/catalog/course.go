// Package catalog holds the course table the recommender draws from. A
// catalog is loaded once and treated as a read-only snapshot; every field
// that needs interpretation (days, times, keywords) is normalized up front
// so the pipeline never parses per request.
package catalog

import (
	"strings"
	"time"

	"github.com/mopben/coursematch/internal/schedule"
)

// Course is one catalog entry. The Raw fields carry the source text as
// loaded; Days, Start, End and Keywords are their normalized forms. A row
// whose day/time fields cannot be normalized keeps the zero values, which
// the conflict detector treats as "cannot determine overlap".
type Course struct {
	Code        string `csv:"code" json:"code"`
	Title       string `csv:"title" json:"title"`
	Description string `csv:"description" json:"description"`
	DaysRaw     string `csv:"days" json:"days"`
	StartRaw    string `csv:"start_time" json:"start_time"`
	EndRaw      string `csv:"end_time" json:"end_time"`
	GEArea      string `csv:"ge_area" json:"ge_area"`
	Credits     int    `csv:"credits" json:"credits"`
	Difficulty  string `csv:"difficulty" json:"difficulty"`
	KeywordsRaw string `csv:"keywords" json:"-"`

	Days     schedule.DaySet  `csv:"-" json:"-"`
	Start    schedule.Minutes `csv:"-" json:"-"`
	End      schedule.Minutes `csv:"-" json:"-"`
	Keywords []string         `csv:"-" json:"keywords"`
}

var fullDayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Normalize fills the derived fields from the raw ones, best effort. It
// never fails: a dirty row ends up with an empty day set or a zero time
// range and simply never conflicts and never hides anything.
func (c *Course) Normalize() {
	c.Days = parseDaysField(c.DaysRaw)

	if start, err := schedule.ParseTime(c.StartRaw); err == nil {
		if end, err := schedule.ParseTime(c.EndRaw); err == nil && end > start {
			c.Start, c.End = start, end
		}
	}

	if c.GEArea == "" {
		c.GEArea = "N/A"
	}
	if c.Difficulty == "" {
		c.Difficulty = "N/A"
	}

	c.Keywords = c.Keywords[:0]
	for _, kw := range strings.Split(c.KeywordsRaw, ";") {
		if kw = strings.TrimSpace(kw); kw != "" {
			c.Keywords = append(c.Keywords, kw)
		}
	}
}

// TimeDisplay renders the course meeting time for output, or "TBA" when the
// row had no usable times.
func (c *Course) TimeDisplay() string {
	if c.End <= c.Start {
		return "TBA"
	}
	return schedule.FormatRange(c.Start, c.End)
}

// parseDaysField accepts both registrar abbreviations ("MWF", "TuTh") and
// full day-name lists ("Monday, Wednesday, Friday"), including the
// bracketed list form some exports produce.
func parseDaysField(raw string) schedule.DaySet {
	cleaned := strings.NewReplacer("[", "", "]", "", "'", "", `"`, "").Replace(raw)

	var set schedule.DaySet
	for _, part := range strings.Split(cleaned, ",") {
		if d, ok := fullDayNames[strings.ToLower(strings.TrimSpace(part))]; ok {
			set = set.With(d)
		}
	}
	if !set.Empty() {
		return set
	}
	return schedule.ParseDays(cleaned)
}

// GEAreas returns the distinct GE areas present, in first-seen order, for
// building facet choices.
func GEAreas(courses []Course) []string {
	seen := make(map[string]bool)
	var areas []string
	for _, c := range courses {
		if c.GEArea == "" || c.GEArea == "N/A" || seen[c.GEArea] {
			continue
		}
		seen[c.GEArea] = true
		areas = append(areas, c.GEArea)
	}
	return areas
}
