package ai

import (
	"context"
	"testing"
	"time"

	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/schedule"
)

func TestDeterministicExtractSchedule(t *testing.T) {
	var d Deterministic
	sessions, err := d.ExtractSchedule(context.Background(), "COM SCI 188 (MWF 13:00-14:00)")
	if err != nil {
		t.Fatalf("ExtractSchedule error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Code != "COM SCI 188" {
		t.Errorf("code = %q, want COM SCI 188", sessions[0].Code)
	}
}

func TestDeterministicRankCourses(t *testing.T) {
	var d Deterministic
	recs, err := d.RankCourses(context.Background(), "linguistics", catalog.Sample())
	if err != nil {
		t.Fatalf("RankCourses error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	rec := recs[0]
	if rec.CourseCode != "LING 20" {
		t.Errorf("code = %q, want LING 20", rec.CourseCode)
	}
	if rec.RelevanceScore <= 0 {
		t.Errorf("relevance score = %v, want > 0", rec.RelevanceScore)
	}
	if rec.Explanation == "" {
		t.Error("expected an explanation")
	}
	if len(rec.InterestMatches) != 1 || rec.InterestMatches[0] != "linguistics" {
		t.Errorf("interest matches = %v", rec.InterestMatches)
	}
}

func TestDeterministicRankLimit(t *testing.T) {
	d := Deterministic{Limit: 1}
	recs, err := d.RankCourses(context.Background(), "mind", catalog.Sample())
	if err != nil {
		t.Fatalf("RankCourses error: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("got %d recommendations, want 1", len(recs))
	}
}

func TestSessionsFromExtracted(t *testing.T) {
	extracted := []ExtractedCourse{
		{Code: "LING 20", Days: "TuTh", StartTime: "15:00", EndTime: "16:30"},
		{Code: "BAD DAYS", Days: "xyz", StartTime: "9:00", EndTime: "10:00"},
		{Code: "BAD TIME", Days: "MWF", StartTime: "noon", EndTime: "13:00"},
		{Code: "INVERTED", Days: "MWF", StartTime: "14:00", EndTime: "13:00"},
	}

	sessions := sessionsFromExtracted(extracted)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1 (bad rows dropped)", len(sessions))
	}
	want := schedule.Session{
		Code:  "LING 20",
		Days:  schedule.Day(time.Tuesday) | schedule.Day(time.Thursday),
		Start: 900,
		End:   990,
	}
	if sessions[0] != want {
		t.Errorf("got %+v, want %+v", sessions[0], want)
	}
}
