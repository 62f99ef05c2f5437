package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/mopben/coursematch/internal/ai"
	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/match"
	"github.com/mopben/coursematch/internal/schedule"
)

// failingProvider errors on every call, forcing the deterministic fallback.
type failingProvider struct{}

func (failingProvider) ExtractSchedule(ctx context.Context, text string) ([]schedule.Session, error) {
	return nil, errors.New("provider unavailable")
}

func (failingProvider) RankCourses(ctx context.Context, interests string, candidates []catalog.Course) ([]ai.Recommendation, error) {
	return nil, errors.New("provider unavailable")
}

// fixedProvider returns a canned ranking regardless of input.
type fixedProvider struct {
	recs []ai.Recommendation
}

func (fixedProvider) ExtractSchedule(ctx context.Context, text string) ([]schedule.Session, error) {
	return schedule.ParseSchedule(text), nil
}

func (p fixedProvider) RankCourses(ctx context.Context, interests string, candidates []catalog.Course) ([]ai.Recommendation, error) {
	return p.recs, nil
}

func TestRecommend(t *testing.T) {
	engine := New(catalog.Sample(), Options{})

	recs, err := engine.Recommend(context.Background(),
		"COM SCI 188 (MWF 13:00-14:00)", "linguistics language cognition", match.Filters{})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Course.Code != "LING 20" || recs[1].Course.Code != "COG SCI 1" {
		t.Errorf("got order %s, %s; want LING 20, COG SCI 1", recs[0].Course.Code, recs[1].Course.Code)
	}
	if recs[0].Score <= recs[1].Score {
		t.Errorf("scores not descending: %v then %v", recs[0].Score, recs[1].Score)
	}
	for _, rec := range recs {
		if rec.Course.Code == "COM SCI 188" {
			t.Error("recommended a course conflicting with the schedule")
		}
	}
}

func TestRecommendNoInterests(t *testing.T) {
	engine := New(catalog.Sample(), Options{})
	for _, interests := range []string{"", "   "} {
		if _, err := engine.Recommend(context.Background(), "", interests, match.Filters{}); !errors.Is(err, ErrNoInterests) {
			t.Errorf("interests %q: error = %v, want ErrNoInterests", interests, err)
		}
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	engine := New(nil, Options{})
	if _, err := engine.Recommend(context.Background(), "", "linguistics", match.Filters{}); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("error = %v, want ErrEmptyCatalog", err)
	}
}

// Nothing surviving the filters is an empty result, not an error.
func TestRecommendNoCandidates(t *testing.T) {
	engine := New(catalog.Sample(), Options{})
	recs, err := engine.Recommend(context.Background(), "", "linguistics", match.Filters{Difficulty: "Advanced"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want none", len(recs))
	}
}

// A broken provider degrades to the deterministic path instead of failing
// the request.
func TestRecommendProviderFallback(t *testing.T) {
	withProvider := New(catalog.Sample(), Options{Provider: failingProvider{}})
	deterministic := New(catalog.Sample(), Options{})

	ctx := context.Background()
	scheduleText := "COM SCI 188 (MWF 13:00-14:00)"
	interests := "linguistics"

	got, err := withProvider.Recommend(ctx, scheduleText, interests, match.Filters{})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	want, err := deterministic.Recommend(ctx, scheduleText, interests, match.Filters{})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("fallback returned %d recommendations, deterministic %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Course.Code != want[i].Course.Code {
			t.Errorf("result %d: %s vs %s", i, got[i].Course.Code, want[i].Course.Code)
		}
	}
}

// A provider can only reorder the filtered candidates. Codes it invents, and
// codes the conflict filter removed, never reach the output.
func TestRecommendDropsInventedAndConflicting(t *testing.T) {
	provider := fixedProvider{recs: []ai.Recommendation{
		{CourseCode: "FAKE 101", RelevanceScore: 99},
		{CourseCode: "COM SCI 188", RelevanceScore: 90}, // conflicts with the schedule below
		{CourseCode: "LING 20", RelevanceScore: 80},
	}}
	engine := New(catalog.Sample(), Options{Provider: provider})

	recs, err := engine.Recommend(context.Background(),
		"my seminar MWF 1:00-2:00", "linguistics", match.Filters{})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Course.Code != "LING 20" {
		t.Errorf("got %s, want LING 20", recs[0].Course.Code)
	}
}

func TestRecommendLimit(t *testing.T) {
	engine := New(catalog.Sample(), Options{Limit: 1})
	recs, err := engine.Recommend(context.Background(), "", "mind", match.Filters{})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("got %d recommendations, want 1", len(recs))
	}
}

func TestExtractScheduleFallback(t *testing.T) {
	engine := New(catalog.Sample(), Options{Provider: failingProvider{}})
	sessions := engine.ExtractSchedule(context.Background(), "COM SCI 188 (MWF 13:00-14:00)")
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Code != "COM SCI 188" {
		t.Errorf("got %s, want COM SCI 188", sessions[0].Code)
	}
}

func TestExtractScheduleEmptyText(t *testing.T) {
	engine := New(catalog.Sample(), Options{})
	if sessions := engine.ExtractSchedule(context.Background(), "  "); sessions != nil {
		t.Errorf("got %v, want nil", sessions)
	}
}
