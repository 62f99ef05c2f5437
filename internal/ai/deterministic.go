package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/match"
	"github.com/mopben/coursematch/internal/schedule"
)

// Deterministic implements Provider with the regex parser and keyword
// ranker. It never errors and never blocks, which makes it both the default
// provider and the fallback behind every remote one.
type Deterministic struct {
	// Limit caps RankCourses output; zero means match.DefaultLimit.
	Limit int
}

func (d Deterministic) ExtractSchedule(ctx context.Context, text string) ([]schedule.Session, error) {
	return schedule.ParseSchedule(text), nil
}

func (d Deterministic) RankCourses(ctx context.Context, interests string, candidates []catalog.Course) ([]Recommendation, error) {
	results := match.Rank(interests, candidates, match.Filters{}, d.Limit)

	recs := make([]Recommendation, 0, len(results))
	for _, r := range results {
		recs = append(recs, Recommendation{
			CourseCode:      r.Course.Code,
			RelevanceScore:  float64(r.Score),
			Explanation:     fmt.Sprintf("Matches interests: %s", strings.Join(r.MatchedTerms, ", ")),
			InterestMatches: r.MatchedTerms,
		})
	}
	return recs, nil
}
