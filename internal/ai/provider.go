// Package ai abstracts the optional model-backed paths of the recommender:
// schedule extraction from free text and interest-based ranking. Every
// variant implements the same Provider interface; the deterministic variant
// is always available and the orchestrator falls back to it whenever a
// remote variant errors or times out.
package ai

import (
	"context"

	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/schedule"
)

type Provider interface {
	// ExtractSchedule turns free text describing a current schedule into
	// sessions.
	ExtractSchedule(ctx context.Context, text string) ([]schedule.Session, error)

	// RankCourses orders candidates by how well they fit the interests.
	// Candidates are already conflict- and facet-filtered; implementations
	// must only reorder and annotate, never resurrect a filtered course.
	RankCourses(ctx context.Context, interests string, candidates []catalog.Course) ([]Recommendation, error)
}
