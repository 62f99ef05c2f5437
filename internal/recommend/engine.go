// Package recommend composes the schedule parser, conflict detector and
// interest ranker into the recommendation pipeline. The engine holds the
// catalog snapshot and an AI provider; it owns the provider timeout and the
// fallback to the deterministic path, and it always conflict-filters
// deterministically so no provider can surface a conflicting course.
package recommend

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mopben/coursematch/internal/ai"
	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/match"
	"github.com/mopben/coursematch/internal/schedule"
)

var (
	// ErrEmptyCatalog means no course data was loaded; distinct from a
	// query that simply has no matches.
	ErrEmptyCatalog = errors.New("no courses loaded")

	// ErrNoInterests means the caller supplied no interest text; shown to
	// the user as a prompt, not treated as an internal failure.
	ErrNoInterests = errors.New("no interests supplied")
)

// Recommendation is one entry of the final ranked output.
type Recommendation struct {
	Course       catalog.Course
	Score        float64
	MatchedTerms []string
	Explanation  string
}

const defaultTimeout = 30 * time.Second

type Engine struct {
	courses  []catalog.Course
	provider ai.Provider
	fallback ai.Deterministic
	timeout  time.Duration
	limit    int
	logger   *slog.Logger
}

// Options configure an Engine. The zero value gives the deterministic
// provider, the default result limit and a discarded log.
type Options struct {
	Provider ai.Provider
	Timeout  time.Duration
	Limit    int
	Logger   *slog.Logger
}

// New builds an engine over a catalog snapshot. The catalog is never
// mutated, so one engine may serve concurrent requests.
func New(courses []catalog.Course, opts Options) *Engine {
	limit := opts.Limit
	if limit <= 0 {
		limit = match.DefaultLimit
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fallback := ai.Deterministic{Limit: limit}
	provider := opts.Provider
	if provider == nil {
		provider = fallback
	}
	return &Engine{
		courses:  courses,
		provider: provider,
		fallback: fallback,
		timeout:  timeout,
		limit:    limit,
		logger:   logger,
	}
}

// Recommend runs the full pipeline on free-text inputs: parse the current
// schedule, drop conflicting and filtered-out courses, rank the rest.
// An empty result is not an error; it means nothing fit.
func (e *Engine) Recommend(ctx context.Context, scheduleText, interests string, filters match.Filters) ([]Recommendation, error) {
	sessions := e.ExtractSchedule(ctx, scheduleText)
	return e.RecommendForSessions(ctx, sessions, interests, filters)
}

// RecommendForSessions is Recommend with an already-parsed schedule, e.g.
// one imported from an ICS feed.
func (e *Engine) RecommendForSessions(ctx context.Context, sessions []schedule.Session, interests string, filters match.Filters) ([]Recommendation, error) {
	if strings.TrimSpace(interests) == "" {
		return nil, ErrNoInterests
	}
	if len(e.courses) == 0 {
		return nil, ErrEmptyCatalog
	}

	var candidates []catalog.Course
	for _, c := range e.courses {
		if schedule.HasConflict(sessions, c.Days, c.Start, c.End) {
			continue
		}
		if !filters.Allows(c) {
			continue
		}
		candidates = append(candidates, c)
	}
	e.logger.Debug("filtered candidates",
		"catalog", len(e.courses),
		"sessions", len(sessions),
		"candidates", len(candidates),
	)
	if len(candidates) == 0 {
		return nil, nil
	}

	recs := e.rank(ctx, interests, candidates)
	return resolve(recs, candidates, e.limit), nil
}

// ExtractSchedule parses schedule text through the configured provider,
// falling back to the regex parser on any provider failure.
func (e *Engine) ExtractSchedule(ctx context.Context, text string) []schedule.Session {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	sessions, err := e.provider.ExtractSchedule(callCtx, text)
	if err != nil {
		e.logger.Warn("schedule extraction failed, using deterministic parser", "error", err)
		sessions, _ = e.fallback.ExtractSchedule(ctx, text)
	}
	return sessions
}

func (e *Engine) rank(ctx context.Context, interests string, candidates []catalog.Course) []ai.Recommendation {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	recs, err := e.provider.RankCourses(callCtx, interests, candidates)
	if err != nil {
		e.logger.Warn("ranking failed, using deterministic ranker", "error", err)
		recs, _ = e.fallback.RankCourses(ctx, interests, candidates)
	}
	return recs
}

// resolve maps provider recommendations back onto the candidate list. Codes
// the provider invented are dropped; a provider can only reorder what the
// deterministic filters let through.
func resolve(recs []ai.Recommendation, candidates []catalog.Course, limit int) []Recommendation {
	byCode := make(map[string]catalog.Course, len(candidates))
	for _, c := range candidates {
		byCode[c.Code] = c
	}

	var out []Recommendation
	for _, rec := range recs {
		course, ok := byCode[rec.CourseCode]
		if !ok {
			continue
		}
		out = append(out, Recommendation{
			Course:       course,
			Score:        rec.RelevanceScore,
			MatchedTerms: rec.InterestMatches,
			Explanation:  rec.Explanation,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}
