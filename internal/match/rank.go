// Package match scores catalog courses against free-text interests.
package match

import (
	"sort"
	"strings"

	"github.com/mopben/coursematch/internal/catalog"
)

// DefaultLimit caps how many results a ranking pass returns.
const DefaultLimit = 5

// Any is the sentinel for a facet filter that should not filter.
const Any = "Any"

// Filters are the categorical constraints applied before scoring. A zero
// value (or the Any sentinel for the string facets) disables that facet.
type Filters struct {
	Difficulty string
	GEArea     string
	MinCredits int
	MaxCredits int
}

// Allows reports whether a course passes every active facet.
func (f Filters) Allows(c catalog.Course) bool {
	if f.Difficulty != "" && f.Difficulty != Any && c.Difficulty != f.Difficulty {
		return false
	}
	if f.GEArea != "" && f.GEArea != Any && c.GEArea != f.GEArea {
		return false
	}
	if f.MinCredits > 0 && c.Credits < f.MinCredits {
		return false
	}
	if f.MaxCredits > 0 && c.Credits > f.MaxCredits {
		return false
	}
	return true
}

// Result pairs a course with its interest score and the tokens that
// produced it.
type Result struct {
	Course       catalog.Course
	Score        int
	MatchedTerms []string
}

// Rank scores candidates against whitespace-separated interest terms and
// returns the best-scoring ones, at most limit (DefaultLimit when limit is
// not positive). A title or description substring hit counts 1 per term; a
// keyword hit counts 2, matching exactly or as a substring in either
// direction. Courses that score zero are dropped. The sort is stable, so
// ties keep catalog order.
func Rank(interests string, candidates []catalog.Course, filters Filters, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	terms := strings.Fields(strings.ToLower(interests))
	if len(terms) == 0 {
		return nil
	}

	var results []Result
	for _, c := range candidates {
		if !filters.Allows(c) {
			continue
		}
		if r, ok := score(terms, c); ok {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func score(terms []string, c catalog.Course) (Result, bool) {
	text := strings.ToLower(c.Title + " " + c.Description)

	r := Result{Course: c}
	seen := make(map[string]bool)
	record := func(term string) {
		if !seen[term] {
			seen[term] = true
			r.MatchedTerms = append(r.MatchedTerms, term)
		}
	}

	for _, term := range terms {
		if strings.Contains(text, term) {
			r.Score++
			record(term)
		}
		if matchesKeyword(term, c.Keywords) {
			r.Score += 2
			record(term)
		}
	}

	if r.Score == 0 {
		return Result{}, false
	}
	return r, true
}

func matchesKeyword(term string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == term || strings.Contains(kw, term) || strings.Contains(term, kw) {
			return true
		}
	}
	return false
}
