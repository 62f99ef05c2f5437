package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/schedule"
)

// Response schemas are reflected from the Go types so the structured-output
// contract can never drift from what we unmarshal.
var (
	extractSchema = mustSchema(&extractResponse{})
	rankSchema    = mustSchema(&rankResponse{})
)

func mustSchema(v any) string {
	r := jsonschema.Reflector{DoNotReference: true}
	data, err := json.Marshal(r.Reflect(v))
	if err != nil {
		panic("reflecting schema: " + err.Error())
	}
	return string(data)
}

const extractSystemPrompt = `You extract course schedule information from student text.

Rules:
- Days use registrar abbreviations: M, Tu, W, Th, F (e.g. "MWF", "TuTh")
- Times are 24-hour "HH:MM"
- Only report courses the text actually mentions; never invent one
- If nothing parses, return an empty courses array

Return valid JSON matching the required schema.`

func buildExtractUserPrompt(text string) string {
	return fmt.Sprintf("My current schedule: %s", text)
}

func buildRankSystemPrompt(candidates []catalog.Course) string {
	type courseInfo struct {
		Code        string   `json:"code"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Keywords    []string `json:"keywords,omitempty"`
	}

	var list []courseInfo
	for _, c := range candidates {
		list = append(list, courseInfo{
			Code:        c.Code,
			Title:       c.Title,
			Description: c.Description,
			Keywords:    c.Keywords,
		})
	}
	coursesJSON, _ := json.Marshal(list)

	return fmt.Sprintf(`You are a course recommendation system for university students.

Available courses (already filtered for schedule compatibility):
%s

Task: rank these courses by how well they match the student's interests. Consider:
1. Semantic similarity between interests and course description/keywords
2. Academic progression and complementary subjects
3. Interdisciplinary connections

Rules:
- Use exact course codes from the list above; never add a course that is not listed
- relevance_score is between 0 and 1, highest first
- interest_matches lists the interest terms each course satisfies
- Keep explanations to one or two sentences

Return valid JSON matching the required schema.`, string(coursesJSON))
}

func buildRankUserPrompt(interests string) string {
	return fmt.Sprintf("My interests: %s", interests)
}

// sessionsFromExtracted normalizes provider-reported schedule blocks,
// dropping any with unusable days or times.
func sessionsFromExtracted(courses []ExtractedCourse) []schedule.Session {
	var sessions []schedule.Session
	for _, c := range courses {
		days := schedule.ParseDays(c.Days)
		if days.Empty() {
			continue
		}
		start, err := schedule.ParseTime(c.StartTime)
		if err != nil {
			continue
		}
		end, err := schedule.ParseTime(c.EndTime)
		if err != nil || end <= start {
			continue
		}
		sessions = append(sessions, schedule.Session{
			Code:  strings.TrimSpace(c.Code),
			Days:  days,
			Start: start,
			End:   end,
		})
	}
	return sessions
}
