package ai

// Recommendation is one ranked course as returned by a provider. Codes are
// resolved back against the candidate list by the caller; a code that is
// not among the candidates is discarded there.
type Recommendation struct {
	CourseCode      string   `json:"course_code"`
	RelevanceScore  float64  `json:"relevance_score"`
	Explanation     string   `json:"explanation,omitempty"`
	InterestMatches []string `json:"interest_matches,omitempty"`
}

type rankResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// ExtractedCourse is one schedule block as a remote provider reports it.
type ExtractedCourse struct {
	Code      string `json:"code"`
	Days      string `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type extractResponse struct {
	Courses []ExtractedCourse `json:"courses"`
}
