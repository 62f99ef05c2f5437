package tui

import (
	"fmt"
	"strings"

	"github.com/mopben/coursematch/internal/recommend"
	"github.com/mopben/coursematch/internal/schedule"
)

type resultsModel struct {
	sessions []schedule.Session
	recs     []recommend.Recommendation
}

func (m resultsModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Recommended Courses"))
	sb.WriteString("\n")

	if len(m.sessions) > 0 {
		sb.WriteString(subtitleStyle.Render("Understood schedule:"))
		sb.WriteString("\n")
		for _, s := range m.sessions {
			sb.WriteString(dimStyle.Render("  " + s.String()))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(m.recs) == 0 {
		sb.WriteString(warningStyle.Render("No courses fit your schedule and interests."))
	}

	for i, rec := range m.recs {
		header := fmt.Sprintf("%d. %s — %s", i+1, rec.Course.Code, rec.Course.Title)
		sb.WriteString(highlightStyle.Render(header))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("   %s %s  •  %s  •  %d credits\n",
			rec.Course.Days, rec.Course.TimeDisplay(), rec.Course.GEArea, rec.Course.Credits))
		if len(rec.MatchedTerms) > 0 {
			sb.WriteString(dimStyle.Render("   matches: " + strings.Join(rec.MatchedTerms, ", ")))
			sb.WriteString("\n")
		}
		if rec.Explanation != "" {
			sb.WriteString(dimStyle.Render("   " + rec.Explanation))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("[r]efine search • [q]uit"))
	return sb.String()
}
