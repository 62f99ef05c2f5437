package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mopben/coursematch/internal/match"
)

type formField int

const (
	fieldSchedule formField = iota
	fieldInterests
	fieldDifficulty
	fieldGEArea
	fieldCredits
	fieldCount
)

var difficultyChoices = []string{match.Any, "Beginner", "Intermediate", "Advanced"}

var creditChoices = []struct {
	label    string
	min, max int
}{
	{match.Any, 0, 0},
	{"1-2", 1, 2},
	{"3-4", 3, 4},
	{"5+", 5, 0},
}

type formModel struct {
	schedule  textarea.Model
	interests textarea.Model
	geChoices []string

	focus      formField
	difficulty int
	geArea     int
	credits    int
}

func newFormModel(geAreas []string) formModel {
	sched := textarea.New()
	sched.Placeholder = "COM SCI 188 (MWF 1pm-2pm), LING 20 (TuTh 3:00pm-4:30pm)"
	sched.Focus()
	sched.CharLimit = 500
	sched.SetWidth(64)
	sched.SetHeight(3)
	sched.ShowLineNumbers = false

	ints := textarea.New()
	ints.Placeholder = "artificial intelligence, linguistics, cognitive science..."
	ints.CharLimit = 300
	ints.SetWidth(64)
	ints.SetHeight(2)
	ints.ShowLineNumbers = false

	return formModel{
		schedule:  sched,
		interests: ints,
		geChoices: append([]string{match.Any}, geAreas...),
	}
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return m.moveFocus(1), nil
		case "shift+tab":
			return m.moveFocus(-1), nil
		case "left", "right":
			if m.focus >= fieldDifficulty {
				m.cycleFacet(keyMsg.String() == "right")
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldSchedule:
		m.schedule, cmd = m.schedule.Update(msg)
	case fieldInterests:
		m.interests, cmd = m.interests.Update(msg)
	}
	return m, cmd
}

func (m formModel) moveFocus(delta int) formModel {
	m.schedule.Blur()
	m.interests.Blur()

	m.focus = (m.focus + formField(delta) + fieldCount) % fieldCount
	switch m.focus {
	case fieldSchedule:
		m.schedule.Focus()
	case fieldInterests:
		m.interests.Focus()
	}
	return m
}

func (m *formModel) cycleFacet(forward bool) {
	step := 1
	if !forward {
		step = -1
	}
	switch m.focus {
	case fieldDifficulty:
		n := len(difficultyChoices)
		m.difficulty = (m.difficulty + step + n) % n
	case fieldGEArea:
		n := len(m.geChoices)
		m.geArea = (m.geArea + step + n) % n
	case fieldCredits:
		n := len(creditChoices)
		m.credits = (m.credits + step + n) % n
	}
}

func (m formModel) Filters() match.Filters {
	c := creditChoices[m.credits]
	return match.Filters{
		Difficulty: difficultyChoices[m.difficulty],
		GEArea:     m.geChoices[m.geArea],
		MinCredits: c.min,
		MaxCredits: c.max,
	}
}

func (m formModel) View() string {
	header := titleStyle.Render("coursematch — Find Courses")

	facets := fmt.Sprintf("%s  %s  %s",
		m.facet(fieldDifficulty, "Difficulty", difficultyChoices[m.difficulty]),
		m.facet(fieldGEArea, "GE Area", m.geChoices[m.geArea]),
		m.facet(fieldCredits, "Credits", creditChoices[m.credits].label),
	)

	help := helpStyle.Render("Tab: next field • ←/→: change facet • Ctrl+S: find courses • Ctrl+C: quit")

	return header + "\n" +
		labelStyle.Render("Current schedule") + "\n" + m.schedule.View() + "\n\n" +
		labelStyle.Render("Interests") + "\n" + m.interests.View() + "\n\n" +
		facets + "\n" + help
}

func (m formModel) facet(f formField, name, value string) string {
	label := fmt.Sprintf("%s: %s", name, value)
	if m.focus == f {
		return highlightStyle.Render("> " + label)
	}
	return dimStyle.Render("  " + label)
}
