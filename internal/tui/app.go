// Package tui is the interactive front end: a form for schedule text,
// interests and facets, and a ranked results view. All recommendation
// logic lives in the engine; this package only collects input and renders
// output.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mopben/coursematch/internal/recommend"
	"github.com/mopben/coursematch/internal/schedule"
)

type viewState int

const (
	formView viewState = iota
	loadingView
	resultsView
)

type recommendMsg struct {
	sessions []schedule.Session
	recs     []recommend.Recommendation
	err      error
}

type App struct {
	state   viewState
	form    formModel
	spinner spinner.Model
	results resultsModel
	errMsg  string

	engine *recommend.Engine
}

func NewApp(engine *recommend.Engine, geAreas []string) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &App{
		state:   formView,
		form:    newFormModel(geAreas),
		spinner: s,
		engine:  engine,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.form.schedule.Focus(), a.spinner.Tick)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case recommendMsg:
		return a.handleRecommend(msg)
	}

	switch a.state {
	case formView:
		return a.updateForm(msg)
	case loadingView:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case resultsView:
		return a.updateResults(msg)
	}

	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+s" {
		a.errMsg = ""
		a.state = loadingView
		return a, tea.Batch(a.spinner.Tick, a.runRecommend())
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a *App) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "r":
			a.state = formView
			return a, a.form.schedule.Focus()
		case "q", "esc":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) runRecommend() tea.Cmd {
	scheduleText := a.form.schedule.Value()
	interests := a.form.interests.Value()
	filters := a.form.Filters()

	return func() tea.Msg {
		ctx := context.Background()
		sessions := a.engine.ExtractSchedule(ctx, scheduleText)
		recs, err := a.engine.RecommendForSessions(ctx, sessions, interests, filters)
		return recommendMsg{sessions: sessions, recs: recs, err: err}
	}
}

func (a *App) handleRecommend(msg recommendMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.state = formView
		switch {
		case errors.Is(msg.err, recommend.ErrNoInterests):
			a.errMsg = "Enter at least one interest first."
		case errors.Is(msg.err, recommend.ErrEmptyCatalog):
			a.errMsg = "No course data loaded — run 'coursematch import' first."
		default:
			a.errMsg = msg.err.Error()
		}
		return a, nil
	}

	a.results = resultsModel{sessions: msg.sessions, recs: msg.recs}
	a.state = resultsView
	return a, nil
}

func (a *App) View() string {
	switch a.state {
	case formView:
		view := a.form.View()
		if a.errMsg != "" {
			view = errorStyle.Render(a.errMsg) + "\n\n" + view
		}
		return view
	case loadingView:
		return a.spinner.View() + " Finding courses that fit your schedule..."
	case resultsView:
		return a.results.View()
	}
	return ""
}
