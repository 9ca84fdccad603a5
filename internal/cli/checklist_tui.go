package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/rampkit/rampup/internal/service"
)

type checklistKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Quit   key.Binding
}

var checklistKeys = checklistKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter")),
	All:    key.NewBinding(key.WithKeys("a")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// checklistModel is the interactive day checklist. Every toggle is written
// through the service immediately; quitting never loses state.
type checklistModel struct {
	ctx        context.Context
	onboarding service.OnboardingService
	reports    service.ReportService
	repID      string
	day        int
	now        time.Time

	view   *app.DayView
	cursor int
	err    error
}

func newChecklistModel(ctx context.Context, a *App, repID string, day int, view *app.DayView) checklistModel {
	return checklistModel{
		ctx:        ctx,
		onboarding: a.Onboarding,
		reports:    a.Reports,
		repID:      repID,
		day:        day,
		now:        time.Now(),
		view:       view,
	}
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, checklistKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, checklistKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, checklistKeys.Down):
		if m.cursor < len(m.view.Activities)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, checklistKeys.Toggle):
		if _, err := m.onboarding.ToggleActivity(m.ctx, m.repID, m.day, m.cursor); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m.reload()

	case key.Matches(keyMsg, checklistKeys.All):
		if err := m.onboarding.ToggleDay(m.ctx, m.repID, m.day); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m.reload()
	}

	return m, nil
}

func (m checklistModel) reload() (tea.Model, tea.Cmd) {
	view, err := m.reports.BuildDay(m.ctx, m.repID, m.day, m.now)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.view = view
	return m, nil
}

func (m checklistModel) View() string {
	if m.err != nil {
		return ""
	}

	s := formatter.Bold(fmt.Sprintf("Day %d: %s", m.view.Day, m.view.Title)) + "\n\n"
	for i, activity := range m.view.Activities {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		done := i < len(m.view.Done) && m.view.Done[i]
		s += fmt.Sprintf("%s%s %s\n", cursor, formatter.CheckMark(done), activity)
	}
	s += "\n" + formatter.Dim("space toggle · a toggle all · q quit") + "\n"
	return s
}

// runChecklist launches the checklist TUI for one day.
func runChecklist(ctx context.Context, a *App, repID string, day int) error {
	view, err := a.Reports.BuildDay(ctx, repID, day, time.Now())
	if err != nil {
		return err
	}

	model := newChecklistModel(ctx, a, repID, day, view)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(checklistModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
