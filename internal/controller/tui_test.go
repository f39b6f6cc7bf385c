package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

type quitModel struct{}

func (quitModel) Init() tea.Cmd                       { return tea.Quit }
func (quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return quitModel{}, nil }
func (quitModel) View() string                        { return "" }

func newTestTUI() (*TUI, *bytes.Buffer) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.input = nil

	return tui, &buf
}

func TestTUI_StartWithModelRunsAndFinishes(t *testing.T) {
	tui, _ := newTestTUI()

	require.NoError(t, tui.startWithModel(quitModel{}))
	// Second start is ignored.
	require.NoError(t, tui.startWithModel(quitModel{}))

	waitDone(t, tui)
	assert.NoError(t, tui.Err())

	tui.Close()
	tui.Close()
}

func TestTUI_NotStarted(t *testing.T) {
	tui, buf := newTestTUI()

	tui.FixerStarted(m.Fixer{ID: "fix_a"})
	tui.FixerFinished(m.Fixer{ID: "fix_a"}, m.Report{FixerID: "fix_a", Status: m.StatusApplied})
	tui.Wait()
	tui.Close()

	assert.Empty(t, buf.String())
}

func TestTUI_DisplayMatrix(t *testing.T) {
	tui, buf := newTestTUI()

	err := tui.DisplayMatrix([]domain.MatrixRow{
		{Version: "5.0", Selected: []string{"fix_a", "fix_b"}},
		{Version: "2.0", Selected: []string{}},
	})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Selected fixers")
	assert.Contains(t, output, "fix_a, fix_b")
	assert.Contains(t, output, "none")

	sentinel := errors.New("bad version")
	err = tui.DisplayMatrix([]domain.MatrixRow{{Version: "x!", Err: sentinel}})
	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "x!")
}

func TestTUI_DisplayMethodsAfterStart(t *testing.T) {
	tui, _ := newTestTUI()

	// Marked as started without a program: display calls must not block.
	tui.started = true

	require.NoError(t, tui.DisplayPlan("5.0", nil))
	tui.DisplayUpcomingFixers(3)
	require.NoError(t, tui.DisplayReport(m.RunReport{State: m.StateCompleted}))
}

func TestPlanModel_Lifecycle(t *testing.T) {
	model := newPlanModel()

	assert.NotNil(t, model.Init())
	assert.Equal(t, "Loading fixer plan…\n", model.View())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(planModel)

	updated, _ = model.Update(planMsg{version: "5.0", entries: []domain.PlanEntry{
		{Fixer: m.Fixer{ID: "fix_a", Family: "dummy4.0", AppliedFrom: "4.0", Description: "alias legacy render"}, Relevant: true, Selected: true},
		{Fixer: m.Fixer{ID: "fix_b", Family: "dummy5.0", AppliedFrom: "5.0"}, Relevant: true},
		{Fixer: m.Fixer{ID: "fix_c", Family: "dummy7.0", AppliedFrom: "7.0"}},
	}})
	model = updated.(planModel)

	assert.Equal(t, 3, model.total)
	assert.Equal(t, 2, model.relevant)
	assert.Equal(t, 1, model.selected)
	assert.Equal(t, 0, model.lastSelected)

	view := model.View()
	assert.Contains(t, view, "Compatibility Fixers")
	assert.Contains(t, view, "fix_a")
	assert.Contains(t, view, "alias legacy render")

	_, cmd := model.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(planModel)
	assert.Equal(t, 1, model.lastSelected)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPlanModel_TickBeforeRender(t *testing.T) {
	model := newPlanModel()

	_, cmd := model.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestRunModel_Lifecycle(t *testing.T) {
	model := newRunModel()

	assert.NotNil(t, model.Init())
	assert.InDelta(t, 0, model.percent(), 0.001)

	steps := []tea.Msg{
		tea.WindowSizeMsg{Width: 100, Height: 30},
		upcomingMsg{count: 2},
		fixerStartedMsg{id: "fix_a"},
		fixerFinishedMsg{report: m.Report{FixerID: "fix_a", Status: m.StatusApplied, Duration: time.Millisecond}},
		fixerStartedMsg{id: "fix_b"},
	}
	for _, msg := range steps {
		updated, _ := model.Update(msg)
		model = updated.(runModel)
	}

	assert.Equal(t, "fix_b", model.current)
	assert.InDelta(t, 0.5, model.percent(), 0.001)
	assert.Contains(t, model.View(), "→ fix_b")

	// Navigation is ignored while running.
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(runModel)
	assert.Nil(t, cmd)

	updated, _ = model.Update(fixerFinishedMsg{report: m.Report{FixerID: "fix_b", Status: m.StatusFailed, Error: "boom"}})
	model = updated.(runModel)
	updated, _ = model.Update(reportMsg{report: m.RunReport{State: m.StateAborted, Error: `compatibility fixer "fix_b" failed: boom`}})
	model = updated.(runModel)

	assert.Empty(t, model.current)
	assert.Equal(t, 1, model.count(m.StatusApplied))
	assert.Equal(t, 1, model.count(m.StatusFailed))
	assert.InDelta(t, 1, model.percent(), 0.001)

	view := model.View()
	assert.Contains(t, view, "Applying Compatibility Fixers")
	assert.Contains(t, view, "aborted")
	assert.Contains(t, view, "fix_b")

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRunModel_EmptyRunIsComplete(t *testing.T) {
	model := newRunModel()

	updated, _ := model.Update(reportMsg{report: m.RunReport{State: m.StateCompleted}})
	model = updated.(runModel)

	assert.InDelta(t, 1, model.percent(), 0.001)
}

func TestRunModel_LoadedReportFillsResults(t *testing.T) {
	model := newRunModel()

	updated, _ := model.Update(reportMsg{report: m.RunReport{
		State: m.StateCompleted,
		Reports: []m.Report{
			{FixerID: "fix_a", Status: m.StatusApplied},
			{FixerID: "fix_b", Status: m.StatusSkipped, Reason: "not needed"},
		},
	}})
	model = updated.(runModel)

	assert.Len(t, model.results, 2)
	assert.Equal(t, 2, model.completed)
	assert.Equal(t, 1, model.count(m.StatusSkipped))
	assert.InDelta(t, 1, model.percent(), 0.001)
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"fix_something", 0, ""},
		{"fix_something", 20, "fix_something"},
		{"fix_something", 5, "fix_…"},
		{"fix_something", 1, "…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateToWidth(tt.text, tt.width), "%q/%d", tt.text, tt.width)
	}
}

func TestAnimateScroll(t *testing.T) {
	assert.Equal(t, "short", animateScroll("short", 10, 50))
	assert.Equal(t, "abcd…", animateScroll("abcdefgh", 5, 0))
	assert.Equal(t, "abcde", animateScroll("abcdefgh", 5, 5))
	assert.Equal(t, "bcdef", animateScroll("abcdefgh", 5, 6))
	assert.Empty(t, animateScroll("abcdefgh", 0, 6))
}

func TestListItemFilterValues(t *testing.T) {
	item := newFixerItem(domain.PlanEntry{Fixer: m.Fixer{ID: "fix_a", Family: "dummy4.0"}})
	assert.Equal(t, "fix_a dummy4.0", item.FilterValue())

	result := newResultItem(m.Report{FixerID: "fix_b", Status: m.StatusFailed, Reason: "ignored", Error: "boom"})
	assert.Equal(t, "fix_b failed", result.FilterValue())
	assert.Equal(t, "boom", result.detail)
}

func waitDone(t *testing.T, tui *TUI) {
	t.Helper()

	finished := make(chan struct{})

	go func() {
		tui.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not finish")
	}
}
