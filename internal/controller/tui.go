package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. The program
// runs in the background; Display methods and run callbacks feed it messages.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the Bubble Tea program for the given mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{mode: ModeList}
	for _, opt := range options {
		opt(&cfg)
	}

	var model tea.Model = newPlanModel()
	if cfg.mode == ModeRun {
		model = newRunModel()
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, err := p.Run()

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}(t.program, t.done)

	return nil
}

func (t *TUI) ensureStarted(options ...StartOption) {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start(options...)
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Send(msg)
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	p, done := t.program, t.done
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayPlan shows the plan in the interactive list.
func (t *TUI) DisplayPlan(version string, entries []domain.PlanEntry) error {
	t.ensureStarted(WithListMode())
	t.send(planMsg{version: version, entries: entries})

	return nil
}

// DisplayMatrix prints a static table; it needs no interaction.
func (t *TUI) DisplayMatrix(rows []domain.MatrixRow) error {
	_, err := fmt.Fprintln(t.output, renderMatrix(rows))
	if err != nil {
		return err
	}

	for _, row := range rows {
		if row.Err != nil {
			return fmt.Errorf("version %s could not be evaluated: %w", row.Version, row.Err)
		}
	}

	return nil
}

// DisplayUpcomingFixers sets the length of the progress bar.
func (t *TUI) DisplayUpcomingFixers(count int) {
	t.ensureStarted(WithRunMode())
	t.send(upcomingMsg{count: count})
}

// FixerStarted marks the fixer as current.
func (t *TUI) FixerStarted(fixer m.Fixer) {
	t.send(fixerStartedMsg{id: fixer.ID})
}

// FixerFinished appends the outcome to the results list.
func (t *TUI) FixerFinished(_ m.Fixer, report m.Report) {
	t.send(fixerFinishedMsg{report: report})
}

// DisplayReport switches the run view to its final state.
func (t *TUI) DisplayReport(report m.RunReport) error {
	t.ensureStarted(WithRunMode())
	t.send(reportMsg{report: report})

	return nil
}

func renderMatrix(rows []domain.MatrixRow) string {
	versionWidth := len("Version")
	for _, row := range rows {
		versionWidth = max(versionWidth, lipgloss.Width(row.Version))
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	version := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Width(versionWidth)
	fixer := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	failed := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	lines := []string{header.Render(fmt.Sprintf("%-*s  %s", versionWidth, "Version", "Selected fixers"))}

	for _, row := range rows {
		var cell string

		switch {
		case row.Err != nil:
			cell = failed.Render(row.Err.Error())
		case len(row.Selected) == 0:
			cell = muted.Render("none")
		default:
			cell = fixer.Render(strings.Join(row.Selected, ", "))
		}

		lines = append(lines, version.Render(row.Version)+"  "+cell)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
