package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/compatfix/internal/model"
)

var statusColors = map[model.OutcomeStatus]lipgloss.Color{
	model.StatusApplied: lipgloss.Color("2"),
	model.StatusSkipped: lipgloss.Color("3"),
	model.StatusFailed:  lipgloss.Color("1"),
}

// resultDelegate renders one fixer outcome per line.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	// status (8) + duration (10) + spacing (4)
	width := m.Width() - 22

	statusColor, ok := statusColors[result.status]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	statusStyle := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(8)
	durationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10).Align(lipgloss.Right)
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	text := result.id
	if result.detail != "" {
		text += " · " + result.detail
	}

	display := truncateToWidth(text, width)

	if index == m.Index() {
		idStyle = idStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		display = animateScroll(text, width, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s",
		statusStyle.Render(string(result.status)),
		durationStyle.Render(result.duration.Round(time.Microsecond).String()),
		idStyle.Render(display),
	)
	_, _ = fmt.Fprint(w, line)
}

// runModel follows a patch run and then lets the user browse the outcomes.
type runModel struct {
	width        int
	height       int
	progressBar  progress.Model
	current      string
	upcoming     int
	completed    int
	results      []resultItem
	resultsList  list.Model
	delegate     resultDelegate
	report       *model.RunReport
	animOffset   int
	lastSelected int
}

func newRunModel() runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return runModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m runModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(m.width-8, 20)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg()

	case upcomingMsg:
		m.upcoming = msg.count
		m.completed = 0

	case fixerStartedMsg:
		m.current = msg.id

	case fixerFinishedMsg:
		m = m.handleFinished(msg)

	case reportMsg:
		m = m.handleReport(msg)
	}

	return m, cmd
}

func (m runModel) handleFinished(msg fixerFinishedMsg) runModel {
	m.completed++
	m.results = append(m.results, newResultItem(msg.report))

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)

	return m
}

// handleReport finishes the run. A report loaded from disk arrives without
// progress messages, so its outcomes fill the list directly.
func (m runModel) handleReport(msg reportMsg) runModel {
	report := msg.report
	m.report = &report
	m.current = ""

	if len(m.results) == 0 && len(report.Reports) > 0 {
		m.upcoming = len(report.Reports)

		for _, r := range report.Reports {
			m = m.handleFinished(fixerFinishedMsg{report: r})
		}
	}

	return m
}

func (m runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	if msg.String() == "ctrl+c" || (msg.String() == "q" && m.resultsList.FilterState() != list.Filtering) {
		return m, tea.Quit
	}

	if m.report == nil {
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)

	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, cmd
}

func (m runModel) handleTickMsg() (runModel, tea.Cmd) {
	if m.report != nil && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m runModel) count(status model.OutcomeStatus) int {
	n := 0

	for _, r := range m.results {
		if r.status == status {
			n++
		}
	}

	return n
}

func (m runModel) percent() float64 {
	if m.upcoming == 0 {
		if m.report != nil {
			return 1
		}

		return 0
	}

	return float64(m.completed) / float64(m.upcoming)
}

func (m runModel) View() string {
	accent := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accent)

	title := titleStyle.Render("Applying Compatibility Fixers")

	status := "running"
	if m.report != nil {
		status = string(m.report.State)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Applied: %s  •  Skipped: %s  •  Failed: %s  •  %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.upcoming)),
		accentStyle.Render(fmt.Sprintf("%d", m.count(model.StatusApplied))),
		accentStyle.Render(fmt.Sprintf("%d", m.count(model.StatusSkipped))),
		accentStyle.Render(fmt.Sprintf("%d", m.count(model.StatusFailed))),
		accentStyle.Render(status),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent()))

	current := ""
	if m.current != "" {
		current = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("14")).Render("→ " + m.current)
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	parts := []string{title, summary, progressView}
	if current != "" {
		parts = append(parts, current)
	}

	parts = append(parts, m.renderResults(accent))

	if m.report != nil && m.report.Error != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 2).Render(m.report.Error))
	}

	parts = append(parts, footer)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m runModel) renderResults(accent lipgloss.Color) string {
	listWidth := max(m.width-4, 20)
	listHeight := max(m.height-12, 5)

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-8s  %10s  %s", "Status", "Duration", "Fixer"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Margin(1, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))
}
