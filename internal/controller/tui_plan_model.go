package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// planDelegate renders one fixer per line.
type planDelegate struct {
	offset int
}

func (d planDelegate) Height() int  { return 1 }
func (d planDelegate) Spacing() int { return 0 }
func (d planDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d planDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fixer, ok := item.(fixerItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	// mark (3) + window (18) + family (12) + spacing (6)
	width := m.Width() - 39

	badge, badgeColor := "   ", lipgloss.Color("8")

	switch {
	case fixer.selected:
		badge, badgeColor = " ✓ ", lipgloss.Color("2")
	case fixer.relevant:
		badge, badgeColor = " ✗ ", lipgloss.Color("3")
	}

	badgeStyle := lipgloss.NewStyle().Foreground(badgeColor).Bold(true).Width(3)
	windowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(18)
	familyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(12)
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	displayID := truncateToWidth(fixer.id, width)

	if isSelected {
		highlight := func(s lipgloss.Style) lipgloss.Style {
			return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		}

		windowStyle = highlight(windowStyle)
		familyStyle = highlight(familyStyle)
		idStyle = highlight(idStyle)
		displayID = animateScroll(fixer.id, width, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		badgeStyle.Render(badge),
		windowStyle.Render(truncateToWidth(fixer.window, 18)),
		familyStyle.Render(truncateToWidth(fixer.family, 12)),
		idStyle.Render(displayID),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// planModel lets the user browse a fixer plan.
type planModel struct {
	width        int
	height       int
	fixerList    list.Model
	delegate     planDelegate
	version      string
	total        int
	selected     int
	relevant     int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newPlanModel() planModel {
	delegate := planDelegate{}
	fixerList := list.New([]list.Item{}, delegate, 80, 20)
	fixerList.SetShowPagination(false)
	fixerList.SetShowFilter(true)
	fixerList.SetShowHelp(false)
	fixerList.SetShowTitle(false)
	fixerList.SetShowStatusBar(false)
	fixerList.FilterInput.Placeholder = "Filter by id or family…"

	return planModel{
		fixerList:    fixerList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m planModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fixerList.SetWidth(m.width)

	case tickMsg:
		if m.fixerList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.fixerList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.fixerList.FilterState() != list.Filtering) {
			return m, tea.Quit
		}

		m.fixerList, cmd = m.fixerList.Update(msg)

		if m.fixerList.Index() != m.lastSelected {
			m.lastSelected = m.fixerList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.fixerList.SetDelegate(m.delegate)
		}

		return m, cmd

	case planMsg:
		m = m.handlePlanMsg(msg)
	}

	return m, cmd
}

func (m planModel) handlePlanMsg(msg planMsg) planModel {
	m.version = msg.version
	m.total = len(msg.entries)
	m.selected, m.relevant = 0, 0

	items := make([]list.Item, 0, len(msg.entries))

	for _, e := range msg.entries {
		if e.Selected {
			m.selected++
		}

		if e.Relevant {
			m.relevant++
		}

		items = append(items, newFixerItem(e))
	}

	m.fixerList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m planModel) View() string {
	if !m.rendered {
		return "Loading fixer plan…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Compatibility Fixers")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Version: %s   Fixers: %s   Relevant: %s   Selected: %s",
		accentStyle.Render(m.version),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.relevant)),
		accentStyle.Render(fmt.Sprintf("%d", m.selected)),
	))

	body := lipgloss.JoinVertical(lipgloss.Left, m.renderTable(), m.renderDescription())

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, body, footer)
}

func (m planModel) renderTable() string {
	// Title, summary, footer, borders, headers and the description line.
	listHeight := max(m.height-11, 5)
	listWidth := m.width - 6

	m.fixerList.SetHeight(listHeight)
	m.fixerList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-3s  %-18s  %-12s  %s", "", "Window", "Family", "Fixer"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.fixerList.View()))
}

func (m planModel) renderDescription() string {
	item, ok := m.fixerList.SelectedItem().(fixerItem)
	if !ok {
		return ""
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 2).
		Width(max(m.width, 20)).
		Render(item.description)
}
