package controller

import (
	"time"

	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// Message types.
type planMsg struct {
	version string
	entries []domain.PlanEntry
}

type upcomingMsg struct {
	count int
}

type fixerStartedMsg struct {
	id string
}

type fixerFinishedMsg struct {
	report m.Report
}

type reportMsg struct {
	report m.RunReport
}

// List item types.
type fixerItem struct {
	id          string
	family      string
	window      string
	description string
	relevant    bool
	selected    bool
}

func newFixerItem(e domain.PlanEntry) fixerItem {
	return fixerItem{
		id:          e.Fixer.ID,
		family:      e.Fixer.Family,
		window:      e.Fixer.Window(),
		description: e.Fixer.Description,
		relevant:    e.Relevant,
		selected:    e.Selected,
	}
}

func (f fixerItem) FilterValue() string {
	return f.id + " " + f.family
}

type resultItem struct {
	id       string
	status   m.OutcomeStatus
	detail   string
	duration time.Duration
}

func newResultItem(r m.Report) resultItem {
	detail := r.Reason
	if r.Status == m.StatusFailed {
		detail = r.Error
	}

	return resultItem{id: r.FixerID, status: r.Status, detail: detail, duration: r.Duration}
}

func (r resultItem) FilterValue() string {
	return r.id + " " + string(r.status)
}
