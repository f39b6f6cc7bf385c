// Package controller provides output adapters for displaying fixer plans,
// patch runs and their reports.
package controller

import (
	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to browse a fixer plan.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRunMode sets the UI to follow a patch run.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// UI displays what the workflow computes. It observes patch runs so it can
// show per-fixer progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	domain.RunObserver

	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayPlan(version string, entries []domain.PlanEntry) error
	DisplayMatrix(rows []domain.MatrixRow) error
	DisplayUpcomingFixers(count int)
	DisplayReport(report m.RunReport) error
}
