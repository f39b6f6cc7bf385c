package model

import "time"

// RunState is the state of one populate -> select -> execute run.
type RunState string

const (
	StateNotStarted RunState = "not_started"
	StatePopulating RunState = "populating"
	StateSelecting  RunState = "selecting"
	StateExecuting  RunState = "executing"
	StateCompleted  RunState = "completed"
	StateAborted    RunState = "aborted"
)

// Report records what happened to a single fixer.
type Report struct {
	FixerID  string        `yaml:"fixer_id"`
	Status   OutcomeStatus `yaml:"status"`
	Reason   string        `yaml:"reason,omitempty"`
	Error    string        `yaml:"error,omitempty"` // failure text, never set for skips
	Duration time.Duration `yaml:"duration"`
}

// RunReport is the result of a run.
type RunReport struct {
	ID              string    `yaml:"id"`
	SoftwareVersion string    `yaml:"software_version"`
	Selected        []string  `yaml:"selected"`
	Reports         []Report  `yaml:"reports"`
	State           RunState  `yaml:"state"`
	Error           string    `yaml:"error,omitempty"`
	StartedAt       time.Time `yaml:"started_at"`
	FinishedAt      time.Time `yaml:"finished_at"`
}

// Count returns how many fixers ended with the given status.
func (r RunReport) Count(status OutcomeStatus) int {
	n := 0

	for _, rep := range r.Reports {
		if rep.Status == status {
			n++
		}
	}

	return n
}

// Executed lists fixers that were applied, in order.
func (r RunReport) Executed() []string {
	var ids []string

	for _, rep := range r.Reports {
		if rep.Status == StatusApplied {
			ids = append(ids, rep.FixerID)
		}
	}

	return ids
}

// Path represents a file system path.
type Path string
