package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// Runner applies selected fixers in order.
type Runner interface {
	Run(ctx context.Context, ids []string) ([]m.Report, error)
}

// RunObserver is notified around each fixer invocation.
type RunObserver interface {
	FixerStarted(fixer m.Fixer)
	FixerFinished(fixer m.Fixer, report m.Report)
}

type runner struct {
	catalog  Catalog
	utils    m.Utilities
	observer RunObserver
	now      func() time.Time
}

// NewRunner constructs a Runner reading fixers from catalog and handing
// utils to each of them. observer may be nil.
func NewRunner(catalog Catalog, utils m.Utilities, observer RunObserver) Runner {
	return &runner{
		catalog:  catalog,
		utils:    utils,
		observer: observer,
		now:      time.Now,
	}
}

// Run invokes each fixer. A skipped fixer does not stop the run; a failed
// one does, and fixers applied before it stay applied.
func (r *runner) Run(ctx context.Context, ids []string) ([]m.Report, error) {
	reports := make([]m.Report, 0, len(ids))

	for _, id := range ids {
		fixer, err := r.catalog.GetByID(id)
		if err != nil {
			return reports, fmt.Errorf("failed to look up fixer: %w", err)
		}

		report := r.apply(ctx, fixer)
		reports = append(reports, report.Report)

		if report.Status == m.StatusFailed {
			return reports, &FixerError{FixerID: fixer.ID, Err: report.err}
		}
	}

	return reports, nil
}

type runReport struct {
	m.Report
	err error
}

func (r *runner) apply(ctx context.Context, fixer m.Fixer) runReport {
	if r.observer != nil {
		r.observer.FixerStarted(fixer)
	}

	started := r.now()
	outcome := r.invoke(ctx, fixer)

	report := runReport{
		Report: m.Report{
			FixerID:  fixer.ID,
			Status:   outcome.Status,
			Reason:   outcome.Reason,
			Duration: r.now().Sub(started),
		},
	}

	switch outcome.Status {
	case m.StatusApplied:
		r.utils.EmitLog(fmt.Sprintf("Compatibility fixer %s applied: %s", fixer.ID, fixer.Description), slog.LevelInfo)
	case m.StatusSkipped:
		r.utils.EmitLog(fmt.Sprintf("Compatibility fixer %s skipped: %s", fixer.ID, outcome.Reason), slog.LevelInfo)
	default:
		report.Status = m.StatusFailed
		report.err = outcome.Err
		report.Error = outcome.Err.Error()
		r.utils.EmitLog(fmt.Sprintf("Compatibility fixer %s failed: %v", fixer.ID, outcome.Err), slog.LevelError)
	}

	if r.observer != nil {
		r.observer.FixerFinished(fixer, report.Report)
	}

	return report
}

// invoke runs the patch action, turning a panic into a failure.
func (r *runner) invoke(ctx context.Context, fixer m.Fixer) (outcome m.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = m.Failed(fmt.Errorf("panic: %v", rec))
		}
	}()

	r.utils.EmitLog(fmt.Sprintf("Applying compatibility fixer %s", fixer.ID), slog.LevelDebug)

	outcome = fixer.Apply(ctx, r.utils)

	switch outcome.Status {
	case m.StatusApplied, m.StatusSkipped:
	case m.StatusFailed:
		outcome = m.Failed(outcome.Err)
	default:
		outcome = m.Failed(fmt.Errorf("unknown outcome status %q", outcome.Status))
	}

	return outcome
}
