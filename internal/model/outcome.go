package model

import (
	"context"
	"errors"
	"fmt"
)

// ErrSkipFixer is the skip signal: a fixer returning it (or wrapping it)
// declines to apply without failing the run.
var ErrSkipFixer = errors.New("compatfix: fixer skipped")

// OutcomeStatus is the tag of an Outcome.
type OutcomeStatus string

const (
	// StatusApplied means the patch was applied.
	StatusApplied OutcomeStatus = "applied"
	// StatusSkipped means the fixer declined to apply.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusFailed means the fixer failed and the run must stop.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome is the tagged result of one fixer invocation.
type Outcome struct {
	Status OutcomeStatus
	Reason string
	Err    error
}

// Applied reports a successfully applied patch.
func Applied() Outcome {
	return Outcome{Status: StatusApplied}
}

// Skipped reports that the fixer declined to apply. reason is kept verbatim.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Skippedf is Skipped with a formatted reason.
func Skippedf(format string, args ...any) Outcome {
	return Skipped(fmt.Sprintf(format, args...))
}

// Failed reports a fixer failure. A nil error still yields a failure.
func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("fixer failed without an error")
	}

	return Outcome{Status: StatusFailed, Err: err}
}

// OutcomeFromError maps an error-returning patch onto an Outcome.
func OutcomeFromError(err error) Outcome {
	switch {
	case err == nil:
		return Applied()
	case errors.Is(err, ErrSkipFixer):
		return Outcome{Status: StatusSkipped, Reason: err.Error()}
	default:
		return Failed(err)
	}
}

// Patch adapts a plain error-returning function into a PatchFunc.
func Patch(fn func(ctx context.Context, utils Utilities) error) PatchFunc {
	return func(ctx context.Context, utils Utilities) Outcome {
		return OutcomeFromError(fn(ctx, utils))
	}
}
