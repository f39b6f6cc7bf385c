// Package model defines the data structures shared by the fixer registry,
// the selection engine and the execution runner.
package model

import "context"

// PatchFunc is the patch logic of a fixer. It receives the shared patching
// utilities handle and reports what happened through an Outcome.
type PatchFunc func(ctx context.Context, utils Utilities) Outcome

// Fixer describes one registered compatibility patch.
type Fixer struct {
	// ID is unique within a registry.
	ID string
	// Family groups fixers addressing the same upstream change.
	Family string
	// ReferenceVersion is the dependency version the fixer was written against.
	ReferenceVersion string
	// AppliedFrom is the inclusive lower bound, empty means unbounded.
	AppliedFrom string
	// AppliedUpto is the exclusive upper bound, empty means unbounded.
	AppliedUpto string
	// Description is mandatory human-readable text.
	Description string
	// Apply is the patch action.
	Apply PatchFunc
}

// Window renders the version window of the fixer, e.g. "[4.0, 6.0)".
func (f Fixer) Window() string {
	from, upto := f.AppliedFrom, f.AppliedUpto
	if from == "" {
		from = "-inf"
	}

	if upto == "" {
		upto = "+inf"
	}

	return "[" + from + ", " + upto + ")"
}
