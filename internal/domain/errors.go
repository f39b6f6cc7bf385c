package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFixerID is returned when a fixer is registered without an id.
	ErrEmptyFixerID = errors.New("compatfix(registry): empty fixer id")
	// ErrMissingDescription is returned when a fixer has no description text.
	ErrMissingDescription = errors.New("compatfix(registry): fixer has no description")
	// ErrMissingPatch is returned when a fixer has no patch action.
	ErrMissingPatch = errors.New("compatfix(registry): fixer has no patch action")
	// ErrMissingReferenceVersion is returned when a fixer has no reference version.
	ErrMissingReferenceVersion = errors.New("compatfix(registry): fixer has no reference version")
	// ErrDuplicateFixer is returned when an id is registered twice.
	ErrDuplicateFixer = errors.New("compatfix(registry): duplicate fixer id")
	// ErrFixerNotFound is returned by lookups of unknown ids.
	ErrFixerNotFound = errors.New("compatfix(registry): fixer not found")
	// ErrNotPopulated is returned when a catalog is used before Populate succeeded.
	ErrNotPopulated = errors.New("compatfix(registry): registry not populated")
)

// RegistrationError wraps a registration failure with its context.
type RegistrationError struct {
	Registry string
	FixerID  string
	Err      error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("cannot register fixer %q in registry %q: %v", e.FixerID, e.Registry, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a fixer id is unknown to a catalog.
type NotFoundError struct {
	FixerID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fixer %q not found", e.FixerID)
}

// Is makes errors.Is(err, ErrFixerNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrFixerNotFound
}

// FixerError is returned by the runner when a fixer fails.
type FixerError struct {
	FixerID string
	Err     error
}

func (e *FixerError) Error() string {
	return fmt.Sprintf("compatibility fixer %q failed: %v", e.FixerID, e.Err)
}

func (e *FixerError) Unwrap() error {
	return e.Err
}
