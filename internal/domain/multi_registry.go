package domain

import (
	"context"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// MultiRegistry composes several catalogs, e.g. one per patched subsystem.
// It holds its children by reference and never copies their fixers into
// storage of its own.
type MultiRegistry struct {
	children []Catalog
}

// NewMultiRegistry aggregates the given catalogs in order.
func NewMultiRegistry(children ...Catalog) *MultiRegistry {
	kept := make([]Catalog, 0, len(children))

	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}

	return &MultiRegistry{children: kept}
}

// Children returns the aggregated catalogs.
func (mr *MultiRegistry) Children() []Catalog {
	out := make([]Catalog, len(mr.children))
	copy(out, mr.children)

	return out
}

// Populate populates every child in order; each keeps its one-shot semantics.
func (mr *MultiRegistry) Populate(ctx context.Context) error {
	for _, child := range mr.children {
		if err := child.Populate(ctx); err != nil {
			return err
		}
	}

	return nil
}

// IsPopulated reports whether every child is populated.
func (mr *MultiRegistry) IsPopulated() bool {
	for _, child := range mr.children {
		if !child.IsPopulated() {
			return false
		}
	}

	return true
}

// GetByID returns the fixer from the first child defining id.
func (mr *MultiRegistry) GetByID(id string) (m.Fixer, error) {
	for _, child := range mr.children {
		fixer, err := child.GetByID(id)
		if err == nil {
			return fixer, nil
		}
	}

	return m.Fixer{}, &NotFoundError{FixerID: id}
}

// GetAll concatenates children's fixers, child order then insertion order.
// An id defined by several children keeps only its first definition, the one
// GetByID resolves to.
func (mr *MultiRegistry) GetAll() []m.Fixer {
	var all []m.Fixer

	seen := make(map[string]struct{})

	for _, child := range mr.children {
		for _, fixer := range child.GetAll() {
			if _, dup := seen[fixer.ID]; dup {
				continue
			}

			seen[fixer.ID] = struct{}{}
			all = append(all, fixer)
		}
	}

	return all
}

// Duplicates lists ids defined by more than one child, in first-seen order.
// Lookups resolve such ids to the first child.
func (mr *MultiRegistry) Duplicates() []string {
	seen := make(map[string]int)

	var dups []string

	for _, child := range mr.children {
		for _, fixer := range child.GetAll() {
			seen[fixer.ID]++
			if seen[fixer.ID] == 2 {
				dups = append(dups, fixer.ID)
			}
		}
	}

	return dups
}
