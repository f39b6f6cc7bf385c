package domain

import (
	"fmt"

	"github.com/mouse-blink/compatfix/internal/domain/versions"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// Select returns the ids of fixers to run, in input order: fixers whose
// window contains currentVersion, included by id or family and not
// excluded by id or family. It has no side effects.
func Select(fixers []m.Fixer, currentVersion string, policy m.Policy) ([]string, error) {
	current, err := versions.Parse(currentVersion)
	if err != nil {
		return nil, fmt.Errorf("cannot select fixers: %w", err)
	}

	ids := []string{}

	for _, fixer := range fixers {
		relevant, err := isRelevant(fixer, current)
		if err != nil {
			return nil, fmt.Errorf("cannot select fixers: fixer %q: %w", fixer.ID, err)
		}

		if !relevant || !policy.Includes(fixer) || policy.Excludes(fixer) {
			continue
		}

		ids = append(ids, fixer.ID)
	}

	return ids, nil
}

// IsRelevant reports whether currentVersion lies in the fixer's window.
func IsRelevant(fixer m.Fixer, currentVersion string) (bool, error) {
	current, err := versions.Parse(currentVersion)
	if err != nil {
		return false, err
	}

	return isRelevant(fixer, current)
}

// isRelevant checks from <= current < upto, each bound optional.
func isRelevant(fixer m.Fixer, current versions.Version) (bool, error) {
	if fixer.AppliedFrom != "" {
		from, err := versions.Parse(fixer.AppliedFrom)
		if err != nil {
			return false, err
		}

		if !current.AtLeast(from) {
			return false, nil
		}
	}

	if fixer.AppliedUpto != "" {
		upto, err := versions.Parse(fixer.AppliedUpto)
		if err != nil {
			return false, err
		}

		if !current.Less(upto) {
			return false, nil
		}
	}

	return true, nil
}
