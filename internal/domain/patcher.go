package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/compatfix/internal/adapter"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// VersionProvider returns the currently installed dependency version.
type VersionProvider func(ctx context.Context) (string, error)

// UtilitiesFactory builds the patching utilities for a configuration.
type UtilitiesFactory func(cfg m.Config) (m.Utilities, error)

// PatchOption configures PatchSoftware.
type PatchOption func(*patchOptions)

type patchOptions struct {
	lock          *ReentrantLock
	newUtilities  UtilitiesFactory
	warningsProxy *adapter.WarningsProxy
	version       string
	provider      VersionProvider
	observer      RunObserver
	now           func() time.Time
}

// WithUtilitiesFactory replaces the default adapter.PatchingUtilities.
func WithUtilitiesFactory(f UtilitiesFactory) PatchOption {
	return func(o *patchOptions) {
		if f != nil {
			o.newUtilities = f
		}
	}
}

// WithWarningsProxy updates an existing proxy with the new utilities as
// soon as they are built.
func WithWarningsProxy(p *adapter.WarningsProxy) PatchOption {
	return func(o *patchOptions) {
		o.warningsProxy = p
	}
}

// WithSoftwareVersion fixes the current dependency version.
func WithSoftwareVersion(v string) PatchOption {
	return func(o *patchOptions) {
		o.version = v
	}
}

// WithVersionProvider computes the version when none is fixed.
func WithVersionProvider(p VersionProvider) PatchOption {
	return func(o *patchOptions) {
		o.provider = p
	}
}

// WithRunObserver receives per-fixer progress.
func WithRunObserver(obs RunObserver) PatchOption {
	return func(o *patchOptions) {
		o.observer = obs
	}
}

// WithLock replaces PatchingLock, mostly for tests.
func WithLock(l *ReentrantLock) PatchOption {
	return func(o *patchOptions) {
		if l != nil {
			o.lock = l
		}
	}
}

func defaultUtilities(cfg m.Config) (m.Utilities, error) {
	if _, err := adapter.ParseLevel(cfg.LoggingLevel); err != nil {
		return nil, err
	}

	return adapter.NewPatchingUtilities(cfg), nil
}

// PatchSoftware populates the catalog, selects the fixers relevant to the
// current version and configuration, and applies them, all under the
// patching lock. The report is filled in even when an error is returned.
func PatchSoftware(ctx context.Context, cfg m.Config, catalog Catalog, opts ...PatchOption) (m.RunReport, error) {
	o := patchOptions{
		lock:         PatchingLock,
		newUtilities: defaultUtilities,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(&o)
	}

	report := m.RunReport{
		ID:        uuid.NewString(),
		State:     m.StateNotStarted,
		StartedAt: o.now(),
	}

	ctx, release, err := o.lock.Acquire(ctx)
	if err != nil {
		return abort(report, o, fmt.Errorf("failed to acquire patching lock: %w", err))
	}
	defer release()

	report.State = m.StatePopulating

	if err := catalog.Populate(ctx); err != nil {
		return abort(report, o, err)
	}

	if !catalog.IsPopulated() {
		return abort(report, o, ErrNotPopulated)
	}

	utils, err := o.newUtilities(cfg)
	if err != nil {
		return abort(report, o, fmt.Errorf("failed to create patching utilities: %w", err))
	}

	if o.warningsProxy != nil {
		o.warningsProxy.SetUtilities(utils)
	}

	report.State = m.StateSelecting

	version, err := o.currentVersion(ctx)
	if err != nil {
		return abort(report, o, err)
	}

	report.SoftwareVersion = version

	ids, err := Select(catalog.GetAll(), version, cfg.Policy)
	if err != nil {
		return abort(report, o, err)
	}

	report.Selected = ids
	report.State = m.StateExecuting

	reports, err := NewRunner(catalog, utils, o.observer).Run(ctx, ids)
	report.Reports = reports

	if err != nil {
		return abort(report, o, err)
	}

	report.State = m.StateCompleted
	report.FinishedAt = o.now()

	return report, nil
}

func (o patchOptions) currentVersion(ctx context.Context) (string, error) {
	if o.version != "" {
		return o.version, nil
	}

	if o.provider == nil {
		return "", errors.New("no software version: set one or provide a version provider")
	}

	v, err := o.provider(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine software version: %w", err)
	}

	return v, nil
}

func abort(report m.RunReport, o patchOptions, err error) (m.RunReport, error) {
	report.State = m.StateAborted
	report.Error = err.Error()
	report.FinishedAt = o.now()

	return report, err
}
