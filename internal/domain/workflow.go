package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// PlanEntry describes how one fixer fares against a version and a policy.
type PlanEntry struct {
	Fixer    m.Fixer
	Relevant bool
	Selected bool
}

// MatrixRow is the selection for one version.
type MatrixRow struct {
	Version  string
	Selected []string
	Err      error
}

// PatchArgs configures Workflow.Patch.
type PatchArgs struct {
	Config   m.Config
	Version  string
	Observer RunObserver
}

// PlanArgs configures Workflow.Plan.
type PlanArgs struct {
	Version string
	Policy  m.Policy
}

// MatrixArgs configures Workflow.Matrix.
type MatrixArgs struct {
	Versions []string
	Policy   m.Policy
	Threads  int
}

// Workflow is what the command line drives.
type Workflow interface {
	Patch(ctx context.Context, args PatchArgs) (m.RunReport, error)
	Plan(ctx context.Context, args PlanArgs) ([]PlanEntry, error)
	Matrix(ctx context.Context, args MatrixArgs) ([]MatrixRow, error)
	DefaultVersion(ctx context.Context) (string, error)
}

type workflow struct {
	catalog  Catalog
	provider VersionProvider
	opts     []PatchOption
}

// NewWorkflow creates a Workflow over catalog. provider supplies the version
// when the caller gives none. opts are forwarded to PatchSoftware.
func NewWorkflow(catalog Catalog, provider VersionProvider, opts ...PatchOption) Workflow {
	return &workflow{
		catalog:  catalog,
		provider: provider,
		opts:     opts,
	}
}

func (w *workflow) DefaultVersion(ctx context.Context) (string, error) {
	return patchOptions{provider: w.provider}.currentVersion(ctx)
}

// populate fills the catalog under the same lock PatchSoftware takes.
func (w *workflow) populate(ctx context.Context) error {
	o := patchOptions{lock: PatchingLock}
	for _, opt := range w.opts {
		opt(&o)
	}

	ctx, release, err := o.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire patching lock: %w", err)
	}
	defer release()

	return w.catalog.Populate(ctx)
}

func (w *workflow) version(ctx context.Context, v string) (string, error) {
	if v != "" {
		return v, nil
	}

	return w.DefaultVersion(ctx)
}

// Patch runs PatchSoftware.
func (w *workflow) Patch(ctx context.Context, args PatchArgs) (m.RunReport, error) {
	opts := append([]PatchOption{
		WithVersionProvider(w.provider),
		WithSoftwareVersion(args.Version),
		WithRunObserver(args.Observer),
	}, w.opts...)

	return PatchSoftware(ctx, args.Config, w.catalog, opts...)
}

// Plan reports relevance and selection for every fixer in catalog order.
func (w *workflow) Plan(ctx context.Context, args PlanArgs) ([]PlanEntry, error) {
	if err := w.populate(ctx); err != nil {
		return nil, err
	}

	version, err := w.version(ctx, args.Version)
	if err != nil {
		return nil, err
	}

	fixers := w.catalog.GetAll()

	selected, err := Select(fixers, version, args.Policy)
	if err != nil {
		return nil, err
	}

	chosen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}

	entries := make([]PlanEntry, 0, len(fixers))

	for _, fixer := range fixers {
		relevant, err := IsRelevant(fixer, version)
		if err != nil {
			return nil, err
		}

		_, ok := chosen[fixer.ID]
		entries = append(entries, PlanEntry{Fixer: fixer, Relevant: relevant, Selected: ok})
	}

	return entries, nil
}

// Matrix computes the selection for several versions concurrently. Select
// is pure so the rows are independent; a bad version fails only its row.
func (w *workflow) Matrix(ctx context.Context, args MatrixArgs) ([]MatrixRow, error) {
	if err := w.populate(ctx); err != nil {
		return nil, err
	}

	fixers := w.catalog.GetAll()
	rows := make([]MatrixRow, len(args.Versions))

	g, gctx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		g.SetLimit(args.Threads)
	}

	for i, version := range args.Versions {
		i, version := i, version
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ids, err := Select(fixers, version, args.Policy)
			rows[i] = MatrixRow{Version: version, Selected: ids, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
