// Package domain contains the fixer registry, the version-gated selection
// engine and the runner applying selected fixers under the patching lock.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mouse-blink/compatfix/internal/domain/versions"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// Catalog is a populated, queryable set of fixers.
type Catalog interface {
	Populate(ctx context.Context) error
	IsPopulated() bool
	GetByID(id string) (m.Fixer, error)
	GetAll() []m.Fixer
}

// Registrar accepts fixer registrations.
type Registrar interface {
	Register(fixer m.Fixer) error
}

// Populator enumerates the fixers of a registry. It runs once, on the first
// Populate call, and must not call Populate on the same registry.
type Populator func(ctx context.Context, r Registrar) error

// Registry is a catalog owning its fixers.
type Registry interface {
	Catalog
	Registrar
	Name() string
	RelevantFixerIDs(currentVersion string, policy m.Policy) ([]string, error)
}

// RegistryOption configures a registry.
type RegistryOption func(*registry)

// WithFamilyPrefix derives Family as prefix+ReferenceVersion for fixers
// registered without one.
func WithFamilyPrefix(prefix string) RegistryOption {
	return func(r *registry) {
		r.familyPrefix = prefix
	}
}

// WithPopulator adds a populator. Populators run in the order given.
func WithPopulator(p Populator) RegistryOption {
	return func(r *registry) {
		if p != nil {
			r.populators = append(r.populators, p)
		}
	}
}

// WithRegistryLogger sets the logger used for registry diagnostics.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type registry struct {
	name         string
	familyPrefix string
	populators   []Populator
	logger       *slog.Logger

	// mu guards fixers and index.
	mu     sync.RWMutex
	fixers []m.Fixer
	index  map[string]int

	// popMu serializes Populate; it is never held together with mu by
	// Register so populators may register freely.
	popMu     sync.Mutex
	populated bool
	popDone   bool
	popErr    error
}

// NewRegistry creates an empty registry.
func NewRegistry(name string, opts ...RegistryOption) Registry {
	r := &registry{
		name:   name,
		index:  make(map[string]int),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *registry) Name() string {
	return r.name
}

// Register validates and appends a fixer.
func (r *registry) Register(fixer m.Fixer) error {
	fixer.ID = strings.TrimSpace(fixer.ID)
	if err := r.validate(&fixer); err != nil {
		return &RegistrationError{Registry: r.name, FixerID: fixer.ID, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[fixer.ID]; exists {
		return &RegistrationError{Registry: r.name, FixerID: fixer.ID, Err: ErrDuplicateFixer}
	}

	r.index[fixer.ID] = len(r.fixers)
	r.fixers = append(r.fixers, fixer)
	r.logger.Debug("Registered compatibility fixer.", "registry", r.name, "fixer", fixer.ID, "family", fixer.Family, "window", fixer.Window())

	return nil
}

func (r *registry) validate(fixer *m.Fixer) error {
	if fixer.ID == "" {
		return ErrEmptyFixerID
	}

	if strings.TrimSpace(fixer.Description) == "" {
		return ErrMissingDescription
	}

	if fixer.Apply == nil {
		return ErrMissingPatch
	}

	if fixer.ReferenceVersion == "" {
		return ErrMissingReferenceVersion
	}

	bounds := []struct {
		field string
		value string
	}{
		{"reference version", fixer.ReferenceVersion},
		{"applied from version", fixer.AppliedFrom},
		{"applied upto version", fixer.AppliedUpto},
	}

	for _, b := range bounds {
		if b.value == "" {
			continue
		}

		if _, err := versions.Parse(b.value); err != nil {
			return fmt.Errorf("invalid %s: %w", b.field, err)
		}
	}

	if fixer.Family == "" && r.familyPrefix != "" {
		fixer.Family = r.familyPrefix + fixer.ReferenceVersion
	}

	return nil
}

// Populate runs the populators once. Later calls return the first result.
func (r *registry) Populate(ctx context.Context) error {
	r.popMu.Lock()
	defer r.popMu.Unlock()

	if r.popDone {
		return r.popErr
	}

	r.popDone = true

	for _, populate := range r.populators {
		if err := populate(ctx, r); err != nil {
			r.popErr = fmt.Errorf("failed to populate registry %q: %w", r.name, err)
			return r.popErr
		}
	}

	r.populated = true
	r.logger.Debug("Registry populated.", "registry", r.name, "fixers", len(r.GetAll()))

	return nil
}

func (r *registry) IsPopulated() bool {
	r.popMu.Lock()
	defer r.popMu.Unlock()

	return r.populated
}

func (r *registry) GetByID(id string) (m.Fixer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return m.Fixer{}, &NotFoundError{FixerID: id}
	}

	return r.fixers[i], nil
}

func (r *registry) GetAll() []m.Fixer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]m.Fixer, len(r.fixers))
	copy(out, r.fixers)

	return out
}

// RelevantFixerIDs selects among this registry's fixers.
func (r *registry) RelevantFixerIDs(currentVersion string, policy m.Policy) ([]string, error) {
	ids, err := Select(r.GetAll(), currentVersion, policy)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Relevant compatibility fixers computed.", "registry", r.name, "version", currentVersion, "fixers", ids)

	return ids, nil
}
