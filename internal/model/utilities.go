package model

import (
	"log/slog"
	"sort"
	"sync"
)

// WarningCategory classifies warnings emitted by fixers.
type WarningCategory string

// Warning categories mirroring the ones fixers usually need.
const (
	DeprecationWarning        WarningCategory = "DeprecationWarning"
	PendingDeprecationWarning WarningCategory = "PendingDeprecationWarning"
	RuntimeWarning            WarningCategory = "RuntimeWarning"
	UserWarning               WarningCategory = "UserWarning"
)

// Utilities is the patching-utilities handle passed to every fixer. The
// runner only ever calls EmitLog; the rest is there for fixers.
type Utilities interface {
	EmitLog(message string, level slog.Level)
	EmitWarning(message string, category WarningCategory)
	InjectAttribute(target *Namespace, name string, value any)
	InjectCallable(target *Namespace, name string, fn any) error
	InjectAlias(source *Namespace, sourceName string, target *Namespace, targetName string) error
	ApplySettings(settings map[string]any) error
	Settings() Config
}

// Namespace is a named set of attributes fixers can patch. It stands for
// whatever object, package or module table the host application exposes.
type Namespace struct {
	Name string

	mu      sync.RWMutex
	values  map[string]any
	markers map[string]string
}

// NewNamespace creates an empty namespace.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:    name,
		values:  make(map[string]any),
		markers: make(map[string]string),
	}
}

// Get returns the attribute stored under name.
func (ns *Namespace) Get(name string) (any, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	v, ok := ns.values[name]

	return v, ok
}

// Set stores an attribute without marking it.
func (ns *Namespace) Set(name string, value any) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.values[name] = value
	delete(ns.markers, name)
}

// SetMarked stores an attribute and records the patch marker for it.
func (ns *Namespace) SetMarked(name string, value any, marker string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.values[name] = value
	if marker == "" {
		delete(ns.markers, name)
		return
	}

	ns.markers[name] = marker
}

// Delete removes an attribute.
func (ns *Namespace) Delete(name string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	delete(ns.values, name)
	delete(ns.markers, name)
}

// Marker returns the patch marker recorded for name, if any.
func (ns *Namespace) Marker(name string) (string, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	m, ok := ns.markers[name]

	return m, ok
}

// Names lists attribute names, sorted.
func (ns *Namespace) Names() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	names := make([]string, 0, len(ns.values))
	for name := range ns.values {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
