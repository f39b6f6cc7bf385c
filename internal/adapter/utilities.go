package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sync"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// PatchingUtilities is the default utilities handle given to fixers: level
// filtered logging, switchable warnings and marked injection into namespaces.
type PatchingUtilities struct {
	mu  sync.RWMutex
	cfg m.Config

	level    *slog.LevelVar
	logger   *slog.Logger
	warnings *slog.Logger
}

// UtilitiesOption configures PatchingUtilities.
type UtilitiesOption func(*utilitiesOptions)

type utilitiesOptions struct {
	out    io.Writer
	format string
}

// WithOutput sets where logs and warnings go. Defaults to stderr.
func WithOutput(w io.Writer) UtilitiesOption {
	return func(o *utilitiesOptions) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLogFormat selects "text" (default) or "json".
func WithLogFormat(format string) UtilitiesOption {
	return func(o *utilitiesOptions) {
		o.format = format
	}
}

// NewPatchingUtilities builds utilities for cfg. An unknown logging level
// falls back to INFO; use ApplySettings to get the error instead.
func NewPatchingUtilities(cfg m.Config, opts ...UtilitiesOption) *PatchingUtilities {
	o := utilitiesOptions{out: os.Stderr, format: "text"}
	for _, opt := range opts {
		opt(&o)
	}

	level := new(slog.LevelVar)

	pu := &PatchingUtilities{
		level:    level,
		logger:   NewLogger(o.out, o.format, level),
		warnings: NewLogger(o.out, o.format, slog.LevelDebug),
	}
	pu.setConfig(cfg)

	return pu
}

func (pu *PatchingUtilities) setConfig(cfg m.Config) {
	lvl, err := ParseLevel(cfg.LoggingLevel)
	if err != nil {
		// Factories reject unknown levels before building utilities.
		lvl = slog.LevelInfo
	}

	pu.mu.Lock()
	pu.cfg = cfg
	pu.mu.Unlock()

	pu.level.Set(lvl)
}

// Settings returns the configuration in effect.
func (pu *PatchingUtilities) Settings() m.Config {
	pu.mu.RLock()
	defer pu.mu.RUnlock()

	return pu.cfg
}

// ApplySettings overrides the given keys of the current configuration.
func (pu *PatchingUtilities) ApplySettings(settings map[string]any) error {
	cfg, err := ConfigFromMap(pu.Settings(), settings)
	if err != nil {
		return err
	}

	pu.setConfig(cfg)

	return nil
}

// EmitLog logs message if level passes the configured logging level.
func (pu *PatchingUtilities) EmitLog(message string, level slog.Level) {
	pu.logger.Log(context.Background(), level, message)
}

// EmitWarning reports a warning unless warnings are disabled. Warnings are
// independent of the logging level.
func (pu *PatchingUtilities) EmitWarning(message string, category m.WarningCategory) {
	if !pu.Settings().EnableWarnings {
		return
	}

	pu.warnings.Warn(message, "category", string(category))
}

// InjectAttribute sets name on target, recording the patch marker.
func (pu *PatchingUtilities) InjectAttribute(target *m.Namespace, name string, value any) {
	target.SetMarked(name, value, pu.Settings().PatchInjectedObjects)
	pu.EmitLog(fmt.Sprintf("Injected attribute %s.%s", target.Name, name), slog.LevelDebug)
}

// InjectCallable is InjectAttribute restricted to functions.
func (pu *PatchingUtilities) InjectCallable(target *m.Namespace, name string, fn any) error {
	if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		return fmt.Errorf("cannot inject %s.%s: %T is not callable", target.Name, name, fn)
	}

	target.SetMarked(name, fn, pu.Settings().PatchInjectedObjects)
	pu.EmitLog(fmt.Sprintf("Injected callable %s.%s", target.Name, name), slog.LevelDebug)

	return nil
}

// InjectAlias exposes source.sourceName as target.targetName.
func (pu *PatchingUtilities) InjectAlias(source *m.Namespace, sourceName string, target *m.Namespace, targetName string) error {
	value, ok := source.Get(sourceName)
	if !ok {
		return fmt.Errorf("cannot alias %s.%s: attribute not found", source.Name, sourceName)
	}

	target.SetMarked(targetName, value, pu.Settings().PatchInjectedObjects)
	pu.EmitLog(fmt.Sprintf("Injected alias %s.%s -> %s.%s", source.Name, sourceName, target.Name, targetName), slog.LevelDebug)

	return nil
}
