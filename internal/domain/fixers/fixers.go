// Package fixers holds the sample fixer catalog shipped with the command
// line. The fixers patch a "dummy" namespace standing in for a third-party
// package whose API changed between versions 4 and 7.
package fixers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// RegistryName is the name and family prefix of the sample registry.
const RegistryName = "dummy"

// VersionAttribute is where the dummy package exposes its version.
const VersionAttribute = "__version__"

// DefaultVersion is the version a fresh dummy namespace reports.
const DefaultVersion = "5.0"

// NewDummyNamespace returns the namespace the sample fixers patch.
func NewDummyNamespace(version string) *m.Namespace {
	ns := m.NewNamespace(RegistryName)
	ns.Set(VersionAttribute, version)
	ns.Set("render", func(template string) string { return template })
	ns.Set("legacy_render", func(template string) string { return strings.ToUpper(template) })

	return ns
}

// VersionProvider reads the version attribute of ns.
func VersionProvider(ns *m.Namespace) domain.VersionProvider {
	return func(context.Context) (string, error) {
		v, ok := ns.Get(VersionAttribute)
		if !ok {
			return "", fmt.Errorf("namespace %s has no %s", ns.Name, VersionAttribute)
		}

		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("namespace %s: %s is %T, not a string", ns.Name, VersionAttribute, v)
		}

		return s, nil
	}
}

// NewRegistry creates the sample registry; Populate registers every fixer.
func NewRegistry(target *m.Namespace, opts ...domain.RegistryOption) domain.Registry {
	opts = append([]domain.RegistryOption{
		domain.WithFamilyPrefix(RegistryName),
		domain.WithPopulator(func(_ context.Context, r domain.Registrar) error {
			return Register(r, target)
		}),
	}, opts...)

	return domain.NewRegistry(RegistryName, opts...)
}

// Register adds the sample fixers to r.
func Register(r domain.Registrar, target *m.Namespace) error {
	var errs []error

	for _, fixer := range Catalog(target) {
		if err := r.Register(fixer); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Catalog lists the sample fixers in registration order.
func Catalog(target *m.Namespace) []m.Fixer {
	return []m.Fixer{
		{
			ID:               "fix_something_from_v4",
			ReferenceVersion: "4.0",
			AppliedFrom:      "4.0",
			AppliedUpto:      "7.0",
			Description:      "Restore the legacy_render alias removed in 4.0.",
			Apply: func(_ context.Context, u m.Utilities) m.Outcome {
				if _, ok := target.Get("render_legacy"); ok {
					return m.Skipped("render_legacy already present")
				}

				if err := u.InjectAlias(target, "legacy_render", target, "render_legacy"); err != nil {
					return m.Failed(err)
				}

				return m.Applied()
			},
		},
		{
			ID:               "fix_something_from_v5",
			ReferenceVersion: "5.0",
			AppliedFrom:      "5.0",
			Description:      "Provide render_string, renamed to render in 5.0.",
			Apply: m.Patch(func(_ context.Context, u m.Utilities) error {
				u.EmitWarning("render_string is deprecated, use render", m.DeprecationWarning)

				return u.InjectAlias(target, "render", target, "render_string")
			}),
		},
		{
			ID:               "fix_something_upto_v6",
			ReferenceVersion: "5.0",
			AppliedFrom:      "5.0",
			AppliedUpto:      "6.0",
			Description:      "Backport the escape helper that only exists from 6.0.",
			Apply: m.Patch(func(_ context.Context, u m.Utilities) error {
				return u.InjectCallable(target, "escape", func(s string) string {
					return strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(s)
				})
			}),
		},
		{
			ID:               "fix_something_from_v6",
			ReferenceVersion: "6.0",
			AppliedFrom:      "6.0",
			Description:      "Keep the DEBUG_TEMPLATES setting that 6.0 dropped.",
			Apply: func(_ context.Context, u m.Utilities) m.Outcome {
				if enabled, _ := u.Settings().Extra["debug_templates"].(bool); !enabled {
					return m.Skipped("debug_templates is not enabled")
				}

				u.InjectAttribute(target, "DEBUG_TEMPLATES", true)
				u.EmitLog("DEBUG_TEMPLATES restored", slog.LevelDebug)

				return m.Applied()
			},
		},
		{
			ID:               "fix_something_from_v7",
			ReferenceVersion: "7.0",
			AppliedFrom:      "7.0",
			Description:      "Wrap render so positional context arguments keep working after 7.0.",
			Apply: func(_ context.Context, u m.Utilities) m.Outcome {
				original, ok := target.Get("render")
				if !ok {
					return m.Failed(errors.New("render is missing from the dummy namespace"))
				}

				render, ok := original.(func(string) string)
				if !ok {
					return m.Failed(fmt.Errorf("render has unexpected type %T", original))
				}

				if err := u.InjectCallable(target, "render", func(template string, _ ...any) string {
					return render(template)
				}); err != nil {
					return m.Failed(err)
				}

				return m.Applied()
			},
		},
	}
}
