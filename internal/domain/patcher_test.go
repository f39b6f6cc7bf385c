package domain_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/compatfix/internal/adapter"
	"github.com/mouse-blink/compatfix/internal/domain"
	"github.com/mouse-blink/compatfix/internal/domain/fixers"
	domainmocks "github.com/mouse-blink/compatfix/internal/domain/mocks"
	"github.com/mouse-blink/compatfix/internal/domain/versions"
	m "github.com/mouse-blink/compatfix/internal/model"
)

func bufferedUtilities(buf *bytes.Buffer) domain.PatchOption {
	return domain.WithUtilitiesFactory(func(cfg m.Config) (m.Utilities, error) {
		return adapter.NewPatchingUtilities(cfg, adapter.WithOutput(buf)), nil
	})
}

func TestPatchSoftware_Completed(t *testing.T) {
	var buf bytes.Buffer

	ns := fixers.NewDummyNamespace("5.0")
	catalog := fixers.NewRegistry(ns)

	report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), catalog,
		bufferedUtilities(&buf),
		domain.WithVersionProvider(fixers.VersionProvider(ns)),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	require.NoError(t, err)

	assert.Equal(t, m.StateCompleted, report.State)
	assert.Equal(t, "5.0", report.SoftwareVersion)
	assert.Equal(t, []string{"fix_something_from_v4", "fix_something_from_v5", "fix_something_upto_v6"}, report.Selected)
	assert.Equal(t, report.Selected, report.Executed())
	assert.Empty(t, report.Error)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	for _, name := range []string{"render_legacy", "render_string", "escape"} {
		_, ok := ns.Get(name)
		assert.True(t, ok, name)
	}

	assert.Contains(t, buf.String(), "Compatibility fixer fix_something_from_v5 applied")
	assert.Contains(t, buf.String(), "render_string is deprecated")
}

func TestPatchSoftware_ExplicitVersionWins(t *testing.T) {
	var buf bytes.Buffer

	ns := fixers.NewDummyNamespace("5.0")

	report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), fixers.NewRegistry(ns),
		bufferedUtilities(&buf),
		domain.WithSoftwareVersion("6.1"),
		domain.WithVersionProvider(func(context.Context) (string, error) {
			return "", errors.New("must not be called")
		}),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.NoError(t, err)
	assert.Equal(t, "6.1", report.SoftwareVersion)
	assert.Equal(t, []string{"fix_something_from_v4", "fix_something_from_v5", "fix_something_from_v6"}, report.Selected)
	assert.Equal(t, 1, report.Count(m.StatusSkipped))
}

func TestPatchSoftware_PopulateFailureAborts(t *testing.T) {
	boom := errors.New("cannot enumerate")
	catalog := domainmocks.NewMockCatalog(t)
	catalog.EXPECT().Populate(mock.Anything).Return(boom).Once()

	report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), catalog,
		domain.WithSoftwareVersion("5.0"),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, m.StateAborted, report.State)
	assert.Equal(t, boom.Error(), report.Error)
	assert.Nil(t, report.Selected)
}

func TestPatchSoftware_RequiresPopulatedCatalog(t *testing.T) {
	catalog := domainmocks.NewMockCatalog(t)
	catalog.EXPECT().Populate(mock.Anything).Return(nil).Once()
	catalog.EXPECT().IsPopulated().Return(false).Once()

	report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), catalog,
		domain.WithSoftwareVersion("5.0"),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.ErrorIs(t, err, domain.ErrNotPopulated)
	assert.Equal(t, m.StateAborted, report.State)
}

func TestPatchSoftware_VersionErrors(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		opts []domain.PatchOption
		want error
	}{
		{
			name: "no version source",
		},
		{
			name: "provider failure",
			opts: []domain.PatchOption{domain.WithVersionProvider(func(context.Context) (string, error) {
				return "", errors.New("not installed")
			})},
		},
		{
			name: "unparsable version",
			opts: []domain.PatchOption{domain.WithSoftwareVersion("5.0-beta")},
			want: versions.ErrInvalidVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]domain.PatchOption{
				bufferedUtilities(&buf),
				domain.WithLock(domain.NewReentrantLock()),
			}, tt.opts...)

			report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(),
				fixers.NewRegistry(fixers.NewDummyNamespace("5.0")), opts...)
			require.Error(t, err)

			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}

			assert.Equal(t, m.StateAborted, report.State)
			assert.Empty(t, report.Reports)
		})
	}
}

func TestPatchSoftware_FixerFailureKeepsEarlierReports(t *testing.T) {
	var buf bytes.Buffer

	ns := fixers.NewDummyNamespace("7.0")
	ns.Set("render", func(template string, strict bool) string { return template })

	report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), fixers.NewRegistry(ns),
		bufferedUtilities(&buf),
		domain.WithVersionProvider(fixers.VersionProvider(ns)),
		domain.WithLock(domain.NewReentrantLock()),
	)

	var fixerErr *domain.FixerError
	require.ErrorAs(t, err, &fixerErr)
	assert.Equal(t, m.StateAborted, report.State)
	assert.Equal(t, []string{"fix_something_from_v5", "fix_something_from_v6", "fix_something_from_v7"}, report.Selected)
	require.Len(t, report.Reports, 3)
	assert.Equal(t, m.StatusApplied, report.Reports[0].Status)
	assert.Equal(t, m.StatusSkipped, report.Reports[1].Status)
	assert.Equal(t, m.StatusFailed, report.Reports[2].Status)
	assert.Equal(t, "fix_something_from_v7", fixerErr.FixerID)
	assert.Contains(t, report.Error, "render has unexpected type")

	_, ok := ns.Get("render_string")
	assert.True(t, ok, "fixers applied before the failure stay applied")
}

func TestPatchSoftware_PolicyFromConfig(t *testing.T) {
	var buf bytes.Buffer

	cfg := m.DefaultConfig()
	cfg.Policy = m.Policy{
		IncludeFamilies: m.RuleOf("dummy5.0"),
		ExcludeIDs:      m.RuleOf("fix_something_upto_v6"),
	}

	report, err := domain.PatchSoftware(context.Background(), cfg, fixers.NewRegistry(fixers.NewDummyNamespace("5.5.4")),
		bufferedUtilities(&buf),
		domain.WithSoftwareVersion("5.5.4"),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"fix_something_from_v5"}, report.Selected)
}

func TestPatchSoftware_WarningsProxy(t *testing.T) {
	var buf bytes.Buffer

	proxy := adapter.NewWarningsProxy()

	_, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), fixers.NewRegistry(fixers.NewDummyNamespace("5.0")),
		bufferedUtilities(&buf),
		domain.WithSoftwareVersion("5.0"),
		domain.WithWarningsProxy(proxy),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.NoError(t, err)

	proxy.Warn("emitted after the run", m.UserWarning)
	assert.Contains(t, buf.String(), "emitted after the run")
}

func TestPatchSoftware_UtilitiesFactoryError(t *testing.T) {
	report, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), fixers.NewRegistry(fixers.NewDummyNamespace("5.0")),
		domain.WithUtilitiesFactory(func(m.Config) (m.Utilities, error) {
			return nil, errors.New("no terminal")
		}),
		domain.WithSoftwareVersion("5.0"),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create patching utilities")
	assert.Equal(t, m.StateAborted, report.State)
}

func TestPatchSoftware_UnknownLoggingLevelAborts(t *testing.T) {
	cfg := m.DefaultConfig()
	cfg.LoggingLevel = "LOUD"

	ns := fixers.NewDummyNamespace("5.0")

	report, err := domain.PatchSoftware(context.Background(), cfg, fixers.NewRegistry(ns),
		domain.WithSoftwareVersion("5.0"),
		domain.WithLock(domain.NewReentrantLock()),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create patching utilities")
	assert.Contains(t, err.Error(), `unknown logging level "LOUD"`)
	assert.Equal(t, m.StateAborted, report.State)
	assert.Empty(t, report.Reports)

	_, ok := ns.Get("render_string")
	assert.False(t, ok)
}

func TestPatchSoftware_LockTimeout(t *testing.T) {
	lock := domain.NewReentrantLock()

	_, release, err := lock.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report, err := domain.PatchSoftware(ctx, m.DefaultConfig(), fixers.NewRegistry(fixers.NewDummyNamespace("5.0")),
		domain.WithSoftwareVersion("5.0"),
		domain.WithLock(lock),
	)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, m.StateAborted, report.State)
}

func TestPatchSoftware_CancelledContextPatchesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 20; i++ {
		ns := fixers.NewDummyNamespace("5.0")

		report, err := domain.PatchSoftware(ctx, m.DefaultConfig(), fixers.NewRegistry(ns),
			domain.WithSoftwareVersion("5.0"),
			domain.WithLock(domain.NewReentrantLock()),
		)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, m.StateAborted, report.State)
		assert.Empty(t, report.Reports)

		_, ok := ns.Get("render_string")
		assert.False(t, ok)
	}
}

func TestPatchSoftware_FixerMayReenter(t *testing.T) {
	var buf bytes.Buffer

	lock := domain.NewReentrantLock()
	registry := domain.NewRegistry("reentrant")
	nested := 0

	var inner m.RunReport

	require.NoError(t, registry.Register(m.Fixer{
		ID:               "recurse",
		ReferenceVersion: "1.0",
		Description:      "Patches again from inside a fixer.",
		Apply: m.Patch(func(ctx context.Context, _ m.Utilities) error {
			nested++
			if nested > 1 {
				return nil
			}

			var err error
			inner, err = domain.PatchSoftware(ctx, m.DefaultConfig(), registry,
				bufferedUtilities(&buf),
				domain.WithSoftwareVersion("1.0"),
				domain.WithLock(lock),
			)

			return err
		}),
	}))

	done := make(chan error, 1)

	go func() {
		_, err := domain.PatchSoftware(context.Background(), m.DefaultConfig(), registry,
			bufferedUtilities(&buf),
			domain.WithSoftwareVersion("1.0"),
			domain.WithLock(lock),
		)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("re-entrant patch deadlocked")
	}

	assert.Equal(t, 2, nested)
	assert.Equal(t, m.StateCompleted, inner.State)
	assert.Equal(t, 0, lock.Depth())
}
