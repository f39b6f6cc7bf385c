package domain

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/compatfix/internal/domain/versions"
	m "github.com/mouse-blink/compatfix/internal/model"
)

func TestRegistry_RegisterValidation(t *testing.T) {
	valid := fixer("ok", "", "4.0", "")

	tests := []struct {
		name   string
		mutate func(*m.Fixer)
		want   error
	}{
		{"empty id", func(f *m.Fixer) { f.ID = "  " }, ErrEmptyFixerID},
		{"missing description", func(f *m.Fixer) { f.Description = "" }, ErrMissingDescription},
		{"blank description", func(f *m.Fixer) { f.Description = " \n\t" }, ErrMissingDescription},
		{"missing patch", func(f *m.Fixer) { f.Apply = nil }, ErrMissingPatch},
		{"missing reference version", func(f *m.Fixer) { f.ReferenceVersion = "" }, ErrMissingReferenceVersion},
		{"bad reference version", func(f *m.Fixer) { f.ReferenceVersion = "four" + "!" }, versions.ErrInvalidVersion},
		{"bad lower bound", func(f *m.Fixer) { f.AppliedFrom = "4..0" }, versions.ErrInvalidVersion},
		{"bad upper bound", func(f *m.Fixer) { f.AppliedUpto = "-1" }, versions.ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("test")
			f := valid
			tt.mutate(&f)

			err := r.Register(f)
			require.ErrorIs(t, err, tt.want)

			var regErr *RegistrationError
			require.ErrorAs(t, err, &regErr)
			assert.Equal(t, "test", regErr.Registry)
			assert.Empty(t, r.GetAll())
		})
	}
}

func TestRegistry_RejectsDuplicateID(t *testing.T) {
	r := NewRegistry("test")
	require.NoError(t, r.Register(fixer("dup", "", "4.0", "")))

	err := r.Register(fixer("dup", "", "5.0", ""))
	require.ErrorIs(t, err, ErrDuplicateFixer)
	assert.Contains(t, err.Error(), `"dup"`)
	assert.Len(t, r.GetAll(), 1)
}

func TestRegistry_FamilyPrefix(t *testing.T) {
	r := NewRegistry("dummy", WithFamilyPrefix("dummy"))
	require.NoError(t, r.Register(fixer("derived", "", "5.0", "")))
	require.NoError(t, r.Register(fixer("explicit", "custom", "5.0", "")))

	got, err := r.GetByID("derived")
	require.NoError(t, err)
	assert.Equal(t, "dummy5.0", got.Family)

	got, err = r.GetByID("explicit")
	require.NoError(t, err)
	assert.Equal(t, "custom", got.Family)

	plain := NewRegistry("plain")
	require.NoError(t, plain.Register(fixer("nofamily", "", "5.0", "")))
	got, err = plain.GetByID("nofamily")
	require.NoError(t, err)
	assert.Empty(t, got.Family)
}

func TestRegistry_GetByIDNotFound(t *testing.T) {
	r := NewRegistry("test")

	_, err := r.GetByID("ghost")
	require.ErrorIs(t, err, ErrFixerNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ghost", nf.FixerID)
}

func TestRegistry_GetAllKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry("test")
	for _, f := range []m.Fixer{
		fixer("late", "", "9.0", ""),
		fixer("early", "", "1.0", ""),
		fixer("middle", "", "5.0", ""),
	} {
		require.NoError(t, r.Register(f))
	}

	all := r.GetAll()
	ids := make([]string, len(all))

	for i, f := range all {
		ids[i] = f.ID
	}

	assert.Equal(t, []string{"late", "early", "middle"}, ids)

	all[0].ID = "mutated"
	again, _ := r.GetByID("late")
	assert.Equal(t, "late", again.ID)
}

func TestRegistry_PopulateIsOneShot(t *testing.T) {
	calls := 0
	r := NewRegistry("test", WithPopulator(func(_ context.Context, reg Registrar) error {
		calls++
		return reg.Register(fixer("only", "", "1.0", ""))
	}))

	assert.False(t, r.IsPopulated())
	require.NoError(t, r.Populate(context.Background()))
	first := r.GetAll()

	require.NoError(t, r.Populate(context.Background()))
	assert.Equal(t, 1, calls)
	assert.True(t, r.IsPopulated())
	assert.Len(t, r.GetAll(), len(first))
}

func TestRegistry_PopulateFailureIsCached(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	r := NewRegistry("test", WithPopulator(func(context.Context, Registrar) error {
		calls++
		return boom
	}))

	err := r.Populate(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"test"`)

	require.ErrorIs(t, r.Populate(context.Background()), boom)
	assert.Equal(t, 1, calls)
	assert.False(t, r.IsPopulated())
}

func TestRegistry_PopulateSurfacesRegistrationErrors(t *testing.T) {
	r := NewRegistry("test", WithPopulator(func(_ context.Context, reg Registrar) error {
		if err := reg.Register(fixer("same", "", "1.0", "")); err != nil {
			return err
		}

		return reg.Register(fixer("same", "", "2.0", ""))
	}))

	err := r.Populate(context.Background())
	require.ErrorIs(t, err, ErrDuplicateFixer)
}

func TestRegistry_ConcurrentPopulate(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)

	r := NewRegistry("test", WithPopulator(func(_ context.Context, reg Registrar) error {
		mu.Lock()
		calls++
		mu.Unlock()

		return reg.Register(fixer("only", "", "1.0", ""))
	}))

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.NoError(t, r.Populate(context.Background()))
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, calls)
	assert.Len(t, r.GetAll(), 1)
}

func TestRegistry_RelevantFixerIDs(t *testing.T) {
	r := NewRegistry("test")
	for _, f := range scenarioCatalog() {
		require.NoError(t, r.Register(f))
	}

	ids, err := r.RelevantFixerIDs("5.0", m.Policy{IncludeIDs: m.WildcardRule()})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, "test", r.Name())
}
