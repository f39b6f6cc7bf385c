package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/compatfix/internal/model"
)

func TestViewCmd_DisplaysSavedReport(t *testing.T) {
	_, mockUI := withMocks(t)

	path := filepath.Join(t.TempDir(), "run.yaml")
	report := m.RunReport{ID: "run-7", SoftwareVersion: "6.0", State: m.StateCompleted}
	require.NoError(t, reportStore.SaveReport(m.Path(path), report))

	mockUI.EXPECT().
		DisplayReport(mock.MatchedBy(func(r m.RunReport) bool {
			return r.ID == "run-7" && r.State == m.StateCompleted
		})).
		Return(nil)
	mockUI.EXPECT().Wait()
	mockUI.EXPECT().Close()

	cmd, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", path})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_MissingReport(t *testing.T) {
	withMocks(t)

	cmd, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", filepath.Join(t.TempDir(), "missing.yaml")})

	require.Error(t, cmd.Execute())
}

func TestViewCmd_RequiresExactlyOneFile(t *testing.T) {
	withMocks(t)

	cmd, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view"})

	require.Error(t, cmd.Execute())
}
