package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/compatfix/internal/model"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"list", "run", "matrix", "view"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_RejectsUnknownLogFormat(t *testing.T) {
	withMocks(t)

	cmd, _ := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"--log-format", "xml", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}

func TestNewUtilities_RejectsUnknownLevel(t *testing.T) {
	newTestRoot()

	cfg := m.DefaultConfig()
	cfg.LoggingLevel = "LOUD"

	_, err := newUtilities(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown logging level "LOUD"`)

	cfg.LoggingLevel = "warning"
	utils, err := newUtilities(cfg)
	require.NoError(t, err)
	assert.NotNil(t, utils)
}

func TestLoadConfig_Defaults(t *testing.T) {
	newTestRoot()

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, m.DefaultConfig().LoggingLevel, cfg.LoggingLevel)
	assert.True(t, cfg.Policy.IncludeIDs.IsWildcard())
	assert.True(t, cfg.Policy.ExcludeIDs.IsNone())
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging_level: DEBUG
include_fixer_ids: [fix_something_from_v4]
exclude_fixer_families: [dummy6.0]
`), 0o600))

	cmd, _ := newTestRoot()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", path,
		"--include-ids", "none",
		"--include-families", "dummy5.0",
		"--include-families", "dummy7.0",
	}))

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.LoggingLevel)
	assert.True(t, cfg.Policy.IncludeIDs.IsNone())
	assert.Equal(t, []string{"dummy5.0", "dummy7.0"}, cfg.Policy.IncludeFamilies.Names())
	assert.Equal(t, []string{"dummy6.0"}, cfg.Policy.ExcludeFamilies.Names())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cmd, _ := newTestRoot()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))

	_, err := loadConfig()
	require.Error(t, err)
}

func TestRuleFlag(t *testing.T) {
	var f ruleFlag

	assert.Equal(t, "rule", f.Type())
	assert.Empty(t, f.String())

	target := m.WildcardRule()
	f.apply(&target)
	assert.True(t, target.IsWildcard(), "unset flag must not touch the target")

	require.NoError(t, f.Set("b"))
	require.NoError(t, f.Set("a, c"))
	assert.Equal(t, "a,b,c", f.String())

	f.apply(&target)
	assert.Equal(t, []string{"a", "b", "c"}, target.Names())

	require.NoError(t, f.Set("*"))
	assert.Equal(t, "*", f.String())
}

func TestResolveVersion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	mockWorkflow, _ := withMocks(t)

	cmd, _ := newTestRoot()
	require.NoError(t, cmd.ParseFlags([]string{"--software-version", "6.1"}))

	version, err := resolveVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "6.1", version)

	softwareVersionFlag = ""
	mockWorkflow.EXPECT().DefaultVersion(ctx).Return("5.0", nil).Once()

	version, err = resolveVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5.0", version)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if cmd.Context() == nil {
					return fmt.Errorf("no context")
				}

				fmt.Println("success")

				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // exits with status 1

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "output: %s", output)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(output), "command failed"))
}
