// Package cmd provides the root command and CLI setup for compatfix.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/compatfix/internal/adapter"
	"github.com/mouse-blink/compatfix/internal/controller"
	"github.com/mouse-blink/compatfix/internal/domain"
	"github.com/mouse-blink/compatfix/internal/domain/fixers"
	m "github.com/mouse-blink/compatfix/internal/model"
)

var reportStore adapter.ReportStore
var namespace *m.Namespace
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	namespace = fixers.NewDummyNamespace(fixers.DefaultVersion)
	workflow = domain.NewWorkflow(
		fixers.NewRegistry(namespace),
		fixers.VersionProvider(namespace),
		domain.WithUtilitiesFactory(newUtilities),
		domain.WithWarningsProxy(adapter.NewWarningsProxy()),
	)
}

var configFlag string
var softwareVersionFlag string
var logFormatFlag string
var includeIDsFlag ruleFlag
var includeFamiliesFlag ruleFlag
var excludeIDsFlag ruleFlag
var excludeFamiliesFlag ruleFlag

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compatfix",
		Short: "Apply version-gated compatibility fixers",
		Long: `Compatfix selects and applies compatibility fixers to a patched package.

Each fixer targets a window of versions of the package. Fixers relevant to the
installed version are filtered by the include/exclude policy and applied in
registration order. Rule flags accept:
  - *              every fixer
  - none           no fixer
  - a,b,c          the named fixers or families`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch logFormatFlag {
			case "text", "json":
				return nil
			default:
				return fmt.Errorf("unknown log format %q (want text or json)", logFormatFlag)
			}
		},
	}

	includeIDsFlag = ruleFlag{}
	includeFamiliesFlag = ruleFlag{}
	excludeIDsFlag = ruleFlag{}
	excludeFamiliesFlag = ruleFlag{}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "configuration file (.yaml, .yml, .toml, .json, .jsonc, .hcl)")
	flags.StringVar(&softwareVersionFlag, "software-version", "", "version to select fixers for (default: the installed version)")
	flags.StringVar(&logFormatFlag, "log-format", "text", "log output format: text or json")
	flags.Var(&includeIDsFlag, "include-ids", "fixer ids to include (can be repeated)")
	flags.Var(&includeFamiliesFlag, "include-families", "fixer families to include (can be repeated)")
	flags.Var(&excludeIDsFlag, "exclude-ids", "fixer ids to exclude (can be repeated)")
	flags.Var(&excludeFamiliesFlag, "exclude-families", "fixer families to exclude (can be repeated)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func newUtilities(cfg m.Config) (m.Utilities, error) {
	if _, err := adapter.ParseLevel(cfg.LoggingLevel); err != nil {
		return nil, err
	}

	return adapter.NewPatchingUtilities(cfg,
		adapter.WithOutput(rootCmd.ErrOrStderr()),
		adapter.WithLogFormat(logFormatFlag),
	), nil
}

// loadConfig reads --config, or the defaults, and lets rule flags override
// the file's policy.
func loadConfig() (m.Config, error) {
	cfg := m.DefaultConfig()

	if configFlag != "" {
		loaded, err := adapter.LoadConfig(configFlag)
		if err != nil {
			return m.Config{}, err
		}

		cfg = loaded
	}

	includeIDsFlag.apply(&cfg.Policy.IncludeIDs)
	includeFamiliesFlag.apply(&cfg.Policy.IncludeFamilies)
	excludeIDsFlag.apply(&cfg.Policy.ExcludeIDs)
	excludeFamiliesFlag.apply(&cfg.Policy.ExcludeFamilies)

	return cfg, nil
}

// resolveVersion returns --software-version or the installed version.
func resolveVersion(ctx context.Context) (string, error) {
	if softwareVersionFlag != "" {
		return softwareVersionFlag, nil
	}

	return workflow.DefaultVersion(ctx)
}
