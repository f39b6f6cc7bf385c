package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/compatfix/internal/controller"
	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

var runReportFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Apply the selected fixers to the patched package in registration order.

A skipped fixer does not stop the run; a failed one does. Use --report to
keep the run report as YAML for later viewing.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply compatibility fixers",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if err := ui.Start(controller.WithRunMode()); err != nil {
				return err
			}
			defer ui.Close()

			// The plan only sizes the progress display; it populates under the patching
			// lock like Patch, which reports its own errors.
			if entries, err := workflow.Plan(ctx, domain.PlanArgs{Version: softwareVersionFlag, Policy: cfg.Policy}); err == nil {
				ui.DisplayUpcomingFixers(countSelected(entries))
			}

			report, patchErr := workflow.Patch(ctx, domain.PatchArgs{
				Config:   cfg,
				Version:  softwareVersionFlag,
				Observer: ui,
			})

			var saveErr error
			if runReportFlag != "" {
				saveErr = reportStore.SaveReport(m.Path(runReportFlag), report)
			}

			if err := ui.DisplayReport(report); err != nil {
				return errors.Join(patchErr, saveErr, err)
			}

			ui.Wait()

			return errors.Join(patchErr, saveErr)
		},
	}
	cmd.Flags().StringVarP(&runReportFlag, "report", "r", "", "write the run report to this YAML file")

	return cmd
}

func countSelected(entries []domain.PlanEntry) int {
	n := 0

	for _, e := range entries {
		if e.Selected {
			n++
		}
	}

	return n
}

func init() {
	rootCmd.AddCommand(runCmd)
}
