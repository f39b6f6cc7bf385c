package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/compatfix/internal/controller"
	"github.com/mouse-blink/compatfix/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listPlainFlag bool

const listLongDescription = `List every registered fixer with its version window, whether it is
relevant to the selected version and whether the policy selects it.

On a terminal the list is interactive; use --plain for a table.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fixers and their selection",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			version, err := resolveVersion(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := workflow.Plan(cmd.Context(), domain.PlanArgs{Version: version, Policy: cfg.Policy})
			if err != nil {
				return err
			}

			out := ui
			if listPlainFlag {
				out = controller.NewSimpleUI(cmd)
			}

			if err := out.DisplayPlan(version, entries); err != nil {
				return err
			}

			out.Wait()
			out.Close()

			return nil
		},
	}
	cmd.Flags().BoolVar(&listPlainFlag, "plain", false, "print a plain table even on a terminal")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
