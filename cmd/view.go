package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "View a saved run report",
		Long:  "View a run report previously written by run --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report, err := reportStore.LoadReport(m.Path(args[0]))
			if err != nil {
				return err
			}

			if err := ui.DisplayReport(report); err != nil {
				return err
			}

			ui.Wait()
			ui.Close()

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
