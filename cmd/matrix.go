package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/compatfix/internal/domain"
)

var matrixThreadsFlag int

// matrixCmd represents the matrix command.
var matrixCmd = newMatrixCmd()

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix VERSION...",
		Short: "Show the selected fixers for several versions",
		Long: `Compute the fixer selection for each given version using the current policy.

Versions are evaluated concurrently. An invalid version fails only its own row.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rows, err := workflow.Matrix(cmd.Context(), domain.MatrixArgs{
				Versions: args,
				Policy:   cfg.Policy,
				Threads:  matrixThreadsFlag,
			})
			if err != nil {
				return err
			}

			return ui.DisplayMatrix(rows)
		},
	}
	cmd.Flags().IntVarP(&matrixThreadsFlag, "threads", "t", runtime.NumCPU(), "number of versions evaluated in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
