package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

const runLongDescription = `Solve one puzzle day.

Reads the puzzle input from the given file, or from stdin when the argument
is omitted or "-", and prints the answer of each requested part.

Examples:
  almanac run examples/day05/sample.txt
  almanac run --part 2 --parallel 4 input.txt
  cat input.txt | almanac run -d 5`

var runDayFlag int
var runPartFlag int
var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Solve a puzzle day",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Day:     runDayFlag,
				Part:    runPartFlag,
				Input:   parseInput(args),
				Threads: runParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&runDayFlag, "day", "d", 5, "puzzle day to solve")
	cmd.Flags().IntVarP(&runPartFlag, "part", "P", 0, "puzzle part to solve (0 solves both)")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers per pipeline stage")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
