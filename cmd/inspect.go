package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

const inspectLongDescription = `Show how a puzzle input is parsed.

For day 5 this prints the breakpoint table of every map and, for the ranged
run, how many ranges enter and leave each stage together with the lowest
range start after it.`

var inspectDayFlag int
var inspectParallelFlag int

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Inspect the parsed structure of a puzzle input",
		Long:  inspectLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Inspect(cmd.Context(), domain.InspectArgs{
				Day:     inspectDayFlag,
				Input:   parseInput(args),
				Threads: inspectParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&inspectDayFlag, "day", "d", 5, "puzzle day to inspect")
	cmd.Flags().IntVarP(&inspectParallelFlag, "parallel", "p", 1, "number of parallel workers per pipeline stage")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
