package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

const listLongDescription = `List the puzzle days this build can solve, with their titles.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available puzzle days",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range domain.Days() {
				p, err := domain.Lookup(day)
				if err != nil {
					return err
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", p.Day(), p.Title()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
