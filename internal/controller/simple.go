package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/almanac/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayAnswers prints one row per solved part.
func (s *SimpleUI) DisplayAnswers(answers []m.Answer) error {
	if len(answers) == 0 {
		s.printf("No answers\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Day", "Part", "Answer"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	for _, a := range answers {
		table.Append([]string{strconv.Itoa(a.Day), strconv.Itoa(a.Part), strconv.FormatInt(a.Value, 10)})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayInspection prints every mapper's breakpoints followed by the
// stage trace of the ranged run.
func (s *SimpleUI) DisplayInspection(inspection m.Inspection) error {
	s.printf("Day %d: %d seed values, %d mappers\n", inspection.Day, inspection.Seeds, len(inspection.Tables))

	for _, mt := range inspection.Tables {
		var tableBuffer bytes.Buffer

		table := newTable(&tableBuffer, []string{"Boundary", "Offset", "Closes"})
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER})

		for _, row := range mt.Rows {
			closes := ""
			if row.Closes {
				closes = "yes"
			}

			table.Append([]string{strconv.FormatInt(row.Boundary, 10), strconv.FormatInt(row.Offset, 10), closes})
		}

		table.Render()
		s.printf("\n%s map\n%s", mt.Name, tableBuffer.String())
	}

	if len(inspection.Stages) == 0 {
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Stage", "Breakpoints", "Ranges In", "Ranges Out", "Lowest"})
	for _, st := range inspection.Stages {
		table.Append([]string{
			st.Name,
			strconv.Itoa(st.Breakpoints),
			strconv.Itoa(st.RangesIn),
			strconv.Itoa(st.RangesOut),
			lowestCell(st),
		})
	}

	last := inspection.Stages[len(inspection.Stages)-1]
	table.SetFooter([]string{
		fmt.Sprintf("Total Stages %d", len(inspection.Stages)),
		"", "", strconv.Itoa(last.RangesOut), lowestCell(last),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
