package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/almanac/internal/model"
)

// TUI implements UI with lipgloss styling and a Bubble Tea program for
// inspection.
type TUI struct {
	output io.Writer
	input  io.Reader
	config StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {}

// DisplayAnswers prints each answer on its own styled line.
func (t *TUI) DisplayAnswers(answers []m.Answer) error {
	_, _ = fmt.Fprint(t.output, renderAnswers(answers))
	return nil
}

// DisplayInspection runs an interactive stage list until the user quits.
func (t *TUI) DisplayInspection(inspection m.Inspection) error {
	model := newInspectModel().handleInspectionMsg(inspectionMsg{inspection: inspection})

	p := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(t.input))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspection view: %w", err)
	}

	return nil
}

func renderAnswers(answers []m.Answer) string {
	if len(answers) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("No answers") + "\n"
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)

	lines := make([]string, 0, len(answers))
	for _, a := range answers {
		lines = append(lines, fmt.Sprintf("%s  %s",
			labelStyle.Render(fmt.Sprintf("Day %d · Part %d", a.Day, a.Part)),
			valueStyle.Render(fmt.Sprintf("%d", a.Value)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
