package controller

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	m "github.com/mouse-blink/almanac/internal/model"
)

// stageDelegate renders one stage per line.
type stageDelegate struct{}

func (d stageDelegate) Height() int  { return 1 }
func (d stageDelegate) Spacing() int { return 0 }
func (d stageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d stageDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	stage, ok := item.(stageItem)
	if !ok {
		return
	}

	var nameStyle, countStyle lipgloss.Style

	if index == lm.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(countWidth).
			Align(lipgloss.Right)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(countWidth).
			Align(lipgloss.Right)
	}

	tr := stage.trace
	line := fmt.Sprintf("%s %s %s %s  %s",
		countStyle.Render(strconv.Itoa(tr.Breakpoints)),
		countStyle.Render(strconv.Itoa(tr.RangesIn)),
		countStyle.Render(strconv.Itoa(tr.RangesOut)),
		countStyle.Render(lowestCell(tr)),
		nameStyle.Render(truncateToWidth(tr.Name, lm.Width()-stageColumns*(countWidth+1)-1)),
	)
	_, _ = fmt.Fprint(w, line)
}

const (
	countWidth   = 12
	stageColumns = 4
)

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// inspectModel lists the pipeline stages of an inspected almanac.
type inspectModel struct {
	width     int
	height    int
	stageList list.Model
	day       int
	seeds     int
	mappers   int
	lowest    string
	rendered  bool
}

func newInspectModel() inspectModel {
	stageList := list.New([]list.Item{}, stageDelegate{}, 80, 20)
	stageList.SetShowPagination(false)
	stageList.SetShowFilter(true)
	stageList.SetShowHelp(false)
	stageList.SetShowTitle(false)
	stageList.SetShowStatusBar(false)
	stageList.FilterInput.Placeholder = "Filter by stage…"

	return inspectModel{stageList: stageList, width: 80, height: 24}
}

func (im inspectModel) Init() tea.Cmd {
	return nil
}

func (im inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.width = msg.Width
		im.height = msg.Height
		im.stageList.SetWidth(im.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return im, tea.Quit
		default:
			im.stageList, cmd = im.stageList.Update(msg)
			return im, cmd
		}

	case inspectionMsg:
		im = im.handleInspectionMsg(msg)
	}

	return im, cmd
}

func (im inspectModel) handleInspectionMsg(msg inspectionMsg) inspectModel {
	insp := msg.inspection

	tables := make(map[string]m.MapperTable, len(insp.Tables))
	for _, mt := range insp.Tables {
		tables[mt.Name] = mt
	}

	items := make([]list.Item, 0, len(insp.Stages))
	for _, st := range insp.Stages {
		items = append(items, stageItem{trace: st, table: tables[st.Name]})
	}

	im.stageList.SetItems(items)
	im.day = insp.Day
	im.seeds = insp.Seeds
	im.mappers = len(insp.Tables)
	im.rendered = true

	im.lowest = noValue
	if n := len(insp.Stages); n > 0 {
		im.lowest = lowestCell(insp.Stages[n-1])
	}

	return im
}

func (im inspectModel) View() string {
	if !im.rendered {
		return "Loading almanac…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render(fmt.Sprintf("🌱 Almanac Day %d Inspection", im.day))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Seeds: %s   Mappers: %s   Lowest: %s",
		accentStyle.Render(fmt.Sprintf("%d", im.seeds)),
		accentStyle.Render(fmt.Sprintf("%d", im.mappers)),
		accentStyle.Render(im.lowest),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(im.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		im.renderTable(),
		im.renderBreakpoints(),
		footer,
	)
}

func (im inspectModel) renderTable() string {
	// title 2, summary 2, footer 1, border 2, header 2, breakpoints
	listHeight := max(im.height-9-lipgloss.Height(im.renderBreakpoints()), 3)
	// margin 2, border 2, padding 2
	listWidth := im.width - 6

	im.stageList.SetHeight(listHeight)
	im.stageList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%*s %*s %*s %*s  %s",
			countWidth, "Breakpoints", countWidth, "Ranges In", countWidth, "Ranges Out", countWidth, "Lowest", "Stage"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			im.stageList.View(),
		),
	)
}

// renderBreakpoints shows the breakpoint table of the selected stage's mapper.
func (im inspectModel) renderBreakpoints() string {
	boxStyle := lipgloss.NewStyle().Margin(0, 1).Padding(0, 1)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	stage, ok := im.stageList.SelectedItem().(stageItem)
	if !ok {
		return boxStyle.Render(mutedStyle.Render("No stage selected"))
	}

	if len(stage.table.Rows) == 0 {
		return boxStyle.Render(mutedStyle.Render(stage.trace.Name + ": no breakpoints"))
	}

	rows := make([][]string, 0, len(stage.table.Rows))
	for _, row := range stage.table.Rows {
		closes := ""
		if row.Closes {
			closes = "yes"
		}

		rows = append(rows, []string{
			strconv.FormatInt(row.Boundary, 10),
			strconv.FormatInt(row.Offset, 10),
			closes,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))).
		Headers("Boundary", "Offset", "Closes").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	title := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(stage.table.Name + " map")

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, t.Render()))
}
