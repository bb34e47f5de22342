package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vector-risk/internal/storage"
)

// maxRuns is how many runs the table loads.
const maxRuns = 50

// RunsView shows the best runs of this process in a table.
type RunsView struct {
	ledger  *storage.Ledger
	runs    []storage.Run
	summary storage.Summary
	table   table.Model
	width   int
	height  int
}

// NewRunsView creates the view. A nil ledger shows an empty table.
func NewRunsView(ledger *storage.Ledger, width, height int) RunsView {
	v := RunsView{ledger: ledger, width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a new table sized for the terminal.
func (v *RunsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, v.height-8)), // Leave room for title, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload queries the ledger again.
func (v *RunsView) Reload() error {
	if v.ledger == nil {
		v.runs = nil
		v.summary = storage.Summary{}
		v.updateRows()
		return nil
	}

	runs, err := v.ledger.TopRuns(maxRuns)
	if err != nil {
		return err
	}
	summary, err := v.ledger.Summary()
	if err != nil {
		return err
	}
	v.runs = runs
	v.summary = summary
	v.updateRows()
	return nil
}

// updateRows updates the table with current runs.
func (v *RunsView) updateRows() {
	rows := make([]table.Row, len(v.runs))
	for i, r := range v.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.1fs", r.PlayTime),
			fmt.Sprintf("%d", r.Kills),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (v *RunsView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateRows()
}

// Update forwards scrolling to the table.
func (v RunsView) Update(msg tea.Msg) (RunsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the table or an empty message.
func (v RunsView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RUNS THIS SESSION", v.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(v.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(boxStyle.Render(emptyStyle.Render("No runs finished yet.")), v.width))
		return b.String()
	}

	b.WriteString(centerText(boxStyle.Render(v.table.View()), v.width))
	b.WriteString("\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	summary := fmt.Sprintf("%d runs  best %d  %d kills  %.0fs played",
		v.summary.Runs, v.summary.Best, v.summary.Kills, v.summary.TotalTime)
	b.WriteString(summaryStyle.Render(centerText(summary, v.width)))

	return b.String()
}

// centerText pads each line of s so it sits in the middle of width columns.
func centerText(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < width {
			lines[i] = strings.Repeat(" ", (width-w)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}
