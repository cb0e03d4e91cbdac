package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	badgeStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Italic(true).Faint(true)
)

// Render draws a titled table for the terminal with an entry count badge.
// An empty table renders the empty-state line instead of a grid.
func Render(title string, t Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(title), badgeStyle.Render(CountLabel(len(t.Rows))))

	if len(t.Rows) == 0 {
		b.WriteString(emptyStyle.Render("No entries"))
		b.WriteString("\n")
		return b.String()
	}

	grid := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	b.WriteString(grid.String())
	b.WriteString("\n")
	return b.String()
}
