package cli

import (
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/olekukonko/tablewriter"
)

// WriteMarkdown writes t as a GitHub-flavoured markdown table. Styling
// escapes and separator rows are dropped.
func WriteMarkdown(w io.Writer, t Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(t.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		plain := make([]string, len(row))
		for i, cell := range row {
			plain[i] = ansi.Strip(cell)
		}
		table.Append(plain)
	}
	table.Render()
}
