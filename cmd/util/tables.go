package cmdutil

import (
	"fmt"

	"github.com/InVisionApp/tabular"
)

// ColumnHeader describes a short and long name for a column.
type ColumnHeader struct {
	ShortName, FullName string
}

// FormatTable formats the provided headers and rows so that the columns
// line up. Every row must have one cell per header.
func FormatTable(headers []ColumnHeader, rows [][]string) string {
	tab := tabular.New()
	for i, column := range headers {
		// The last column is left unpadded
		var width int
		if i < len(headers)-1 {
			width = columnWidth(column, rows, i) + 2
		}
		tab.Col(column.ShortName, column.FullName, width)
	}

	table := tab.Parse("*")
	out := fmt.Sprintln(table.Header)

	values := make([]interface{}, len(headers))
	for _, row := range rows {
		if len(values) != len(row) {
			panic("all rows must be the same length as the headers")
		}
		for i, cell := range row {
			values[i] = cell
		}
		out += fmt.Sprintf(table.Format, values...)
	}
	return out
}

func columnWidth(header ColumnHeader, rows [][]string, colIdx int) int {
	width := len(header.FullName)
	for _, row := range rows {
		if l := len(row[colIdx]); l > width {
			width = l
		}
	}
	return width
}
