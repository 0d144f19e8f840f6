package utils

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	swimrankings "github.com/MauroDruwel/Swimrankings"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// RenderRecords prints records as a table with the given columns, in
// order. Fields absent from a record render as empty cells.
func RenderRecords(columns []string, records []swimrankings.Record) {
	t := NewTable()

	header := make(table.Row, 0, len(columns))
	for _, col := range columns {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for _, record := range records {
		row := make(table.Row, 0, len(columns))
		for _, col := range columns {
			value, ok := record[col]
			if !ok {
				value = ""
			}
			row = append(row, value)
		}
		t.AppendRow(row)
	}

	t.Render()
}
