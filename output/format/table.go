package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mohorko/zeeklog/output"
)

var _ output.Formatter = (*Table)(nil)

type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

func (tf *Table) Format(result output.Result, writer io.Writer) error {
	var tableHeaders []any
	for _, name := range result.Schema.Names() {
		tableHeaders = append(tableHeaders, name)
	}

	var tableRows []table.Row
	for _, row := range result.Rows {
		tableRow := make(table.Row, len(row))
		for i, val := range row {
			tableRow[i] = render(val, "-")
		}
		tableRows = append(tableRows, tableRow)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row(tableHeaders))
	t.AppendRows(tableRows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false

	_, err := writer.Write([]byte(t.Render()))
	return err
}
