package format

import (
	"encoding/csv"
	"io"

	"github.com/mohorko/zeeklog/output"
)

var _ output.Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(result output.Result, writer io.Writer) error {
	data := make([][]string, 0, len(result.Rows)+1)
	data = append(data, result.Schema.Names())

	for _, row := range result.Rows {
		csvRow := make([]string, len(row))
		for i, val := range row {
			csvRow[i] = render(val, "")
		}
		data = append(data, csvRow)
	}

	w := csv.NewWriter(writer)
	if err := w.WriteAll(data); err != nil {
		return err
	}
	return w.Error()
}
