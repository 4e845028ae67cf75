package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mohorko/zeeklog/output"
)

var _ output.Formatter = (*JSON)(nil)

type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (jf *JSON) Name() string {
	return "json"
}

func (jf *JSON) Format(result output.Result, writer io.Writer) error {
	names := result.Schema.Names()

	data := make([]map[string]any, 0, len(result.Rows))
	for _, row := range result.Rows {
		record := make(map[string]any, len(row))
		for i, val := range row {
			name := fmt.Sprintf("<unknown-field-%d>", i)
			if i < len(names) {
				name = names[i]
			}
			record[name] = val
		}
		data = append(data, record)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	_, err = writer.Write(out)
	return err
}
