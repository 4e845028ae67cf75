// Package output renders result streams through pluggable formatters.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mohorko/zeeklog/core"
)

// Result is a fully drained result stream.
type Result struct {
	Schema core.Schema
	Rows   []core.Row
}

// Formatter renders a drained result to a writer.
type Formatter interface {
	Format(result Result, writer io.Writer) error
	Name() string
}

// Drain consumes a result stream into memory for formatting. The stream is
// closed afterwards.
func Drain(stream core.ResultStream) (Result, error) {
	defer stream.Close()

	result := Result{Schema: stream.Schema()}
	for stream.HasNext() {
		row, err := stream.Next()
		if err != nil {
			return Result{}, fmt.Errorf("stream.Next: %w", err)
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// Writer formats results onto any io.Writer.
type Writer struct {
	writer    io.Writer
	formatter Formatter
}

func NewWriter(writer io.Writer, formatter Formatter) *Writer {
	return &Writer{
		writer:    writer,
		formatter: formatter,
	}
}

func (w *Writer) Write(result Result) error {
	if err := w.formatter.Format(result, w.writer); err != nil {
		return fmt.Errorf("failed to format results as %s: %w", w.formatter.Name(), err)
	}
	return nil
}

// File formats results into a file on disk.
type File struct {
	fileName  string
	formatter Formatter
	log       core.Logger
}

func NewFile(fileName string, formatter Formatter, logger core.Logger) *File {
	return &File{
		fileName:  fileName,
		formatter: formatter,
		log:       logger,
	}
}

func (f *File) Write(result Result) error {
	file, err := os.Create(f.fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := f.formatter.Format(result, file); err != nil {
		return fmt.Errorf("failed to format results as %s: %w", f.formatter.Name(), err)
	}

	f.log.Info("successfully saved " + f.formatter.Name() + " to " + f.fileName)
	return nil
}
