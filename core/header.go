package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrMissingFields     = errors.New("zeek log is missing a #fields directive")
	ErrMissingTypes      = errors.New("zeek log is missing a #types directive")
	ErrFieldTypeMismatch = errors.New("zeek log has mismatched #fields and #types counts")
)

// Header holds the metadata parsed from the directive lines at the top of a
// Zeek log file.
type Header struct {
	// Field separator (default: tab).
	Separator byte
	// Separator between elements of set/vector values (default: comma).
	SetSeparator byte
	// Marker for explicitly empty fields (default: "(empty)").
	EmptyField string
	// Marker for unset/NULL fields (default: "-").
	UnsetField string
	// Log stream identifier (e.g. "conn", "dns").
	Path string
	// Opening timestamp, informational only.
	OpenTime string
	// Column names.
	Fields []string
	// Zeek type names, one per column.
	Types []string
	// Number of directive lines to skip when re-reading a file of the
	// same stream. Computed as lines read minus one, so it excludes the
	// line that terminated header parsing.
	HeaderLineCount int
}

// readLine reads one logical line: all bytes up to a newline, with carriage
// returns dropped. End of input with buffered bytes yields one final line;
// end of input with nothing buffered reports ok=false.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	raw, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if raw == "" {
		return "", false, nil
	}
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.ReplaceAll(raw, "\r", "")
	return raw, true, nil
}

// splitDirective splits a directive line into its name and value. The
// separator is the first tab after the leading '#', or the first space when
// no tab is present. With neither, the whole remainder is the name.
func splitDirective(line string) (name, value string) {
	rest := line[1:]
	sep := strings.IndexByte(rest, '\t')
	if sep < 0 {
		sep = strings.IndexByte(rest, ' ')
	}
	if sep < 0 {
		return rest, ""
	}
	return rest[:sep], rest[sep+1:]
}

// ParseHeader consumes the directive lines at the start of a Zeek log,
// leaving the reader positioned after the first data line. Unrecognized
// directives are ignored. Missing #fields or #types directives, or
// mismatched counts, fail the bind.
func ParseHeader(r *bufio.Reader) (*Header, error) {
	header := &Header{
		Separator:    '\t',
		SetSeparator: ',',
		EmptyField:   "(empty)",
		UnsetField:   "-",
	}

	lineCount := 0
	for {
		line, ok, err := readLine(r)
		if err != nil {
			return nil, fmt.Errorf("read header line: %w", err)
		}
		if !ok {
			break
		}
		lineCount++
		if line == "" || line[0] != '#' {
			break
		}

		name, value := splitDirective(line)
		switch name {
		case "separator":
			if parsed := ParseSeparator(value); parsed != "" {
				header.Separator = parsed[0]
			}
		case "set_separator":
			if parsed := ParseSeparator(value); parsed != "" {
				header.SetSeparator = parsed[0]
			}
		case "empty_field":
			header.EmptyField = value
		case "unset_field":
			header.UnsetField = value
		case "path":
			header.Path = value
		case "open":
			header.OpenTime = value
		case "fields":
			if value != "" {
				header.Fields = strings.Split(value, string(header.Separator))
			}
		case "types":
			if value != "" {
				header.Types = strings.Split(value, string(header.Separator))
			}
		}
	}

	if lineCount > 0 {
		header.HeaderLineCount = lineCount - 1
	}

	if len(header.Fields) == 0 {
		return nil, ErrMissingFields
	}
	if len(header.Types) == 0 {
		return nil, ErrMissingTypes
	}
	if len(header.Fields) != len(header.Types) {
		return nil, fmt.Errorf("%w: %d fields, %d types",
			ErrFieldTypeMismatch, len(header.Fields), len(header.Types))
	}

	return header, nil
}
