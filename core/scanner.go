package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var ErrNoFiles = errors.New("no files to scan")

// DefaultBatchSize is the number of rows a batch holds unless overridden.
const DefaultBatchSize = 2048

// FilenameColumn is the name of the optional trailing column holding the
// path of the file each row came from.
const FilenameColumn = "filename"

// Opener is the file-system collaborator the scanner reads through. Glob
// expansion and compression auto-detection are the opener's business.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

type scanState int

const (
	stateNotStarted scanState = iota
	stateScanning
	stateExhausted
)

type scannerConfig struct {
	batchSize       int
	includeFilename bool
	logger          Logger
}

type ScannerOption func(*scannerConfig)

// WithBatchSize sets the row capacity of returned batches.
func WithBatchSize(size int) ScannerOption {
	return func(c *scannerConfig) {
		if size > 0 {
			c.batchSize = size
		}
	}
}

// WithFilenameColumn appends the source file path to every row as a trailing
// string column.
func WithFilenameColumn() ScannerOption {
	return func(c *scannerConfig) {
		c.includeFilename = true
	}
}

func WithLogger(logger Logger) ScannerOption {
	return func(c *scannerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Scanner reads an ordered set of Zeek log files as a single stream of
// batches. The first file's header defines the schema; later files skip
// their own header lines by count and are decoded with the same column
// types. A scanner is single-cursor and not safe for concurrent use, but
// independent scanners share nothing and need no synchronization.
type Scanner struct {
	id     string
	files  []string
	opener Opener
	config *scannerConfig

	header *Header
	types  []*ColumnType
	schema Schema
	dec    *decoder

	state       scanState
	fileIndex   int
	handle      io.ReadCloser
	reader      *bufio.Reader
	currentPath string
}

// NewScanner binds a scan over the given file set: it parses the first
// file's header, resolves every column type and builds the output schema.
// Structural problems (empty file set, unreadable first file, missing or
// mismatched #fields/#types) fail here, before any row is produced.
func NewScanner(files []string, opener Opener, opts ...ScannerOption) (*Scanner, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	config := &scannerConfig{
		batchSize: DefaultBatchSize,
		logger:    &noopLogger{},
	}
	for _, opt := range opts {
		opt(config)
	}

	header, err := bindHeader(files[0], opener)
	if err != nil {
		return nil, err
	}

	types := make([]*ColumnType, len(header.Types))
	schema := make(Schema, 0, len(header.Fields)+1)
	for i, zeekType := range header.Types {
		types[i] = TypeFromZeek(zeekType)
		schema = append(schema, Column{Name: header.Fields[i], Type: types[i]})
	}
	if config.includeFilename {
		schema = append(schema, Column{Name: FilenameColumn, Type: &ColumnType{Kind: KindString}})
	}

	s := &Scanner{
		id:     uuid.New().String(),
		files:  files,
		opener: opener,
		config: config,
		header: header,
		types:  types,
		schema: schema,
		dec:    newDecoder(header, types),
		state:  stateNotStarted,
	}

	config.logger.Debugf("scan %s: bound %q schema with %d columns over %d files",
		s.id, header.Path, len(header.Fields), len(files))

	return s, nil
}

// bindHeader opens the first file just long enough to parse its header.
func bindHeader(path string, opener Opener) (*Header, error) {
	handle, err := opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer handle.Close()

	header, err := ParseHeader(bufio.NewReader(handle))
	if err != nil {
		return nil, fmt.Errorf("parse header of %s: %w", path, err)
	}
	return header, nil
}

func (s *Scanner) ID() string {
	return s.id
}

// Header returns the metadata parsed from the first file. Read-only.
func (s *Scanner) Header() *Header {
	return s.header
}

// Schema returns the resolved output schema, including the trailing filename
// column when enabled. Read-only.
func (s *Scanner) Schema() Schema {
	return s.schema
}

// NextBatch fills and returns the next batch of decoded rows, crossing file
// boundaries as needed. Once the file set is exhausted it returns an empty
// batch, and keeps doing so on every further call.
func (s *Scanner) NextBatch() (*Batch, error) {
	batch := &Batch{Rows: make([]Row, 0, s.config.batchSize)}

	if s.state == stateExhausted {
		return batch, nil
	}
	if s.state == stateNotStarted {
		if err := s.openFile(0); err != nil {
			s.exhaust()
			return nil, err
		}
		s.state = stateScanning
	}

	for len(batch.Rows) < s.config.batchSize {
		line, ok, err := readLine(s.reader)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.currentPath, err)
		}
		if !ok {
			if err := s.advance(); err != nil {
				s.exhaust()
				return nil, err
			}
			if s.state == stateExhausted {
				break
			}
			continue
		}

		// Tolerate blank lines and directive lines reappearing
		// mid-file (log rotation re-emits headers).
		if line == "" || line[0] == '#' {
			continue
		}

		row := s.dec.decodeLine(line)
		if s.config.includeFilename {
			row = append(row, s.currentPath)
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

// openFile opens the file at the given index and skips its header lines by
// count. A file shorter than its header is left at end of input and treated
// as empty.
func (s *Scanner) openFile(index int) error {
	handle, err := s.opener.Open(s.files[index])
	if err != nil {
		return fmt.Errorf("open %s: %w", s.files[index], err)
	}

	s.fileIndex = index
	s.handle = handle
	s.reader = bufio.NewReader(handle)
	s.currentPath = s.files[index]

	for i := 0; i < s.header.HeaderLineCount; i++ {
		_, ok, err := readLine(s.reader)
		if err != nil {
			return fmt.Errorf("skip header of %s: %w", s.currentPath, err)
		}
		if !ok {
			break
		}
	}

	s.config.logger.Debugf("scan %s: reading %s", s.id, s.currentPath)
	return nil
}

// advance closes the current file and opens the next one, or marks the scan
// exhausted when none remain.
func (s *Scanner) advance() error {
	if s.handle != nil {
		s.handle.Close()
		s.handle = nil
		s.reader = nil
	}

	next := s.fileIndex + 1
	if next >= len(s.files) {
		s.state = stateExhausted
		s.config.logger.Debugf("scan %s: exhausted after %d files", s.id, len(s.files))
		return nil
	}
	return s.openFile(next)
}

func (s *Scanner) exhaust() {
	if s.handle != nil {
		s.handle.Close()
		s.handle = nil
		s.reader = nil
	}
	s.state = stateExhausted
}

// Close releases the open file handle, if any. Safe to call more than once.
func (s *Scanner) Close() error {
	s.exhaust()
	return nil
}
